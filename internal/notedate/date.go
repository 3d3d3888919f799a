package notedate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Status classifies the outcome of parsing a note filename.
type Status int

const (
	// StatusDated means the filename encodes a valid calendar date.
	StatusDated Status = iota
	// StatusNotDated means the filename does not follow the M-D-YYYY pattern.
	// This is expected: vaults mix dated and non-dated notes.
	StatusNotDated
	// StatusInvalidDate means the pattern matched but the values do not form
	// a real calendar date (month 13, Feb 30, ...).
	StatusInvalidDate
)

// Date is a calendar day extracted from a note filename.
type Date struct {
	Year  int
	Month int
	Day   int
}

var (
	stemPattern = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{4})$`)
	dupSuffix   = regexp.MustCompile(`\(\d+\)$`)
	monthFolder = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Parse extracts a calendar date from a note filename such as "6-29-2025.md".
// A trailing "(N)" duplicate suffix is stripped first, so "6-29-2025(1).md"
// parses to the same date as "6-29-2025.md".
func Parse(filename string) (Date, Status) {
	stem := strings.TrimSuffix(filename, ".md")
	stem = dupSuffix.ReplaceAllString(stem, "")

	m := stemPattern.FindStringSubmatch(stem)
	if m == nil {
		return Date{}, StatusNotDated
	}

	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	if !validDate(year, month, day) {
		return Date{}, StatusInvalidDate
	}
	return Date{Year: year, Month: month, Day: day}, StatusDated
}

// validDate round-trips through time.Date, which normalizes out-of-range
// values (Feb 30 becomes Mar 1/2) instead of rejecting them.
func validDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// Before reports whether d falls chronologically before other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// Folder returns the month-folder name for the date, e.g. "2025-06".
func (d Date) Folder() string {
	return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
}

// Title renders the date as a note title, e.g. "May 2, 2025".
func (d Date) Title() string {
	return fmt.Sprintf("%s %d, %d", monthNames[d.Month-1], d.Day, d.Year)
}

// String returns the filename-stem form of the date, e.g. "5-2-2025".
func (d Date) String() string {
	return fmt.Sprintf("%d-%d-%d", d.Month, d.Day, d.Year)
}

// HeadingTitle synthesizes a heading title from a filename stem. A stem of
// three hyphen-separated tokens whose first token is a month number renders
// as "May 2, 2025"; anything else falls back to the stem verbatim. The day
// and year tokens pass through as-is, so a duplicate-suffixed stem like
// "6-29-2025(1)" renders as "June 29, 2025(1)". Never fails.
func HeadingTitle(stem string) string {
	parts := strings.Split(stem, "-")
	if len(parts) != 3 {
		return stem
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return stem
	}
	return fmt.Sprintf("%s %s, %s", monthNames[month-1], parts[1], parts[2])
}

// IsMonthFolder reports whether name looks like a YYYY-MM month folder.
func IsMonthFolder(name string) bool {
	return monthFolder.MatchString(name)
}
