package link

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tmeadow/notechain/internal/logger"
	"github.com/tmeadow/notechain/internal/markdown"
	"github.com/tmeadow/notechain/internal/notedate"
	"github.com/tmeadow/notechain/internal/vault"
)

// nextLinkFormat is the block appended to a note, verbatim except for the
// target stem. The append starts with a blank line so the horizontal rule
// never glues onto existing content.
const nextLinkFormat = "\n\n---\n**Next:** [[%s]]"

// Linker appends "next note" navigation links to dated notes, chaining them
// in chronological order.
type Linker struct {
	vault *vault.Vault
	log   *logger.Logger
}

func New(v *vault.Vault, log *logger.Logger) *Linker {
	return &Linker{vault: v, log: log}
}

// Result summarizes one linking run.
type Result struct {
	Linked        int
	AlreadyLinked int
	EndOfChain    int
	Collisions    []Collision
	Errors        []string
}

// Collision records a vault-wide duplicate date: Kept stayed in the chain,
// Dropped was displaced and is excluded from linking entirely.
type Collision struct {
	Date    notedate.Date
	Kept    string
	Dropped string
}

// chain is a date-ordered view over dated note files.
type chain struct {
	dates []notedate.Date            // distinct, ascending
	files map[notedate.Date][]string // files per date, lexical scan order
}

// newFolderChain groups paths by date, keeping every duplicate-date file.
func newFolderChain(paths []string) *chain {
	files := make(map[notedate.Date][]string)
	for _, p := range paths {
		date, status := notedate.Parse(filepath.Base(p))
		if status != notedate.StatusDated {
			continue
		}
		files[date] = append(files[date], p)
	}
	return &chain{dates: sortedDates(files), files: files}
}

// newVaultChain keeps exactly one file per date. When two files share a
// date, the later one in scan order wins; the displaced file is returned as
// a collision so the caller can surface the loss instead of hiding it.
func newVaultChain(paths []string) (*chain, []Collision) {
	files := make(map[notedate.Date][]string)
	var collisions []Collision

	for _, p := range paths {
		date, status := notedate.Parse(filepath.Base(p))
		if status != notedate.StatusDated {
			continue
		}
		if prev, ok := files[date]; ok {
			collisions = append(collisions, Collision{
				Date:    date,
				Kept:    p,
				Dropped: prev[0],
			})
		}
		files[date] = []string{p}
	}
	return &chain{dates: sortedDates(files), files: files}, collisions
}

func sortedDates(files map[notedate.Date][]string) []notedate.Date {
	dates := make([]notedate.Date, 0, len(files))
	for d := range files {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// LinkFolders links notes within each YYYY-MM folder of the vault root
// independently. Folder-level scan failures are recorded and the remaining
// folders still run.
func (l *Linker) LinkFolders() (*Result, error) {
	if !l.vault.Exists() {
		return nil, fmt.Errorf("directory %q does not exist", l.vault.Root)
	}

	folders, err := l.vault.MonthFolders()
	if err != nil {
		return nil, fmt.Errorf("scan vault: %w", err)
	}

	res := &Result{}
	for _, dir := range folders {
		notes, err := l.vault.NotesInDir(dir)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("scan %q: %v", filepath.Base(dir), err))
			continue
		}
		l.linkChain(newFolderChain(notes), res)
	}
	return res, nil
}

// LinkVault links notes across the entire vault tree in one chain.
func (l *Linker) LinkVault() (*Result, error) {
	if !l.vault.Exists() {
		return nil, fmt.Errorf("directory %q does not exist", l.vault.Root)
	}

	notes, err := l.vault.WalkNotes()
	if err != nil {
		return nil, fmt.Errorf("scan vault: %w", err)
	}

	ch, collisions := newVaultChain(notes)
	for _, c := range collisions {
		l.log.DuplicateDate(c.Date.String(), filepath.Base(c.Kept), filepath.Base(c.Dropped))
	}

	res := &Result{Collisions: collisions}
	l.linkChain(ch, res)
	return res, nil
}

// linkChain walks the chain in date order. Every file of a date links to
// the same next-date file; the maximum date is the end of the chain and
// receives no link.
func (l *Linker) linkChain(ch *chain, res *Result) {
	for i, date := range ch.dates {
		var target string
		if i+1 < len(ch.dates) {
			target = ch.files[ch.dates[i+1]][0]
		}

		for _, path := range ch.files[date] {
			name := filepath.Base(path)
			if target == "" {
				l.log.EndOfChain(name)
				res.EndOfChain++
				continue
			}

			appended, err := appendNextLink(path, target)
			switch {
			case err != nil:
				l.log.FileError(name, err)
				res.Errors = append(res.Errors, fmt.Sprintf("link %q: %v", name, err))
			case appended:
				l.log.Linked(name, filepath.Base(target))
				res.Linked++
			default:
				l.log.AlreadyLinked(name, filepath.Base(target))
				res.AlreadyLinked++
			}
		}
	}
}

// appendNextLink appends the next-note block to path unless a link to the
// target is already present. The write is an append, not a rewrite.
func appendNextLink(path, target string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	stem := strings.TrimSuffix(filepath.Base(target), ".md")
	if markdown.LinksTo(content, stem) {
		return false, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return false, err
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, nextLinkFormat, stem); err != nil {
		return false, err
	}
	return true, nil
}
