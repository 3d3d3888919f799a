package organize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tmeadow/notechain/internal/logger"
	"github.com/tmeadow/notechain/internal/markdown"
	"github.com/tmeadow/notechain/internal/notedate"
	"github.com/tmeadow/notechain/internal/vault"
)

// Organizer moves dated notes from the vault root into YYYY-MM month
// folders, repairing missing leading headings along the way.
type Organizer struct {
	vault  *vault.Vault
	parser *markdown.Parser
	log    *logger.Logger
}

func New(v *vault.Vault, log *logger.Logger) *Organizer {
	return &Organizer{
		vault:  v,
		parser: markdown.NewParser(),
		log:    log,
	}
}

// Result summarizes one organize run.
type Result struct {
	Found         int
	Organized     int
	Skipped       int
	HeadingsFixed int
	Errors        []string
	FolderCounts  []FolderCount
}

// FolderCount is one month folder and how many notes it holds.
type FolderCount struct {
	Folder string
	Files  int
}

// Run performs one pass over the markdown files directly inside the vault
// root, in lexical name order. Files whose names carry no usable date stay
// where they are; per-file failures are collected and the batch continues.
func (o *Organizer) Run() (*Result, error) {
	if !o.vault.Exists() {
		return nil, fmt.Errorf("directory %q does not exist", o.vault.Root)
	}

	notes, err := o.vault.NotesInDir(o.vault.Root)
	if err != nil {
		return nil, fmt.Errorf("scan vault: %w", err)
	}

	res := &Result{Found: len(notes)}
	for _, path := range notes {
		name := filepath.Base(path)

		date, status := notedate.Parse(name)
		if status != notedate.StatusDated {
			o.log.SkippedUndated(name)
			res.Skipped++
			continue
		}

		// Heading repair happens before the move, on the original path.
		if o.fixHeading(path) {
			res.HeadingsFixed++
		}

		destDir := filepath.Join(o.vault.Root, date.Folder())
		if err := vault.EnsureDir(destDir); err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("create folder %q: %v", date.Folder(), err))
			continue
		}

		if _, err := vault.MoveAvoidingCollision(path, destDir); err != nil {
			o.log.FileError(name, err)
			res.Errors = append(res.Errors, fmt.Sprintf("move %q: %v", name, err))
			continue
		}
		o.log.Moved(name, date.Folder())
		res.Organized++
	}

	res.FolderCounts = o.folderCounts()
	return res, nil
}

// fixHeading prepends a synthesized title when the note does not open with
// a heading. Reports whether the file changed; any failure is logged and
// counts as no change.
func (o *Organizer) fixHeading(path string) bool {
	name := filepath.Base(path)

	content, err := os.ReadFile(path)
	if err != nil {
		o.log.FileError(name, err)
		return false
	}
	if o.parser.HasLeadingHeading(content) {
		return false
	}

	title := notedate.HeadingTitle(strings.TrimSuffix(name, ".md"))
	fixed := markdown.PrependHeading(content, title)
	if err := os.WriteFile(path, fixed, 0644); err != nil {
		o.log.FileError(name, err)
		return false
	}

	o.log.HeadingFixed(name, title)
	return true
}

// folderCounts lists the vault's month folders with their note counts.
// Listing failures only affect the summary, never the run itself.
func (o *Organizer) folderCounts() []FolderCount {
	folders, err := o.vault.MonthFolders()
	if err != nil {
		return nil
	}

	var counts []FolderCount
	for _, dir := range folders {
		notes, err := o.vault.NotesInDir(dir)
		if err != nil {
			continue
		}
		counts = append(counts, FolderCount{
			Folder: filepath.Base(dir),
			Files:  len(notes),
		})
	}
	return counts
}
