package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tmeadow/notechain/internal/notedate"
)

// Vault is a root directory of markdown notes, optionally grouped into
// YYYY-MM month folders.
type Vault struct {
	Root string
}

func New(root string) *Vault {
	return &Vault{Root: root}
}

// Exists reports whether the vault root is present on disk.
func (v *Vault) Exists() bool {
	info, err := os.Stat(v.Root)
	return err == nil && info.IsDir()
}

// NotesInDir returns the markdown files directly inside dir (non-recursive),
// as full paths in lexical name order.
func (v *Vault) NotesInDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	var notes []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		notes = append(notes, filepath.Join(dir, e.Name()))
	}
	sort.Strings(notes)
	return notes, nil
}

// WalkNotes returns every markdown file under the vault root, recursively,
// in lexical path order. Hidden files and directories are skipped.
func (v *Vault) WalkNotes() ([]string, error) {
	var notes []string

	err := filepath.Walk(v.Root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // unreadable entries are skipped, not fatal
		}
		if path == v.Root {
			return nil
		}

		name := filepath.Base(path)
		if strings.HasPrefix(name, ".") {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.IsDir() && strings.HasSuffix(name, ".md") {
			notes = append(notes, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", v.Root, err)
	}

	sort.Strings(notes)
	return notes, nil
}

// MonthFolders returns the YYYY-MM subdirectories of the vault root, as full
// paths in lexical order.
func (v *Vault) MonthFolders() ([]string, error) {
	entries, err := os.ReadDir(v.Root)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", v.Root, err)
	}

	var folders []string
	for _, e := range entries {
		if e.IsDir() && notedate.IsMonthFolder(e.Name()) {
			folders = append(folders, filepath.Join(v.Root, e.Name()))
		}
	}
	sort.Strings(folders)
	return folders, nil
}

// EnsureDir creates dir if it does not exist yet.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// MoveAvoidingCollision moves src into destDir without ever overwriting: on
// a name collision the stem gains a "(1)", "(2)", ... suffix until a free
// name is found, preserving the extension. Returns the final destination.
func MoveAvoidingCollision(src, destDir string) (string, error) {
	base := filepath.Base(src)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	dest := filepath.Join(destDir, base)
	for n := 1; ; n++ {
		if _, err := os.Stat(dest); err != nil {
			break
		}
		dest = filepath.Join(destDir, fmt.Sprintf("%s(%d)%s", stem, n, ext))
	}

	if err := os.Rename(src, dest); err != nil {
		return "", fmt.Errorf("move %s: %w", base, err)
	}
	return dest, nil
}
