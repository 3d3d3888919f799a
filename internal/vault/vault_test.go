package vault

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestNotesInDir(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.md"), "")
	writeFile(t, filepath.Join(root, "a.md"), "")
	writeFile(t, filepath.Join(root, "notes.txt"), "")
	writeFile(t, filepath.Join(root, "sub", "c.md"), "")

	v := New(root)
	notes, err := v.NotesInDir(root)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{filepath.Join(root, "a.md"), filepath.Join(root, "b.md")}
	if len(notes) != len(want) {
		t.Fatalf("got %d notes, want %d: %v", len(notes), len(want), notes)
	}
	for i := range want {
		if notes[i] != want[i] {
			t.Errorf("[%d] = %q, want %q", i, notes[i], want[i])
		}
	}
}

func TestWalkNotes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "top.md"), "")
	writeFile(t, filepath.Join(root, "2025-01", "1-2-2025.md"), "")
	writeFile(t, filepath.Join(root, "2025-02", "2-1-2025.md"), "")
	writeFile(t, filepath.Join(root, ".obsidian", "workspace.md"), "")
	writeFile(t, filepath.Join(root, ".hidden.md"), "")

	v := New(root)
	notes, err := v.WalkNotes()
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		filepath.Join(root, "2025-01", "1-2-2025.md"),
		filepath.Join(root, "2025-02", "2-1-2025.md"),
		filepath.Join(root, "top.md"),
	}
	if len(notes) != len(want) {
		t.Fatalf("got %v, want %v", notes, want)
	}
	for i := range want {
		if notes[i] != want[i] {
			t.Errorf("[%d] = %q, want %q", i, notes[i], want[i])
		}
	}
}

func TestMonthFolders(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"2025-02", "2025-01", "attachments", ".obsidian"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			t.Fatal(err)
		}
	}
	writeFile(t, filepath.Join(root, "2024-12.md"), "") // a file, not a folder

	v := New(root)
	folders, err := v.MonthFolders()
	if err != nil {
		t.Fatal(err)
	}

	want := []string{filepath.Join(root, "2025-01"), filepath.Join(root, "2025-02")}
	if len(folders) != len(want) {
		t.Fatalf("got %v, want %v", folders, want)
	}
	for i := range want {
		if folders[i] != want[i] {
			t.Errorf("[%d] = %q, want %q", i, folders[i], want[i])
		}
	}
}

func TestMoveAvoidingCollision(t *testing.T) {
	root := t.TempDir()
	destDir := filepath.Join(root, "2025-06")
	writeFile(t, filepath.Join(root, "6-29-2025.md"), "first")
	if err := EnsureDir(destDir); err != nil {
		t.Fatal(err)
	}

	dest, err := MoveAvoidingCollision(filepath.Join(root, "6-29-2025.md"), destDir)
	if err != nil {
		t.Fatal(err)
	}
	if dest != filepath.Join(destDir, "6-29-2025.md") {
		t.Errorf("dest = %q, want plain name", dest)
	}

	// Second and third files with the same name pick up (1), (2).
	writeFile(t, filepath.Join(root, "6-29-2025.md"), "second")
	dest, err = MoveAvoidingCollision(filepath.Join(root, "6-29-2025.md"), destDir)
	if err != nil {
		t.Fatal(err)
	}
	if dest != filepath.Join(destDir, "6-29-2025(1).md") {
		t.Errorf("dest = %q, want (1) suffix", dest)
	}

	writeFile(t, filepath.Join(root, "6-29-2025.md"), "third")
	dest, err = MoveAvoidingCollision(filepath.Join(root, "6-29-2025.md"), destDir)
	if err != nil {
		t.Fatal(err)
	}
	if dest != filepath.Join(destDir, "6-29-2025(2).md") {
		t.Errorf("dest = %q, want (2) suffix", dest)
	}

	// Nothing was overwritten.
	data, err := os.ReadFile(filepath.Join(destDir, "6-29-2025.md"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "first" {
		t.Errorf("original file content = %q, want %q", data, "first")
	}
}

func TestExists(t *testing.T) {
	root := t.TempDir()
	if !New(root).Exists() {
		t.Error("existing directory should report Exists")
	}
	if New(filepath.Join(root, "missing")).Exists() {
		t.Error("missing directory should not report Exists")
	}
	file := filepath.Join(root, "file.md")
	writeFile(t, file, "")
	if New(file).Exists() {
		t.Error("a file is not a vault directory")
	}
}
