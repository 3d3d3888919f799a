package markdown

import (
	"strings"
	"testing"
)

func TestHasLeadingHeading(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"heading first", "# May 2, 2025\n\nhello", true},
		{"blank lines then heading", "\n\n# Title\n", true},
		{"deep heading first", "### Subsection\n", true},
		{"plain text", "hello", false},
		{"heading later", "hello\n\n# Title\n", false},
		{"frontmatter first", "---\ntitle: x\n---\n\n# Title\n", false},
		{"empty", "", false},
		{"list first", "- item\n# not first\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.HasLeadingHeading([]byte(tt.content)); got != tt.want {
				t.Errorf("HasLeadingHeading(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}

func TestPrependHeading(t *testing.T) {
	got := string(PrependHeading([]byte("hello"), "May 2, 2025"))
	want := "# May 2, 2025\n\nhello"
	if got != want {
		t.Errorf("PrependHeading = %q, want %q", got, want)
	}
}

func TestPrependHeading_ThenDetected(t *testing.T) {
	p := NewParser()
	fixed := PrependHeading([]byte("hello"), "May 2, 2025")
	if !p.HasLeadingHeading(fixed) {
		t.Error("prepended heading should be detected as a leading heading")
	}
	if strings.Count(string(fixed), "#") != 1 {
		t.Errorf("expected exactly one heading marker, got %q", fixed)
	}
}
