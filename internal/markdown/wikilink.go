package markdown

import (
	"bufio"
	"bytes"
	"strings"
)

// WikiLink is one [[wiki link]] occurrence.
type WikiLink struct {
	Target string // note name, section and alias suffixes stripped
	Line   int    // 1-based line number
}

// ExtractWikiLinks finds every [[wiki link]] in content. Section and alias
// forms ([[note#section]], [[note|alias]]) reduce to their target. Links are
// collected from the whole document, frontmatter included: for dedup purposes
// a link anywhere counts.
func ExtractWikiLinks(content []byte) []WikiLink {
	var links []WikiLink
	scanner := bufio.NewScanner(bytes.NewReader(content))

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		for pos := 0; ; {
			open := strings.Index(line[pos:], "[[")
			if open == -1 {
				break
			}
			start := pos + open + 2

			end := strings.Index(line[start:], "]]")
			if end == -1 {
				break
			}
			inner := line[start : start+end]
			pos = start + end + 2

			if i := strings.IndexAny(inner, "#|"); i != -1 {
				inner = inner[:i]
			}
			inner = strings.TrimSpace(inner)
			if inner == "" {
				continue
			}

			links = append(links, WikiLink{Target: inner, Line: lineNum})
		}
	}

	return links
}

// LinksTo reports whether content already wikilinks the given note stem.
// A target written with its .md extension matches the bare stem too.
func LinksTo(content []byte, stem string) bool {
	for _, l := range ExtractWikiLinks(content) {
		if l.Target == stem || l.Target == stem+".md" {
			return true
		}
	}
	return false
}
