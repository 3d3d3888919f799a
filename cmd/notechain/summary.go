package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tmeadow/notechain/internal/link"
	"github.com/tmeadow/notechain/internal/organize"
	"github.com/tmeadow/notechain/internal/ui"
)

func renderOrganizeSummary(res *organize.Result) string {
	var b strings.Builder

	b.WriteString("\n" + ui.TitleStyle.Render("Organization summary") + "\n")
	fmt.Fprintf(&b, "  Files found:     %s\n", ui.CountStyle.Render(fmt.Sprint(res.Found)))
	fmt.Fprintf(&b, "  Files organized: %s\n", ui.CountStyle.Render(fmt.Sprint(res.Organized)))
	fmt.Fprintf(&b, "  Files skipped:   %s\n", ui.CountStyle.Render(fmt.Sprint(res.Skipped)))
	fmt.Fprintf(&b, "  Headings fixed:  %s\n", ui.CountStyle.Render(fmt.Sprint(res.HeadingsFixed)))

	if len(res.Errors) > 0 {
		fmt.Fprintf(&b, "\n%s\n", ui.ErrorStyle.Render(fmt.Sprintf("Errors (%d):", len(res.Errors))))
		for _, e := range res.Errors {
			fmt.Fprintf(&b, "  - %s\n", e)
		}
	}

	if len(res.FolderCounts) > 0 {
		b.WriteString("\nMonth folders:\n")
		for _, fc := range res.FolderCounts {
			fmt.Fprintf(&b, "  %s/  %s\n", fc.Folder, ui.DimText.Render(fmt.Sprintf("(%d files)", fc.Files)))
		}
	}

	return b.String()
}

func renderLinkSummary(res *link.Result) string {
	var b strings.Builder

	b.WriteString("\n" + ui.TitleStyle.Render("Linking summary") + "\n")
	fmt.Fprintf(&b, "  Links added:     %s\n", ui.CountStyle.Render(fmt.Sprint(res.Linked)))
	fmt.Fprintf(&b, "  Already linked:  %s\n", ui.CountStyle.Render(fmt.Sprint(res.AlreadyLinked)))
	fmt.Fprintf(&b, "  End of chain:    %s\n", ui.CountStyle.Render(fmt.Sprint(res.EndOfChain)))

	if len(res.Collisions) > 0 {
		fmt.Fprintf(&b, "\n%s\n", ui.WarnStyle.Render(fmt.Sprintf("Duplicate dates (%d), only the kept file is in the chain:", len(res.Collisions))))
		for _, c := range res.Collisions {
			fmt.Fprintf(&b, "  %s: kept %s, dropped %s\n",
				c.Date, filepath.Base(c.Kept), filepath.Base(c.Dropped))
		}
	}

	if len(res.Errors) > 0 {
		fmt.Fprintf(&b, "\n%s\n", ui.ErrorStyle.Render(fmt.Sprintf("Errors (%d):", len(res.Errors))))
		for _, e := range res.Errors {
			fmt.Fprintf(&b, "  - %s\n", e)
		}
	}

	return b.String()
}
