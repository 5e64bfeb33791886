package formatter

import (
	"fmt"
	"sort"
	"strings"
)

// Entry is a single icon row of the catalog.
type Entry struct {
	Name    string // component identifier
	Variant string // "outline" or "filled"
	Source  string // source file name, empty for components without a source
	Status  string // "converted", "skipped", "failed" or "existing"
	Error   string
}

// Report is the input of ToMarkdown.
type Report struct {
	Converted int
	Skipped   int
	Failed    int
	Total     int // components listed in the manifest
	Entries   []Entry
}

// ToMarkdown renders a generation run as a markdown catalog: a summary
// followed by a table of every icon sorted by component name, and a list of
// failures when there were any.
func ToMarkdown(r Report, title string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Icon Catalog - %s\n\n", title))

	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Converted**: %d\n", r.Converted))
	sb.WriteString(fmt.Sprintf("- **Skipped**: %d\n", r.Skipped))
	if r.Failed > 0 {
		sb.WriteString(fmt.Sprintf("- **Failed**: %d\n", r.Failed))
	}
	sb.WriteString(fmt.Sprintf("- **Total components**: %d\n\n", r.Total))

	entries := make([]Entry, len(r.Entries))
	copy(entries, r.Entries)
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	if len(entries) > 0 {
		sb.WriteString("## Icons\n\n")
		sb.WriteString("| Component | Variant | Source | Status |\n")
		sb.WriteString("|-----------|---------|--------|--------|\n")
		for _, e := range entries {
			name := e.Name
			if name == "" {
				name = "-"
			}
			source := "-"
			if e.Source != "" {
				source = fmt.Sprintf("`%s`", e.Source)
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", name, e.Variant, source, e.Status))
		}
		sb.WriteString("\n")
	}

	var failures []Entry
	for _, e := range entries {
		if e.Error != "" {
			failures = append(failures, e)
		}
	}

	if len(failures) > 0 {
		sb.WriteString("## Failures\n\n")
		for _, e := range failures {
			label := e.Source
			if label == "" {
				label = e.Name
			}
			sb.WriteString(fmt.Sprintf("- `%s`: %s\n", label, escapePipes(e.Error)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
