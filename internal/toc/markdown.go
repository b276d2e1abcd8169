package toc

import (
	"fmt"
	"strings"

	"github.com/icosian/rdcparc/internal/output"
)

// renderMarkdown flattens the table of contents into a browsable markdown
// page: an accession overview table followed by per-accession listings with
// deep links into the published archive.
func renderMarkdown(toc *Entry, baseURL string) string {
	var page strings.Builder
	page.WriteString("# Table of Contents\n\n")

	page.WriteString("| Accession | Drug | Title |\n")
	page.WriteString("|-----------|------|-------|\n")
	for _, accession := range toc.Children {
		fmt.Fprintf(&page, "| [%s](#%s) | %s | %s |\n",
			accession.Name, anchorFor(accession.Name), accession.Drug, accession.Title)
	}
	page.WriteString("\n")

	for _, accession := range toc.Children {
		fmt.Fprintf(&page, "## %s\n\n", accession.Name)
		if accession.Title != "" {
			fmt.Fprintf(&page, "%s\n\n", accession.Title)
		}
		renderChildren(&page, accession.Children, baseURL, 0)
		page.WriteString("\n")
	}
	return page.String()
}

func renderChildren(page *strings.Builder, entries []*Entry, baseURL string, indent int) {
	prefix := strings.Repeat("  ", indent)
	for _, entry := range entries {
		label := entry.Name
		if entry.Title != "" && entry.Title != entry.Name {
			label = entry.Title
		}
		size := ""
		if entry.Type != "folder" && entry.Size > 0 {
			size = " - " + output.Filesize(entry.Size)
		}
		fmt.Fprintf(page, "%s- [%s](%s)%s\n", prefix, label, deepLink(baseURL, entry.Path), size)
		renderChildren(page, entry.Children, baseURL, indent+1)
	}
}

func deepLink(baseURL string, relPath string) string {
	escaped := strings.ReplaceAll(relPath, " ", "%20")
	return strings.TrimRight(baseURL, "/") + "/" + escaped
}

func anchorFor(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}
