package rdcparc

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/icosian/rdcparc/internal/output"
	"github.com/icosian/rdcparc/internal/view"
)

// VerifyReport classifies every symlink of the curated tree.
type VerifyReport struct {
	Resolved     int
	Broken       []string //paths relative to the documents root
	Unresolvable []string //chains beyond the hop limit, cycle suspects
}

func (r VerifyReport) Clean() bool {
	return len(r.Broken) == 0 && len(r.Unresolvable) == 0
}

func (a *archivist) Verify() (VerifyReport, error) {
	var report VerifyReport
	root := a.cfg.DocumentsRoot()
	err := walkLinks(root, func(relPath string, state view.LinkState) {
		switch state {
		case view.LinkResolved:
			report.Resolved++
		case view.LinkBroken:
			report.Broken = append(report.Broken, relPath)
		case view.LinkUnresolvable:
			report.Unresolvable = append(report.Unresolvable, relPath)
		}
	})
	if err != nil {
		return report, newBuildError("verifying links", err)
	}

	a.print.Out(output.Normal, "%d resolved %s\n", report.Resolved, output.Plural(report.Resolved, "link", "links"))
	for _, relPath := range report.Broken {
		a.print.Out(output.Required, "BROKEN %s\n", relPath)
	}
	for _, relPath := range report.Unresolvable {
		a.print.Out(output.Required, "CYCLE? %s\n", relPath)
	}
	if !report.Clean() {
		issues := len(report.Broken) + len(report.Unresolvable)
		a.print.Out(output.Error, "%d %s found\n", issues, output.Plural(issues, "issue", "issues"))
	}
	return report, nil
}

func (a *archivist) PrintTree(onlyBroken bool) error {
	root := a.cfg.DocumentsRoot()
	tree := output.NewVisualFileTree(a.displayablePath(root, false, true) + dirSeparator)
	err := walkLinks(root, func(relPath string, state view.LinkState) {
		prefix := ""
		switch state {
		case view.LinkResolved:
			if onlyBroken {
				return
			}
		case view.LinkBroken:
			prefix = a.markerFor("[broken] ")
		case view.LinkUnresolvable:
			prefix = a.markerFor("[cycle?] ")
		}
		tree.InsertPath(relPath, prefix)
	})
	if err != nil {
		return newBuildError("scanning tree", err)
	}
	a.print.Out(output.Required, "%s", tree.Render())
	return nil
}

func (a *archivist) markerFor(marker string) string {
	if a.fancyTerminalFeatures {
		return output.TerminalFormatAsError(marker)
	}
	return marker
}

// walkLinks visits every symlink below root in lexical order, without
// descending into linked directories (the views alias large parts of the
// tree into each other, following them would multiply every report).
func walkLinks(root string, visit func(relPath string, state view.LinkState)) error {
	if _, err := os.Stat(root); err != nil {
		return err
	}
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.Type()&fs.ModeSymlink == 0 {
			return nil
		}
		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		_, state, _ := view.FollowLink(path)
		visit(relPath, state)
		return nil
	})
}
