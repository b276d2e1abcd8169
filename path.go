package rdcparc

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/icosian/rdcparc/internal"
	"github.com/icosian/rdcparc/internal/output"
)

const docsRootScheme = "docs:" + string(filepath.Separator) + string(filepath.Separator)

func (a *archivist) displayablePath(absolutePath string, shortenDocumentsRoot bool, omitDotSlash bool) string {
	pleasant := pleasantPath(filepath.Clean(absolutePath), a.cfg.DocumentsRoot(), mustGetwd(), shortenDocumentsRoot, omitDotSlash)
	if a.fancyTerminalFeatures && strings.HasPrefix(pleasant, docsRootScheme) {
		pleasant = strings.Replace(pleasant, docsRootScheme, output.TerminalFormatAsDim(docsRootScheme), 1)
	}
	return pleasant
}

const dot string = "."
const dirSeparator = string(filepath.Separator)
const dotDirSeparator = dot + dirSeparator
const doubleDot = dot + dot
const doubleDotDirSeparator = doubleDot + dirSeparator

func isChildOf(child string, parent string) bool {
	rel, err := filepath.Rel(parent, child)
	internal.AssertNoError(err, "paths should both be nice and not of mixed nature")
	return !(rel == dot || rel == doubleDot || strings.HasPrefix(rel, doubleDotDirSeparator))
}

// pleasantPath turns an absolute path into something easily understandable from the current context.
// If the working directory is inside the documents tree a relative path is emitted, with leading "./" to stress relativity (opt-out possible).
// If the current location is outside the documents tree an anchored path is printed and the tree root is abbreviated.
// If the [absolute] input path is a target outside the documents tree it is reflected unchanged.
func pleasantPath(absolute string, root string, wd string, collapseRoot bool, omitDotSlash bool) string {
	if wdAboveRoot := isChildOf(root, wd); wdAboveRoot {
		if !collapseRoot {
			return absolute
		}
		anchored, _ := filepath.Rel(root, absolute) //error impossible because both are rooted
		return docsRootScheme + anchored
	}

	prefix := ""
	relative, _ := filepath.Rel(wd, absolute) //error impossible because both are rooted
	if !omitDotSlash && !strings.HasPrefix(relative, doubleDotDirSeparator) {
		prefix = dotDirSeparator
	}
	return prefix + relative
}

func mustGetwd() string {
	wd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return wd
}
