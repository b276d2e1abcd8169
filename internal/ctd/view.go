package ctd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/icosian/rdcparc/internal/view"
)

// Options parameterizes one CTD view generation run.
type Options struct {
	Sources   []string //directories holding the raw submission files
	Target    string   //root of the view to materialize
	Recursive bool     //descend into subdirectories of the sources
	Accession string   //key for manual mapping lookups
}

// Generate builds the CTD view: it scans the source directories, classifies
// every file by the section number in its name, and materializes the
// section hierarchy under the target as folders and symlinks. Chains of
// sections holding a single item are collapsed. Repeated runs skip
// entries that already exist.
//
// The returned slice lists files (relative to their source) that matched
// no recognized naming form and were left out of the view.
func Generate(opts Options) (stats view.Statistics, unmatched []string, err error) {
	tree := view.NewTree()
	var rootFiles []view.Entry

	for _, source := range opts.Sources {
		absolute, pathErr := filepath.Abs(source)
		if pathErr != nil {
			return stats, nil, fmt.Errorf("cannot resolve source %s: %w", source, pathErr)
		}
		if _, statErr := os.Stat(absolute); statErr != nil {
			stats.RecordError("source directory not found: %s", absolute)
			continue
		}
		unmatched = append(unmatched, scanSource(absolute, absolute, opts, tree, &rootFiles)...)
	}

	if err = view.EnsureDir(opts.Target, &stats); err != nil {
		return stats, unmatched, fmt.Errorf("cannot create view root %s: %w", opts.Target, err)
	}

	tree.Materialize(opts.Target, FolderName, &stats)
	for _, file := range rootFiles {
		view.CreateSymlink(file.Target, filepath.Join(opts.Target, file.Name), false, &stats)
	}

	sort.Strings(unmatched)
	return stats, unmatched, nil
}

func scanSource(dir string, base string, opts Options, tree *view.Node, rootFiles *[]view.Entry) (unmatched []string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if opts.Recursive {
				unmatched = append(unmatched, scanSource(path, base, opts, tree, rootFiles)...)
			}
			continue
		}

		components, linkName, ok := ParseInfo(entry.Name(), opts.Accession)
		if !ok {
			relative, relErr := filepath.Rel(base, path)
			if relErr != nil {
				relative = path
			}
			unmatched = append(unmatched, relative)
			continue
		}
		if linkName == "" {
			linkName = entry.Name()
		}

		file := view.Entry{Name: linkName, Target: path}
		if len(components) == 0 {
			*rootFiles = append(*rootFiles, file)
		} else {
			tree.Insert(components, file)
		}
	}
	return
}
