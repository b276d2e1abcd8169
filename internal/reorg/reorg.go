// Package reorg rearranges raw acquisition folders into the curated
// accession layout. It never moves or copies payload data: every mapping
// materializes as an absolute symlink into the raw mirror, so the curated
// tree can be rebuilt from scratch at any time.
package reorg

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/icosian/rdcparc/internal/view"
)

// Mapping links one raw location into the curated tree. With Children set
// the source directory itself stays hidden and each of its entries is
// linked under Dest instead.
type Mapping struct {
	Source   string `mapstructure:"source" yaml:"source"`
	Dest     string `mapstructure:"dest" yaml:"dest"`
	Children bool   `mapstructure:"children" yaml:"children,omitempty"`
}

// Options configures one reorganization run.
type Options struct {
	RawRoot     string //prefix for relative mapping sources
	CuratedRoot string //prefix for relative mapping destinations
	Mappings    []Mapping
}

// Apply materializes every mapping whose source exists. Sources missing
// from the raw mirror are skipped without error, partial acquisitions are
// routine.
func Apply(opts Options) (view.Statistics, error) {
	var stats view.Statistics
	for _, mapping := range opts.Mappings {
		if mapping.Source == "" || mapping.Dest == "" {
			stats.RecordError("mapping with empty source or dest (source=%q dest=%q)", mapping.Source, mapping.Dest)
			continue
		}
		source := resolveAgainst(opts.RawRoot, mapping.Source)
		dest := resolveAgainst(opts.CuratedRoot, mapping.Dest)
		if _, err := os.Stat(source); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			stats.RecordError("checking %s: %s", source, err)
			continue
		}
		if mapping.Children {
			if err := linkChildren(source, dest, &stats); err != nil {
				return stats, err
			}
			continue
		}
		if err := linkOne(source, dest, &stats); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

func linkChildren(source string, dest string, stats *view.Statistics) error {
	entries, err := os.ReadDir(source)
	if err != nil {
		return fmt.Errorf("listing %s: %w", source, err)
	}
	for _, entry := range entries {
		if err := linkOne(filepath.Join(source, entry.Name()), filepath.Join(dest, entry.Name()), stats); err != nil {
			return err
		}
	}
	return nil
}

func linkOne(source string, dest string, stats *view.Statistics) error {
	if err := view.EnsureDir(filepath.Dir(dest), stats); err != nil {
		return err
	}
	view.CreateAbsoluteSymlink(source, dest, stats)
	return nil
}

func resolveAgainst(root string, path string) string {
	if filepath.IsAbs(path) || root == "" {
		return path
	}
	return filepath.Join(root, path)
}
