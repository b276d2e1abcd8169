package toc

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/icosian/rdcparc/internal/view"
)

const (
	tocFileName      = "toc.json"
	markdownFileName = "toc.md"
	splitDepth       = 3 //two levels below the accession folder
)

var accessionPattern = regexp.MustCompile(`^RDCP-[A-Z]?\d{2}-\d{4}$|^RDCP-E26-EMA$`)

// housekeeping files that never appear in the table of contents
var skippedNames = map[string]bool{
	"metadata.json":        true,
	view.MetadataFileName:  true,
	".gitignore":           true,
	".gitkeep":             true,
	"index.json":           true,
	"index.md":             true,
	"index-full.json":      true,
	"index-full.md":        true,
	tocFileName:            true,
	markdownFileName:       true,
}

// Entry is one node of the table of contents. Folders carry children,
// split-point folders carry a $ref to their own toc.json instead.
type Entry struct {
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Path      string   `json:"path"`
	Size      int64    `json:"size,omitempty"`
	Ref       string   `json:"$ref,omitempty"`
	Title     string   `json:"title,omitempty"`
	Summary   string   `json:"summary,omitempty"`
	Date      string   `json:"date,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Drug      string   `json:"drug,omitempty"`
	Accession string   `json:"accession,omitempty"`
	License   any      `json:"license,omitempty"`
	Children  []*Entry `json:"children,omitempty"`
}

// Options configures a table of contents run over one documents tree.
type Options struct {
	Root    string //directory holding the accession folders
	BaseURL string //deep-link prefix for the markdown rendering
}

// Summary reports what a run produced.
type Summary struct {
	Accessions int
	Folders    int
	Files      int
	SplitTocs  int
}

// inherited metadata flows from accession folders down to every entry below
type inheritance struct {
	drug      string
	accession string
	license   any
}

type generator struct {
	opts    Options
	summary Summary
}

// Generate scans the documents tree and writes toc.json and toc.md at its
// root, plus a toc.json per split-point folder referenced through $ref stubs.
func Generate(opts Options) (Summary, error) {
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return Summary{}, err
	}
	opts.Root = root
	gen := &generator{opts: opts}

	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return Summary{}, fmt.Errorf("reading documents tree: %w", err)
	}

	var accessions []*Entry
	for _, dirEntry := range dirEntries {
		if !dirEntry.IsDir() || !accessionPattern.MatchString(dirEntry.Name()) {
			continue
		}
		entry, scanErr := gen.scanFolder(filepath.Join(root, dirEntry.Name()), dirEntry.Name(), 1, inheritance{})
		if scanErr != nil {
			return gen.summary, scanErr
		}
		accessions = append(accessions, entry)
		gen.summary.Accessions++
	}
	sort.Slice(accessions, func(i, j int) bool {
		return entryLess(accessions[i], accessions[j], 0)
	})

	toc := &Entry{Name: path.Base(root), Type: "folder", Path: ".", Children: accessions}
	if err := writeJSON(filepath.Join(root, tocFileName), toc); err != nil {
		return gen.summary, err
	}
	markdown := renderMarkdown(toc, opts.BaseURL)
	if err := os.WriteFile(filepath.Join(root, markdownFileName), []byte(markdown), 0o644); err != nil {
		return gen.summary, err
	}
	return gen.summary, nil
}

func (g *generator) scanFolder(dir string, relPath string, depth int, inherited inheritance) (*Entry, error) {
	entry := &Entry{Name: filepath.Base(dir), Type: "folder", Path: relPath}

	metadata := loadFolderMetadata(dir)
	applyFolderMetadata(entry, metadata)
	if displayName := view.ReadDisplayMetadata(dir); displayName != "" {
		entry.Title = displayName
	}
	inherited = inherited.updated(entry, metadata)
	entry.Drug = inherited.drug
	entry.Accession = inherited.accession
	if entry.License == nil {
		entry.License = inherited.license
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", relPath, err)
	}
	for _, dirEntry := range dirEntries {
		name := dirEntry.Name()
		if skippedNames[name] {
			continue
		}
		childPath := path.Join(relPath, name)
		if dirEntry.IsDir() {
			child, scanErr := g.scanFolder(filepath.Join(dir, name), childPath, depth+1, inherited)
			if scanErr != nil {
				return nil, scanErr
			}
			if depth+1 == splitDepth {
				stub, splitErr := g.splitOff(filepath.Join(dir, name), child)
				if splitErr != nil {
					return nil, splitErr
				}
				child = stub
			}
			entry.Children = append(entry.Children, child)
			g.summary.Folders++
		} else {
			entry.Children = append(entry.Children, fileEntry(filepath.Join(dir, name), name, childPath, metadata, inherited))
			g.summary.Files++
		}
	}
	sort.Slice(entry.Children, func(i, j int) bool {
		return entryLess(entry.Children[i], entry.Children[j], depth)
	})
	return entry, nil
}

// splitOff writes the folder's subtree to its own toc.json and returns a
// stub entry pointing at it, keeping the root toc small.
func (g *generator) splitOff(dir string, full *Entry) (*Entry, error) {
	if err := writeJSON(filepath.Join(dir, tocFileName), full); err != nil {
		return nil, err
	}
	g.summary.SplitTocs++
	return &Entry{
		Name:      full.Name,
		Type:      full.Type,
		Path:      full.Path,
		Ref:       path.Join(full.Path, tocFileName),
		Title:     full.Title,
		Drug:      full.Drug,
		Accession: full.Accession,
	}, nil
}

func fileEntry(fullPath string, name string, relPath string, folderMetadata map[string]any, inherited inheritance) *Entry {
	entry := &Entry{
		Name:      name,
		Type:      fileType(name),
		Path:      relPath,
		Drug:      inherited.drug,
		Accession: inherited.accession,
	}
	// symlinked entries report the target's size, dangling ones stay at zero
	if info, err := os.Stat(fullPath); err == nil {
		entry.Size = info.Size()
	}
	if perFile, listed := folderMetadata["files"].(map[string]any); listed {
		if fields, found := perFile[name].(map[string]any); found {
			entry.Title = stringField(fields, "title")
			entry.Summary = stringField(fields, "summary")
			entry.Date = stringField(fields, "date")
			entry.Tags = stringListField(fields, "tags")
		}
	}
	return entry
}

func fileType(name string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	if ext == "" {
		return "file"
	}
	return ext
}

func (i inheritance) updated(entry *Entry, metadata map[string]any) inheritance {
	if drug := stringField(metadata, "drug"); drug != "" {
		i.drug = drug
	} else if drug := stringField(metadata, "drugName"); drug != "" {
		i.drug = drug
	}
	if accession := stringField(metadata, "accession"); accession != "" {
		i.accession = accession
	} else if accessionPattern.MatchString(entry.Name) {
		i.accession = entry.Name
	}
	if license, listed := metadata["license"]; listed {
		i.license = license
	}
	return i
}

func loadFolderMetadata(dir string) map[string]any {
	blob, err := os.ReadFile(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return nil
	}
	var metadata map[string]any
	if json.Unmarshal(blob, &metadata) != nil {
		return nil
	}
	return metadata
}

func applyFolderMetadata(entry *Entry, metadata map[string]any) {
	entry.Title = stringField(metadata, "title")
	entry.Summary = stringField(metadata, "description")
	if entry.Summary == "" {
		entry.Summary = stringField(metadata, "summary")
	}
	if license, listed := metadata["license"]; listed {
		entry.License = license
	}
}

func stringField(fields map[string]any, key string) string {
	value, _ := fields[key].(string)
	return value
}

func stringListField(fields map[string]any, key string) []string {
	raw, _ := fields[key].([]any)
	var values []string
	for _, item := range raw {
		if value, isString := item.(string); isString {
			values = append(values, value)
		}
	}
	return values
}

func writeJSON(target string, payload any) error {
	blob, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(target, append(blob, '\n'), 0o644)
}
