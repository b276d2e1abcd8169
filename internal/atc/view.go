package atc

import (
	"encoding/json"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/icosian/rdcparc/internal/view"
)

// BuildOptions parameterizes one accession build run.
type BuildOptions struct {
	MedicinesIndex string //path to the medicine index JSON
	DocumentsIndex string //path to the published-assessment index JSON
	RawDir         string //mirror root the document URLs map into
	AccessionDir   string //output directory of the accession
	Accession      string //accession identifier recorded in the metadata
}

// BuildSummary reports the volume of one build run.
type BuildSummary struct {
	Medicines          int
	Documents          int
	QualifyingProducts int
	UnmatchedDocuments int
}

// Build creates the agency accession: per-product file buckets under
// files/<product>/EMA/ whose links may point at not-yet-mirrored raw
// files, the By-ATC classification view on top of them, and the accession
// metadata record. Repeated runs skip entries that already exist.
func Build(opts BuildOptions) (stats view.Statistics, summary BuildSummary, err error) {
	medicines, err := LoadMedicines(opts.MedicinesIndex)
	if err != nil {
		return stats, summary, err
	}
	documents, err := LoadDocuments(opts.DocumentsIndex)
	if err != nil {
		return stats, summary, err
	}

	matched, unmatched := MatchDocuments(documents, medicines)
	qualifying := FilterQualifying(medicines, matched)

	summary = BuildSummary{
		Medicines:          len(medicines),
		Documents:          len(documents),
		QualifyingProducts: len(qualifying),
		UnmatchedDocuments: unmatched,
	}

	bucketLinks := make(map[string]map[string]string, len(qualifying))
	for _, productNumber := range sortedKeys(qualifying) {
		product := qualifying[productNumber]
		bucketLinks[productNumber] = createBucketLinks(opts, productNumber, product.Documents, &stats)
	}

	materializeTrie(BuildTrie(qualifying), filepath.Join(opts.AccessionDir, "By-ATC"), bucketLinks, &stats)

	qualifyingDocuments := 0
	for _, product := range qualifying {
		qualifyingDocuments += len(product.Documents)
	}
	if err := writeAccessionMetadata(opts, summary.QualifyingProducts, qualifyingDocuments, &stats); err != nil {
		return stats, summary, err
	}
	return stats, summary, nil
}

// createBucketLinks links every document of a product into its
// files/<product>/EMA/ bucket. Links point into the raw mirror and are
// allowed to dangle until the mirror catches up. Returns the link path per
// document URL for the classification view to reference.
func createBucketLinks(opts BuildOptions, productNumber string, documents []*Document, stats *view.Statistics) map[string]string {
	bucket := filepath.Join(opts.AccessionDir, "files", view.EscapeForPath(productNumber), "EMA")
	links := make(map[string]string, len(documents))

	for _, document := range documents {
		if document.URL == "" {
			continue
		}
		link := filepath.Join(bucket, document.Filename())
		links[document.URL] = link
		view.CreateSymlink(rawPathForURL(opts.RawDir, document.URL), link, true, stats)
	}
	return links
}

// rawPathForURL maps a document URL onto the local raw mirror, host
// included.
func rawPathForURL(rawDir string, documentURL string) string {
	parsed, err := url.Parse(documentURL)
	if err != nil {
		return filepath.Join(rawDir, documentURL)
	}
	return filepath.Join(rawDir, parsed.Host, filepath.FromSlash(parsed.Path))
}

// materializeTrie writes the classification hierarchy to disk. Product
// leaves become directories whose links point at the bucket links, so the
// view chains through the bucket rather than duplicating raw targets.
func materializeTrie(nodes map[string]Node, base string, bucketLinks map[string]map[string]string, stats *view.Statistics) {
	for _, fsName := range sortedKeys(nodes) {
		switch node := nodes[fsName].(type) {
		case *Leaf:
			productDir := filepath.Join(base, fsName)
			if err := view.WriteDisplayMetadata(productDir, node.Display, fsName); err != nil {
				stats.RecordError("failed to write metadata for %s: %s", productDir, err)
			}
			links := bucketLinks[node.Medicine.ProductNumber]
			for _, document := range node.Documents {
				target, linked := links[document.URL]
				if document.URL == "" || !linked {
					continue
				}
				view.CreateSymlink(target, filepath.Join(productDir, filepath.Base(target)), true, stats)
			}
		case *Branch:
			subdir := filepath.Join(base, fsName)
			if err := view.WriteDisplayMetadata(subdir, node.Display, fsName); err != nil {
				stats.RecordError("failed to write metadata for %s: %s", subdir, err)
			}
			materializeTrie(node.Children, subdir, bucketLinks, stats)
		}
	}
}

type accessionMetadata struct {
	Accession   string          `json:"accession"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Drug        string          `json:"drug"`
	Source      string          `json:"source"`
	License     licenseMetadata `json:"license"`
	Created     string          `json:"created"`
	RunID       string          `json:"run_id"`
	Stats       buildStats      `json:"stats"`
}

type licenseMetadata struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type buildStats struct {
	Products        int `json:"products"`
	Documents       int `json:"documents"`
	SymlinksCreated int `json:"symlinks_created"`
}

func writeAccessionMetadata(opts BuildOptions, products int, documents int, stats *view.Statistics) error {
	metadata := accessionMetadata{
		Accession:   opts.Accession,
		Title:       "EMA Public Documents",
		Description: "Public assessment reports and other documents for human medicines authorized by the European Medicines Agency.",
		Drug:        "Multiple (EMA database)",
		Source:      "https://www.ema.europa.eu/en/medicines",
		License: licenseMetadata{
			Name: "EMA Public",
			URL:  "https://www.ema.europa.eu/en/about-us/legal-notice",
		},
		Created: time.Now().Format(time.RFC3339),
		RunID:   uuid.NewString(),
		Stats: buildStats{
			Products:        products,
			Documents:       documents,
			SymlinksCreated: stats.SymlinksCreated,
		},
	}

	blob, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(opts.AccessionDir, fs.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(opts.AccessionDir, "metadata.json"), blob, fs.ModePerm)
}
