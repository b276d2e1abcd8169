package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configFixture = `
base_url: https://archive.example.org
accessions:
  - id: RDCP-26-0003
    title: Examplinib Trial Archive
    drug: Examplinib
    sources:
      - Clinical-Studies
      - Regulatory
    views: [ctd, date]
    mappings:
      - source: batch-1/report.pdf
        dest: RDCP-26-0003/Clinical-Studies/report.pdf
      - source: dump
        dest: RDCP-26-0003/Additional-Items
        children: true
  - id: RDCP-E26-EMA
    views: [atc]
ema:
  medicines_index: _raw/ema/medicines.json
  documents_index: _raw/ema/documents.json
  accession: RDCP-E26-EMA
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, configFixture)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Dir(path), cfg.Root, "root defaults to the config file's directory")
	assert.Equal(t, "_raw", cfg.RawDir)
	assert.Equal(t, "https://archive.example.org", cfg.BaseURL)
	require.Len(t, cfg.Accessions, 2)

	accession, found := cfg.Accession("RDCP-26-0003")
	require.True(t, found)
	assert.Equal(t, "Examplinib", accession.Drug)
	assert.Equal(t, []string{"ctd", "date"}, accession.Views)
	require.Len(t, accession.Mappings, 2)
	assert.True(t, accession.Mappings[1].Children)

	assert.Equal(t, filepath.Join(cfg.Root, "_raw"), cfg.RawRoot())
	assert.Equal(t, filepath.Join(cfg.Root, "documents", "RDCP-E26-EMA"), cfg.AccessionDir("RDCP-E26-EMA"))
}

func TestLoadSearchesUpward(t *testing.T) {
	path := writeConfig(t, configFixture)
	nested := filepath.Join(filepath.Dir(path), "documents", "RDCP-26-0003")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(cwd) })
	require.NoError(t, os.Chdir(nested))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Len(t, cfg.Accessions, 2)
}

func TestLoadEnvironmentOverride(t *testing.T) {
	path := writeConfig(t, configFixture)
	t.Setenv("RDCPARC_BASE_URL", "https://mirror.example.net")
	t.Setenv("RDCPARC_RAW_DIR", "_downloads")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://mirror.example.net", cfg.BaseURL, "environment beats the file")
	assert.Equal(t, "_downloads", cfg.RawDir, "environment beats the default")
}

func TestLoadRejectsBadAccessionID(t *testing.T) {
	path := writeConfig(t, "accessions:\n  - id: not-an-accession\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid accession identifier")
}

func TestLoadRejectsUnknownView(t *testing.T) {
	path := writeConfig(t, "accessions:\n  - id: RDCP-26-0003\n    views: [hologram]\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown view "hologram"`)
}

func TestLoadRejectsSourcelessView(t *testing.T) {
	path := writeConfig(t, "accessions:\n  - id: RDCP-26-0003\n    views: [ctd]\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `view "ctd" needs sources`)
}

func TestLoadRejectsDuplicateAccession(t *testing.T) {
	path := writeConfig(t, "accessions:\n  - id: RDCP-26-0003\n  - id: RDCP-26-0003\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate accession")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	assert.Error(t, err)
}

func TestDump(t *testing.T) {
	path := writeConfig(t, configFixture)
	cfg, err := Load(path)
	require.NoError(t, err)

	dumped, err := cfg.Dump()
	require.NoError(t, err)
	assert.Contains(t, dumped, "id: RDCP-26-0003")
	assert.Contains(t, dumped, "children: true")
}
