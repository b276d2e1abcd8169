// Package config loads the archive configuration. One rdcparc.yaml at the
// archive root describes the accessions, their raw-to-curated mappings, and
// the views to build for each.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/icosian/rdcparc/internal/reorg"
)

const FileName = "rdcparc.yaml"

var accessionIDPattern = regexp.MustCompile(`^RDCP-[A-Z]?\d{2}-\d{4}$|^RDCP-E26-EMA$`)

var knownViews = map[string]bool{
	"ctd":  true,
	"date": true,
	"atc":  true,
}

// Config is the archive-wide configuration.
type Config struct {
	Root         string      `mapstructure:"root" yaml:"root"`
	RawDir       string      `mapstructure:"raw_dir" yaml:"raw_dir"`
	DocumentsDir string      `mapstructure:"documents_dir" yaml:"documents_dir"`
	BaseURL      string      `mapstructure:"base_url" yaml:"base_url"`
	Accessions   []Accession `mapstructure:"accessions" yaml:"accessions"`
	EMA          EMAConfig   `mapstructure:"ema" yaml:"ema"`
}

// Accession describes one archived drug program.
type Accession struct {
	ID            string          `mapstructure:"id" yaml:"id"`
	Title         string          `mapstructure:"title" yaml:"title,omitempty"`
	Drug          string          `mapstructure:"drug" yaml:"drug,omitempty"`
	Sources       []string        `mapstructure:"sources" yaml:"sources,omitempty"`
	StripPatterns []string        `mapstructure:"strip_patterns" yaml:"strip_patterns,omitempty"`
	Mappings      []reorg.Mapping `mapstructure:"mappings" yaml:"mappings,omitempty"`
	Views         []string        `mapstructure:"views" yaml:"views,omitempty"`
}

// EMAConfig points at the downloaded EMA index files for the synthetic
// EMA accession.
type EMAConfig struct {
	MedicinesIndex string `mapstructure:"medicines_index" yaml:"medicines_index,omitempty"`
	DocumentsIndex string `mapstructure:"documents_index" yaml:"documents_index,omitempty"`
	Accession      string `mapstructure:"accession" yaml:"accession,omitempty"`
}

// Load reads the configuration from the given file. With an empty path the
// file is searched upward from the working directory, so commands work from
// anywhere inside the archive.
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := findUpward()
		if err != nil {
			return nil, err
		}
		path = found
	}

	loader := viper.New()
	loader.SetConfigFile(path)
	loader.SetConfigType("yaml")
	loader.SetEnvPrefix("RDCPARC")
	loader.AutomaticEnv()
	loader.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	loader.SetDefault("raw_dir", "_raw")
	loader.SetDefault("documents_dir", "documents")
	loader.SetDefault("base_url", "https://archive.icosian.net")

	if err := loader.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var cfg Config
	if err := loader.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Root == "" {
		cfg.Root = filepath.Dir(path)
	}
	if !filepath.IsAbs(cfg.Root) {
		cfg.Root = filepath.Join(filepath.Dir(path), cfg.Root)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func findUpward() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, statErr := os.Stat(candidate); statErr == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("no " + FileName + " found here or in any parent directory")
		}
		dir = parent
	}
}

// Validate checks the parts that would otherwise fail halfway through a
// build: accession identifiers, view names, duplicate accessions.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Accessions))
	for _, accession := range c.Accessions {
		if !accessionIDPattern.MatchString(accession.ID) {
			return fmt.Errorf("invalid accession identifier %q", accession.ID)
		}
		if seen[accession.ID] {
			return fmt.Errorf("duplicate accession %s", accession.ID)
		}
		seen[accession.ID] = true
		for _, viewName := range accession.Views {
			if !knownViews[viewName] {
				return fmt.Errorf("accession %s: unknown view %q", accession.ID, viewName)
			}
			if (viewName == "ctd" || viewName == "date") && len(accession.Sources) == 0 {
				return fmt.Errorf("accession %s: view %q needs sources", accession.ID, viewName)
			}
		}
	}
	return nil
}

// RawRoot returns the absolute raw mirror directory.
func (c *Config) RawRoot() string {
	return filepath.Join(c.Root, c.RawDir)
}

// DocumentsRoot returns the absolute curated documents directory.
func (c *Config) DocumentsRoot() string {
	return filepath.Join(c.Root, c.DocumentsDir)
}

// AccessionDir returns the curated directory of one accession.
func (c *Config) AccessionDir(id string) string {
	return filepath.Join(c.DocumentsRoot(), id)
}

// Accession looks up an accession by identifier.
func (c *Config) Accession(id string) (*Accession, bool) {
	for i := range c.Accessions {
		if c.Accessions[i].ID == id {
			return &c.Accessions[i], true
		}
	}
	return nil, false
}

// Dump renders the effective configuration as YAML.
func (c *Config) Dump() (string, error) {
	blob, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(blob), nil
}
