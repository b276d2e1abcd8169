package rdcparc

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/icosian/rdcparc/internal/atc"
	"github.com/icosian/rdcparc/internal/buildlock"
	"github.com/icosian/rdcparc/internal/config"
	"github.com/icosian/rdcparc/internal/ctd"
	"github.com/icosian/rdcparc/internal/dateview"
	"github.com/icosian/rdcparc/internal/output"
	"github.com/icosian/rdcparc/internal/reorg"
	"github.com/icosian/rdcparc/internal/toc"
	"github.com/icosian/rdcparc/internal/view"
)

const (
	ctdViewFolder  = "CTD"
	dateViewFolder = "By-Date"
)

func (a *archivist) Reorganize(accessionIDs ...string) error {
	accessions, err := a.selectAccessions(accessionIDs, func(accession *config.Accession) bool {
		return len(accession.Mappings) > 0
	})
	if err != nil {
		return err
	}
	for _, accession := range accessions {
		a.log.Infow("reorganizing raw folders", "accession", accession.ID)
		stats, applyErr := reorg.Apply(reorg.Options{
			RawRoot:     a.cfg.RawRoot(),
			CuratedRoot: a.cfg.DocumentsRoot(),
			Mappings:    accession.Mappings,
		})
		if applyErr != nil {
			return newBuildError(fmt.Sprintf("reorganizing %s", accession.ID), applyErr)
		}
		a.reportStats(accession.ID+" reorganization", stats)
	}
	return nil
}

func (a *archivist) BuildCTD(accessionIDs ...string) error {
	accessions, err := a.selectAccessions(accessionIDs, hasView("ctd"))
	if err != nil {
		return err
	}
	for _, accession := range accessions {
		a.log.Infow("building CTD view", "accession", accession.ID)
		stats, unmatched, generateErr := ctd.Generate(ctd.Options{
			Sources:   a.accessionSources(accession),
			Target:    filepath.Join(a.cfg.AccessionDir(accession.ID), ctdViewFolder),
			Recursive: true,
			Accession: accession.ID,
		})
		if generateErr != nil {
			return newBuildError(fmt.Sprintf("building CTD view of %s", accession.ID), generateErr)
		}
		for _, path := range unmatched {
			a.log.Debugw("no CTD section recognized", "accession", accession.ID, "file", path)
		}
		if len(unmatched) > 0 {
			a.print.Out(output.Normal, "%s: %d file(s) without a recognizable CTD section\n", accession.ID, len(unmatched))
		}
		a.reportStats(accession.ID+" CTD view", stats)
	}
	return nil
}

func (a *archivist) BuildDate(accessionIDs ...string) error {
	accessions, err := a.selectAccessions(accessionIDs, hasView("date"))
	if err != nil {
		return err
	}
	for _, accession := range accessions {
		a.log.Infow("building chronological view", "accession", accession.ID)
		stats, undated, generateErr := dateview.Generate(dateview.Options{
			Sources:       a.accessionSources(accession),
			Target:        filepath.Join(a.cfg.AccessionDir(accession.ID), dateViewFolder),
			StripPatterns: accession.StripPatterns,
		})
		if generateErr != nil {
			return newBuildError(fmt.Sprintf("building chronological view of %s", accession.ID), generateErr)
		}
		for _, path := range undated {
			a.log.Debugw("no date recognized", "accession", accession.ID, "entry", path)
		}
		a.reportStats(accession.ID+" chronological view", stats)
	}
	return nil
}

func (a *archivist) BuildEMA() error {
	ema := a.cfg.EMA
	if ema.MedicinesIndex == "" || ema.DocumentsIndex == "" {
		return newBuildError("EMA build not configured", nil)
	}
	accession := ema.Accession
	if accession == "" {
		accession = "RDCP-E26-EMA"
	}
	a.log.Infow("building EMA accession", "accession", accession)
	stats, summary, err := atc.Build(atc.BuildOptions{
		MedicinesIndex: a.resolveAgainstRoot(ema.MedicinesIndex),
		DocumentsIndex: a.resolveAgainstRoot(ema.DocumentsIndex),
		RawDir:         a.cfg.RawRoot(),
		AccessionDir:   a.cfg.AccessionDir(accession),
		Accession:      accession,
	})
	if err != nil {
		return newBuildError("building EMA accession", err)
	}
	a.print.Out(output.Normal, "%s: %d medicines, %d documents, %d qualifying products, %d unmatched documents\n",
		accession, summary.Medicines, summary.Documents, summary.QualifyingProducts, summary.UnmatchedDocuments)
	a.reportStats(accession+" build", stats)
	return nil
}

func (a *archivist) BuildTOC() error {
	a.log.Infow("generating table of contents", "root", a.cfg.DocumentsRoot())
	summary, err := toc.Generate(toc.Options{
		Root:    a.cfg.DocumentsRoot(),
		BaseURL: a.cfg.BaseURL,
	})
	if err != nil {
		return newBuildError("generating table of contents", err)
	}
	a.print.Out(output.Normal, "Table of contents: %d accession(s), %d folder(s), %d file(s), %d split toc(s)\n",
		summary.Accessions, summary.Folders, summary.Files, summary.SplitTocs)
	return nil
}

func (a *archivist) BuildAll() error {
	lock, err := buildlock.Acquire(a.cfg.Root)
	if err != nil {
		return newBuildError("archive build", err)
	}
	defer func() {
		if releaseErr := lock.Release(); releaseErr != nil {
			a.log.Warnw("releasing build lock failed", "error", releaseErr)
		}
	}()

	runLog := a.log.With("run", uuid.NewString())
	previousLog := a.log
	a.log = runLog
	defer func() { a.log = previousLog }()

	if err := a.Reorganize(); err != nil {
		return err
	}
	if err := a.BuildCTD(); err != nil {
		return err
	}
	if err := a.BuildDate(); err != nil {
		return err
	}
	if a.cfg.EMA.MedicinesIndex != "" && a.cfg.EMA.DocumentsIndex != "" {
		if err := a.BuildEMA(); err != nil {
			return err
		}
	}

	var aliasStats view.Statistics
	if err := view.CreateURLAliases(a.cfg.DocumentsRoot(), &aliasStats); err != nil {
		return newBuildError("creating URL aliases", err)
	}
	a.reportStats("URL aliases", aliasStats)

	return a.BuildTOC()
}

// selectAccessions resolves explicit identifiers or, given none, picks every
// accession the predicate accepts.
func (a *archivist) selectAccessions(ids []string, accepted func(*config.Accession) bool) ([]*config.Accession, error) {
	var selected []*config.Accession
	if len(ids) == 0 {
		for i := range a.cfg.Accessions {
			if accepted(&a.cfg.Accessions[i]) {
				selected = append(selected, &a.cfg.Accessions[i])
			}
		}
		return selected, nil
	}
	for _, id := range ids {
		accession, found := a.cfg.Accession(id)
		if !found {
			return nil, newBuildError(id, ErrUnknownAccession)
		}
		selected = append(selected, accession)
	}
	return selected, nil
}

func hasView(name string) func(*config.Accession) bool {
	return func(accession *config.Accession) bool {
		for _, viewName := range accession.Views {
			if viewName == name {
				return true
			}
		}
		return false
	}
}

// accessionSources resolves the configured source folders against the
// accession's curated directory.
func (a *archivist) accessionSources(accession *config.Accession) []string {
	resolved := make([]string, 0, len(accession.Sources))
	for _, source := range accession.Sources {
		if filepath.IsAbs(source) {
			resolved = append(resolved, source)
			continue
		}
		resolved = append(resolved, filepath.Join(a.cfg.AccessionDir(accession.ID), source))
	}
	return resolved
}

func (a *archivist) resolveAgainstRoot(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(a.cfg.Root, path)
}

func (a *archivist) reportStats(label string, stats view.Statistics) {
	a.log.Infow(label+" done",
		"dirs_created", stats.DirsCreated,
		"symlinks_created", stats.SymlinksCreated,
		"symlinks_skipped", stats.SymlinksSkipped,
		"symlinks_broken", stats.SymlinksBroken,
		"errors", len(stats.Errors))
	a.print.Out(output.Normal, "%s:\n%s\n", label, output.Indent(2, stats.String()))
	for _, message := range stats.Errors {
		a.log.Warnw(label, "problem", message)
	}
}
