// Package rdcparc builds the synthetic views of a regulatory document
// archive. The archive itself is a raw download mirror plus one curated
// folder per accession; every view (CTD outline, chronological, ATC
// classification) is a disposable symlink forest that can be rebuilt from
// configuration at any time.
package rdcparc

import (
	"go.uber.org/zap"

	"github.com/icosian/rdcparc/internal/config"
	"github.com/icosian/rdcparc/internal/output"
)

type VerbosityLevel int

const (
	DefaultVerbosity VerbosityLevel = iota //normal level of information, all noteworthy facts without too much noise
	VerboseMode                            //exhaustive information about what is happening, per-link detail
	QuietMode                              //only output errors and information that was explicitly requested
)

// CreateConfig holds a set of common configuration switches that concern all calls to the archivist API.
// The zero value is a sensible default.
type CreateConfig struct {
	Verbosity     VerbosityLevel
	ConfigPath    string             //explicit path to rdcparc.yaml, empty triggers upward search from the working directory
	FancyTerminal bool               //allow ANSI escapes in user-facing output
	Logger        *zap.SugaredLogger //diagnostics sink, a no-op logger is substituted if unset
}

// Archivist lets you interface with an archive whose handle was retrieved using Open.
type Archivist interface {

	// Reorganize links raw acquisition folders into the curated accession
	// layout according to the configured mappings. Sources that have not
	// been delivered yet are skipped silently.
	Reorganize(accessionIDs ...string) error

	// BuildCTD builds the CTD outline view of the given accessions (all
	// accessions with a configured ctd view if none are named). Files whose
	// names carry no recognizable section number are reported but do not
	// fail the build.
	BuildCTD(accessionIDs ...string) error

	// BuildDate builds the chronological view of the given accessions (all
	// accessions with a configured date view if none are named).
	BuildDate(accessionIDs ...string) error

	// BuildEMA builds the synthetic EMA accession from the downloaded
	// medicine and document indexes: per-product file buckets and the
	// ATC classification view. Links may dangle until the raw mirror
	// holds the referenced files.
	BuildEMA() error

	// BuildTOC regenerates toc.json and toc.md over the curated tree.
	BuildTOC() error

	// BuildAll runs every configured pass under the archive build lock:
	// reorganization, the per-accession views, the EMA accession, URL
	// alias links, and finally the table of contents.
	BuildAll() error

	// Verify walks the curated tree and classifies every symlink as
	// resolved, broken, or unresolvable.
	Verify() (VerifyReport, error)

	// PrintTree prints the curated tree with a marker on every link that
	// does not resolve.
	PrintTree(onlyBroken bool) error

	// PrintConfig dumps the effective configuration as YAML.
	PrintConfig() error
}

type archivist struct {
	cfg                   *config.Config
	log                   *zap.SugaredLogger
	print                 output.Printer
	fancyTerminalFeatures bool
}

// Open loads the archive configuration and returns a handle to operate on it.
func Open(create CreateConfig) (Archivist, error) {
	handle := makeArchivist(create)
	cfg, err := config.Load(create.ConfigPath)
	if err != nil {
		return nil, newBuildError("archive open error", err)
	}
	handle.cfg = cfg
	return handle, nil
}

func makeArchivist(create CreateConfig) (instance *archivist) {
	classes := []output.Class{output.Required, output.Error}
	switch create.Verbosity {
	case VerboseMode:
		classes = append(classes, output.Verbose)
		fallthrough
	case DefaultVerbosity:
		classes = append(classes, output.Normal)
	}
	instance = &archivist{print: output.NewPrinter(classes, create.FancyTerminal)}
	instance.log = create.Logger
	if instance.log == nil {
		instance.log = zap.NewNop().Sugar()
	}
	instance.fancyTerminalFeatures = create.FancyTerminal
	return
}

func (a *archivist) PrintConfig() error {
	dump, err := a.cfg.Dump()
	if err != nil {
		return newBuildError("config dump error", err)
	}
	a.print.Out(output.Required, "%s", dump)
	return nil
}
