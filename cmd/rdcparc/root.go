package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/icosian/rdcparc"
)

type cliOptions struct {
	configPath string
	verbose    bool
	quiet      bool
}

func newRootCommand() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:   "rdcparc",
		Short: "Build the symlink views of a regulatory document archive",
		Long: `rdcparc maintains a drug-trial document archive: it links raw download
folders into curated accession layouts and builds disposable symlink views
(CTD outline, chronological, ATC classification) plus the table of contents.
Configuration is read from rdcparc.yaml, searched upward from the working
directory.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to rdcparc.yaml (default: search upward)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "per-link diagnostics")
	root.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "errors and requested information only")
	root.MarkFlagsMutuallyExclusive("verbose", "quiet")

	root.AddCommand(
		newBuildCommand(opts),
		newReorganizeCommand(opts),
		newCTDCommand(opts),
		newDateCommand(opts),
		newEMACommand(opts),
		newTOCCommand(opts),
		newTreeCommand(opts),
		newVerifyCommand(opts),
		newConfigCommand(opts),
	)
	return root
}

// open constructs the archivist handle with logging and terminal features
// matching the invocation.
func (opts *cliOptions) open() (rdcparc.Archivist, func(), error) {
	logger, err := newLogger(opts)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = logger.Sync() }

	handle, err := rdcparc.Open(rdcparc.CreateConfig{
		Verbosity:     opts.verbosity(),
		ConfigPath:    opts.configPath,
		FancyTerminal: term.IsTerminal(int(os.Stdout.Fd())),
		Logger:        logger.Sugar(),
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return handle, cleanup, nil
}

func (opts *cliOptions) verbosity() rdcparc.VerbosityLevel {
	switch {
	case opts.verbose:
		return rdcparc.VerboseMode
	case opts.quiet:
		return rdcparc.QuietMode
	default:
		return rdcparc.DefaultVerbosity
	}
}

func newLogger(opts *cliOptions) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	switch {
	case opts.verbose:
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case opts.quiet:
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	} else {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return cfg.Build()
}

// run wires a subcommand body to a freshly opened handle.
func run(opts *cliOptions, body func(rdcparc.Archivist) error) error {
	handle, cleanup, err := opts.open()
	if err != nil {
		return err
	}
	defer cleanup()
	return body(handle)
}

func newBuildCommand(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Run every configured pass under the build lock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, func(handle rdcparc.Archivist) error {
				return handle.BuildAll()
			})
		},
	}
}

func newReorganizeCommand(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reorganize [accession...]",
		Short: "Link raw acquisition folders into the curated layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, func(handle rdcparc.Archivist) error {
				return handle.Reorganize(args...)
			})
		},
	}
}

func newCTDCommand(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ctd [accession...]",
		Short: "Build the CTD outline view",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, func(handle rdcparc.Archivist) error {
				return handle.BuildCTD(args...)
			})
		},
	}
}

func newDateCommand(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "date [accession...]",
		Short: "Build the chronological view",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, func(handle rdcparc.Archivist) error {
				return handle.BuildDate(args...)
			})
		},
	}
}

func newEMACommand(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ema",
		Short: "Build the synthetic EMA accession with its ATC view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, func(handle rdcparc.Archivist) error {
				return handle.BuildEMA()
			})
		},
	}
}

func newTOCCommand(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "toc",
		Short: "Regenerate toc.json and toc.md",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, func(handle rdcparc.Archivist) error {
				return handle.BuildTOC()
			})
		},
	}
}

func newTreeCommand(opts *cliOptions) *cobra.Command {
	var brokenOnly bool
	tree := &cobra.Command{
		Use:   "tree",
		Short: "Print the curated tree with markers on dead links",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, func(handle rdcparc.Archivist) error {
				return handle.PrintTree(brokenOnly)
			})
		},
	}
	tree.Flags().BoolVar(&brokenOnly, "broken-only", false, "show only links that do not resolve")
	return tree
}

func newVerifyCommand(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Classify every view link as resolved, broken, or cyclic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, func(handle rdcparc.Archivist) error {
				report, err := handle.Verify()
				if err != nil {
					return err
				}
				if !report.Clean() {
					return fmt.Errorf("%d broken and %d unresolvable links",
						len(report.Broken), len(report.Unresolvable))
				}
				return nil
			})
		},
	}
}

func newConfigCommand(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Dump the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, func(handle rdcparc.Archivist) error {
				return handle.PrintConfig()
			})
		},
	}
}
