// Package commands provides the cobra command tree of the lavaworld CLI.
//
//	lavaworld                     solve stdin → stdout
//	lavaworld solve -i in -o out  solve files
//	lavaworld generate ...        emit a random problem (and its answers)
//	lavaworld path A B            show the island chain linking A and B
//
// Every invocation loads config (file from --config plus LAVAWORLD_* env,
// unusable values replaced by defaults with a warning), builds a logger that
// writes to stderr, and tags it with a fresh run id.
package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lavaworld/config"
	"github.com/katalvlaran/lavaworld/logger"
	"github.com/katalvlaran/lavaworld/solver"
)

// ErrInvalidArgument reports a flag or argument value the CLI cannot use.
var ErrInvalidArgument = errors.New("invalid argument")

func errBadFlag(v any) error {
	return fmt.Errorf("%w: %v", ErrInvalidArgument, v)
}

// Deps are injectable collaborators; zero values select runtime defaults.
type Deps struct {
	// Logger overrides the config-built logger (tests use logger.Test).
	Logger logger.Logger
}

// app carries state shared by all subcommands of one invocation.
type app struct {
	deps       Deps
	configPath string
	cfg        *config.Config
	lggr       logger.Logger
}

// NewRootCommand builds the full command tree.
func NewRootCommand(deps Deps) *cobra.Command {
	a := &app{deps: deps}

	root := &cobra.Command{
		Use:   "lavaworld",
		Short: "Answer connectivity queries between rectangular islands",
		Long: `lavaworld reads "N Q", N islands as "Ax Ay Bx By" and Q queries as
"row col" from stdin, and prints YES or NO per query: whether the two islands
are linked through a chain of touching or overlapping islands.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.solve(cmd, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "optional config file (toml, yaml or json)")

	root.AddCommand(
		a.newSolveCommand(),
		a.newGenerateCommand(),
		a.newPathCommand(),
	)

	return root
}

// setup loads configuration and the logger. Bad settings fall back to
// defaults with a warning, so a stray LAVAWORLD_* variable cannot stop a run;
// generator values are checked again when the generator options are built.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, warnings, err := config.LoadLenient(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	lggr := a.deps.Logger
	if lggr == nil {
		if lggr, err = cfg.Logger(); err != nil {
			return err
		}
	}
	a.lggr = lggr.Named("lavaworld").With("run", uuid.NewString(), "command", cmd.Name())
	for _, w := range warnings {
		a.lggr.Warn(w)
	}

	return nil
}

// solve runs the pipeline from r to w.
func (a *app) solve(cmd *cobra.Command, r io.Reader, w io.Writer) error {
	if err := solver.Solve(cmd.Context(), r, w, solver.WithLogger(a.lggr)); err != nil {
		a.lggr.Errorw("solve failed", "err", err)
		return err
	}

	return nil
}

func (a *app) newSolveCommand() *cobra.Command {
	var inPath, outPath string
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a problem read from a file or stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, closeIn, err := openInput(cmd, inPath)
			if err != nil {
				return err
			}
			defer closeIn()

			out, closeOut, err := createOutput(cmd, outPath)
			if err != nil {
				return err
			}
			if err := a.solve(cmd, in, out); err != nil {
				closeOut()
				return err
			}

			return closeOut()
		},
	}
	cmd.Flags().StringVarP(&inPath, "input", "i", "", "input file (default stdin)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")

	return cmd
}

// openInput returns the named file or the command's stdin.
func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}

// createOutput returns the named file or the command's stdout.
func createOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}

	return f, f.Close, nil
}
