package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lavaworld/generator"
	"github.com/katalvlaran/lavaworld/problem"
	"github.com/katalvlaran/lavaworld/solver"
)

func (a *app) newGenerateCommand() *cobra.Command {
	var (
		seed                              int64
		islands, queries, bounds, maxSide int
		outPath, expectPath               string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random problem, optionally with its verified answers",
		Long: `generate writes a random problem in the input format. Values not given as
flags come from the generator section of the config. With --expect the answers
are computed twice (reachability table and per-query search) and written only
when both agree.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := a.cfg.Generator
			flags := cmd.Flags()
			if !flags.Changed("seed") {
				seed = g.Seed
			}
			if !flags.Changed("islands") {
				islands = g.Islands
			}
			if !flags.Changed("queries") {
				queries = g.Queries
			}
			if !flags.Changed("bounds") {
				bounds = g.Bounds
			}
			if !flags.Changed("max-side") {
				maxSide = g.MaxSide
			}

			opts, err := generatorOptions(seed, islands, queries, bounds, maxSide)
			if err != nil {
				return err
			}
			p, err := generator.Generate(opts...)
			if err != nil {
				return err
			}
			a.lggr.Infow("problem generated", "seed", seed, "islands", len(p.Islands), "queries", len(p.Queries))

			out, closeOut, err := createOutput(cmd, outPath)
			if err != nil {
				return err
			}
			if err := problem.Encode(out, p); err != nil {
				closeOut()
				return err
			}
			if err := closeOut(); err != nil {
				return err
			}
			if expectPath == "" {
				return nil
			}

			answers, err := solver.CrossCheck(cmd.Context(), p, solver.WithLogger(a.lggr))
			if err != nil {
				a.lggr.Errorw("cross-check failed", "err", err)
				return err
			}
			exp, closeExp, err := createOutput(cmd, expectPath)
			if err != nil {
				return err
			}
			if err := problem.WriteAnswers(exp, answers); err != nil {
				closeExp()
				return err
			}

			return closeExp()
		},
	}
	f := cmd.Flags()
	f.Int64Var(&seed, "seed", generator.DefaultSeed, "RNG seed (0 = default seed)")
	f.IntVar(&islands, "islands", generator.DefaultIslands, "number of islands")
	f.IntVar(&queries, "queries", generator.DefaultQueries, "number of queries")
	f.IntVar(&bounds, "bounds", generator.DefaultBounds, "largest coordinate value")
	f.IntVar(&maxSide, "max-side", generator.DefaultMaxSide, "largest island width/height")
	f.StringVarP(&outPath, "output", "o", "", "problem file (default stdout)")
	f.StringVar(&expectPath, "expect", "", "also write verified answers to this file")

	return cmd
}

// generatorOptions converts flag values into generator options, turning the
// option constructors' panics on bad values into errors.
func generatorOptions(seed int64, islands, queries, bounds, maxSide int) (opts []generator.Option, err error) {
	defer func() {
		if r := recover(); r != nil {
			opts, err = nil, errBadFlag(r)
		}
	}()

	return []generator.Option{
		generator.WithSeed(seed),
		generator.WithIslands(islands),
		generator.WithQueries(queries),
		generator.WithBounds(bounds),
		generator.WithMaxSide(maxSide),
	}, nil
}
