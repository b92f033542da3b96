package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lavaworld/bfs"
	"github.com/katalvlaran/lavaworld/problem"
	"github.com/katalvlaran/lavaworld/solver"
)

func (a *app) newPathCommand() *cobra.Command {
	var inPath string
	cmd := &cobra.Command{
		Use:   "path FROM TO",
		Short: "Print a shortest chain of islands linking FROM and TO",
		Long: `path reads a problem (its queries are ignored) and prints the island IDs
of a shortest chain of directly connected islands from FROM to TO, or NO when
they are not connected.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := strconv.Atoi(args[0])
			if err != nil {
				return errBadFlag(fmt.Sprintf("FROM %q", args[0]))
			}
			to, err := strconv.Atoi(args[1])
			if err != nil {
				return errBadFlag(fmt.Sprintf("TO %q", args[1]))
			}

			in, closeIn, err := openInput(cmd, inPath)
			if err != nil {
				return err
			}
			defer closeIn()
			p, err := problem.Parse(in)
			if err != nil {
				return err
			}

			chain, err := solver.Path(cmd.Context(), p.Islands, from, to)
			switch {
			case errors.Is(err, bfs.ErrNoPath):
				_, err = fmt.Fprintln(cmd.OutOrStdout(), problem.No)
				return err
			case err != nil:
				return err
			}
			a.lggr.Debugw("path found", "from", from, "to", to, "hops", len(chain)-1)

			ids := make([]string, len(chain))
			for i, id := range chain {
				ids[i] = strconv.Itoa(id)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(ids, " -> "))

			return err
		},
	}
	cmd.Flags().StringVarP(&inPath, "input", "i", "", "input file (default stdin)")

	return cmd
}
