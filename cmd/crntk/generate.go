// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/crntk/generate"
)

func newGenerateCommand() *cobra.Command {
	var (
		seed      int64
		prefix    string
		maxCoef   int64
		reactions int
	)

	cmd := &cobra.Command{
		Use:   "generate chain|cycle|complete|enzyme|random <size>",
		Short: "Print a synthetic network of known shape",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("size %q: %w", args[1], err)
			}

			var ctor generate.Constructor
			switch args[0] {
			case "chain":
				ctor = generate.Chain(size)
			case "cycle":
				ctor = generate.Cycle(size)
			case "complete":
				ctor = generate.Complete(size)
			case "enzyme":
				ctor = generate.Enzyme(size)
			case "random":
				ctor = generate.RandomSparse(size, reactions)
			default:
				return fmt.Errorf("unknown shape %q", args[0])
			}

			text, err := generate.Text(ctor,
				generate.WithPrefix(prefix),
				generate.WithSeed(seed),
				generate.WithMaxCoefficient(maxCoef))
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), text)

			return err
		},
	}
	f := cmd.Flags()
	f.Int64Var(&seed, "seed", 1, "random seed")
	f.StringVar(&prefix, "prefix", "X", "species name prefix")
	f.Int64Var(&maxCoef, "max-coef", 2, "largest random coefficient")
	f.IntVar(&reactions, "reactions", 10, "reaction count for random networks")

	return cmd
}
