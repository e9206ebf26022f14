// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crntk/analysis"
	"github.com/katalvlaran/crntk/ddm"
	"github.com/katalvlaran/crntk/internal/logging"
)

func newClawsCommand() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "claws [file]",
		Short: "Enumerate the semi-positive conservation laws of a network",
		Long: "claws computes the extreme rays of {x ≥ 0 : xᵀS = 0} with the double\n" +
			"description method. Progress goes to stderr.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			net, err := parseInput(cmd, args)
			if err != nil {
				return err
			}

			rows, species := net.Stoichiometry()
			task := ddm.Start(cmd.Context(), rows, len(species))

			var res *ddm.Result
			g := new(errgroup.Group)
			g.Go(func() error {
				for remaining := range task.Progress() {
					if !quiet {
						fmt.Fprintf(cmd.ErrOrStderr(), "crntk: %d of %d constraints pending\n", remaining, len(rows))
					}
				}
				return nil
			})
			g.Go(func() error {
				var err error
				res, err = task.Result()
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}
			a.log.Debug("claws finished",
				logging.Int("rays", len(res.Rays)),
				logging.Int("passes", res.Stats.Passes))

			laws := make([]analysis.Law, 0, len(res.Rays))
			for _, ray := range res.Rays {
				laws = append(laws, analysis.Law{Ray: ray, Text: net.Law(ray)})
			}

			return r.Laws(laws, res.Stats, false)
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress on stderr")

	return cmd
}
