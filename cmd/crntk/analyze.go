// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/crntk/internal/metrics"
)

func newAnalyzeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [file]",
		Short: "Report structure, deficiency and conservation laws of a network",
		Args:  cobra.MaximumNArgs(1),
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

			svc, _ := a.service(metrics.Nop())
			rep, err := svc.AnalyzeNetwork(cmd.Context(), net, nil)
			if err != nil {
				return err
			}

			return r.Report(rep)
		},
	}
}
