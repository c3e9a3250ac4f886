// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cavewalk/dfs"
)

func newCountCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count [edge-list file]",
		Short: "Print the number of start-to-end paths per revisit policy",
		Long: `Reads one "a-b" edge per line from the file (or stdin when omitted or "-")
and prints "<policy>: <count>" for every selected policy.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			policies, err := a.policies()
			if err != nil {
				return err
			}
			g, err := a.loadGraph(cmd, args)
			if err != nil {
				return err
			}

			began := time.Now()
			var counts dfs.Counts
			if len(policies) > 1 {
				counts, err = dfs.CountAll(a.ctx, g, a.finderOptions()...)
			} else {
				var n int
				n, err = dfs.CountPaths(g, append(a.finderOptions(), dfs.WithPolicy(policies[0]))...)
				if policies[0] == dfs.PolicyRevisitOnce {
					counts.RevisitOnce = n
				} else {
					counts.Strict = n
				}
			}
			if err != nil {
				return err
			}
			a.logger.WithFields(log.Fields{
				"strict":       counts.Strict,
				"revisit-once": counts.RevisitOnce,
				"elapsed":      time.Since(began),
			}).Debug("Enumeration finished")

			for _, p := range policies {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", p, counts.Get(p))
			}

			return nil
		},
	}
}
