// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cavewalk/dfs"
)

var errSinglePolicy = errors.New("paths needs exactly one --policy (strict or revisit-once)")

func newPathsCommand(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "paths [edge-list file]",
		Short: "Print start-to-end paths in enumeration order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			policies, err := a.policies()
			if err != nil {
				return err
			}
			if len(policies) != 1 {
				return errSinglePolicy
			}
			g, err := a.loadGraph(cmd, args)
			if err != nil {
				return err
			}

			pf, err := dfs.NewPathFinder(g, append(a.finderOptions(), dfs.WithPolicy(policies[0]))...)
			if err != nil {
				return err
			}
			printed := 0
			for p := range pf.All() {
				fmt.Fprintln(cmd.OutOrStdout(), p)
				printed++
				if limit > 0 && printed >= limit {
					break
				}
			}
			if err = pf.Err(); err != nil {
				return err
			}

			st := pf.Stats()
			a.logger.WithFields(log.Fields{
				"printed":  printed,
				"pending":  pf.Pending(),
				"pops":     st.Pops,
				"rejected": st.Rejected,
			}).Debug("Stopped pulling paths")

			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many paths (0 = all)")

	return cmd
}
