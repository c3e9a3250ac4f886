// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cavewalk/bfs"
	"github.com/katalvlaran/cavewalk/builder"
	"github.com/katalvlaran/cavewalk/converters"
	"github.com/katalvlaran/cavewalk/core"
	"github.com/katalvlaran/cavewalk/dfs"
)

var errUnbounded = errors.New("path enumeration would never terminate: adjacent big caves")

// loadGraph reads the edge list from args[0] or stdin and builds the
// frozen cave graph.
func (a *app) loadGraph(cmd *cobra.Command, args []string) (*core.Graph, error) {
	var (
		in   io.Reader = cmd.InOrStdin()
		name           = "stdin"
	)
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in, name = f, args[0]
	}
	a.logger.Debugf("Reading edge list from %s", name)

	records, err := converters.ParseEdgeList(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	g, err := builder.CaveGraph(records,
		builder.WithOnDuplicate(func(rec converters.EdgeRecord) {
			a.logger.WithField("line", rec.Line).Warnf("Ignoring duplicate edge %s", rec)
		}),
		builder.WithOnSelfLoop(func(rec converters.EdgeRecord) {
			a.logger.WithField("line", rec.Line).Warnf("Ignoring self-loop %s", rec)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	st := g.Stats()
	a.logger.WithFields(log.Fields{
		"vertices": st.VertexCount,
		"edges":    st.EdgeCount,
		"big":      st.BigCount,
		"small":    st.SmallCount,
	}).Debug("Built cave graph")

	return g, a.preflight(g)
}

// preflight surveys g before enumeration. It refuses to enumerate a cave
// where two adjacent Big caves let a path cycle forever, unless a depth
// limit is configured.
func (a *app) preflight(g *core.Graph) error {
	s, err := bfs.SurveyCave(g, core.StartID, core.EndID, bfs.WithContext(a.ctx))
	if err != nil {
		return err
	}
	switch {
	case !s.HasStart:
		a.logger.Warnf("Edge list never mentions %q; no path can exist", core.StartID)
	case !s.EndReachable:
		a.logger.Warnf("%q is not reachable from %q; no path can exist", core.EndID, core.StartID)
	default:
		a.logger.WithField("reachable", s.Reachable).Debugf("Shortest route %s", strings.Join(s.ShortestPath, ","))
	}
	if s.Unbounded() {
		pair := s.BigPairs[0]
		if a.v.GetInt(keyMaxDepth) < 0 {
			return fmt.Errorf("%w: %s-%s (set --max-depth)", errUnbounded, pair[0], pair[1])
		}
		a.logger.Warnf("Big caves %s and %s are adjacent; results are limited by --max-depth", pair[0], pair[1])
	}

	return nil
}

// finderOptions translates configuration into dfs options shared by all runs.
func (a *app) finderOptions() []dfs.Option {
	opts := []dfs.Option{
		dfs.WithContext(a.ctx),
		dfs.WithMaxDepth(a.v.GetInt(keyMaxDepth)),
	}
	if a.logger.IsLevelEnabled(log.TraceLevel) {
		opts = append(opts, dfs.WithOnPop(func(p dfs.Path) error {
			a.logger.WithField("revisited", p.Revisited).Tracef("Expanding %s", p)
			return nil
		}))
	}

	return opts
}

// policies resolves the configured policy name; "both" selects every policy.
func (a *app) policies() ([]dfs.Policy, error) {
	name := a.v.GetString(keyPolicy)
	if name == policyBoth {
		return dfs.Policies(), nil
	}
	p, err := dfs.ParsePolicy(name)
	if err != nil {
		return nil, err
	}

	return []dfs.Policy{p}, nil
}
