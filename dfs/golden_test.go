package dfs_test

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cavewalk/dfs"
)

// TestPathFinder_EnumerationOrder pins the exact yield sequence for the
// small cave under both policies. Regenerate with `go test ./dfs -update`.
func TestPathFinder_EnumerationOrder(t *testing.T) {
	g := mustCave(t, scenarioSmall)
	gold := goldie.New(t)

	for _, policy := range dfs.Policies() {
		t.Run(policy.String(), func(t *testing.T) {
			paths, err := dfs.Collect(g, dfs.WithPolicy(policy))
			require.NoError(t, err)

			var sb strings.Builder
			for _, p := range paths {
				sb.WriteString(p.String())
				sb.WriteByte('\n')
			}
			gold.Assert(t, "scenario1_"+policy.String(), []byte(sb.String()))
		})
	}
}
