package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cavewalk/builder"
	"github.com/katalvlaran/cavewalk/core"
)

const (
	scenarioSmall = `start-A
start-b
A-c
A-b
b-d
A-end
b-end`

	scenarioLarger = `fs-end
he-DX
fs-he
start-DX
pj-DX
end-zg
zg-sl
zg-pj
pj-he
RW-he
fs-DX
pj-RW
zg-RW
start-pj
he-WI
zg-he
pj-fs
start-RW`
)

// mustCave builds a frozen cave graph or fails the test.
func mustCave(t testing.TB, text string) *core.Graph {
	t.Helper()
	g, err := builder.CaveGraphFromText(text)
	require.NoError(t, err)

	return g
}

// smallVisits counts how often each Small label occurs in a path.
func smallVisits(vs []string) map[string]int {
	seen := make(map[string]int, len(vs))
	for _, v := range vs {
		if core.Classify(v) == core.KindSmall {
			seen[v]++
		}
	}

	return seen
}
