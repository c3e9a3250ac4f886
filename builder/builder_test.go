// Package builder_test verifies the boundary rules and tolerated inputs of
// the cave graph builder.
package builder_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cavewalk/builder"
	"github.com/katalvlaran/cavewalk/converters"
	"github.com/katalvlaran/cavewalk/core"
)

const smallCave = `start-A
start-b
A-c
A-b
b-d
A-end
b-end`

func TestCaveGraph_Adjacency(t *testing.T) {
	g, err := builder.CaveGraphFromText(smallCave)
	require.NoError(t, err)

	want := map[string][]string{
		"start": {"A", "b"},
		"A":     {"c", "b", "end"},
		"b":     {"A", "d", "end"},
		"c":     {"A"},
		"d":     {"b"},
		"end":   {},
	}
	if diff := cmp.Diff(want, g.AdjacencyList()); diff != "" {
		t.Fatalf("adjacency mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, g.Frozen())
	assert.Equal(t, 7, g.EdgeCount())
}

func TestCaveGraph_TerminalArcsAreOneWay(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		from, to string
	}{
		{"start first", "start-x", "start", "x"},
		{"start second", "x-start", "start", "x"},
		{"end first", "end-x", "x", "end"},
		{"end second", "x-end", "x", "end"},
		{"start to end", "start-end", "start", "end"},
		{"end to start", "end-start", "start", "end"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.CaveGraphFromText(tc.input)
			require.NoError(t, err)
			assert.True(t, g.HasEdge(tc.from, tc.to))
			assert.False(t, g.HasEdge(tc.to, tc.from))
		})
	}
}

func TestCaveGraph_NoArcIntoStartOrOutOfEnd(t *testing.T) {
	g, err := builder.CaveGraphFromText("fs-end\nhe-DX\nfs-he\nstart-DX\npj-DX\nend-zg\nzg-sl\nzg-pj\npj-he\n" +
		"RW-he\nfs-DX\npj-RW\nzg-RW\nstart-pj\nhe-WI\nzg-he\npj-fs\nstart-RW")
	require.NoError(t, err)

	adj := g.AdjacencyList()
	assert.Empty(t, adj[core.EndID])
	for from, tos := range adj {
		assert.NotContains(t, tos, core.StartID, "arc %s→start", from)
	}
}

func TestCaveGraph_DuplicatesSuppressed(t *testing.T) {
	var dups []string
	g, err := builder.CaveGraphFromText("start-A\nA-b\nb-A\nA-b\nA-start\nb-end\nend-b",
		builder.WithOnDuplicate(func(rec converters.EdgeRecord) { dups = append(dups, rec.String()) }))
	require.NoError(t, err)

	assert.Equal(t, []string{"b-A", "A-b", "A-start", "end-b"}, dups)
	assert.Equal(t, 3, g.EdgeCount())
	ids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ids)
}

func TestCaveGraph_SelfLoopsAndIsolated(t *testing.T) {
	var loops int
	g, err := builder.CaveGraphFromText("start-A\nA-A\nA-end\nq-q\nx-y",
		builder.WithOnSelfLoop(func(converters.EdgeRecord) { loops++ }))
	require.NoError(t, err)

	assert.Equal(t, 2, loops)
	assert.True(t, g.HasVertex("q"))
	assert.False(t, g.HasEdge("A", "A"))
	ids, err := g.NeighborIDs("q")
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.True(t, g.HasEdge("x", "y"))
}

func TestCaveGraph_Malformed(t *testing.T) {
	_, err := builder.CaveGraphFromText("start-A\nA--b")
	require.Error(t, err)
	assert.ErrorIs(t, err, converters.ErrMalformedInput)

	_, err = builder.CaveGraph([]converters.EdgeRecord{{From: "start", To: "A"}, {From: "A"}})
	require.Error(t, err)
	var mie *converters.MalformedInputError
	require.True(t, errors.As(err, &mie))
	assert.Equal(t, "A-", mie.Record)
	assert.Contains(t, err.Error(), builder.MethodBuildGraph)
	assert.Contains(t, err.Error(), builder.MethodCaveEdges)
}

func TestCaveGraph_Empty(t *testing.T) {
	g, err := builder.CaveGraph(nil)
	require.NoError(t, err)
	assert.Zero(t, g.VertexCount())
	assert.True(t, g.Frozen())
}

func TestCaveGraph_WithTerminals(t *testing.T) {
	g, err := builder.CaveGraphFromText("in-A\nA-out\nA-in",
		builder.WithTerminals("in", "out"))
	require.NoError(t, err)
	assert.False(t, g.HasEdge("A", "in"))
	assert.False(t, g.HasEdge("out", "A"))
	assert.True(t, g.HasEdge("in", "A"))
	assert.True(t, g.HasEdge("A", "out"))
}

func TestCaveEdges_RequiresMixedMode(t *testing.T) {
	recs, err := converters.ParseEdgeListString("start-A")
	require.NoError(t, err)

	_, err = builder.BuildGraph(nil, nil, builder.CaveEdges(recs))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.ErrorIs(t, err, core.ErrMixedEdgesNotAllowed)
}

func TestOptions_PanicOnMeaninglessInput(t *testing.T) {
	assert.Panics(t, func() { builder.WithOnDuplicate(nil) })
	assert.Panics(t, func() { builder.WithOnSelfLoop(nil) })
	assert.Panics(t, func() { builder.WithTerminals("", "end") })
	assert.Panics(t, func() { builder.WithTerminals("x", "x") })
}
