package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cavewalk/converters"
	"github.com/katalvlaran/cavewalk/dfs"
)

const smallCave = "testdata/small.txt"

// run executes the root command with args and returns stdout and stderr.
// HOME points at an empty temp dir so no user config leaks in.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	cmd := NewRootCommand(context.Background(), "test")
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestCount_BothPolicies(t *testing.T) {
	out, _, err := run(t, "", "count", smallCave)
	require.NoError(t, err)
	assert.Equal(t, "strict: 10\nrevisit-once: 36\n", out)
}

func TestCount_SinglePolicy(t *testing.T) {
	cases := map[string]string{
		"strict":       "strict: 10\n",
		"a":            "strict: 10\n",
		"revisit-once": "revisit-once: 36\n",
		"B":            "revisit-once: 36\n",
	}
	for flag, want := range cases {
		t.Run(flag, func(t *testing.T) {
			out, _, err := run(t, "", "count", "--policy", flag, smallCave)
			require.NoError(t, err)
			assert.Equal(t, want, out)
		})
	}
}

func TestCount_Stdin(t *testing.T) {
	data, err := os.ReadFile(smallCave)
	require.NoError(t, err)

	out, _, err := run(t, string(data), "count", "--policy", "strict")
	require.NoError(t, err)
	assert.Equal(t, "strict: 10\n", out)

	out, _, err = run(t, string(data), "count", "--policy", "strict", "-")
	require.NoError(t, err)
	assert.Equal(t, "strict: 10\n", out)
}

func TestCount_NoStartCountsZero(t *testing.T) {
	out, stderr, err := run(t, "x-end\n", "count")
	require.NoError(t, err)
	assert.Equal(t, "strict: 0\nrevisit-once: 0\n", out)
	assert.Contains(t, stderr, "no path can exist")
}

func TestCount_MaxDepth(t *testing.T) {
	// only start,b,end and start,A,end fit in two arcs
	out, _, err := run(t, "", "count", "--policy", "strict", "--max-depth", "2", smallCave)
	require.NoError(t, err)
	assert.Equal(t, "strict: 2\n", out)

	out, _, err = run(t, "", "count", "--policy", "strict", "--max-depth", "1", smallCave)
	require.NoError(t, err)
	assert.Equal(t, "strict: 0\n", out)
}

func TestCount_MalformedInput(t *testing.T) {
	_, _, err := run(t, "start-A\nA-b-c\n", "count")
	require.Error(t, err)
	assert.ErrorIs(t, err, converters.ErrMalformedInput)
	assert.Contains(t, err.Error(), "stdin")
}

func TestCount_MissingFile(t *testing.T) {
	_, _, err := run(t, "", "count", filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCount_UnknownPolicy(t *testing.T) {
	_, _, err := run(t, "", "count", "--policy", "sometimes", smallCave)
	assert.ErrorIs(t, err, dfs.ErrUnknownPolicy)
}

func TestCount_PolicyFromEnv(t *testing.T) {
	t.Setenv("CAVEWALK_POLICY", "revisit-once")
	out, _, err := run(t, "", "count", smallCave)
	require.NoError(t, err)
	assert.Equal(t, "revisit-once: 36\n", out)
}

func TestCount_ConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "cavewalk.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("policy: strict\nlog-level: debug\n"), 0o600))

	out, stderr, err := run(t, "", "count", "--config", cfg, smallCave)
	require.NoError(t, err)
	assert.Equal(t, "strict: 10\n", out)
	assert.Contains(t, stderr, "Built cave graph")

	// flags beat the config file
	out, _, err = run(t, "", "count", "--config", cfg, "--policy", "b", smallCave)
	require.NoError(t, err)
	assert.Equal(t, "revisit-once: 36\n", out)
}

func TestCount_DefaultConfigInHome(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, configFileName), []byte("policy: a\n"), 0o600))

	var out bytes.Buffer
	t.Setenv("HOME", home)
	cmd := NewRootCommand(context.Background(), "test")
	cmd.SetArgs([]string{"count", smallCave})
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "strict: 10\n", out.String())
}

func TestCount_MissingExplicitConfig(t *testing.T) {
	_, _, err := run(t, "", "count", "--config", filepath.Join(t.TempDir(), "absent.yaml"), smallCave)
	assert.Error(t, err)
}

func TestCount_BadLogLevel(t *testing.T) {
	_, _, err := run(t, "", "count", "--log-level", "loud", smallCave)
	assert.Error(t, err)
}

func TestCount_VerboseLogsWarnings(t *testing.T) {
	_, stderr, err := run(t, "start-A\nA-end\nA-start\nc-c\n", "-v", "count")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Ignoring duplicate edge A-start")
	assert.Contains(t, stderr, "Ignoring self-loop c-c")
	assert.Contains(t, stderr, "Enumeration finished")
}

func TestPaths_Limit(t *testing.T) {
	out, _, err := run(t, "", "paths", "--policy", "strict", "--limit", "3", smallCave)
	require.NoError(t, err)
	goldie.New(t).Assert(t, "paths_strict_limit3", []byte(out))
}

func TestPaths_All(t *testing.T) {
	out, _, err := run(t, "", "paths", "--policy", "revisit-once", smallCave)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 36)
}

func TestPaths_TraceHook(t *testing.T) {
	_, stderr, err := run(t, "", "paths", "--policy", "strict", "--limit", "1", "--log-level", "trace", smallCave)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Expanding start")
}

func TestPaths_RequiresSinglePolicy(t *testing.T) {
	_, _, err := run(t, "", "paths", smallCave)
	assert.ErrorIs(t, err, errSinglePolicy)
}

func TestCount_EndUnreachableWarns(t *testing.T) {
	out, stderr, err := run(t, "start-a\nb-end\n", "count", "--policy", "a")
	require.NoError(t, err)
	assert.Equal(t, "strict: 0\n", out)
	assert.Contains(t, stderr, "is not reachable")
}

func TestCount_AdjacentBigCaves(t *testing.T) {
	_, _, err := run(t, "start-A\nA-B\nB-end\n", "count")
	assert.ErrorIs(t, err, errUnbounded)

	// start,A,B,end is the only route within three arcs
	out, stderr, err := run(t, "start-A\nA-B\nB-end\n", "count", "--policy", "strict", "--max-depth", "3")
	require.NoError(t, err)
	assert.Equal(t, "strict: 1\n", out)
	assert.Contains(t, stderr, "are adjacent")
}

func TestCount_AdjacentBigCavesWithoutEnd(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	cmd := NewRootCommand(ctx, "test")
	cmd.SetArgs([]string{"count", "--policy", "strict"})
	cmd.SetIn(strings.NewReader("start-A\nA-B\n"))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()
	assert.ErrorIs(t, err, errUnbounded)
	assert.NotErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, out.String())

	// with a depth limit the walk ends and finds nothing
	o, _, err := run(t, "start-A\nA-B\n", "count", "--policy", "strict", "--max-depth", "4")
	require.NoError(t, err)
	assert.Equal(t, "strict: 0\n", o)
}
