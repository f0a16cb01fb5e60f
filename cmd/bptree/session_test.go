package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bplusindex/config"
	"bplusindex/render"
)

func newTestSession(t *testing.T, degree int) (*session, *bytes.Buffer) {
	t.Helper()
	cache, err := render.NewCache(render.Config{NumCounters: 1000, MaxCost: 1 << 20})
	require.NoError(t, err)
	t.Cleanup(cache.Close)

	var out bytes.Buffer
	s, err := newSession(degree, cache, zap.NewNop(), &out)
	require.NoError(t, err)
	return s, &out
}

func TestSessionScript(t *testing.T) {
	s, out := newTestSession(t, 4)
	script := strings.Join([]string{
		"insert 10 20 5 6 12 30 7 17",
		"traverse",
		"delete 6 30 5 999",
		"traverse",
		"find 17",
		"count 12",
		"check",
		"exit",
		"traverse",
	}, "\n")
	s.repl(strings.NewReader(script), false)

	got := out.String()
	require.Contains(t, got, "inserted 17#8\n")
	require.Contains(t, got, "[5 6 7 10 12 17 20 30]\n")
	require.Contains(t, got, "deleted 30\n")
	require.Contains(t, got, "999 not found\n")
	require.Contains(t, got, "[7 10 12 17 20]\n")
	require.Contains(t, got, "found 17#8\n")
	require.Contains(t, got, "ok\n")
	// nothing runs after exit
	require.Equal(t, 1, strings.Count(got, "[7 10 12 17 20]"))
}

func TestSessionRenderAndStats(t *testing.T) {
	s, out := newTestSession(t, 3)
	require.NoError(t, s.exec("insert 3 1 2"))
	out.Reset()

	require.NoError(t, s.exec("tree"))
	require.Equal(t, "- [3#1]\n  - [1#2 2#3]\n  - [3#1]\n", out.String())

	out.Reset()
	require.NoError(t, s.exec("levels"))
	require.True(t, strings.HasPrefix(out.String(), "Level 0:\n"))

	out.Reset()
	require.NoError(t, s.exec("stats"))
	require.Contains(t, out.String(), "degree=3 entries=3 height=2 nodes=3")
	require.Contains(t, out.String(), "render cache:")
}

func TestSessionDeleteTieAndEntries(t *testing.T) {
	s, out := newTestSession(t, 4)
	require.NoError(t, s.exec("insert 5 5 5"))
	require.NoError(t, s.exec("deltie 5 2"))
	out.Reset()
	require.NoError(t, s.exec("entries"))
	require.Equal(t, "[5#1 5#3]\n", out.String())
}

func TestSessionReset(t *testing.T) {
	s, out := newTestSession(t, 4)
	require.NoError(t, s.exec("insert 1 2 3"))
	require.NoError(t, s.exec("reset 5"))
	require.Equal(t, 5, s.tree.Degree())
	require.Equal(t, 0, s.tree.Len())

	require.Error(t, s.exec("reset 2"))
	require.Equal(t, 5, s.tree.Degree())

	out.Reset()
	require.NoError(t, s.exec("reset"))
	require.Equal(t, "empty tree, degree 5\n", out.String())
}

func TestSessionErrors(t *testing.T) {
	s, out := newTestSession(t, 4)
	require.ErrorIs(t, s.exec("insert"), errUsage)
	require.ErrorIs(t, s.exec("deltie 1"), errUsage)
	require.Error(t, s.exec("insert x"))
	require.Error(t, s.exec("deltie 1 -2"))
	require.Error(t, s.exec("frobnicate"))

	s.repl(strings.NewReader("bogus\n"), false)
	require.Contains(t, out.String(), `Error: unknown command "bogus"`)
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		l, err := newLogger(config.LogConfig{Level: "debug", Format: format})
		require.NoError(t, err)
		require.True(t, l.Core().Enabled(zap.DebugLevel))
	}
	_, err := newLogger(config.LogConfig{Level: "loud", Format: "json"})
	require.Error(t, err)
}
