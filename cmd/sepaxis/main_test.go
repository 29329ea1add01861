package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runArgs(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_Colliding(t *testing.T) {
	code, out, _ := runArgs(t, filepath.Join("testdata", "boxes.yaml"))
	require.Equal(t, 0, code)

	assert.Contains(t, out, "boxes: colliding (cartesian)")
	assert.Contains(t, out, "axis (1.000, 0.000): overlap 5.000, push (5.000, 0.000)")
	assert.Contains(t, out, "mtv (5.000, 0.000)")
}

func TestRun_KeepsArgumentOrder(t *testing.T) {
	code, out, _ := runArgs(t,
		filepath.Join("testdata", "apart.yaml"),
		filepath.Join("testdata", "boxes.yaml"),
	)
	require.Equal(t, 0, code)

	apart := strings.Index(out, "apart: separated")
	boxes := strings.Index(out, "boxes: colliding")
	require.NotEqual(t, -1, apart)
	require.NotEqual(t, -1, boxes)
	assert.Less(t, apart, boxes)
	assert.Equal(t, 1, strings.Count(out, "separating"), "evaluation stops at the first separating axis")
}

func TestRun_Exhaustive(t *testing.T) {
	code, out, _ := runArgs(t, "-exhaustive", filepath.Join("testdata", "apart.yaml"))
	require.Equal(t, 0, code)
	assert.Equal(t, 2, strings.Count(out, "separating"))
	assert.NotContains(t, out, "mtv")
}

func TestRun_ArrowOffset(t *testing.T) {
	code, out, _ := runArgs(t, "-offset", "2", filepath.Join("testdata", "boxes.yaml"))
	require.Equal(t, 0, code)
	assert.Contains(t, out, "push (5.000, 0.000) at (5.000, 2.000)")
}

func TestRun_Verbose(t *testing.T) {
	code, _, errOut := runArgs(t, "-v", filepath.Join("testdata", "boxes.yaml"))
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, "collide: minimum translation")
	assert.Contains(t, errOut, "resolved")
}

func TestRun_LogLevelFromEnv(t *testing.T) {
	t.Setenv("SEPAXIS_LOG_LEVEL", "info")
	code, _, errOut := runArgs(t, filepath.Join("testdata", "boxes.yaml"))
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, "resolved")
	assert.NotContains(t, errOut, "minimum translation")

	t.Setenv("SEPAXIS_LOG_LEVEL", "chatty")
	code, _, errOut = runArgs(t, filepath.Join("testdata", "boxes.yaml"))
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "SEPAXIS_LOG_LEVEL")
}

func TestRun_Errors(t *testing.T) {
	code, _, errOut := runArgs(t)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "usage: sepaxis")

	code, _, _ = runArgs(t, "-nope")
	assert.Equal(t, 2, code)

	code, out, errOut := runArgs(t,
		filepath.Join("testdata", "boxes.yaml"),
		filepath.Join("testdata", "broken.yaml"),
	)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown axis set")
	assert.Contains(t, out, "boxes: colliding", "valid scenes are still reported")
}

func TestRun_ReportsEveryFailedFile(t *testing.T) {
	broken := filepath.Join("testdata", "broken.yaml")
	missing := filepath.Join("testdata", "missing.yaml")
	code, out, errOut := runArgs(t, broken, missing, filepath.Join("testdata", "boxes.yaml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "boxes: colliding")

	lines := strings.Split(strings.TrimSpace(errOut), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], broken)
	assert.Contains(t, lines[0], "unknown axis set")
	assert.Contains(t, lines[1], missing)
}
