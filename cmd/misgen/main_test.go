package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.txt")
	var out bytes.Buffer

	code := run([]string{path, "4", "3"}, &out)
	require.Equal(t, exitOK, code, out.String())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "[Info] Filename: "+path, strings.TrimSpace(lines[0]))
	assert.Equal(t, "[Info] #Vertices: 4", strings.TrimSpace(lines[1]))
	assert.Equal(t, "[Info] #Edges: 3", strings.TrimSpace(lines[2]))
	assert.Equal(t, "[Info] Done!", strings.TrimSpace(lines[3]))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "4\n3\n"))
	assert.Equal(t, 5, strings.Count(string(raw), "\n"))
}

func TestRun_StrategiesAgreeOnShape(t *testing.T) {
	dir := t.TempDir()
	for _, s := range []string{"exhaustive", "rejection"} {
		path := filepath.Join(dir, s+".txt")
		var out bytes.Buffer
		code := run([]string{"-strategy", s, "-seed", "11", path, "20", "50"}, &out)
		require.Equal(t, exitOK, code, out.String())

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, 52, strings.Count(string(raw), "\n"), s)
	}
}

func TestRun_Verbose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.txt")
	var out bytes.Buffer

	require.Equal(t, exitOK, run([]string{"-v", path, "6", "15"}, &out))
	assert.Contains(t, out.String(), "[Debug] Graph stats")
	assert.Contains(t, out.String(), "components=1")
}

func TestRun_UsageErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"two args", []string{filepath.Join(dir, "g.txt"), "4"}},
		{"four args", []string{filepath.Join(dir, "g.txt"), "4", "3", "extra"}},
		{"non-integer vertices", []string{filepath.Join(dir, "g.txt"), "four", "3"}},
		{"non-integer edges", []string{filepath.Join(dir, "g.txt"), "4", "3.5"}},
		{"unknown strategy", []string{"-strategy", "shuffle", filepath.Join(dir, "g.txt"), "4", "3"}},
		{"unknown flag", []string{"-bogus", filepath.Join(dir, "g.txt"), "4", "3"}},
		{"negative max draws", []string{"-max-draws", "-1", filepath.Join(dir, "g.txt"), "4", "3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			assert.Equal(t, exitUsage, run(tt.args, &out))
			assert.Contains(t, out.String(), "Usage: misgen")
		})
	}
	assert.NoFileExists(t, filepath.Join(dir, "g.txt"))
}

func TestRun_Help(t *testing.T) {
	var out bytes.Buffer
	assert.Equal(t, exitOK, run([]string{"-h"}, &out))
	assert.Contains(t, out.String(), "-strategy")
}

func TestRun_Infeasible(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.txt")
	for _, s := range []string{"exhaustive", "rejection"} {
		var out bytes.Buffer
		code := run([]string{"-strategy", s, path, "4", "7"}, &out)
		assert.Equal(t, exitFailure, code)
		assert.Contains(t, out.String(), "[Error] Generation failed")
		assert.Contains(t, out.String(), "infeasible")
		assert.NotContains(t, out.String(), "Done!")
	}
	assert.NoFileExists(t, path)
}

func TestRun_UnwritablePath(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{filepath.Join(t.TempDir(), "missing", "g.txt"), "4", "3"}, &out)
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, out.String(), "[Error] Generation failed")
}
