package cli

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTrace(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	root := Root(logger)
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestReplayReportsFinalStats(t *testing.T) {
	path := writeTrace(t, "a x0 16\na x1 32\nf x0\n")
	out, err := runRoot(t, "replay", path)
	require.NoError(t, err)
	assert.Contains(t, out, "replayed 3 operations")
	assert.Contains(t, out, "1 still live")
}

func TestCheckPassesOnConsistentTrace(t *testing.T) {
	path := writeTrace(t, "a x0 16\na x1 16\nf x0\nf x1\n")
	out, err := runRoot(t, "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ok: 4 operations")
}

func TestCheckFailsOnUnknownID(t *testing.T) {
	path := writeTrace(t, "f ghost\n")
	_, err := runRoot(t, "check", path)
	assert.Error(t, err)
}

func TestStatsPrintsByteCounts(t *testing.T) {
	path := writeTrace(t, "a x0 100\n")
	out, err := runRoot(t, "stats", path)
	require.NoError(t, err)
	assert.Contains(t, out, "bytes allocated:")
	assert.Contains(t, out, "utilization:")
}

func TestReplayRejectsMissingFile(t *testing.T) {
	_, err := runRoot(t, "replay", "/no/such/trace.txt")
	assert.Error(t, err)
}
