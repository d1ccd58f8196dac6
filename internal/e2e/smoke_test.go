package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runSkycircle(t, binaryPath, home, "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.NotEmpty(t, stdout)

	stdout, stderr, err = runSkycircle(t, binaryPath, home, "history", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "No analyses recorded yet.")

	stdout, stderr, err = runSkycircle(t, binaryPath, home, "packs", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "No starter packs published yet.")

	_, _, err = runSkycircle(t, binaryPath, home, "whoami")
	require.Error(t, err)

	assert.FileExists(t, filepath.Join(home, ".skycircle", "history.db"))
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "skycircle-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/skycircle")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build skycircle binary: %s", string(output))
	return binaryPath
}

func runSkycircle(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "SKYCIRCLE_SECRETS_BACKEND=file")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
