package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain triggers the CLI as a subprocess when GO_HELPER_PROCESS is set.
func TestMain(m *testing.M) {
	if os.Getenv("GO_HELPER_PROCESS") == "1" {
		main()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

// runCLI runs the CLI in helper process mode with optional extra environment vars.
func runCLI(args []string, extraEnv ...string) (string, error) {
	cmd := exec.Command(os.Args[0], args...)
	cmd.Env = append(os.Environ(), "GO_HELPER_PROCESS=1")
	cmd.Env = append(cmd.Env, extraEnv...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// newTaggedRepo creates a git repository with a single commit tagged tag.
func newTaggedRepo(t *testing.T, tag string) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not available on system")
	}
	tmpDir := t.TempDir()

	runGit := func(args ...string) {
		cmd := exec.Command("git", args...)
		cmd.Dir = tmpDir
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v failed: %v\n%s", args, err, out)
		}
	}
	runGit("init")
	runGit("config", "user.email", "test@example.com")
	runGit("config", "user.name", "Test User")
	runGit("config", "commit.gpgsign", "false")
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "README.md"), []byte("hello\n"), 0644))
	runGit("add", "README.md")
	runGit("commit", "-m", "initial commit")
	if tag != "" {
		runGit("tag", tag)
	}
	return tmpDir
}

func TestCLIHelp(t *testing.T) {
	out, err := runCLI([]string{"--help"})
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "--next")
}

func TestCLIVersionFlag(t *testing.T) {
	out, err := runCLI([]string{"--version"})
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}

func TestCLIRejectsPositionalArgs(t *testing.T) {
	out, err := runCLI([]string{"patch"})
	require.Error(t, err)
	assert.Contains(t, out, "Error: unexpected arguments")
}

func TestCLIRejectsUnknownPart(t *testing.T) {
	out, err := runCLI([]string{"--next", "prerelease"})
	require.Error(t, err)
	assert.Contains(t, out, "Error: unknown bump argument")
}

func TestCLICurrentVersion(t *testing.T) {
	dir := newTaggedRepo(t, "v1.0.2")

	out, err := runCLI([]string{"-C", dir})
	require.NoError(t, err, out)
	assert.Equal(t, "1.0.2", strings.TrimSpace(out))
}

func TestCLINext(t *testing.T) {
	dir := newTaggedRepo(t, "v10.200.5")

	for part, want := range map[string]string{
		"patch": "10.200.6",
		"minor": "10.201.0",
		"major": "11.0.0",
	} {
		out, err := runCLI([]string{"--dir", dir, "--next", part})
		require.NoError(t, err, out)
		assert.Equal(t, want, strings.TrimSpace(out), part)
	}
}

func TestCLINoTag(t *testing.T) {
	dir := newTaggedRepo(t, "")

	out, err := runCLI([]string{"-C", dir})
	require.Error(t, err)
	assert.Contains(t, out, "Error: no semver tag found")
}

func TestCLIPlusTag(t *testing.T) {
	dir := newTaggedRepo(t, "1.0.2+gold")

	out, err := runCLI([]string{"-C", dir, "--next", "patch"})
	require.Error(t, err)
	assert.Contains(t, out, "unsupported '+' element")
}

func TestCLINotARepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not available on system")
	}
	dir := t.TempDir()

	out, err := runCLI([]string{"-C", dir}, "GIT_CEILING_DIRECTORIES="+filepath.Dir(dir))
	require.Error(t, err)
	assert.Contains(t, out, "Error: not a git repository")
}

func TestCLIVerboseLogsGit(t *testing.T) {
	dir := newTaggedRepo(t, "v1.0.2")

	out, err := runCLI([]string{"-C", dir, "--verbose"})
	require.NoError(t, err, out)
	assert.Contains(t, out, "described work tree")
	assert.Contains(t, out, "1.0.2")
}
