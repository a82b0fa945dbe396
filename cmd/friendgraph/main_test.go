package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("FRIENDGRAPH_LOG_LEVEL", "error")
	t.Setenv("FRIENDGRAPH_LOG_FORMAT", "")
	t.Setenv("FRIENDGRAPH_SCRIPT", "")
}

func TestRunDemo(t *testing.T) {
	clearEnv(t)
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	err := run(context.Background(), nil, strings.NewReader(""), stdout, stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Zoe does not exist in the network.\n")
	assert.True(t, strings.HasSuffix(stdout.String(), "Frank: David, Eve, Alice\n"))
	assert.Empty(t, stderr.String())
}

func TestRunScriptFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "people.txt")
	require.NoError(t, os.WriteFile(path, []byte("add Alice\nadd Bob\nfriend Alice Bob\nlist\n"), 0600))

	stdout := &bytes.Buffer{}
	err := run(context.Background(), []string{"-script", path}, nil, stdout, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"Person Alice added to the network.",
		"Person Bob added to the network.",
		"Alice and Bob are now friends.",
		"Alice: Bob",
		"Bob: Alice",
	}, "\n")+"\n", stdout.String())
}

func TestRunStdin(t *testing.T) {
	clearEnv(t)
	stdout := &bytes.Buffer{}
	err := run(context.Background(), []string{"-script", "-"}, strings.NewReader("list\n"), stdout, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "The network is empty.\n", stdout.String())
}

func TestRunSyntaxError(t *testing.T) {
	clearEnv(t)
	stderr := &bytes.Buffer{}
	err := run(context.Background(), []string{"-script", "-"}, strings.NewReader("add Alice\nunfriend Alice Bob\n"), &bytes.Buffer{}, stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load script")
	assert.Contains(t, err.Error(), "line 2")
	assert.Empty(t, stderr.String(), "errors are returned once, not also logged")
}

func TestRunEnvFile(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.Unsetenv("FRIENDGRAPH_SCRIPT"))

	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "people.txt")
	require.NoError(t, os.WriteFile(scriptPath, []byte("add Alice\nadd Bob\nfriend Bob Alice\nedges\n"), 0600))
	envPath := filepath.Join(dir, "friendgraph.env")
	require.NoError(t, os.WriteFile(envPath, []byte("FRIENDGRAPH_SCRIPT="+scriptPath+"\n"), 0600))

	stdout := &bytes.Buffer{}
	err := run(context.Background(), []string{"-env", envPath}, nil, stdout, &bytes.Buffer{})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stdout.String(), "Bob and Alice are now friends.\nAlice - Bob\n"))
}

func TestRunMissingEnvFile(t *testing.T) {
	clearEnv(t)
	err := run(context.Background(), []string{"-env", filepath.Join(t.TempDir(), "nope.env")}, nil, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRunMissingFile(t *testing.T) {
	clearEnv(t)
	err := run(context.Background(), []string{"-script", filepath.Join(t.TempDir(), "nope.txt")}, nil, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRunBadFlag(t *testing.T) {
	clearEnv(t)
	stderr := &bytes.Buffer{}
	err := run(context.Background(), []string{"-verbose"}, nil, &bytes.Buffer{}, stderr)
	assert.ErrorIs(t, err, errUsage)
	assert.Contains(t, stderr.String(), "-verbose")
}
