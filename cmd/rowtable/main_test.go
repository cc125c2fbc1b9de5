package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/rowtable/internal/cli"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"-h"}
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), args, nil, strings.NewReader(""), stdout, stderr)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, stderr.String(), "Usage:", "Expected help text to be printed to stderr")
	require.Empty(t, stdout.String())
}

func TestRun_NoInputKeepsStdoutClean(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), nil, nil, strings.NewReader("a\nb\n"), stdout, stderr)

	// --- Assert ---
	require.NoError(t, err)
	assert.Empty(t, stdout.String(), "usage text must not reach a pipeline")
	assert.Contains(t, stderr.String(), "Usage:")
}

func TestRun_UsageError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), []string{"-r", "0", "in.txt"}, nil, nil, &bytes.Buffer{}, &bytes.Buffer{})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, cli.ExitUsage, exitErr.Code)
	assert.Contains(t, exitErr.Message, "invalid configuration")
}

func TestRun_File(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("name\nAlice\nage\n30\ncity\n"), 0o600))
	stdout := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), []string{path, "--sep", `\t`}, nil, nil, stdout, &bytes.Buffer{})

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "name\tAlice\nage\t30\ncity\t\n", stdout.String())
}

func TestRun_Stdin(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	err := run(context.Background(), []string{"-r", "3", "--sep", ",", "-"}, nil, strings.NewReader("a\nb\nc\nd\ne\n"), stdout, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "a,b,c\nd,e,\n", stdout.String())
}

func TestRun_MissingFile(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.txt")
	stdout := &bytes.Buffer{}
	err := run(context.Background(), []string{missing}, nil, nil, stdout, &bytes.Buffer{})

	require.ErrorIs(t, err, os.ErrNotExist)
	var exitErr *cli.ExitError
	assert.False(t, errors.As(err, &exitErr), "I/O failures are not usage errors")
	assert.Empty(t, stdout.String())
}
