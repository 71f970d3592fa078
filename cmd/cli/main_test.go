package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A manifest with a syntax error makes app.NewApp panic during loading.
	invalidHCL := `
		plugin "animal" "cat" {
			config "x" {
		// Missing closing brace here
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "manifest.hcl")
	err := os.WriteFile(filePath, []byte(invalidHCL), 0600)
	require.NoError(t, err, "failed to set up test file")

	args := []string{"-modules-path", tempDir}
	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(out, args)

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")

	errStr := runErr.Error()
	require.True(t, strings.Contains(errStr, "application startup panicked"), "The error message should indicate that a panic was recovered.")
	require.True(t, strings.Contains(errStr, "failed to parse"), "The error message should contain the underlying reason for the panic.")
}

func TestRun_ValidationFailureIsRecovered(t *testing.T) {
	t.Parallel()

	// An empty manifest directory cannot match the compiled-in plugins, so
	// catalog validation fails at startup.
	args := []string{"-modules-path", t.TempDir()}
	out := &bytes.Buffer{}

	runErr := run(out, args)
	require.Error(t, runErr)
	require.Contains(t, runErr.Error(), "catalog validation failed")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	err := run(out, args)
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Options:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	err := run(out, args)
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_ListsCompiledInPlugins(t *testing.T) {
	t.Parallel()

	args := []string{"-modules-path", "../../modules", "-log-level", "error"}
	out := &bytes.Buffer{}

	err := run(out, args)
	require.NoError(t, err)

	got := out.String()
	require.Contains(t, got, "Cat: Meow")
	require.Contains(t, got, "Dog: Woof")
	require.Contains(t, got, "Bird: Tweet")
}
