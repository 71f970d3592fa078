package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse(nil, out)
	require.NoError(t, err)
	require.False(t, shouldExit)

	assert.Equal(t, "modules", cfg.ModulesPath)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.RunProbes)
	assert.Equal(t, 10*time.Second, cfg.ProbeTimeout)
	assert.Zero(t, cfg.InspectPort)
}

func TestParse_AllFlags(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, _, err := Parse([]string{
		"-modules-path", "plugins",
		"-log-format", "text",
		"-log-level", "debug",
		"-probe",
		"-probe-timeout", "3s",
		"-inspect-port", "8321",
	}, out)
	require.NoError(t, err)

	assert.Equal(t, "plugins", cfg.ModulesPath)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.RunProbes)
	assert.Equal(t, 3*time.Second, cfg.ProbeTimeout)
	assert.Equal(t, 8321, cfg.InspectPort)
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	_, shouldExit, err := Parse([]string{"-h"}, out)
	require.NoError(t, err)
	require.True(t, shouldExit)
	assert.Contains(t, out.String(), "Options:")
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"bad log format", []string{"-log-format", "yaml"}, "invalid log-format"},
		{"bad log level", []string{"-log-level", "loud"}, "invalid log-level"},
		{"bad probe timeout", []string{"-probe-timeout", "soon"}, "invalid probe-timeout"},
		{"empty modules path", []string{"-modules-path", ""}, "ModulesPath is a required configuration field"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out := &bytes.Buffer{}
			_, _, err := Parse(tc.args, out)
			require.Error(t, err)

			exitErr, ok := err.(*ExitError)
			require.True(t, ok, "expected an ExitError")
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}
