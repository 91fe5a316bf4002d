package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grahms/activestep"
)

func TestParse(t *testing.T) {
	t.Run("should parse paths and options", func(t *testing.T) {
		out := &bytes.Buffer{}
		cfg, shouldExit, err := Parse([]string{"-policy", "specific", "-log-level", "DEBUG", "a.json", "b.hcl"}, out)
		require.NoError(t, err)
		require.False(t, shouldExit)
		assert.Equal(t, []string{"a.json", "b.hcl"}, cfg.Paths)
		assert.Equal(t, activestep.EncodeMostSpecific, cfg.Policy)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
	})

	t.Run("should print usage without files", func(t *testing.T) {
		out := &bytes.Buffer{}
		cfg, shouldExit, err := Parse(nil, out)
		require.NoError(t, err)
		assert.True(t, shouldExit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	})

	t.Run("should exit cleanly on help", func(t *testing.T) {
		_, shouldExit, err := Parse([]string{"-h"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.True(t, shouldExit)
	})

	for name, args := range map[string][]string{
		"unknown flag":       {"-nope", "a.json"},
		"unknown policy":     {"-policy", "all", "a.json"},
		"unknown log format": {"-log-format", "xml", "a.json"},
		"unknown log level":  {"-log-level", "trace", "a.json"},
	} {
		t.Run("should reject "+name, func(t *testing.T) {
			_, _, err := Parse(args, &bytes.Buffer{})
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}
