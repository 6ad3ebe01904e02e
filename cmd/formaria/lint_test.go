package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLintCommand(t *testing.T) {
	out, _, err := executeCommand(t, nil, "lint", signupPath)
	require.NoError(t, err)
	assert.Equal(t, signupPath+": ok\n", out)

	broken := filepath.Join("testdata", "invalid", "collision.yaml")
	out, stderr, err := executeCommand(t, nil, "lint", signupPath, broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "in 1 file(s)")
	assert.Equal(t, signupPath+": ok\n", out)
	assert.Contains(t, stderr, broken+": ")
	assert.Contains(t, stderr, "color__option--red")
}

func TestLintFiles_MissingFile(t *testing.T) {
	violations := lintFiles([]string{filepath.Join("testdata", "missing.yaml")})
	require.Len(t, violations, 1)
	assert.Equal(t, "-", violations[0].location)
}
