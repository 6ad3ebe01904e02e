package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formaria/pkg/aria"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "formaria.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
renderer: vanilla
theme: acme
variant: dark
theme_manifests:
  - themes/acme.yaml
validation_mode: blur
log_level: debug
live_policy:
  eager: assertive
  submit: polite
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, config{
		Renderer:       "vanilla",
		Theme:          "acme",
		Variant:        "dark",
		ThemeManifests: []string{"themes/acme.yaml"},
		ValidationMode: aria.ValidationLazy,
		LivePolicy: aria.LivePolicy{
			aria.ValidationEager:  aria.PolitenessAssertive,
			aria.ValidationSubmit: aria.PolitenessPolite,
		},
		LogLevel: "debug",
	}, cfg)
}

func TestLoadConfig_DefaultsAndEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FORMARIA_THEME", "night")

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultRenderer, cfg.Renderer)
	assert.Equal(t, defaultLogLevel, cfg.LogLevel)
	assert.Equal(t, "night", cfg.Theme)
	assert.Nil(t, cfg.LivePolicy)
	assert.Equal(t, aria.ValidationUnset, cfg.ValidationMode)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = loadConfig(writeConfig(t, "validation_mode: sometimes\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), cfgKeyValidationMode)

	_, err = loadConfig(writeConfig(t, "live_policy:\n  eager: loud\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), cfgKeyLivePolicy)
}

func TestRootCommand_InvalidLogLevel(t *testing.T) {
	_, _, err := executeCommand(t, nil, "--log-level", "chatty", "ids", "email")
	require.Error(t, err)
}
