package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var signupPath = filepath.Join("testdata", "definitions", "signup.yaml")

func TestRenderCommand_StdoutWithServerErrors(t *testing.T) {
	out, _, err := executeCommand(t, nil, "render",
		"--source", signupPath,
		"--errors", filepath.Join("testdata", "errors.json"),
	)
	require.NoError(t, err)

	assert.Contains(t, out, `<form id="signup"`)
	assert.Contains(t, out, `<div id="email__error" aria-live="assertive" class="formaria-error">Taken</div>`)
	assert.Contains(t, out, `<div id="plan__error" aria-hidden="true" aria-live="polite" class="formaria-error">Pick a plan</div>`)
	assert.Contains(t, out, `<li>Try again later</li>`)
}

func TestRenderCommand_ValidationModeOverride(t *testing.T) {
	out, _, err := executeCommand(t, nil, "render",
		"--source", signupPath,
		"--errors", filepath.Join("testdata", "errors.json"),
		"--validation-mode", "change",
	)
	require.NoError(t, err)
	assert.Contains(t, out, `<div id="email__error" aria-live="polite" class="formaria-error">Taken</div>`)
}

func TestRenderCommand_OutputFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "signup.html")

	out, _, err := executeCommand(t, nil, "render", "--source", signupPath, "--output", target)
	require.NoError(t, err)
	assert.Empty(t, out)

	written, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(written), `aria-labelledby="plan__legend"`)
}

func TestRenderCommand_OpenAPIOperation(t *testing.T) {
	out, _, err := executeCommand(t, nil, "render",
		"--source", filepath.Join("testdata", "accounts.yaml"),
		"--operation", "createAccount",
	)
	require.NoError(t, err)
	assert.Contains(t, out, `<form id="createAccount" action="/accounts"`)
	assert.Contains(t, out, `<button type="submit">Sign up</button>`)
}

func TestRenderCommand_DefinitionsStore(t *testing.T) {
	out, _, err := executeCommand(t, nil, "render",
		"--definitions", filepath.Join("testdata", "definitions"),
		"--form", "signup",
	)
	require.NoError(t, err)
	assert.Contains(t, out, `<form id="signup"`)
}

func TestRenderCommand_ThemeManifest(t *testing.T) {
	out, _, err := executeCommand(t, nil, "render",
		"--source", signupPath,
		"--theme-manifest", filepath.Join("testdata", "acme.yaml"),
		"--theme", "acme",
		"--variant", "dark",
	)
	require.NoError(t, err)
	assert.Contains(t, out, `<link rel="stylesheet" href="/static/acme.css">`)
	assert.Contains(t, out, `<style data-theme="acme">`)
	assert.Contains(t, out, "--brand: #000000;")
}

func TestRenderCommand_Values(t *testing.T) {
	values := filepath.Join(t.TempDir(), "values.json")
	require.NoError(t, os.WriteFile(values, []byte(`{"plan": "pro"}`), 0o644))

	out, _, err := executeCommand(t, nil, "render", "--source", signupPath, "--values", values)
	require.NoError(t, err)
	assert.Contains(t, out, `<input id="plan__option--pro" checked`)
}

func TestValidateRenderOptions(t *testing.T) {
	cases := []struct {
		name string
		opts renderOptions
		want string
	}{
		{name: "no source", opts: renderOptions{}, want: "--source or --form is required"},
		{name: "both sources", opts: renderOptions{Source: "a.yaml", FormID: "a", Definitions: "."}, want: "mutually exclusive"},
		{name: "form without definitions", opts: renderOptions{FormID: "a"}, want: "--form requires --definitions"},
		{name: "operation without source", opts: renderOptions{FormID: "a", Definitions: ".", Operation: "op"}, want: "--operation requires --source"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateRenderOptions(tc.opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}

	assert.NoError(t, validateRenderOptions(renderOptions{Source: "a.yaml"}))
}

func TestRenderCommand_Errors(t *testing.T) {
	_, _, err := executeCommand(t, nil, "render", "--source", filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)

	_, _, err = executeCommand(t, nil, "render", "--source", signupPath, "--validation-mode", "sometimes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown validation mode")

	badErrors := filepath.Join(t.TempDir(), "errors.json")
	require.NoError(t, os.WriteFile(badErrors, []byte(`{"email": 3}`), 0o644))
	_, _, err = executeCommand(t, nil, "render", "--source", signupPath, "--errors", badErrors)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `errors entry "email"`)
}

func TestReadErrorPayload(t *testing.T) {
	payload, err := readErrorPayload(filepath.Join("testdata", "errors.json"))
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"email":            {"Taken"},
		"/body/plan":       {"Pick a plan"},
		"non_field_errors": {"Try again later"},
	}, payload)
}
