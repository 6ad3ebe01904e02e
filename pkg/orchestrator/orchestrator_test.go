package orchestrator_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formaria/pkg/aria"
	"github.com/goliatone/go-formaria/pkg/model"
	"github.com/goliatone/go-formaria/pkg/orchestrator"
	"github.com/goliatone/go-formaria/pkg/render"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func TestGenerate_FromDefinitionSources(t *testing.T) {
	ctx := context.Background()
	orch := orchestrator.New()

	fromPath, err := orch.Generate(ctx, orchestrator.Request{Path: filepath.Join("testdata", "signup.yaml")})
	require.NoError(t, err)
	assert.Contains(t, string(fromPath), `<form id="signup"`)
	assert.Contains(t, string(fromPath), `aria-labelledby="plan__legend"`)

	fromBytes, err := orch.Generate(ctx, orchestrator.Request{
		Definition:     readFixture(t, "signup.yaml"),
		DefinitionName: "signup.yaml",
	})
	require.NoError(t, err)
	assert.Equal(t, string(fromPath), string(fromBytes))

	form := model.Form{ID: "inline", Blocks: []model.Block{{ID: "name", Label: "Name"}}}
	fromMemory, err := orch.Generate(ctx, orchestrator.Request{Form: &form})
	require.NoError(t, err)
	assert.Contains(t, string(fromMemory), `<input id="name" aria-invalid="false"`)
}

func TestGenerate_FromStore(t *testing.T) {
	store, err := model.LoadFS(fstest.MapFS{
		"forms/signup.yaml": {Data: readFixture(t, "signup.yaml")},
	})
	require.NoError(t, err)

	orch := orchestrator.New(orchestrator.WithStore(store))
	out, err := orch.Generate(context.Background(), orchestrator.Request{FormID: "signup"})
	require.NoError(t, err)
	assert.Contains(t, string(out), `<form id="signup"`)

	_, err = orch.Generate(context.Background(), orchestrator.Request{FormID: "missing"})
	require.Error(t, err)
}

func TestGenerate_FromOpenAPI(t *testing.T) {
	orch := orchestrator.New()

	out, err := orch.Generate(context.Background(), orchestrator.Request{
		OpenAPI:     readFixture(t, "accounts.yaml"),
		OperationID: "createAccount",
	})
	require.NoError(t, err)
	html := string(out)
	assert.Contains(t, html, `<form id="createAccount" action="/accounts"`)
	assert.Contains(t, html, `name="owner.firstName"`)
	assert.Contains(t, html, `<button type="submit">Sign up</button>`)

	fromPath, err := orch.Generate(context.Background(), orchestrator.Request{
		Path:        filepath.Join("testdata", "accounts.yaml"),
		OperationID: "createAccount",
	})
	require.NoError(t, err)
	assert.Equal(t, html, string(fromPath))
}

func TestGenerate_Errors(t *testing.T) {
	ctx := context.Background()
	orch := orchestrator.New()

	_, err := orch.Generate(ctx, orchestrator.Request{})
	assert.ErrorIs(t, err, orchestrator.ErrNoSource)

	_, err = orch.Generate(ctx, orchestrator.Request{Form: &model.Form{ID: "empty"}})
	assert.ErrorIs(t, err, model.ErrInvalidForm)

	_, err = orch.Generate(ctx, orchestrator.Request{
		Path:     filepath.Join("testdata", "signup.yaml"),
		Renderer: "missing",
	})
	assert.ErrorIs(t, err, render.ErrRendererNotFound)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = orch.Generate(canceled, orchestrator.Request{Path: filepath.Join("testdata", "signup.yaml")})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerate_LivePolicyAndServerErrors(t *testing.T) {
	orch := orchestrator.New(orchestrator.WithLivePolicy(aria.LivePolicy{
		aria.ValidationEager:  aria.PolitenessAssertive,
		aria.ValidationLazy:   aria.PolitenessPolite,
		aria.ValidationSubmit: aria.PolitenessPolite,
	}))

	out, err := orch.Generate(context.Background(), orchestrator.Request{
		Path: filepath.Join("testdata", "signup.yaml"),
		RenderOptions: render.RenderOptions{
			Errors: map[string][]string{"email": {"Taken"}, "plan": {"Required"}},
		},
	})
	require.NoError(t, err)
	html := string(out)
	assert.Contains(t, html, `<div id="email__error" aria-live="polite" class="formaria-error">Taken</div>`)
	assert.Contains(t, html, `<div id="plan__error" aria-hidden="true" aria-live="assertive" class="formaria-error">Required</div>`)
}

func TestNew_ComposerWithRegistry(t *testing.T) {
	registry, err := render.NewRegistry()
	require.NoError(t, err)

	orch := orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithLivePolicy(aria.DefaultLivePolicy()),
	)
	_, err = orch.Generate(context.Background(), orchestrator.Request{Path: filepath.Join("testdata", "signup.yaml")})
	assert.ErrorIs(t, err, orchestrator.ErrComposerWithRegistry)

	orch = orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithComposer(aria.NewComposer()),
	)
	_, err = orch.Resolve(context.Background(), orchestrator.Request{Path: filepath.Join("testdata", "signup.yaml")})
	assert.ErrorIs(t, err, orchestrator.ErrComposerWithRegistry)
}

func TestGenerate_TransformerAndLogging(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs).Level(zerolog.DebugLevel)

	orch := orchestrator.New(
		orchestrator.WithLogger(logger),
		orchestrator.WithTransformer(orchestrator.TransformerFunc(func(_ context.Context, form *model.Form) error {
			form.Title = "Transformed"
			return nil
		})),
	)

	out, err := orch.Generate(context.Background(), orchestrator.Request{Path: filepath.Join("testdata", "signup.yaml")})
	require.NoError(t, err)
	assert.Contains(t, string(out), "Transformed")

	assert.Contains(t, logs.String(), `"message":"form loaded"`)
	assert.Contains(t, logs.String(), `"message":"form transformed"`)
	assert.Contains(t, logs.String(), `"message":"form rendered"`)
	assert.Contains(t, logs.String(), `"renderer":"vanilla"`)
}

func TestGenerate_TransformerFailure(t *testing.T) {
	boom := errors.New("boom")
	orch := orchestrator.New(orchestrator.WithTransformer(orchestrator.TransformerFunc(func(context.Context, *model.Form) error {
		return boom
	})))

	_, err := orch.Generate(context.Background(), orchestrator.Request{Path: filepath.Join("testdata", "signup.yaml")})
	assert.ErrorIs(t, err, boom)
}

func TestResolve_ReturnsValidatedForm(t *testing.T) {
	orch := orchestrator.New()
	form, err := orch.Resolve(context.Background(), orchestrator.Request{Path: filepath.Join("testdata", "signup.yaml")})
	require.NoError(t, err)
	assert.Equal(t, "signup", form.ID)
	assert.Len(t, form.Blocks, 6)
}
