// Package formaria wires accessible form fields on the server: derived ids,
// ARIA descriptors for single fields and field groups, and an HTML renderer
// that applies them. The subpackages hold the pieces; this package
// re-exports the common entry points.
package formaria

import (
	"context"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formaria/pkg/aria"
	"github.com/goliatone/go-formaria/pkg/orchestrator"
	"github.com/goliatone/go-formaria/pkg/render"
	"github.com/goliatone/go-formaria/pkg/renderers/vanilla"
)

type (
	FieldState     = aria.FieldState
	FieldData      = aria.FieldData
	GroupState     = aria.GroupState
	GroupData      = aria.GroupData
	ValidationMode = aria.ValidationMode
	LivePolicy     = aria.LivePolicy

	// RenderOptions describes per-request overrides that renderers use to
	// prefill values or surface server-side validation errors.
	RenderOptions = render.RenderOptions
	Request       = orchestrator.Request
)

// ComposeField returns the descriptors for a single labelled control using
// the default live policy.
func ComposeField(fieldID string, state FieldState) FieldData {
	return aria.ComposeField(fieldID, state)
}

// ComposeGroup returns the descriptors for a field group using the default
// live policy.
func ComposeGroup(fieldID string, state GroupState) GroupData {
	return aria.ComposeGroup(fieldID, state)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML renders the definition file at path with the default vanilla
// renderer unless the options register another.
func GenerateHTML(ctx context.Context, path string, renderOptions RenderOptions, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Path:          path,
		RenderOptions: renderOptions,
	})
}

// GenerateHTMLFromOpenAPI renders the request body of an OpenAPI operation.
func GenerateHTMLFromOpenAPI(ctx context.Context, document []byte, operationID string, renderOptions RenderOptions, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		OpenAPI:       document,
		OperationID:   operationID,
		RenderOptions: renderOptions,
	})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithLivePolicy replaces the validation mode to aria-live table used by the
// default renderer.
func WithLivePolicy(policy LivePolicy) orchestrator.Option {
	return orchestrator.WithLivePolicy(policy)
}

// EmbeddedTemplates exposes the built-in vanilla renderer templates so callers
// can reuse or extend them.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// EmbeddedAssets exposes the bundled stylesheet.
func EmbeddedAssets() fs.FS {
	return vanilla.AssetsFS()
}
