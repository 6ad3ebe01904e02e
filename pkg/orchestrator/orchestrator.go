package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-formaria/internal/openapi"
	"github.com/goliatone/go-formaria/pkg/aria"
	"github.com/goliatone/go-formaria/pkg/model"
	"github.com/goliatone/go-formaria/pkg/render"
	"github.com/goliatone/go-formaria/pkg/renderers/vanilla"
	"github.com/goliatone/go-formaria/pkg/styles"
)

const defaultRendererName = vanilla.Name

// ErrNoSource is returned when a request names no form source.
var ErrNoSource = errors.New("orchestrator: request has no form source")

// ErrComposerWithRegistry is returned when a composer option is combined with
// WithRegistry. Configure the composer on the registered renderers instead.
var ErrComposerWithRegistry = errors.New("orchestrator: composer options only apply to the default renderer")

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithLogger sets the logger used for pipeline debug output. The default
// discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithComposer configures the composer handed to the default vanilla
// renderer. Combined with WithRegistry it fails with ErrComposerWithRegistry.
func WithComposer(composer *aria.Composer) Option {
	return func(o *Orchestrator) {
		o.composer = composer
	}
}

// WithLivePolicy is shorthand for WithComposer with a custom live table, so
// it cannot be combined with WithRegistry either.
func WithLivePolicy(policy aria.LivePolicy) Option {
	return func(o *Orchestrator) {
		o.composer = aria.NewComposer(aria.WithLivePolicy(policy))
	}
}

// WithThemeSelector resolves theme/variant choices ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeManifests registers manifests behind a styles.ManifestSelector.
func WithThemeManifests(defaultTheme, defaultVariant string, manifests ...*theme.Manifest) Option {
	return func(o *Orchestrator) {
		selector, err := styles.NewManifestSelector(defaultTheme, defaultVariant, manifests...)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: theme manifests: %w", err)
			return
		}
		o.themeSelector = selector
	}
}

// WithThemeFallbacks overrides the partial paths used when a theme leaves a
// template unset.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		o.themeFallbacks = fallbacks
	}
}

// WithStore supplies preloaded definitions addressed by Request.FormID.
func WithStore(store *model.Store) Option {
	return func(o *Orchestrator) {
		o.store = store
	}
}

// WithTransformer registers a Transformer that can mutate definitions after
// loading but before validation and rendering.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// Orchestrator coordinates the full pipeline from a definition source to
// rendered output. Defaults: vanilla renderer, embedded templates, no theme.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	logger          zerolog.Logger
	composer        *aria.Composer
	themeSelector   theme.ThemeSelector
	themeFallbacks  map[string]string
	store           *model.Store
	transformer     Transformer
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		logger:          zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one generation. Exactly one source is used, checked in
// field order: Form, Definition, Path, FormID, OpenAPI.
type Request struct {
	// Form renders an in-memory definition.
	Form *model.Form

	// Definition holds YAML or JSON bytes; DefinitionName picks the format
	// by extension and defaults to YAML.
	Definition     []byte
	DefinitionName string

	// Path reads a definition file, or an OpenAPI document when OperationID
	// is set.
	Path string

	// FormID selects a definition from the configured store.
	FormID string

	// OpenAPI holds a document; OperationID selects the operation whose
	// request body becomes the form.
	OpenAPI     []byte
	OperationID string

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant are passed to the theme selector.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries per-request values, server errors, and overrides.
	RenderOptions render.RenderOptions
}

// Generate resolves, validates, themes, and renders the requested form.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	form, err := o.Resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	options := req.RenderOptions
	if options.Theme == nil {
		cfg, err := o.resolveTheme(req)
		if err != nil {
			return nil, err
		}
		options.Theme = cfg
	}

	output, err := renderer.Render(ctx, form, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	o.logger.Debug().
		Str("form", form.ID).
		Str("renderer", renderer.Name()).
		Int("bytes", len(output)).
		Msg("form rendered")
	return output, nil
}

// Resolve loads, transforms, and validates the requested definition without
// rendering it.
func (o *Orchestrator) Resolve(ctx context.Context, req Request) (model.Form, error) {
	if err := ctx.Err(); err != nil {
		return model.Form{}, err
	}
	if err := o.initialiseErr; err != nil {
		return model.Form{}, err
	}

	form, source, err := o.loadForm(ctx, req)
	if err != nil {
		return model.Form{}, err
	}
	o.logger.Debug().Str("form", form.ID).Str("source", source).Int("blocks", len(form.Blocks)).Msg("form loaded")

	if o.transformer != nil {
		if err := o.transformer.Transform(ctx, &form); err != nil {
			return model.Form{}, fmt.Errorf("orchestrator: transform form: %w", err)
		}
		o.logger.Debug().Str("form", form.ID).Msg("form transformed")
	}

	if err := model.Validate(form); err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			o.logger.Debug().Str("form", form.ID).Int("issues", len(verr.Issues)).Msg("form rejected")
		}
		return model.Form{}, fmt.Errorf("orchestrator: %w", err)
	}
	return form, nil
}

func (o *Orchestrator) loadForm(ctx context.Context, req Request) (model.Form, string, error) {
	switch {
	case req.Form != nil:
		return req.Form.Clone(), "memory", nil
	case len(req.Definition) > 0:
		name := req.DefinitionName
		if name == "" {
			name = "definition.yaml"
		}
		form, err := model.Load(req.Definition, name)
		if err != nil {
			return model.Form{}, "", fmt.Errorf("orchestrator: load definition: %w", err)
		}
		return form, name, nil
	case req.Path != "" && req.OperationID == "":
		form, err := model.LoadFile(req.Path)
		if err != nil {
			return model.Form{}, "", fmt.Errorf("orchestrator: load definition: %w", err)
		}
		return form, req.Path, nil
	case req.FormID != "":
		if o.store == nil {
			return model.Form{}, "", errors.New("orchestrator: form store is not configured")
		}
		form, ok := o.store.Form(req.FormID)
		if !ok {
			return model.Form{}, "", fmt.Errorf("orchestrator: form %q not found in store", req.FormID)
		}
		return form, "store", nil
	case req.OperationID != "":
		raw := req.OpenAPI
		source := "openapi"
		if len(raw) == 0 && req.Path != "" {
			data, err := os.ReadFile(req.Path)
			if err != nil {
				return model.Form{}, "", fmt.Errorf("orchestrator: read openapi document: %w", err)
			}
			raw, source = data, req.Path
		}
		form, err := openapi.FormFromOperation(ctx, raw, req.OperationID)
		if err != nil {
			return model.Form{}, "", fmt.Errorf("orchestrator: %w", err)
		}
		return form, source + "#" + req.OperationID, nil
	}
	return model.Form{}, "", ErrNoSource
}

func (o *Orchestrator) resolveTheme(req Request) (*theme.RendererConfig, error) {
	if o.themeSelector == nil {
		return nil, nil
	}
	selection, err := o.themeSelector.Select(req.ThemeName, req.ThemeVariant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme: %w", err)
	}
	cfg := styles.ConfigFromSelection(selection, o.fallbacks())
	if cfg != nil {
		o.logger.Debug().Str("theme", cfg.Theme).Str("variant", cfg.Variant).Msg("theme selected")
	}
	return cfg, nil
}

func (o *Orchestrator) fallbacks() map[string]string {
	if len(o.themeFallbacks) > 0 {
		return o.themeFallbacks
	}
	return defaultThemeFallbacks()
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := strings.TrimSpace(name)
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.registry == nil {
		registry, _ := render.NewRegistry()
		renderer, err := vanilla.New(vanilla.WithComposer(o.composer))
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			registry.MustRegister(renderer)
		}
		o.registry = registry
	} else if o.composer != nil && o.initialiseErr == nil {
		o.initialiseErr = ErrComposerWithRegistry
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}

func defaultThemeFallbacks() map[string]string {
	return styles.DefaultPartials()
}
