package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formaria/pkg/aria"
	"github.com/goliatone/go-formaria/pkg/model"
	"github.com/goliatone/go-formaria/pkg/render"
	rendertemplate "github.com/goliatone/go-formaria/pkg/render/template"
	gotemplate "github.com/goliatone/go-formaria/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formaria/pkg/styles"
)

// Name is the registry name of the renderer.
const Name = "vanilla"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	composer         *aria.Composer
	inlineStyles     bool
	stylesheetURL    string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must provide the paths listed by styles.DefaultPartials unless the theme
// overrides them.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithComposer sets the aria composer, e.g. one with a custom live policy.
func WithComposer(composer *aria.Composer) Option {
	return func(cfg *config) {
		if composer != nil {
			cfg.composer = composer
		}
	}
}

// WithDefaultStyles inlines the bundled stylesheet ahead of the form.
func WithDefaultStyles() Option {
	return func(cfg *config) {
		cfg.inlineStyles = true
	}
}

// WithStylesheet links an external stylesheet ahead of the form. It wins over
// the theme's "stylesheet" asset.
func WithStylesheet(url string) Option {
	return func(cfg *config) {
		cfg.stylesheetURL = strings.TrimSpace(url)
	}
}

// Renderer renders forms as server-side HTML with the accessibility wiring
// applied to every block.
type Renderer struct {
	templates     rendertemplate.TemplateRenderer
	composer      *aria.Composer
	inlineStyles  bool
	stylesheetURL string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.composer == nil {
		cfg.composer = aria.NewComposer()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:     renderer,
		composer:      cfg.composer,
		inlineStyles:  cfg.inlineStyles,
		stylesheetURL: cfg.stylesheetURL,
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the form markup. Server errors in options.Errors replace
// the static block errors; unmatched keys are listed above the blocks.
func (r *Renderer) Render(ctx context.Context, form model.Form, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	partials := resolvePartials(options.Theme)
	mapping := render.MapErrorPayload(form, options.Errors)

	blocks := make([]string, 0, len(form.Blocks))
	for _, block := range form.Blocks {
		content := resolveContent(form, block, mapping.Fields, options)

		var (
			html string
			err  error
		)
		if block.IsGroup() {
			html, err = r.templates.RenderTemplate(partials[styles.PartialGroup], map[string]any{
				"group": buildGroup(r.composer, block, content),
			})
		} else {
			html, err = r.templates.RenderTemplate(partials[styles.PartialField], map[string]any{
				"field": buildField(r.composer, block, content),
			})
		}
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: render block %q: %w", block.ID, err)
		}
		blocks = append(blocks, html)
	}

	view := r.buildForm(form, options, render.MergeFormErrors(mapping.Form, options.FormErrors...), blocks)
	result, err := r.templates.RenderTemplate(partials[styles.PartialForm], map[string]any{
		"form": view,
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) buildForm(form model.Form, options render.RenderOptions, errors []string, blocks []string) formView {
	method := strings.ToLower(strings.TrimSpace(form.Method))
	if method == "" {
		method = "post"
	}
	submit := strings.TrimSpace(form.SubmitLabel)
	if submit == "" {
		submit = "Submit"
	}

	view := formView{
		Attrs: aria.Attrs{
			"id":                   form.ID,
			"class":                styles.ClassForm,
			"action":               form.Action,
			"method":               method,
			"data-validation-mode": string(form.ValidationModeFor(model.Block{})),
		},
		Title:         form.Title,
		Description:   form.Description,
		Errors:        errors,
		Blocks:        blocks,
		SubmitLabel:   submit,
		StylesheetURL: r.stylesheetURL,
	}
	if r.inlineStyles {
		view.Stylesheet = defaultStylesheet()
	}
	applyTheme(&view, options.Theme)
	return view
}

func applyTheme(view *formView, cfg *theme.RendererConfig) {
	if cfg == nil {
		return
	}
	view.Theme = cfg.Theme
	vars := cfg.CSSVars
	if len(vars) == 0 {
		vars = styles.CSSVars(cfg.Tokens)
	}
	view.ThemeVars = styles.CSSVarsBlock(vars)
	if view.StylesheetURL == "" && cfg.AssetURL != nil {
		view.StylesheetURL = cfg.AssetURL("stylesheet")
	}
}

func resolvePartials(cfg *theme.RendererConfig) map[string]string {
	partials := styles.DefaultPartials()
	if cfg == nil {
		return partials
	}
	for key := range partials {
		if override := strings.TrimSpace(cfg.Partials[key]); override != "" {
			partials[key] = override
		}
	}
	return partials
}
