package gotemplate

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/flosch/pongo2/v6"
	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-formaria/pkg/aria"
	"github.com/goliatone/go-formaria/pkg/render/template"
)

// DefaultExtension is appended to template names that carry no extension.
const DefaultExtension = ".tmpl"

// Option configures the go-template adapter before construction.
type Option func(*config)

type config struct {
	baseDir   string
	templates fs.FS
	extension string
	extra     []gotemplatepkg.Option
}

// WithBaseDir configures the underlying engine to load templates from a base
// directory on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS configures the underlying engine to load templates from an fs.FS.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithExtension overrides the default template extension used by the engine.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// WithGoTemplateOptions forwards raw go-template options, e.g.
// gotemplatepkg.WithGlobalData or gotemplatepkg.WithTemplateFunc. They are
// applied after the adapter's own settings.
func WithGoTemplateOptions(opts ...gotemplatepkg.Option) Option {
	return func(cfg *config) {
		for _, opt := range opts {
			if opt != nil {
				cfg.extra = append(cfg.extra, opt)
			}
		}
	}
}

// Engine is a go-template engine preloaded with the attrs and classes
// filters. Pre and post hooks are reachable through the embedded engine.
type Engine struct {
	*gotemplatepkg.Engine
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New constructs an Engine using the provided configuration options.
func New(options ...Option) (*Engine, error) {
	cfg := &config{extension: DefaultExtension}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	if cfg.baseDir == "" && cfg.templates == nil {
		return nil, errors.New("gotemplate: need to provide either base dir or fs.FS")
	}

	opts := []gotemplatepkg.Option{
		gotemplatepkg.WithExtension(cfg.extension),
		gotemplatepkg.WithTemplateFunc(map[string]any{
			"attrs":   filterAttrs,
			"classes": filterClasses,
		}),
	}
	if cfg.baseDir != "" {
		opts = append(opts, gotemplatepkg.WithBaseDir(cfg.baseDir))
	}
	if cfg.templates != nil {
		opts = append(opts, gotemplatepkg.WithFS(cfg.templates))
	}
	opts = append(opts, cfg.extra...)

	engine, err := gotemplatepkg.NewRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: load templates: %w", err)
	}
	return &Engine{Engine: engine}, nil
}

// RegisterFilter registers a process-wide pongo2 filter. Registering a name
// that already exists fails.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	name = strings.TrimSpace(name)
	if name == "" || fn == nil {
		return errors.New("gotemplate: filter name and function required")
	}
	if err := e.Engine.RegisterFilter(name, fn); err != nil {
		return fmt.Errorf("gotemplate: %w", err)
	}
	return nil
}

// filterAttrs spreads an attribute map onto an element: {{ field.control|attrs }}.
func filterAttrs(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in == nil || in.IsNil() {
		return pongo2.AsSafeValue(""), nil
	}
	switch v := in.Interface().(type) {
	case aria.Attrs:
		return pongo2.AsSafeValue(v.String()), nil
	case map[string]any:
		return pongo2.AsSafeValue(aria.Attrs(v).String()), nil
	case pongo2.Context:
		return pongo2.AsSafeValue(aria.Attrs(v).String()), nil
	default:
		return nil, &pongo2.Error{
			Sender:    "filter:attrs",
			OrigError: fmt.Errorf("expected attribute map, got %T", v),
		}
	}
}

// filterClasses joins class names from a string or a list, skipping blanks
// and duplicates.
func filterClasses(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in == nil || in.IsNil() {
		return pongo2.AsValue(""), nil
	}

	var names []string
	seen := map[string]struct{}{}
	add := func(raw string) {
		for _, name := range strings.Fields(raw) {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	switch v := in.Interface().(type) {
	case string:
		add(v)
	case []string:
		for _, item := range v {
			add(item)
		}
	case []any:
		for _, item := range v {
			if item != nil {
				add(fmt.Sprint(item))
			}
		}
	default:
		add(fmt.Sprint(v))
	}
	return pongo2.AsValue(strings.Join(names, " ")), nil
}
