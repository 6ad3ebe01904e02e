package styles

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

// Template keys renderers look up in RendererConfig.Partials.
const (
	PartialForm  = "forms.form"
	PartialField = "forms.field"
	PartialGroup = "forms.group"
)

var (
	ErrThemeNotFound   = errors.New("styles: theme not found")
	ErrVariantNotFound = errors.New("styles: theme variant not found")
)

// DefaultPartials returns the built-in template paths keyed by partial name.
func DefaultPartials() map[string]string {
	return map[string]string{
		PartialForm:  "templates/form.tmpl",
		PartialField: "templates/field.tmpl",
		PartialGroup: "templates/group.tmpl",
	}
}

// ConfigFromSelection flattens a theme selection into renderer
// configuration. Variant tokens, templates and assets override the base
// manifest; fallbacks fill partials neither defines. CSS variables are
// derived from tokens as --<token>.
func ConfigFromSelection(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	if selection == nil {
		return nil
	}

	tokens := map[string]string{}
	partials := copyStringMap(fallbacks)
	if partials == nil {
		partials = map[string]string{}
	}
	prefix := ""
	files := map[string]string{}

	if manifest := selection.Manifest; manifest != nil {
		mergeInto(tokens, manifest.Tokens)
		mergeInto(partials, manifest.Templates)
		prefix = manifest.Assets.Prefix
		mergeInto(files, manifest.Assets.Files)

		if variant, ok := manifest.Variants[selection.Variant]; ok {
			mergeInto(tokens, variant.Tokens)
			mergeInto(partials, variant.Templates)
			if variant.Assets.Prefix != "" {
				prefix = variant.Assets.Prefix
			}
			mergeInto(files, variant.Assets.Files)
		}
	}

	return &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  CSSVars(tokens),
		AssetURL: assetResolver(prefix, files),
	}
}

// CSSVars maps token names to custom property names.
func CSSVars(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return map[string]string{}
	}
	out := make(map[string]string, len(tokens))
	for key, value := range tokens {
		name := strings.TrimSpace(key)
		if name == "" {
			continue
		}
		out["--"+strings.TrimPrefix(name, "--")] = value
	}
	return out
}

// CSSVarsBlock renders custom properties as a :root rule with sorted keys.
// Entries whose name or value could close the declaration or the enclosing
// style element are dropped.
func CSSVarsBlock(vars map[string]string) string {
	keys := make([]string, 0, len(vars))
	for key, value := range vars {
		if !safeCSSToken(key) || !safeCSSToken(value) {
			continue
		}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString("  ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

func safeCSSToken(s string) bool {
	return strings.TrimSpace(s) != "" && !strings.ContainsAny(s, "<>;{}")
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	return func(key string) string {
		file := strings.TrimSpace(files[key])
		if file == "" {
			return ""
		}
		if strings.HasPrefix(file, "http://") || strings.HasPrefix(file, "https://") || strings.HasPrefix(file, "/") {
			return file
		}
		if prefix == "" {
			return file
		}
		return strings.TrimRight(prefix, "/") + "/" + file
	}
}

// ManifestSelector implements theme.ThemeSelector over a fixed set of
// manifests.
type ManifestSelector struct {
	manifests      map[string]*theme.Manifest
	defaultTheme   string
	defaultVariant string
}

var _ theme.ThemeSelector = (*ManifestSelector)(nil)

// NewManifestSelector registers manifests by name. The default theme must be
// one of them when set.
func NewManifestSelector(defaultTheme, defaultVariant string, manifests ...*theme.Manifest) (*ManifestSelector, error) {
	s := &ManifestSelector{
		manifests:      make(map[string]*theme.Manifest, len(manifests)),
		defaultTheme:   strings.TrimSpace(defaultTheme),
		defaultVariant: strings.TrimSpace(defaultVariant),
	}
	for _, manifest := range manifests {
		if manifest == nil {
			continue
		}
		name := strings.TrimSpace(manifest.Name)
		if name == "" {
			return nil, errors.New("styles: manifest name is required")
		}
		if _, exists := s.manifests[name]; exists {
			return nil, fmt.Errorf("styles: manifest %q registered twice", name)
		}
		s.manifests[name] = manifest
	}
	if s.defaultTheme != "" {
		if _, ok := s.manifests[s.defaultTheme]; !ok {
			return nil, fmt.Errorf("%w: default %q", ErrThemeNotFound, s.defaultTheme)
		}
	}
	return s, nil
}

// Select resolves a theme and variant, falling back to the defaults for
// empty arguments.
func (s *ManifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.defaultTheme
	}
	variant = strings.TrimSpace(variant)
	if variant == "" && name == s.defaultTheme {
		variant = s.defaultVariant
	}

	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("%w: %q/%q", ErrVariantNotFound, name, variant)
		}
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

type manifestFile struct {
	Name      string                 `yaml:"name"`
	Version   string                 `yaml:"version"`
	Tokens    map[string]string      `yaml:"tokens"`
	Templates map[string]string      `yaml:"templates"`
	Assets    assetsFile             `yaml:"assets"`
	Variants  map[string]variantFile `yaml:"variants"`
}

type assetsFile struct {
	Prefix string            `yaml:"prefix"`
	Files  map[string]string `yaml:"files"`
}

type variantFile struct {
	Tokens    map[string]string `yaml:"tokens"`
	Templates map[string]string `yaml:"templates"`
	Assets    assetsFile        `yaml:"assets"`
}

// LoadManifest decodes a YAML (or JSON) theme manifest.
func LoadManifest(data []byte) (*theme.Manifest, error) {
	var raw manifestFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("styles: decode manifest: %w", err)
	}
	if strings.TrimSpace(raw.Name) == "" {
		return nil, errors.New("styles: manifest name is required")
	}

	manifest := &theme.Manifest{
		Name:      raw.Name,
		Version:   raw.Version,
		Tokens:    raw.Tokens,
		Templates: raw.Templates,
		Assets:    theme.Assets{Prefix: raw.Assets.Prefix, Files: raw.Assets.Files},
	}
	if len(raw.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(raw.Variants))
		for name, variant := range raw.Variants {
			manifest.Variants[name] = theme.Variant{
				Tokens:    variant.Tokens,
				Templates: variant.Templates,
				Assets:    theme.Assets{Prefix: variant.Assets.Prefix, Files: variant.Assets.Files},
			}
		}
	}
	return manifest, nil
}

func mergeInto(dst, src map[string]string) {
	for key, value := range src {
		dst[key] = value
	}
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
