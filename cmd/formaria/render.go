package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formaria/pkg/aria"
	"github.com/goliatone/go-formaria/pkg/model"
	"github.com/goliatone/go-formaria/pkg/orchestrator"
	"github.com/goliatone/go-formaria/pkg/render"
	"github.com/goliatone/go-formaria/pkg/styles"
)

type renderOptions struct {
	Source         string
	Operation      string
	Definitions    string
	FormID         string
	Output         string
	Renderer       string
	Theme          string
	Variant        string
	ThemeManifests []string
	ErrorsPath     string
	ValuesPath     string
	ValidationMode string
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a form definition or OpenAPI operation to HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), cmd.OutOrStdout(), flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Source, "source", "s", "", "Definition (YAML/JSON) or OpenAPI document path")
	cmd.Flags().StringVar(&opts.Operation, "operation", "", "OpenAPI operation id; treats --source as an OpenAPI document")
	cmd.Flags().StringVar(&opts.Definitions, "definitions", "", "Directory of definitions addressed by --form")
	cmd.Flags().StringVar(&opts.FormID, "form", "", "Form id to render from --definitions")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output file (stdout if empty)")
	cmd.Flags().StringVar(&opts.Renderer, "renderer", "", "Renderer name")
	cmd.Flags().StringVar(&opts.Theme, "theme", "", "Theme name")
	cmd.Flags().StringVar(&opts.Variant, "variant", "", "Theme variant")
	cmd.Flags().StringSliceVar(&opts.ThemeManifests, "theme-manifest", nil, "Theme manifest file (repeatable)")
	cmd.Flags().StringVar(&opts.ErrorsPath, "errors", "", "JSON file mapping field paths to server error messages")
	cmd.Flags().StringVar(&opts.ValuesPath, "values", "", "JSON file with submitted values")
	cmd.Flags().StringVar(&opts.ValidationMode, "validation-mode", "", "Override every block's validation mode")

	return cmd
}

func validateRenderOptions(opts renderOptions) error {
	hasSource := strings.TrimSpace(opts.Source) != ""
	hasForm := strings.TrimSpace(opts.FormID) != ""
	switch {
	case !hasSource && !hasForm:
		return errors.New("render: --source or --form is required")
	case hasSource && hasForm:
		return errors.New("render: --source and --form are mutually exclusive")
	case hasForm && strings.TrimSpace(opts.Definitions) == "":
		return errors.New("render: --form requires --definitions")
	case opts.Operation != "" && !hasSource:
		return errors.New("render: --operation requires --source")
	}
	return nil
}

func runRender(ctx context.Context, stdout io.Writer, flags *rootFlags, opts renderOptions) error {
	if err := validateRenderOptions(opts); err != nil {
		return err
	}
	cfg := flags.cfg
	logger := flags.logger

	renderOpts := render.RenderOptions{ValidationMode: cfg.ValidationMode}
	if opts.ValidationMode != "" {
		mode, err := aria.ParseValidationMode(opts.ValidationMode)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		renderOpts.ValidationMode = mode
	}
	if opts.ErrorsPath != "" {
		errs, err := readErrorPayload(opts.ErrorsPath)
		if err != nil {
			return err
		}
		renderOpts.Errors = errs
	}
	if opts.ValuesPath != "" {
		values, err := readValues(opts.ValuesPath)
		if err != nil {
			return err
		}
		renderOpts.Values = values
	}

	options := []orchestrator.Option{
		orchestrator.WithLogger(logger),
		orchestrator.WithLivePolicy(cfg.LivePolicy),
	}
	if renderer := firstNonEmpty(opts.Renderer, cfg.Renderer); renderer != "" {
		options = append(options, orchestrator.WithDefaultRenderer(renderer))
	}

	themeName := firstNonEmpty(opts.Theme, cfg.Theme)
	variant := firstNonEmpty(opts.Variant, cfg.Variant)
	manifestPaths := append(append([]string(nil), cfg.ThemeManifests...), opts.ThemeManifests...)
	if len(manifestPaths) > 0 {
		manifests, err := readManifests(manifestPaths)
		if err != nil {
			return err
		}
		options = append(options, orchestrator.WithThemeManifests(themeName, variant, manifests...))
	}

	req := orchestrator.Request{
		ThemeName:     themeName,
		ThemeVariant:  variant,
		RenderOptions: renderOpts,
	}
	switch {
	case opts.FormID != "":
		store, err := model.LoadFS(os.DirFS(opts.Definitions))
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		options = append(options, orchestrator.WithStore(store))
		req.FormID = opts.FormID
	default:
		req.Path = opts.Source
		req.OperationID = opts.Operation
	}

	html, err := orchestrator.New(options...).Generate(ctx, req)
	if err != nil {
		return err
	}

	if opts.Output == "" {
		_, err := stdout.Write(html)
		return err
	}
	if err := os.WriteFile(opts.Output, html, 0o644); err != nil {
		return fmt.Errorf("render: write output: %w", err)
	}
	logger.Info().Str("output", opts.Output).Int("bytes", len(html)).Msg("form written")
	return nil
}

// readErrorPayload accepts both {"field": "message"} and
// {"field": ["message", ...]} entries.
func readErrorPayload(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("render: read errors: %w", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("render: decode errors %s: %w", path, err)
	}

	out := make(map[string][]string, len(raw))
	for key, value := range raw {
		var single string
		if err := json.Unmarshal(value, &single); err == nil {
			out[key] = []string{single}
			continue
		}
		var many []string
		if err := json.Unmarshal(value, &many); err != nil {
			return nil, fmt.Errorf("render: errors entry %q must be a string or list of strings", key)
		}
		out[key] = many
	}
	return out, nil
}

func readValues(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("render: read values: %w", err)
	}
	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("render: decode values %s: %w", path, err)
	}
	return values, nil
}

func readManifests(paths []string) ([]*theme.Manifest, error) {
	manifests := make([]*theme.Manifest, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("render: read theme manifest: %w", err)
		}
		manifest, err := styles.LoadManifest(data)
		if err != nil {
			return nil, fmt.Errorf("render: %s: %w", path, err)
		}
		manifests = append(manifests, manifest)
	}
	return manifests, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
