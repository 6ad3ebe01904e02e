package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formaria/pkg/aria"
)

const (
	kindField = "field"
	kindGroup = "group"

	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	inspectKinds = []string{kindField, kindGroup}
	inspectModes = []string{"unset", string(aria.ValidationEager), string(aria.ValidationLazy), string(aria.ValidationSubmit)}
	inspectRoles = []string{string(aria.RoleGroup), string(aria.RoleRadioGroup)}
)

type inspectOptions struct {
	Format string
}

// inspectAnswers is everything the prompts collect.
type inspectAnswers struct {
	FieldID  string
	Label    string
	Kind     string
	Required bool
	Hint     string
	Error    string
	Mode     aria.ValidationMode
	Role     aria.Role
	Options  []string
}

type optionDescriptor struct {
	Value   string     `json:"value" yaml:"value"`
	Control aria.Attrs `json:"control" yaml:"control"`
	Label   aria.Attrs `json:"label" yaml:"label"`
}

type descriptor struct {
	Kind       string             `json:"kind" yaml:"kind"`
	FieldID    string             `json:"fieldId" yaml:"fieldId"`
	Label      aria.Attrs         `json:"label,omitempty" yaml:"label,omitempty"`
	Control    aria.Attrs         `json:"control,omitempty" yaml:"control,omitempty"`
	Container  aria.Attrs         `json:"container,omitempty" yaml:"container,omitempty"`
	Legend     aria.Attrs         `json:"legend,omitempty" yaml:"legend,omitempty"`
	LegendHTML string             `json:"legendHtml,omitempty" yaml:"legendHtml,omitempty"`
	Hint       aria.Attrs         `json:"hint" yaml:"hint"`
	Error      aria.Attrs         `json:"error" yaml:"error"`
	Options    []optionDescriptor `json:"options,omitempty" yaml:"options,omitempty"`
	Required   bool               `json:"required" yaml:"required"`
}

func newInspectCmd(flags *rootFlags) *cobra.Command {
	opts := inspectOptions{Format: formatJSON}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Interactively compose the ARIA descriptors for one field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), cmd.OutOrStdout(), flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", formatJSON, "Output format (json or yaml)")
	return cmd
}

func runInspect(ctx context.Context, out io.Writer, flags *rootFlags, opts inspectOptions) error {
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format != formatJSON && format != formatYAML {
		return fmt.Errorf("inspect: unsupported format %q", opts.Format)
	}
	if flags.driver == nil {
		return errors.New("inspect: no prompt driver configured")
	}

	answers, err := askInspect(ctx, flags.driver, flags.cfg.ValidationMode)
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}

	composer := aria.NewComposer(aria.WithLivePolicy(flags.cfg.LivePolicy))
	desc := composeDescriptor(composer, answers)
	flags.logger.Debug().Str("field", desc.FieldID).Str("kind", desc.Kind).Msg("descriptor composed")

	return writeDescriptor(out, desc, format)
}

func askInspect(ctx context.Context, driver PromptDriver, defaultMode aria.ValidationMode) (inspectAnswers, error) {
	var answers inspectAnswers
	var err error

	answers.FieldID, err = driver.Input(ctx, InputConfig{
		Message:   "Field id",
		Validator: aria.CheckFieldID,
	})
	if err != nil {
		return answers, err
	}
	answers.FieldID = strings.TrimSpace(answers.FieldID)
	if err := aria.CheckFieldID(answers.FieldID); err != nil {
		return answers, err
	}

	answers.Label, err = driver.Input(ctx, InputConfig{Message: "Label", Default: answers.FieldID})
	if err != nil {
		return answers, err
	}

	kind, err := driver.Select(ctx, SelectConfig{Message: "Kind", Options: inspectKinds})
	if err != nil {
		return answers, err
	}
	answers.Kind = pick(inspectKinds, kind, kindField)

	answers.Required, err = driver.Confirm(ctx, ConfirmConfig{Message: "Required?"})
	if err != nil {
		return answers, err
	}

	answers.Hint, err = driver.Input(ctx, InputConfig{Message: "Hint", Help: "Leave empty for no hint"})
	if err != nil {
		return answers, err
	}
	answers.Error, err = driver.Input(ctx, InputConfig{Message: "Error", Help: "Leave empty when the field is valid"})
	if err != nil {
		return answers, err
	}

	defaultIndex := 0
	if defaultMode != aria.ValidationUnset {
		defaultIndex = indexOf(inspectModes, string(defaultMode))
	}
	mode, err := driver.Select(ctx, SelectConfig{Message: "Validation mode", Options: inspectModes, DefaultIndex: defaultIndex})
	if err != nil {
		return answers, err
	}
	if chosen := pick(inspectModes, mode, "unset"); chosen != "unset" {
		answers.Mode = aria.ValidationMode(chosen)
	}

	if answers.Kind != kindGroup {
		return answers, nil
	}

	role, err := driver.Select(ctx, SelectConfig{Message: "Group role", Options: inspectRoles})
	if err != nil {
		return answers, err
	}
	answers.Role = aria.Role(pick(inspectRoles, role, string(aria.RoleGroup)))

	rawOptions, err := driver.Input(ctx, InputConfig{
		Message:   "Option values (comma separated)",
		Validator: validateOptionList,
	})
	if err != nil {
		return answers, err
	}
	answers.Options = splitOptions(rawOptions)
	if err := validateOptionList(rawOptions); err != nil {
		return answers, err
	}
	return answers, nil
}

func composeDescriptor(composer *aria.Composer, answers inspectAnswers) descriptor {
	hint := strings.TrimSpace(answers.Hint)
	errMsg := strings.TrimSpace(answers.Error)

	if answers.Kind == kindGroup {
		group := composer.Group(answers.FieldID, aria.GroupState{
			FieldState: aria.FieldState{
				Required:       answers.Required,
				ValidationMode: answers.Mode,
			},
			Hint:  aria.Text(hint),
			Error: aria.Text(errMsg),
			Role:  answers.Role,
		})
		legend := group.GroupLabelProps(aria.Text(answers.Label))

		desc := descriptor{
			Kind:       kindGroup,
			FieldID:    answers.FieldID,
			Container:  group.GroupContainerProps.Attrs(),
			Legend:     legend.Attrs(),
			LegendHTML: legend.Children.String(),
			Hint:       group.HintProps.Attrs(),
			Error:      group.ErrorProps.Attrs(),
			Required:   group.Meta.Required,
		}
		for _, value := range answers.Options {
			desc.Options = append(desc.Options, optionDescriptor{
				Value:   value,
				Control: group.OptionControlProps(value).Attrs(),
				Label:   group.OptionLabelProps(value).Attrs(),
			})
		}
		return desc
	}

	field := composer.Field(answers.FieldID, aria.FieldState{
		Required:       answers.Required,
		HasHint:        hint != "",
		HasError:       errMsg != "",
		ValidationMode: answers.Mode,
	})
	return descriptor{
		Kind:     kindField,
		FieldID:  answers.FieldID,
		Label:    field.LabelProps.Attrs(),
		Control:  field.ControlProps.Attrs(),
		Hint:     field.HintProps.Attrs(),
		Error:    field.ErrorProps.Attrs(),
		Required: field.Meta.Required,
	}
}

func writeDescriptor(out io.Writer, desc descriptor, format string) error {
	if format == formatYAML {
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(desc); err != nil {
			return fmt.Errorf("inspect: encode yaml: %w", err)
		}
		return encoder.Close()
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(desc); err != nil {
		return fmt.Errorf("inspect: encode json: %w", err)
	}
	return nil
}

func validateOptionList(raw string) error {
	values := splitOptions(raw)
	if len(values) == 0 {
		return errors.New("at least one option value is required")
	}
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		if err := aria.CheckOptionValue(value); err != nil {
			return err
		}
		if _, dup := seen[value]; dup {
			return fmt.Errorf("duplicate option value %q", value)
		}
		seen[value] = struct{}{}
	}
	return nil
}

func splitOptions(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if value := strings.TrimSpace(part); value != "" {
			out = append(out, value)
		}
	}
	return out
}

func pick(options []string, index int, fallback string) string {
	if index < 0 || index >= len(options) {
		return fallback
	}
	return options[index]
}
