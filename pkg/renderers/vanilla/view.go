package vanilla

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formaria/pkg/aria"
	"github.com/goliatone/go-formaria/pkg/model"
	"github.com/goliatone/go-formaria/pkg/render"
	"github.com/goliatone/go-formaria/pkg/styles"
)

const requiredFlag = `<span class="` + styles.ClassRequiredFlag + `" aria-hidden="true">*</span>`

// section is an element with attributes and already sanitised inner HTML.
type section struct {
	Attrs aria.Attrs `json:"attrs"`
	HTML  string     `json:"html,omitempty"`
}

// optionView serves both <select> options (Attrs) and group options
// (Control plus LabelAttrs).
type optionView struct {
	Attrs      aria.Attrs `json:"attrs,omitempty"`
	Control    aria.Attrs `json:"control,omitempty"`
	LabelAttrs aria.Attrs `json:"label_attrs,omitempty"`
	Label      string     `json:"label"`
}

type fieldView struct {
	Kind      string       `json:"kind"`
	Container aria.Attrs   `json:"container"`
	Label     section      `json:"label"`
	Control   aria.Attrs   `json:"control"`
	Value     string       `json:"value,omitempty"`
	Options   []optionView `json:"options,omitempty"`
	Hint      section      `json:"hint"`
	Error     section      `json:"error"`
}

type groupView struct {
	Container aria.Attrs   `json:"container"`
	Legend    section      `json:"legend"`
	Options   []optionView `json:"options"`
	Hint      section      `json:"hint"`
	Error     section      `json:"error"`
}

type formView struct {
	Attrs         aria.Attrs `json:"attrs"`
	Title         string     `json:"title,omitempty"`
	Description   string     `json:"description,omitempty"`
	Errors        []string   `json:"errors,omitempty"`
	Blocks        []string   `json:"blocks"`
	SubmitLabel   string     `json:"submit_label"`
	Stylesheet    string     `json:"stylesheet,omitempty"`
	StylesheetURL string     `json:"stylesheet_url,omitempty"`
	Theme         string     `json:"theme,omitempty"`
	ThemeVars     string     `json:"theme_vars,omitempty"`
}

// blockContent is the per-request state resolved for one block.
type blockContent struct {
	Label    string
	Hint     string
	Error    string
	Mode     aria.ValidationMode
	Selected []string
}

func resolveContent(form model.Form, block model.Block, errors map[string][]string, options render.RenderOptions) blockContent {
	content := blockContent{
		Label:    render.SanitizeContent(block.Label),
		Hint:     render.SanitizeContent(block.Hint),
		Error:    render.SanitizeContent(block.Error),
		Mode:     form.ValidationModeFor(block),
		Selected: selectedValues(block, options.Values),
	}
	if messages := errors[block.ID]; len(messages) > 0 {
		sanitized := make([]string, 0, len(messages))
		for _, message := range messages {
			if clean := render.SanitizeContent(message); clean != "" {
				sanitized = append(sanitized, clean)
			}
		}
		content.Error = strings.Join(sanitized, " ")
	}
	if options.ValidationMode != aria.ValidationUnset {
		content.Mode = options.ValidationMode
	}
	return content
}

func buildField(composer *aria.Composer, block model.Block, content blockContent) fieldView {
	data := composer.Field(block.ID, aria.FieldState{
		Required:       block.Required,
		HasError:       content.Error != "",
		HasHint:        content.Hint != "",
		ValidationMode: content.Mode,
	})

	kind := block.ControlKind()
	control := data.ControlProps.Attrs().Merge(aria.Attrs{
		"name":  block.FieldName(),
		"class": styles.ClassControl,
	})

	view := fieldView{
		Kind:      string(kind),
		Container: containerAttrs(block, content.Mode, ""),
		Label: section{
			Attrs: data.LabelProps.Attrs().Merge(aria.Attrs{"class": labelClass(block)}),
			HTML:  labelHTML(content.Label, data.Meta.Required),
		},
		Hint: section{
			Attrs: data.HintProps.Attrs().Merge(aria.Attrs{"class": styles.ClassHint}),
			HTML:  content.Hint,
		},
		Error: section{
			Attrs: data.ErrorProps.Attrs().Merge(aria.Attrs{"class": styles.ClassError}),
			HTML:  content.Error,
		},
	}

	first := ""
	if len(content.Selected) > 0 {
		first = content.Selected[0]
	}

	switch kind {
	case model.ControlTextarea:
		control["placeholder"] = block.Placeholder
		view.Value = first
	case model.ControlSelect:
		if block.Placeholder != "" {
			view.Options = append(view.Options, optionView{
				Attrs: aria.Attrs{"value": "", "selected": first == ""},
				Label: render.SanitizeContent(block.Placeholder),
			})
		}
		for _, option := range block.Options {
			view.Options = append(view.Options, optionView{
				Attrs: aria.Attrs{"value": option.Value, "selected": containsValue(content.Selected, option.Value)},
				Label: render.SanitizeContent(option.DisplayLabel()),
			})
		}
	case model.ControlCheckbox:
		control["type"] = "checkbox"
		control["value"] = "true"
		control["checked"] = truthy(first)
	default:
		control["type"] = inputType(block)
		control["placeholder"] = block.Placeholder
		control["value"] = first
	}
	view.Control = control
	return view
}

func buildGroup(composer *aria.Composer, block model.Block, content blockContent) groupView {
	data := composer.Group(block.ID, aria.GroupState{
		FieldState: aria.FieldState{
			Required:       block.Required,
			ValidationMode: content.Mode,
		},
		Hint:  htmlNode(content.Hint),
		Error: htmlNode(content.Error),
		Role:  block.GroupRole(),
	})

	label := aria.HTML(content.Label)
	if data.Meta.Required {
		label = aria.Fragment(label, aria.HTML(requiredFlag))
	}
	legend := data.GroupLabelProps(label)

	inputType := "checkbox"
	if block.ControlKind() == model.ControlRadioGroup {
		inputType = "radio"
	}

	options := make([]optionView, 0, len(block.Options))
	for _, option := range block.Options {
		options = append(options, optionView{
			Control: data.OptionControlProps(option.Value).Attrs().Merge(aria.Attrs{
				"type":    inputType,
				"name":    block.FieldName(),
				"value":   option.Value,
				"checked": containsValue(content.Selected, option.Value),
				"class":   styles.ClassControl,
			}),
			LabelAttrs: data.OptionLabelProps(option.Value).Attrs(),
			Label:      render.SanitizeContent(option.DisplayLabel()),
		})
	}

	return groupView{
		Container: data.GroupContainerProps.Attrs().Merge(containerAttrs(block, content.Mode, "formaria-block--group")),
		Legend: section{
			Attrs: legend.Attrs().Merge(aria.Attrs{"class": labelClass(block)}),
			HTML:  legend.Children.String(),
		},
		Options: options,
		Hint: section{
			Attrs: data.HintProps.Attrs().Merge(aria.Attrs{"class": styles.ClassHint}),
			HTML:  content.Hint,
		},
		Error: section{
			Attrs: data.ErrorProps.Attrs().Merge(aria.Attrs{"class": styles.ClassError}),
			HTML:  content.Error,
		},
	}
}

func containerAttrs(block model.Block, mode aria.ValidationMode, extra string) aria.Attrs {
	return aria.Attrs{
		"class":                styles.Classes(styles.ClassBlock, styles.LayoutFor(block.Layout).Class, extra),
		"data-block":           block.ID,
		"data-validation-mode": string(mode),
	}
}

func labelClass(block model.Block) string {
	return styles.Classes(styles.ClassLabel, styles.Label(block.LabelSize).Class)
}

func labelHTML(label string, required bool) string {
	if required {
		return label + requiredFlag
	}
	return label
}

func htmlNode(markup string) aria.Node {
	if markup == "" {
		return aria.Node{}
	}
	return aria.HTML(markup)
}

func inputType(block model.Block) string {
	if block.InputType != "" {
		return block.InputType
	}
	return "text"
}

// selectedValues resolves the current value(s) of a block: request values by
// id or submission name first, then the definition's static value. Group
// defaults are comma separated.
func selectedValues(block model.Block, values map[string]any) []string {
	for _, key := range []string{block.ID, block.FieldName()} {
		if raw, ok := values[key]; ok {
			return toStrings(raw)
		}
	}
	if block.Value == "" {
		return nil
	}
	if !block.IsGroup() {
		return []string{block.Value}
	}
	var out []string
	for _, part := range strings.Split(block.Value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func toStrings(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		return []string{v}
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}
		return out
	case bool:
		return []string{strconv.FormatBool(v)}
	default:
		return []string{fmt.Sprint(v)}
	}
}

func containsValue(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}

func truthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "on", "1", "yes", "checked":
		return true
	}
	return false
}
