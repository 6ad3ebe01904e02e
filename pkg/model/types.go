package model

import (
	"strings"

	"github.com/goliatone/go-formaria/pkg/aria"
	"github.com/goliatone/go-formaria/pkg/styles"
)

// Control names the element a block renders.
type Control string

const (
	ControlInput         Control = "input"
	ControlTextarea      Control = "textarea"
	ControlSelect        Control = "select"
	ControlCheckbox      Control = "checkbox"
	ControlRadioGroup    Control = "radio-group"
	ControlCheckboxGroup Control = "checkbox-group"
)

// Option is one choice of a select or field group.
type Option struct {
	Value string `json:"value" yaml:"value" validate:"required,option_value"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// DisplayLabel falls back to the value when no label is set.
func (o Option) DisplayLabel() string {
	if label := strings.TrimSpace(o.Label); label != "" {
		return label
	}
	return o.Value
}

// Block describes one field block. Hint and Error may carry inline markup;
// renderers sanitise them.
type Block struct {
	ID             string           `json:"id" yaml:"id" validate:"required,field_id"`
	Name           string           `json:"name,omitempty" yaml:"name,omitempty"`
	Label          string           `json:"label" yaml:"label" validate:"required"`
	Hint           string           `json:"hint,omitempty" yaml:"hint,omitempty"`
	Error          string           `json:"error,omitempty" yaml:"error,omitempty"`
	Required       bool             `json:"required,omitempty" yaml:"required,omitempty"`
	Control        Control          `json:"control,omitempty" yaml:"control,omitempty" validate:"omitempty,oneof=input textarea select checkbox radio-group checkbox-group"`
	InputType      string           `json:"inputType,omitempty" yaml:"inputType,omitempty" validate:"omitempty,oneof=text email password number tel url date datetime-local time search"`
	Placeholder    string           `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Value          string           `json:"value,omitempty" yaml:"value,omitempty"`
	Options        []Option         `json:"options,omitempty" yaml:"options,omitempty" validate:"omitempty,unique=Value,dive"`
	Role           string           `json:"role,omitempty" yaml:"role,omitempty" validate:"omitempty,oneof=group radiogroup"`
	LabelSize      styles.LabelSize `json:"labelSize,omitempty" yaml:"labelSize,omitempty" validate:"omitempty,oneof=S M L"`
	Layout         styles.Layout    `json:"layout,omitempty" yaml:"layout,omitempty" validate:"omitempty,oneof=vertical horizontal"`
	ValidationMode string           `json:"validationMode,omitempty" yaml:"validationMode,omitempty" validate:"omitempty,validation_mode"`
}

// ControlKind returns the block control, defaulting to an input.
func (b Block) ControlKind() Control {
	if b.Control == "" {
		return ControlInput
	}
	return b.Control
}

// IsGroup reports whether the block renders as a field group.
func (b Block) IsGroup() bool {
	switch b.ControlKind() {
	case ControlRadioGroup, ControlCheckboxGroup:
		return true
	}
	return false
}

// NeedsOptions reports whether the control is meaningless without options.
func (b Block) NeedsOptions() bool {
	return b.IsGroup() || b.ControlKind() == ControlSelect
}

// FieldName is the submission name, defaulting to the id.
func (b Block) FieldName() string {
	if name := strings.TrimSpace(b.Name); name != "" {
		return name
	}
	return b.ID
}

// OptionValues lists option values in declaration order.
func (b Block) OptionValues() []string {
	if len(b.Options) == 0 {
		return nil
	}
	out := make([]string, 0, len(b.Options))
	for _, option := range b.Options {
		out = append(out, option.Value)
	}
	return out
}

// GroupRole maps Role onto aria.Role; anything but radiogroup is a group.
func (b Block) GroupRole() aria.Role {
	if b.Role == string(aria.RoleRadioGroup) {
		return aria.RoleRadioGroup
	}
	return aria.RoleGroup
}

// Form is the top-level definition.
type Form struct {
	ID             string  `json:"id" yaml:"id" validate:"required,field_id"`
	Title          string  `json:"title,omitempty" yaml:"title,omitempty"`
	Description    string  `json:"description,omitempty" yaml:"description,omitempty"`
	Action         string  `json:"action,omitempty" yaml:"action,omitempty"`
	Method         string  `json:"method,omitempty" yaml:"method,omitempty" validate:"omitempty,oneof=GET POST get post"`
	SubmitLabel    string  `json:"submitLabel,omitempty" yaml:"submitLabel,omitempty"`
	ValidationMode string  `json:"validationMode,omitempty" yaml:"validationMode,omitempty" validate:"omitempty,validation_mode"`
	Blocks         []Block `json:"blocks" yaml:"blocks" validate:"required,min=1,unique=ID,dive"`
}

// ValidationModeFor resolves the block's mode, falling back to the form
// default. Invalid values resolve to unset; Validate reports them.
func (f Form) ValidationModeFor(block Block) aria.ValidationMode {
	raw := block.ValidationMode
	if strings.TrimSpace(raw) == "" {
		raw = f.ValidationMode
	}
	mode, err := aria.ParseValidationMode(raw)
	if err != nil {
		return aria.ValidationUnset
	}
	return mode
}

// Block returns the block with the given id.
func (f Form) Block(id string) (Block, bool) {
	for _, block := range f.Blocks {
		if block.ID == id {
			return block, true
		}
	}
	return Block{}, false
}

// Clone returns a deep copy so callers can attach per-request state.
func (f Form) Clone() Form {
	out := f
	if len(f.Blocks) > 0 {
		out.Blocks = make([]Block, len(f.Blocks))
		for i, block := range f.Blocks {
			cloned := block
			if len(block.Options) > 0 {
				cloned.Options = append([]Option(nil), block.Options...)
			}
			out.Blocks[i] = cloned
		}
	}
	return out
}
