package aria

import "strings"

// Role is the ARIA role of a field group container.
type Role string

const (
	RoleGroup      Role = "group"
	RoleRadioGroup Role = "radiogroup"
)

// GroupContainerProps go on the element wrapping every option of a group.
type GroupContainerProps struct {
	ID         string
	Role       Role
	LabelledBy string
}

func (p GroupContainerProps) Attrs() Attrs {
	return Attrs{
		"id":              p.ID,
		"role":            string(p.Role),
		"aria-labelledby": p.LabelledBy,
	}
}

// GroupLabelProps go on the group's legend. Children already contains the
// label content followed by the visually hidden hint and error.
type GroupLabelProps struct {
	ID       string
	Children Node
}

func (p GroupLabelProps) Attrs() Attrs {
	return Attrs{"id": p.ID}
}

// OptionControlProps go on each option's input.
type OptionControlProps struct {
	ID       string
	Required bool
}

func (p OptionControlProps) Attrs() Attrs {
	return Attrs{"id": p.ID, "required": p.Required}
}

// OptionLabelProps go on each option's label.
type OptionLabelProps struct {
	For string
}

func (p OptionLabelProps) Attrs() Attrs {
	return Attrs{"for": p.For}
}

// LabelProps go on a single field's label.
type LabelProps struct {
	ID  string
	For string
}

func (p LabelProps) Attrs() Attrs {
	return Attrs{"id": p.ID, "for": p.For}
}

// ControlProps go on a single field's control.
type ControlProps struct {
	ID          string
	Required    bool
	Invalid     bool
	DescribedBy []string
}

func (p ControlProps) Attrs() Attrs {
	attrs := Attrs{
		"id":           p.ID,
		"required":     p.Required,
		"aria-invalid": boolString(p.Invalid),
	}
	if len(p.DescribedBy) > 0 {
		attrs["aria-describedby"] = strings.Join(p.DescribedBy, " ")
	}
	return attrs
}

// HintProps go on the visible hint element.
type HintProps struct {
	ID         string
	Hidden     bool
	AriaHidden bool
}

func (p HintProps) Attrs() Attrs {
	attrs := Attrs{"id": p.ID, "hidden": p.Hidden}
	if p.AriaHidden {
		attrs["aria-hidden"] = "true"
	}
	return attrs
}

// ErrorProps go on the visible error element.
type ErrorProps struct {
	ID         string
	Hidden     bool
	AriaHidden bool
	AriaLive   Politeness
}

func (p ErrorProps) Attrs() Attrs {
	attrs := Attrs{"id": p.ID, "hidden": p.Hidden}
	if p.AriaHidden {
		attrs["aria-hidden"] = "true"
	}
	if p.AriaLive != PolitenessNone {
		attrs["aria-live"] = string(p.AriaLive)
	}
	return attrs
}

// Meta carries state the renderer needs that is not an attribute, such as
// the required marker next to a label.
type Meta struct {
	Required bool
}
