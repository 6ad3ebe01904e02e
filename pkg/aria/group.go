package aria

// GroupState is the input for a field group. HasHint and HasError are
// implied by non-empty Hint and Error content; setting them forces the
// element visible even without content.
type GroupState struct {
	FieldState
	Hint  Node
	Error Node
	// Role defaults to RoleGroup.
	Role Role
}

// GroupData holds the descriptors for a field group. The per-option and
// label descriptors are methods so a renderer can ask for them while
// iterating options.
type GroupData struct {
	FieldID             string
	GroupContainerProps GroupContainerProps
	HintProps           HintProps
	ErrorProps          ErrorProps
	Meta                Meta
	Hint                Node
	Error               Node
}

// Group composes descriptors for a set of grouped controls.
func (c *Composer) Group(fieldID string, state GroupState) GroupData {
	hasHint := state.HasHint || !state.Hint.IsEmpty()
	hasError := state.HasError || !state.Error.IsEmpty()

	role := state.Role
	if role == "" {
		role = RoleGroup
	}

	return GroupData{
		FieldID: fieldID,
		GroupContainerProps: GroupContainerProps{
			ID:         fieldID,
			Role:       role,
			LabelledBy: GroupLabelID(fieldID),
		},
		HintProps: HintProps{
			ID:         HintID(fieldID),
			Hidden:     !hasHint,
			AriaHidden: true,
		},
		ErrorProps: ErrorProps{
			ID:         ErrorID(fieldID),
			Hidden:     !hasError,
			AriaHidden: true,
			AriaLive:   c.live.Resolve(state.ValidationMode, hasError),
		},
		Meta:  Meta{Required: state.Required},
		Hint:  state.Hint,
		Error: state.Error,
	}
}

// GroupLabelProps returns the legend descriptor. The hint and error are
// appended visually hidden so they become part of the group's accessible
// name and are announced once.
func (g GroupData) GroupLabelProps(label Node) GroupLabelProps {
	return GroupLabelProps{
		ID: GroupLabelID(g.FieldID),
		Children: Fragment(
			label,
			VisuallyHidden(
				Block(g.Hint),
				Block(g.Error),
			),
		),
	}
}

// OptionControlProps returns the descriptor for one option's input.
func (g GroupData) OptionControlProps(optionValue string) OptionControlProps {
	return OptionControlProps{
		ID:       OptionID(g.FieldID, optionValue),
		Required: g.Meta.Required,
	}
}

// OptionLabelProps returns the descriptor for one option's label.
func (g GroupData) OptionLabelProps(optionValue string) OptionLabelProps {
	return OptionLabelProps{For: OptionID(g.FieldID, optionValue)}
}
