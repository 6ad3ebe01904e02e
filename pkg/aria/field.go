package aria

// FieldState is the input for a single field.
type FieldState struct {
	Required       bool
	HasError       bool
	HasHint        bool
	ValidationMode ValidationMode
}

// FieldData holds the descriptors for a single labelled control.
type FieldData struct {
	LabelProps   LabelProps
	ControlProps ControlProps
	HintProps    HintProps
	ErrorProps   ErrorProps
	Meta         Meta
}

// Field composes descriptors for a single control. The control references
// the error and hint through aria-describedby, error first so it is read
// before the hint.
func (c *Composer) Field(fieldID string, state FieldState) FieldData {
	hintID := HintID(fieldID)
	errorID := ErrorID(fieldID)

	var describedBy []string
	if state.HasError {
		describedBy = append(describedBy, errorID)
	}
	if state.HasHint {
		describedBy = append(describedBy, hintID)
	}

	return FieldData{
		LabelProps: LabelProps{
			ID:  LabelID(fieldID),
			For: fieldID,
		},
		ControlProps: ControlProps{
			ID:          fieldID,
			Required:    state.Required,
			Invalid:     state.HasError,
			DescribedBy: describedBy,
		},
		HintProps: HintProps{
			ID:     hintID,
			Hidden: !state.HasHint,
		},
		ErrorProps: ErrorProps{
			ID:       errorID,
			Hidden:   !state.HasError,
			AriaLive: c.live.Resolve(state.ValidationMode, state.HasError),
		},
		Meta: Meta{Required: state.Required},
	}
}
