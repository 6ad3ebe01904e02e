package aria

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const (
	hintSuffix   = "__hint"
	errorSuffix  = "__error"
	legendSuffix = "__legend"
	labelSuffix  = "__label"
	optionInfix  = "__option--"
)

var (
	// ErrInvalidFieldID reports a field id that cannot produce unique
	// derived ids.
	ErrInvalidFieldID = errors.New("aria: invalid field id")
	// ErrInvalidOptionValue reports an option value that cannot be embedded
	// in an option id.
	ErrInvalidOptionValue = errors.New("aria: invalid option value")
)

// HintID returns the id of the element holding the field hint.
func HintID(fieldID string) string {
	return fieldID + hintSuffix
}

// ErrorID returns the id of the element holding the field error.
func ErrorID(fieldID string) string {
	return fieldID + errorSuffix
}

// GroupLabelID returns the id of a field group's legend.
func GroupLabelID(fieldID string) string {
	return fieldID + legendSuffix
}

// LabelID returns the id of a single field's label element.
func LabelID(fieldID string) string {
	return fieldID + labelSuffix
}

// OptionID returns the control id of one option inside a field group.
func OptionID(fieldID, optionValue string) string {
	return fieldID + optionInfix + optionValue
}

// DerivedIDs lists every id owned by a field: the field id itself, its
// label, legend, hint and error ids and one id per option value.
func DerivedIDs(fieldID string, optionValues ...string) []string {
	out := make([]string, 0, 5+len(optionValues))
	out = append(out,
		fieldID,
		LabelID(fieldID),
		GroupLabelID(fieldID),
		HintID(fieldID),
		ErrorID(fieldID),
	)
	for _, value := range optionValues {
		out = append(out, OptionID(fieldID, value))
	}
	return out
}

// CheckFieldID rejects ids that would produce ambiguous or invalid derived
// ids: empty values, whitespace, and ids that already end in one of the
// reserved suffixes.
func CheckFieldID(fieldID string) error {
	if fieldID == "" {
		return fmt.Errorf("%w: empty", ErrInvalidFieldID)
	}
	if strings.IndexFunc(fieldID, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q contains whitespace", ErrInvalidFieldID, fieldID)
	}
	for _, suffix := range []string{hintSuffix, errorSuffix, legendSuffix, labelSuffix} {
		if strings.HasSuffix(fieldID, suffix) {
			return fmt.Errorf("%w: %q ends with reserved suffix %q", ErrInvalidFieldID, fieldID, suffix)
		}
	}
	if strings.Contains(fieldID, optionInfix) {
		return fmt.Errorf("%w: %q contains reserved sequence %q", ErrInvalidFieldID, fieldID, optionInfix)
	}
	return nil
}

// CheckOptionValue rejects option values that cannot be embedded in an id.
func CheckOptionValue(value string) error {
	if value == "" {
		return fmt.Errorf("%w: empty", ErrInvalidOptionValue)
	}
	if strings.IndexFunc(value, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q contains whitespace", ErrInvalidOptionValue, value)
	}
	return nil
}
