package aria

import (
	"fmt"
	"strings"
)

// ValidationMode describes when a field's error message appears.
type ValidationMode string

const (
	// ValidationUnset leaves the live region attribute off the error element.
	ValidationUnset ValidationMode = ""
	// ValidationEager validates while the user types.
	ValidationEager ValidationMode = "eager"
	// ValidationLazy validates when the control loses focus.
	ValidationLazy ValidationMode = "lazy"
	// ValidationSubmit validates when the form is submitted.
	ValidationSubmit ValidationMode = "submit"
)

// ParseValidationMode accepts the canonical names plus the event aliases
// used by form libraries (change, input, blur, focusout).
func ParseValidationMode(raw string) (ValidationMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return ValidationUnset, nil
	case "eager", "change", "input":
		return ValidationEager, nil
	case "lazy", "blur", "focusout":
		return ValidationLazy, nil
	case "submit":
		return ValidationSubmit, nil
	default:
		return ValidationUnset, fmt.Errorf("aria: unknown validation mode %q", raw)
	}
}

// Politeness is an aria-live value.
type Politeness string

const (
	PolitenessNone      Politeness = ""
	PolitenessOff       Politeness = "off"
	PolitenessPolite    Politeness = "polite"
	PolitenessAssertive Politeness = "assertive"
)

// Valid reports whether p is one of the aria-live tokens (or none).
func (p Politeness) Valid() bool {
	switch p {
	case PolitenessNone, PolitenessOff, PolitenessPolite, PolitenessAssertive:
		return true
	}
	return false
}

// LivePolicy maps a validation mode to the aria-live value of the error
// element while an error is shown.
type LivePolicy map[ValidationMode]Politeness

// DefaultLivePolicy returns a fresh copy of the built-in table.
func DefaultLivePolicy() LivePolicy {
	return LivePolicy{
		ValidationEager:  PolitenessPolite,
		ValidationLazy:   PolitenessAssertive,
		ValidationSubmit: PolitenessAssertive,
	}
}

// Resolve looks up the politeness for mode. Modes missing from the table
// produce no attribute; known modes without an error produce "off".
func (p LivePolicy) Resolve(mode ValidationMode, hasError bool) Politeness {
	value, ok := p[mode]
	if !ok || mode == ValidationUnset {
		return PolitenessNone
	}
	if !hasError {
		return PolitenessOff
	}
	return value
}

// Clone copies the table.
func (p LivePolicy) Clone() LivePolicy {
	if p == nil {
		return nil
	}
	out := make(LivePolicy, len(p))
	for mode, value := range p {
		out[mode] = value
	}
	return out
}

// Merge returns a copy of p with entries from overrides applied on top.
func (p LivePolicy) Merge(overrides LivePolicy) LivePolicy {
	out := p.Clone()
	if out == nil {
		out = make(LivePolicy, len(overrides))
	}
	for mode, value := range overrides {
		out[mode] = value
	}
	return out
}

// Validate checks every entry holds a known politeness token.
func (p LivePolicy) Validate() error {
	for mode, value := range p {
		if mode == ValidationUnset {
			return fmt.Errorf("aria: live policy has an entry for the unset mode")
		}
		if !value.Valid() {
			return fmt.Errorf("aria: live policy mode %q has invalid politeness %q", mode, value)
		}
	}
	return nil
}
