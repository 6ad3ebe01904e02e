package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formaria/pkg/aria"
)

// RenderOptions carry per-request state that renderers apply on top of the
// form definition without mutating it.
type RenderOptions struct {
	// Errors holds server validation messages keyed by field path; see
	// MapErrorPayload for the accepted key shapes. Matched messages replace
	// the block's static error, the rest surface as form-level errors.
	Errors map[string][]string
	// FormErrors are extra form-level messages shown above the blocks.
	FormErrors []string
	// Values pre-populates controls by block id or submission name. Group
	// blocks accept a string or []string of selected option values.
	Values map[string]any
	// ValidationMode overrides every block's mode when set.
	ValidationMode aria.ValidationMode
	// Theme carries the resolved go-theme configuration.
	Theme *theme.RendererConfig
}
