package styles

import (
	"fmt"
	"strings"
)

// LabelSize selects the label typography.
type LabelSize string

const (
	LabelSizeS LabelSize = "S"
	LabelSizeM LabelSize = "M"
	LabelSizeL LabelSize = "L"
)

// Layout selects how label and control are arranged in a field block.
type Layout string

const (
	LayoutVertical   Layout = "vertical"
	LayoutHorizontal Layout = "horizontal"
)

// LabelStyle is one row of the label size table.
type LabelStyle struct {
	Class string
	// FontSizeToken names the theme token holding the font size.
	FontSizeToken string
}

// LayoutStyle is one row of the layout table.
type LayoutStyle struct {
	Class string
}

// Class names shared by every block.
const (
	ClassForm         = "formaria-form"
	ClassBlock        = "formaria-block"
	ClassLabel        = "formaria-label"
	ClassRequiredFlag = "formaria-required"
	ClassControl      = "formaria-control"
	ClassControls     = "formaria-controls"
	ClassOptions      = "formaria-options"
	ClassOption       = "formaria-option"
	ClassHint         = "formaria-hint"
	ClassError        = "formaria-error"
	ClassFormErrors   = "formaria-form-errors"
	ClassActions      = "formaria-actions"
)

var labelStyles = map[LabelSize]LabelStyle{
	LabelSizeS: {Class: "formaria-label--s", FontSizeToken: "font-size-1"},
	LabelSizeM: {Class: "formaria-label--m", FontSizeToken: "font-size-2"},
	LabelSizeL: {Class: "formaria-label--l", FontSizeToken: "font-size-3"},
}

var layoutStyles = map[Layout]LayoutStyle{
	LayoutVertical:   {Class: "formaria-block--vertical"},
	LayoutHorizontal: {Class: "formaria-block--horizontal"},
}

// DefaultLabelSize and DefaultLayout apply when a block leaves them unset.
const (
	DefaultLabelSize = LabelSizeM
	DefaultLayout    = LayoutVertical
)

// Label looks up a label size, falling back to DefaultLabelSize.
func Label(size LabelSize) LabelStyle {
	if style, ok := labelStyles[size]; ok {
		return style
	}
	return labelStyles[DefaultLabelSize]
}

// LayoutFor looks up a layout, falling back to DefaultLayout.
func LayoutFor(layout Layout) LayoutStyle {
	if style, ok := layoutStyles[layout]; ok {
		return style
	}
	return layoutStyles[DefaultLayout]
}

// ParseLabelSize accepts S/M/L in any case plus the long names.
func ParseLabelSize(raw string) (LabelSize, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "":
		return DefaultLabelSize, nil
	case "S", "SMALL":
		return LabelSizeS, nil
	case "M", "MEDIUM":
		return LabelSizeM, nil
	case "L", "LARGE":
		return LabelSizeL, nil
	}
	return "", fmt.Errorf("styles: unknown label size %q", raw)
}

// ParseLayout accepts the layout names in any case.
func ParseLayout(raw string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return DefaultLayout, nil
	case "vertical":
		return LayoutVertical, nil
	case "horizontal":
		return LayoutHorizontal, nil
	}
	return "", fmt.Errorf("styles: unknown layout %q", raw)
}

// Classes joins non-empty class names with single spaces.
func Classes(names ...string) string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return strings.Join(out, " ")
}
