// Package aria derives the id and aria-* relationships between a form
// control and its label, hint and error elements.
//
// Everything in this package is pure: ids are computed from the caller's
// field id and descriptor values are rebuilt on every call. Renderers spread
// the descriptors onto concrete elements through Attrs.
//
// Grouped controls (radio buttons, checkbox groups) share one hint and one
// error. Attaching aria-describedby and aria-invalid to each option makes
// screen readers repeat the message for every option, so ComposeGroup
// instead embeds the hint and error, visually hidden, inside the group label
// and marks the visible copies aria-hidden.
package aria
