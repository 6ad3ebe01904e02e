// Package model defines the form and block definitions renderers consume.
//
// A Form is an ordered list of blocks. A block is either a single labelled
// control (input, textarea, select, checkbox) or a field group (radio-group,
// checkbox-group) whose options share one label, hint and error. Definitions
// load from YAML or JSON and are validated before rendering so every id the
// aria package derives from them is unique within the form.
package model
