// Package orchestrator wires the definition source → validation → theme →
// renderer pipeline behind a single Generate call. Sources are form
// definitions (YAML/JSON files or bytes, a preloaded store) or an OpenAPI
// operation.
package orchestrator
