// Package openapi derives form definitions from OpenAPI 3 operations. The
// request body schema of an operation becomes one block per property.
package openapi
