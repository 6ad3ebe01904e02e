package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formaria/pkg/model"
)

var (
	// ErrOperationNotFound is returned when no operation matches the id.
	ErrOperationNotFound = errors.New("openapi: operation not found")
	// ErrNoRequestBody is returned when the operation has no usable object
	// schema in its request body.
	ErrNoRequestBody = errors.New("openapi: operation has no object request body")
)

// Vendor extensions read from schemas and operations.
const (
	extensionOrder          = "x-formaria-order"
	extensionControl        = "x-formaria-control"
	extensionValidationMode = "x-formaria-validation-mode"
	extensionSubmitLabel    = "x-formaria-submit-label"
)

// textareaThreshold is the maxLength above which strings render as textarea.
const textareaThreshold = 255

var requestMediaTypes = []string{
	"application/json",
	"application/x-www-form-urlencoded",
	"multipart/form-data",
}

// Operation identifies one operation in a document.
type Operation struct {
	ID     string `json:"id" yaml:"id"`
	Method string `json:"method" yaml:"method"`
	Path   string `json:"path" yaml:"path"`
}

// Operations lists every operation of the document sorted by id. Operations
// without an operationId are addressed as "<method>:<path>".
func Operations(ctx context.Context, raw []byte) ([]Operation, error) {
	doc, err := loadDocument(ctx, raw)
	if err != nil {
		return nil, err
	}

	var out []Operation
	walkOperations(doc, func(id, method, path string, _ *openapi3.Operation) bool {
		out = append(out, Operation{ID: id, Method: method, Path: path})
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// FormFromOperation builds and validates a form from the request body of the
// named operation.
func FormFromOperation(ctx context.Context, raw []byte, operationID string) (model.Form, error) {
	doc, err := loadDocument(ctx, raw)
	if err != nil {
		return model.Form{}, err
	}

	target := strings.TrimSpace(operationID)
	var (
		found      *openapi3.Operation
		foundPath  string
		foundVerb  string
		resolvedID string
	)
	walkOperations(doc, func(id, method, path string, operation *openapi3.Operation) bool {
		if id != target {
			return true
		}
		found, foundPath, foundVerb, resolvedID = operation, path, method, id
		return false
	})
	if found == nil {
		return model.Form{}, fmt.Errorf("%w: %q", ErrOperationNotFound, target)
	}

	schema := requestSchema(found.RequestBody)
	if schema == nil || len(schema.Properties) == 0 {
		return model.Form{}, fmt.Errorf("%w: %q", ErrNoRequestBody, resolvedID)
	}

	form := model.Form{
		ID:          fieldID(resolvedID),
		Title:       found.Summary,
		Description: found.Description,
		Action:      foundPath,
		Method:      formMethod(foundVerb),
	}
	if mode, ok := found.Extensions[extensionValidationMode].(string); ok {
		form.ValidationMode = mode
	}
	if label, ok := found.Extensions[extensionSubmitLabel].(string); ok {
		form.SubmitLabel = label
	}
	form.Blocks = blocksFromSchema(schema, "")

	if err := model.Validate(form); err != nil {
		return model.Form{}, fmt.Errorf("openapi: operation %q: %w", resolvedID, err)
	}
	return form, nil
}

func loadDocument(ctx context.Context, raw []byte) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: false,
	}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if doc.Paths == nil || doc.Paths.Len() == 0 {
		return nil, errors.New("openapi: document does not contain any paths")
	}
	return doc, nil
}

// walkOperations visits operations in path then method order until fn
// returns false.
func walkOperations(doc *openapi3.T, fn func(id, method, path string, operation *openapi3.Operation) bool) {
	paths := doc.Paths.Map()
	keys := make([]string, 0, len(paths))
	for path := range paths {
		keys = append(keys, path)
	}
	sort.Strings(keys)

	for _, path := range keys {
		item := paths[path]
		if item == nil {
			continue
		}
		operations := item.Operations()
		methods := make([]string, 0, len(operations))
		for method := range operations {
			methods = append(methods, method)
		}
		sort.Strings(methods)

		for _, method := range methods {
			operation := operations[method]
			if operation == nil {
				continue
			}
			id := operation.OperationID
			if id == "" {
				id = strings.ToLower(method) + ":" + path
			}
			if !fn(id, method, path, operation) {
				return
			}
		}
	}
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range requestMediaTypes {
		if mt, ok := content[mediaType]; ok {
			return objectSchema(mt.Schema)
		}
	}
	mediaTypes := make([]string, 0, len(content))
	for mediaType := range content {
		mediaTypes = append(mediaTypes, mediaType)
	}
	sort.Strings(mediaTypes)
	for _, mediaType := range mediaTypes {
		if schema := objectSchema(content[mediaType].Schema); schema != nil {
			return schema
		}
	}
	return nil
}

func objectSchema(ref *openapi3.SchemaRef) *openapi3.Schema {
	if ref == nil || ref.Value == nil {
		return nil
	}
	if !isType(ref.Value, "object") && len(ref.Value.Properties) == 0 {
		return nil
	}
	return ref.Value
}

// blocksFromSchema maps properties to blocks. Nested objects are flattened
// with dotted submission names.
func blocksFromSchema(schema *openapi3.Schema, prefix string) []model.Block {
	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	var blocks []model.Block
	for _, name := range propertyOrder(schema) {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		property := ref.Value
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}

		if isType(property, "object") && len(property.Properties) > 0 {
			blocks = append(blocks, blocksFromSchema(property, path)...)
			continue
		}

		block, ok := blockFromProperty(path, name, property)
		if !ok {
			continue
		}
		block.Required = required[name]
		blocks = append(blocks, block)
	}
	return blocks
}

func blockFromProperty(path, name string, property *openapi3.Schema) (model.Block, bool) {
	block := model.Block{
		ID:    fieldID(path),
		Label: strings.TrimSpace(property.Title),
		Hint:  strings.TrimSpace(property.Description),
	}
	if path != block.ID {
		block.Name = path
	}
	if block.Label == "" {
		block.Label = humanize(name)
	}
	if property.Default != nil {
		block.Value = fmt.Sprint(property.Default)
	}

	override, _ := property.Extensions[extensionControl].(string)

	switch {
	case isType(property, "boolean"):
		block.Control = model.ControlCheckbox
	case isType(property, "array"):
		if property.Items == nil || property.Items.Value == nil || len(property.Items.Value.Enum) == 0 {
			return model.Block{}, false
		}
		block.Control = model.ControlCheckboxGroup
		block.Options = optionsFromEnum(property.Items.Value.Enum)
	case len(property.Enum) > 0:
		block.Options = optionsFromEnum(property.Enum)
		if override == string(model.ControlSelect) {
			block.Control = model.ControlSelect
		} else {
			block.Control = model.ControlRadioGroup
			block.Role = "radiogroup"
		}
	case override == string(model.ControlTextarea) || exceedsTextarea(property.MaxLength):
		block.Control = model.ControlTextarea
	case isType(property, "integer"), isType(property, "number"):
		block.Control = model.ControlInput
		block.InputType = "number"
	case isType(property, "string"), property.Type == nil:
		block.Control = model.ControlInput
		block.InputType = inputTypeForFormat(property.Format)
	default:
		return model.Block{}, false
	}
	return block, true
}

func propertyOrder(schema *openapi3.Schema) []string {
	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	raw, ok := schema.Extensions[extensionOrder].([]any)
	if !ok || len(raw) == 0 {
		return names
	}

	ordered := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, entry := range raw {
		name, ok := entry.(string)
		if !ok || seen[name] {
			continue
		}
		if _, exists := schema.Properties[name]; !exists {
			continue
		}
		seen[name] = true
		ordered = append(ordered, name)
	}
	for _, name := range names {
		if !seen[name] {
			ordered = append(ordered, name)
		}
	}
	return ordered
}

func optionsFromEnum(values []any) []model.Option {
	options := make([]model.Option, 0, len(values))
	for _, value := range values {
		if value == nil {
			continue
		}
		label := fmt.Sprint(value)
		option := model.Option{Value: strings.Join(strings.Fields(label), "-")}
		if option.Value != label {
			option.Label = label
		}
		options = append(options, option)
	}
	return options
}

func inputTypeForFormat(format string) string {
	switch strings.ToLower(format) {
	case "email":
		return "email"
	case "uri", "url":
		return "url"
	case "date":
		return "date"
	case "date-time":
		return "datetime-local"
	case "time":
		return "time"
	case "password":
		return "password"
	}
	return "text"
}

func exceedsTextarea(maxLength *uint64) bool {
	return maxLength != nil && *maxLength > textareaThreshold
}

func isType(schema *openapi3.Schema, name string) bool {
	return schema.Type != nil && schema.Type.Is(name)
}

func formMethod(method string) string {
	if strings.EqualFold(method, "GET") {
		return "get"
	}
	return "post"
}

// fieldID turns a property path or operation id into a usable element id.
func fieldID(path string) string {
	replacer := strings.NewReplacer(".", "-", ":", "-", "/", "-", "{", "", "}", "")
	return strings.Join(strings.Fields(replacer.Replace(path)), "-")
}
