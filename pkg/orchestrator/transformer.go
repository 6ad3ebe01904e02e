package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/goliatone/go-formaria/pkg/model"
)

// Transformer mutates a definition after loading and before validation.
// Implementations can relabel blocks, inject hints, or perform arbitrary
// rewrites; the result is validated again.
type Transformer interface {
	Transform(ctx context.Context, form *model.Form) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, form *model.Form) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, form *model.Form) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, form)
}

// JSONPresetTransformer applies declarative overrides loaded from a JSON file:
//
//	{
//	  "form": {"title": "Join us", "validationMode": "eager"},
//	  "blocks": {
//	    "email": {"label": "Work email", "hint": "Use your company address", "required": true}
//	  }
//	}
type JSONPresetTransformer struct {
	document jsonTransformDocument
}

type jsonTransformDocument struct {
	Form   jsonFormPatch             `json:"form"`
	Blocks map[string]jsonBlockPatch `json:"blocks"`
}

type jsonFormPatch struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	SubmitLabel    string `json:"submitLabel"`
	ValidationMode string `json:"validationMode"`
}

type jsonBlockPatch struct {
	Label          string `json:"label"`
	Hint           string `json:"hint"`
	Error          string `json:"error"`
	Placeholder    string `json:"placeholder"`
	Rename         string `json:"rename"`
	ValidationMode string `json:"validationMode"`
	Required       *bool  `json:"required"`
}

// NewJSONPresetTransformer constructs a transformer from raw JSON bytes.
func NewJSONPresetTransformer(data []byte) (*JSONPresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("json preset transformer: document is empty")
	}
	var document jsonTransformDocument
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&document); err != nil {
		return nil, fmt.Errorf("json preset transformer: parse document: %w", err)
	}
	return &JSONPresetTransformer{document: document}, nil
}

// NewJSONPresetTransformerFromFS loads a JSON transformer document from the
// provided filesystem path.
func NewJSONPresetTransformerFromFS(fsys fs.FS, path string) (*JSONPresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("json preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("json preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("json preset transformer: read %s: %w", path, err)
	}
	return NewJSONPresetTransformer(data)
}

// Transform applies the declarative patches onto the supplied form. Unknown
// block ids are an error so stale presets surface early.
func (t *JSONPresetTransformer) Transform(ctx context.Context, form *model.Form) error {
	if form == nil {
		return errors.New("json preset transformer: form is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	applyFormPatch(form, t.document.Form)

	ids := make([]string, 0, len(t.document.Blocks))
	for id := range t.document.Blocks {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return err
		}
		block := findBlock(form, id)
		if block == nil {
			return fmt.Errorf("json preset transformer: block %q not found", id)
		}
		applyBlockPatch(block, t.document.Blocks[id])
	}
	return nil
}

func applyFormPatch(form *model.Form, patch jsonFormPatch) {
	if patch.Title != "" {
		form.Title = patch.Title
	}
	if patch.Description != "" {
		form.Description = patch.Description
	}
	if patch.SubmitLabel != "" {
		form.SubmitLabel = patch.SubmitLabel
	}
	if patch.ValidationMode != "" {
		form.ValidationMode = patch.ValidationMode
	}
}

func applyBlockPatch(block *model.Block, patch jsonBlockPatch) {
	if patch.Label != "" {
		block.Label = patch.Label
	}
	if patch.Hint != "" {
		block.Hint = patch.Hint
	}
	if patch.Error != "" {
		block.Error = patch.Error
	}
	if patch.Placeholder != "" {
		block.Placeholder = patch.Placeholder
	}
	if patch.ValidationMode != "" {
		block.ValidationMode = patch.ValidationMode
	}
	if patch.Required != nil {
		block.Required = *patch.Required
	}
	if name := strings.TrimSpace(patch.Rename); name != "" {
		block.Name = name
	}
}

func findBlock(form *model.Form, id string) *model.Block {
	for idx := range form.Blocks {
		if form.Blocks[idx].ID == id {
			return &form.Blocks[idx]
		}
	}
	return nil
}
