package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formaria/pkg/model"
	"github.com/goliatone/go-formaria/pkg/render"
)

func errorFixtureForm() model.Form {
	return model.Form{
		ID: "account",
		Blocks: []model.Block{
			{ID: "name", Label: "Name", Control: model.ControlInput},
			{ID: "owner-email", Name: "owner.email", Label: "Owner email", Control: model.ControlInput},
			{
				ID:      "tags",
				Label:   "Tags",
				Control: model.ControlCheckboxGroup,
				Options: []model.Option{{Value: "a"}, {Value: "b"}},
			},
		},
	}
}

func TestMapErrorPayload_ResolvesBlocks(t *testing.T) {
	payload := map[string][]string{
		"/body/name":                 {"Name is required"},
		"body.owner.email":           {"Email invalid"},
		"owner-email":                {"Email taken", "Email invalid"},
		"$.body.tags[0]":             {"Tags must be unique"},
		"owner":                      {"Owner missing"},
		"non_field_errors":           {"Form level error"},
		"request/body/unknown-field": {"Should fall back to form errors"},
		"":                           {"Unscoped form error"},
	}

	mapped := render.MapErrorPayload(errorFixtureForm(), payload)

	wantFields := map[string][]string{
		"name":        {"Name is required"},
		"owner-email": {"Email invalid", "Email taken"},
		"tags":        {"Tags must be unique"},
	}
	if diff := cmp.Diff(wantFields, mapped.Fields); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}

	wantForm := []string{
		"Unscoped form error",
		"Form level error",
		"Owner missing",
		"Should fall back to form errors",
	}
	if diff := cmp.Diff(wantForm, mapped.Form); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}
}

func TestMapErrorPayload_Empty(t *testing.T) {
	mapped := render.MapErrorPayload(errorFixtureForm(), nil)
	if mapped.Fields != nil || mapped.Form != nil {
		t.Fatalf("expected empty mapping, got %+v", mapped)
	}

	mapped = render.MapErrorPayload(errorFixtureForm(), map[string][]string{"name": {"  ", ""}})
	if mapped.Fields != nil || mapped.Form != nil {
		t.Fatalf("blank messages should be dropped, got %+v", mapped)
	}
}

func TestMergeFormErrors(t *testing.T) {
	merged := render.MergeFormErrors([]string{" First ", "Second"}, "Second", "third", "  ")
	want := []string{"First", "Second", "third"}

	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merged form errors mismatch (-want +got):\n%s", diff)
	}
}
