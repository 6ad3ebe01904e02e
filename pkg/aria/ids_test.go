package aria

import (
	"errors"
	"strings"
	"testing"
)

func TestDerivedIDs_NoSuffixCollisions(t *testing.T) {
	for _, fieldID := range []string{"email", "a", "user.address", "x__y", "option--1"} {
		seen := make(map[string]string)
		for _, id := range DerivedIDs(fieldID, "hint", "error", "legend", "label") {
			if prev, exists := seen[id]; exists {
				t.Fatalf("field %q: id %q produced twice (%s)", fieldID, id, prev)
			}
			seen[id] = fieldID
		}
		if HintID(fieldID) == ErrorID(fieldID) || ErrorID(fieldID) == GroupLabelID(fieldID) || HintID(fieldID) == GroupLabelID(fieldID) {
			t.Fatalf("field %q: role ids collide", fieldID)
		}
	}
}

func TestOptionID_DistinctPerValue(t *testing.T) {
	red := OptionID("color", "red")
	blue := OptionID("color", "blue")
	if red == blue {
		t.Fatalf("expected distinct option ids, got %q", red)
	}
	for _, id := range []string{red, blue} {
		if !strings.HasPrefix(id, "color") {
			t.Fatalf("option id %q not prefixed by field id", id)
		}
	}
	if red != "color__option--red" {
		t.Fatalf("unexpected option id %q", red)
	}
}

func TestIDs_Stable(t *testing.T) {
	cases := map[string]string{
		HintID("email"):       "email__hint",
		ErrorID("email"):      "email__error",
		GroupLabelID("email"): "email__legend",
		LabelID("email"):      "email__label",
	}
	for got, want := range cases {
		if got != want {
			t.Fatalf("want %q, got %q", want, got)
		}
	}
	if HintID("email") != HintID("email") {
		t.Fatalf("hint id not stable")
	}
}

func TestDerivedIDs_DistinctFieldsDoNotCollide(t *testing.T) {
	// Field ids that pass CheckFieldID never reproduce another field's
	// derived id.
	fields := []string{"email", "email_hint", "email__x", "emailhint"}
	seen := make(map[string]string)
	for _, fieldID := range fields {
		if err := CheckFieldID(fieldID); err != nil {
			t.Fatalf("unexpected invalid id %q: %v", fieldID, err)
		}
		for _, id := range DerivedIDs(fieldID, "a", "b") {
			if owner, exists := seen[id]; exists {
				t.Fatalf("id %q shared by %q and %q", id, owner, fieldID)
			}
			seen[id] = fieldID
		}
	}
}

func TestCheckFieldID(t *testing.T) {
	valid := []string{"email", "user.email", "a-b_c"}
	for _, id := range valid {
		if err := CheckFieldID(id); err != nil {
			t.Fatalf("CheckFieldID(%q) unexpected error: %v", id, err)
		}
	}

	invalid := []string{"", "first name", "tab\tid", "email__hint", "email__error", "x__legend", "x__label", "a__option--b"}
	for _, id := range invalid {
		err := CheckFieldID(id)
		if err == nil {
			t.Fatalf("CheckFieldID(%q) expected error", id)
		}
		if !errors.Is(err, ErrInvalidFieldID) {
			t.Fatalf("CheckFieldID(%q) error %v is not ErrInvalidFieldID", id, err)
		}
	}
}

func TestCheckOptionValue(t *testing.T) {
	if err := CheckOptionValue("red"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, value := range []string{"", "dark red"} {
		if err := CheckOptionValue(value); !errors.Is(err, ErrInvalidOptionValue) {
			t.Fatalf("CheckOptionValue(%q) = %v, want ErrInvalidOptionValue", value, err)
		}
	}
}
