package aria

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComposeGroup_ContainerProps(t *testing.T) {
	data := ComposeGroup("email", GroupState{})

	want := GroupContainerProps{ID: "email", Role: RoleGroup, LabelledBy: "email__legend"}
	if diff := cmp.Diff(want, data.GroupContainerProps); diff != "" {
		t.Fatalf("container props mismatch (-want +got):\n%s", diff)
	}
	if got := data.GroupContainerProps.Attrs().String(); got != ` id="email" aria-labelledby="email__legend" role="group"` {
		t.Fatalf("unexpected container attrs: %s", got)
	}
}

func TestComposeGroup_ErrorPropsEager(t *testing.T) {
	data := ComposeGroup("email", GroupState{
		FieldState: FieldState{HasError: true, HasHint: false, ValidationMode: ValidationEager},
	})

	want := ErrorProps{ID: "email__error", Hidden: false, AriaHidden: true, AriaLive: PolitenessPolite}
	if diff := cmp.Diff(want, data.ErrorProps); diff != "" {
		t.Fatalf("error props mismatch (-want +got):\n%s", diff)
	}
	if got := data.ErrorProps.Attrs().String(); got != ` id="email__error" aria-hidden="true" aria-live="polite"` {
		t.Fatalf("unexpected error attrs: %s", got)
	}
}

func TestComposeGroup_HiddenMatchesState(t *testing.T) {
	for _, hasHint := range []bool{false, true} {
		for _, hasError := range []bool{false, true} {
			data := ComposeGroup("choice", GroupState{
				FieldState: FieldState{HasHint: hasHint, HasError: hasError},
			})
			if data.HintProps.Hidden != !hasHint {
				t.Fatalf("hint hidden=%v for hasHint=%v", data.HintProps.Hidden, hasHint)
			}
			if data.ErrorProps.Hidden != !hasError {
				t.Fatalf("error hidden=%v for hasError=%v", data.ErrorProps.Hidden, hasError)
			}
			if !data.HintProps.AriaHidden || !data.ErrorProps.AriaHidden {
				t.Fatalf("group hint/error must be aria-hidden")
			}
		}
	}
}

func TestComposeGroup_ContentImpliesPresence(t *testing.T) {
	data := ComposeGroup("plan", GroupState{
		Hint:  Text("Pick one"),
		Error: Text("Plan is required"),
	})
	if data.HintProps.Hidden || data.ErrorProps.Hidden {
		t.Fatalf("expected hint and error visible: %+v %+v", data.HintProps, data.ErrorProps)
	}

	blank := ComposeGroup("plan", GroupState{Hint: Text("   ")})
	if !blank.HintProps.Hidden {
		t.Fatalf("blank hint should stay hidden")
	}
}

func TestComposeGroup_OptionProps(t *testing.T) {
	data := ComposeGroup("color", GroupState{FieldState: FieldState{Required: true}})

	red := data.OptionControlProps("red")
	if diff := cmp.Diff(OptionControlProps{ID: "color__option--red", Required: true}, red); diff != "" {
		t.Fatalf("option control mismatch (-want +got):\n%s", diff)
	}
	if got := data.OptionLabelProps("red"); got.For != red.ID {
		t.Fatalf("option label for=%q, want %q", got.For, red.ID)
	}
	if data.OptionControlProps("blue").ID == red.ID {
		t.Fatalf("option ids collide")
	}
	if !data.Meta.Required {
		t.Fatalf("meta.required not set")
	}
	if got := red.Attrs().String(); got != ` id="color__option--red" required` {
		t.Fatalf("unexpected option attrs: %s", got)
	}
}

func TestComposeGroup_LabelEmbedsHintAndError(t *testing.T) {
	data := ComposeGroup("plan", GroupState{
		Hint:  Text("Billed monthly"),
		Error: Text("Choose <one>"),
	})

	props := data.GroupLabelProps(Text("Plan"))
	if props.ID != "plan__legend" {
		t.Fatalf("unexpected legend id %q", props.ID)
	}

	want := `Plan<div style="` + VisuallyHiddenStyle + `"><div>Billed monthly</div><div>Choose &lt;one&gt;</div></div>`
	if got := props.Children.String(); got != want {
		t.Fatalf("label children mismatch\nwant: %s\n got: %s", want, got)
	}
	if props.Children.Kind != NodeFragment || len(props.Children.Children) != 2 {
		t.Fatalf("expected fragment of label and hidden block, got %+v", props.Children)
	}
}

func TestComposeGroup_RadioGroupRole(t *testing.T) {
	data := ComposeGroup("size", GroupState{Role: RoleRadioGroup})
	if data.GroupContainerProps.Role != RoleRadioGroup {
		t.Fatalf("role override ignored: %q", data.GroupContainerProps.Role)
	}
}

func TestComposeGroup_Idempotent(t *testing.T) {
	state := GroupState{
		FieldState: FieldState{Required: true, ValidationMode: ValidationLazy},
		Hint:       Text("hint"),
		Error:      HTML("<strong>bad</strong>"),
	}
	first := ComposeGroup("pick", state)
	second := ComposeGroup("pick", state)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("compose not idempotent (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(first.GroupLabelProps(Text("Pick")), second.GroupLabelProps(Text("Pick"))); diff != "" {
		t.Fatalf("label props not idempotent:\n%s", diff)
	}
}

func TestComposer_CustomLivePolicy(t *testing.T) {
	composer := NewComposer(WithLiveOverrides(LivePolicy{ValidationEager: PolitenessAssertive}))
	data := composer.Group("email", GroupState{
		FieldState: FieldState{HasError: true, ValidationMode: ValidationEager},
	})
	if data.ErrorProps.AriaLive != PolitenessAssertive {
		t.Fatalf("override not applied: %q", data.ErrorProps.AriaLive)
	}
	if ComposeGroup("email", GroupState{FieldState: FieldState{HasError: true, ValidationMode: ValidationEager}}).ErrorProps.AriaLive != PolitenessPolite {
		t.Fatalf("default composer affected by custom composer")
	}
}
