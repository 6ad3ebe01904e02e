package render

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formaria/pkg/model"
)

type namedRenderer string

func (n namedRenderer) Name() string        { return string(n) }
func (n namedRenderer) ContentType() string { return "text/plain" }
func (n namedRenderer) Render(context.Context, model.Form, RenderOptions) ([]byte, error) {
	return []byte(n), nil
}

func TestRegistry(t *testing.T) {
	registry, err := NewRegistry(namedRenderer("vanilla"), namedRenderer("alt"))
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}

	if diff := cmp.Diff([]string{"alt", "vanilla"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("alt") || registry.Has("missing") {
		t.Fatalf("unexpected Has results")
	}

	got, err := registry.Get("vanilla")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name() != "vanilla" {
		t.Fatalf("got renderer %q", got.Name())
	}

	if _, err := registry.Get("missing"); !errors.Is(err, ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
	if err := registry.Register(namedRenderer("alt")); !errors.Is(err, ErrRendererExists) {
		t.Fatalf("expected ErrRendererExists, got %v", err)
	}
	if err := registry.Register(namedRenderer("")); err == nil {
		t.Fatalf("expected error for unnamed renderer")
	}
	if _, err := NewRegistry(namedRenderer("x"), namedRenderer("x")); !errors.Is(err, ErrRendererExists) {
		t.Fatalf("expected duplicate seed to fail, got %v", err)
	}
}

func TestRegistry_MustRegisterPanics(t *testing.T) {
	registry, _ := NewRegistry(namedRenderer("vanilla"))
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on duplicate registration")
		}
	}()
	registry.MustRegister(namedRenderer("vanilla"))
}
