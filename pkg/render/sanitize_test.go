package render_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-formaria/pkg/render"
)

func TestSanitizeContent(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		without []string
	}{
		{name: "blank", input: "   ", want: ""},
		{name: "plain text", input: "Pick a plan", want: "Pick a plan"},
		{name: "inline formatting kept", input: "Use <strong>8</strong> characters", want: "Use <strong>8</strong> characters"},
		{name: "script removed", input: `Hi<script>alert(1)</script>`, want: "Hi"},
		{name: "event handler removed", input: `<em onclick="x()">now</em>`, want: "<em>now</em>"},
		{name: "javascript link dropped", input: `<a href="javascript:alert(1)">go</a>`, without: []string{"javascript:"}},
		{name: "block elements stripped", input: `<div><p>text</p></div>`, want: "text"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := render.SanitizeContent(tc.input)
			if tc.want != "" || len(tc.without) == 0 {
				if got != tc.want {
					t.Fatalf("SanitizeContent(%q) = %q, want %q", tc.input, got, tc.want)
				}
			}
			for _, fragment := range tc.without {
				if strings.Contains(got, fragment) {
					t.Fatalf("SanitizeContent(%q) = %q, should not contain %q", tc.input, got, fragment)
				}
			}
		})
	}
}
