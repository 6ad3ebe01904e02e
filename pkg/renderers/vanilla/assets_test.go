package vanilla

import (
	"io/fs"
	"strings"
	"testing"
)

func TestAssetsFSIncludesStylesheet(t *testing.T) {
	data, err := fs.ReadFile(AssetsFS(), StylesheetName)
	if err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
	for _, class := range []string{".formaria-block", ".formaria-label--l", ".formaria-error"} {
		if !strings.Contains(string(data), class) {
			t.Fatalf("expected stylesheet to style %s", class)
		}
	}
	if defaultStylesheet() != string(data) {
		t.Fatal("defaultStylesheet should return the embedded asset")
	}
}

func TestTemplatesFSProvidesDefaultPartials(t *testing.T) {
	for _, path := range []string{"templates/form.tmpl", "templates/field.tmpl", "templates/group.tmpl"} {
		if _, err := fs.Stat(TemplatesFS(), path); err != nil {
			t.Fatalf("missing template %s: %v", path, err)
		}
	}
}
