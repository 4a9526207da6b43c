package catalog

import (
	stderrors "errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crta-dev/crta/internal/errors"
)

func TestBuiltin(t *testing.T) {
	c := Builtin("/opt/crta/templates")

	tests := []struct {
		key     string
		wantDir string
	}{
		{"jsx-basic", filepath.Join("/opt/crta/templates", "jsx-basic")},
		{"javascript", filepath.Join("/opt/crta/templates", "jsx")},
		{"typescript", filepath.Join("/opt/crta/templates", "tsx")},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			tmpl, err := c.Get(tt.key)
			if err != nil {
				t.Fatalf("Get(%q) error: %v", tt.key, err)
			}
			if tmpl.Dir != tt.wantDir {
				t.Errorf("Dir = %q, want %q", tmpl.Dir, tt.wantDir)
			}
			if tmpl.DisplayName == "" {
				t.Error("DisplayName should not be empty")
			}
		})
	}

	if c.DefaultKey() != "javascript" {
		t.Errorf("DefaultKey() = %q, want %q", c.DefaultKey(), "javascript")
	}
}

func TestGet_Unknown(t *testing.T) {
	c := Builtin("templates")

	_, err := c.Get("cobol")
	if err == nil {
		t.Fatal("Get of unknown key should fail")
	}
	var se *errors.ScaffoldError
	if !stderrors.As(err, &se) || se.Code != "E210" {
		t.Errorf("error = %v, want code E210", err)
	}
	// The error should list the valid keys as a remediation hint.
	for _, key := range c.Keys() {
		if !strings.Contains(err.Error()+errSuggestion(err), key) {
			t.Errorf("error should mention valid key %q", key)
		}
	}
}

func TestKeys_Order(t *testing.T) {
	c := New([]Template{
		{Key: "b"}, {Key: "a"}, {Key: "c"},
	}, "a")

	got := c.Keys()
	want := []string{"b", "a", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q (catalog order must be preserved)", i, got[i], want[i])
		}
	}
}

func TestTemplates_Copy(t *testing.T) {
	c := New([]Template{{Key: "x", Dir: "x"}}, "x")

	got := c.Templates()
	got[0].Dir = "mutated"

	tmpl, _ := c.Get("x")
	if tmpl.Dir != "x" {
		t.Error("mutating the Templates() slice must not affect the catalog")
	}
}

// errSuggestion extracts the suggestion text from a catalog error, if any.
func errSuggestion(err error) string {
	var se *errors.ScaffoldError
	if stderrors.As(err, &se) {
		return se.Suggestion
	}
	return ""
}
