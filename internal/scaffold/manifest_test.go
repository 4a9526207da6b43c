package scaffold

import (
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/crta-dev/crta/internal/errors"
)

const sampleManifest = `{
  "name": "template-name",
  "version": "0.1.0",
  "private": true,
  "scripts": {
    "dev": "vite",
    "build": "vite build"
  },
  "dependencies": {
    "react": "^18.2.0"
  }
}
`

func TestPatchManifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "package.json"), sampleManifest)

	patched, err := patchManifest(dir, "demo-app")
	if err != nil {
		t.Fatalf("patchManifest error: %v", err)
	}
	if !patched {
		t.Fatal("patched = false, want true")
	}

	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		t.Fatal(err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("patched manifest is not valid JSON: %v", err)
	}

	if got["name"] != "demo-app" {
		t.Errorf("name = %v, want %q", got["name"], "demo-app")
	}

	// Every other top-level field survives untouched.
	var orig map[string]any
	if err := json.Unmarshal([]byte(sampleManifest), &orig); err != nil {
		t.Fatal(err)
	}
	for key, want := range orig {
		if key == "name" {
			continue
		}
		if !reflect.DeepEqual(got[key], want) {
			t.Errorf("field %q = %v, want %v", key, got[key], want)
		}
	}

	if data[len(data)-1] != '\n' {
		t.Error("rewritten manifest should end with a newline")
	}
}

func TestPatchManifest_NumbersSurvive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "package.json"), `{"name": "x", "port": 5173}`)

	if _, err := patchManifest(dir, "demo"); err != nil {
		t.Fatalf("patchManifest error: %v", err)
	}

	data, _ := os.ReadFile(filepath.Join(dir, "package.json"))
	if !strings.Contains(string(data), `"port": 5173`) {
		t.Errorf("numeric field mangled, manifest:\n%s", data)
	}
}

func TestPatchManifest_Missing(t *testing.T) {
	patched, err := patchManifest(t.TempDir(), "demo")
	if err != nil {
		t.Fatalf("missing manifest should not be an error, got %v", err)
	}
	if patched {
		t.Error("patched = true, want false")
	}
}

func TestPatchManifest_Malformed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "package.json"), `{"name": `)

	_, err := patchManifest(dir, "demo")
	if err == nil {
		t.Fatal("malformed manifest should be fatal")
	}

	var se *errors.ScaffoldError
	if !stderrors.As(err, &se) || se.Code != "E241" {
		t.Errorf("error = %v, want code E241", err)
	}
}
