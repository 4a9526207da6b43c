package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "invalid project name",
			code:    "E201",
			wantMsg: "Invalid project name",
			wantCat: CategoryInput,
		},
		{
			name:    "unknown template",
			code:    "E210",
			wantMsg: "Unknown template",
			wantCat: CategoryInput,
		},
		{
			name:    "target directory exists",
			code:    "E230",
			wantMsg: "Project directory already exists",
			wantCat: CategoryFS,
		},
		{
			name:    "invalid manifest",
			code:    "E241",
			wantMsg: "Invalid package.json",
			wantCat: CategoryManifest,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryFS, "cannot copy %q", "src/App.jsx")
	if err.Message != `cannot copy "src/App.jsx"` {
		t.Errorf("Message = %q, want %q", err.Message, `cannot copy "src/App.jsx"`)
	}
	if err.Category != CategoryFS {
		t.Errorf("Category = %q, want %q", err.Category, CategoryFS)
	}
}

func TestScaffoldError_Error(t *testing.T) {
	err := New("E230")
	got := err.Error()
	want := "E230: Project directory already exists"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	// Without code
	err2 := &ScaffoldError{Message: "test error"}
	if err2.Error() != "test error" {
		t.Errorf("Error() = %q, want %q", err2.Error(), "test error")
	}
}

func TestScaffoldError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := New("E231").Wrap(cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}

	var se *ScaffoldError
	if !errors.As(err, &se) {
		t.Error("errors.As should find *ScaffoldError")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E231") != nil {
		t.Error("FromError(nil) should return nil")
	}

	// Already a ScaffoldError: returned as-is.
	orig := New("E230")
	if got := FromError(orig, "E231"); got != orig {
		t.Error("FromError should pass through an existing ScaffoldError")
	}

	// Plain error: wrapped under the given code.
	plain := fmt.Errorf("disk full")
	got := FromError(plain, "E231")
	if got.Code != "E231" {
		t.Errorf("Code = %q, want %q", got.Code, "E231")
	}
	if !errors.Is(got, plain) {
		t.Error("wrapped cause should be reachable via errors.Is")
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E230").
		WithDetail("Directory 'my-app' already exists").
		WithSuggestion("Choose a different name or remove the existing directory")

	out := err.Format()

	for _, want := range []string{
		"ERROR E230: Project directory already exists",
		"Directory 'my-app' already exists",
		"Hint: Choose a different name",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in:\n%s", want, out)
		}
	}
}

func TestFormat_WrappedCause(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E231").Wrap(fmt.Errorf("read src/App.jsx: input/output error"))
	out := err.Format()
	if !strings.Contains(out, "Cause: read src/App.jsx: input/output error") {
		t.Errorf("Format() missing wrapped cause in:\n%s", out)
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("E210")
	got := err.FormatCompact()
	want := "E210: Unknown template"
	if got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestGetAllCodes(t *testing.T) {
	codes := GetAllCodes()
	if len(codes) != len(registry) {
		t.Errorf("GetAllCodes() returned %d codes, want %d", len(codes), len(registry))
	}

	for _, code := range codes {
		if _, ok := GetTemplate(code); !ok {
			t.Errorf("GetTemplate(%q) not found", code)
		}
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		width     int
		wantLines int
	}{
		{"empty", "", 70, 0},
		{"short", "fits on one line", 70, 1},
		{"wraps", strings.Repeat("word ", 30), 20, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := wrapText(tt.text, tt.width)
			if len(lines) != tt.wantLines {
				t.Errorf("wrapText() = %d lines, want %d", len(lines), tt.wantLines)
			}
			for _, line := range lines {
				if len(line) > tt.width {
					t.Errorf("line %q exceeds width %d", line, tt.width)
				}
			}
		})
	}
}
