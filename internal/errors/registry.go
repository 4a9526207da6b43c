package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Input Errors (E200-E219)
	// ============================================

	"E201": {
		Category: CategoryInput,
		Message:  "Invalid project name",
		Detail:   "Project names may only contain letters, digits, hyphens, and underscores.",
	},
	"E202": {
		Category: CategoryInput,
		Message:  "Empty project name",
		Detail:   "A project name is required and must not be empty.",
	},
	"E210": {
		Category: CategoryInput,
		Message:  "Unknown template",
		Detail:   "The specified project template doesn't exist in the catalog.",
	},

	// ============================================
	// Configuration Errors (E220-E229)
	// ============================================

	"E220": {
		Category: CategoryConfig,
		Message:  "Template source missing",
		Detail:   "The template's source directory was not found on disk. The installation may be incomplete.",
	},
	"E221": {
		Category: CategoryConfig,
		Message:  "Template root missing",
		Detail:   "The templates directory was not found next to the executable.",
	},

	// ============================================
	// Filesystem Errors (E230-E239)
	// ============================================

	"E230": {
		Category: CategoryFS,
		Message:  "Project directory already exists",
		Detail:   "A directory with this name already exists. It will not be overwritten or merged into.",
	},
	"E231": {
		Category: CategoryFS,
		Message:  "Template copy failed",
		Detail:   "An I/O error occurred while copying the template. The target directory may be incomplete.",
	},

	// ============================================
	// Manifest Errors (E240-E249)
	// ============================================

	"E241": {
		Category: CategoryManifest,
		Message:  "Invalid package.json",
		Detail:   "The copied package.json could not be parsed. The project files were copied successfully; only the name patch failed.",
	},

	// ============================================
	// CLI Errors (E250-E259)
	// ============================================

	"E250": {
		Category: CategoryCLI,
		Message:  "Prompt aborted",
		Detail:   "The interactive prompt was cancelled before a value was provided.",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
