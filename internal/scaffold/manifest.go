package scaffold

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/crta-dev/crta/internal/errors"
)

// manifestName is the package manifest patched after the copy.
const manifestName = "package.json"

// patchManifest sets the name field of dir's package.json to projectName
// and rewrites the file with two-space indentation. Returns false without
// error when the template ships no manifest; a manifest that exists but
// cannot be parsed is fatal.
func patchManifest(dir, projectName string) (bool, error) {
	path := filepath.Join(dir, manifestName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.New("E241").Wrap(err)
	}

	// UseNumber keeps numeric fields exactly as written instead of
	// round-tripping them through float64.
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var manifest map[string]any
	if err := dec.Decode(&manifest); err != nil {
		return false, errors.New("E241").
			WithDetail("Could not parse " + path + ". The project files were copied; fix or regenerate package.json and set its name to '" + projectName + "' yourself.").
			Wrap(err)
	}

	manifest["name"] = projectName

	out, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return false, errors.New("E241").Wrap(err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(path, out, 0644); err != nil {
		return false, errors.New("E241").Wrap(err)
	}

	return true, nil
}
