package defs

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(filepath.Join("defs", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

//go:embed *.yaml
var DefsFS embed.FS

// Load reads a definition file, preferring an on-disk copy under defs/ so
// edits take effect without a rebuild.
func Load(name string) ([]byte, error) {
	clean := cleanDefPath(name)
	if data, err := os.ReadFile(diskDefPath(clean)); err == nil {
		return data, nil
	}
	return DefsFS.ReadFile(clean)
}

func cleanDefPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "defs/") {
		return strings.TrimPrefix(s, "defs/")
	}
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}

	s := filepath.ToSlash(path)

	if after, ok := strings.CutPrefix(s, "defs/scripts/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "defs/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}

	return fmt.Sprintf("scripts/%s", s)
}

func diskDefPath(clean string) string {
	return filepath.Join("defs", filepath.FromSlash(clean))
}
