// Package config reads the optional brio.toml manifest next to a project.
// Only the small flat subset the CLI needs is understood: top-level
// key = value pairs with string or integer values.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const ManifestName = "brio.toml"

type Manifest struct {
	// Entry is the script to run when the CLI is pointed at a directory.
	Entry string
	// MaxSteps bounds evaluation steps per run; zero means unlimited.
	MaxSteps int
	// MaxRecursion bounds call depth; zero means the built-in default.
	MaxRecursion int
}

// LoadManifest parses the manifest at path. A missing file is not an
// error; it yields a zero manifest.
func LoadManifest(path string) (Manifest, error) {
	var m Manifest

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return m, err
	}

	for lineNo, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "[") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return m, fmt.Errorf("%s:%d: expected key = value", path, lineNo+1)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "entry":
			s, err := unquote(value)
			if err != nil {
				return m, fmt.Errorf("%s:%d: %v", path, lineNo+1, err)
			}
			m.Entry = s
		case "max_steps":
			n, err := strconv.Atoi(value)
			if err != nil {
				return m, fmt.Errorf("%s:%d: max_steps must be an integer", path, lineNo+1)
			}
			m.MaxSteps = n
		case "max_recursion":
			n, err := strconv.Atoi(value)
			if err != nil {
				return m, fmt.Errorf("%s:%d: max_recursion must be an integer", path, lineNo+1)
			}
			m.MaxRecursion = n
		}
	}

	return m, nil
}

func unquote(value string) (string, error) {
	if len(value) < 2 || !strings.HasPrefix(value, `"`) || !strings.HasSuffix(value, `"`) {
		return "", fmt.Errorf("expected a quoted string, got %s", value)
	}
	return value[1 : len(value)-1], nil
}
