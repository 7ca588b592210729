package docfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Options configures document loading.
type Options struct {
	// Format: "yaml", "json", or "toml". Auto-detected from extension if empty.
	Format string

	// Required: if true, missing files cause an error. Default: false
	// (returns an empty document).
	Required bool
}

// Load reads and parses the file into a JSON-style object. Nesting is
// preserved; YAML mappings with non-string keys have those keys dropped so
// the result is always a map[string]any tree.
func Load(path string, opts Options) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if opts.Required {
				return nil, fmt.Errorf("required document not found: %s: %w", path, err)
			}
			return make(map[string]any), nil
		}
		return nil, fmt.Errorf("read document %s: %w", path, err)
	}

	format := opts.Format
	if format == "" {
		format = inferFormat(path)
	}

	var doc map[string]any
	switch format {
	case "yaml", "yml":
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse YAML document %s: %w", path, err)
		}
		if raw == nil {
			return make(map[string]any), nil
		}
		obj, ok := normalizeValue(raw).(map[string]any)
		if !ok {
			return nil, fmt.Errorf("parse YAML document %s: top-level value must be a mapping", path)
		}
		doc = obj
	case "json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse JSON document %s: %w", path, err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse TOML document %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported document format: %s (supported: yaml, json, toml)", format)
	}

	return doc, nil
}

// normalizeValue rewrites map[any]any nodes (produced by YAML for some
// mappings) into map[string]any, recursively. Non-string keys are dropped.
func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for key, val := range v {
			v[key] = normalizeValue(val)
		}
		return v
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			keyStr, ok := key.(string)
			if !ok {
				continue
			}
			out[keyStr] = normalizeValue(val)
		}
		return out
	case []any:
		for i, val := range v {
			v[i] = normalizeValue(val)
		}
		return v
	default:
		return value
	}
}

func inferFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	case ".toml":
		return "toml"
	default:
		return ""
	}
}
