package cli

import (
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolveYAML is a [kong.ConfigurationLoader] that reads flag defaults
// from a YAML config file.
//
// Top-level keys map to flag names. Nested mappings are flattened with
// hyphens, so both spellings below configure --log-level:
//
//	log-level: debug
//
//	log:
//	  level: debug
//
// Underscores are accepted in place of hyphens. Command-line flags
// override config file values.
func resolveYAML(r io.Reader) (kong.Resolver, error) {
	var root map[string]any

	err := yaml.NewDecoder(r).Decode(&root)
	if err != nil {
		if err == io.EOF {
			// Empty config file
			return config{}, nil
		}

		return nil, err
	}

	cfg := make(config)
	flatten(cfg, "", root)

	return cfg, nil
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	// Accept underscore spelling for hyphenated flags.
	underscore := strings.ReplaceAll(flag.Name, "-", "_")
	if value, ok := r[underscore]; ok {
		return value, nil
	}

	// Not found: let Kong use defaults.
	return nil, nil
}

// flatten copies nested mappings into out, joining key segments with
// hyphens.
func flatten(out config, prefix string, value map[string]any) {
	for key, val := range value {
		name := key
		if prefix != "" {
			name = prefix + "-" + key
		}

		if nested, ok := val.(map[string]any); ok {
			flatten(out, name, nested)

			continue
		}

		out[name] = val
	}
}
