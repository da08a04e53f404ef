package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func flagNamed(name string) *kong.Flag {
	return &kong.Flag{Value: &kong.Value{Name: name}}
}

func resolve(t *testing.T, source, flag string) any {
	t.Helper()

	resolver, err := resolveYAML(strings.NewReader(source))
	if err != nil {
		t.Fatalf("resolveYAML: unexpected error: %v", err)
	}

	value, err := resolver.Resolve(nil, nil, flagNamed(flag))
	if err != nil {
		t.Fatalf("Resolve(%q): unexpected error: %v", flag, err)
	}

	return value
}

func TestResolveYAMLTopLevelKey(t *testing.T) {
	value := resolve(t, "log-level: debug\n", "log-level")

	if value != "debug" {
		t.Errorf("Resolve(log-level) = %v, want debug", value)
	}
}

func TestResolveYAMLNestedKeys(t *testing.T) {
	source := `
log:
  level: trace
  pretty: true
`

	if value := resolve(t, source, "log-level"); value != "trace" {
		t.Errorf("Resolve(log-level) = %v, want trace", value)
	}

	if value := resolve(t, source, "log-pretty"); value != true {
		t.Errorf("Resolve(log-pretty) = %v, want true", value)
	}
}

func TestResolveYAMLUnderscoreSpelling(t *testing.T) {
	value := resolve(t, "log_format: json\n", "log-format")

	if value != "json" {
		t.Errorf("Resolve(log-format) = %v, want json", value)
	}
}

func TestResolveYAMLUnknownFlag(t *testing.T) {
	if value := resolve(t, "log-level: info\n", "cache"); value != nil {
		t.Errorf("Resolve(cache) = %v, want nil", value)
	}
}

func TestResolveYAMLEmptyFile(t *testing.T) {
	if value := resolve(t, "", "log-level"); value != nil {
		t.Errorf("Resolve(log-level) = %v, want nil", value)
	}
}

func TestResolveYAMLInvalidSyntax(t *testing.T) {
	_, err := resolveYAML(strings.NewReader("log: [unclosed\n"))
	if err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}
