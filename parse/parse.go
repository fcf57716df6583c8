// Package parse canonicalizes configuration text in several serialization
// formats (JSON, YAML, HCL, TOML) into tree.Node values, and renders a
// tree.Node back out to JSON or YAML text.
package parse

import (
	"fmt"
	"strings"

	"github.com/jd-tools/jd/tree"
)

// Format names a supported serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
	FormatTOML Format = "toml"
)

// ParseFormat parses a format name, accepting a few common aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "hcl", "tf", "tfvars":
		return FormatHCL, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported format: %q", name)
	}
}

// Parse canonicalizes input in the given format into a tree.Node.
func Parse(input []byte, format Format) (*tree.Node, error) {
	switch format {
	case FormatJSON:
		return tree.FromJSONBytes(input)
	case FormatYAML:
		return tree.FromYAMLBytes(input)
	case FormatHCL:
		return fromHCLBytes(input)
	case FormatTOML:
		return fromTOMLBytes(input)
	default:
		return nil, fmt.Errorf("unsupported format: %q", format)
	}
}

// DetectFormat guesses a format from a file name's extension, defaulting to
// JSON when the extension is unrecognized.
func DetectFormat(filename string) Format {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		return FormatYAML
	case strings.HasSuffix(lower, ".hcl"), strings.HasSuffix(lower, ".tf"), strings.HasSuffix(lower, ".tfvars"):
		return FormatHCL
	case strings.HasSuffix(lower, ".toml"):
		return FormatTOML
	default:
		return FormatJSON
	}
}

// Render serializes node back into text in the given format. HCL has no
// well-defined reverse mapping from an arbitrary tree.Node (it is an
// attribute language, not a value serialization), so Render only supports
// JSON and YAML, matching what a diff/patch CLI actually needs to emit.
func Render(node *tree.Node, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return node.MarshalCanonicalJSON()
	case FormatYAML:
		return toYAMLBytes(node)
	default:
		return nil, fmt.Errorf("cannot render format: %q", format)
	}
}
