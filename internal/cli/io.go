package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/jd-tools/jd/parse"
	"github.com/jd-tools/jd/tree"
)

// ReadFile reads path, treating "-" as standard input.
func ReadFile(path string) ([]byte, error) {
	if path == "-" || path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// ParseInput reads path and canonicalizes it into a tree.Node. useYAML
// forces YAML parsing; otherwise the format is detected from path's
// extension (stdin and "-" default to JSON).
func ParseInput(path string, useYAML bool) (*tree.Node, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	format := parse.FormatJSON
	if useYAML {
		format = parse.FormatYAML
	} else if path != "-" && path != "" {
		format = parse.DetectFormat(path)
	}
	return parse.Parse(data, format)
}

// WriteOutput writes content to path, or to stdout when path is "-" or
// empty.
func WriteOutput(path string, content string) error {
	if path == "-" || path == "" {
		_, err := fmt.Println(content)
		return err
	}
	if err := os.WriteFile(path, []byte(content+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
