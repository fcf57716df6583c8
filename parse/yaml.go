package parse

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jd-tools/jd/tree"
)

func toYAMLBytes(node *tree.Node) ([]byte, error) {
	value, err := node.ToJSONValue()
	if err != nil {
		return nil, fmt.Errorf("cannot render void node as YAML: %w", err)
	}
	return yaml.Marshal(value)
}
