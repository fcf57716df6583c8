package parse

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jd-tools/jd/tree"
)

// fromTOMLBytes canonicalizes TOML text into a tree.Node. TOML's datetime
// values have no tree.Node counterpart, so they canonicalize to their
// RFC 3339 string form.
func fromTOMLBytes(input []byte) (*tree.Node, error) {
	var raw map[string]interface{}
	if _, err := toml.Decode(string(input), &raw); err != nil {
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}
	return tomlValueToNode(raw)
}

func tomlValueToNode(v interface{}) (*tree.Node, error) {
	switch val := v.(type) {
	case nil:
		return tree.Null, nil
	case bool:
		return tree.NewBool(val), nil
	case string:
		return tree.NewString(val), nil
	case int64:
		return tree.NewNumberFromFloat(float64(val))
	case float64:
		return tree.NewNumberFromFloat(val)
	case time.Time:
		return tree.NewString(val.Format(time.RFC3339)), nil
	case []interface{}:
		items := make([]*tree.Node, len(val))
		for i, e := range val {
			node, err := tomlValueToNode(e)
			if err != nil {
				return nil, err
			}
			items[i] = node
		}
		return tree.NewArray(items), nil
	case map[string]interface{}:
		fields := make(map[string]*tree.Node, len(val))
		for k, e := range val {
			node, err := tomlValueToNode(e)
			if err != nil {
				return nil, err
			}
			fields[k] = node
		}
		return tree.NewObject(fields), nil
	default:
		return nil, fmt.Errorf("invalid TOML: unsupported value %T", v)
	}
}
