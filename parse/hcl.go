package parse

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/jd-tools/jd/tree"
)

// fromHCLBytes canonicalizes a flat HCL attribute body (the shape used by
// Terraform .tfvars files) into an Object node. HCL blocks are not
// supported: a diff engine needs a value tree, and block bodies are
// sub-schemas rather than data, so only top-level attributes are read.
func fromHCLBytes(input []byte) (*tree.Node, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(input, "input.hcl")
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid HCL: %s", diags.Error())
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid HCL: %s", diags.Error())
	}

	fields := make(map[string]*tree.Node, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid HCL: cannot evaluate attribute %q: %s", name, diags.Error())
		}
		node, err := ctyToNode(val)
		if err != nil {
			return nil, err
		}
		fields[name] = node
	}
	return tree.NewObject(fields), nil
}

func ctyToNode(val cty.Value) (*tree.Node, error) {
	if val.IsNull() {
		return tree.Null, nil
	}
	if !val.IsKnown() {
		return nil, fmt.Errorf("invalid HCL: value is not known at parse time")
	}

	typ := val.Type()
	switch {
	case typ == cty.String:
		return tree.NewString(val.AsString()), nil
	case typ == cty.Bool:
		return tree.NewBool(val.True()), nil
	case typ == cty.Number:
		f, _ := val.AsBigFloat().Float64()
		return tree.NewNumberFromFloat(f)
	case typ.IsListType(), typ.IsSetType(), typ.IsTupleType():
		items := make([]*tree.Node, 0)
		it := val.ElementIterator()
		for it.Next() {
			_, elem := it.Element()
			node, err := ctyToNode(elem)
			if err != nil {
				return nil, err
			}
			items = append(items, node)
		}
		return tree.NewArray(items), nil
	case typ.IsMapType(), typ.IsObjectType():
		fields := make(map[string]*tree.Node)
		it := val.ElementIterator()
		for it.Next() {
			key, elem := it.Element()
			node, err := ctyToNode(elem)
			if err != nil {
				return nil, err
			}
			fields[key.AsString()] = node
		}
		return tree.NewObject(fields), nil
	default:
		return nil, fmt.Errorf("invalid HCL: unsupported value type %s", typ.FriendlyName())
	}
}
