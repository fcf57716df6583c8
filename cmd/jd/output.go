package main

import (
	"github.com/jd-tools/jd/parse"
	"github.com/jd-tools/jd/tree"
)

func renderPatchedNode(node *tree.Node, useYAML bool) (string, error) {
	format := parse.FormatJSON
	if useYAML {
		format = parse.FormatYAML
	}
	data, err := parse.Render(node, format)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
