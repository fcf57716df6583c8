package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/jd-tools/jd/diff"
	"github.com/jd-tools/jd/internal/cli"
	"github.com/jd-tools/jd/patch"
	"github.com/jd-tools/jd/render"
)

var translateTargets = []string{"jd2patch", "jd2merge", "jd2raw", "patch2jd", "yaml2json", "json2yaml"}

func buildOptions() *cli.Options {
	var setKeys []string
	if setKeysFlag != "" {
		setKeys = strings.Split(setKeysFlag, ",")
	}
	return &cli.Options{
		Color:         color,
		Format:        format,
		Output:        output,
		PatchMode:     patchMode,
		Translate:     translate,
		YAML:          yamlFlag,
		Precision:     precision,
		Set:           setFlag,
		MultiSet:      msetFlag,
		SetKeys:       setKeys,
		OptsJSON:      optsJSON,
		Port:          port,
		GitDiffDriver: gitDiffDriver,
		Recursive:     recursive,
		MaxValueLen:   maxValueLen,
	}
}

func dispatch(args []string) error {
	opts := buildOptions()
	if err := opts.Validate(); err != nil {
		return err
	}

	switch {
	case opts.Translate != "":
		return runTranslate(opts, args)
	case opts.PatchMode:
		return runPatch(opts, args)
	case opts.Recursive:
		if len(args) != 2 {
			return fmt.Errorf("--recursive requires two directory arguments")
		}
		return runDirectoryDiff(opts, args[0], args[1])
	default:
		if len(args) < 1 {
			return fmt.Errorf("Usage: jd [OPTION]... FILE1 [FILE2]")
		}
		return runDiff(opts, args)
	}
}

func runDiff(opts *cli.Options, args []string) error {
	oldFile := args[0]
	newFile := "-"
	if len(args) == 2 {
		newFile = args[1]
	}

	lhs, err := cli.ParseInput(oldFile, opts.YAML)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", oldFile, err)
	}
	rhs, err := cli.ParseInput(newFile, opts.YAML)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", newFile, err)
	}

	treeOpts, err := opts.ToTreeOptions()
	if err != nil {
		return err
	}

	d, err := diff.Nodes(lhs, rhs, treeOpts)
	if err != nil {
		return err
	}

	rendered, err := cli.RenderDiff(d, opts.Format, opts, oldFile, newFile)
	if err != nil {
		return err
	}

	if err := cli.WriteOutput(opts.Output, rendered); err != nil {
		return err
	}

	if !d.IsEmpty() {
		os.Exit(1)
	}
	return nil
}

func runPatch(opts *cli.Options, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("Usage: jd -p [OPTION]... PATCHFILE [TARGETFILE]")
	}
	patchFile := args[0]
	targetFile := "-"
	if len(args) == 2 {
		targetFile = args[1]
	}

	patchText, err := cli.ReadFile(patchFile)
	if err != nil {
		return err
	}
	d, err := render.ParseNative(string(patchText))
	if err != nil {
		return fmt.Errorf("failed to parse patch %s: %w", patchFile, err)
	}

	target, err := cli.ParseInput(targetFile, opts.YAML)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", targetFile, err)
	}

	patched, err := patch.Apply(target, d)
	if err != nil {
		return err
	}

	rendered, err := renderPatchedNode(patched, opts.YAML)
	if err != nil {
		return err
	}
	return cli.WriteOutput(opts.Output, rendered)
}

func runTranslate(opts *cli.Options, args []string) error {
	if !contains(translateTargets, opts.Translate) {
		msg := fmt.Sprintf("unknown translate target: %q", opts.Translate)
		if suggestion := suggestTarget(opts.Translate); suggestion != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
		}
		return fmt.Errorf("%s", msg)
	}

	source := "-"
	if len(args) == 1 {
		source = args[0]
	}
	input, err := cli.ReadFile(source)
	if err != nil {
		return err
	}

	rendered, err := render.Translate(opts.Translate, string(input))
	if err != nil {
		return err
	}
	return cli.WriteOutput(opts.Output, rendered)
}

func suggestTarget(target string) string {
	best := ""
	bestDistance := -1
	for _, candidate := range translateTargets {
		d := levenshtein.Distance(target, candidate, nil)
		if bestDistance == -1 || d < bestDistance {
			bestDistance = d
			best = candidate
		}
	}
	if bestDistance >= 0 && bestDistance <= 4 {
		return best
	}
	return ""
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
