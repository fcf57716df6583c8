package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const versionBanner = "jd version 1.0.0"

var (
	color         bool
	format        string
	output        string
	patchMode     bool
	translate     string
	yamlFlag      bool
	precision     float64
	setFlag       bool
	msetFlag      bool
	setKeysFlag   string
	optsJSON      string
	port          int
	gitDiffDriver bool
	recursive     bool
	maxValueLen   int
)

var rootCmd = &cobra.Command{
	Use:           "jd [OPTIONS]... FILE1 [FILE2]",
	Short:         "Diff and patch JSON and YAML documents.",
	Version:       versionBanner,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(args)
	},
}

func init() {
	rootCmd.SetVersionTemplate(versionBanner + "\n")

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&color, "color", false, "enable ANSI colors in native output")
	flags.StringVarP(&format, "format", "f", "jd", "output format: jd|patch|merge|raw|stat|side-by-side|gitdiff")
	flags.StringVarP(&output, "output", "o", "", "write output to PATH instead of stdout")
	flags.BoolVarP(&patchMode, "patch", "p", false, "patch mode: FILE1 is a diff, apply it to FILE2/stdin")
	flags.StringVarP(&translate, "translate", "t", "", "translate mode: jd2patch, jd2merge, jd2raw, patch2jd, yaml2json, json2yaml")
	flags.BoolVar(&yamlFlag, "yaml", false, "read/write YAML instead of JSON")
	flags.Float64Var(&precision, "precision", 0, "numeric equality tolerance")
	flags.BoolVar(&setFlag, "set", false, "treat arrays as sets")
	flags.BoolVar(&msetFlag, "mset", false, "treat arrays as multisets")
	flags.StringVar(&setKeysFlag, "setkeys", "", "comma-separated object keys identifying set elements")
	flags.StringVar(&optsJSON, "opts", "", "raw JSON merged into diff options before flag overrides")
	flags.IntVar(&port, "port", 0, "reserved: serve a web UI (not supported)")
	flags.BoolVar(&gitDiffDriver, "git-diff-driver", false, "reserved: run as a git diff driver (not supported)")
	flags.BoolVar(&recursive, "recursive", false, "compare two directory trees of config files")
	flags.IntVar(&maxValueLen, "max-value-length", 0, "truncate rendered values in side-by-side output (stat and gitdiff output are not truncated)")
}

func main() {
	os.Args = normalizeArgs(os.Args)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
