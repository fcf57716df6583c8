package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jd-tools/jd/diff"
	"github.com/jd-tools/jd/internal/cli"
)

// runDirectoryDiff batch-compares every recognized config file found under
// both oldDir and newDir, matched by relative path.
func runDirectoryDiff(opts *cli.Options, oldDir, newDir string) error {
	oldFiles, err := collectConfigFiles(oldDir)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", oldDir, err)
	}
	newFiles, err := collectConfigFiles(newDir)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", newDir, err)
	}

	allPaths := make(map[string]bool)
	for _, path := range oldFiles {
		rel, _ := filepath.Rel(oldDir, path)
		allPaths[rel] = true
	}
	for _, path := range newFiles {
		rel, _ := filepath.Rel(newDir, path)
		allPaths[rel] = true
	}

	var relPaths []string
	for rel := range allPaths {
		relPaths = append(relPaths, rel)
	}

	hasAnyChanges := false
	filesCompared, filesAdded, filesRemoved := 0, 0, 0

	for _, rel := range relPaths {
		oldPath := filepath.Join(oldDir, rel)
		newPath := filepath.Join(newDir, rel)
		oldExists := fileExists(oldPath)
		newExists := fileExists(newPath)

		switch {
		case oldExists && newExists:
			fmt.Printf("\n=== %s ===\n", rel)
			lhs, err := cli.ParseInput(oldPath, opts.YAML)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			rhs, err := cli.ParseInput(newPath, opts.YAML)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			treeOpts, err := opts.ToTreeOptions()
			if err != nil {
				return err
			}
			d, err := diff.Nodes(lhs, rhs, treeOpts)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			rendered, err := cli.RenderDiff(d, opts.Format, opts, oldPath, newPath)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			fmt.Println(rendered)
			if !d.IsEmpty() {
				hasAnyChanges = true
			}
			filesCompared++
		case newExists && !oldExists:
			filesAdded++
			fmt.Printf("\n+++ %s (added)\n", rel)
			hasAnyChanges = true
		case oldExists && !newExists:
			filesRemoved++
			fmt.Printf("\n--- %s (removed)\n", rel)
			hasAnyChanges = true
		}
	}

	fmt.Printf("\nSummary: %d files compared, %d added, %d removed\n", filesCompared, filesAdded, filesRemoved)

	if hasAnyChanges {
		os.Exit(1)
	}
	return nil
}

func collectConfigFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml", ".json", ".hcl", ".tf", ".tfvars", ".toml":
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
