// Package main generates the markdown reference documentation of proplint
// from the CLI commands, the configuration schema and the rule registries.
//
// Usage:
//
//	go run ./scripts/gendocs -gen=cli -outdir=docs/cli
//	go run ./scripts/gendocs -gen=config -outdir=docs
//	go run ./scripts/gendocs -gen=rules -outdir=docs/rules
//	go run ./scripts/gendocs -gen=all
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

var (
	genFlag    = flag.String("gen", "all", "what to generate: cli, config, rules, all")
	outDirFlag = flag.String("outdir", "", "output directory (defaults based on gen type)")
)

// generators maps each -gen value to its generator and default directory.
var generators = map[string]struct {
	dir string
	run func(outDir string) error
}{
	"cli":    {dir: filepath.Join("docs", "cli"), run: generateCLIDocs},
	"config": {dir: "docs", run: generateConfigDocs},
	"rules":  {dir: filepath.Join("docs", "rules"), run: generateRuleDocs},
}

func main() {
	flag.Parse()

	if _, ok := generators[*genFlag]; !ok && *genFlag != "all" {
		log.Fatalf("unknown -gen value: %s (use: cli, config, rules, all)", *genFlag)
	}

	// Find project root (where go.mod is)
	projectRoot, err := findProjectRoot()
	if err != nil {
		log.Fatalf("failed to find project root: %v", err)
	}

	log.Printf("Project root: %s", projectRoot)

	if err := generate(projectRoot, *genFlag, *outDirFlag); err != nil {
		log.Fatal(err)
	}

	log.Println("Done!")
}

// generate runs one generator, or all of them into their default
// directories under root.
func generate(root, gen, outDir string) error {
	names := []string{gen}
	if gen == "all" {
		names = []string{"cli", "config", "rules"}
		outDir = ""
	}
	for _, name := range names {
		g := generators[name]
		dir := outDir
		if dir == "" {
			dir = filepath.Join(root, g.dir)
		}
		if err := g.run(dir); err != nil {
			return fmt.Errorf("failed to generate %s docs: %w", name, err)
		}
	}
	return nil
}

// findProjectRoot walks up from current directory to find go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
