package main

import (
	"fmt"
	"os"

	"github.com/gitwatch/gitwatch/internal/app"
	"github.com/gitwatch/gitwatch/internal/gitcli"
)

func main() {
	dir, err := repoRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := app.New(dir).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func repoRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	root, err := gitcli.New(cwd).Run("rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}
	return root, nil
}
