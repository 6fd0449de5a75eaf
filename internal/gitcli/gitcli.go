// Package gitcli is the ChildRunner: the sole place that shells out to the
// git binary. It captures stdout verbatim and wraps git's stderr into
// returned errors, exactly the way the teacher's internal/git package did
// for every command it ran.
package gitcli

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Runner executes git subcommands rooted at Dir (the working tree root).
type Runner struct {
	Dir string
}

// New returns a Runner rooted at dir.
func New(dir string) *Runner {
	return &Runner{Dir: dir}
}

// Run executes `git args...` and returns its trimmed stdout. On a non-zero
// exit the returned error includes git's stderr output.
func (r *Runner) Run(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if stderr.Len() > 0 {
			return strings.TrimSpace(string(out)), fmt.Errorf("git %s: %s", strings.Join(args, " "), strings.TrimSpace(stderr.String()))
		}
		return strings.TrimSpace(string(out)), fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// RunRaw is like Run but returns stdout without trimming, for callers (the
// porcelain-v2 parser) that need exact line boundaries preserved.
func (r *Runner) RunRaw(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if stderr.Len() > 0 {
			return string(out), fmt.Errorf("git %s: %s", strings.Join(args, " "), strings.TrimSpace(stderr.String()))
		}
		return string(out), fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return string(out), nil
}

// RunInteractive runs a git subcommand with the process's own stdin,
// stdout, and stderr, for commands that hand the terminal to an external
// program (the commit editor).
func (r *Runner) RunInteractive(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return nil
}
