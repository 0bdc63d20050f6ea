package transcode

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// commandRunner abstracts process execution for testability.
type commandRunner interface {
	// Run executes one command, invoking onLine for every line the process
	// writes to stdout, and returns once the process exits.
	Run(ctx context.Context, name string, args []string, onLine func(string)) error
}

// execRunner executes commands via os/exec.
type execRunner struct{}

func (r *execRunner) Run(ctx context.Context, name string, args []string, onLine func(string)) error {
	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("transcode: pipe stdout: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("transcode: start %s: %w", name, err)
	}

	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		if onLine != nil {
			onLine(scanner.Text())
		}
	}

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("transcode: %s failed: %w (stderr: %s)", name, err, tail(stderr.String(), 400))
	}
	return nil
}

// tail returns the last n bytes of s.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
