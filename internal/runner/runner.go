package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Output captures the result of a finished external command.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes one external command to completion in a working directory.
// The wizard runs every step through this interface so tests can substitute
// a scripted implementation.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (*Output, error)
}

// ExecRunner runs commands with os/exec.
// Stdout and Stderr can be set for testing; they default to os.Stdout/os.Stderr.
// When Verbose is set, child output is streamed to them while being captured.
type ExecRunner struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Verbose bool
}

// Run executes name with args in dir, waiting for completion. A command that
// starts but exits non-zero is not an error here: the exit code is reported
// in Output and the caller decides whether that is fatal.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (*Output, error) {
	bin, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("locating %s: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir

	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	if r.Verbose {
		cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
		cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)
	} else {
		cmd.Stdout = &stdoutBuf
		cmd.Stderr = &stderrBuf
	}

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("executing %s: %w", name, err)
	}

	return output, nil
}
