package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	m "github.com/anonymousfse26/orbis/internal/model"
)

// waitDelay bounds how long Wait keeps draining pipes after the process
// group has been killed.
const waitDelay = 500 * time.Millisecond

// Command is a fully structured external invocation. Arguments are never
// passed through a shell.
type Command struct {
	Name    string
	Args    []string
	Dir     string
	Timeout time.Duration
	Stdin   []byte
}

// ProcessResult is the tagged outcome of a finished command. Output produced
// before a timeout is kept.
type ProcessResult struct {
	Status   m.ProcessStatus
	ExitCode int
	Stdout   []byte
	Stderr   []byte
	Elapsed  time.Duration
}

// ProcessRunner runs external tools with an explicit timeout.
type ProcessRunner interface {
	// Run executes cmd and reports how it ended. An error is returned only
	// when the process could not be started or ctx was canceled.
	Run(ctx context.Context, cmd Command) (ProcessResult, error)
}

// LocalProcessRunner runs commands on the local machine, each in its own
// process group so a timeout kills every descendant.
type LocalProcessRunner struct{}

// NewLocalProcessRunner constructs a LocalProcessRunner.
func NewLocalProcessRunner() *LocalProcessRunner {
	return &LocalProcessRunner{}
}

// Run executes c and waits for it to exit or time out.
func (r *LocalProcessRunner) Run(ctx context.Context, c Command) (ProcessResult, error) {
	runCtx := ctx

	if c.Timeout > 0 {
		var cancel context.CancelFunc

		runCtx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	// #nosec G204 - the tool paths come from the session configuration
	cmd := exec.CommandContext(runCtx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.WaitDelay = waitDelay

	if c.Stdin != nil {
		cmd.Stdin = bytes.NewReader(c.Stdin)
	}

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	configureProcessGroup(cmd)

	start := time.Now()

	if err := cmd.Start(); err != nil {
		return ProcessResult{}, fmt.Errorf("failed to start %s: %w", c.Name, err)
	}

	waitErr := cmd.Wait()

	result := ProcessResult{
		Status:   m.StatusOK,
		ExitCode: -1,
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		Elapsed:  time.Since(start),
	}

	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	switch {
	case ctx.Err() != nil:
		result.Status = m.StatusFailed
		return result, ctx.Err()
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		result.Status = m.StatusTimedOut
	case waitErr != nil:
		result.Status = m.StatusFailed
	}

	return result, nil
}
