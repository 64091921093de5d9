package adapter

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	m "github.com/anonymousfse26/orbis/internal/model"
)

// gcovTimeout bounds one gcov invocation over a batch of .gcda files.
const gcovTimeout = 5 * time.Minute

// CoverageTool turns instrumentation data into covered branches.
type CoverageTool interface {
	// Run processes gcdas from dir, leaving *.gcov reports behind.
	Run(ctx context.Context, dir m.Path, gcdas []m.Path) (ProcessResult, error)
}

// GcovAdapter drives gcov in branch mode.
type GcovAdapter struct {
	runner ProcessRunner
	bin    string
}

// NewGcovAdapter constructs a GcovAdapter.
func NewGcovAdapter(runner ProcessRunner, bin string) *GcovAdapter {
	return &GcovAdapter{runner: runner, bin: bin}
}

// Run executes `gcov -b <gcdas...>` with dir as working directory.
func (g *GcovAdapter) Run(ctx context.Context, dir m.Path, gcdas []m.Path) (ProcessResult, error) {
	args := make([]string, 0, len(gcdas)+1)
	args = append(args, "-b")

	for _, gcda := range gcdas {
		args = append(args, string(gcda))
	}

	return g.runner.Run(ctx, Command{Name: g.bin, Args: args, Dir: string(dir), Timeout: gcovTimeout})
}

// ParseGcov extracts the covered branches of one .gcov report. Branch
// outcome lines are attributed to the most recent source line; a line is
// covered as soon as one of its outcomes was taken. Files are named by base
// name, like the branches of an option-branch map.
func ParseGcov(content []byte) (m.BranchSet, error) {
	covered := make(m.BranchSet)

	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	if !scanner.Scan() {
		return covered, scanner.Err()
	}

	header := strings.TrimSpace(scanner.Text())
	file := filepath.Base(header[strings.LastIndexByte(header, ':')+1:])

	current := 0

	for scanner.Scan() {
		line := scanner.Text()

		if strings.Contains(line, ":") {
			if n, ok := sourceLineNumber(line); ok {
				current = n
			}

			continue
		}

		if !isBranchLine(line) || current == 0 {
			continue
		}

		if branchTaken(line) {
			covered.Add(m.BranchID{File: file, Line: current})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read gcov report for %s: %w", file, err)
	}

	return covered, nil
}

// sourceLineNumber reads the line field of "count:line:text".
func sourceLineNumber(line string) (int, bool) {
	parts := strings.SplitN(line, ":", 3)
	if len(parts) < 3 {
		return 0, false
	}

	n, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || n <= 0 {
		return 0, false
	}

	return n, true
}

func isBranchLine(line string) bool {
	return strings.Contains(line, "branch") &&
		!strings.Contains(line, "returned 0% blocks executed 0%")
}

func branchTaken(line string) bool {
	return !strings.Contains(line, "never") && !strings.Contains(line, "taken 0%")
}
