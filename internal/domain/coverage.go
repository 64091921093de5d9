package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/anonymousfse26/orbis/internal/adapter"
	m "github.com/anonymousfse26/orbis/internal/model"
)

// CoverageCollector replays generated test inputs against the instrumented
// binary and reports the branches they cover.
type CoverageCollector interface {
	// Measure replays inputs as one batch and returns every covered branch.
	Measure(ctx context.Context, inputs []m.Path) (m.BranchSet, error)
	// MeasureEach replays inputs one at a time and returns each input's
	// covered branches.
	MeasureEach(ctx context.Context, inputs []m.Path) (map[m.Path]m.BranchSet, error)
}

// CoverageOptions locate the instrumented binary and its artifacts.
type CoverageOptions struct {
	Binary m.Path
	// SrcDepth is how many directories above the binary the .gcda files
	// are searched for.
	SrcDepth      int
	ReplayTimeout time.Duration
}

type coverageCollector struct {
	fsAdapter adapter.SourceFSAdapter
	replayer  adapter.Replayer
	gcov      adapter.CoverageTool
	opts      CoverageOptions
	logger    *slog.Logger
}

// NewCoverageCollector constructs a CoverageCollector.
func NewCoverageCollector(
	fsAdapter adapter.SourceFSAdapter,
	replayer adapter.Replayer,
	gcov adapter.CoverageTool,
	opts CoverageOptions,
	logger *slog.Logger,
) CoverageCollector {
	if logger == nil {
		logger = slog.Default()
	}

	return &coverageCollector{
		fsAdapter: fsAdapter,
		replayer:  replayer,
		gcov:      gcov,
		opts:      opts,
		logger:    logger,
	}
}

func (cc *coverageCollector) Measure(ctx context.Context, inputs []m.Path) (m.BranchSet, error) {
	cc.clearArtifacts()

	for _, input := range inputs {
		if err := cc.replay(ctx, input); err != nil {
			return nil, err
		}
	}

	return cc.collect(ctx)
}

func (cc *coverageCollector) MeasureEach(ctx context.Context, inputs []m.Path) (map[m.Path]m.BranchSet, error) {
	out := make(map[m.Path]m.BranchSet, len(inputs))

	for _, input := range inputs {
		covered, err := cc.Measure(ctx, []m.Path{input})
		if err != nil {
			return out, err
		}

		out[input] = covered
	}

	return out, nil
}

func (cc *coverageCollector) binaryDir() m.Path {
	return m.Path(filepath.Dir(string(cc.opts.Binary)))
}

// artifactRoot is the directory that holds every .gcda and .gcov file.
func (cc *coverageCollector) artifactRoot() m.Path {
	dir := string(cc.binaryDir())
	for range cc.opts.SrcDepth {
		dir = filepath.Dir(dir)
	}

	return m.Path(dir)
}

func (cc *coverageCollector) clearArtifacts() {
	stale, err := cc.fsAdapter.FindFiles(cc.artifactRoot(), ".gcda", ".gcov")
	if err != nil {
		cc.logger.Warn("failed to list coverage artifacts", slog.String("root", string(cc.artifactRoot())), slog.String("error", err.Error()))
		return
	}

	if err := cc.fsAdapter.RemoveFiles(stale); err != nil {
		cc.logger.Warn("failed to clear coverage artifacts", slog.String("error", err.Error()))
	}
}

// replay runs one input. Only cancellation is fatal; a crashing or hanging
// input still leaves its counters behind.
func (cc *coverageCollector) replay(ctx context.Context, input m.Path) error {
	result, err := cc.replayer.Replay(ctx, cc.opts.Binary, input, cc.opts.ReplayTimeout)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		cc.logger.Warn("replay failed to start", slog.String("input", string(input)), slog.String("error", err.Error()))

		return nil
	}

	if result.Status == m.StatusTimedOut {
		cc.logger.Debug("replay timed out", slog.String("input", string(input)))
	}

	return nil
}

func (cc *coverageCollector) collect(ctx context.Context) (m.BranchSet, error) {
	covered := make(m.BranchSet)
	root := cc.artifactRoot()

	gcdas, err := cc.fsAdapter.FindFiles(root, ".gcda")
	if err != nil {
		return covered, fmt.Errorf("failed to find coverage data under %s: %w", root, err)
	}

	if len(gcdas) == 0 {
		return covered, nil
	}

	result, err := cc.gcov.Run(ctx, cc.binaryDir(), gcdas)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		cc.logger.Warn("gcov failed to start", slog.String("error", err.Error()))

		return covered, nil
	}

	if result.Status != m.StatusOK {
		cc.logger.Warn("gcov did not finish cleanly", slog.String("status", string(result.Status)), slog.Int("exit", result.ExitCode))
	}

	reports, err := cc.fsAdapter.FindFiles(root, ".gcov")
	if err != nil {
		return covered, fmt.Errorf("failed to find gcov reports under %s: %w", root, err)
	}

	for _, report := range reports {
		content, err := cc.fsAdapter.ReadFile(report)
		if err != nil {
			cc.logger.Warn("failed to read gcov report", slog.String("path", string(report)), slog.String("error", err.Error()))
			continue
		}

		branches, err := adapter.ParseGcov(content)
		if err != nil {
			cc.logger.Warn("failed to parse gcov report", slog.String("path", string(report)), slog.String("error", err.Error()))
			continue
		}

		covered.Merge(branches)
	}

	return covered, nil
}
