package domain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/anonymousfse26/orbis/internal/adapter"
	"github.com/anonymousfse26/orbis/internal/adapter/mocks"
	m "github.com/anonymousfse26/orbis/internal/model"
)

type coverageFixture struct {
	root      string
	binary    m.Path
	replayer  *mocks.MockReplayer
	gcov      *mocks.MockCoverageTool
	collector CoverageCollector
}

func newCoverageFixture(t *testing.T) *coverageFixture {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o750))

	f := &coverageFixture{
		root:     root,
		binary:   m.Path(filepath.Join(root, "src", "minigrep")),
		replayer: mocks.NewMockReplayer(t),
		gcov:     mocks.NewMockCoverageTool(t),
	}

	f.collector = NewCoverageCollector(
		adapter.NewLocalSourceFSAdapter(adapter.NewTreeSitterCAdapter(), nil),
		f.replayer,
		f.gcov,
		CoverageOptions{Binary: f.binary, SrcDepth: 1, ReplayTimeout: 100 * time.Millisecond},
		nil,
	)

	return f
}

// expectReplay makes every replay leave a counter file behind.
func (f *coverageFixture) expectReplay(t *testing.T, times int) {
	gcda := filepath.Join(f.root, "src", "minigrep.gcda")

	f.replayer.EXPECT().Replay(mock.Anything, f.binary, mock.Anything, 100*time.Millisecond).
		RunAndReturn(func(context.Context, m.Path, m.Path, time.Duration) (adapter.ProcessResult, error) {
			require.NoError(t, os.WriteFile(gcda, []byte("counters"), 0o600))
			return adapter.ProcessResult{Status: m.StatusOK}, nil
		}).Times(times)
}

// expectGcov makes gcov write the fixture report.
func (f *coverageFixture) expectGcov(t *testing.T, times int) {
	report, err := os.ReadFile(fixtureDir("minigrep", "minigrep.c.gcov"))
	require.NoError(t, err)

	dir := m.Path(filepath.Join(f.root, "src"))
	gcdas := []m.Path{m.Path(filepath.Join(f.root, "src", "minigrep.gcda"))}

	f.gcov.EXPECT().Run(mock.Anything, dir, gcdas).
		RunAndReturn(func(context.Context, m.Path, []m.Path) (adapter.ProcessResult, error) {
			require.NoError(t, os.WriteFile(filepath.Join(string(dir), "minigrep.c.gcov"), report, 0o600))
			return adapter.ProcessResult{Status: m.StatusOK}, nil
		}).Times(times)
}

func TestCoverageCollector_Measure(t *testing.T) {
	f := newCoverageFixture(t)

	stale := []string{
		filepath.Join(f.root, "stale.gcda"),
		filepath.Join(f.root, "src", "old.c.gcov"),
	}
	for _, path := range stale {
		require.NoError(t, os.WriteFile(path, []byte("-:0:Source:old.c\n"), 0o600))
	}

	f.expectReplay(t, 2)
	f.expectGcov(t, 1)

	covered, err := f.collector.Measure(context.Background(), []m.Path{"/out/test000001.ktest", "/out/test000002.ktest"})
	require.NoError(t, err)

	assert.Equal(t, m.NewBranchSet(
		m.BranchID{File: "minigrep.c", Line: 34},
		m.BranchID{File: "minigrep.c", Line: 50},
	), covered)

	for _, path := range stale {
		assert.NoFileExists(t, path)
	}
}

func TestCoverageCollector_NoCountersMeansNoCoverage(t *testing.T) {
	f := newCoverageFixture(t)

	f.replayer.EXPECT().Replay(mock.Anything, f.binary, m.Path("/out/test000001.ktest"), mock.Anything).
		Return(adapter.ProcessResult{Status: m.StatusTimedOut}, nil)

	covered, err := f.collector.Measure(context.Background(), []m.Path{"/out/test000001.ktest"})
	require.NoError(t, err)
	assert.Empty(t, covered)
}

func TestCoverageCollector_ReplayStartFailureIsNotFatal(t *testing.T) {
	f := newCoverageFixture(t)

	f.replayer.EXPECT().Replay(mock.Anything, f.binary, m.Path("/out/bad.ktest"), mock.Anything).
		Return(adapter.ProcessResult{}, errors.New("klee-replay not found"))

	covered, err := f.collector.Measure(context.Background(), []m.Path{"/out/bad.ktest"})
	require.NoError(t, err)
	assert.Empty(t, covered)
}

func TestCoverageCollector_CanceledContext(t *testing.T) {
	f := newCoverageFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.replayer.EXPECT().Replay(mock.Anything, f.binary, mock.Anything, mock.Anything).
		Return(adapter.ProcessResult{}, context.Canceled)

	_, err := f.collector.Measure(ctx, []m.Path{"/out/test000001.ktest"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestCoverageCollector_GcovFailureKeepsEmptyCoverage(t *testing.T) {
	f := newCoverageFixture(t)
	f.expectReplay(t, 1)

	f.gcov.EXPECT().Run(mock.Anything, mock.Anything, mock.Anything).
		Return(adapter.ProcessResult{}, errors.New("gcov not found"))

	covered, err := f.collector.Measure(context.Background(), []m.Path{"/out/test000001.ktest"})
	require.NoError(t, err)
	assert.Empty(t, covered)
}

func TestCoverageCollector_MeasureEach(t *testing.T) {
	f := newCoverageFixture(t)
	f.expectReplay(t, 2)
	f.expectGcov(t, 2)

	inputs := []m.Path{"/out/test000001.ktest", "/out/test000002.ktest"}

	perInput, err := f.collector.MeasureEach(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, perInput, 2)

	for _, input := range inputs {
		assert.Len(t, perInput[input], 2)
	}
}
