package domain

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/anonymousfse26/orbis/internal/adapter"
	adaptermocks "github.com/anonymousfse26/orbis/internal/adapter/mocks"
	controllermocks "github.com/anonymousfse26/orbis/internal/controller/mocks"
	m "github.com/anonymousfse26/orbis/internal/model"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

// fakeEngine spends the whole budget and produces one new branch per run.
type fakeEngine struct {
	t         *testing.T
	clock     *fakeClock
	collector *fakeCollector
	requests  []adapter.EngineRequest
}

func (e *fakeEngine) Run(_ context.Context, req adapter.EngineRequest) (adapter.EngineRun, error) {
	e.requests = append(e.requests, req)
	e.clock.now = e.clock.now.Add(req.Budget)

	n := len(e.requests)
	require.NoError(e.t, os.MkdirAll(string(req.OutputDir), 0o750))

	input := m.Path(filepath.Join(string(req.OutputDir), "test000001.ktest"))
	require.NoError(e.t, os.WriteFile(string(input), []byte("ktest"), 0o600))

	if n == 2 {
		require.NoError(e.t, os.WriteFile(filepath.Join(string(req.OutputDir), "test000001.ptr.err"), []byte("Error: memory error"), 0o600))
	}

	e.collector.perInput[input] = m.NewBranchSet(br(n))

	return adapter.EngineRun{
		Result:     adapter.ProcessResult{Status: m.StatusOK, Elapsed: req.Budget},
		TestInputs: []m.Path{input},
	}, nil
}

type fakeGuider struct {
	saved  []m.CombinationKey
	guided []m.CombinationKey
}

func (g *fakeGuider) Save(_ context.Context, key m.CombinationKey, _ []m.Path) error {
	g.saved = append(g.saved, key)
	return nil
}

func (g *fakeGuider) Guide(_ context.Context, key m.CombinationKey, _ []string, _ m.Path) ([]m.Path, error) {
	g.guided = append(g.guided, key)
	return []m.Path{"seed.ktest"}, nil
}

func (g *fakeGuider) Seeds(m.CombinationKey) m.SeedList {
	return nil
}

type coordinatorFixture struct {
	out     string
	tmp     string
	engine  *fakeEngine
	guider  *fakeGuider
	records *adaptermocks.MockReportStore
	ui      *controllermocks.MockUI
	coord   *Coordinator
}

func newCoordinatorFixture(t *testing.T) *coordinatorFixture {
	t.Helper()

	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	collector := &fakeCollector{perInput: map[m.Path]m.BranchSet{}}
	obm := testBranchMap(map[string][]int{"a": {1, 2}, "b": {3}, "c": {4, 5}})
	rng := newTestRNG()

	f := &coordinatorFixture{
		out:     filepath.Join(t.TempDir(), "ORBIS_TEST"),
		tmp:     t.TempDir(),
		engine:  &fakeEngine{t: t, clock: clock, collector: collector},
		guider:  &fakeGuider{},
		records: adaptermocks.NewMockReportStore(t),
		ui:      controllermocks.NewMockUI(t),
	}

	f.ui.EXPECT().DisplaySessionInfo(mock.Anything).Maybe()
	f.ui.EXPECT().DisplayIterationStart(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	f.ui.EXPECT().DisplayIterationResult(mock.Anything).Maybe()

	f.coord = NewCoordinator(obm, CoordinatorDeps{
		Engine:    f.engine,
		Collector: collector,
		Sampler:   NewSampler(obm, SamplerOptions{ExploreRate: 0.2, BadFloor: 10}, rng),
		Spelling:  NewSpellingPolicy(4, rng),
		Guider:    f.guider,
		FSAdapter: adapter.NewLocalSourceFSAdapter(adapter.NewTreeSitterCAdapter(), nil),
		Records:   f.records,
		UI:        f.ui,
		Now:       clock.Now,
	}, SessionOptions{
		Program:     "prog",
		Bitcode:     "/obj-llvm/prog.bc",
		OutputDir:   m.Path(f.out),
		TotalBudget: 600 * time.Second,
		InitBudget:  120 * time.Second,
		InitArgs:    []string{"-sym-args", "0", "1", "10"},
		NumDash:     2,
		ScoreFile:   true,
		TmpDir:      f.tmp,
		TmpPatterns: []string{"klee-replay-*"},
	})

	return f
}

func TestCoordinator_Run(t *testing.T) {
	f := newCoordinatorFixture(t)

	require.NoError(t, os.MkdirAll(f.out, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(f.out, "stale.txt"), []byte("old"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(f.tmp, "klee-replay-42"), 0o750))

	var persisted []m.IterationRecord

	f.records.EXPECT().SaveRecords(m.Path(filepath.Join(f.out, "records")), mock.Anything).
		Run(func(_ m.Path, records []m.IterationRecord) {
			persisted = append(persisted, records...)
		}).Return(nil)

	summary, err := f.coord.Run(context.Background())
	require.NoError(t, err)

	budgets := make([]time.Duration, 0, len(f.engine.requests))
	for _, req := range f.engine.requests {
		budgets = append(budgets, req.Budget)
	}

	assert.Equal(t, []time.Duration{120 * time.Second, 120 * time.Second, 120 * time.Second, 240 * time.Second}, budgets)

	first := f.engine.requests[0]
	assert.Empty(t, first.Arguments)
	assert.Equal(t, []string{"-sym-args", "0", "1", "10"}, first.InitArgs)
	assert.Empty(t, first.Seeds)
	assert.Equal(t, m.Path(filepath.Join(f.out, "iteration-1")), first.OutputDir)
	assert.Equal(t, m.Path(filepath.Join(f.out, "prog.score")), first.ScoreFile)

	for _, req := range f.engine.requests[1:] {
		assert.NotEmpty(t, req.Arguments)
		assert.Equal(t, []m.Path{"seed.ktest"}, req.Seeds)
	}

	assert.Equal(t, m.CombinationKey(""), f.guider.saved[0])
	assert.Len(t, f.guider.saved, 4)
	assert.Len(t, f.guider.guided, 4)

	require.Len(t, persisted, 4)

	for i, record := range persisted {
		assert.Equal(t, i+1, record.Iteration)
		assert.Equal(t, i+1, record.TotalCoverage, "coverage never shrinks")
		assert.Equal(t, 1, record.NewlyCovered)
	}

	assert.Equal(t, 4, summary.Iterations)
	assert.Equal(t, "prog", summary.Program)
	assert.Len(t, summary.Coverage, 4)
	assert.Equal(t, 600*time.Second, summary.Elapsed)
	assert.Len(t, summary.Options, 3)

	require.Len(t, summary.Bugs, 1)
	assert.Equal(t, 2, summary.Bugs[0].Iteration)
	assert.Equal(t, "test000001", summary.Bugs[0].Test)
	assert.Equal(t, "ptr", summary.Bugs[0].Kind)

	csvLog, err := os.ReadFile(filepath.Join(f.out, "coverage.csv"))
	require.NoError(t, err)

	rows := strings.Split(strings.TrimSpace(string(csvLog)), "\n")
	require.Len(t, rows, 4)
	assert.Equal(t, "120,1,", rows[0])
	assert.True(t, strings.HasPrefix(rows[3], "600,4,"), rows[3])

	scores, err := os.ReadFile(filepath.Join(f.out, "prog.score"))
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(scores)), "\n"), 3)

	assert.NoFileExists(t, filepath.Join(f.out, "stale.txt"))
	assert.NoDirExists(t, filepath.Join(f.tmp, "klee-replay-42"))

	state := f.coord.State()
	assert.Equal(t, 4, state.Iteration)
	assert.Len(t, state.Records, 4)
}

func TestCoordinator_RecordStoreFailureDoesNotStopTheLoop(t *testing.T) {
	f := newCoordinatorFixture(t)

	f.records.EXPECT().SaveRecords(mock.Anything, mock.Anything).Return(fmt.Errorf("disk full"))

	summary, err := f.coord.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Iterations)
}

func TestCoordinator_CanceledContext(t *testing.T) {
	f := newCoordinatorFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := f.coord.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, summary.Iterations)
	assert.Empty(t, f.engine.requests)
	assert.DirExists(t, f.out)
}

// listFailEngine runs like fakeEngine but cannot list what it produced.
type listFailEngine struct {
	inner *fakeEngine
}

func (e *listFailEngine) Run(ctx context.Context, req adapter.EngineRequest) (adapter.EngineRun, error) {
	run, err := e.inner.Run(ctx, req)
	require.NoError(e.inner.t, err)

	return adapter.EngineRun{Result: run.Result}, fmt.Errorf("%w: permission denied", adapter.ErrEngineOutputs)
}

func TestCoordinator_EngineOutputsUnlisted(t *testing.T) {
	f := newCoordinatorFixture(t)

	var logs bytes.Buffer

	f.coord.deps.Logger = slog.New(slog.NewTextHandler(&logs, nil))
	f.coord.deps.Engine = &listFailEngine{inner: f.engine}

	f.records.EXPECT().SaveRecords(mock.Anything, mock.Anything).Return(nil)

	summary, err := f.coord.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Iterations)

	assert.Contains(t, logs.String(), "failed to list engine outputs")
	assert.NotContains(t, logs.String(), "engine failed to start")
}

func TestCoordinator_PersistAppendsCoverageRow(t *testing.T) {
	f := newCoordinatorFixture(t)
	require.NoError(t, os.MkdirAll(f.out, 0o750))

	var logs bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&logs, nil))

	f.records.EXPECT().SaveRecords(mock.Anything, mock.Anything).Return(nil)

	f.coord.persist(logger, m.IterationRecord{
		Iteration:     2,
		Combination:   m.NewCombinationKey("b", "a"),
		Elapsed:       241 * time.Second,
		TotalCoverage: 13,
	})

	csvLog, err := os.ReadFile(filepath.Join(f.out, "coverage.csv"))
	require.NoError(t, err)
	assert.Equal(t, "241,13,a b\n", string(csvLog))
	assert.Empty(t, logs.String())
}
