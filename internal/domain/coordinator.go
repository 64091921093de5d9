package domain

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/anonymousfse26/orbis/internal/adapter"
	"github.com/anonymousfse26/orbis/internal/controller"
	m "github.com/anonymousfse26/orbis/internal/model"
)

const (
	coverageLogName = "coverage.csv"
	recordsDirName  = "records"
	cleanupTimeout  = 10 * time.Second
)

// SessionOptions configure one testing session.
type SessionOptions struct {
	Program     string
	Bitcode     m.Path
	OutputDir   m.Path
	TotalBudget time.Duration
	InitBudget  time.Duration
	InitArgs    []string
	NumDash     int
	// ScoreFile hands the current option scores to the engine.
	ScoreFile bool

	TmpDir            string
	TmpPatterns       []string
	PrivilegedCleanup bool
	Sudo              string
}

// SessionState is everything the coordinator carries between iterations.
type SessionState struct {
	Iteration int
	Start     time.Time
	Coverage  m.BranchSet
	Key       m.CombinationKey
	Spelling  Spelling
	Arguments []string
	Seeds     []m.Path
	Records   []m.IterationRecord
	Bugs      []m.Bug
}

// CoordinatorDeps are the collaborators of the coordinator.
type CoordinatorDeps struct {
	Engine    adapter.SymbolicEngine
	Collector CoverageCollector
	Sampler   Sampler
	Spelling  *SpellingPolicy
	Guider    Guider
	FSAdapter adapter.SourceFSAdapter
	Records   adapter.ReportStore
	Runner    adapter.ProcessRunner
	UI        controller.UI
	Logger    *slog.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Coordinator runs the iteration loop until the total budget is spent.
type Coordinator struct {
	deps  CoordinatorDeps
	obm   *m.OptionBranchMap
	opts  SessionOptions
	state SessionState
}

// NewCoordinator constructs a Coordinator over the options of obm.
func NewCoordinator(obm *m.OptionBranchMap, deps CoordinatorDeps, opts SessionOptions) *Coordinator {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	if deps.Now == nil {
		deps.Now = time.Now
	}

	return &Coordinator{deps: deps, obm: obm, opts: opts}
}

// State returns the session state.
func (c *Coordinator) State() SessionState {
	return c.state
}

// Run executes the session. The summary is valid even when an error is
// returned after the loop started.
func (c *Coordinator) Run(ctx context.Context) (m.Summary, error) {
	if err := c.prepareOutput(); err != nil {
		return m.Summary{Program: c.opts.Program}, err
	}

	c.state = SessionState{
		Start:     c.deps.Now(),
		Coverage:  make(m.BranchSet),
	}

	c.deps.UI.DisplaySessionInfo(m.SessionInfo{
		Program:     c.opts.Program,
		Options:     len(c.obm.Options),
		Branches:    len(c.obm.AllBranches()),
		TotalBudget: c.opts.TotalBudget,
		InitBudget:  c.opts.InitBudget,
		OutputDir:   c.opts.OutputDir,
	})

	planner := NewBudgetPlanner(c.opts.InitBudget, len(c.obm.Options))

	var runErr error

	for i := 1; ; i++ {
		elapsed := c.deps.Now().Sub(c.state.Start)
		if elapsed >= c.opts.TotalBudget {
			break
		}

		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}

		budget := planner.Next(i, c.opts.TotalBudget-elapsed)
		if budget < time.Second {
			break
		}

		c.state.Iteration = i

		if err := c.iterate(ctx, budget); err != nil {
			runErr = err
			break
		}
	}

	return c.summary(), runErr
}

func (c *Coordinator) iterate(ctx context.Context, budget time.Duration) error {
	st := &c.state
	logger := c.deps.Logger.With(slog.Int("iteration", st.Iteration))
	iterDir := c.deps.FSAdapter.JoinPath(string(c.opts.OutputDir), fmt.Sprintf("iteration-%d", st.Iteration))

	c.deps.UI.DisplayIterationStart(st.Iteration, st.Key, st.Arguments, budget)
	logger.Info("iteration started",
		slog.String("combination", string(st.Key)),
		slog.String("arguments", strings.Join(st.Arguments, " ")),
		slog.Duration("budget", budget))

	req := adapter.EngineRequest{
		Bitcode:   c.opts.Bitcode,
		OutputDir: iterDir,
		Budget:    budget,
		Arguments: st.Arguments,
		InitArgs:  c.opts.InitArgs,
		Seeds:     st.Seeds,
	}
	if c.opts.ScoreFile {
		req.ScoreFile = c.scoreFilePath()
	}

	run, err := c.deps.Engine.Run(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if errors.Is(err, adapter.ErrEngineOutputs) {
			logger.Warn("failed to list engine outputs", slog.String("error", err.Error()))
		} else {
			logger.Warn("engine failed to start", slog.String("error", err.Error()))
		}
	}

	if run.Result.Status != m.StatusOK && err == nil {
		logger.Warn("engine did not finish cleanly", slog.String("status", string(run.Result.Status)), slog.Int("exit", run.Result.ExitCode))
	}

	covered, err := c.deps.Collector.Measure(ctx, run.TestInputs)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		logger.Warn("coverage measurement failed", slog.String("error", err.Error()))

		covered = make(m.BranchSet)
	}

	newly := st.Coverage.Merge(covered)
	elapsed := c.deps.Now().Sub(st.Start)

	c.deps.Sampler.Update(covered, st.Key, run.Result.Elapsed, budget)

	if !st.Key.IsEmpty() {
		c.deps.Spelling.Record(st.Spelling, len(covered))
	}

	if err := c.deps.Guider.Save(ctx, st.Key, run.TestInputs); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		logger.Warn("failed to rank test inputs", slog.String("error", err.Error()))
	}

	bugs := c.collectBugs(iterDir)
	st.Bugs = append(st.Bugs, bugs...)

	record := m.IterationRecord{
		Iteration:     st.Iteration,
		Combination:   st.Key,
		Arguments:     st.Arguments,
		Budget:        budget,
		Runtime:       run.Result.Elapsed,
		Elapsed:       elapsed,
		EngineStatus:  run.Result.Status,
		TestInputs:    len(run.TestInputs),
		Covered:       len(covered),
		NewlyCovered:  newly,
		TotalCoverage: len(st.Coverage),
		Seeds:         st.Seeds,
		Bugs:          bugs,
	}
	st.Records = append(st.Records, record)

	c.persist(logger, record)
	c.deps.UI.DisplayIterationResult(record)

	logger.Info("iteration finished",
		slog.Int("covered", record.Covered),
		slog.Int("new", record.NewlyCovered),
		slog.Int("total", record.TotalCoverage),
		slog.Int("bugs", len(bugs)))

	c.cleanupTmp(ctx, logger)

	return c.prepareNext(ctx, logger)
}

// prepareNext selects the combination, spelling and seeds of the next
// iteration.
func (c *Coordinator) prepareNext(ctx context.Context, logger *slog.Logger) error {
	st := &c.state

	st.Key = c.deps.Sampler.Select()
	st.Spelling = c.deps.Spelling.Choose()
	st.Arguments = RenderArguments(c.obm, st.Key, st.Spelling, c.opts.NumDash)

	if c.opts.ScoreFile {
		c.writeScores(logger)
	}

	seeds, err := c.deps.Guider.Guide(ctx, st.Key, st.Arguments, c.opts.OutputDir)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		logger.Warn("failed to choose seeds", slog.String("error", err.Error()))

		seeds = nil
	}

	st.Seeds = seeds

	return nil
}

// prepareOutput replaces an existing output directory.
func (c *Coordinator) prepareOutput() error {
	out := c.opts.OutputDir

	if _, err := c.deps.FSAdapter.FileInfo(out); err == nil {
		c.deps.Logger.Warn("output directory exists and will be replaced", slog.String("path", string(out)))

		if err := c.deps.FSAdapter.RemoveAll(out); err != nil {
			return fmt.Errorf("failed to remove output directory %s: %w", out, err)
		}
	}

	if err := c.deps.FSAdapter.MkdirAll(out); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", out, err)
	}

	return nil
}

func (c *Coordinator) persist(logger *slog.Logger, record m.IterationRecord) {
	recordsPath := c.deps.FSAdapter.JoinPath(string(c.opts.OutputDir), recordsDirName)
	if err := c.deps.Records.SaveRecords(recordsPath, []m.IterationRecord{record}); err != nil {
		logger.Warn("failed to persist iteration record", slog.String("error", err.Error()))
	}

	var buf bytes.Buffer

	w := csv.NewWriter(&buf)
	if err := w.Write([]string{
		strconv.Itoa(int(record.Elapsed / time.Second)),
		strconv.Itoa(record.TotalCoverage),
		string(record.Combination),
	}); err != nil {
		logger.Warn("failed to format coverage log row", slog.String("error", err.Error()))
		return
	}

	w.Flush()

	if err := w.Error(); err != nil {
		logger.Warn("failed to format coverage log row", slog.String("error", err.Error()))
		return
	}

	logPath := c.deps.FSAdapter.JoinPath(string(c.opts.OutputDir), coverageLogName)
	if err := c.deps.FSAdapter.AppendFile(logPath, buf.Bytes()); err != nil {
		logger.Warn("failed to append coverage log", slog.String("error", err.Error()))
	}
}

// collectBugs turns the engine's test*.*.err reports into bugs.
func (c *Coordinator) collectBugs(iterDir m.Path) []m.Bug {
	reports, err := c.deps.FSAdapter.Glob(filepath.Join(string(iterDir), "test*.*.err"))
	if err != nil {
		return nil
	}

	bugs := make([]m.Bug, 0, len(reports))

	for _, report := range reports {
		parts := strings.Split(filepath.Base(string(report)), ".")
		if len(parts) < 3 {
			continue
		}

		bugs = append(bugs, m.Bug{
			Iteration: c.state.Iteration,
			Test:      parts[0],
			Kind:      strings.Join(parts[1:len(parts)-1], "."),
			Path:      report,
		})
	}

	return bugs
}

// cleanupTmp removes what crashed replays leave in the temporary directory.
func (c *Coordinator) cleanupTmp(ctx context.Context, logger *slog.Logger) {
	if c.opts.TmpDir == "" {
		return
	}

	for _, pattern := range c.opts.TmpPatterns {
		matches, err := c.deps.FSAdapter.Glob(filepath.Join(c.opts.TmpDir, pattern))
		if err != nil {
			continue
		}

		for _, path := range matches {
			err := c.deps.FSAdapter.RemoveAll(path)
			if err == nil {
				continue
			}

			if !c.opts.PrivilegedCleanup || c.deps.Runner == nil {
				logger.Debug("failed to remove temporary file", slog.String("path", string(path)), slog.String("error", err.Error()))
				continue
			}

			res, err := c.deps.Runner.Run(ctx, adapter.Command{
				Name:    c.opts.Sudo,
				Args:    []string{"-n", "rm", "-rf", string(path)},
				Timeout: cleanupTimeout,
			})
			if err != nil || res.Status != m.StatusOK {
				logger.Warn("privileged cleanup failed", slog.String("path", string(path)))
			}
		}
	}
}

func (c *Coordinator) scoreFilePath() m.Path {
	return c.deps.FSAdapter.JoinPath(string(c.opts.OutputDir), c.opts.Program+".score")
}

// writeScores stores one "option score" line per option.
func (c *Coordinator) writeScores(logger *slog.Logger) {
	scores := c.deps.Sampler.Scores()
	names := c.obm.Names()

	var b strings.Builder

	for _, name := range names {
		fmt.Fprintf(&b, "%s %s\n", name, strconv.FormatFloat(scores[m.NewCombinationKey(name)], 'f', -1, 64))
	}

	if err := c.deps.FSAdapter.WriteFile(c.scoreFilePath(), []byte(b.String()), 0o600); err != nil {
		logger.Warn("failed to write score file", slog.String("error", err.Error()))
	}
}

func (c *Coordinator) summary() m.Summary {
	bugs := append([]m.Bug(nil), c.state.Bugs...)
	sort.SliceStable(bugs, func(i, j int) bool {
		return bugs[i].Iteration < bugs[j].Iteration
	})

	var elapsed time.Duration
	if !c.state.Start.IsZero() {
		elapsed = c.deps.Now().Sub(c.state.Start)
	}

	return m.Summary{
		Program:    c.opts.Program,
		Iterations: len(c.state.Records),
		Elapsed:    elapsed,
		Coverage:   c.state.Coverage.Clone(),
		Bugs:       bugs,
		Options:    c.deps.Sampler.Stats(),
	}
}
