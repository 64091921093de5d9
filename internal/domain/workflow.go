package domain

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/anonymousfse26/orbis/internal/adapter"
	"github.com/anonymousfse26/orbis/internal/config"
	"github.com/anonymousfse26/orbis/internal/controller"
	m "github.com/anonymousfse26/orbis/internal/model"
)

// spellingWarmup is the number of recorded iterations before the spelling
// policy follows the observed coverage.
const spellingWarmup = 4

// ExtractArgs holds the arguments of an extraction.
type ExtractArgs struct {
	Config config.Config
	// Force rebuilds the map even when a persisted one exists.
	Force bool
}

// RunArgs holds the arguments of a testing session.
type RunArgs struct {
	Config config.Config
}

// ViewArgs holds the arguments for displaying a finished session.
type ViewArgs struct {
	OutputDir m.Path
}

// Workflow defines the operations exposed to the command line.
type Workflow interface {
	Extract(ctx context.Context, args ExtractArgs) error
	Run(ctx context.Context, args RunArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	parser    adapter.CFileAdapter
	runner    adapter.ProcessRunner
	branches  adapter.BranchMapStore
	records   adapter.ReportStore
	ui        controller.UI
	logger    *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	parser adapter.CFileAdapter,
	runner adapter.ProcessRunner,
	branches adapter.BranchMapStore,
	records adapter.ReportStore,
	ui controller.UI,
	logger *slog.Logger,
) Workflow {
	if logger == nil {
		logger = slog.Default()
	}

	return &workflow{
		fsAdapter: fsAdapter,
		parser:    parser,
		runner:    runner,
		branches:  branches,
		records:   records,
		ui:        ui,
		logger:    logger,
	}
}

// Extract builds (or loads) the option-branch map and displays it.
func (w *workflow) Extract(ctx context.Context, args ExtractArgs) error {
	if err := args.Config.ValidateExtract(); err != nil {
		return err
	}

	if err := w.ui.Start(controller.WithExtractMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	obm, err := w.branchMap(ctx, args.Config, args.Force)

	return w.ui.DisplayExtraction(obm, err)
}

// Run executes a full testing session and displays its summary.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	cfg := args.Config

	if err := cfg.ValidateRun(); err != nil {
		return err
	}

	obm, err := w.branchMap(ctx, cfg, false)
	if err != nil {
		return err
	}

	if len(obm.Options) == 0 {
		return fmt.Errorf("%w: %s", ErrNoOptions, cfg.Program)
	}

	if err := w.ui.Start(controller.WithRunMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	coordinator := w.newCoordinator(cfg, obm)

	summary, runErr := coordinator.Run(ctx)
	if err := w.ui.DisplaySummary(summary); err != nil && runErr == nil {
		runErr = err
	}

	return runErr
}

// View loads the iteration records of a finished session.
func (w *workflow) View(args ViewArgs) error {
	if err := w.ui.Start(controller.WithViewMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	records, err := w.records.LoadRecords(w.fsAdapter.JoinPath(string(args.OutputDir), recordsDirName))

	return w.ui.DisplayRecords(records, err)
}

// branchMap loads the persisted map of the program, or extracts and saves
// a new one.
func (w *workflow) branchMap(ctx context.Context, cfg config.Config, force bool) (*m.OptionBranchMap, error) {
	path := m.Path(cfg.BranchMapPath())

	if !force && w.branches.Exists(path) {
		w.logger.Info("loading option-branch map", slog.String("path", string(path)))
		return w.branches.Load(path)
	}

	catalog, err := w.catalog(ctx, cfg)
	if err != nil {
		return nil, err
	}

	sources, err := w.fsAdapter.LoadSources(ctx, m.Path(cfg.ResolvedSourceDir()), cfg.SourceFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to load sources: %w", err)
	}

	extractor := NewExtractor(w.parser, w.fsAdapter, ExtractorOptions{
		Depth:       cfg.Extraction.OptionDepth,
		NumDash:     cfg.Extraction.NumDash,
		HelpMode:    cfg.Extraction.HelpMode,
		StopWords:   cfg.Extraction.StopWords,
		IncludeDirs: cfg.IncludeDirs,
	}, w.logger)

	obm, err := extractor.Extract(ctx, cfg.Program, catalog, sources)
	if err != nil {
		return nil, err
	}

	if err := w.branches.Save(path, obm); err != nil {
		return nil, err
	}

	w.logger.Info("option-branch map saved",
		slog.String("path", string(path)),
		slog.Int("options", len(obm.Options)),
		slog.Int("branches", len(obm.AllBranches())))

	return obm, nil
}

// catalog reads the option catalog file, or the program's help output.
func (w *workflow) catalog(ctx context.Context, cfg config.Config) (HelpCatalog, error) {
	if cfg.OptionCatalog != "" {
		content, err := w.fsAdapter.ReadFile(m.Path(cfg.OptionCatalog))
		if err != nil {
			return HelpCatalog{}, fmt.Errorf("failed to read option catalog: %w", err)
		}

		return ParseCatalog(string(content), cfg.Extraction.NumDash), nil
	}

	result, err := w.runner.Run(ctx, adapter.Command{
		Name:    cfg.GcovBinary,
		Args:    []string{cfg.Extraction.HelpFlag},
		Timeout: config.Seconds(cfg.Extraction.HelpTimeout),
	})
	if err != nil {
		return HelpCatalog{}, fmt.Errorf("failed to run %s %s: %w", cfg.GcovBinary, cfg.Extraction.HelpFlag, err)
	}

	text := result.Stdout
	if len(strings.TrimSpace(string(text))) == 0 {
		text = result.Stderr
	}

	return ParseHelp(string(text), cfg.Extraction.NumDash, cfg.Extraction.HelpMode), nil
}

func (w *workflow) newCoordinator(cfg config.Config, obm *m.OptionBranchMap) *Coordinator {
	seed := cfg.Sampling.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))

	binary := m.Path(cfg.GcovBinary)
	replayer := adapter.NewKleeReplayAdapter(w.runner, cfg.Tools.KleeReplay)

	collector := NewCoverageCollector(w.fsAdapter, replayer, adapter.NewGcovAdapter(w.runner, cfg.Tools.Gcov), CoverageOptions{
		Binary:        binary,
		SrcDepth:      cfg.Execution.SrcDepth,
		ReplayTimeout: config.Seconds(cfg.Execution.ReplayTimeout),
	}, w.logger)

	guider := NewGuider(obm, collector, replayer, adapter.NewGenBoutAdapter(w.runner, cfg.Tools.GenBout), w.fsAdapter, GuiderOptions{
		TopK:          cfg.Seeding.TopK,
		Binary:        binary,
		NumDash:       cfg.Extraction.NumDash,
		ReplayTimeout: config.Seconds(cfg.Seeding.ReplayTimeout),
	}, rng, w.logger)

	engine := adapter.NewKleeAdapter(w.runner, w.fsAdapter, cfg.Tools.Klee,
		cfg.Execution.EngineFlags, cfg.Execution.SymTail, cfg.Execution.TimeoutFactor)

	return NewCoordinator(obm, CoordinatorDeps{
		Engine:    engine,
		Collector: collector,
		Sampler: NewSampler(obm, SamplerOptions{
			ExploreRate: cfg.Sampling.ExploreRate,
			BadFloor:    cfg.Sampling.BadFloor,
			Picks:       cfg.Sampling.Picks,
		}, rng),
		Spelling:  NewSpellingPolicy(spellingWarmup, rng),
		Guider:    guider,
		FSAdapter: w.fsAdapter,
		Records:   w.records,
		Runner:    w.runner,
		UI:        w.ui,
		Logger:    w.logger,
	}, SessionOptions{
		Program:           cfg.Program,
		Bitcode:           m.Path(cfg.Bitcode),
		OutputDir:         m.Path(cfg.OutputDir),
		TotalBudget:       time.Duration(cfg.Budget) * time.Second,
		InitBudget:        time.Duration(cfg.Execution.InitBudget) * time.Second,
		InitArgs:          strings.Fields(cfg.Execution.InitArgs),
		NumDash:           cfg.Extraction.NumDash,
		ScoreFile:         cfg.Sampling.ScoreFile,
		TmpDir:            cfg.Execution.TmpDir,
		TmpPatterns:       cfg.Execution.TmpPatterns,
		PrivilegedCleanup: cfg.Execution.PrivilegedCleanup,
		Sudo:              cfg.Tools.Sudo,
	})
}
