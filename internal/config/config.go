// Package config holds the session configuration: defaults, the optional
// YAML file and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrMissingArgument is returned by validation when a required setting is
// absent.
var ErrMissingArgument = errors.New("missing required argument")

// HelpMode selects how option words are recognized in help text.
type HelpMode string

const (
	// HelpModeFirst takes the leading dashed word of each line as the option.
	HelpModeFirst HelpMode = "first"
	// HelpModeAll takes every word with the dash prefix as an option.
	HelpModeAll HelpMode = "all"
)

// Config is the complete configuration of an extraction or testing session.
type Config struct {
	// Program is the name (and version) of the program under test.
	Program string `yaml:"program"`
	// Budget is the total session budget in seconds.
	Budget int `yaml:"budget"`
	// Bitcode is the LLVM bitcode handed to the engine.
	Bitcode string `yaml:"bitcode"`
	// GcovBinary is the executable built with coverage instrumentation.
	GcovBinary string `yaml:"gcov_binary"`
	// SourceDir is the C source root. Defaults to the GcovBinary directory.
	SourceDir string `yaml:"source_dir"`
	// SourceFilter, when set, keeps only source files whose name contains it.
	SourceFilter string `yaml:"source_filter"`
	// IncludeDirs are searched for system headers when collecting standard
	// library function names.
	IncludeDirs []string `yaml:"include_dirs"`
	// OptionCatalog replaces help-text parsing with a file of option names.
	OptionCatalog string `yaml:"option_catalog"`
	// DataDir holds persisted option-branch maps.
	DataDir string `yaml:"data_dir"`
	// OutputDir receives iteration directories and session logs.
	OutputDir string `yaml:"output_dir"`

	Extraction ExtractionConfig `yaml:"extraction"`
	Sampling   SamplingConfig   `yaml:"sampling"`
	Seeding    SeedingConfig    `yaml:"seeding"`
	Execution  ExecutionConfig  `yaml:"execution"`
	Tools      ToolsConfig      `yaml:"tools"`
}

// ExtractionConfig tunes the option-branch extractor.
type ExtractionConfig struct {
	OptionDepth int      `yaml:"option_depth"`
	NumDash     int      `yaml:"num_dash"`
	HelpMode    HelpMode `yaml:"help_mode"`
	// HelpFlag is passed to the program to obtain its option listing.
	HelpFlag    string   `yaml:"help_flag"`
	HelpTimeout float64  `yaml:"help_timeout"`
	StopWords   []string `yaml:"stop_words"`
}

// SamplingConfig tunes the option sampler.
type SamplingConfig struct {
	ExploreRate float64 `yaml:"explore_rate"`
	// BadFloor is the absolute failure count an option must reach before it
	// can be excluded.
	BadFloor float64 `yaml:"bad_floor"`
	// Picks is the number of combinations merged per selection.
	Picks int `yaml:"picks"`
	// ScoreFile writes the current scores for engines that read them.
	ScoreFile bool `yaml:"score_file"`
	// Seed makes sampling reproducible when non-zero.
	Seed int64 `yaml:"seed"`
}

// SeedingConfig tunes the seed guider.
type SeedingConfig struct {
	TopK int `yaml:"top_k"`
	// ReplayTimeout bounds argument recovery replays, in seconds.
	ReplayTimeout float64 `yaml:"replay_timeout"`
}

// ExecutionConfig tunes the coordinator and coverage collector.
type ExecutionConfig struct {
	// InitBudget is the first iteration budget in seconds.
	InitBudget int `yaml:"init_budget"`
	// InitArgs is the symbolic argument shape used with no selected options.
	InitArgs string `yaml:"init_args"`
	// TimeoutFactor scales the iteration budget into the hard engine timeout.
	TimeoutFactor float64 `yaml:"timeout_factor"`
	// ReplayTimeout bounds every coverage replay, in seconds.
	ReplayTimeout float64 `yaml:"replay_timeout"`
	// SrcDepth is how many directories above the gcov binary the coverage
	// artifacts live.
	SrcDepth    int      `yaml:"src_depth"`
	EngineFlags []string `yaml:"engine_flags"`
	SymTail     []string `yaml:"sym_tail"`
	// TmpDir and TmpPatterns locate leftovers of crashed replays.
	TmpDir      string   `yaml:"tmp_dir"`
	TmpPatterns []string `yaml:"tmp_patterns"`
	// PrivilegedCleanup retries failed removals through non-interactive sudo.
	PrivilegedCleanup bool `yaml:"privileged_cleanup"`
}

// ToolsConfig locates the external programs.
type ToolsConfig struct {
	Klee       string `yaml:"klee"`
	KleeReplay string `yaml:"klee_replay"`
	GenBout    string `yaml:"gen_bout"`
	Gcov       string `yaml:"gcov"`
	Sudo       string `yaml:"sudo"`
}

// Default returns the configuration used when nothing else is given.
func Default() Config {
	return Config{
		DataDir:     "data",
		OutputDir:   "ORBIS_TEST",
		IncludeDirs: []string{"/usr/include", "/usr/include/x86_64-linux-gnu"},
		Extraction: ExtractionConfig{
			OptionDepth: 2,
			NumDash:     2,
			HelpMode:    HelpModeFirst,
			HelpFlag:    "--help",
			HelpTimeout: 10,
			StopWords:   []string{"GLobal", "BUF_LEN"},
		},
		Sampling: SamplingConfig{
			ExploreRate: 0.2,
			BadFloor:    10,
			Picks:       2,
		},
		Seeding: SeedingConfig{
			TopK:          10,
			ReplayTimeout: 1,
		},
		Execution: ExecutionConfig{
			InitBudget:    120,
			InitArgs:      "-sym-args 0 1 10 -sym-args 0 2 2",
			TimeoutFactor: 1.25,
			ReplayTimeout: 0.1,
			SrcDepth:      1,
			EngineFlags:   DefaultEngineFlags(),
			SymTail:       []string{"-sym-files", "1", "8", "-sym-stdin", "8", "-sym-stdout"},
			TmpDir:        os.TempDir(),
			TmpPatterns:   []string{"klee-replay-*", "klee-symfiles-*"},
		},
		Tools: ToolsConfig{
			Klee:       "klee",
			KleeReplay: "klee-replay",
			GenBout:    "gen-bout",
			Gcov:       "gcov",
			Sudo:       "sudo",
		},
	}
}

// DefaultEngineFlags are the KLEE options applied to every run.
func DefaultEngineFlags() []string {
	return []string{
		"-simplify-sym-indices",
		"-output-module",
		"-max-memory=1000",
		"-disable-inlining",
		"-optimize",
		"-use-forked-solver",
		"-use-cex-cache",
		"-libc=uclibc",
		"-posix-runtime",
		"-only-output-states-covering-new",
		"-external-calls=all",
		"-max-sym-array-size=4096",
		"-max-solver-time=30s",
		"-watchdog",
		"-max-memory-inhibit=false",
		"-max-static-fork-pct=1",
		"-max-static-solve-pct=1",
		"-max-static-cpfork-pct=1",
		"-switch-type=internal",
		"-search=random-path",
		"-search=nurs:covnew",
		"-use-batching-search",
		"-batch-instructions=10000",
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read the config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes cfg as YAML, creating the parent directory.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create the config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}

// ValidateExtract checks the settings needed to build an option-branch map.
func (c Config) ValidateExtract() error {
	if c.Program == "" {
		return fmt.Errorf("%w: program (-p)", ErrMissingArgument)
	}

	if c.GcovBinary == "" && c.OptionCatalog == "" {
		return fmt.Errorf("%w: gcov_obj", ErrMissingArgument)
	}

	if c.GcovBinary == "" && c.SourceDir == "" {
		return fmt.Errorf("%w: source directory", ErrMissingArgument)
	}

	if c.Extraction.OptionDepth < 1 {
		return fmt.Errorf("option depth must be at least 1, got %d", c.Extraction.OptionDepth)
	}

	if c.Extraction.NumDash < 1 || c.Extraction.NumDash > 2 {
		return fmt.Errorf("num dash must be 1 or 2, got %d", c.Extraction.NumDash)
	}

	if c.Extraction.HelpMode != HelpModeFirst && c.Extraction.HelpMode != HelpModeAll {
		return fmt.Errorf("unknown help mode %q", c.Extraction.HelpMode)
	}

	return nil
}

// ValidateRun checks the settings needed for a testing session.
func (c Config) ValidateRun() error {
	if c.Budget <= 0 {
		return fmt.Errorf("%w: budget (-t)", ErrMissingArgument)
	}

	if c.Bitcode == "" {
		return fmt.Errorf("%w: llvm_bc", ErrMissingArgument)
	}

	if c.GcovBinary == "" {
		return fmt.Errorf("%w: gcov_obj", ErrMissingArgument)
	}

	if err := c.ValidateExtract(); err != nil {
		return err
	}

	if c.Sampling.ExploreRate < 0 || c.Sampling.ExploreRate > 1 {
		return fmt.Errorf("explore rate must be within [0,1], got %v", c.Sampling.ExploreRate)
	}

	if c.Seeding.TopK < 1 {
		return fmt.Errorf("n-testcases must be positive, got %d", c.Seeding.TopK)
	}

	if c.Execution.InitBudget < 1 {
		return fmt.Errorf("init budget must be positive, got %d", c.Execution.InitBudget)
	}

	return nil
}

// ResolvedSourceDir returns SourceDir, or the directory of the gcov binary.
func (c Config) ResolvedSourceDir() string {
	if c.SourceDir != "" {
		return c.SourceDir
	}

	return filepath.Dir(c.GcovBinary)
}

// BranchMapPath is where the option-branch map of the program is persisted.
func (c Config) BranchMapPath() string {
	return filepath.Join(c.DataDir, "opt_branches", c.Program+".json")
}

// Seconds converts a fractional number of seconds to a duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
