package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/anonymousfse26/orbis/internal/config"
)

// sessionFlags holds the per-command values of the configuration flags.
// Only flags the user actually set override the configuration file.
type sessionFlags struct {
	program     string
	sourceDir   string
	filter      string
	catalog     string
	dataDir     string
	optionDepth int
	numDash     int
	helpMode    string
	usage       bool

	budget      int
	outputDir   string
	initBudget  int
	nTestcases  int
	exploreRate float64
	srcDepth    int
	initArgs    string
	seed        int64
	scoreFile   bool
	klee        string
	kleeReplay  string
	genBout     string
	gcov        string
}

func (f *sessionFlags) addExtraction(cmd *cobra.Command) {
	def := config.Default()
	fs := cmd.Flags()

	fs.StringVarP(&f.program, "program", "p", "", "name of the program under test")
	fs.StringVar(&f.sourceDir, "source-dir", "", "C source root (defaults to the gcov binary directory)")
	fs.StringVar(&f.filter, "source-filter", "", "only parse source files whose name contains this")
	fs.StringVar(&f.catalog, "catalog", "", "option catalog file used instead of the help text")
	fs.StringVar(&f.dataDir, "data-dir", def.DataDir, "directory of persisted option-branch maps")
	fs.IntVar(&f.optionDepth, "option-depth", def.Extraction.OptionDepth, "how deep option handling code is followed")
	fs.IntVarP(&f.numDash, "num-dash", "o", def.Extraction.NumDash, "dashes before long options (1 or 2)")
	fs.StringVar(&f.helpMode, "help-mode", string(def.Extraction.HelpMode), "help text parsing: first or all")
	fs.BoolVar(&f.usage, "usage", false, "read options from --usage instead of --help")
}

func (f *sessionFlags) addSession(cmd *cobra.Command) {
	def := config.Default()
	fs := cmd.Flags()

	fs.IntVarP(&f.budget, "budget", "t", 0, "total testing budget in seconds")
	fs.StringVarP(&f.outputDir, "output-dir", "d", def.OutputDir, "output directory (removed if it exists)")
	fs.IntVar(&f.initBudget, "init-budget", def.Execution.InitBudget, "first iteration budget in seconds")
	fs.IntVar(&f.nTestcases, "n-testcases", def.Seeding.TopK, "seed inputs kept per option")
	fs.Float64Var(&f.exploreRate, "explore-rate", def.Sampling.ExploreRate, "share of combinations sampled at random")
	fs.IntVar(&f.srcDepth, "src-depth", def.Execution.SrcDepth, "directory levels between coverage artifacts and the gcov binary")
	fs.StringVar(&f.initArgs, "init-args", def.Execution.InitArgs, "symbolic arguments used without selected options")
	fs.Int64Var(&f.seed, "seed", 0, "random seed (0 picks one from the clock)")
	fs.BoolVar(&f.scoreFile, "score-file", false, "write option scores for the engine")
	fs.StringVar(&f.klee, "klee", def.Tools.Klee, "path of the klee executable")
	fs.StringVar(&f.kleeReplay, "klee-replay", def.Tools.KleeReplay, "path of the klee-replay executable")
	fs.StringVar(&f.genBout, "gen-bout", def.Tools.GenBout, "path of the gen-bout executable")
	fs.StringVar(&f.gcov, "gcov", def.Tools.Gcov, "path of the gcov executable")
}

// config loads the configuration file and applies the explicitly set flags.
func (f *sessionFlags) config(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return config.Config{}, err
	}

	set := cmd.Flags().Changed

	if set("program") {
		cfg.Program = f.program
	}

	if set("source-dir") {
		cfg.SourceDir = f.sourceDir
	}

	if set("source-filter") {
		cfg.SourceFilter = f.filter
	}

	if set("catalog") {
		cfg.OptionCatalog = f.catalog
	}

	if set("data-dir") {
		cfg.DataDir = f.dataDir
	}

	if set("option-depth") {
		cfg.Extraction.OptionDepth = f.optionDepth
	}

	if set("num-dash") {
		cfg.Extraction.NumDash = f.numDash
	}

	if set("help-mode") {
		cfg.Extraction.HelpMode = config.HelpMode(strings.ToLower(f.helpMode))
	}

	if set("usage") && f.usage {
		cfg.Extraction.HelpFlag = "--usage"
	}

	if set("budget") {
		cfg.Budget = f.budget
	}

	if set("output-dir") {
		cfg.OutputDir = f.outputDir
	}

	if set("init-budget") {
		cfg.Execution.InitBudget = f.initBudget
	}

	if set("n-testcases") {
		cfg.Seeding.TopK = f.nTestcases
	}

	if set("explore-rate") {
		cfg.Sampling.ExploreRate = f.exploreRate
	}

	if set("src-depth") {
		cfg.Execution.SrcDepth = f.srcDepth
	}

	if set("init-args") {
		cfg.Execution.InitArgs = f.initArgs
	}

	if set("seed") {
		cfg.Sampling.Seed = f.seed
	}

	if set("score-file") {
		cfg.Sampling.ScoreFile = f.scoreFile
	}

	f.applyTools(set, &cfg)

	return cfg, nil
}

func (f *sessionFlags) applyTools(set func(string) bool, cfg *config.Config) {
	if set("klee") {
		cfg.Tools.Klee = f.klee
	}

	if set("klee-replay") {
		cfg.Tools.KleeReplay = f.kleeReplay
	}

	if set("gen-bout") {
		cfg.Tools.GenBout = f.genBout
	}

	if set("gcov") {
		cfg.Tools.Gcov = f.gcov
	}
}
