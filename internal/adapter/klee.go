package adapter

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	m "github.com/anonymousfse26/orbis/internal/model"
)

// ErrEngineOutputs reports that the engine ran but its test inputs could not
// be listed.
var ErrEngineOutputs = errors.New("failed to list engine outputs")

// EngineRequest describes one symbolic-execution run.
type EngineRequest struct {
	Bitcode   m.Path
	OutputDir m.Path
	Budget    time.Duration
	// Arguments are the concrete option spellings. Each whitespace separated
	// token also gets a symbolic argument of the same length.
	Arguments []string
	// InitArgs replaces the symbolic argument encoding when Arguments is empty.
	InitArgs  []string
	Seeds     []m.Path
	ScoreFile m.Path
}

// EngineRun is the outcome of a symbolic-execution run. TestInputs holds
// whatever the engine wrote before it exited or was killed.
type EngineRun struct {
	Result     ProcessResult
	TestInputs []m.Path
}

// SymbolicEngine runs the symbolic-execution engine.
type SymbolicEngine interface {
	Run(ctx context.Context, req EngineRequest) (EngineRun, error)
}

// Replayer replays one generated test input against an instrumented binary.
type Replayer interface {
	Replay(ctx context.Context, binary, input m.Path, timeout time.Duration) (ProcessResult, error)
}

// SeedSynthesizer writes a test input holding exactly the given arguments.
type SeedSynthesizer interface {
	Synthesize(ctx context.Context, args []string, out m.Path) error
}

// KleeAdapter drives the klee binary.
type KleeAdapter struct {
	runner        ProcessRunner
	fs            SourceFSAdapter
	bin           string
	flags         []string
	symTail       []string
	timeoutFactor float64
}

// NewKleeAdapter constructs a KleeAdapter. flags are applied to every run
// and symTail closes the symbolic environment description.
func NewKleeAdapter(runner ProcessRunner, fs SourceFSAdapter, bin string, flags, symTail []string, timeoutFactor float64) *KleeAdapter {
	return &KleeAdapter{
		runner:        runner,
		fs:            fs,
		bin:           bin,
		flags:         flags,
		symTail:       symTail,
		timeoutFactor: timeoutFactor,
	}
}

// Run executes the engine under a hard timeout of timeoutFactor × budget and
// collects the generated inputs. A timed-out or failed engine is not an
// error: partial output is still returned.
func (k *KleeAdapter) Run(ctx context.Context, req EngineRequest) (EngineRun, error) {
	timeout := time.Duration(float64(req.Budget) * k.timeoutFactor)

	result, err := k.runner.Run(ctx, Command{
		Name:    k.bin,
		Args:    EngineArgs(req, k.flags, k.symTail),
		Dir:     filepath.Dir(string(req.Bitcode)),
		Timeout: timeout,
	})
	if err != nil {
		return EngineRun{}, err
	}

	inputs, globErr := k.fs.Glob(filepath.Join(string(req.OutputDir), "*.ktest"))
	if globErr != nil {
		return EngineRun{Result: result}, fmt.Errorf("%w: %w", ErrEngineOutputs, globErr)
	}

	return EngineRun{Result: result, TestInputs: inputs}, nil
}

// EngineArgs renders the engine command line for req.
func EngineArgs(req EngineRequest, flags, symTail []string) []string {
	budget := int(req.Budget / time.Second)

	args := make([]string, 0, len(flags)+len(req.Seeds)+len(req.Arguments)*3+16)

	if len(req.Seeds) > 0 {
		for _, seed := range req.Seeds {
			args = append(args, "-seed-file="+string(seed))
		}

		args = append(args,
			"-allow-seed-extension",
			"-allow-seed-truncation",
			"-seed-time="+strconv.Itoa(budget/4),
		)
	}

	if req.ScoreFile != "" {
		args = append(args, "-arg-score-file="+string(req.ScoreFile))
	}

	args = append(args, "-output-dir="+string(req.OutputDir))
	args = append(args, flags...)
	args = append(args, "-max-time="+strconv.Itoa(budget))
	args = append(args, string(req.Bitcode))

	tokens := make([]string, 0, len(req.Arguments))
	for _, arg := range req.Arguments {
		tokens = append(tokens, strings.Fields(arg)...)
	}

	if len(tokens) == 0 {
		args = append(args, req.InitArgs...)
	} else {
		args = append(args, tokens...)
		for _, token := range tokens {
			args = append(args, "-sym-arg", strconv.Itoa(len(token)))
		}
	}

	return append(args, symTail...)
}

// KleeReplayAdapter drives klee-replay.
type KleeReplayAdapter struct {
	runner ProcessRunner
	bin    string
}

// NewKleeReplayAdapter constructs a KleeReplayAdapter.
func NewKleeReplayAdapter(runner ProcessRunner, bin string) *KleeReplayAdapter {
	return &KleeReplayAdapter{runner: runner, bin: bin}
}

// Replay runs binary on input from the binary's directory.
func (r *KleeReplayAdapter) Replay(ctx context.Context, binary, input m.Path, timeout time.Duration) (ProcessResult, error) {
	return r.runner.Run(ctx, Command{
		Name:    r.bin,
		Args:    []string{string(binary), string(input)},
		Dir:     filepath.Dir(string(binary)),
		Timeout: timeout,
	})
}

// genBoutTimeout bounds gen-bout, which only writes a small file.
const genBoutTimeout = 30 * time.Second

// GenBoutAdapter drives gen-bout.
type GenBoutAdapter struct {
	runner ProcessRunner
	bin    string
}

// NewGenBoutAdapter constructs a GenBoutAdapter.
func NewGenBoutAdapter(runner ProcessRunner, bin string) *GenBoutAdapter {
	return &GenBoutAdapter{runner: runner, bin: bin}
}

// Synthesize writes a test input whose argv is exactly args.
func (g *GenBoutAdapter) Synthesize(ctx context.Context, args []string, out m.Path) error {
	argv := make([]string, 0, len(args)+2)
	for _, arg := range args {
		argv = append(argv, strings.Fields(arg)...)
	}

	argv = append(argv, "--bout-file", string(out))

	result, err := g.runner.Run(ctx, Command{Name: g.bin, Args: argv, Timeout: genBoutTimeout})
	if err != nil {
		return err
	}

	if result.Status != m.StatusOK {
		return fmt.Errorf("gen-bout %s (exit %d): %s", result.Status, result.ExitCode, strings.TrimSpace(string(result.Stderr)))
	}

	return nil
}
