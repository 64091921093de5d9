package domain

import (
	"bufio"
	"bytes"
	"context"
	"log/slog"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/anonymousfse26/orbis/internal/adapter"
	m "github.com/anonymousfse26/orbis/internal/model"
)

// optionSeedName is the synthesized seed holding exactly the next arguments.
const optionSeedName = "option_seed.ktest"

var quotedArgument = regexp.MustCompile(`"(.*?)"`)

// Guider keeps the best test inputs per option and per combination and
// picks the seeds for the next engine run.
type Guider interface {
	// Save ranks the inputs generated while key was active.
	Save(ctx context.Context, key m.CombinationKey, inputs []m.Path) error
	// Guide returns the seeds for a run of key spelled as args. outDir
	// receives the synthesized seed.
	Guide(ctx context.Context, key m.CombinationKey, args []string, outDir m.Path) ([]m.Path, error)
	// Seeds returns the retained list of key.
	Seeds(key m.CombinationKey) m.SeedList
}

// GuiderOptions tune seed retention and argument recovery.
type GuiderOptions struct {
	TopK          int
	Binary        m.Path
	NumDash       int
	ReplayTimeout time.Duration
}

type guider struct {
	collector CoverageCollector
	replayer  adapter.Replayer
	synth     adapter.SeedSynthesizer
	fsAdapter adapter.SourceFSAdapter
	related   m.BranchSet
	spellings map[string]string
	seeds     map[m.CombinationKey]m.SeedList
	replayed  map[m.Path]m.Seed
	opts      GuiderOptions
	rng       *rand.Rand
	logger    *slog.Logger
}

// NewGuider constructs a Guider for the options of obm.
func NewGuider(
	obm *m.OptionBranchMap,
	collector CoverageCollector,
	replayer adapter.Replayer,
	synth adapter.SeedSynthesizer,
	fsAdapter adapter.SourceFSAdapter,
	opts GuiderOptions,
	rng *rand.Rand,
	logger *slog.Logger,
) Guider {
	if logger == nil {
		logger = slog.Default()
	}

	return &guider{
		collector: collector,
		replayer:  replayer,
		synth:     synth,
		fsAdapter: fsAdapter,
		related:   obm.AllBranches(),
		spellings: obm.Spellings(opts.NumDash),
		seeds:     make(map[m.CombinationKey]m.SeedList),
		replayed:  make(map[m.Path]m.Seed),
		opts:      opts,
		rng:       rng,
		logger:    logger,
	}
}

func (g *guider) Save(ctx context.Context, key m.CombinationKey, inputs []m.Path) error {
	if key.IsEmpty() || len(inputs) == 0 {
		return nil
	}

	perInput, err := g.collector.MeasureEach(ctx, inputs)
	if err != nil {
		return err
	}

	ranked := make(m.SeedList, 0, len(inputs))
	for _, input := range inputs {
		ranked = append(ranked, m.Seed{Path: input, Coverage: perInput[input].CountIn(g.related)})
	}

	m.SortSeeds(ranked)

	for _, name := range key.Options() {
		single := m.NewCombinationKey(name)
		g.seeds[single] = m.MergeTopK(g.seeds[single], ranked, g.opts.TopK)
	}

	if !key.IsSingleton() {
		g.seeds[key] = m.MergeTopK(g.seeds[key], ranked, g.opts.TopK)
	}

	return nil
}

func (g *guider) Seeds(key m.CombinationKey) m.SeedList {
	return append(m.SeedList(nil), g.seeds[key]...)
}

func (g *guider) Guide(ctx context.Context, key m.CombinationKey, args []string, outDir m.Path) ([]m.Path, error) {
	target := make(map[string]struct{}, len(args))
	for _, arg := range args {
		target[arg] = struct{}{}
	}

	var chosen []m.Path

	for _, name := range key.Options() {
		seed, ok, err := g.pick(ctx, m.NewCombinationKey(name), target)
		if err != nil {
			return nil, err
		}

		if ok {
			chosen = append(chosen, seed)
		}
	}

	if len(args) > 0 {
		out := g.fsAdapter.JoinPath(string(outDir), optionSeedName)
		if err := g.synth.Synthesize(ctx, args, out); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}

			g.logger.Warn("failed to synthesize option seed", slog.String("error", err.Error()))
		} else {
			chosen = append(chosen, out)
		}
	}

	return dedupePaths(chosen), nil
}

// pick chooses the retained seed of key whose recovered arguments overlap
// least (but not zero) with target. Ties go to the shallower seed, then to
// a random one.
func (g *guider) pick(ctx context.Context, key m.CombinationKey, target map[string]struct{}) (m.Path, bool, error) {
	list := g.seeds[key]
	if len(list) == 0 {
		return "", false, nil
	}

	bestSim := -1
	var best []m.Seed

	for i := range list {
		seed, err := g.annotate(ctx, list[i])
		if err != nil {
			return "", false, err
		}

		list[i] = seed

		sim := similarity(seed, target)
		if sim <= 0 {
			continue
		}

		switch {
		case bestSim < 0 || sim < bestSim:
			bestSim = sim
			best = []m.Seed{seed}
		case sim == bestSim:
			best = append(best, seed)
		}
	}

	if len(best) == 0 {
		return "", false, nil
	}

	minDepth := best[0].Depth
	for _, seed := range best[1:] {
		minDepth = min(minDepth, seed.Depth)
	}

	shallow := best[:0:0]
	for _, seed := range best {
		if seed.Depth == minDepth {
			shallow = append(shallow, seed)
		}
	}

	return shallow[g.rng.IntN(len(shallow))].Path, true, nil
}

// annotate recovers the arguments and depth of seed once per input path.
func (g *guider) annotate(ctx context.Context, seed m.Seed) (m.Seed, error) {
	if cached, ok := g.replayed[seed.Path]; ok {
		seed.Replayed, seed.Args, seed.Depth = true, cached.Args, cached.Depth
		return seed, nil
	}

	result, err := g.replayer.Replay(ctx, g.opts.Binary, seed.Path, g.opts.ReplayTimeout)
	if err != nil && ctx.Err() != nil {
		return seed, ctx.Err()
	}

	if err == nil {
		seed.Args = g.validTokens(result.Stderr)
	} else {
		g.logger.Warn("failed to replay seed", slog.String("seed", string(seed.Path)), slog.String("error", err.Error()))
	}

	seed.Depth = g.depth(seed.Path)
	seed.Replayed = true
	g.replayed[seed.Path] = seed

	return seed, nil
}

// validTokens reads the replayed argument line and keeps the tokens that
// spell a known option. It returns nil when no argument line was printed.
func (g *guider) validTokens(stderr []byte) []string {
	scanner := bufio.NewScanner(bytes.NewReader(stderr))

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, "Arguments:") {
			continue
		}

		tokens := []string{}
		for _, match := range quotedArgument.FindAllStringSubmatch(line, -1) {
			if _, ok := g.spellings[match[1]]; ok {
				tokens = append(tokens, match[1])
			}
		}

		return tokens
	}

	return nil
}

// depth reads the seeding depth the engine stored next to the input.
func (g *guider) depth(input m.Path) int {
	path := m.Path(strings.TrimSuffix(string(input), ".ktest") + ".depth")

	content, err := g.fsAdapter.ReadFile(path)
	if err != nil {
		return 0
	}

	depth, err := strconv.Atoi(strings.TrimSpace(strings.SplitN(string(content), "\n", 2)[0]))
	if err != nil {
		return 0
	}

	return depth
}

// similarity is the number of recovered tokens present in target, or -1
// for a seed without an argument trace.
func similarity(seed m.Seed, target map[string]struct{}) int {
	if seed.Args == nil {
		return -1
	}

	seen := make(map[string]struct{}, len(seed.Args))
	count := 0

	for _, token := range seed.Args {
		if _, dup := seen[token]; dup {
			continue
		}

		seen[token] = struct{}{}

		if _, ok := target[token]; ok {
			count++
		}
	}

	return count
}

func dedupePaths(paths []m.Path) []m.Path {
	seen := make(map[m.Path]struct{}, len(paths))
	out := make([]m.Path, 0, len(paths))

	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}

		seen[p] = struct{}{}
		out = append(out, p)
	}

	return out
}
