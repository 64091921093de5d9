package domain

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/anonymousfse26/orbis/internal/adapter"
	"github.com/anonymousfse26/orbis/internal/config"
	m "github.com/anonymousfse26/orbis/internal/model"
)

// Extractor maps every option of a program to the source branches its
// handling code controls.
type Extractor interface {
	Extract(ctx context.Context, program string, catalog HelpCatalog, sources []m.SourceFile) (*m.OptionBranchMap, error)
}

// ExtractorOptions tune the static analysis.
type ExtractorOptions struct {
	// Depth is the exact number of variable refinement rounds.
	Depth    int
	NumDash  int
	HelpMode config.HelpMode
	// StopWords are names that are never treated as option variables.
	StopWords   []string
	IncludeDirs []string
}

type extractor struct {
	parser adapter.CFileAdapter
	fs     adapter.SourceFSAdapter
	opts   ExtractorOptions
	logger *slog.Logger
}

// NewExtractor constructs an Extractor.
func NewExtractor(parser adapter.CFileAdapter, fs adapter.SourceFSAdapter, opts ExtractorOptions, logger *slog.Logger) Extractor {
	if logger == nil {
		logger = slog.Default()
	}

	if opts.Depth < 1 {
		opts.Depth = 1
	}

	return &extractor{parser: parser, fs: fs, opts: opts, logger: logger}
}

var (
	quotedCharSingle = regexp.MustCompile(`'[a-zA-Z0-9]'`)
	quotedCharDouble = regexp.MustCompile(`"[a-zA-Z0-9]"`)
	systemInclude    = regexp.MustCompile(`(?m)^[ \t]*#[ \t]*include[ \t]*<([^>]+)>`)
)

// snippetPrefix and snippetSuffix wrap accumulated code so statements and
// case labels parse as a function body.
const (
	snippetPrefix = "void __orbis_snippet(void)\n{\n"
	snippetSuffix = "\n}\n"
)

func (e *extractor) Extract(ctx context.Context, program string, catalog HelpCatalog, sources []m.SourceFile) (*m.OptionBranchMap, error) {
	if len(catalog.Options) == 0 {
		return nil, ErrNoOptions
	}

	std, err := e.standardFunctions(ctx, sources)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(catalog.Options))
	shorts := make(map[string]string, len(catalog.Options))

	for _, opt := range catalog.Options {
		names = append(names, opt.Name)
		shorts[opt.Name] = opt.Short()
	}

	sort.Strings(names)

	codes := make(map[string]*strings.Builder, len(names))
	branches := make(map[string]m.BranchSet, len(names))

	for _, name := range names {
		codes[name] = &strings.Builder{}
		codes[name].WriteString(e.optionBlocks(name, sources))
		branches[name] = make(m.BranchSet)
	}

	roundZero := make(map[string][]string, len(names))

	for round := 0; round < e.opts.Depth; round++ {
		tokens := make(map[string][]string, len(names))
		snapshots := make(map[string]string, len(names))

		for _, name := range names {
			snapshots[name] = codes[name].String()

			tokens[name], err = e.snippetVariables(ctx, snapshots[name], round)
			if err != nil {
				return nil, err
			}
		}

		excluded := e.varFilter(tokens)
		for name := range std {
			excluded[name] = struct{}{}
		}

		for _, name := range names {
			variables := e.candidates(tokens[name], snapshots[name], excluded)
			if round == 0 {
				roundZero[name] = variables
			}

			for _, variable := range variables {
				for i := range sources {
					lines, text := branchesFor(&sources[i], variable)
					for _, line := range lines {
						branches[name].Add(m.BranchID{File: sources[i].Name, Line: line})
					}

					if text != "" {
						codes[name].WriteString("\n")
						codes[name].WriteString(text)
					}
				}
			}
		}

		e.logger.Debug("extraction round finished", slog.Int("round", round), slog.Int("excluded", len(excluded)))
	}

	obm := m.NewOptionBranchMap(program)
	obm.ShortOnly = catalog.ShortOnly

	for _, name := range names {
		obm.Options[name] = m.Option{Name: name, Short: shorts[name], Variables: roundZero[name]}
		obm.Branches[name] = branches[name]
	}

	return obm, nil
}

// optionBlocks concatenates the if heads, innermost initializer lists and
// calls that mention one of the option's quoted spellings.
func (e *extractor) optionBlocks(name string, sources []m.SourceFile) string {
	dashes := strings.Repeat("-", e.opts.NumDash)
	spellings := []string{
		"'" + name + "'",
		`"` + name + `"`,
		"'" + dashes + name + "'",
		`"` + dashes + name + `"`,
	}

	var out strings.Builder

	for _, spelling := range spellings {
		for i := range sources {
			block := strings.TrimSpace(blocksWithTarget(sources[i].Tree, spelling))
			if block == "" {
				continue
			}

			out.WriteString("\n")
			out.WriteString(block)
		}
	}

	return out.String()
}

func blocksWithTarget(tree *m.SyntaxTree, target string) string {
	if tree == nil {
		return ""
	}

	needle := []byte(target)

	var blocks []string

	tree.Walk(tree.Root(), func(idx int32) bool {
		if !nodeContains(tree, idx, needle) {
			return false
		}

		node := tree.Node(idx)

		switch node.Kind {
		case "if_statement":
			if node.Consequence != m.NoNode {
				blocks = append(blocks, tree.Span(idx, node.Consequence))
			}
		case "initializer_list":
			if !hasChildKind(tree, idx, "initializer_list") {
				blocks = append(blocks, tree.Text(idx))
			}
		case "call_expression":
			blocks = append(blocks, tree.Text(idx))
		}

		return true
	})

	kept := blocks[:0]
	for _, block := range blocks {
		if strings.Contains(block, target) {
			kept = append(kept, block)
		}
	}

	return strings.Join(kept, "\n")
}

// snippetVariables lists the identifiers of code, plus character literals
// in the first round of a double-dash program.
func (e *extractor) snippetVariables(ctx context.Context, code string, round int) ([]string, error) {
	if strings.TrimSpace(code) == "" {
		return nil, nil
	}

	src := snippetPrefix + code + snippetSuffix

	tree, err := e.parser.Parse(ctx, []byte(src))
	if err != nil {
		return nil, fmt.Errorf("failed to parse option code: %w", err)
	}

	lo := uint32(len(snippetPrefix))
	hi := lo + uint32(len(code))
	withChars := e.opts.NumDash >= 2 && round == 0

	var out []string

	tree.Walk(tree.Root(), func(idx int32) bool {
		node := tree.Node(idx)
		if node.StartByte < lo || node.EndByte > hi {
			return true
		}

		switch {
		case node.Kind == "identifier":
			out = append(out, tree.Text(idx))
		case node.Kind == "char_literal" && withChars:
			out = append(out, tree.Text(idx))
		}

		return true
	})

	return out, nil
}

// varFilter returns the names that cannot be option variables: names used
// by more than two options, very short names, punctuation and stop words.
func (e *extractor) varFilter(tokens map[string][]string) map[string]struct{} {
	owners := make(map[string]map[string]struct{})

	for name, list := range tokens {
		for _, token := range list {
			if owners[token] == nil {
				owners[token] = make(map[string]struct{})
			}

			owners[token][name] = struct{}{}
		}
	}

	excluded := make(map[string]struct{})

	for token, set := range owners {
		drop := len(set) > 2 || len(token) <= 2 || isPunctuation(token)

		if e.opts.NumDash <= 1 {
			drop = drop || len(stripQuotes(token)) == 1
			if e.opts.HelpMode != config.HelpModeAll {
				drop = drop || !strings.Contains(token, "_")
			}
		}

		if drop {
			excluded[token] = struct{}{}
		}
	}

	for _, word := range e.opts.StopWords {
		excluded[word] = struct{}{}
	}

	return excluded
}

// candidates returns the sorted variables of one option for this round.
func (e *extractor) candidates(tokens []string, code string, excluded map[string]struct{}) []string {
	set := make(map[string]struct{}, len(tokens))

	add := func(list []string) {
		for _, v := range list {
			set[v] = struct{}{}
		}
	}

	add(tokens)
	add(quotedCharSingle.FindAllString(code, -1))
	add(quotedCharDouble.FindAllString(code, -1))

	out := make([]string, 0, len(set))

	for v := range set {
		if _, skip := excluded[v]; skip {
			continue
		}

		if e.opts.NumDash <= 1 && len(stripQuotes(v)) <= 1 {
			continue
		}

		out = append(out, v)
	}

	sort.Strings(out)

	return out
}

// standardFunctions collects the names of function declarations in the
// sources and in the system headers they include.
func (e *extractor) standardFunctions(ctx context.Context, sources []m.SourceFile) (map[string]struct{}, error) {
	names := make(map[string]struct{})
	visited := make(map[string]struct{})

	var pending []string

	for i := range sources {
		declaredFunctions(sources[i].Tree, names)
		pending = append(pending, includedHeaders(sources[i].Content)...)
	}

	for len(pending) > 0 {
		header := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if _, ok := visited[header]; ok {
			continue
		}

		visited[header] = struct{}{}

		path, ok := e.fs.ResolveInclude(header, e.opts.IncludeDirs)
		if !ok {
			e.logger.Debug("system header not found", slog.String("header", header))
			continue
		}

		content, err := e.fs.ReadFile(path)
		if err != nil {
			e.logger.Warn("failed to read system header", slog.String("path", string(path)), slog.String("error", err.Error()))
			continue
		}

		tree, err := e.parser.Parse(ctx, content)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}

			e.logger.Warn("failed to parse system header", slog.String("path", string(path)), slog.String("error", err.Error()))

			continue
		}

		declaredFunctions(tree, names)
		pending = append(pending, includedHeaders(content)...)
	}

	return names, nil
}

func includedHeaders(content []byte) []string {
	matches := systemInclude.FindAllSubmatch(content, -1)
	out := make([]string, 0, len(matches))

	for _, match := range matches {
		out = append(out, strings.TrimSpace(string(match[1])))
	}

	return out
}

func declaredFunctions(tree *m.SyntaxTree, names map[string]struct{}) {
	if tree == nil {
		return
	}

	tree.Walk(tree.Root(), func(idx int32) bool {
		node := tree.Node(idx)
		if node.Kind != "declaration" || node.Declarator == m.NoNode {
			return true
		}

		fn := tree.Find(node.Declarator, "function_declarator")
		if fn == m.NoNode {
			return false
		}

		if id := tree.Find(fn, "identifier"); id != m.NoNode {
			names[tree.Text(id)] = struct{}{}
		}

		return false
	})
}

var conditionalKinds = map[string]bool{
	"if_statement":     true,
	"while_statement":  true,
	"for_statement":    true,
	"switch_statement": true,
	"case_statement":   true,
}

// branchesFor finds the conditionals of src whose condition (or case value)
// references variable. It returns their lines and the lines of every
// conditional nested in them, together with the text of those constructs
// and of any function named variable.
func branchesFor(src *m.SourceFile, variable string) ([]int, string) {
	tree := src.Tree
	if tree == nil || tree.Root() == m.NoNode {
		return nil, ""
	}

	needle := []byte(variable)
	seen := make(map[int]struct{})

	var (
		lines []int
		texts []string
		funcs []string
	)

	record := func(idx int32) {
		line := tree.Node(idx).Line
		if _, ok := seen[line]; ok {
			return
		}

		seen[line] = struct{}{}
		lines = append(lines, line)
		texts = append(texts, tree.Text(idx))
	}

	recordNested := func(start int32) {
		tree.Walk(start, func(idx int32) bool {
			if conditionalKinds[tree.Node(idx).Kind] {
				record(idx)
			}

			return true
		})
	}

	tree.Walk(tree.Root(), func(idx int32) bool {
		node := tree.Node(idx)

		switch node.Kind {
		case "if_statement", "while_statement", "for_statement", "switch_statement":
			if node.Condition != m.NoNode && references(tree, node.Condition, needle) {
				record(idx)
				recordNested(idx)
			}
		case "case_statement":
			if node.Value != m.NoNode && references(tree, node.Value, needle) {
				record(idx)
				recordNested(idx)
			}
		case "function_definition":
			if node.Declarator != m.NoNode {
				if id := tree.Find(node.Declarator, "identifier"); id != m.NoNode && tree.Text(id) == variable {
					funcs = append(funcs, tree.Text(idx))
				}
			}
		}

		return true
	})

	texts = append(texts, funcs...)

	return lines, strings.Join(texts, "\n")
}

// references reports whether the subtree at start mentions name as an
// identifier, string or character literal, or as a function definition.
func references(tree *m.SyntaxTree, start int32, name []byte) bool {
	found := false

	tree.Walk(start, func(idx int32) bool {
		if found {
			return false
		}

		node := tree.Node(idx)

		switch node.Kind {
		case "identifier", "string_literal", "char_literal":
			if bytes.Equal(nodeBytes(tree, idx), name) {
				found = true
				return false
			}
		case "function_definition":
			if node.Declarator != m.NoNode && bytes.Equal(nodeBytes(tree, node.Declarator), name) {
				found = true
				return false
			}
		}

		return true
	})

	return found
}

func nodeBytes(tree *m.SyntaxTree, idx int32) []byte {
	node := tree.Node(idx)
	return tree.Source[node.StartByte:node.EndByte]
}

func nodeContains(tree *m.SyntaxTree, idx int32, needle []byte) bool {
	return bytes.Contains(nodeBytes(tree, idx), needle)
}

func hasChildKind(tree *m.SyntaxTree, idx int32, kind string) bool {
	for _, child := range tree.Node(idx).Children {
		if tree.Node(child).Kind == kind {
			return true
		}
	}

	return false
}

func stripQuotes(s string) string {
	return strings.Trim(strings.Trim(s, `"`), "'")
}

func isPunctuation(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return false
		}
	}

	return true
}
