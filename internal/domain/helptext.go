package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/anonymousfse26/orbis/internal/config"
)

// HelpOption is one option recovered from help output.
type HelpOption struct {
	// Name is the option without leading dashes.
	Name string
	// Alternates are the other dashed spellings listed on the same line.
	Alternates []string
}

// Short returns the single-character alternate, without its dash.
func (o HelpOption) Short() string {
	for _, alt := range o.Alternates {
		if len(alt) == 2 && alt[0] == '-' && alt[1] != '-' {
			return alt[1:]
		}
	}

	return ""
}

// HelpCatalog is the option list of a program.
type HelpCatalog struct {
	Options []HelpOption
	// ShortOnly are short flags that have no long form, without dashes.
	ShortOnly []string
}

// Names returns the option names in discovery order.
func (c HelpCatalog) Names() []string {
	names := make([]string, 0, len(c.Options))
	for _, opt := range c.Options {
		names = append(names, opt.Name)
	}

	return names
}

var (
	helpGroups   = regexp.MustCompile(`\[.*?\]`)
	helpFlagWord = regexp.MustCompile(`^--?[a-zA-Z][a-zA-Z0-9\-_]*$`)
	helpBadKey   = regexp.MustCompile(`[^\w\s\-]`)
	helpCleaner  = strings.NewReplacer("|", " ", "=", " ", ",", "")
)

// ParseHelp recovers options from a --help style listing. numDash is the
// dash count of the program's long options. In first mode only the leading
// flag of a line opens an option; in all mode every flag with the long
// prefix does.
func ParseHelp(text string, numDash int, mode config.HelpMode) HelpCatalog {
	prefix := strings.Repeat("-", numDash)
	exactFlag := regexp.MustCompile(fmt.Sprintf(`^-{%d}[a-zA-Z][a-zA-Z0-9\-_]*$`, numDash))

	var (
		keys      []string
		shortOnly []string
	)

	values := make(map[string][]string)

	open := func(word string) {
		if _, ok := values[word]; ok {
			return
		}

		keys = append(keys, word)
		values[word] = []string{}
	}

	for _, raw := range strings.Split(text, "\n") {
		line := helpGroups.ReplaceAllString(helpCleaner.Replace(strings.TrimSpace(raw)), "")

		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}

		sort.SliceStable(words, func(i, j int) bool {
			return strings.Count(words[i], "-") > strings.Count(words[j], "-")
		})

		if mode == config.HelpModeAll {
			for _, word := range words {
				if strings.HasPrefix(word, prefix) {
					open(word)
				}
			}
		} else if strings.HasPrefix(words[0], prefix) {
			open(words[0])
		}

		lead := words[0]

		for _, word := range words {
			if len(word) < 2 || word[0] != '-' {
				continue
			}

			if mode == config.HelpModeAll {
				if !exactFlag.MatchString(word) {
					continue
				}
			} else if !helpFlagWord.MatchString(word) {
				break
			}

			if _, isKey := values[word]; isKey {
				continue
			}

			if _, ok := values[lead]; !ok {
				shortOnly = append(shortOnly, word)
				continue
			}

			if !containsString(values[lead], word) {
				values[lead] = append(values[lead], word)
			}
		}
	}

	attached := make(map[string]struct{})
	for _, vals := range values {
		for _, v := range vals {
			attached[v] = struct{}{}
		}
	}

	catalog := HelpCatalog{}
	seen := make(map[string]struct{})

	for _, key := range keys {
		name := strings.Trim(key, "-")
		if name == "" || helpBadKey.MatchString(key) {
			continue
		}

		if numDash == 1 && len(name) <= 1 {
			continue
		}

		folded := strings.ToLower(name)
		if _, dup := seen[folded]; dup {
			continue
		}

		seen[folded] = struct{}{}

		alternates := make([]string, 0, len(values[key]))
		for _, alt := range values[key] {
			if numDash == 1 && len(strings.Trim(alt, "-")) <= 1 {
				continue
			}

			alternates = append(alternates, alt)
		}

		catalog.Options = append(catalog.Options, HelpOption{Name: name, Alternates: alternates})
	}

	seenShort := make(map[string]struct{})

	for _, word := range shortOnly {
		if _, ok := attached[word]; ok {
			continue
		}

		name := strings.Trim(word, "-")
		if _, dup := seenShort[name]; dup || name == "" {
			continue
		}

		seenShort[name] = struct{}{}
		catalog.ShortOnly = append(catalog.ShortOnly, name)
	}

	return catalog
}

// ParseCatalog reads an option catalog: one option per line, in help
// listing form ("-c, --count"), with # comments.
func ParseCatalog(text string, numDash int) HelpCatalog {
	lines := make([]string, 0, strings.Count(text, "\n")+1)

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		lines = append(lines, trimmed)
	}

	return ParseHelp(strings.Join(lines, "\n"), numDash, config.HelpModeFirst)
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}

	return false
}
