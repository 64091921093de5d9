package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "github.com/anonymousfse26/orbis/internal/model"
)

// BranchMapStore persists option-branch maps.
type BranchMapStore interface {
	Exists(path m.Path) bool
	Save(path m.Path, obm *m.OptionBranchMap) error
	Load(path m.Path) (*m.OptionBranchMap, error)
}

// branchMapFile is the on-disk layout. Option entries that start with a dash
// are spellings of the option, the rest are its variables.
type branchMapFile struct {
	Options   map[string][]string `json:"options"`
	TotalBr   map[string][]string `json:"total_br"`
	ShortOnly []string            `json:"short_only,omitempty"`
}

type jsonBranchMapStore struct{}

// NewBranchMapStore constructs a JSON BranchMapStore.
func NewBranchMapStore() BranchMapStore {
	return &jsonBranchMapStore{}
}

func (s *jsonBranchMapStore) Exists(path m.Path) bool {
	info, err := os.Stat(string(path))
	return err == nil && !info.IsDir()
}

// Save writes obm with sorted entries so equal maps produce equal files.
func (s *jsonBranchMapStore) Save(path m.Path, obm *m.OptionBranchMap) error {
	file := branchMapFile{
		Options:   make(map[string][]string, len(obm.Options)),
		TotalBr:   make(map[string][]string, len(obm.Options)),
		ShortOnly: obm.ShortOnly,
	}

	for _, name := range obm.Names() {
		opt := obm.Options[name]

		entries := make([]string, 0, len(opt.Variables)+1)
		if opt.HasShort() {
			entries = append(entries, opt.ShortSpelling())
		}

		entries = append(entries, opt.Variables...)
		file.Options[name] = entries

		branches := make([]string, 0, len(obm.Branches[name]))
		for _, id := range obm.Branches[name].Sorted() {
			branches = append(branches, id.String())
		}

		file.TotalBr[name] = branches
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("encode option-branch map: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("create option-branch directory: %w", err)
	}

	return os.WriteFile(string(path), data, 0o600)
}

// Load reads a map written by Save.
func (s *jsonBranchMapStore) Load(path m.Path) (*m.OptionBranchMap, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read option-branch map: %w", err)
	}

	var file branchMapFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode option-branch map %s: %w", path, err)
	}

	program := strings.TrimSuffix(filepath.Base(string(path)), filepath.Ext(string(path)))
	obm := m.NewOptionBranchMap(program)
	obm.ShortOnly = file.ShortOnly

	for name, entries := range file.Options {
		opt := m.Option{Name: name}

		for _, entry := range entries {
			switch {
			case len(entry) == 2 && entry[0] == '-' && entry[1] != '-':
				if opt.Short == "" {
					opt.Short = entry[1:]
				}
			case strings.HasPrefix(entry, "-"):
				// alternate long spelling, not rendered
			default:
				opt.Variables = append(opt.Variables, entry)
			}
		}

		sort.Strings(opt.Variables)

		obm.Options[name] = opt
		obm.Branches[name] = make(m.BranchSet)
	}

	for name, ids := range file.TotalBr {
		set, ok := obm.Branches[name]
		if !ok {
			continue
		}

		for _, raw := range ids {
			id, err := m.ParseBranchID(raw)
			if err != nil {
				return nil, err
			}

			set.Add(id)
		}
	}

	return obm, nil
}
