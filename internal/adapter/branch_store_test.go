package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "github.com/anonymousfse26/orbis/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchMapStore_SaveThenLoad(t *testing.T) {
	store := NewBranchMapStore()
	path := m.Path(filepath.Join(t.TempDir(), "opt_branches", "minigrep.json"))

	assert.False(t, store.Exists(path))

	obm := m.NewOptionBranchMap("minigrep")
	obm.Options["ignore-case"] = m.Option{Name: "ignore-case", Short: "i", Variables: []string{"'i'", "ignore_case"}}
	obm.Options["output"] = m.Option{Name: "output", Variables: []string{"output_file"}}
	obm.Branches["ignore-case"] = m.NewBranchSet(m.BranchID{File: "minigrep.c", Line: 34}, m.BranchID{File: "minigrep.c", Line: 52})
	obm.Branches["output"] = m.NewBranchSet(m.BranchID{File: "minigrep.c", Line: 75})
	obm.ShortOnly = []string{"V"}

	require.NoError(t, store.Save(path, obm))
	assert.True(t, store.Exists(path))

	loaded, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, obm, loaded)
}

func TestBranchMapStore_SaveIsStable(t *testing.T) {
	store := NewBranchMapStore()
	dir := t.TempDir()

	obm := m.NewOptionBranchMap("p")
	obm.Options["b"] = m.Option{Name: "b"}
	obm.Options["a"] = m.Option{Name: "a"}
	obm.Branches["b"] = m.NewBranchSet(m.BranchID{File: "x.c", Line: 9}, m.BranchID{File: "x.c", Line: 2})
	obm.Branches["a"] = m.NewBranchSet()

	first := m.Path(filepath.Join(dir, "1.json"))
	second := m.Path(filepath.Join(dir, "2.json"))
	require.NoError(t, store.Save(first, obm))
	require.NoError(t, store.Save(second, obm))

	assert.Equal(t, readFileBytes(t, string(first)), readFileBytes(t, string(second)))
}

func TestBranchMapStore_LoadLegacyEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grep.json")
	writeTestFile(t, path, `{
  "options": {"count": ["-c", "--count", "count_matches", "'c'"]},
  "total_br": {"count": ["grep.c 87", "grep.c 97"], "unknown": ["grep.c 1"]}
}`)

	obm, err := NewBranchMapStore().Load(m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, "grep", obm.Program)
	assert.Equal(t, m.Option{Name: "count", Short: "c", Variables: []string{"'c'", "count_matches"}}, obm.Options["count"])
	assert.Equal(t, 2, len(obm.Branches["count"]))
	assert.NotContains(t, obm.Branches, "unknown")
}

func TestBranchMapStore_LoadErrors(t *testing.T) {
	store := NewBranchMapStore()

	_, err := store.Load(m.Path(filepath.Join(t.TempDir(), "missing.json")))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))

	_, err = store.Load(m.Path(bad))
	require.Error(t, err)

	badID := filepath.Join(t.TempDir(), "badid.json")
	writeTestFile(t, badID, `{"options":{"a":[]},"total_br":{"a":["nospace"]}}`)

	_, err = store.Load(m.Path(badID))
	require.Error(t, err)
}
