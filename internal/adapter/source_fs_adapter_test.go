package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	m "github.com/anonymousfse26/orbis/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter(NewTreeSitterCAdapter(), nil)

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.c"), "int main(void) { return 0; }\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "child.c"), "int child;\n")

		var visited []string
		err := adapter.Walk(m.Path(root), false, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		for _, forbidden := range []string{nestedDir, filepath.Join(nestedDir, "child.c")} {
			assert.Falsef(t, containsPath(visited, forbidden), "Walk() unexpectedly visited %s when recursive is false", forbidden)
		}

		assert.True(t, containsPath(visited, filepath.Join(root, "main.c")), "Walk() did not visit top-level file")
	})

	t.Run("recursive visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter(NewTreeSitterCAdapter(), nil)

		root := t.TempDir()
		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "child.c")
		writeTestFile(t, child, "int child;\n")

		var visited []string
		err := adapter.Walk(m.Path(root), true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		assert.True(t, containsPath(visited, child), "Walk() did not visit nested file when recursive")
	})
}

func TestLocalSourceFSAdapter_LoadSources(t *testing.T) {
	adapter := NewLocalSourceFSAdapter(NewTreeSitterCAdapter(), nil)

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "b.c"), "int b(void) { return 1; }\n")
	writeTestFile(t, filepath.Join(root, "a.c"), "int a(void) { if (1) return 2; return 0; }\n")
	writeTestFile(t, filepath.Join(root, "notes.txt"), "not C\n")
	writeTestFile(t, filepath.Join(root, "a.h"), "int a(void);\n")

	nested := filepath.Join(root, "lib")
	mustMkdir(t, nested)
	writeTestFile(t, filepath.Join(nested, "c.c"), "int c;\n")

	t.Run("flat root", func(t *testing.T) {
		sources, err := adapter.LoadSources(context.Background(), m.Path(root), "")
		require.NoError(t, err)
		require.Len(t, sources, 2)

		assert.Equal(t, "a.c", sources[0].Name)
		assert.Equal(t, "b.c", sources[1].Name)
		assert.Equal(t, "a.c", sources[0].Rel)
		require.NotNil(t, sources[0].Tree)
		assert.NotEqual(t, m.NoNode, sources[0].Tree.Find(sources[0].Tree.Root(), "if_statement"))
	})

	t.Run("recursive root", func(t *testing.T) {
		sources, err := adapter.LoadSources(context.Background(), m.Path(root+"/..."), "")
		require.NoError(t, err)
		require.Len(t, sources, 3)
		assert.Equal(t, filepath.Join("lib", "c.c"), sources[2].Rel)
	})

	t.Run("name filter", func(t *testing.T) {
		sources, err := adapter.LoadSources(context.Background(), m.Path(root), "b")
		require.NoError(t, err)
		require.Len(t, sources, 1)
		assert.Equal(t, "b.c", sources[0].Name)
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := adapter.LoadSources(context.Background(), m.Path(filepath.Join(root, "missing")), "")
		require.Error(t, err)
	})

	t.Run("file root", func(t *testing.T) {
		_, err := adapter.LoadSources(context.Background(), m.Path(filepath.Join(root, "a.c")), "")
		require.Error(t, err)
	})
}

func TestLocalSourceFSAdapter_FindFilesAndRemove(t *testing.T) {
	adapter := NewLocalSourceFSAdapter(NewTreeSitterCAdapter(), nil)

	root := t.TempDir()
	nested := filepath.Join(root, "src")
	mustMkdir(t, nested)
	writeTestFile(t, filepath.Join(root, "x.gcda"), "")
	writeTestFile(t, filepath.Join(nested, "y.gcda"), "")
	writeTestFile(t, filepath.Join(nested, "y.c.gcov"), "")
	writeTestFile(t, filepath.Join(nested, "y.c"), "")

	found, err := adapter.FindFiles(m.Path(root), ".gcda", ".gcov")
	require.NoError(t, err)
	assert.Equal(t, []m.Path{
		m.Path(filepath.Join(nested, "y.c.gcov")),
		m.Path(filepath.Join(nested, "y.gcda")),
		m.Path(filepath.Join(root, "x.gcda")),
	}, found)

	found = append(found, m.Path(filepath.Join(root, "already-gone.gcda")))
	require.NoError(t, adapter.RemoveFiles(found))

	left, err := adapter.FindFiles(m.Path(root), ".gcda", ".gcov")
	require.NoError(t, err)
	assert.Empty(t, left)

	_, err = os.Stat(filepath.Join(nested, "y.c"))
	require.NoError(t, err)
}

func TestLocalSourceFSAdapter_GlobWriteAppend(t *testing.T) {
	adapter := NewLocalSourceFSAdapter(NewTreeSitterCAdapter(), nil)

	root := t.TempDir()
	out := adapter.JoinPath(root, "deep", "coverage.csv")

	require.NoError(t, adapter.WriteFile(out, []byte("a\n"), 0o600))
	require.NoError(t, adapter.AppendFile(out, []byte("b\n")))

	content, err := adapter.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(content))

	writeTestFile(t, filepath.Join(root, "test000002.ktest"), "")
	writeTestFile(t, filepath.Join(root, "test000001.ktest"), "")

	matches, err := adapter.Glob(filepath.Join(root, "*.ktest"))
	require.NoError(t, err)
	assert.Equal(t, []m.Path{
		m.Path(filepath.Join(root, "test000001.ktest")),
		m.Path(filepath.Join(root, "test000002.ktest")),
	}, matches)

	require.NoError(t, adapter.MkdirAll(adapter.JoinPath(root, "a", "b")))
	info, err := adapter.FileInfo(adapter.JoinPath(root, "a", "b"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	require.NoError(t, adapter.RemoveAll(adapter.JoinPath(root, "a")))
	_, err = adapter.FileInfo(adapter.JoinPath(root, "a"))
	require.Error(t, err)
}

func TestLocalSourceFSAdapter_ResolveInclude(t *testing.T) {
	adapter := NewLocalSourceFSAdapter(NewTreeSitterCAdapter(), nil)

	first := t.TempDir()
	second := t.TempDir()
	writeTestFile(t, filepath.Join(second, "stdio.h"), "int printf(const char *, ...);\n")

	path, ok := adapter.ResolveInclude("stdio.h", []string{first, second})
	require.True(t, ok)
	assert.Equal(t, m.Path(filepath.Join(second, "stdio.h")), path)

	_, ok = adapter.ResolveInclude("missing.h", []string{first, second})
	assert.False(t, ok)
}

func TestParseRootPath(t *testing.T) {
	path, recursive := parseRootPath("./src/...")
	assert.Equal(t, "./src", path)
	assert.True(t, recursive)

	path, recursive = parseRootPath("./src")
	assert.Equal(t, "./src", path)
	assert.False(t, recursive)
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}

func examplePath(t *testing.T, elem ...string) string {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)

	repoRoot := filepath.Clean(filepath.Join(wd, "..", ".."))
	parts := append([]string{repoRoot, "examples"}, elem...)

	return filepath.Join(parts...)
}

func readFileBytes(t *testing.T, path string) []byte {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	return content
}
