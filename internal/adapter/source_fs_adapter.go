// Package adapter contains the infrastructure adapters of the orbis CLI:
// filesystem, C parsing, external tools and persistence.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	m "github.com/anonymousfse26/orbis/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain
// layer relies on when scanning C source trees and coverage artifacts. It
// hides direct `os` access so the domain logic can be tested without
// touching the disk.
//
//nolint:interfacebloat // A richer interface keeps domain logic decoupled from os/fs.
type SourceFSAdapter interface {
	// LoadSources reads and parses every C file under root. A root ending in
	// "/..." is scanned recursively. Only files whose base name contains
	// filter are kept when filter is not empty.
	LoadSources(ctx context.Context, root m.Path, filter string) ([]m.SourceFile, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// FindFiles returns every regular file under root whose name ends with
	// one of the suffixes, sorted.
	FindFiles(root m.Path, suffixes ...string) ([]m.Path, error)

	// Glob returns the paths matching pattern, sorted.
	Glob(pattern string) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file, creating parent directories.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// AppendFile appends content to a file, creating it when missing.
	AppendFile(path m.Path, content []byte) error

	// FileInfo returns metadata for a path so the domain can check existence.
	FileInfo(path m.Path) (os.FileInfo, error)

	// MkdirAll creates a directory with all parents.
	MkdirAll(path m.Path) error

	// RemoveAll removes a path and all its contents.
	RemoveAll(path m.Path) error

	// RemoveFiles deletes the given files, ignoring the ones already gone.
	RemoveFiles(paths []m.Path) error

	// ResolveInclude finds a system header in the include directories.
	ResolveInclude(header string, dirs []string) (m.Path, bool)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the concrete SourceFSAdapter backed by the local
// filesystem and the tree-sitter C parser.
type LocalSourceFSAdapter struct {
	parser CFileAdapter
	logger *slog.Logger
}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter(parser CFileAdapter, logger *slog.Logger) *LocalSourceFSAdapter {
	if logger == nil {
		logger = slog.Default()
	}

	return &LocalSourceFSAdapter{parser: parser, logger: logger}
}

// LoadSources collects C files below root and parses them concurrently.
// Unreadable or unparsable files are skipped with a warning.
func (a *LocalSourceFSAdapter) LoadSources(ctx context.Context, root m.Path, filter string) ([]m.SourceFile, error) {
	rootPath, recursive, err := normalizeRootPath(string(root))
	if err != nil {
		return nil, err
	}

	info, err := a.FileInfo(m.Path(rootPath))
	if err != nil {
		return nil, fmt.Errorf("source root error: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("source root %s is not a directory", rootPath)
	}

	var paths []string

	err = a.Walk(m.Path(rootPath), recursive, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() || filepath.Ext(path) != ".c" {
			return nil
		}

		if filter != "" && !strings.Contains(filepath.Base(path), filter) {
			return nil
		}

		paths = append(paths, path)

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)

	parsed := make([]*m.SourceFile, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		g.Go(func() error {
			source, ok := a.processFilePath(gctx, rootPath, path)
			if ok {
				parsed[i] = &source
			}

			return gctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sources := make([]m.SourceFile, 0, len(parsed))

	for _, source := range parsed {
		if source != nil {
			sources = append(sources, *source)
		}
	}

	return sources, nil
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// FindFiles lists files under root with any of the given suffixes.
func (a *LocalSourceFSAdapter) FindFiles(root m.Path, suffixes ...string) ([]m.Path, error) {
	var found []m.Path

	err := a.Walk(root, true, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// vanished files and unreadable directories are not fatal
			return nil //nolint:nilerr
		}

		if info.IsDir() {
			return nil
		}

		for _, suffix := range suffixes {
			if strings.HasSuffix(path, suffix) {
				found = append(found, m.Path(path))
				break
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(found, func(i, j int) bool { return found[i] < found[j] })

	return found, nil
}

// Glob expands a shell pattern.
func (a *LocalSourceFSAdapter) Glob(pattern string) ([]m.Path, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	sort.Strings(matches)

	out := make([]m.Path, 0, len(matches))
	for _, match := range matches {
		out = append(out, m.Path(match))
	}

	return out, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// AppendFile appends content to path.
func (a *LocalSourceFSAdapter) AppendFile(path m.Path, content []byte) error {
	// #nosec G304 - path is inside the session output directory
	f, err := os.OpenFile(string(path), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}

	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// MkdirAll creates path and its parents.
func (a *LocalSourceFSAdapter) MkdirAll(path m.Path) error {
	return os.MkdirAll(string(path), 0o750)
}

// RemoveAll removes a directory and all its contents.
func (a *LocalSourceFSAdapter) RemoveAll(path m.Path) error {
	return os.RemoveAll(string(path))
}

// RemoveFiles deletes every path and joins the errors of the failed ones.
func (a *LocalSourceFSAdapter) RemoveFiles(paths []m.Path) error {
	var errs []error

	for _, path := range paths {
		if err := os.Remove(string(path)); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// ResolveInclude returns the first existing dir/header.
func (a *LocalSourceFSAdapter) ResolveInclude(header string, dirs []string) (m.Path, bool) {
	for _, dir := range dirs {
		candidate := filepath.Join(dir, header)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return m.Path(candidate), true
		}
	}

	return "", false
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if strings.HasSuffix(rootStr, "/...") {
		return strings.TrimSuffix(rootStr, "/..."), true
	}

	return rootStr, false
}

func (a *LocalSourceFSAdapter) processFilePath(ctx context.Context, root, path string) (m.SourceFile, bool) {
	src, err := a.ReadFile(m.Path(path))
	if err != nil {
		a.logger.Warn("skipping unreadable source", slog.String("file", path), slog.String("error", err.Error()))
		return m.SourceFile{}, false
	}

	tree, err := a.parser.Parse(ctx, src)
	if err != nil {
		a.logger.Warn("skipping unparsable source", slog.String("file", path), slog.String("error", err.Error()))
		return m.SourceFile{}, false
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = filepath.Base(path)
	}

	return m.SourceFile{
		Path:    m.Path(path),
		Rel:     rel,
		Name:    filepath.Base(path),
		Content: src,
		Tree:    tree,
	}, true
}
