// Package model defines the data structures shared by the option-guided
// testing loop.
package model

import "path/filepath"

// Path represents a file system path.
type Path string

// Base returns the last element of the path.
func (p Path) Base() string {
	return filepath.Base(string(p))
}

// SourceFile is a C translation unit of the program under test together with
// its parsed syntax tree. Content and Tree are never modified after loading.
type SourceFile struct {
	// Path is the absolute location on disk.
	Path Path
	// Rel is the path relative to the source root.
	Rel string
	// Name is the base name; it is the file component of every BranchID.
	Name    string
	Content []byte
	Tree    *SyntaxTree
}
