package controller

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	if _, ok := NewUI(cmd, true).(*TUI); !ok {
		t.Fatalf("NewUI(cmd, true) did not return *TUI")
	}

	if _, ok := NewUI(cmd, false).(*SimpleUI); !ok {
		t.Fatalf("NewUI(cmd, false) did not return *SimpleUI")
	}
}

func TestIsTTY(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Fatalf("IsTTY(buffer) = true, want false")
	}

	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	if IsTTY(f) {
		t.Fatalf("IsTTY(regular file) = true, want false")
	}
}
