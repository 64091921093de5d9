package controller

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestOptionModel_Lifecycle(t *testing.T) {
	model := newOptionModel()

	if cmd := model.Init(); cmd == nil {
		t.Fatalf("Init() returned nil")
	}

	if view := model.View(); !strings.Contains(view, "Extracting options") {
		t.Fatalf("View() before data = %q", view)
	}

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	model = updated.(optionModel)

	updated, _ = model.Update(newExtractionMsg(testOptionBranchMap()))
	model = updated.(optionModel)

	view := model.View()
	for _, want := range []string{"Orbis Option Extraction", "minigrep", "count", "help", "Short-only"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q:\n%s", want, view)
		}
	}

	if got := len(model.optionList.Items()); got != 2 {
		t.Fatalf("items = %d, want 2", got)
	}

	updated, cmd := model.Update(tickMsg(time.Now()))
	model = updated.(optionModel)
	if cmd == nil {
		t.Fatalf("tick did not schedule the next tick")
	}

	if model.animOffset != 1 {
		t.Fatalf("animOffset = %d, want 1", model.animOffset)
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model = updated.(optionModel)

	if model.lastSelected != 1 || model.animOffset != 0 {
		t.Fatalf("selection change: lastSelected=%d animOffset=%d", model.lastSelected, model.animOffset)
	}

	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("q did not return a command")
	}

	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q did not quit")
	}
}

func TestOptionModel_Error(t *testing.T) {
	model := newOptionModel()

	updated, _ := model.Update(errors.New("no help text"))
	model = updated.(optionModel)

	if view := model.View(); !strings.Contains(view, "extraction error: no help text") {
		t.Fatalf("View() = %q", view)
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"ignore-case", 6, "ignor…"},
		{"abc", 0, ""},
		{"abc", 1, "…"},
	}

	for _, tt := range tests {
		if got := truncateToWidth(tt.text, tt.width); got != tt.want {
			t.Fatalf("truncateToWidth(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestAnimateScroll(t *testing.T) {
	if got := animateScroll("fits", 10, 20); got != "fits" {
		t.Fatalf("animateScroll() = %q, want fits", got)
	}

	if got := animateScroll("line-number", 5, 0); got != "line…" {
		t.Fatalf("animateScroll() before pause = %q", got)
	}

	if got := animateScroll("line-number", 5, 7); got != "ne-nu" {
		t.Fatalf("animateScroll() after pause = %q, want ne-nu", got)
	}
}
