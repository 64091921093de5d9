package controller

import (
	"bytes"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type quitModel struct{}

func (q quitModel) Init() tea.Cmd { return tea.Quit }
func (q quitModel) Update(_ tea.Msg) (tea.Model, tea.Cmd) {
	return q, tea.Quit
}
func (q quitModel) View() string { return "" }

func waitWithin(t *testing.T, fn func(), d time.Duration) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		fn()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(d):
		t.Fatal("timed out")
	}
}

func TestTUI_StartWithModel_WaitAndClose(t *testing.T) {
	var buf bytes.Buffer

	tui := NewTUI(&buf)
	tui.input = &bytes.Buffer{}

	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("startWithModel error = %v", err)
	}

	// second start is a no-op
	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("second startWithModel error = %v", err)
	}

	tui.send(sessionInfoMsg{})

	waitWithin(t, tui.Wait, 2*time.Second)
	waitWithin(t, tui.Close, 2*time.Second)

	if err := tui.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
}

func TestTUI_SendBeforeStart_NoPanic(t *testing.T) {
	tui := NewTUI(&bytes.Buffer{})

	tui.send(sessionInfoMsg{})
	tui.Wait()
}

func TestTUI_DisplayExtractionError(t *testing.T) {
	tui := NewTUI(&bytes.Buffer{})
	tui.input = &bytes.Buffer{}
	// a started program that quits at once swallows further messages
	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("startWithModel error = %v", err)
	}

	wantErr := errors.New("boom")
	if err := tui.DisplayExtraction(nil, wantErr); !errors.Is(err, wantErr) {
		t.Fatalf("DisplayExtraction() error = %v, want %v", err, wantErr)
	}

	if err := tui.DisplayRecords(nil, wantErr); !errors.Is(err, wantErr) {
		t.Fatalf("DisplayRecords() error = %v, want %v", err, wantErr)
	}

	waitWithin(t, tui.Wait, 2*time.Second)
}
