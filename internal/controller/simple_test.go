package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	m "github.com/anonymousfse26/orbis/internal/model"
	"github.com/spf13/cobra"
)

func newBufferedSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func testOptionBranchMap() *m.OptionBranchMap {
	obm := m.NewOptionBranchMap("minigrep")
	obm.Options["count"] = m.Option{Name: "count", Short: "c", Variables: []string{"count_matches"}}
	obm.Options["help"] = m.Option{Name: "help"}
	obm.Branches["count"] = m.NewBranchSet(
		m.BranchID{File: "minigrep.c", Line: 55},
		m.BranchID{File: "minigrep.c", Line: 87},
	)
	obm.Branches["help"] = m.NewBranchSet(m.BranchID{File: "minigrep.c", Line: 64})
	obm.ShortOnly = []string{"V"}

	return obm
}

func testRecords() []m.IterationRecord {
	return []m.IterationRecord{
		{
			Iteration:     1,
			Budget:        120 * time.Second,
			Elapsed:       120 * time.Second,
			EngineStatus:  m.StatusOK,
			TestInputs:    4,
			Covered:       10,
			NewlyCovered:  10,
			TotalCoverage: 10,
		},
		{
			Iteration:     2,
			Combination:   m.NewCombinationKey("count", "help"),
			Arguments:     []string{"--count", "--help"},
			Budget:        120 * time.Second,
			Elapsed:       241 * time.Second,
			EngineStatus:  m.StatusTimedOut,
			TestInputs:    2,
			Covered:       8,
			NewlyCovered:  3,
			TotalCoverage: 13,
			Bugs:          []m.Bug{{Iteration: 2, Test: "test000002", Kind: "ptr", Path: "out/2/test000002.ptr.err"}},
		},
	}
}

func TestSimpleUI_DisplayExtraction(t *testing.T) {
	ui, buf := newBufferedSimpleUI()

	if err := ui.DisplayExtraction(testOptionBranchMap(), nil); err != nil {
		t.Fatalf("DisplayExtraction() error = %v", err)
	}

	out := strings.ToLower(buf.String())
	for _, want := range []string{"option", "branches", "count", "-c", "count_matches", "help", "total options 2", "short-only options: v"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSimpleUI_DisplayExtractionError(t *testing.T) {
	ui, buf := newBufferedSimpleUI()
	wantErr := errors.New("boom")

	if err := ui.DisplayExtraction(nil, wantErr); !errors.Is(err, wantErr) {
		t.Fatalf("DisplayExtraction() error = %v, want %v", err, wantErr)
	}

	if !strings.Contains(buf.String(), "extraction error: boom") {
		t.Fatalf("output = %q", buf.String())
	}
}

func TestSimpleUI_Iterations(t *testing.T) {
	ui, buf := newBufferedSimpleUI()

	ui.DisplaySessionInfo(m.SessionInfo{
		Program:     "minigrep",
		Options:     5,
		Branches:    12,
		TotalBudget: 600 * time.Second,
		InitBudget:  120 * time.Second,
		OutputDir:   "ORBIS_TEST",
	})
	ui.DisplayIterationStart(1, "", nil, 120*time.Second)
	ui.DisplayIterationStart(2, m.NewCombinationKey("help", "count"), []string{"--count", "-h"}, 240*time.Second)
	ui.DisplayIterationResult(testRecords()[1])

	out := buf.String()
	for _, want := range []string{
		"Testing minigrep: 5 options, 12 option branches",
		"Budget 600s (initial 120s), output ORBIS_TEST",
		"[1] (none) for 120s: (no arguments)",
		"[2] count,help for 240s: --count -h",
		"[2] timed-out, 2 inputs, covered 8 (+3), total 13, bugs 1",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	ui, buf := newBufferedSimpleUI()

	summary := m.Summary{
		Program:    "minigrep",
		Iterations: 2,
		Elapsed:    241 * time.Second,
		Coverage:   m.NewBranchSet(m.BranchID{File: "minigrep.c", Line: 55}),
		Bugs:       testRecords()[1].Bugs,
		Options: []m.OptionStats{
			{Name: "count", Branches: 2, Uncovered: 1, Selected: 3, Failures: 1},
		},
	}

	if err := ui.DisplaySummary(summary); err != nil {
		t.Fatalf("DisplaySummary() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"minigrep: 2 iterations in 241s, 1 branches covered, 1 bugs",
		"UNCOVERED",
		"count",
		"test000002",
		"ptr",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSimpleUI_DisplayRecords(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		ui, buf := newBufferedSimpleUI()

		if err := ui.DisplayRecords(testRecords(), nil); err != nil {
			t.Fatalf("DisplayRecords() error = %v", err)
		}

		out := buf.String()
		for _, want := range []string{"COMBINATION", "(none)", "count,help", "timed-out", "241", "13", "out/2/test000002.ptr.err"} {
			if !strings.Contains(out, want) {
				t.Fatalf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("empty", func(t *testing.T) {
		ui, buf := newBufferedSimpleUI()

		if err := ui.DisplayRecords(nil, nil); err != nil {
			t.Fatalf("DisplayRecords() error = %v", err)
		}

		if !strings.Contains(buf.String(), "no iteration records") {
			t.Fatalf("output = %q", buf.String())
		}
	})

	t.Run("error", func(t *testing.T) {
		ui, buf := newBufferedSimpleUI()
		wantErr := errors.New("locked")

		if err := ui.DisplayRecords(nil, wantErr); !errors.Is(err, wantErr) {
			t.Fatalf("DisplayRecords() error = %v, want %v", err, wantErr)
		}

		if !strings.Contains(buf.String(), "records error: locked") {
			t.Fatalf("output = %q", buf.String())
		}
	})
}
