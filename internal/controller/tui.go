package controller

import (
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/anonymousfse26/orbis/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	input   io.Reader
	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	started bool
	mode    StartMode
	runErr  error
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program for the selected mode.
func (t *TUI) Start(options ...StartOption) error {
	cfg := &StartConfig{}
	for _, option := range options {
		option(cfg)
	}

	t.mode = cfg.mode

	switch cfg.mode {
	case ModeExtract:
		return t.startWithModel(newOptionModel())
	default:
		return t.startWithModel(newSessionModel())
	}
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	opts := []tea.ProgramOption{tea.WithOutput(t.output), tea.WithAltScreen()}
	if t.input != nil {
		opts = append(opts, tea.WithInput(t.input))
	}

	t.program = tea.NewProgram(model, opts...)
	t.done = make(chan struct{})
	t.started = true

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		if _, err := program.Run(); err != nil {
			t.mu.Lock()
			t.runErr = err
			t.mu.Unlock()
		}
	}(t.program, t.done)

	return nil
}

// Close keeps the final screen open; the user quits it and Wait returns.
func (t *TUI) Close() {}

// Wait blocks until the user closes the program.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	<-done
}

// Err returns the error the Bubble Tea program exited with, if any.
func (t *TUI) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.runErr
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}

func (t *TUI) ensureStarted() {
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()

	if !started {
		_ = t.Start(func(c *StartConfig) { c.mode = t.mode })
	}
}

// DisplayExtraction shows the extracted options in a filterable list.
func (t *TUI) DisplayExtraction(obm *m.OptionBranchMap, err error) error {
	t.ensureStarted()

	if err != nil {
		t.send(err)
		return err
	}

	if obm == nil {
		return nil
	}

	t.send(newExtractionMsg(obm))

	return nil
}

// DisplaySessionInfo shows the session parameters.
func (t *TUI) DisplaySessionInfo(info m.SessionInfo) {
	t.ensureStarted()
	t.send(sessionInfoMsg{info: info})
}

// DisplayIterationStart shows the combination under test.
func (t *TUI) DisplayIterationStart(iteration int, key m.CombinationKey, args []string, budget time.Duration) {
	t.ensureStarted()
	t.send(iterationStartMsg{iteration: iteration, key: key, args: args, budget: budget})
}

// DisplayIterationResult appends a finished iteration to the results list.
func (t *TUI) DisplayIterationResult(record m.IterationRecord) {
	t.ensureStarted()
	t.send(iterationResultMsg{record: record})
}

// DisplaySummary switches the session view to its final results.
func (t *TUI) DisplaySummary(summary m.Summary) error {
	t.ensureStarted()
	t.send(summaryMsg{summary: summary})

	return nil
}

// DisplayRecords shows stored iteration records in the session view.
func (t *TUI) DisplayRecords(records []m.IterationRecord, err error) error {
	t.ensureStarted()

	if err != nil {
		// the session view has no error screen; quit it and report plainly
		t.send(tea.Quit())

		return err
	}

	t.send(recordsMsg{records: records})

	return nil
}
