// Package controller provides output adapters for displaying extraction
// results and testing progress.
package controller

import (
	"time"

	m "github.com/anonymousfse26/orbis/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeExtract StartMode = iota
	ModeRun
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithExtractMode sets the UI to option extraction mode.
func WithExtractMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeExtract
	}
}

// WithRunMode sets the UI to testing session mode.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

// WithViewMode sets the UI to record viewing mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// UI defines the interface for reporting extraction and testing progress.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayExtraction(obm *m.OptionBranchMap, err error) error
	DisplaySessionInfo(info m.SessionInfo)
	DisplayIterationStart(iteration int, key m.CombinationKey, args []string, budget time.Duration)
	DisplayIterationResult(record m.IterationRecord)
	DisplaySummary(summary m.Summary) error
	DisplayRecords(records []m.IterationRecord, err error) error
}
