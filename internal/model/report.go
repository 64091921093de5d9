package model

import "time"

// ProcessStatus tags the outcome of an external process invocation.
type ProcessStatus string

const (
	// StatusOK means the process exited with code 0.
	StatusOK ProcessStatus = "ok"
	// StatusTimedOut means the process was killed after its deadline.
	StatusTimedOut ProcessStatus = "timed-out"
	// StatusFailed means the process exited with a non-zero code.
	StatusFailed ProcessStatus = "failed"
)

// Bug is an error report written by the engine next to a test input.
type Bug struct {
	Iteration int    `json:"iteration"`
	Test      string `json:"test"`
	Kind      string `json:"kind"`
	Path      Path   `json:"path"`
}

// IterationRecord summarizes one pass through the testing loop.
type IterationRecord struct {
	Iteration     int            `json:"iteration"`
	Combination   CombinationKey `json:"combination"`
	Arguments     []string       `json:"arguments"`
	Budget        time.Duration  `json:"budget"`
	Runtime       time.Duration  `json:"runtime"`
	Elapsed       time.Duration  `json:"elapsed"`
	EngineStatus  ProcessStatus  `json:"engine_status"`
	TestInputs    int            `json:"test_inputs"`
	Covered       int            `json:"covered"`
	NewlyCovered  int            `json:"newly_covered"`
	TotalCoverage int            `json:"total_coverage"`
	Seeds         []Path         `json:"seeds"`
	Bugs          []Bug          `json:"bugs"`
}

// OptionStats are the per-option figures shown in the final summary.
type OptionStats struct {
	Name      string
	Branches  int
	Uncovered int
	Selected  float64
	Failures  float64
}

// Summary is the best-effort result of a whole session.
type Summary struct {
	Program    string
	Iterations int
	Elapsed    time.Duration
	Coverage   BranchSet
	Bugs       []Bug
	Options    []OptionStats
}

// SessionInfo describes a testing session as it starts.
type SessionInfo struct {
	Program     string
	Options     int
	Branches    int
	TotalBudget time.Duration
	InitBudget  time.Duration
	OutputDir   Path
}
