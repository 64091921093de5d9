package controller

import (
	"fmt"
	"time"

	m "github.com/anonymousfse26/orbis/internal/model"
)

// Message types.
type extractionMsg struct {
	program   string
	options   []optionItem
	branches  int
	shortOnly []string
}

type sessionInfoMsg struct {
	info m.SessionInfo
}

type iterationStartMsg struct {
	iteration int
	key       m.CombinationKey
	args      []string
	budget    time.Duration
}

type iterationResultMsg struct {
	record m.IterationRecord
}

type summaryMsg struct {
	summary m.Summary
}

// recordsMsg replays a finished session into the session model.
type recordsMsg struct {
	records []m.IterationRecord
}

// List item types.
type optionItem struct {
	name      string
	short     string
	branches  int
	variables []string
}

func (o optionItem) FilterValue() string {
	return o.name + " " + o.short
}

type iterationItem struct {
	record m.IterationRecord
}

func (i iterationItem) FilterValue() string {
	return fmt.Sprintf("%d %s %s", i.record.Iteration, i.record.Combination, i.record.EngineStatus)
}

func newExtractionMsg(obm *m.OptionBranchMap) extractionMsg {
	msg := extractionMsg{
		program:   obm.Program,
		branches:  len(obm.AllBranches()),
		shortOnly: obm.ShortOnly,
	}

	for _, name := range obm.Names() {
		opt := obm.Options[name]
		msg.options = append(msg.options, optionItem{
			name:      name,
			short:     opt.ShortSpelling(),
			branches:  len(obm.Branches[name]),
			variables: opt.Variables,
		})
	}

	return msg
}
