package controller

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	m "github.com/anonymousfse26/orbis/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd  *cobra.Command
	mode StartMode
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	cfg := &StartConfig{}
	for _, option := range options {
		option(cfg)
	}

	s.mode = cfg.mode

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; plain output has nothing to wait for.
func (s *SimpleUI) Wait() {}

// DisplayExtraction prints the extracted options and their branch counts.
func (s *SimpleUI) DisplayExtraction(obm *m.OptionBranchMap, err error) error {
	if err != nil {
		s.printf("extraction error: %v\n", err)
		return err
	}

	if obm == nil {
		return nil
	}

	var buf bytes.Buffer

	table := newTable(&buf, []string{"Option", "Short", "Branches", "Variables"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
	})

	for _, name := range obm.Names() {
		opt := obm.Options[name]
		table.Append([]string{
			name,
			opt.ShortSpelling(),
			fmt.Sprintf("%d", len(obm.Branches[name])),
			strings.Join(opt.Variables, ", "),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Options %d", len(obm.Options)),
		"",
		fmt.Sprintf("%d", len(obm.AllBranches())),
		"",
	})

	s.render(table, &buf)

	if len(obm.ShortOnly) > 0 {
		s.printf("short-only options: %s\n", strings.Join(obm.ShortOnly, " "))
	}

	return nil
}

// DisplaySessionInfo prints the session parameters.
func (s *SimpleUI) DisplaySessionInfo(info m.SessionInfo) {
	s.printf("Testing %s: %d options, %d option branches\n", info.Program, info.Options, info.Branches)
	s.printf("Budget %s (initial %s), output %s\n",
		formatSeconds(info.TotalBudget), formatSeconds(info.InitBudget), info.OutputDir)
}

// DisplayIterationStart prints the combination about to be tested.
func (s *SimpleUI) DisplayIterationStart(iteration int, key m.CombinationKey, args []string, budget time.Duration) {
	s.printf("[%d] %s for %s: %s\n", iteration, displayKey(key), formatSeconds(budget), displayArgs(args))
}

// DisplayIterationResult prints the outcome of one iteration.
func (s *SimpleUI) DisplayIterationResult(record m.IterationRecord) {
	s.printf("[%d] %s, %d inputs, covered %d (+%d), total %d, bugs %d\n",
		record.Iteration,
		record.EngineStatus,
		record.TestInputs,
		record.Covered,
		record.NewlyCovered,
		record.TotalCoverage,
		len(record.Bugs),
	)
}

// DisplaySummary prints the final session figures.
func (s *SimpleUI) DisplaySummary(summary m.Summary) error {
	s.printf("\n%s: %d iterations in %s, %d branches covered, %d bugs\n",
		summary.Program,
		summary.Iterations,
		formatSeconds(summary.Elapsed),
		len(summary.Coverage),
		len(summary.Bugs),
	)

	if len(summary.Options) > 0 {
		var buf bytes.Buffer

		table := newTable(&buf, []string{"Option", "Branches", "Uncovered", "Selected", "Failures"})
		for _, stats := range summary.Options {
			table.Append([]string{
				stats.Name,
				fmt.Sprintf("%d", stats.Branches),
				fmt.Sprintf("%d", stats.Uncovered),
				fmt.Sprintf("%.0f", stats.Selected),
				fmt.Sprintf("%.0f", stats.Failures),
			})
		}

		s.render(table, &buf)
	}

	if len(summary.Bugs) > 0 {
		s.printBugs(summary.Bugs)
	}

	return nil
}

// DisplayRecords prints the iteration records of a finished session.
func (s *SimpleUI) DisplayRecords(records []m.IterationRecord, err error) error {
	if err != nil {
		s.printf("records error: %v\n", err)
		return err
	}

	if len(records) == 0 {
		s.printf("no iteration records\n")
		return nil
	}

	var buf bytes.Buffer

	table := newTable(&buf, []string{"Iter", "Combination", "Budget", "Status", "Inputs", "Covered", "New", "Total", "Bugs"})

	var bugs []m.Bug

	for _, record := range records {
		table.Append([]string{
			fmt.Sprintf("%d", record.Iteration),
			displayKey(record.Combination),
			formatSeconds(record.Budget),
			string(record.EngineStatus),
			fmt.Sprintf("%d", record.TestInputs),
			fmt.Sprintf("%d", record.Covered),
			fmt.Sprintf("%d", record.NewlyCovered),
			fmt.Sprintf("%d", record.TotalCoverage),
			fmt.Sprintf("%d", len(record.Bugs)),
		})

		bugs = append(bugs, record.Bugs...)
	}

	last := records[len(records)-1]
	table.SetFooter([]string{
		fmt.Sprintf("%d", len(records)), "", formatSeconds(last.Elapsed), "", "", "", "",
		fmt.Sprintf("%d", last.TotalCoverage), fmt.Sprintf("%d", len(bugs)),
	})

	s.render(table, &buf)

	if len(bugs) > 0 {
		s.printBugs(bugs)
	}

	return nil
}

func (s *SimpleUI) printBugs(bugs []m.Bug) {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Iter", "Test", "Kind", "Path"})
	for _, bug := range bugs {
		table.Append([]string{fmt.Sprintf("%d", bug.Iteration), bug.Test, bug.Kind, string(bug.Path)})
	}

	s.render(table, &buf)
}

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}

func (s *SimpleUI) render(table *tablewriter.Table, buf *bytes.Buffer) {
	table.Render()
	s.printf("\n%s", buf.String())
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%ds", int(d.Round(time.Second)/time.Second))
}

func displayKey(key m.CombinationKey) string {
	if key.IsEmpty() {
		return "(none)"
	}

	return strings.ReplaceAll(string(key), " ", ",")
}

func displayArgs(args []string) string {
	if len(args) == 0 {
		return "(no arguments)"
	}

	return strings.Join(args, " ")
}
