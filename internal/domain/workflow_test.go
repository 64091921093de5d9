package domain

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/anonymousfse26/orbis/internal/adapter"
	adaptermocks "github.com/anonymousfse26/orbis/internal/adapter/mocks"
	"github.com/anonymousfse26/orbis/internal/config"
	controllermocks "github.com/anonymousfse26/orbis/internal/controller/mocks"
	m "github.com/anonymousfse26/orbis/internal/model"
)

func minigrepConfig(t *testing.T) config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Program = "minigrep"
	cfg.GcovBinary = filepath.Join(fixtureDir("minigrep"), "minigrep")
	cfg.DataDir = t.TempDir()
	cfg.IncludeDirs = []string{fixtureDir("include")}

	return cfg
}

func TestWorkflow_ExtractFromHelpThenReuse(t *testing.T) {
	parser := adapter.NewTreeSitterCAdapter()
	fs := adapter.NewLocalSourceFSAdapter(parser, nil)
	runner := adaptermocks.NewMockProcessRunner(t)
	ui := controllermocks.NewMockUI(t)
	cfg := minigrepConfig(t)

	help, err := os.ReadFile(fixtureDir("minigrep", "help.txt"))
	require.NoError(t, err)

	runner.EXPECT().Run(mock.Anything, adapter.Command{
		Name:    cfg.GcovBinary,
		Args:    []string{"--help"},
		Timeout: config.Seconds(cfg.Extraction.HelpTimeout),
	}).Return(adapter.ProcessResult{Status: m.StatusOK, Stdout: help}, nil).Once()

	var extracted []*m.OptionBranchMap

	ui.EXPECT().Start(mock.Anything).Return(nil)
	ui.EXPECT().Close().Return()
	ui.EXPECT().DisplayExtraction(mock.Anything, nil).
		RunAndReturn(func(obm *m.OptionBranchMap, _ error) error {
			extracted = append(extracted, obm)
			return nil
		})

	wf := NewWorkflow(fs, parser, runner, adapter.NewBranchMapStore(), nil, ui, nil)

	require.NoError(t, wf.Extract(context.Background(), ExtractArgs{Config: cfg}))
	assert.FileExists(t, cfg.BranchMapPath())

	// the persisted map is reused without running the program again
	require.NoError(t, wf.Extract(context.Background(), ExtractArgs{Config: cfg}))

	require.Len(t, extracted, 2)
	assert.ElementsMatch(t, []string{"count", "help", "ignore-case", "line-number", "output"}, extracted[0].Names())
	assert.Equal(t, extracted[0].Branches, extracted[1].Branches)
}

func TestWorkflow_ExtractFromCatalog(t *testing.T) {
	parser := adapter.NewTreeSitterCAdapter()
	fs := adapter.NewLocalSourceFSAdapter(parser, nil)
	ui := controllermocks.NewMockUI(t)

	cfg := minigrepConfig(t)
	cfg.OptionCatalog = filepath.Join(t.TempDir(), "minigrep.dict")
	require.NoError(t, os.WriteFile(cfg.OptionCatalog, []byte("# minigrep\n-c, --count\n"), 0o600))

	ui.EXPECT().Start(mock.Anything).Return(nil)
	ui.EXPECT().Close().Return()
	ui.EXPECT().DisplayExtraction(mock.Anything, nil).
		RunAndReturn(func(obm *m.OptionBranchMap, _ error) error {
			assert.Equal(t, []string{"count"}, obm.Names())
			assert.Equal(t, "c", obm.Options["count"].Short)
			assert.NotEmpty(t, obm.Branches["count"])

			return nil
		})

	wf := NewWorkflow(fs, parser, adaptermocks.NewMockProcessRunner(t), adapter.NewBranchMapStore(), nil, ui, nil)

	require.NoError(t, wf.Extract(context.Background(), ExtractArgs{Config: cfg, Force: true}))
}

func TestWorkflow_ExtractValidation(t *testing.T) {
	wf := NewWorkflow(nil, nil, nil, nil, nil, controllermocks.NewMockUI(t), nil)

	err := wf.Extract(context.Background(), ExtractArgs{Config: config.Default()})
	require.ErrorIs(t, err, config.ErrMissingArgument)
}

func TestWorkflow_RunValidation(t *testing.T) {
	wf := NewWorkflow(nil, nil, nil, nil, nil, controllermocks.NewMockUI(t), nil)

	cfg := config.Default()
	cfg.Program = "minigrep"

	err := wf.Run(context.Background(), RunArgs{Config: cfg})
	require.ErrorIs(t, err, config.ErrMissingArgument)
}

func TestWorkflow_RunWithoutOptions(t *testing.T) {
	branches := adaptermocks.NewMockBranchMapStore(t)

	cfg := minigrepConfig(t)
	cfg.Budget = 60
	cfg.Bitcode = "minigrep.bc"

	path := m.Path(cfg.BranchMapPath())
	branches.EXPECT().Exists(path).Return(true)
	branches.EXPECT().Load(path).Return(m.NewOptionBranchMap("minigrep"), nil)

	wf := NewWorkflow(nil, nil, nil, branches, nil, controllermocks.NewMockUI(t), nil)

	err := wf.Run(context.Background(), RunArgs{Config: cfg})
	require.ErrorIs(t, err, ErrNoOptions)
}

func TestWorkflow_View(t *testing.T) {
	records := adaptermocks.NewMockReportStore(t)
	ui := controllermocks.NewMockUI(t)
	fs := adapter.NewLocalSourceFSAdapter(adapter.NewTreeSitterCAdapter(), nil)

	want := []m.IterationRecord{{Iteration: 1, TotalCoverage: 3}}

	records.EXPECT().LoadRecords(m.Path(filepath.Join("ORBIS_TEST", "records"))).Return(want, nil)
	ui.EXPECT().Start(mock.Anything).Return(nil)
	ui.EXPECT().Close().Return()
	ui.EXPECT().DisplayRecords(want, nil).Return(nil)

	wf := NewWorkflow(fs, nil, nil, nil, records, ui, nil)

	require.NoError(t, wf.View(ViewArgs{OutputDir: "ORBIS_TEST"}))
}
