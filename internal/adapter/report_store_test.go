package adapter

import (
	"path/filepath"
	"testing"
	"time"

	m "github.com/anonymousfse26/orbis/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportStore_SaveThenLoad(t *testing.T) {
	dir := m.Path(filepath.Join(t.TempDir(), "records"))
	rs := NewReportStore(nil)

	records := []m.IterationRecord{
		{
			Iteration:     10,
			Combination:   m.NewCombinationKey("count", "ignore-case"),
			Arguments:     []string{"--count", "--ignore-case"},
			Budget:        240 * time.Second,
			Runtime:       200 * time.Second,
			EngineStatus:  m.StatusTimedOut,
			TestInputs:    4,
			Covered:       3,
			NewlyCovered:  1,
			TotalCoverage: 12,
			Bugs:          []m.Bug{{Iteration: 10, Test: "test000002", Kind: "ptr", Path: "/out/iteration-10/test000002.ptr.err"}},
		},
		{Iteration: 2, Combination: "output", Arguments: []string{"--output"}, EngineStatus: m.StatusOK},
		{Iteration: 1, Combination: "count", Arguments: []string{"-c"}, EngineStatus: m.StatusOK},
	}

	require.NoError(t, rs.SaveRecords(dir, records))

	loaded, err := rs.LoadRecords(dir)
	require.NoError(t, err)
	require.Len(t, loaded, 3)

	assert.Equal(t, []int{1, 2, 10}, []int{loaded[0].Iteration, loaded[1].Iteration, loaded[2].Iteration})
	assert.Equal(t, records[0], loaded[2])
}

func TestReportStore_SaveOverwrites(t *testing.T) {
	dir := m.Path(t.TempDir())
	rs := NewReportStore(nil)

	require.NoError(t, rs.SaveRecords(dir, []m.IterationRecord{{Iteration: 1, Covered: 1}}))
	require.NoError(t, rs.SaveRecords(dir, []m.IterationRecord{{Iteration: 1, Covered: 5}, {Iteration: 2}}))

	loaded, err := rs.LoadRecords(dir)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, 5, loaded[0].Covered)
}

func TestReportStore_Errors(t *testing.T) {
	rs := NewReportStore(nil)

	_, err := rs.LoadRecords(m.Path(filepath.Join(t.TempDir(), "missing")))
	require.Error(t, err)

	require.Error(t, rs.SaveRecords("", nil))
}

func TestRecordKey_SortsNumerically(t *testing.T) {
	assert.Less(t, string(recordKey(9)), string(recordKey(10)))
	assert.Equal(t, "iteration/00000042", string(recordKey(42)))
}
