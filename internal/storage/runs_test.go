package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kinsyudev/dcentralabs-assignment/internal/amm"
	"github.com/kinsyudev/dcentralabs-assignment/internal/simulator"
)

func sampleResult() *simulator.Result {
	return &simulator.Result{
		Rounds: []amm.SwapResult{
			{Input: 171572.88, Bridged: 73036.1, Output: 225567.3, Profit: 53994.42, Direction: amm.DirectionBuyOnA},
			{Input: 26177.5, Bridged: 9500.2, Output: 27820.9, Profit: 1643.4, Direction: amm.DirectionBuyOnB},
		},
		TotalInput:   197750.38,
		TotalBridged: 82536.3,
		TotalOutput:  253388.2,
		TotalProfit:  55637.82,
		StopReason:   simulator.StopNoProfitableTrade,
	}
}

func TestSaveRun(t *testing.T) {
	db, err := NewRunDB(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer db.Close()

	runID, err := db.SaveRun("USDC/ZERC", sampleResult())
	require.NoError(t, err)
	require.Greater(t, runID, int64(0))

	stats, err := db.Stats()
	require.NoError(t, err)
	require.Equal(t, int64(1), stats["runs"])
	require.Equal(t, int64(2), stats["rounds"])
}

func TestSaveRunEmptyResult(t *testing.T) {
	db, err := NewRunDB(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer db.Close()

	empty := &simulator.Result{StopReason: simulator.StopOpportunityExhausted}
	runID, err := db.SaveRun("USDC/ZERC", empty)
	require.NoError(t, err)
	require.Greater(t, runID, int64(0))

	stats, err := db.Stats()
	require.NoError(t, err)
	require.Equal(t, int64(1), stats["runs"])
	require.Equal(t, int64(0), stats["rounds"])
}

func TestSaveRunMultiple(t *testing.T) {
	db, err := NewRunDB(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer db.Close()

	first, err := db.SaveRun("USDC/ZERC", sampleResult())
	require.NoError(t, err)
	second, err := db.SaveRun("USDC/ZERC", sampleResult())
	require.NoError(t, err)
	require.Greater(t, second, first)

	stats, err := db.Stats()
	require.NoError(t, err)
	require.Equal(t, int64(2), stats["runs"])
	require.Equal(t, int64(4), stats["rounds"])
}
