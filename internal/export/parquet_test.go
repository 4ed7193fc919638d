package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/reader"

	"github.com/kinsyudev/dcentralabs-assignment/internal/amm"
)

func TestWriteRounds(t *testing.T) {
	rounds := []amm.SwapResult{
		{Input: 100, Bridged: 40, Output: 120, Profit: 20, Direction: amm.DirectionBuyOnA},
		{Input: 50, Bridged: 19, Output: 55, Profit: 5, Direction: amm.DirectionBuyOnB},
	}

	path := filepath.Join(t.TempDir(), "rounds.parquet")
	require.NoError(t, WriteRounds(path, rounds))

	fr, err := local.NewLocalFileReader(path)
	require.NoError(t, err)
	defer fr.Close()

	pr, err := reader.NewParquetReader(fr, new(RoundRow), 2)
	require.NoError(t, err)
	defer pr.ReadStop()

	require.Equal(t, int64(2), pr.GetNumRows())

	rows := make([]RoundRow, 2)
	require.NoError(t, pr.Read(&rows))
	require.Equal(t, int32(0), rows[0].Round)
	require.Equal(t, 100.0, rows[0].Input)
	require.Equal(t, 5.0, rows[1].Profit)
}

func TestWriteRoundsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.parquet")
	require.NoError(t, WriteRounds(path, nil))

	fr, err := local.NewLocalFileReader(path)
	require.NoError(t, err)
	defer fr.Close()

	pr, err := reader.NewParquetReader(fr, new(RoundRow), 2)
	require.NoError(t, err)
	defer pr.ReadStop()

	require.Equal(t, int64(0), pr.GetNumRows())
}
