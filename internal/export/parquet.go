package export

import (
	"fmt"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/kinsyudev/dcentralabs-assignment/internal/amm"
)

// RoundRow is the parquet row schema for one simulated round.
type RoundRow struct {
	Round     int32   `parquet:"name=round, type=INT32"`
	Direction string  `parquet:"name=direction, type=BYTE_ARRAY, convertedtype=UTF8"`
	Input     float64 `parquet:"name=input, type=DOUBLE"`
	Bridged   float64 `parquet:"name=bridged, type=DOUBLE"`
	Output    float64 `parquet:"name=output, type=DOUBLE"`
	Profit    float64 `parquet:"name=profit, type=DOUBLE"`
}

// WriteRounds exports a simulation's rounds to a parquet file for offline
// analysis.
func WriteRounds(path string, rounds []amm.SwapResult) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("create parquet file: %w", err)
	}

	pw, err := writer.NewParquetWriter(fw, new(RoundRow), 2)
	if err != nil {
		fw.Close()
		return fmt.Errorf("create parquet writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for i, round := range rounds {
		row := RoundRow{
			Round:     int32(i),
			Direction: round.Direction.String(),
			Input:     round.Input,
			Bridged:   round.Bridged,
			Output:    round.Output,
			Profit:    round.Profit,
		}
		if err := pw.Write(row); err != nil {
			fw.Close()
			return fmt.Errorf("write round %d: %w", i, err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		fw.Close()
		return fmt.Errorf("finalise parquet file: %w", err)
	}

	return fw.Close()
}
