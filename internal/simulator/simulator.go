package simulator

import (
	"github.com/kinsyudev/dcentralabs-assignment/internal/amm"
)

// StopReason explains why a simulation stopped adding rounds.
type StopReason string

const (
	StopOpportunityExhausted StopReason = "opportunity exhausted"
	StopNoProfitableTrade    StopReason = "no profitable trade"
	StopRoundCapReached      StopReason = "round cap reached"
)

// Result aggregates the executed rounds of one simulation: the per-round
// results in execution order, the running totals, and the reserve snapshot
// left after the last round. Zero rounds with a nil error means the market
// had nothing to take, not that the simulation failed.
type Result struct {
	Rounds []amm.SwapResult

	TotalInput   float64
	TotalBridged float64
	TotalOutput  float64
	TotalProfit  float64

	Final      amm.Snapshot
	StopReason StopReason
}

// Simulate repeatedly sizes and applies optimal arbitrage rounds against an
// in-memory copy of both pools' reserves until the relative price gap falls
// below minPriceGapPct (percent), a round stops being profitable after fees,
// or maxRounds is reached. The initial snapshot is validated up front: a
// non-positive reserve is a malformed input and fails with
// amm.InvalidReserveError rather than surfacing as a division error deep in
// the swap math.
func Simulate(initial amm.Snapshot, maxRounds int, minPriceGapPct float64) (*Result, error) {
	if err := validateSnapshot(initial); err != nil {
		return nil, err
	}

	// value copy; the loop never aliases caller state
	snap := initial

	res := &Result{
		Rounds:     make([]amm.SwapResult, 0),
		Final:      snap,
		StopReason: StopRoundCapReached,
	}

	for i := 0; i < maxRounds; i++ {
		priceA, err := amm.Price(snap.PoolA.Stable, snap.PoolA.Other)
		if err != nil {
			return nil, err
		}
		priceB, err := amm.Price(snap.PoolB.Stable, snap.PoolB.Other)
		if err != nil {
			return nil, err
		}

		if amm.PriceGapPct(priceA, priceB) < minPriceGapPct {
			res.StopReason = StopOpportunityExhausted
			break
		}

		round, err := amm.EvaluateRound(snap)
		if err != nil {
			return nil, err
		}
		if round.Profit <= 0 {
			res.StopReason = StopNoProfitableTrade
			break
		}

		snap = snap.Apply(round)

		res.Rounds = append(res.Rounds, round)
		res.TotalInput += round.Input
		res.TotalBridged += round.Bridged
		res.TotalOutput += round.Output
		res.TotalProfit += round.Profit
		res.Final = snap
	}

	return res, nil
}

func validateSnapshot(snap amm.Snapshot) error {
	checks := []struct {
		name  string
		value float64
	}{
		{"poolA.stable", snap.PoolA.Stable},
		{"poolA.other", snap.PoolA.Other},
		{"poolB.stable", snap.PoolB.Stable},
		{"poolB.other", snap.PoolB.Other},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return &amm.InvalidReserveError{Name: c.name, Value: c.value}
		}
	}
	return nil
}
