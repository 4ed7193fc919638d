package amm

// EvaluateRound sizes and evaluates a single buy-cheap/sell-expensive round
// on the given snapshot. The cheaper pool is the buy side. Returns the
// canonical zero result when the gap is inside the noise threshold, the
// closed form sizes to nothing, or the fee-inclusive evaluation erases the
// fee-free estimate's profit. Errors only on malformed reserves.
func EvaluateRound(snap Snapshot) (SwapResult, error) {
	priceA, err := Price(snap.PoolA.Stable, snap.PoolA.Other)
	if err != nil {
		return SwapResult{}, err
	}
	priceB, err := Price(snap.PoolB.Stable, snap.PoolB.Other)
	if err != nil {
		return SwapResult{}, err
	}

	if PriceGapPct(priceA, priceB) < minEvalGapPct {
		return SwapResult{}, nil
	}

	src, dst := snap.PoolA, snap.PoolB
	dir := DirectionBuyOnA
	if priceB < priceA {
		src, dst = snap.PoolB, snap.PoolA
		dir = DirectionBuyOnB
	}

	amount := OptimalInput(src.Stable, src.Other, dst.Stable, dst.Other)
	if amount <= 0 {
		return SwapResult{}, nil
	}

	bridged, err := SwapOutput(amount, src.Stable, src.Other, PoolFeeRate)
	if err != nil {
		return SwapResult{}, err
	}
	received, err := SwapOutput(bridged, dst.Other, dst.Stable, PoolFeeRate)
	if err != nil {
		return SwapResult{}, err
	}

	// the closed form ignores fees, so a thin gap can size a trade that the
	// exact evaluation shows losing money
	profit := received - amount
	if profit <= 0 {
		return SwapResult{}, nil
	}

	return SwapResult{
		Input:     amount,
		Bridged:   bridged,
		Output:    received,
		Profit:    profit,
		Direction: dir,
	}, nil
}
