package amm

import "math"

// PoolFeeRate is the proportional fee both pools take from the swap input
// (the uniswap v2 constant 0.3%).
const PoolFeeRate = 0.003

// minEvalGapPct guards against trading on float rounding noise: relative
// price gaps below this (in percent) are treated as no opportunity.
const minEvalGapPct = 0.001

// SwapOutput calculates the output of a constant-product swap with the fee
// taken from the input side.
func SwapOutput(amountIn, reserveIn, reserveOut, feeRate float64) (float64, error) {
	if reserveIn <= 0 {
		return 0, &InvalidReserveError{Name: "reserveIn", Value: reserveIn}
	}
	if reserveOut <= 0 {
		return 0, &InvalidReserveError{Name: "reserveOut", Value: reserveOut}
	}

	effectiveIn := amountIn * (1 - feeRate)
	return effectiveIn * reserveOut / (reserveIn + effectiveIn), nil
}

// Price quotes the pool's token price in stable units (the reserve ratio).
func Price(stableReserve, otherReserve float64) (float64, error) {
	if otherReserve <= 0 {
		return 0, &InvalidReserveError{Name: "otherReserve", Value: otherReserve}
	}
	return stableReserve / otherReserve, nil
}

// PriceGapPct returns the relative price difference between two pools in
// percent. The abs(a-b)/min(a,b) form keeps precision for near-equal prices.
func PriceGapPct(a, b float64) float64 {
	return math.Abs(a-b) / math.Min(a, b) * 100
}

// OptimalInput solves for the stable input in the source pool that maximizes
// the round-trip profit out(out(x)) - x across two constant-product pools,
// ignoring fees. The fee loss is second-order and absorbed by re-evaluating
// the sized trade exactly with SwapOutput.
//
// Result can be zero or negative when the source pool is not the cheap side;
// callers must check the sign before using it.
func OptimalInput(srcStable, srcOther, dstStable, dstOther float64) float64 {
	ratioSrc := srcStable / srcOther
	ratioDst := dstStable / dstOther
	gamma := math.Sqrt(ratioDst / ratioSrc)
	return srcStable * (gamma - 1) / (gamma + 1)
}
