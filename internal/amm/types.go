package amm

// PoolReserves holds one pool's decimal-normalized reserves of the tracked
// pair: the stable asset and the token traded against it.
type PoolReserves struct {
	Stable float64
	Other  float64
}

// Snapshot captures both pools' reserves at a single point in time. It is
// threaded by value: applying a round returns a new Snapshot and never
// mutates caller-owned state.
type Snapshot struct {
	PoolA PoolReserves
	PoolB PoolReserves
}

// Direction says which pool is the buy side of a round.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionBuyOnA
	DirectionBuyOnB
)

func (d Direction) String() string {
	switch d {
	case DirectionBuyOnA:
		return "buy on pool A, sell on pool B"
	case DirectionBuyOnB:
		return "buy on pool B, sell on pool A"
	default:
		return "none"
	}
}

// SwapResult is the outcome of a single two-leg arbitrage round. The zero
// value (DirectionNone, all amounts 0) is the canonical "no opportunity"
// result, distinct from an error.
type SwapResult struct {
	Input     float64 // stable spent in the buy pool
	Bridged   float64 // token moved from the buy pool to the sell pool
	Output    float64 // stable received from the sell pool
	Profit    float64 // Output - Input
	Direction Direction
}

// IsZero reports whether this is the canonical no-opportunity result.
func (r SwapResult) IsZero() bool {
	return r.Direction == DirectionNone
}

// Apply returns the snapshot after executing the round: the buy pool gains
// the stable input and loses the bridged token, the sell pool gains the
// bridged token and pays out the stable output. A zero result returns the
// snapshot unchanged.
func (s Snapshot) Apply(r SwapResult) Snapshot {
	switch r.Direction {
	case DirectionBuyOnA:
		s.PoolA.Stable += r.Input
		s.PoolA.Other -= r.Bridged
		s.PoolB.Stable -= r.Output
		s.PoolB.Other += r.Bridged
	case DirectionBuyOnB:
		s.PoolB.Stable += r.Input
		s.PoolB.Other -= r.Bridged
		s.PoolA.Stable -= r.Output
		s.PoolA.Other += r.Bridged
	}
	return s
}
