package amm

import "fmt"

// InvalidReserveError reports a reserve that is zero or negative where the
// constant-product math requires a positive value. A pool in this state is
// malformed or empty; sizing a trade against it is undefined.
type InvalidReserveError struct {
	Name  string
	Value float64
}

func (e *InvalidReserveError) Error() string {
	return fmt.Sprintf("invalid reserve %s: %v (must be positive)", e.Name, e.Value)
}
