package search

import "cmp"

// Cost is the constraint satisfied by path costs and heuristic estimates.
// The zero value is the additive identity and + is the addition.
//
// Costs are compared with [cmp.Compare], which orders floating-point NaN
// before every other value and equal to itself. Float costs are therefore
// totally ordered without a wrapper type.
type Cost interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// compareCost returns -1, 0 or +1 following the total order on C.
func compareCost[C Cost](a, b C) int {
	return cmp.Compare(a, b)
}
