package game

import "math/rand/v2"

// pickOne selects one element with uniform probability. Callers must check
// emptiness first where an empty pool is semantically valid (a champion with
// no configured skills means no selection, not an error).
func pickOne[T any](list []T) T {
	return list[rand.IntN(len(list))]
}
