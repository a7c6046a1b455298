package game

import "math/rand"

// ThieveGold is the loot for an unnoticed theft, scaled to the thief's
// level and capped so low-level towns stay poor.
func ThieveGold(level int, rng *rand.Rand) int {
	min := clampInt(level, 10, 20)
	return randBetween(rng, min, minInt(min*3, 40))
}

// InterfereGold is what a caught thief drops when a sentinel interferes.
func InterfereGold(level int, rng *rand.Rand) int {
	min := clampInt(level, 5, 10)
	return randBetween(rng, min, min*2)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
