package game

import "math"

func levelExp(level int) float64 {
	l := float64(level)
	return 4 * l * l * l / 5
}

// RequiredExp is the experience needed to go from level-1 to level.
func RequiredExp(level int) int {
	if level < 2 {
		return 0
	}
	return int(math.Round(levelExp(level) - levelExp(level-1)))
}
