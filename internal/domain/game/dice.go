package game

import (
	"fmt"
	"math/rand"
	"strings"
)

var diceFaces = map[int]string{
	1: "⚀", 2: "⚁", 3: "⚂", 4: "⚃", 5: "⚄", 6: "⚅",
}

// DiceRoll is one player's pair of dice.
type DiceRoll [2]int

func (r DiceRoll) Total() int { return r[0] + r[1] }

func (r DiceRoll) String() string {
	faces := make([]string, len(r))
	for i, v := range r {
		faces[i] = diceFaces[v]
	}
	return fmt.Sprintf("%s (%d)", strings.Join(faces, " + "), r.Total())
}

func rollDice(rng *rand.Rand) DiceRoll {
	return DiceRoll{1 + rng.Intn(6), 1 + rng.Intn(6)}
}

// PlayDice rolls a pair for each player, re-rolling both pairs on equal
// totals so a match never ties.
func PlayDice(rng *rand.Rand) (DiceRoll, DiceRoll) {
	a, b := rollDice(rng), rollDice(rng)
	for a.Total() == b.Total() {
		a, b = rollDice(rng), rollDice(rng)
	}
	return a, b
}
