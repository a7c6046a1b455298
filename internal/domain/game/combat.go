package game

import "math/rand"

// Tactic is one choice of the three-way combat cycle: hit beats feint,
// feint beats parry, parry beats hit.
type Tactic string

const (
	TacticNone  Tactic = ""
	TacticHit   Tactic = "hit"
	TacticFeint Tactic = "feint"
	TacticParry Tactic = "parry"
)

func Tactics() []Tactic {
	return []Tactic{TacticHit, TacticFeint, TacticParry}
}

func ParseTactic(s string) (Tactic, bool) {
	switch Tactic(s) {
	case TacticHit, TacticFeint, TacticParry:
		return Tactic(s), true
	}
	return TacticNone, false
}

type Outcome int

const (
	OutcomeTie Outcome = iota
	OutcomeWin
	OutcomeLoss
)

var beats = map[Tactic]Tactic{
	TacticHit:   TacticFeint,
	TacticFeint: TacticParry,
	TacticParry: TacticHit,
}

// Duel resolves a player tactic against a monster tactic.
func Duel(player, monster Tactic) Outcome {
	switch {
	case player == monster:
		return OutcomeTie
	case beats[player] == monster:
		return OutcomeWin
	default:
		return OutcomeLoss
	}
}

// BattleReport holds the tactic pair and the signed deltas of a
// player's last world battle. One slot per player, overwritten each
// battle.
type BattleReport struct {
	Tactic        Tactic
	MonsterTactic Tactic
	Exp           int
	Gold          int
	HP            int
}

// BattleOutcome is one player's computed clash result, before it is
// applied to state. Damage is the hit points to remove; the caller
// applies it (and the exp) and fills Report.HP with the effective loss.
type BattleOutcome struct {
	Report  BattleReport
	Victory bool
	Damage  int
}

// ResolveBattle draws a uniform random monster tactic and computes the
// outcome. Win: full exp plus a level-scaled gold reward. Tie: half
// exp and half damage, except a parry/parry tie which is bloodless and
// pays only quarter exp. Loss: quarter exp, full damage of a third of
// max hp.
func ResolveBattle(level, maxHP int, tactic Tactic, rng *rand.Rand) BattleOutcome {
	monster := Tactics()[rng.Intn(3)]
	gold := randBetween(rng, (level+1)/2, level+1)
	baseExp := randBetween(rng, (level+1)/2, level+1)
	damage := maxHP / 3

	out := BattleOutcome{Report: BattleReport{Tactic: tactic, MonsterTactic: monster}}
	switch Duel(tactic, monster) {
	case OutcomeWin:
		out.Victory = true
		out.Report.Exp = baseExp
		out.Report.Gold = gold
	case OutcomeTie:
		if tactic == TacticParry {
			out.Report.Exp = maxInt(baseExp/4, 1)
		} else {
			out.Report.Exp = maxInt(baseExp/2, 1)
			out.Damage = damage / 2
		}
	case OutcomeLoss:
		out.Report.Exp = maxInt(baseExp/4, 1)
		out.Damage = damage
	}
	return out
}

func randBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
