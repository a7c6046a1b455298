// Package guard holds the preconditions shared by most commands.
package guard

import (
	"context"
	"errors"
	"time"

	"deltaland/internal/app/ports"
	"deltaland/internal/domain/game"
)

// CanAct checks the busy gate: the player must be resting, and most
// commands are refused in the last stretch before a world battle.
// Tactic submission passes ignoreBattle since it is how players enroll
// in that battle.
func CanAct(ctx context.Context, p *game.Player, timers ports.TimerRepository, now time.Time, ignoreBattle bool) (game.Reason, error) {
	if !ignoreBattle {
		t, err := timers.Get(ctx, game.WorldID, game.TimerBattle)
		if err != nil && !errors.Is(err, ports.ErrNotFound) {
			return game.ReasonOK, err
		}
		if err == nil && t.FiresAt.Sub(now) <= game.PreBattleLockout {
			return game.ReasonBattleSoon, nil
		}
	}
	if !p.State.IsResting() {
		return game.ReasonBusy, nil
	}
	return game.ReasonOK, nil
}

// LoadPlayer fetches the acting player, mapping a missing row to the
// not-joined reason and touching last-seen (persisted by whichever Save
// the command performs).
func LoadPlayer(ctx context.Context, players ports.PlayerRepository, id int64, now time.Time) (game.Player, game.Reason, error) {
	p, err := players.Get(ctx, id)
	if errors.Is(err, ports.ErrNotFound) {
		return game.Player{}, game.ReasonNotJoined, nil
	}
	if err != nil {
		return game.Player{}, game.ReasonOK, err
	}
	p.LastSeen = now
	return p, game.ReasonOK, nil
}

// ValidName enforces the in-game name policy: letters, digits and
// spaces, 1-16 characters.
func ValidName(name string) bool {
	if len(name) == 0 || len(name) > 16 {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == ' ':
		default:
			return false
		}
	}
	return true
}
