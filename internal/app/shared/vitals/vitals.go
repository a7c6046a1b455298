// Package vitals holds the state transitions shared by the command path
// and the timer resolvers: experience grants with level-up side effects,
// and hp/stamina spending with regen timer arming.
package vitals

import (
	"context"
	"errors"
	"fmt"
	"time"

	"deltaland/internal/app/ports"
	"deltaland/internal/domain/game"
)

// GrantExp adds experience to the player and reports whether a level-up
// occurred. A level-up refills stamina, so any pending stamina regen
// timer is cancelled. The caller decides the notification side effect.
func GrantExp(ctx context.Context, p *game.Player, exp int, timers ports.TimerRepository) (bool, error) {
	if p.GainExp(exp) == 0 {
		return false, nil
	}
	if err := timers.Cancel(ctx, p.ID, game.TimerStamina); err != nil {
		return true, fmt.Errorf("cancel stamina timer: %w", err)
	}
	return true, nil
}

// Damage lowers the player's hit points and arms the hp regen timer if
// one is not already running. Returns the effective reduction.
func Damage(ctx context.Context, p *game.Player, points int, timers ports.TimerRepository, now time.Time) (int, error) {
	effective := p.ReduceHP(points)
	if p.HP < p.MaxHP {
		if err := ensureTimer(ctx, timers, p.ID, game.TimerHealing, now.Add(game.HPRegenInterval)); err != nil {
			return effective, err
		}
	}
	return effective, nil
}

// SpendStamina lowers stamina and arms the stamina regen timer if one
// is not already running.
func SpendStamina(ctx context.Context, p *game.Player, points int, timers ports.TimerRepository, now time.Time) error {
	p.ReduceStamina(points)
	if p.Stamina < p.MaxStamina {
		return ensureTimer(ctx, timers, p.ID, game.TimerStamina, now.Add(game.StaminaRegenInterval))
	}
	return nil
}

// ensureTimer arms a timer only if absent: an already-running regen
// cycle keeps its fire time.
func ensureTimer(ctx context.Context, timers ports.TimerRepository, ownerID int64, kind game.TimerKind, at time.Time) error {
	_, err := timers.Get(ctx, ownerID, kind)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ports.ErrNotFound) {
		return fmt.Errorf("check %s timer: %w", kind, err)
	}
	if err := timers.Enqueue(ctx, game.Timer{OwnerID: ownerID, Kind: kind, FiresAt: at}); err != nil {
		return fmt.Errorf("arm %s timer: %w", kind, err)
	}
	return nil
}

// LevelUpMessage is the notification sent when a player levels up.
func LevelUpMessage(level int) string {
	text := fmt.Sprintf("🎉 Congratulations! You reached level %d!\n", level)
	switch level {
	case 2:
		text += "The higher the level, the more activities become available to you.\n" +
			"- Thieve quests are available at level 3.\n" +
			"- World leaderboards are available at level 3."
	case 3:
		text += "- New quest Thieve unlocked!\n- You can learn how other players are doing via the leaderboards"
	}
	return text
}
