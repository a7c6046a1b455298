// Package bootstrap seeds the world on startup: the world row that
// anchors global timers, the item and skill catalogs, and the world
// clock timers themselves. Safe to run on every boot.
package bootstrap

import (
	"context"
	"errors"
	"time"

	"deltaland/internal/app/ports"
	"deltaland/internal/domain/game"
)

type UseCase struct {
	TxManager ports.TxManager
	Players   ports.PlayerRepository
	Timers    ports.TimerRepository
	Items     ports.ItemRepository
	Skills    ports.SkillRepository
	Now       func() time.Time
}

// Execute is idempotent: existing rows and running timers are left
// untouched.
func (u UseCase) Execute(ctx context.Context) error {
	now := u.now()
	return u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := u.Players.Get(txCtx, game.WorldID); err != nil {
			if !errors.Is(err, ports.ErrNotFound) {
				return err
			}
			world := game.NewPlayer(game.WorldID, now)
			world.Name = "world"
			if err := u.Players.Create(txCtx, world); err != nil {
				return err
			}
		}
		for _, b := range game.BaseItems() {
			if err := u.Items.UpsertBase(txCtx, b); err != nil {
				return err
			}
		}
		for _, b := range game.BaseSkills() {
			if err := u.Skills.UpsertBase(txCtx, b); err != nil {
				return err
			}
		}

		clocks := []struct {
			kind game.TimerKind
			at   time.Time
		}{
			{game.TimerBattle, game.NextBattle(game.BattleAnchor(now))},
			{game.TimerDay, game.NextDayBoundary(now)},
			{game.TimerMonth, game.NextMonthBoundary(now)},
			{game.TimerYear, game.NextYearBoundary(now)},
		}
		for _, c := range clocks {
			_, err := u.Timers.Get(txCtx, game.WorldID, c.kind)
			if err == nil {
				continue
			}
			if !errors.Is(err, ports.ErrNotFound) {
				return err
			}
			if err := u.Timers.Enqueue(txCtx, game.Timer{
				OwnerID: game.WorldID,
				Kind:    c.kind,
				FiresAt: c.at,
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}
