package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"deltaland/internal/app/ports"
	"deltaland/internal/app/shared/vitals"
	"deltaland/internal/domain/game"
)

func (l *Loop) resolveWorld(ctx context.Context, t game.Timer, now time.Time) ([]game.Notification, error) {
	switch t.Kind {
	case game.TimerBattle:
		notes, err := l.resolveBattle(ctx, now)
		if err != nil {
			return nil, err
		}
		// Anchored to the previous fire time so drift never accumulates.
		return notes, l.reschedule(ctx, t, game.NextBattle(t.FiresAt))
	case game.TimerDay:
		notes, err := l.resolveCauldron(ctx)
		if err != nil {
			return nil, err
		}
		return notes, l.reschedule(ctx, t, game.NextDayBoundary(now))
	case game.TimerMonth:
		if err := l.Ranks.Reset(ctx, ports.RankBattle, ports.RankDice); err != nil {
			return nil, fmt.Errorf("reset monthly ranks: %w", err)
		}
		return nil, l.reschedule(ctx, t, game.NextMonthBoundary(now))
	case game.TimerYear:
		if err := l.Ranks.Reset(ctx, ports.RankCauldron); err != nil {
			return nil, fmt.Errorf("reset yearly ranks: %w", err)
		}
		return nil, l.reschedule(ctx, t, game.NextYearBoundary(now))
	default:
		log.Printf("scheduler: unknown world timer %s", t.Kind)
		return nil, errOrphanTimer
	}
}

// resolveBattle settles the periodic goblin attack for every player
// that submitted a tactic. Players without a tactic are skipped. Old
// reports are discarded first; each player's report slot is
// overwritten, and level-ups settle inside the same transaction.
func (l *Loop) resolveBattle(ctx context.Context, now time.Time) ([]game.Notification, error) {
	if err := l.Battles.ClearReports(ctx); err != nil {
		return nil, fmt.Errorf("clear battle reports: %w", err)
	}
	tactics, err := l.Battles.ListTactics(ctx)
	if err != nil {
		return nil, fmt.Errorf("list battle tactics: %w", err)
	}

	var notes []game.Notification
	for _, entry := range tactics {
		if err := l.Battles.DeleteTactic(ctx, entry.PlayerID); err != nil {
			return nil, fmt.Errorf("consume tactic of %d: %w", entry.PlayerID, err)
		}
		p, err := l.Players.Get(ctx, entry.PlayerID)
		if errors.Is(err, ports.ErrNotFound) {
			log.Printf("scheduler: tactic for missing player %d", entry.PlayerID)
			continue
		}
		if err != nil {
			return nil, err
		}

		out := game.ResolveBattle(p.Level, p.MaxHP, entry.Tactic, l.Rng)
		report := out.Report
		if out.Victory {
			p.Gold += report.Gold
			if err := l.Ranks.Add(ctx, ports.RankBattle, p.ID, 1); err != nil {
				return nil, fmt.Errorf("battle rank of %d: %w", p.ID, err)
			}
		}
		if out.Damage > 0 {
			effective, err := vitals.Damage(ctx, &p, out.Damage, l.Timers, now)
			if err != nil {
				return nil, err
			}
			report.HP = -effective
		}
		leveled := false
		if report.Exp > 0 {
			leveled, err = vitals.GrantExp(ctx, &p, report.Exp, l.Timers)
			if err != nil {
				return nil, err
			}
		}
		if err := l.Battles.SaveReport(ctx, p.ID, report); err != nil {
			return nil, fmt.Errorf("save report of %d: %w", p.ID, err)
		}
		if err := l.Players.Save(ctx, p); err != nil {
			return nil, err
		}
		if leveled {
			notes = append(notes, game.Notification{PlayerID: p.ID, Text: vitals.LevelUpMessage(p.Level)})
		}
	}
	return notes, nil
}

// resolveCauldron draws the daily winner: coins are shuffled, the first
// becomes sole winner of the fixed gift, everyone is told, all coins
// are cleared.
func (l *Loop) resolveCauldron(ctx context.Context) ([]game.Notification, error) {
	coins, err := l.Cauldron.ListCoins(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cauldron coins: %w", err)
	}
	l.Rng.Shuffle(len(coins), func(i, j int) { coins[i], coins[j] = coins[j], coins[i] })

	var notes []game.Notification
	winner := ""
	for _, playerID := range coins {
		p, err := l.Players.Get(ctx, playerID)
		if errors.Is(err, ports.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if winner == "" {
			winner = p.DisplayName()
			p.Gold += game.CauldronGift
			if err := l.Ranks.Add(ctx, ports.RankCauldron, p.ID, game.CauldronGift); err != nil {
				return nil, fmt.Errorf("cauldron rank of %d: %w", p.ID, err)
			}
			if err := l.Players.Save(ctx, p); err != nil {
				return nil, err
			}
			notes = append(notes, game.Notification{
				PlayerID: p.ID,
				Text:     fmt.Sprintf("✨You received %d💰 from the magic cauldron✨", game.CauldronGift),
			})
			continue
		}
		notes = append(notes, game.Notification{
			PlayerID: p.ID,
			Text:     fmt.Sprintf("✨%s received %d💰 from the magic cauldron✨", winner, game.CauldronGift),
		})
	}
	if err := l.Cauldron.ClearCoins(ctx); err != nil {
		return nil, fmt.Errorf("clear cauldron coins: %w", err)
	}
	return notes, nil
}
