package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"deltaland/internal/app/ports"
	"deltaland/internal/app/shared/vitals"
	"deltaland/internal/domain/game"
)

func (l *Loop) resolvePlayer(ctx context.Context, t game.Timer, now time.Time) ([]game.Notification, error) {
	p, err := l.Players.Get(ctx, t.OwnerID)
	if errors.Is(err, ports.ErrNotFound) {
		return nil, errOrphanTimer
	}
	if err != nil {
		return nil, err
	}

	switch t.Kind {
	case game.TimerStamina:
		return l.resolveStamina(ctx, t, p)
	case game.TimerHealing:
		return l.resolveHealing(ctx, t, p)
	case game.TimerThiefWatch:
		return l.resolveThiefWatch(ctx, t, p)
	case game.TimerDice:
		return l.resolveDiceTimeout(ctx, t, p)
	case game.TimerQuest:
		return l.resolveQuest(ctx, t, p, now)
	default:
		log.Printf("scheduler: unknown player timer %s", t.Kind)
		return nil, errOrphanTimer
	}
}

// resolveStamina steps stamina by one unit per fire. A fire at max
// (raised externally by a level-up in a race with this tick) deletes
// without incrementing.
func (l *Loop) resolveStamina(ctx context.Context, t game.Timer, p game.Player) ([]game.Notification, error) {
	if p.Stamina < p.MaxStamina {
		p.Stamina++
	}
	var notes []game.Notification
	if p.Stamina >= p.MaxStamina {
		if err := l.Timers.Cancel(ctx, p.ID, game.TimerStamina); err != nil {
			return nil, err
		}
		notes = append(notes, game.Notification{
			PlayerID: p.ID,
			Text:     "Stamina restored. You are ready for more adventures!",
		})
	} else if err := l.reschedule(ctx, t, t.FiresAt.Add(game.StaminaRegenInterval)); err != nil {
		return nil, err
	}
	return notes, l.Players.Save(ctx, p)
}

func (l *Loop) resolveHealing(ctx context.Context, t game.Timer, p game.Player) ([]game.Notification, error) {
	if p.HP < p.MaxHP {
		p.HP++
	}
	if p.HP >= p.MaxHP {
		if err := l.Timers.Cancel(ctx, p.ID, game.TimerHealing); err != nil {
			return nil, err
		}
	} else if err := l.reschedule(ctx, t, t.FiresAt.Add(game.HPRegenInterval)); err != nil {
		return nil, err
	}
	return nil, l.Players.Save(ctx, p)
}

// resolveThiefWatch fires when a sentinel never interfered: the theft
// silently succeeds. The interfere command path is mutually exclusive
// with this resolver because whichever runs first removes the watch
// link and this timer inside its transaction.
func (l *Loop) resolveThiefWatch(ctx context.Context, t game.Timer, sentinel game.Player) ([]game.Notification, error) {
	if sentinel.WatchingID == nil {
		return nil, errOrphanTimer
	}
	thief, err := l.Players.Get(ctx, *sentinel.WatchingID)
	if errors.Is(err, ports.ErrNotFound) {
		return nil, errOrphanTimer
	}
	if err != nil {
		return nil, err
	}

	gold := game.ThieveGold(thief.Level, l.Rng)
	thief.Gold += gold
	exp := randRange(l.Rng, 1, 3)
	leveled, err := vitals.GrantExp(ctx, &thief, exp, l.Timers)
	if err != nil {
		return nil, err
	}

	sentinel.StopWatching(&thief)
	if err := l.Timers.Cancel(ctx, sentinel.ID, game.TimerThiefWatch); err != nil {
		return nil, err
	}
	if err := l.Players.Save(ctx, sentinel); err != nil {
		return nil, err
	}
	if err := l.Players.Save(ctx, thief); err != nil {
		return nil, err
	}

	notes := []game.Notification{
		{
			PlayerID: sentinel.ID,
			Text:     fmt.Sprintf("You let **%s** rob the townsmen. We hope you feel terrible.", thief.DisplayName()),
		},
		{
			PlayerID: thief.ID,
			Text: fmt.Sprintf("**%s** was completely clueless. You successfully stole some loot. You feel great.\n\n%s",
				sentinel.DisplayName(), deltaLines(exp, gold, 0)),
		},
	}
	if leveled {
		notes = append(notes, game.Notification{PlayerID: thief.ID, Text: vitals.LevelUpMessage(thief.Level)})
	}
	return notes, nil
}

// resolveDiceTimeout refunds a lone gambler nobody sat down with.
func (l *Loop) resolveDiceTimeout(ctx context.Context, t game.Timer, p game.Player) ([]game.Notification, error) {
	if err := l.Timers.Cancel(ctx, p.ID, game.TimerDice); err != nil {
		return nil, err
	}
	p.State = game.Resting()
	p.Gold += game.DiceFee
	if err := l.Players.Save(ctx, p); err != nil {
		return nil, err
	}
	return []game.Notification{{PlayerID: p.ID, Text: "No one sat down next to you =/"}}, nil
}

func (l *Loop) resolveQuest(ctx context.Context, t game.Timer, p game.Player, now time.Time) ([]game.Notification, error) {
	quest, ok := game.QuestByID(t.QuestID)
	if !ok {
		log.Printf("scheduler: unknown quest %d for player %d", t.QuestID, p.ID)
		return nil, errOrphanTimer
	}
	if err := l.Timers.Cancel(ctx, p.ID, game.TimerQuest); err != nil {
		return nil, err
	}
	if quest.ID == game.QuestThieve {
		return l.endThieveQuest(ctx, p)
	}
	return l.endWanderQuest(ctx, p, now)
}

func (l *Loop) endWanderQuest(ctx context.Context, p game.Player, now time.Time) ([]game.Notification, error) {
	result := game.RollWander(l.Rng)
	text := result.Description + "\n\n"

	leveled := false
	if result.Exp > 0 {
		var err error
		leveled, err = vitals.GrantExp(ctx, &p, result.Exp, l.Timers)
		if err != nil {
			return nil, err
		}
	}
	p.Gold += result.Gold
	hp := result.HP
	if hp < 0 {
		effective, err := vitals.Damage(ctx, &p, -hp, l.Timers, now)
		if err != nil {
			return nil, err
		}
		hp = -effective
	} else if hp > 0 {
		hp = p.HealHP(hp)
	}
	text += deltaLines(result.Exp, result.Gold, hp)

	p.State = game.Resting()
	if err := l.Players.Save(ctx, p); err != nil {
		return nil, err
	}
	notes := []game.Notification{{PlayerID: p.ID, Text: text}}
	if leveled {
		notes = append(notes, game.Notification{PlayerID: p.ID, Text: vitals.LevelUpMessage(p.Level)})
	}
	return notes, nil
}

// endThieveQuest picks a random resting player as sentinel. If one is
// found the watch link is armed and the theft hangs on the sentinel's
// reaction; otherwise the thief cashes in immediately.
func (l *Loop) endThieveQuest(ctx context.Context, thief game.Player) ([]game.Notification, error) {
	sentinel, err := l.Players.FindRandomResting(ctx, thief.ID)
	if err != nil && !errors.Is(err, ports.ErrNotFound) {
		return nil, err
	}
	if err == nil {
		sentinel.StartWatching(&thief)
		if err := l.Timers.Enqueue(ctx, game.Timer{
			OwnerID: sentinel.ID,
			Kind:    game.TimerThiefWatch,
			FiresAt: l.now().Add(game.ThiefWatchWindow),
		}); err != nil {
			return nil, err
		}
		if err := l.Players.Save(ctx, sentinel); err != nil {
			return nil, err
		}
		if err := l.Players.Save(ctx, thief); err != nil {
			return nil, err
		}
		return []game.Notification{
			{
				PlayerID: sentinel.ID,
				Text: fmt.Sprintf("You were wandering around when you noticed **%s**"+
					" trying to rob some townsmen.\n\n🛑 interfere to stop the thief", thief.DisplayName()),
			},
			{
				PlayerID: thief.ID,
				Text: fmt.Sprintf("Close to the place you are robbing you spotted warrior **%s**."+
					" Let's hope **%s** won't notice you.", sentinel.DisplayName(), sentinel.DisplayName()),
			},
		}, nil
	}

	thief.State = game.Resting()
	gold := game.ThieveGold(thief.Level, l.Rng)
	thief.Gold += gold
	exp := randRange(l.Rng, 1, 3)
	leveled, err := vitals.GrantExp(ctx, &thief, exp, l.Timers)
	if err != nil {
		return nil, err
	}
	if err := l.Players.Save(ctx, thief); err != nil {
		return nil, err
	}
	notes := []game.Notification{{
		PlayerID: thief.ID,
		Text:     "Nobody noticed you. You successfully stole some loot. You feel great.\n\n" + deltaLines(exp, gold, 0),
	}}
	if leveled {
		notes = append(notes, game.Notification{PlayerID: thief.ID, Text: vitals.LevelUpMessage(thief.Level)})
	}
	return notes, nil
}

func randRange(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
