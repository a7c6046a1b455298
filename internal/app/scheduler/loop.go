// Package scheduler drives the world clock: a short poll loop that
// claims due timers and dispatches each one to its resolver inside an
// isolated transaction.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"deltaland/internal/app/ports"
	"deltaland/internal/domain/game"
)

// errOrphanTimer marks a timer whose owner (or required related row) is
// gone. The loop deletes such timers instead of retrying forever.
var errOrphanTimer = errors.New("orphan timer")

type Loop struct {
	TxManager ports.TxManager
	Timers    ports.TimerRepository
	Players   ports.PlayerRepository
	Battles   ports.BattleRepository
	Ranks     ports.RankRepository
	Cauldron  ports.CauldronRepository
	Notifier  ports.Notifier
	Metrics   ports.SchedulerMetrics
	Now       func() time.Time
	Rng       *rand.Rand
	Interval  time.Duration
}

// Run polls until the context is cancelled. Tick errors are logged and
// never stop the loop.
func (l *Loop) Run(ctx context.Context) {
	interval := l.Interval
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Tick(ctx)
		}
	}
}

func (l *Loop) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

// Tick claims all due timers in fire-time order and resolves each in
// its own transaction. One resolver failing leaves its timer due for
// the next tick and does not abort the rest.
func (l *Loop) Tick(ctx context.Context) {
	now := l.now()
	due, err := l.Timers.ListDue(ctx, now)
	if err != nil {
		log.Printf("scheduler: list due timers: %v", err)
		return
	}
	for _, t := range due {
		notes, err := l.resolveOne(ctx, t, now)
		if err != nil {
			log.Printf("scheduler: timer %s/%d: %v", t.Kind, t.OwnerID, err)
			if l.Metrics != nil {
				l.Metrics.RecordFault(t.Kind)
			}
			continue
		}
		if l.Metrics != nil {
			l.Metrics.RecordResolved(t.Kind)
		}
		// Deliver only after the transaction committed.
		for _, n := range notes {
			l.Notifier.Notify(ctx, n)
		}
	}
}

func (l *Loop) resolveOne(ctx context.Context, claimed game.Timer, now time.Time) ([]game.Notification, error) {
	var notes []game.Notification
	err := l.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		// Re-read under the transaction: an action path (dice join,
		// interfere) may have consumed or moved the timer since the
		// claim was listed.
		t, err := l.Timers.Get(txCtx, claimed.OwnerID, claimed.Kind)
		if errors.Is(err, ports.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if t.FiresAt.After(now) {
			return nil
		}

		if t.OwnerID == game.WorldID {
			notes, err = l.resolveWorld(txCtx, t, now)
		} else {
			notes, err = l.resolvePlayer(txCtx, t, now)
		}
		if errors.Is(err, errOrphanTimer) {
			log.Printf("scheduler: dropping orphan timer %s/%d", t.Kind, t.OwnerID)
			if l.Metrics != nil {
				l.Metrics.RecordOrphan(t.Kind)
			}
			notes = nil
			return l.Timers.Cancel(txCtx, t.OwnerID, t.Kind)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// reschedule moves an existing timer to its next fire time.
func (l *Loop) reschedule(ctx context.Context, t game.Timer, at time.Time) error {
	t.FiresAt = at
	if err := l.Timers.Enqueue(ctx, t); err != nil {
		return fmt.Errorf("reschedule %s timer: %w", t.Kind, err)
	}
	return nil
}

func deltaLines(exp, gold, hp int) string {
	text := ""
	if exp != 0 {
		text += fmt.Sprintf("🔥Exp: %+d\n", exp)
	}
	if gold != 0 {
		text += fmt.Sprintf("💰Gold: %+d\n", gold)
	}
	if hp != 0 {
		text += fmt.Sprintf("❤️HP: %+d\n", hp)
	}
	return text
}
