package memory

import (
	"context"
	"sort"
	"time"

	"deltaland/internal/app/ports"
	"deltaland/internal/domain/game"
)

type TimerRepo struct {
	store *Store
}

func NewTimerRepo(store *Store) TimerRepo {
	return TimerRepo{store: store}
}

func (r TimerRepo) Enqueue(_ context.Context, t game.Timer) error {
	r.store.timers[timerKey{ownerID: t.OwnerID, kind: t.Kind}] = t
	return nil
}

func (r TimerRepo) Cancel(_ context.Context, ownerID int64, kind game.TimerKind) error {
	delete(r.store.timers, timerKey{ownerID: ownerID, kind: kind})
	return nil
}

func (r TimerRepo) Get(_ context.Context, ownerID int64, kind game.TimerKind) (game.Timer, error) {
	t, ok := r.store.timers[timerKey{ownerID: ownerID, kind: kind}]
	if !ok {
		return game.Timer{}, ports.ErrNotFound
	}
	return t, nil
}

func (r TimerRepo) ListDue(_ context.Context, now time.Time) ([]game.Timer, error) {
	var due []game.Timer
	for _, t := range r.store.timers {
		if !t.FiresAt.After(now) {
			due = append(due, t)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if !due[i].FiresAt.Equal(due[j].FiresAt) {
			return due[i].FiresAt.Before(due[j].FiresAt)
		}
		return due[i].OwnerID < due[j].OwnerID
	})
	return due, nil
}

func (r TimerRepo) FindByKind(_ context.Context, kind game.TimerKind) (game.Timer, error) {
	var found game.Timer
	ok := false
	for _, t := range r.store.timers {
		if t.Kind != kind {
			continue
		}
		if !ok || t.FiresAt.Before(found.FiresAt) {
			found = t
			ok = true
		}
	}
	if !ok {
		return game.Timer{}, ports.ErrNotFound
	}
	return found, nil
}

func (r TimerRepo) DeleteByOwner(_ context.Context, ownerID int64) error {
	for key := range r.store.timers {
		if key.ownerID == ownerID {
			delete(r.store.timers, key)
		}
	}
	return nil
}
