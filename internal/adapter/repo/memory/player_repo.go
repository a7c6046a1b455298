package memory

import (
	"context"
	"sort"

	"deltaland/internal/app/ports"
	"deltaland/internal/domain/game"
)

type PlayerRepo struct {
	store *Store
}

func NewPlayerRepo(store *Store) PlayerRepo {
	return PlayerRepo{store: store}
}

func (r PlayerRepo) Get(_ context.Context, id int64) (game.Player, error) {
	p, ok := r.store.players[id]
	if !ok {
		return game.Player{}, ports.ErrNotFound
	}
	return p, nil
}

func (r PlayerRepo) Create(_ context.Context, p game.Player) error {
	if _, ok := r.store.players[p.ID]; ok {
		return ports.ErrConflict
	}
	r.store.players[p.ID] = p
	return nil
}

func (r PlayerRepo) Save(_ context.Context, p game.Player) error {
	r.store.players[p.ID] = p
	return nil
}

func (r PlayerRepo) Delete(_ context.Context, id int64) error {
	delete(r.store.players, id)
	return nil
}

// FindRandomResting picks the lowest-id resting player so tests stay
// deterministic. The postgres adapter does a real random pick.
func (r PlayerRepo) FindRandomResting(_ context.Context, exclude int64) (game.Player, error) {
	for _, id := range r.sortedIDs() {
		if id == exclude || id == game.WorldID {
			continue
		}
		p := r.store.players[id]
		if p.State.IsResting() {
			return p, nil
		}
	}
	return game.Player{}, ports.ErrNotFound
}

func (r PlayerRepo) FindSentinelOf(_ context.Context, thiefID int64) (game.Player, error) {
	for _, id := range r.sortedIDs() {
		p := r.store.players[id]
		if p.WatchingID != nil && *p.WatchingID == thiefID {
			return p, nil
		}
	}
	return game.Player{}, ports.ErrNotFound
}

func (r PlayerRepo) TopGold(_ context.Context, limit int) ([]game.Player, error) {
	players := make([]game.Player, 0, len(r.store.players))
	for id, p := range r.store.players {
		if id == game.WorldID {
			continue
		}
		players = append(players, p)
	}
	sort.Slice(players, func(i, j int) bool {
		if players[i].Gold != players[j].Gold {
			return players[i].Gold > players[j].Gold
		}
		return players[i].ID < players[j].ID
	})
	if len(players) > limit {
		players = players[:limit]
	}
	return players, nil
}

func (r PlayerRepo) Count(_ context.Context) (int64, error) {
	count := int64(0)
	for id := range r.store.players {
		if id != game.WorldID {
			count++
		}
	}
	return count, nil
}

func (r PlayerRepo) sortedIDs() []int64 {
	ids := make([]int64, 0, len(r.store.players))
	for id := range r.store.players {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
