package memory

import (
	"context"
	"sort"

	"deltaland/internal/app/ports"
)

type RankRepo struct {
	store *Store
}

func NewRankRepo(store *Store) RankRepo {
	return RankRepo{store: store}
}

func (r RankRepo) Add(_ context.Context, kind ports.RankKind, playerID int64, delta int) error {
	r.store.ranks[rankKey{kind: string(kind), playerID: playerID}] += delta
	return nil
}

func (r RankRepo) Score(_ context.Context, kind ports.RankKind, playerID int64) (int, error) {
	return r.store.ranks[rankKey{kind: string(kind), playerID: playerID}], nil
}

func (r RankRepo) Top(_ context.Context, kind ports.RankKind, limit int) ([]ports.RankEntry, error) {
	var entries []ports.RankEntry
	for key, score := range r.store.ranks {
		if key.kind != string(kind) {
			continue
		}
		name := ""
		if p, ok := r.store.players[key.playerID]; ok {
			name = p.Name
		}
		entries = append(entries, ports.RankEntry{PlayerID: key.playerID, Name: name, Score: score})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].PlayerID < entries[j].PlayerID
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (r RankRepo) Reset(_ context.Context, kinds ...ports.RankKind) error {
	for _, kind := range kinds {
		for key := range r.store.ranks {
			if key.kind == string(kind) {
				delete(r.store.ranks, key)
			}
		}
	}
	return nil
}

func (r RankRepo) DeleteByPlayer(_ context.Context, playerID int64) error {
	for key := range r.store.ranks {
		if key.playerID == playerID {
			delete(r.store.ranks, key)
		}
	}
	return nil
}
