package memory

import (
	"context"

	"deltaland/internal/app/ports"
)

type CauldronRepo struct {
	store *Store
}

func NewCauldronRepo(store *Store) CauldronRepo {
	return CauldronRepo{store: store}
}

func (r CauldronRepo) TossCoin(_ context.Context, playerID int64) error {
	for _, id := range r.store.coins {
		if id == playerID {
			return ports.ErrConflict
		}
	}
	r.store.coins = append(r.store.coins, playerID)
	return nil
}

func (r CauldronRepo) HasCoin(_ context.Context, playerID int64) (bool, error) {
	for _, id := range r.store.coins {
		if id == playerID {
			return true, nil
		}
	}
	return false, nil
}

func (r CauldronRepo) ListCoins(_ context.Context) ([]int64, error) {
	ids := make([]int64, len(r.store.coins))
	copy(ids, r.store.coins)
	return ids, nil
}

func (r CauldronRepo) ClearCoins(_ context.Context) error {
	r.store.coins = nil
	return nil
}

func (r CauldronRepo) DeleteByPlayer(_ context.Context, playerID int64) error {
	kept := r.store.coins[:0]
	for _, id := range r.store.coins {
		if id != playerID {
			kept = append(kept, id)
		}
	}
	r.store.coins = kept
	return nil
}
