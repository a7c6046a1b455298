package memory

import (
	"context"
	"sort"

	"deltaland/internal/app/ports"
	"deltaland/internal/domain/game"
)

type ItemRepo struct {
	store *Store
}

func NewItemRepo(store *Store) ItemRepo {
	return ItemRepo{store: store}
}

func (r ItemRepo) Get(_ context.Context, id, playerID int64) (game.Item, error) {
	item, ok := r.store.items[id]
	if !ok || item.PlayerID != playerID {
		return game.Item{}, ports.ErrNotFound
	}
	return item, nil
}

func (r ItemRepo) ListByPlayer(_ context.Context, playerID int64) ([]game.Item, error) {
	return r.list(func(i game.Item) bool { return i.PlayerID == playerID }), nil
}

func (r ItemRepo) ListBySlot(_ context.Context, playerID int64, slot game.Slot) ([]game.Item, error) {
	return r.list(func(i game.Item) bool { return i.PlayerID == playerID && i.Slot == slot }), nil
}

func (r ItemRepo) CountInBag(_ context.Context, playerID int64) (int, error) {
	count := 0
	for _, i := range r.store.items {
		if i.PlayerID == playerID && i.Slot == game.SlotBag {
			count++
		}
	}
	return count, nil
}

func (r ItemRepo) Create(_ context.Context, item *game.Item) error {
	r.store.nextItemID++
	item.ID = r.store.nextItemID
	r.store.items[item.ID] = *item
	return nil
}

func (r ItemRepo) Save(_ context.Context, item game.Item) error {
	r.store.items[item.ID] = item
	return nil
}

func (r ItemRepo) Delete(_ context.Context, id int64) error {
	delete(r.store.items, id)
	return nil
}

func (r ItemRepo) DeleteByPlayer(_ context.Context, playerID int64) error {
	for id, i := range r.store.items {
		if i.PlayerID == playerID {
			delete(r.store.items, id)
		}
	}
	return nil
}

func (r ItemRepo) GetBase(_ context.Context, id int64) (game.BaseItem, error) {
	base, ok := r.store.baseItems[id]
	if !ok {
		return game.BaseItem{}, ports.ErrNotFound
	}
	return base, nil
}

func (r ItemRepo) ListShop(_ context.Context) ([]game.BaseItem, error) {
	ids := make([]int64, 0, len(r.store.baseItems))
	for id, b := range r.store.baseItems {
		if b.ShopPrice > 0 {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	bases := make([]game.BaseItem, 0, len(ids))
	for _, id := range ids {
		bases = append(bases, r.store.baseItems[id])
	}
	return bases, nil
}

func (r ItemRepo) UpsertBase(_ context.Context, base game.BaseItem) error {
	r.store.baseItems[base.ID] = base
	return nil
}

func (r ItemRepo) list(keep func(game.Item) bool) []game.Item {
	var items []game.Item
	for _, i := range r.store.items {
		if keep(i) {
			items = append(items, i)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}
