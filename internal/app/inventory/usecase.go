// Package inventory lists owned items and moves them between the bag
// and the equipment slots.
package inventory

import (
	"context"
	"errors"
	"time"

	"deltaland/internal/app/ports"
	"deltaland/internal/app/shared/guard"
	"deltaland/internal/domain/game"
)

var ErrInvalidRequest = errors.New("invalid inventory request")

type UseCase struct {
	TxManager ports.TxManager
	Players   ports.PlayerRepository
	Timers    ports.TimerRepository
	Items     ports.ItemRepository
	Now       func() time.Time
}

type ListRequest struct {
	PlayerID int64
}

type Entry struct {
	Item game.Item
	Base game.BaseItem
}

type ListResponse struct {
	Reason   game.Reason
	Bag      []Entry
	Equipped []Entry
	BagUsed  int
	BagSize  int
}

func (u UseCase) List(ctx context.Context, req ListRequest) (ListResponse, error) {
	if req.PlayerID <= 0 {
		return ListResponse{}, ErrInvalidRequest
	}
	now := u.now()

	var out ListResponse
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		p, reason, err := guard.LoadPlayer(txCtx, u.Players, req.PlayerID, now)
		if err != nil || reason != game.ReasonOK {
			out.Reason = reason
			return err
		}
		items, err := u.Items.ListByPlayer(txCtx, p.ID)
		if err != nil {
			return err
		}
		out.Reason = game.ReasonOK
		out.BagSize = p.BagSize
		for _, it := range items {
			base, err := u.Items.GetBase(txCtx, it.BaseID)
			if err != nil {
				return err
			}
			e := Entry{Item: it, Base: base}
			if it.Slot == game.SlotBag {
				out.Bag = append(out.Bag, e)
				out.BagUsed++
			} else {
				out.Equipped = append(out.Equipped, e)
			}
		}
		return nil
	})
	if err != nil {
		return ListResponse{}, err
	}
	return out, nil
}

type EquipRequest struct {
	PlayerID int64
	ItemID   int64
}

type EquipResponse struct {
	Reason game.Reason
	Item   game.Item
	// Displaced holds items sent back to the bag to make room.
	Displaced []game.Item
}

// Equip moves a bag item into its slot. Hands hold two items; every
// other slot holds one. When the slot is full the oldest occupant is
// sent back to the bag, which always has room since the equipped item
// just left it.
func (u UseCase) Equip(ctx context.Context, req EquipRequest) (EquipResponse, error) {
	if req.PlayerID <= 0 || req.ItemID <= 0 {
		return EquipResponse{}, ErrInvalidRequest
	}
	now := u.now()

	var out EquipResponse
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		p, reason, err := guard.LoadPlayer(txCtx, u.Players, req.PlayerID, now)
		if err != nil || reason != game.ReasonOK {
			out.Reason = reason
			return err
		}
		if reason, err = guard.CanAct(txCtx, &p, u.Timers, now, false); err != nil || reason != game.ReasonOK {
			out.Reason = reason
			return err
		}
		item, err := u.Items.Get(txCtx, req.ItemID, p.ID)
		if errors.Is(err, ports.ErrNotFound) {
			out.Reason = game.ReasonNotFound
			return nil
		}
		if err != nil {
			return err
		}
		if item.Slot != game.SlotBag {
			out.Reason = game.ReasonBusy
			return nil
		}
		base, err := u.Items.GetBase(txCtx, item.BaseID)
		if err != nil {
			return err
		}
		if !base.Equipable() {
			out.Reason = game.ReasonNotEquipable
			return nil
		}
		if p.Level < game.RequiredLevel(base.Tier) {
			out.Reason = game.ReasonLowLevel
			return nil
		}

		slot := base.EquipSlot()
		capacity := 1
		if slot == game.SlotHands {
			capacity = game.HandCapacity
		}
		occupants, err := u.Items.ListBySlot(txCtx, p.ID, slot)
		if err != nil {
			return err
		}
		for len(occupants) >= capacity {
			old := occupants[0]
			occupants = occupants[1:]
			old.Slot = game.SlotBag
			if err := u.Items.Save(txCtx, old); err != nil {
				return err
			}
			out.Displaced = append(out.Displaced, old)
		}

		item.Slot = slot
		if err := u.Items.Save(txCtx, item); err != nil {
			return err
		}
		if err := u.Players.Save(txCtx, p); err != nil {
			return err
		}
		out.Reason = game.ReasonOK
		out.Item = item
		return nil
	})
	if err != nil {
		return EquipResponse{}, err
	}
	return out, nil
}

type UnequipRequest struct {
	PlayerID int64
	ItemID   int64
}

type UnequipResponse struct {
	Reason game.Reason
	Item   game.Item
}

// Unequip moves an equipped item back to the bag if there is room.
func (u UseCase) Unequip(ctx context.Context, req UnequipRequest) (UnequipResponse, error) {
	if req.PlayerID <= 0 || req.ItemID <= 0 {
		return UnequipResponse{}, ErrInvalidRequest
	}
	now := u.now()

	var out UnequipResponse
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		p, reason, err := guard.LoadPlayer(txCtx, u.Players, req.PlayerID, now)
		if err != nil || reason != game.ReasonOK {
			out.Reason = reason
			return err
		}
		if reason, err = guard.CanAct(txCtx, &p, u.Timers, now, false); err != nil || reason != game.ReasonOK {
			out.Reason = reason
			return err
		}
		item, err := u.Items.Get(txCtx, req.ItemID, p.ID)
		if errors.Is(err, ports.ErrNotFound) {
			out.Reason = game.ReasonNotFound
			return nil
		}
		if err != nil {
			return err
		}
		if item.Slot == game.SlotBag {
			out.Reason = game.ReasonNotFound
			return nil
		}
		inBag, err := u.Items.CountInBag(txCtx, p.ID)
		if err != nil {
			return err
		}
		if inBag >= p.BagSize {
			out.Reason = game.ReasonBagFull
			return nil
		}
		item.Slot = game.SlotBag
		if err := u.Items.Save(txCtx, item); err != nil {
			return err
		}
		if err := u.Players.Save(txCtx, p); err != nil {
			return err
		}
		out = UnequipResponse{Reason: game.ReasonOK, Item: item}
		return nil
	})
	if err != nil {
		return UnequipResponse{}, err
	}
	return out, nil
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}
