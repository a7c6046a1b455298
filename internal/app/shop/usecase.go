// Package shop sells base items into players' bags. Item 0 is the one
// service on offer: forgetting your name so it can be set again.
package shop

import (
	"context"
	"errors"
	"time"

	"deltaland/internal/app/ports"
	"deltaland/internal/app/shared/guard"
	"deltaland/internal/domain/game"
)

var ErrInvalidRequest = errors.New("invalid shop request")

// NameResetID is the pseudo item that clears the player's name.
const NameResetID int64 = 0

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

type Offer struct {
	Base  game.BaseItem
	Price int
}

type ListResponse struct {
	Reason game.Reason
	Gold   int
	Offers []Offer
}

// List returns the catalog plus the name-reset service.
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
		bases, err := u.Items.ListShop(txCtx)
		if err != nil {
			return err
		}
		out.Reason = game.ReasonOK
		out.Gold = p.Gold
		out.Offers = append(out.Offers, Offer{
			Base: game.BaseItem{
				ID:          NameResetID,
				Name:        "Fountain of Forgetfulness",
				Description: "A sip and your name is gone. Choose a new one afterwards.",
			},
			Price: game.ResetNameCost,
		})
		for _, b := range bases {
			out.Offers = append(out.Offers, Offer{Base: b, Price: b.ShopPrice})
		}
		return nil
	})
	if err != nil {
		return ListResponse{}, err
	}
	return out, nil
}

type BuyRequest struct {
	PlayerID int64
	BaseID   int64
}

type BuyResponse struct {
	Reason game.Reason
	Gold   int
	Item   game.Item
	// NameReset is true when the purchase was the name-forgetting
	// service rather than an item.
	NameReset bool
}

// Buy spends gold on a catalog item, placing it in the bag, or on the
// name reset service.
func (u UseCase) Buy(ctx context.Context, req BuyRequest) (BuyResponse, error) {
	if req.PlayerID <= 0 || req.BaseID < 0 {
		return BuyResponse{}, ErrInvalidRequest
	}
	now := u.now()

	var out BuyResponse
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

		if req.BaseID == NameResetID {
			if p.Gold < game.ResetNameCost {
				out.Reason = game.ReasonNoGold
				return nil
			}
			p.Gold -= game.ResetNameCost
			p.Name = ""
			if err := u.Players.Save(txCtx, p); err != nil {
				return err
			}
			out = BuyResponse{Reason: game.ReasonOK, Gold: p.Gold, NameReset: true}
			return nil
		}

		base, err := u.Items.GetBase(txCtx, req.BaseID)
		if errors.Is(err, ports.ErrNotFound) {
			out.Reason = game.ReasonNotFound
			return nil
		}
		if err != nil {
			return err
		}
		if p.Gold < base.ShopPrice {
			out.Reason = game.ReasonNoGold
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

		p.Gold -= base.ShopPrice
		item := game.Item{
			PlayerID:   p.ID,
			BaseID:     base.ID,
			Slot:       game.SlotBag,
			Attack:     base.Attack,
			MaxAttack:  base.MaxAttack,
			Defense:    base.Defense,
			MaxDefense: base.MaxDefense,
		}
		if err := u.Items.Create(txCtx, &item); err != nil {
			return err
		}
		if err := u.Players.Save(txCtx, p); err != nil {
			return err
		}
		out = BuyResponse{Reason: game.ReasonOK, Gold: p.Gold, Item: item}
		return nil
	})
	if err != nil {
		return BuyResponse{}, err
	}
	return out, nil
}

type SellRequest struct {
	PlayerID int64
	ItemID   int64
}

type SellResponse struct {
	Reason game.Reason
	Gold   int
	Price  int
}

// Sell trades a bag item back for half its shop price.
func (u UseCase) Sell(ctx context.Context, req SellRequest) (SellResponse, error) {
	if req.PlayerID <= 0 || req.ItemID <= 0 {
		return SellResponse{}, ErrInvalidRequest
	}
	now := u.now()

	var out SellResponse
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
		price := base.ShopPrice / 2
		p.Gold += price
		if err := u.Items.Delete(txCtx, item.ID); err != nil {
			return err
		}
		if err := u.Players.Save(txCtx, p); err != nil {
			return err
		}
		out = SellResponse{Reason: game.ReasonOK, Gold: p.Gold, Price: price}
		return nil
	})
	if err != nil {
		return SellResponse{}, err
	}
	return out, nil
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}
