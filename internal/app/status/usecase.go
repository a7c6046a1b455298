// Package status renders the player's self view.
package status

import (
	"context"
	"errors"
	"time"

	"deltaland/internal/app/ports"
	"deltaland/internal/app/shared/guard"
	"deltaland/internal/domain/game"
)

var ErrInvalidRequest = errors.New("invalid status request")

type UseCase struct {
	TxManager ports.TxManager
	Players   ports.PlayerRepository
	Timers    ports.TimerRepository
	Items     ports.ItemRepository
	Now       func() time.Time
}

type Request struct {
	PlayerID int64
}

type Response struct {
	Reason game.Reason
	Player game.Player
	// Attack and Defense are the player's base stats plus equipment.
	Attack     int
	Defense    int
	Doing      string
	BagUsed    int
	NextExp    int
	StaminaIn  time.Duration
	NextBattle time.Duration
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if req.PlayerID <= 0 {
		return Response{}, ErrInvalidRequest
	}
	now := u.now()

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		p, reason, err := guard.LoadPlayer(txCtx, u.Players, req.PlayerID, now)
		if err != nil || reason != game.ReasonOK {
			out.Reason = reason
			return err
		}
		out.Reason = game.ReasonOK
		out.Player = p
		out.Attack = p.Attack
		out.Defense = p.Defense
		out.Doing = describe(p.State)
		out.NextExp = game.RequiredExp(p.Level + 1)

		items, err := u.Items.ListByPlayer(txCtx, p.ID)
		if err != nil {
			return err
		}
		for _, it := range items {
			if it.Slot == game.SlotBag {
				out.BagUsed++
				continue
			}
			out.Attack += it.Attack
			out.Defense += it.Defense
		}

		if t, err := u.Timers.Get(txCtx, p.ID, game.TimerStamina); err == nil {
			out.StaminaIn = t.FiresAt.Sub(now)
		} else if !errors.Is(err, ports.ErrNotFound) {
			return err
		}
		if t, err := u.Timers.Get(txCtx, game.WorldID, game.TimerBattle); err == nil {
			out.NextBattle = t.FiresAt.Sub(now)
		} else if !errors.Is(err, ports.ErrNotFound) {
			return err
		}
		if err := u.Players.Save(txCtx, p); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}

func describe(s game.State) string {
	switch s.Kind {
	case game.StatePlayingDice:
		return "🎲 Throwing dice in the tavern"
	case game.StateHealing:
		return "🛌 Resting from wounds"
	case game.StateWatching:
		return "👀 Watching a shadow lurking outside"
	case game.StateWatched:
		return "🏃 Lurking outside someone's home"
	case game.StateInQuest:
		if q, ok := game.QuestByID(s.Quest); ok {
			return "🗺 " + q.Name
		}
		return "🗺 On a quest"
	}
	return "🛋 Resting"
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}
