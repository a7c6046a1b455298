// Package tavern covers the gambling corner: dice matchmaking and the
// magic cauldron coin toss.
package tavern

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"deltaland/internal/app/ports"
	"deltaland/internal/app/shared/guard"
	"deltaland/internal/domain/game"
)

var ErrInvalidRequest = errors.New("invalid tavern request")

type UseCase struct {
	TxManager ports.TxManager
	Players   ports.PlayerRepository
	Timers    ports.TimerRepository
	Ranks     ports.RankRepository
	Cauldron  ports.CauldronRepository
	Notifier  ports.Notifier
	Now       func() time.Time
	Rng       *rand.Rand
}

type DiceRequest struct {
	PlayerID int64
}

type DiceResponse struct {
	Reason game.Reason
	// Matched is false when the player sat down to wait for an opponent.
	Matched  bool
	WaitFor  time.Duration
	Won      bool
	OwnRoll  game.DiceRoll
	OppRoll  game.DiceRoll
	Opponent string
	Pot      int
}

// Dice either seats the player as a waiting gambler (fee paid, timer
// armed) or, when someone is already waiting, consumes that player's
// timer and resolves the match immediately. Consuming the timer inside
// this transaction is what keeps the clock-path refund from also
// firing.
func (u UseCase) Dice(ctx context.Context, req DiceRequest) (DiceResponse, error) {
	if req.PlayerID <= 0 {
		return DiceResponse{}, ErrInvalidRequest
	}
	now := u.now()

	var out DiceResponse
	var notes []game.Notification
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
		if p.Gold < game.DiceFee {
			out.Reason = game.ReasonNoGold
			return nil
		}
		p.Gold -= game.DiceFee

		pending, err := u.Timers.FindByKind(txCtx, game.TimerDice)
		if err != nil && !errors.Is(err, ports.ErrNotFound) {
			return err
		}
		if errors.Is(err, ports.ErrNotFound) {
			p.State = game.State{Kind: game.StatePlayingDice}
			if err := u.Timers.Enqueue(txCtx, game.Timer{
				OwnerID: p.ID,
				Kind:    game.TimerDice,
				FiresAt: now.Add(game.DiceWait),
			}); err != nil {
				return err
			}
			if err := u.Players.Save(txCtx, p); err != nil {
				return err
			}
			out = DiceResponse{Reason: game.ReasonOK, Matched: false, WaitFor: game.DiceWait}
			return nil
		}

		if err := u.Timers.Cancel(txCtx, pending.OwnerID, game.TimerDice); err != nil {
			return err
		}
		opp, err := u.Players.Get(txCtx, pending.OwnerID)
		if err != nil {
			return err
		}

		ownRoll, oppRoll := game.PlayDice(u.Rng)
		pot := 2 * game.DiceFee
		winner, loser := &p, &opp
		if oppRoll.Total() > ownRoll.Total() {
			winner, loser = &opp, &p
		}
		winner.Gold += pot
		if err := u.Ranks.Add(txCtx, ports.RankDice, winner.ID, pot); err != nil {
			return err
		}
		p.State = game.Resting()
		opp.State = game.Resting()
		if err := u.Players.Save(txCtx, p); err != nil {
			return err
		}
		if err := u.Players.Save(txCtx, opp); err != nil {
			return err
		}

		text := fmt.Sprintf("🎲 You threw the dice on the table:\n\n%s: %s\n%s: %s\n\n%s won! %+d💰",
			winner.DisplayName(), rollOf(winner, &p, ownRoll, oppRoll),
			loser.DisplayName(), rollOf(loser, &p, ownRoll, oppRoll),
			winner.DisplayName(), pot)
		notes = append(notes,
			game.Notification{PlayerID: p.ID, Text: text},
			game.Notification{PlayerID: opp.ID, Text: text},
		)
		out = DiceResponse{
			Reason:   game.ReasonOK,
			Matched:  true,
			Won:      winner == &p,
			OwnRoll:  ownRoll,
			OppRoll:  oppRoll,
			Opponent: opp.DisplayName(),
			Pot:      pot,
		}
		return nil
	})
	if err != nil {
		return DiceResponse{}, err
	}
	for _, n := range notes {
		u.Notifier.Notify(ctx, n)
	}
	return out, nil
}

// rollOf maps a player back to their roll: ownRoll belongs to self.
func rollOf(p, self *game.Player, ownRoll, oppRoll game.DiceRoll) string {
	if p == self {
		return ownRoll.String()
	}
	return oppRoll.String()
}

type TossCoinRequest struct {
	PlayerID int64
}

type TossCoinResponse struct {
	Reason game.Reason
	GiftIn time.Duration
}

// TossCoin enters the player into today's cauldron draw, once per day.
func (u UseCase) TossCoin(ctx context.Context, req TossCoinRequest) (TossCoinResponse, error) {
	if req.PlayerID <= 0 {
		return TossCoinResponse{}, ErrInvalidRequest
	}
	now := u.now()

	var out TossCoinResponse
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
		if t, err := u.Timers.Get(txCtx, game.WorldID, game.TimerDay); err == nil {
			out.GiftIn = t.FiresAt.Sub(now)
		} else if !errors.Is(err, ports.ErrNotFound) {
			return err
		}
		tossed, err := u.Cauldron.HasCoin(txCtx, p.ID)
		if err != nil {
			return err
		}
		if tossed {
			out.Reason = game.ReasonAlreadyTossed
			return nil
		}
		if p.Gold < game.CauldronTossPrice {
			out.Reason = game.ReasonNoGold
			return nil
		}
		p.Gold -= game.CauldronTossPrice
		if err := u.Cauldron.TossCoin(txCtx, p.ID); err != nil {
			return err
		}
		if err := u.Players.Save(txCtx, p); err != nil {
			return err
		}
		out.Reason = game.ReasonOK
		return nil
	})
	if err != nil {
		return TossCoinResponse{}, err
	}
	return out, nil
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}
