// Package thief covers the sentinel side of a thief watch: the
// interfere command that ambushes the thief before the watch runs out.
package thief

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"deltaland/internal/app/ports"
	"deltaland/internal/app/shared/guard"
	"deltaland/internal/app/shared/vitals"
	"deltaland/internal/domain/game"
)

var ErrInvalidRequest = errors.New("invalid thief request")

type UseCase struct {
	TxManager ports.TxManager
	Players   ports.PlayerRepository
	Timers    ports.TimerRepository
	Ranks     ports.RankRepository
	Notifier  ports.Notifier
	Now       func() time.Time
	Rng       *rand.Rand
}

type InterfereRequest struct {
	PlayerID int64
}

type InterfereResponse struct {
	Reason game.Reason
	Gold   int
	Exp    int
	Thief  string
}

// Interfere resolves the watch in the sentinel's favor. Cancelling the
// watch timer inside the transaction is the claim: if the timer already
// fired, the thief got away and the command reports it is too late.
func (u UseCase) Interfere(ctx context.Context, req InterfereRequest) (InterfereResponse, error) {
	if req.PlayerID <= 0 {
		return InterfereResponse{}, ErrInvalidRequest
	}
	now := u.now()

	var out InterfereResponse
	var notes []game.Notification
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		p, reason, err := guard.LoadPlayer(txCtx, u.Players, req.PlayerID, now)
		if err != nil || reason != game.ReasonOK {
			out.Reason = reason
			return err
		}
		if p.State.Kind != game.StateWatching || p.WatchingID == nil {
			out.Reason = game.ReasonTooLate
			return nil
		}
		if _, err := u.Timers.Get(txCtx, p.ID, game.TimerThiefWatch); err != nil {
			if errors.Is(err, ports.ErrNotFound) {
				out.Reason = game.ReasonTooLate
				return nil
			}
			return err
		}
		if err := u.Timers.Cancel(txCtx, p.ID, game.TimerThiefWatch); err != nil {
			return err
		}
		thief, err := u.Players.Get(txCtx, *p.WatchingID)
		if err != nil {
			return err
		}

		loss := game.InterfereGold(thief.Level, u.Rng)
		if loss > thief.Gold {
			loss = thief.Gold
		}
		thief.Gold -= loss
		if _, err := vitals.Damage(txCtx, &thief, 50+u.Rng.Intn(31), u.Timers, now); err != nil {
			return err
		}

		gold := 1 + u.Rng.Intn(2)
		exp := 1 + u.Rng.Intn(3)
		p.Gold += gold
		leveled, err := vitals.GrantExp(txCtx, &p, exp, u.Timers)
		if err != nil {
			return err
		}
		if err := u.Ranks.Add(txCtx, ports.RankSentinel, p.ID, 1); err != nil {
			return err
		}

		p.StopWatching(&thief)
		if err := u.Players.Save(txCtx, p); err != nil {
			return err
		}
		if err := u.Players.Save(txCtx, thief); err != nil {
			return err
		}

		notes = append(notes, game.Notification{
			PlayerID: thief.ID,
			Text: fmt.Sprintf("🚨 You were caught red-handed by %s and barely escaped! %+d💰",
				p.DisplayName(), -loss),
		})
		if leveled {
			notes = append(notes, game.Notification{PlayerID: p.ID, Text: vitals.LevelUpMessage(p.Level)})
		}
		out = InterfereResponse{Reason: game.ReasonOK, Gold: gold, Exp: exp, Thief: thief.DisplayName()}
		return nil
	})
	if err != nil {
		return InterfereResponse{}, err
	}
	for _, n := range notes {
		u.Notifier.Notify(ctx, n)
	}
	return out, nil
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}
