// Package leave removes a player and every row that references them.
package leave

import (
	"context"
	"errors"

	"deltaland/internal/app/ports"
	"deltaland/internal/domain/game"
)

var ErrInvalidRequest = errors.New("invalid leave request")

type UseCase struct {
	TxManager ports.TxManager
	Players   ports.PlayerRepository
	Timers    ports.TimerRepository
	Items     ports.ItemRepository
	Skills    ports.SkillRepository
	Ranks     ports.RankRepository
	Battles   ports.BattleRepository
	Cauldron  ports.CauldronRepository
}

type Request struct {
	PlayerID int64
}

type Response struct {
	Reason game.Reason
}

// Execute deletes the player in one transaction. Dependent rows go
// first, in a fixed order, and any live watch involving the player is
// unwound so the other side is not left stuck.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if req.PlayerID <= 0 {
		return Response{}, ErrInvalidRequest
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := u.Players.Get(txCtx, req.PlayerID)
		if errors.Is(err, ports.ErrNotFound) {
			out.Reason = game.ReasonNotJoined
			return nil
		}
		if err != nil {
			return err
		}

		if p.WatchingID != nil {
			thief, err := u.Players.Get(txCtx, *p.WatchingID)
			if err == nil {
				thief.State = game.Resting()
				if err := u.Players.Save(txCtx, thief); err != nil {
					return err
				}
			} else if !errors.Is(err, ports.ErrNotFound) {
				return err
			}
		}
		sentinel, err := u.Players.FindSentinelOf(txCtx, p.ID)
		if err == nil {
			sentinel.WatchingID = nil
			sentinel.State = game.Resting()
			if err := u.Timers.Cancel(txCtx, sentinel.ID, game.TimerThiefWatch); err != nil {
				return err
			}
			if err := u.Players.Save(txCtx, sentinel); err != nil {
				return err
			}
		} else if !errors.Is(err, ports.ErrNotFound) {
			return err
		}

		if err := u.Timers.DeleteByOwner(txCtx, p.ID); err != nil {
			return err
		}
		if err := u.Items.DeleteByPlayer(txCtx, p.ID); err != nil {
			return err
		}
		if err := u.Skills.DeleteByPlayer(txCtx, p.ID); err != nil {
			return err
		}
		if err := u.Ranks.DeleteByPlayer(txCtx, p.ID); err != nil {
			return err
		}
		if err := u.Battles.DeleteByPlayer(txCtx, p.ID); err != nil {
			return err
		}
		if err := u.Cauldron.DeleteByPlayer(txCtx, p.ID); err != nil {
			return err
		}
		if err := u.Players.Delete(txCtx, p.ID); err != nil {
			return err
		}
		out.Reason = game.ReasonOK
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}
