// Package join creates a player on an explicit join action.
package join

import (
	"context"
	"errors"
	"time"

	"deltaland/internal/app/ports"
	"deltaland/internal/domain/game"
)

var ErrInvalidRequest = errors.New("invalid join request")

type UseCase struct {
	TxManager ports.TxManager
	Players   ports.PlayerRepository
	Now       func() time.Time
}

type Request struct {
	PlayerID int64
}

type Response struct {
	Reason game.Reason
	Player game.Player
}

// Execute is idempotent in effect: a second join for the same identity
// is rejected without touching the existing record.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if req.PlayerID <= 0 {
		return Response{}, ErrInvalidRequest
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := u.Players.Get(txCtx, req.PlayerID); err == nil {
			out = Response{Reason: game.ReasonAlreadyJoined}
			return nil
		} else if !errors.Is(err, ports.ErrNotFound) {
			return err
		}
		p := game.NewPlayer(req.PlayerID, nowFn())
		if err := u.Players.Create(txCtx, p); err != nil {
			return err
		}
		out = Response{Reason: game.ReasonOK, Player: p}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}
