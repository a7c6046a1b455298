// Package profile manages the player's display name.
package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"deltaland/internal/app/ports"
	"deltaland/internal/app/shared/guard"
	"deltaland/internal/domain/game"
)

var ErrInvalidRequest = errors.New("invalid profile request")

type UseCase struct {
	TxManager ports.TxManager
	Players   ports.PlayerRepository
	Timers    ports.TimerRepository
	Now       func() time.Time
}

type SetNameRequest struct {
	PlayerID int64
	Name     string
}

type SetNameResponse struct {
	Reason game.Reason
	Name   string
}

// SetName sets the display name once. Forgetting a name is sold in the
// shop.
func (u UseCase) SetName(ctx context.Context, req SetNameRequest) (SetNameResponse, error) {
	if req.PlayerID <= 0 {
		return SetNameResponse{}, ErrInvalidRequest
	}
	name := strings.Join(strings.Fields(req.Name), " ")
	now := u.now()

	var out SetNameResponse
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
		if p.Name != "" {
			out.Reason = game.ReasonNameSet
			return nil
		}
		if !guard.ValidName(name) {
			out.Reason = game.ReasonInvalidName
			return nil
		}
		p.Name = name
		if err := u.Players.Save(txCtx, p); err != nil {
			return err
		}
		out = SetNameResponse{Reason: game.ReasonOK, Name: name}
		return nil
	})
	if err != nil {
		return SetNameResponse{}, err
	}
	return out, nil
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}
