// Package battle covers tactic submission for the next world battle and
// the last battle report query.
package battle

import (
	"context"
	"errors"
	"time"

	"deltaland/internal/app/ports"
	"deltaland/internal/app/shared/guard"
	"deltaland/internal/domain/game"
)

var ErrInvalidRequest = errors.New("invalid battle request")

type UseCase struct {
	TxManager ports.TxManager
	Players   ports.PlayerRepository
	Timers    ports.TimerRepository
	Battles   ports.BattleRepository
	Now       func() time.Time
}

type ChooseTacticRequest struct {
	PlayerID int64
	Tactic   string
}

type ChooseTacticResponse struct {
	Reason     game.Reason
	Tactic     game.Tactic
	NextBattle time.Duration
}

// ChooseTactic upserts the player's single pending tactic. It ignores
// the pre-battle lockout: submitting a tactic is how players enroll.
func (u UseCase) ChooseTactic(ctx context.Context, req ChooseTacticRequest) (ChooseTacticResponse, error) {
	if req.PlayerID <= 0 {
		return ChooseTacticResponse{}, ErrInvalidRequest
	}
	tactic, ok := game.ParseTactic(req.Tactic)
	if !ok {
		return ChooseTacticResponse{}, ErrInvalidRequest
	}
	now := u.now()

	var out ChooseTacticResponse
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		p, reason, err := guard.LoadPlayer(txCtx, u.Players, req.PlayerID, now)
		if err != nil || reason != game.ReasonOK {
			out.Reason = reason
			return err
		}
		if reason, err = guard.CanAct(txCtx, &p, u.Timers, now, true); err != nil || reason != game.ReasonOK {
			out.Reason = reason
			return err
		}
		if err := u.Battles.SetTactic(txCtx, p.ID, tactic); err != nil {
			return err
		}
		if err := u.Players.Save(txCtx, p); err != nil {
			return err
		}
		out = ChooseTacticResponse{Reason: game.ReasonOK, Tactic: tactic}
		if t, err := u.Timers.Get(txCtx, game.WorldID, game.TimerBattle); err == nil {
			out.NextBattle = t.FiresAt.Sub(now)
		} else if !errors.Is(err, ports.ErrNotFound) {
			return err
		}
		return nil
	})
	if err != nil {
		return ChooseTacticResponse{}, err
	}
	return out, nil
}

type ReportRequest struct {
	PlayerID int64
}

type ReportResponse struct {
	Reason game.Reason
	Found  bool
	Report game.BattleReport
}

// Report returns the player's result from the last world battle, if the
// player took part in it.
func (u UseCase) Report(ctx context.Context, req ReportRequest) (ReportResponse, error) {
	if req.PlayerID <= 0 {
		return ReportResponse{}, ErrInvalidRequest
	}
	now := u.now()

	var out ReportResponse
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		_, reason, err := guard.LoadPlayer(txCtx, u.Players, req.PlayerID, now)
		if err != nil || reason != game.ReasonOK {
			out.Reason = reason
			return err
		}
		r, err := u.Battles.GetReport(txCtx, req.PlayerID)
		if errors.Is(err, ports.ErrNotFound) {
			out = ReportResponse{Reason: game.ReasonOK, Found: false}
			return nil
		}
		if err != nil {
			return err
		}
		out = ReportResponse{Reason: game.ReasonOK, Found: true, Report: r}
		return nil
	})
	if err != nil {
		return ReportResponse{}, err
	}
	return out, nil
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}
