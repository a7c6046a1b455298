// Package quest starts quests; completion is owned by the scheduler.
package quest

import (
	"context"
	"errors"
	"time"

	"deltaland/internal/app/ports"
	"deltaland/internal/app/shared/guard"
	"deltaland/internal/app/shared/vitals"
	"deltaland/internal/domain/game"
)

var ErrInvalidRequest = errors.New("invalid quest request")

type UseCase struct {
	TxManager ports.TxManager
	Players   ports.PlayerRepository
	Timers    ports.TimerRepository
	Now       func() time.Time
}

type StartRequest struct {
	PlayerID int64
	QuestID  game.QuestID
}

type StartResponse struct {
	Reason game.Reason
	Quest  game.Quest
	BackIn time.Duration
}

// Start moves the player into the quest state, arms the quest timer and
// spends the stamina cost.
func (u UseCase) Start(ctx context.Context, req StartRequest) (StartResponse, error) {
	if req.PlayerID <= 0 {
		return StartResponse{}, ErrInvalidRequest
	}
	q, ok := game.QuestByID(req.QuestID)
	if !ok {
		return StartResponse{}, ErrInvalidRequest
	}
	now := u.now()

	var out StartResponse
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		p, reason, err := guard.LoadPlayer(txCtx, u.Players, req.PlayerID, now)
		if err != nil || reason != game.ReasonOK {
			out.Reason = reason
			return err
		}
		if p.Level < q.MinLevel {
			out.Reason = game.ReasonLowLevel
			return nil
		}
		if reason, err = guard.CanAct(txCtx, &p, u.Timers, now, false); err != nil || reason != game.ReasonOK {
			out.Reason = reason
			return err
		}
		if !p.FitForQuest() {
			out.Reason = game.ReasonWounded
			return nil
		}
		if p.Stamina < q.StaminaCost {
			out.Reason = game.ReasonNoStamina
			return nil
		}

		p.State = game.InQuest(q.ID)
		if err := u.Timers.Enqueue(txCtx, game.Timer{
			OwnerID: p.ID,
			Kind:    game.TimerQuest,
			QuestID: q.ID,
			FiresAt: now.Add(q.Duration),
		}); err != nil {
			return err
		}
		if err := vitals.SpendStamina(txCtx, &p, q.StaminaCost, u.Timers, now); err != nil {
			return err
		}
		if err := u.Players.Save(txCtx, p); err != nil {
			return err
		}
		out = StartResponse{Reason: game.ReasonOK, Quest: q, BackIn: q.Duration}
		return nil
	})
	if err != nil {
		return StartResponse{}, err
	}
	return out, nil
}

type ListRequest struct {
	PlayerID int64
}

type ListResponse struct {
	Reason game.Reason
	Quests []game.Quest
}

// List returns the quests available at the player's level.
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
		out.Reason = game.ReasonOK
		for _, q := range game.Quests() {
			if q.MinLevel <= p.Level {
				out.Quests = append(out.Quests, q)
			}
		}
		return nil
	})
	if err != nil {
		return ListResponse{}, err
	}
	return out, nil
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}
