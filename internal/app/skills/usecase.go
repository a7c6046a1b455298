// Package skills lists the skill catalog and spends skill points
// earned on level-up.
package skills

import (
	"context"
	"errors"
	"time"

	"deltaland/internal/app/ports"
	"deltaland/internal/app/shared/guard"
	"deltaland/internal/domain/game"
)

var ErrInvalidRequest = errors.New("invalid skills request")

type UseCase struct {
	TxManager ports.TxManager
	Players   ports.PlayerRepository
	Timers    ports.TimerRepository
	Skills    ports.SkillRepository
	Now       func() time.Time
}

type ListRequest struct {
	PlayerID int64
}

type Entry struct {
	Base  game.BaseSkill
	Level int
}

type ListResponse struct {
	Reason    game.Reason
	SkillPts  int
	Available []Entry
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
		bases, err := u.Skills.ListBases(txCtx)
		if err != nil {
			return err
		}
		learned, err := u.Skills.ListByPlayer(txCtx, p.ID)
		if err != nil {
			return err
		}
		levels := make(map[int64]int, len(learned))
		for _, s := range learned {
			levels[s.BaseID] = s.Level
		}
		out.Reason = game.ReasonOK
		out.SkillPts = p.SkillPts
		for _, b := range bases {
			out.Available = append(out.Available, Entry{Base: b, Level: levels[b.ID]})
		}
		return nil
	})
	if err != nil {
		return ListResponse{}, err
	}
	return out, nil
}

type LearnRequest struct {
	PlayerID int64
	SkillID  int64
}

type LearnResponse struct {
	Reason   game.Reason
	Level    int
	SkillPts int
}

// Learn spends one skill point on a level of the skill and applies its
// stat bonuses immediately.
func (u UseCase) Learn(ctx context.Context, req LearnRequest) (LearnResponse, error) {
	if req.PlayerID <= 0 || req.SkillID <= 0 {
		return LearnResponse{}, ErrInvalidRequest
	}
	now := u.now()

	var out LearnResponse
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
		if p.SkillPts < 1 {
			out.Reason = game.ReasonNoSkillPoints
			return nil
		}
		base, err := u.Skills.GetBase(txCtx, req.SkillID)
		if errors.Is(err, ports.ErrNotFound) {
			out.Reason = game.ReasonNotFound
			return nil
		}
		if err != nil {
			return err
		}
		s, err := u.Skills.Get(txCtx, p.ID, base.ID)
		if errors.Is(err, ports.ErrNotFound) {
			s = game.Skill{BaseID: base.ID, PlayerID: p.ID}
		} else if err != nil {
			return err
		}
		s.Level++
		p.SkillPts--
		base.Apply(&p)
		if err := u.Skills.Save(txCtx, s); err != nil {
			return err
		}
		if err := u.Players.Save(txCtx, p); err != nil {
			return err
		}
		out = LearnResponse{Reason: game.ReasonOK, Level: s.Level, SkillPts: p.SkillPts}
		return nil
	})
	if err != nil {
		return LearnResponse{}, err
	}
	return out, nil
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}
