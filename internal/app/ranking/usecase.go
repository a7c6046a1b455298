// Package ranking serves the world leaderboards.
package ranking

import (
	"context"
	"errors"
	"time"

	"deltaland/internal/app/ports"
	"deltaland/internal/app/shared/guard"
	"deltaland/internal/domain/game"
)

var ErrInvalidRequest = errors.New("invalid ranking request")

// TopSize is how many entries each board shows.
const TopSize = 15

// Board names a leaderboard exposed to players. Gold is computed from
// player rows, the rest are score aggregates.
type Board string

const (
	BoardGold     Board = "gold"
	BoardBattle   Board = "battle"
	BoardDice     Board = "dice"
	BoardCauldron Board = "cauldron"
	BoardSentinel Board = "sentinel"
)

func rankKind(b Board) (ports.RankKind, bool) {
	switch b {
	case BoardBattle:
		return ports.RankBattle, true
	case BoardDice:
		return ports.RankDice, true
	case BoardCauldron:
		return ports.RankCauldron, true
	case BoardSentinel:
		return ports.RankSentinel, true
	}
	return "", false
}

type UseCase struct {
	TxManager ports.TxManager
	Players   ports.PlayerRepository
	Ranks     ports.RankRepository
	Now       func() time.Time
}

type Request struct {
	PlayerID int64
	Board    Board
}

type Response struct {
	Reason game.Reason
	Top    []ports.RankEntry
	// OwnScore is the caller's standing even when outside the top.
	OwnScore int
}

// Execute returns the board's top entries. Boards unlock at level 3.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if req.PlayerID <= 0 {
		return Response{}, ErrInvalidRequest
	}
	kind, scored := rankKind(req.Board)
	if !scored && req.Board != BoardGold {
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
		if p.Level < game.RanksMinLevel {
			out.Reason = game.ReasonLowLevel
			return nil
		}
		out.Reason = game.ReasonOK

		if req.Board == BoardGold {
			rich, err := u.Players.TopGold(txCtx, TopSize)
			if err != nil {
				return err
			}
			for _, r := range rich {
				out.Top = append(out.Top, ports.RankEntry{PlayerID: r.ID, Name: r.DisplayName(), Score: r.Gold})
			}
			out.OwnScore = p.Gold
			return nil
		}

		top, err := u.Ranks.Top(txCtx, kind, TopSize)
		if err != nil {
			return err
		}
		out.Top = top
		out.OwnScore, err = u.Ranks.Score(txCtx, kind, p.ID)
		return err
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}
