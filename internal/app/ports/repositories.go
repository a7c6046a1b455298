package ports

import (
	"context"
	"time"

	"deltaland/internal/domain/game"
)

type PlayerRepository interface {
	Get(ctx context.Context, id int64) (game.Player, error)
	// Create fails with ErrConflict if the id is already taken.
	Create(ctx context.Context, p game.Player) error
	Save(ctx context.Context, p game.Player) error
	// Delete removes the player row only; dependent rows are removed by
	// the delete-player use case in a fixed order.
	Delete(ctx context.Context, id int64) error
	// FindRandomResting picks a random resting player other than
	// exclude, or ErrNotFound.
	FindRandomResting(ctx context.Context, exclude int64) (game.Player, error)
	// FindSentinelOf returns the player whose watch link references the
	// given thief, or ErrNotFound.
	FindSentinelOf(ctx context.Context, thiefID int64) (game.Player, error)
	TopGold(ctx context.Context, limit int) ([]game.Player, error)
	Count(ctx context.Context) (int64, error)
}

type TimerRepository interface {
	// Enqueue upserts: a second enqueue for the same (owner, kind)
	// replaces the fire time, never duplicates.
	Enqueue(ctx context.Context, t game.Timer) error
	// Cancel removes the timer if present; absent is not an error.
	Cancel(ctx context.Context, ownerID int64, kind game.TimerKind) error
	Get(ctx context.Context, ownerID int64, kind game.TimerKind) (game.Timer, error)
	// ListDue returns timers with FiresAt <= now ordered by fire time.
	ListDue(ctx context.Context, now time.Time) ([]game.Timer, error)
	// FindByKind returns the earliest pending timer of the kind
	// regardless of owner, or ErrNotFound. Used by dice matchmaking.
	FindByKind(ctx context.Context, kind game.TimerKind) (game.Timer, error)
	DeleteByOwner(ctx context.Context, ownerID int64) error
}

type ItemRepository interface {
	Get(ctx context.Context, id, playerID int64) (game.Item, error)
	ListByPlayer(ctx context.Context, playerID int64) ([]game.Item, error)
	ListBySlot(ctx context.Context, playerID int64, slot game.Slot) ([]game.Item, error)
	CountInBag(ctx context.Context, playerID int64) (int, error)
	Create(ctx context.Context, item *game.Item) error
	Save(ctx context.Context, item game.Item) error
	Delete(ctx context.Context, id int64) error
	DeleteByPlayer(ctx context.Context, playerID int64) error

	GetBase(ctx context.Context, id int64) (game.BaseItem, error)
	ListShop(ctx context.Context) ([]game.BaseItem, error)
	UpsertBase(ctx context.Context, base game.BaseItem) error
}

// RankKind names one leaderboard.
type RankKind string

const (
	RankBattle   RankKind = "battle"
	RankDice     RankKind = "dice"
	RankCauldron RankKind = "cauldron"
	RankSentinel RankKind = "sentinel"
)

type RankEntry struct {
	PlayerID int64
	Name     string
	Score    int
}

type RankRepository interface {
	// Add increments a player's score, creating the row on first use.
	Add(ctx context.Context, kind RankKind, playerID int64, delta int) error
	// Score returns 0 for players with no row.
	Score(ctx context.Context, kind RankKind, playerID int64) (int, error)
	Top(ctx context.Context, kind RankKind, limit int) ([]RankEntry, error)
	// Reset bulk-clears whole leaderboards.
	Reset(ctx context.Context, kinds ...RankKind) error
	DeleteByPlayer(ctx context.Context, playerID int64) error
}

type TacticEntry struct {
	PlayerID int64
	Tactic   game.Tactic
}

type BattleRepository interface {
	// SetTactic upserts the player's single pending tactic.
	SetTactic(ctx context.Context, playerID int64, tactic game.Tactic) error
	GetTactic(ctx context.Context, playerID int64) (game.Tactic, error)
	ListTactics(ctx context.Context) ([]TacticEntry, error)
	DeleteTactic(ctx context.Context, playerID int64) error
	// SaveReport overwrites the player's single report slot.
	SaveReport(ctx context.Context, playerID int64, r game.BattleReport) error
	GetReport(ctx context.Context, playerID int64) (game.BattleReport, error)
	ClearReports(ctx context.Context) error
	DeleteByPlayer(ctx context.Context, playerID int64) error
}

type CauldronRepository interface {
	// TossCoin fails with ErrConflict if the player already tossed one.
	TossCoin(ctx context.Context, playerID int64) error
	HasCoin(ctx context.Context, playerID int64) (bool, error)
	ListCoins(ctx context.Context) ([]int64, error)
	ClearCoins(ctx context.Context) error
	DeleteByPlayer(ctx context.Context, playerID int64) error
}

type SkillRepository interface {
	GetBase(ctx context.Context, id int64) (game.BaseSkill, error)
	ListBases(ctx context.Context) ([]game.BaseSkill, error)
	UpsertBase(ctx context.Context, base game.BaseSkill) error

	Get(ctx context.Context, playerID, baseID int64) (game.Skill, error)
	ListByPlayer(ctx context.Context, playerID int64) ([]game.Skill, error)
	Save(ctx context.Context, s game.Skill) error
	DeleteByPlayer(ctx context.Context, playerID int64) error
}
