package gormrepo

import (
	"context"

	"deltaland/internal/adapter/repo/gorm/model"
	"deltaland/internal/app/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RankRepo struct {
	db *gorm.DB
}

func NewRankRepo(db *gorm.DB) RankRepo {
	return RankRepo{db: db}
}

func (r RankRepo) Add(ctx context.Context, kind ports.RankKind, playerID int64, delta int) error {
	m := model.Rank{Kind: string(kind), PlayerID: playerID, Score: int32(delta)}
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "kind"}, {Name: "player_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"score": gorm.Expr("ranks.score + ?", delta),
		}),
	}).Create(&m).Error
}

func (r RankRepo) Score(ctx context.Context, kind ports.RankKind, playerID int64) (int, error) {
	var m model.Rank
	err := getDBFromCtx(ctx, r.db).
		Where("kind = ? AND player_id = ?", string(kind), playerID).
		First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, err
	}
	return int(m.Score), nil
}

func (r RankRepo) Top(ctx context.Context, kind ports.RankKind, limit int) ([]ports.RankEntry, error) {
	var rows []struct {
		PlayerID int64
		Name     string
		Score    int32
	}
	err := getDBFromCtx(ctx, r.db).
		Table("ranks").
		Select("ranks.player_id, players.name, ranks.score").
		Joins("JOIN players ON players.id = ranks.player_id").
		Where("ranks.kind = ?", string(kind)).
		Order("ranks.score DESC, ranks.player_id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	entries := make([]ports.RankEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, ports.RankEntry{
			PlayerID: row.PlayerID,
			Name:     row.Name,
			Score:    int(row.Score),
		})
	}
	return entries, nil
}

func (r RankRepo) Reset(ctx context.Context, kinds ...ports.RankKind) error {
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, string(k))
	}
	return getDBFromCtx(ctx, r.db).
		Where("kind IN ?", names).
		Delete(&model.Rank{}).Error
}

func (r RankRepo) DeleteByPlayer(ctx context.Context, playerID int64) error {
	return getDBFromCtx(ctx, r.db).
		Where("player_id = ?", playerID).
		Delete(&model.Rank{}).Error
}
