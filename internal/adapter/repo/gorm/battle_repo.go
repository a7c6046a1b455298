package gormrepo

import (
	"context"
	"errors"

	"deltaland/internal/adapter/repo/gorm/model"
	"deltaland/internal/app/ports"
	"deltaland/internal/domain/game"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BattleRepo struct {
	db *gorm.DB
}

func NewBattleRepo(db *gorm.DB) BattleRepo {
	return BattleRepo{db: db}
}

func (r BattleRepo) SetTactic(ctx context.Context, playerID int64, tactic game.Tactic) error {
	m := model.BattleTactic{PlayerID: playerID, Tactic: string(tactic)}
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "player_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"tactic"}),
	}).Create(&m).Error
}

func (r BattleRepo) GetTactic(ctx context.Context, playerID int64) (game.Tactic, error) {
	var m model.BattleTactic
	err := getDBFromCtx(ctx, r.db).Where("player_id = ?", playerID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ports.ErrNotFound
		}
		return "", err
	}
	return game.Tactic(m.Tactic), nil
}

func (r BattleRepo) ListTactics(ctx context.Context) ([]ports.TacticEntry, error) {
	var rows []model.BattleTactic
	err := getDBFromCtx(ctx, r.db).Order("player_id ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	entries := make([]ports.TacticEntry, 0, len(rows))
	for _, m := range rows {
		entries = append(entries, ports.TacticEntry{
			PlayerID: m.PlayerID,
			Tactic:   game.Tactic(m.Tactic),
		})
	}
	return entries, nil
}

func (r BattleRepo) DeleteTactic(ctx context.Context, playerID int64) error {
	return getDBFromCtx(ctx, r.db).
		Where("player_id = ?", playerID).
		Delete(&model.BattleTactic{}).Error
}

func (r BattleRepo) SaveReport(ctx context.Context, playerID int64, report game.BattleReport) error {
	m := model.BattleReport{
		PlayerID:      playerID,
		Tactic:        string(report.Tactic),
		MonsterTactic: string(report.MonsterTactic),
		Exp:           int32(report.Exp),
		Gold:          int32(report.Gold),
		Hp:            int32(report.HP),
	}
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "player_id"}},
		UpdateAll: true,
	}).Create(&m).Error
}

func (r BattleRepo) GetReport(ctx context.Context, playerID int64) (game.BattleReport, error) {
	var m model.BattleReport
	err := getDBFromCtx(ctx, r.db).Where("player_id = ?", playerID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return game.BattleReport{}, ports.ErrNotFound
		}
		return game.BattleReport{}, err
	}
	return game.BattleReport{
		Tactic:        game.Tactic(m.Tactic),
		MonsterTactic: game.Tactic(m.MonsterTactic),
		Exp:           int(m.Exp),
		Gold:          int(m.Gold),
		HP:            int(m.Hp),
	}, nil
}

func (r BattleRepo) ClearReports(ctx context.Context) error {
	return getDBFromCtx(ctx, r.db).
		Where("player_id >= 0").
		Delete(&model.BattleReport{}).Error
}

func (r BattleRepo) DeleteByPlayer(ctx context.Context, playerID int64) error {
	db := getDBFromCtx(ctx, r.db)
	if err := db.Where("player_id = ?", playerID).Delete(&model.BattleTactic{}).Error; err != nil {
		return err
	}
	return db.Where("player_id = ?", playerID).Delete(&model.BattleReport{}).Error
}
