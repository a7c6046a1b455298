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

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) SkillRepo {
	return SkillRepo{db: db}
}

func (r SkillRepo) GetBase(ctx context.Context, id int64) (game.BaseSkill, error) {
	var m model.BaseSkill
	if err := getDBFromCtx(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return game.BaseSkill{}, ports.ErrNotFound
		}
		return game.BaseSkill{}, err
	}
	return baseSkillFromModel(m), nil
}

func (r SkillRepo) ListBases(ctx context.Context) ([]game.BaseSkill, error) {
	var rows []model.BaseSkill
	err := getDBFromCtx(ctx, r.db).Order("id ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	bases := make([]game.BaseSkill, 0, len(rows))
	for _, m := range rows {
		bases = append(bases, baseSkillFromModel(m))
	}
	return bases, nil
}

func (r SkillRepo) UpsertBase(ctx context.Context, base game.BaseSkill) error {
	m := model.BaseSkill{
		ID:          base.ID,
		Name:        base.Name,
		Description: base.Description,
		MinAtk:      int32(base.MinAtk),
		MaxAtk:      int32(base.MaxAtk),
		MinDef:      int32(base.MinDef),
		MaxDef:      int32(base.MaxDef),
		MaxHp:       int32(base.MaxHP),
	}
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&m).Error
}

func (r SkillRepo) Get(ctx context.Context, playerID, baseID int64) (game.Skill, error) {
	var m model.Skill
	err := getDBFromCtx(ctx, r.db).
		Where("player_id = ? AND base_id = ?", playerID, baseID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return game.Skill{}, ports.ErrNotFound
		}
		return game.Skill{}, err
	}
	return game.Skill{PlayerID: m.PlayerID, BaseID: m.BaseID, Level: int(m.Level)}, nil
}

func (r SkillRepo) ListByPlayer(ctx context.Context, playerID int64) ([]game.Skill, error) {
	var rows []model.Skill
	err := getDBFromCtx(ctx, r.db).
		Where("player_id = ?", playerID).
		Order("base_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	skills := make([]game.Skill, 0, len(rows))
	for _, m := range rows {
		skills = append(skills, game.Skill{PlayerID: m.PlayerID, BaseID: m.BaseID, Level: int(m.Level)})
	}
	return skills, nil
}

func (r SkillRepo) Save(ctx context.Context, s game.Skill) error {
	m := model.Skill{PlayerID: s.PlayerID, BaseID: s.BaseID, Level: int32(s.Level)}
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "player_id"}, {Name: "base_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"level"}),
	}).Create(&m).Error
}

func (r SkillRepo) DeleteByPlayer(ctx context.Context, playerID int64) error {
	return getDBFromCtx(ctx, r.db).
		Where("player_id = ?", playerID).
		Delete(&model.Skill{}).Error
}

func baseSkillFromModel(m model.BaseSkill) game.BaseSkill {
	return game.BaseSkill{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		MinAtk:      int(m.MinAtk),
		MaxAtk:      int(m.MaxAtk),
		MinDef:      int(m.MinDef),
		MaxDef:      int(m.MaxDef),
		MaxHP:       int(m.MaxHp),
	}
}
