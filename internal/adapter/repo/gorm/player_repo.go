package gormrepo

import (
	"context"
	"errors"

	"deltaland/internal/adapter/repo/gorm/model"
	"deltaland/internal/app/ports"
	"deltaland/internal/domain/game"

	"gorm.io/gorm"
)

type PlayerRepo struct {
	db *gorm.DB
}

func NewPlayerRepo(db *gorm.DB) PlayerRepo {
	return PlayerRepo{db: db}
}

func (r PlayerRepo) Get(ctx context.Context, id int64) (game.Player, error) {
	var m model.Player
	if err := getDBFromCtx(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return game.Player{}, ports.ErrNotFound
		}
		return game.Player{}, err
	}
	return playerFromModel(m), nil
}

func (r PlayerRepo) Create(ctx context.Context, p game.Player) error {
	m := playerToModel(p)
	if err := getDBFromCtx(ctx, r.db).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ports.ErrConflict
		}
		return err
	}
	return nil
}

func (r PlayerRepo) Save(ctx context.Context, p game.Player) error {
	m := playerToModel(p)
	return getDBFromCtx(ctx, r.db).Save(&m).Error
}

func (r PlayerRepo) Delete(ctx context.Context, id int64) error {
	return getDBFromCtx(ctx, r.db).Where("id = ?", id).Delete(&model.Player{}).Error
}

func (r PlayerRepo) FindRandomResting(ctx context.Context, exclude int64) (game.Player, error) {
	var m model.Player
	err := getDBFromCtx(ctx, r.db).
		Where("state = ? AND id <> ? AND id <> ?", string(game.StateResting), exclude, game.WorldID).
		Order("RANDOM()").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return game.Player{}, ports.ErrNotFound
		}
		return game.Player{}, err
	}
	return playerFromModel(m), nil
}

func (r PlayerRepo) FindSentinelOf(ctx context.Context, thiefID int64) (game.Player, error) {
	var m model.Player
	err := getDBFromCtx(ctx, r.db).Where("watching_id = ?", thiefID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return game.Player{}, ports.ErrNotFound
		}
		return game.Player{}, err
	}
	return playerFromModel(m), nil
}

func (r PlayerRepo) TopGold(ctx context.Context, limit int) ([]game.Player, error) {
	var rows []model.Player
	err := getDBFromCtx(ctx, r.db).
		Where("id <> ?", game.WorldID).
		Order("gold DESC, id ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	players := make([]game.Player, 0, len(rows))
	for _, m := range rows {
		players = append(players, playerFromModel(m))
	}
	return players, nil
}

func (r PlayerRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := getDBFromCtx(ctx, r.db).
		Model(&model.Player{}).
		Where("id <> ?", game.WorldID).
		Count(&count).Error
	return count, err
}

func playerToModel(p game.Player) model.Player {
	return model.Player{
		ID:         p.ID,
		Name:       p.Name,
		Birthday:   p.Birthday,
		LastSeen:   p.LastSeen,
		Level:      int32(p.Level),
		Exp:        int32(p.Exp),
		Attack:     int32(p.Attack),
		MaxAttack:  int32(p.MaxAttack),
		Defense:    int32(p.Defense),
		MaxDefense: int32(p.MaxDefense),
		Hp:         int32(p.HP),
		MaxHp:      int32(p.MaxHP),
		Stamina:    int32(p.Stamina),
		MaxStamina: int32(p.MaxStamina),
		Gold:       int32(p.Gold),
		BagSize:    int32(p.BagSize),
		SkillPts:   int32(p.SkillPts),
		State:      string(p.State.Kind),
		QuestID:    int32(p.State.Quest),
		WatchingID: p.WatchingID,
	}
}

func playerFromModel(m model.Player) game.Player {
	return game.Player{
		ID:         m.ID,
		Name:       m.Name,
		Birthday:   m.Birthday,
		LastSeen:   m.LastSeen,
		Level:      int(m.Level),
		Exp:        int(m.Exp),
		Attack:     int(m.Attack),
		MaxAttack:  int(m.MaxAttack),
		Defense:    int(m.Defense),
		MaxDefense: int(m.MaxDefense),
		HP:         int(m.Hp),
		MaxHP:      int(m.MaxHp),
		Stamina:    int(m.Stamina),
		MaxStamina: int(m.MaxStamina),
		Gold:       int(m.Gold),
		BagSize:    int(m.BagSize),
		SkillPts:   int(m.SkillPts),
		State:      game.State{Kind: game.StateKind(m.State), Quest: game.QuestID(m.QuestID)},
		WatchingID: m.WatchingID,
	}
}
