package gormrepo

import (
	"context"
	"errors"
	"time"

	"deltaland/internal/adapter/repo/gorm/model"
	"deltaland/internal/app/ports"
	"deltaland/internal/domain/game"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TimerRepo struct {
	db *gorm.DB
}

func NewTimerRepo(db *gorm.DB) TimerRepo {
	return TimerRepo{db: db}
}

func (r TimerRepo) Enqueue(ctx context.Context, t game.Timer) error {
	m := model.Timer{
		OwnerID: t.OwnerID,
		Kind:    string(t.Kind),
		QuestID: int32(t.QuestID),
		FiresAt: t.FiresAt,
	}
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}, {Name: "kind"}},
		DoUpdates: clause.AssignmentColumns([]string{"quest_id", "fires_at"}),
	}).Create(&m).Error
}

func (r TimerRepo) Cancel(ctx context.Context, ownerID int64, kind game.TimerKind) error {
	return getDBFromCtx(ctx, r.db).
		Where("owner_id = ? AND kind = ?", ownerID, string(kind)).
		Delete(&model.Timer{}).Error
}

func (r TimerRepo) Get(ctx context.Context, ownerID int64, kind game.TimerKind) (game.Timer, error) {
	var m model.Timer
	err := getDBFromCtx(ctx, r.db).
		Where("owner_id = ? AND kind = ?", ownerID, string(kind)).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return game.Timer{}, ports.ErrNotFound
		}
		return game.Timer{}, err
	}
	return timerFromModel(m), nil
}

func (r TimerRepo) ListDue(ctx context.Context, now time.Time) ([]game.Timer, error) {
	var rows []model.Timer
	err := getDBFromCtx(ctx, r.db).
		Where("fires_at <= ?", now).
		Order("fires_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	timers := make([]game.Timer, 0, len(rows))
	for _, m := range rows {
		timers = append(timers, timerFromModel(m))
	}
	return timers, nil
}

func (r TimerRepo) FindByKind(ctx context.Context, kind game.TimerKind) (game.Timer, error) {
	var m model.Timer
	err := getDBFromCtx(ctx, r.db).
		Where("kind = ?", string(kind)).
		Order("fires_at ASC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return game.Timer{}, ports.ErrNotFound
		}
		return game.Timer{}, err
	}
	return timerFromModel(m), nil
}

func (r TimerRepo) DeleteByOwner(ctx context.Context, ownerID int64) error {
	return getDBFromCtx(ctx, r.db).
		Where("owner_id = ?", ownerID).
		Delete(&model.Timer{}).Error
}

func timerFromModel(m model.Timer) game.Timer {
	return game.Timer{
		OwnerID: m.OwnerID,
		Kind:    game.TimerKind(m.Kind),
		QuestID: game.QuestID(m.QuestID),
		FiresAt: m.FiresAt,
	}
}
