package gormrepo

import (
	"context"
	"errors"
	"time"

	"deltaland/internal/adapter/repo/gorm/model"
	"deltaland/internal/app/ports"

	"gorm.io/gorm"
)

type CauldronRepo struct {
	db  *gorm.DB
	now func() time.Time
}

func NewCauldronRepo(db *gorm.DB) CauldronRepo {
	return CauldronRepo{db: db, now: time.Now}
}

func (r CauldronRepo) TossCoin(ctx context.Context, playerID int64) error {
	m := model.CauldronCoin{PlayerID: playerID, TossedAt: r.now()}
	if err := getDBFromCtx(ctx, r.db).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ports.ErrConflict
		}
		return err
	}
	return nil
}

func (r CauldronRepo) HasCoin(ctx context.Context, playerID int64) (bool, error) {
	var count int64
	err := getDBFromCtx(ctx, r.db).
		Model(&model.CauldronCoin{}).
		Where("player_id = ?", playerID).
		Count(&count).Error
	return count > 0, err
}

func (r CauldronRepo) ListCoins(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := getDBFromCtx(ctx, r.db).
		Model(&model.CauldronCoin{}).
		Order("tossed_at ASC").
		Pluck("player_id", &ids).Error
	return ids, err
}

func (r CauldronRepo) ClearCoins(ctx context.Context) error {
	return getDBFromCtx(ctx, r.db).
		Where("player_id >= 0").
		Delete(&model.CauldronCoin{}).Error
}

func (r CauldronRepo) DeleteByPlayer(ctx context.Context, playerID int64) error {
	return getDBFromCtx(ctx, r.db).
		Where("player_id = ?", playerID).
		Delete(&model.CauldronCoin{}).Error
}
