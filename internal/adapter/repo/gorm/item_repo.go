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

type ItemRepo struct {
	db *gorm.DB
}

func NewItemRepo(db *gorm.DB) ItemRepo {
	return ItemRepo{db: db}
}

func (r ItemRepo) Get(ctx context.Context, id, playerID int64) (game.Item, error) {
	var m model.Item
	err := getDBFromCtx(ctx, r.db).
		Where("id = ? AND player_id = ?", id, playerID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return game.Item{}, ports.ErrNotFound
		}
		return game.Item{}, err
	}
	return itemFromModel(m), nil
}

func (r ItemRepo) ListByPlayer(ctx context.Context, playerID int64) ([]game.Item, error) {
	var rows []model.Item
	err := getDBFromCtx(ctx, r.db).
		Where("player_id = ?", playerID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return itemsFromModels(rows), nil
}

func (r ItemRepo) ListBySlot(ctx context.Context, playerID int64, slot game.Slot) ([]game.Item, error) {
	var rows []model.Item
	err := getDBFromCtx(ctx, r.db).
		Where("player_id = ? AND slot = ?", playerID, int32(slot)).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return itemsFromModels(rows), nil
}

func (r ItemRepo) CountInBag(ctx context.Context, playerID int64) (int, error) {
	var count int64
	err := getDBFromCtx(ctx, r.db).
		Model(&model.Item{}).
		Where("player_id = ? AND slot = ?", playerID, int32(game.SlotBag)).
		Count(&count).Error
	return int(count), err
}

func (r ItemRepo) Create(ctx context.Context, item *game.Item) error {
	m := itemToModel(*item)
	if err := getDBFromCtx(ctx, r.db).Create(&m).Error; err != nil {
		return err
	}
	item.ID = m.ID
	return nil
}

func (r ItemRepo) Save(ctx context.Context, item game.Item) error {
	m := itemToModel(item)
	return getDBFromCtx(ctx, r.db).Save(&m).Error
}

func (r ItemRepo) Delete(ctx context.Context, id int64) error {
	return getDBFromCtx(ctx, r.db).Where("id = ?", id).Delete(&model.Item{}).Error
}

func (r ItemRepo) DeleteByPlayer(ctx context.Context, playerID int64) error {
	return getDBFromCtx(ctx, r.db).Where("player_id = ?", playerID).Delete(&model.Item{}).Error
}

func (r ItemRepo) GetBase(ctx context.Context, id int64) (game.BaseItem, error) {
	var m model.BaseItem
	if err := getDBFromCtx(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return game.BaseItem{}, ports.ErrNotFound
		}
		return game.BaseItem{}, err
	}
	return baseItemFromModel(m), nil
}

func (r ItemRepo) ListShop(ctx context.Context) ([]game.BaseItem, error) {
	var rows []model.BaseItem
	err := getDBFromCtx(ctx, r.db).
		Where("shop_price > 0").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	bases := make([]game.BaseItem, 0, len(rows))
	for _, m := range rows {
		bases = append(bases, baseItemFromModel(m))
	}
	return bases, nil
}

func (r ItemRepo) UpsertBase(ctx context.Context, base game.BaseItem) error {
	m := model.BaseItem{
		ID:          base.ID,
		Type:        int32(base.Type),
		Tier:        int32(base.Tier),
		Name:        base.Name,
		Description: base.Description,
		Attack:      int32(base.Attack),
		MaxAttack:   int32(base.MaxAttack),
		Defense:     int32(base.Defense),
		MaxDefense:  int32(base.MaxDefense),
		ShopPrice:   int32(base.ShopPrice),
	}
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&m).Error
}

func itemToModel(i game.Item) model.Item {
	return model.Item{
		ID:         i.ID,
		PlayerID:   i.PlayerID,
		BaseID:     i.BaseID,
		Slot:       int32(i.Slot),
		Level:      int32(i.Level),
		Attack:     int32(i.Attack),
		MaxAttack:  int32(i.MaxAttack),
		Defense:    int32(i.Defense),
		MaxDefense: int32(i.MaxDefense),
	}
}

func itemFromModel(m model.Item) game.Item {
	return game.Item{
		ID:         m.ID,
		PlayerID:   m.PlayerID,
		BaseID:     m.BaseID,
		Slot:       game.Slot(m.Slot),
		Level:      int(m.Level),
		Attack:     int(m.Attack),
		MaxAttack:  int(m.MaxAttack),
		Defense:    int(m.Defense),
		MaxDefense: int(m.MaxDefense),
	}
}

func itemsFromModels(rows []model.Item) []game.Item {
	items := make([]game.Item, 0, len(rows))
	for _, m := range rows {
		items = append(items, itemFromModel(m))
	}
	return items
}

func baseItemFromModel(m model.BaseItem) game.BaseItem {
	return game.BaseItem{
		ID:          m.ID,
		Type:        game.ItemType(m.Type),
		Tier:        game.Tier(m.Tier),
		Name:        m.Name,
		Description: m.Description,
		Attack:      int(m.Attack),
		MaxAttack:   int(m.MaxAttack),
		Defense:     int(m.Defense),
		MaxDefense:  int(m.MaxDefense),
		ShopPrice:   int(m.ShopPrice),
	}
}
