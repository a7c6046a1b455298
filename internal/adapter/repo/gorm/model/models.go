// Package model holds the gorm row structs, one per table. They mirror
// the SQL migrations; keep both in sync.
package model

import "time"

type Player struct {
	ID         int64  `gorm:"column:id;primaryKey"`
	Name       string `gorm:"column:name"`
	Birthday   time.Time
	LastSeen   time.Time
	Level      int32
	Exp        int32
	Attack     int32
	MaxAttack  int32
	Defense    int32
	MaxDefense int32
	Hp         int32 `gorm:"column:hp"`
	MaxHp      int32 `gorm:"column:max_hp"`
	Stamina    int32
	MaxStamina int32
	Gold       int32
	BagSize    int32
	SkillPts   int32
	State      string
	QuestID    int32
	WatchingID *int64 `gorm:"column:watching_id"`
}

func (Player) TableName() string { return "players" }

type Timer struct {
	OwnerID int64  `gorm:"column:owner_id;primaryKey"`
	Kind    string `gorm:"column:kind;primaryKey"`
	QuestID int32
	FiresAt time.Time
}

func (Timer) TableName() string { return "timers" }

type BaseItem struct {
	ID          int64 `gorm:"column:id;primaryKey"`
	Type        int32
	Tier        int32
	Name        string
	Description string
	Attack      int32
	MaxAttack   int32
	Defense     int32
	MaxDefense  int32
	ShopPrice   int32
}

func (BaseItem) TableName() string { return "base_items" }

type Item struct {
	ID         int64 `gorm:"column:id;primaryKey;autoIncrement"`
	PlayerID   int64
	BaseID     int64
	Slot       int32
	Level      int32
	Attack     int32
	MaxAttack  int32
	Defense    int32
	MaxDefense int32
}

func (Item) TableName() string { return "items" }

type BaseSkill struct {
	ID          int64 `gorm:"column:id;primaryKey"`
	Name        string
	Description string
	MinAtk      int32
	MaxAtk      int32
	MinDef      int32
	MaxDef      int32
	MaxHp       int32 `gorm:"column:max_hp"`
}

func (BaseSkill) TableName() string { return "base_skills" }

type Skill struct {
	PlayerID int64 `gorm:"column:player_id;primaryKey"`
	BaseID   int64 `gorm:"column:base_id;primaryKey"`
	Level    int32
}

func (Skill) TableName() string { return "skills" }

type Rank struct {
	Kind     string `gorm:"column:kind;primaryKey"`
	PlayerID int64  `gorm:"column:player_id;primaryKey"`
	Score    int32
}

func (Rank) TableName() string { return "ranks" }

type BattleTactic struct {
	PlayerID int64 `gorm:"column:player_id;primaryKey"`
	Tactic   string
}

func (BattleTactic) TableName() string { return "battle_tactics" }

type BattleReport struct {
	PlayerID      int64 `gorm:"column:player_id;primaryKey"`
	Tactic        string
	MonsterTactic string
	Exp           int32
	Gold          int32
	Hp            int32 `gorm:"column:hp"`
}

func (BattleReport) TableName() string { return "battle_reports" }

type CauldronCoin struct {
	PlayerID int64 `gorm:"column:player_id;primaryKey"`
	TossedAt time.Time
}

func (CauldronCoin) TableName() string { return "cauldron_coins" }
