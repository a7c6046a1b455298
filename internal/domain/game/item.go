package game

type ItemType int

const (
	ItemSword  ItemType = 1
	ItemShield ItemType = 2
)

// Slot is where an item sits. Bag is unequipped; hands may hold two
// one-handed items, the other slots hold at most one.
type Slot int

const (
	SlotBag Slot = iota
	SlotHands
	SlotHead
	SlotBody
	SlotFeet
)

const HandCapacity = 2

type Tier int

const TierNone Tier = 0

// BaseItem is the shared template an owned Item instantiates.
type BaseItem struct {
	ID          int64
	Type        ItemType
	Tier        Tier
	Name        string
	Description string
	Attack      int
	MaxAttack   int
	Defense     int
	MaxDefense  int
	ShopPrice   int
}

func (b BaseItem) Equipable() bool {
	return b.Type == ItemSword || b.Type == ItemShield
}

// EquipSlot is the slot this item type occupies when equipped.
func (b BaseItem) EquipSlot() Slot {
	switch b.Type {
	case ItemSword, ItemShield:
		return SlotHands
	}
	return SlotBag
}

// Item belongs to exactly one player. Stats are copied from the base at
// purchase time so later base tweaks don't retroactively change owned
// gear.
type Item struct {
	ID         int64
	PlayerID   int64
	BaseID     int64
	Slot       Slot
	Level      int
	Attack     int
	MaxAttack  int
	Defense    int
	MaxDefense int
}

// RequiredLevel gates equipping by tier.
func RequiredLevel(tier Tier) int {
	return int(tier) * 10
}

// BaseItems is the shop catalog seeded on first boot.
func BaseItems() []BaseItem {
	return []BaseItem{
		{
			ID:          1,
			Type:        ItemSword,
			Name:        "Wooden Sword",
			Description: "The type of wood used in this sword makes it light yet strong, although the same could be said for a broomstick...",
			Attack:      1,
			MaxAttack:   5,
			ShopPrice:   3,
		},
		{
			ID:          2,
			Type:        ItemShield,
			Name:        "Wooden Shield",
			Description: "A basic shield made of wood. To be honest, it looks a lot like the bottom of the barrels in the tavern.",
			Defense:     2,
			MaxDefense:  3,
			ShopPrice:   3,
		},
	}
}
