package game

import "time"

// WorldID is the reserved owner id for the world singleton. Player ids
// are always positive.
const WorldID int64 = 0

const (
	MaxLevel        = 3
	StartingLevel   = 1
	StartingAttack  = 1
	StartingDefense = 1
	StartingGold    = 0
	StartingBagSize = 15

	MaxHP      = 40
	MaxStamina = 5

	RanksMinLevel = 3
	ResetNameCost = 1000

	DiceFee           = 10
	CauldronTossPrice = 1
	CauldronGift      = 100
)

const (
	StaminaRegenInterval = time.Hour
	HPRegenInterval      = 30 * time.Second
	ThiefWatchWindow     = 3 * time.Minute
	DiceWait             = 5 * time.Minute
	BattlePeriod         = 8 * time.Hour

	// Commands that change player state are refused this close to the
	// next world battle.
	PreBattleLockout = 10 * time.Minute
)

// StateKind tags the mutually exclusive primary state of a player.
type StateKind string

const (
	StateResting     StateKind = "resting"
	StatePlayingDice StateKind = "playing_dice"
	StateHealing     StateKind = "healing"
	StateWatching    StateKind = "watching"
	StateWatched     StateKind = "watched"
	StateInQuest     StateKind = "in_quest"
)

// State is the player's primary state. Quest is meaningful only when
// Kind == StateInQuest.
type State struct {
	Kind  StateKind `json:"kind"`
	Quest QuestID   `json:"quest,omitempty"`
}

func Resting() State              { return State{Kind: StateResting} }
func InQuest(id QuestID) State    { return State{Kind: StateInQuest, Quest: id} }
func (s State) IsResting() bool   { return s.Kind == StateResting }
func (s State) IsInQuest() bool   { return s.Kind == StateInQuest }

// TimerKind names a durable timer. A (kind, owner) pair is unique.
type TimerKind string

const (
	// Player timers.
	TimerStamina    TimerKind = "stamina"
	TimerHealing    TimerKind = "healing"
	TimerThiefWatch TimerKind = "thief_watch"
	TimerDice       TimerKind = "dice"
	TimerQuest      TimerKind = "quest"

	// World timers.
	TimerBattle TimerKind = "battle"
	TimerDay    TimerKind = "day"
	TimerMonth  TimerKind = "month"
	TimerYear   TimerKind = "year"
)

// Timer is a durable (kind, owner, fire-time) record. QuestID is set
// only for TimerQuest.
type Timer struct {
	OwnerID int64
	Kind    TimerKind
	QuestID QuestID
	FiresAt time.Time
}

// Notification is an outbound message for a player. Delivery is
// best-effort and decoupled from the transaction that produced it.
type Notification struct {
	PlayerID int64
	Text     string
}
