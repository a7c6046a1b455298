package game

import (
	"fmt"
	"strings"
	"time"
)

// Player is one participant. The world singleton reuses the same record
// under WorldID so world timers have an owner row.
type Player struct {
	ID         int64
	Name       string
	Birthday   time.Time
	LastSeen   time.Time
	Level      int
	Exp        int
	Attack     int
	MaxAttack  int
	Defense    int
	MaxDefense int
	HP         int
	MaxHP      int
	Stamina    int
	MaxStamina int
	Gold       int
	BagSize    int
	SkillPts   int
	State      State

	// WatchingID is set on the sentinel side of a thief watch and
	// references the thief. The thief's mirrored state is StateWatched;
	// there is no reverse field.
	WatchingID *int64
}

func NewPlayer(id int64, now time.Time) Player {
	return Player{
		ID:         id,
		Birthday:   now,
		LastSeen:   now,
		Level:      StartingLevel,
		Attack:     StartingAttack,
		MaxAttack:  StartingAttack,
		Defense:    StartingDefense,
		MaxDefense: StartingDefense,
		HP:         MaxHP,
		MaxHP:      MaxHP,
		Stamina:    MaxStamina,
		MaxStamina: MaxStamina,
		Gold:       StartingGold,
		BagSize:    StartingBagSize,
		State:      Resting(),
	}
}

// DisplayName is the player's chosen name or a placeholder.
func (p *Player) DisplayName() string {
	if strings.TrimSpace(p.Name) == "" {
		return "Stranger"
	}
	return p.Name
}

func (p *Player) TaggedName() string {
	return fmt.Sprintf("%s (#%d)", p.DisplayName(), p.ID)
}

// GainExp adds experience, crossing as many levels as the amount
// covers, and returns how many levels were gained. Each gained level
// grants one skill point and refills stamina. Exp at max level is
// discarded.
func (p *Player) GainExp(exp int) int {
	if p.Level >= MaxLevel {
		return 0
	}
	p.Exp += exp
	levels := 0
	need := RequiredExp(p.Level + 1)
	for p.Exp >= need && p.Level < MaxLevel {
		p.Exp -= need
		p.Level++
		levels++
		if p.Level >= MaxLevel {
			break
		}
		need = RequiredExp(p.Level + 1)
	}
	if levels > 0 {
		p.SkillPts += levels
		if p.Stamina < p.MaxStamina {
			p.Stamina = p.MaxStamina
		}
	}
	return levels
}

// ReduceHP lowers hit points by up to the given amount, never below 1,
// and returns the effective reduction.
func (p *Player) ReduceHP(points int) int {
	if points > p.HP-1 {
		points = p.HP - 1
	}
	if points < 0 {
		points = 0
	}
	p.HP -= points
	return points
}

// HealHP raises hit points up to the maximum and returns the effective
// gain.
func (p *Player) HealHP(points int) int {
	if points > p.MaxHP-p.HP {
		points = p.MaxHP - p.HP
	}
	if points < 0 {
		points = 0
	}
	p.HP += points
	return points
}

func (p *Player) ReduceStamina(points int) {
	p.Stamina -= points
	if p.Stamina < 0 {
		p.Stamina = 0
	}
}

// FitForQuest reports whether hit points are high enough to leave town.
func (p *Player) FitForQuest() bool {
	threshold := p.MaxHP / 4
	if threshold > 100 {
		threshold = 100
	}
	return p.HP >= threshold
}

// StartWatching links this player (sentinel) to the thief it noticed.
func (p *Player) StartWatching(thief *Player) {
	id := thief.ID
	p.WatchingID = &id
	p.State = State{Kind: StateWatching}
	thief.State = State{Kind: StateWatched}
}

// StopWatching clears the watch link and returns both sides to rest.
func (p *Player) StopWatching(thief *Player) {
	p.WatchingID = nil
	p.State = Resting()
	thief.State = Resting()
}
