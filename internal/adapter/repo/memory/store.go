// Package memory backs the repositories with maps for tests. The tx
// manager's lock is the only synchronization; repos assume it is held.
package memory

import (
	"sync"

	"deltaland/internal/domain/game"
)

type timerKey struct {
	ownerID int64
	kind    game.TimerKind
}

type skillKey struct {
	playerID int64
	baseID   int64
}

type rankKey struct {
	kind     string
	playerID int64
}

type Store struct {
	mu         sync.Mutex
	players    map[int64]game.Player
	timers     map[timerKey]game.Timer
	items      map[int64]game.Item
	nextItemID int64
	baseItems  map[int64]game.BaseItem
	skills     map[skillKey]game.Skill
	baseSkills map[int64]game.BaseSkill
	ranks      map[rankKey]int
	tactics    map[int64]game.Tactic
	reports    map[int64]game.BattleReport
	coins      []int64
}

func NewStore() *Store {
	return &Store{
		players:    make(map[int64]game.Player),
		timers:     make(map[timerKey]game.Timer),
		items:      make(map[int64]game.Item),
		baseItems:  make(map[int64]game.BaseItem),
		skills:     make(map[skillKey]game.Skill),
		baseSkills: make(map[int64]game.BaseSkill),
		ranks:      make(map[rankKey]int),
		tactics:    make(map[int64]game.Tactic),
		reports:    make(map[int64]game.BattleReport),
	}
}

func (s *Store) SeedPlayer(p game.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[p.ID] = p
}

func (s *Store) SeedTimer(t game.Timer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timers[timerKey{ownerID: t.OwnerID, kind: t.Kind}] = t
}

// PlayerState reads a player outside any transaction, for assertions.
func (s *Store) PlayerState(id int64) (game.Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[id]
	return p, ok
}
