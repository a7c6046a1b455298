package memory

import (
	"context"
	"sort"

	"deltaland/internal/app/ports"
	"deltaland/internal/domain/game"
)

type SkillRepo struct {
	store *Store
}

func NewSkillRepo(store *Store) SkillRepo {
	return SkillRepo{store: store}
}

func (r SkillRepo) GetBase(_ context.Context, id int64) (game.BaseSkill, error) {
	base, ok := r.store.baseSkills[id]
	if !ok {
		return game.BaseSkill{}, ports.ErrNotFound
	}
	return base, nil
}

func (r SkillRepo) ListBases(_ context.Context) ([]game.BaseSkill, error) {
	ids := make([]int64, 0, len(r.store.baseSkills))
	for id := range r.store.baseSkills {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	bases := make([]game.BaseSkill, 0, len(ids))
	for _, id := range ids {
		bases = append(bases, r.store.baseSkills[id])
	}
	return bases, nil
}

func (r SkillRepo) UpsertBase(_ context.Context, base game.BaseSkill) error {
	r.store.baseSkills[base.ID] = base
	return nil
}

func (r SkillRepo) Get(_ context.Context, playerID, baseID int64) (game.Skill, error) {
	s, ok := r.store.skills[skillKey{playerID: playerID, baseID: baseID}]
	if !ok {
		return game.Skill{}, ports.ErrNotFound
	}
	return s, nil
}

func (r SkillRepo) ListByPlayer(_ context.Context, playerID int64) ([]game.Skill, error) {
	var keys []skillKey
	for key := range r.store.skills {
		if key.playerID == playerID {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].baseID < keys[j].baseID })
	skills := make([]game.Skill, 0, len(keys))
	for _, key := range keys {
		skills = append(skills, r.store.skills[key])
	}
	return skills, nil
}

func (r SkillRepo) Save(_ context.Context, s game.Skill) error {
	r.store.skills[skillKey{playerID: s.PlayerID, baseID: s.BaseID}] = s
	return nil
}

func (r SkillRepo) DeleteByPlayer(_ context.Context, playerID int64) error {
	for key := range r.store.skills {
		if key.playerID == playerID {
			delete(r.store.skills, key)
		}
	}
	return nil
}
