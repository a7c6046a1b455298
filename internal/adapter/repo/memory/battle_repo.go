package memory

import (
	"context"
	"sort"

	"deltaland/internal/app/ports"
	"deltaland/internal/domain/game"
)

type BattleRepo struct {
	store *Store
}

func NewBattleRepo(store *Store) BattleRepo {
	return BattleRepo{store: store}
}

func (r BattleRepo) SetTactic(_ context.Context, playerID int64, tactic game.Tactic) error {
	r.store.tactics[playerID] = tactic
	return nil
}

func (r BattleRepo) GetTactic(_ context.Context, playerID int64) (game.Tactic, error) {
	t, ok := r.store.tactics[playerID]
	if !ok {
		return "", ports.ErrNotFound
	}
	return t, nil
}

func (r BattleRepo) ListTactics(_ context.Context) ([]ports.TacticEntry, error) {
	ids := make([]int64, 0, len(r.store.tactics))
	for id := range r.store.tactics {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	entries := make([]ports.TacticEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, ports.TacticEntry{PlayerID: id, Tactic: r.store.tactics[id]})
	}
	return entries, nil
}

func (r BattleRepo) DeleteTactic(_ context.Context, playerID int64) error {
	delete(r.store.tactics, playerID)
	return nil
}

func (r BattleRepo) SaveReport(_ context.Context, playerID int64, report game.BattleReport) error {
	r.store.reports[playerID] = report
	return nil
}

func (r BattleRepo) GetReport(_ context.Context, playerID int64) (game.BattleReport, error) {
	report, ok := r.store.reports[playerID]
	if !ok {
		return game.BattleReport{}, ports.ErrNotFound
	}
	return report, nil
}

func (r BattleRepo) ClearReports(_ context.Context) error {
	r.store.reports = make(map[int64]game.BattleReport)
	return nil
}

func (r BattleRepo) DeleteByPlayer(_ context.Context, playerID int64) error {
	delete(r.store.tactics, playerID)
	delete(r.store.reports, playerID)
	return nil
}
