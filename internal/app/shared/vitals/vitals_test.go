package vitals

import (
	"context"
	"testing"
	"time"

	"deltaland/internal/adapter/repo/memory"
	"deltaland/internal/domain/game"
)

var testTime = time.Date(2024, time.March, 14, 12, 0, 0, 0, time.UTC)

func TestDamage_ArmsHealingTimer(t *testing.T) {
	store := memory.NewStore()
	timers := memory.NewTimerRepo(store)
	p := game.NewPlayer(1, testTime)
	ctx := context.Background()

	effective, err := Damage(ctx, &p, 10, timers, testTime)
	if err != nil {
		t.Fatalf("Damage error: %v", err)
	}
	if effective != 10 || p.HP != game.MaxHP-10 {
		t.Fatalf("hp %d after %d damage", p.HP, effective)
	}
	timer, err := timers.Get(ctx, 1, game.TimerHealing)
	if err != nil {
		t.Fatalf("healing timer not armed: %v", err)
	}
	if !timer.FiresAt.Equal(testTime.Add(game.HPRegenInterval)) {
		t.Fatalf("healing timer at %v", timer.FiresAt)
	}
}

func TestDamage_KeepsRunningTimer(t *testing.T) {
	store := memory.NewStore()
	timers := memory.NewTimerRepo(store)
	p := game.NewPlayer(1, testTime)
	ctx := context.Background()

	earlier := testTime.Add(10 * time.Second)
	store.SeedTimer(game.Timer{OwnerID: 1, Kind: game.TimerHealing, FiresAt: earlier})
	if _, err := Damage(ctx, &p, 5, timers, testTime); err != nil {
		t.Fatalf("Damage error: %v", err)
	}
	timer, _ := timers.Get(ctx, 1, game.TimerHealing)
	if !timer.FiresAt.Equal(earlier) {
		t.Fatalf("running regen cycle rescheduled to %v", timer.FiresAt)
	}
}

func TestSpendStamina_ArmsRegenTimer(t *testing.T) {
	store := memory.NewStore()
	timers := memory.NewTimerRepo(store)
	p := game.NewPlayer(1, testTime)
	ctx := context.Background()

	if err := SpendStamina(ctx, &p, 2, timers, testTime); err != nil {
		t.Fatalf("SpendStamina error: %v", err)
	}
	if p.Stamina != game.MaxStamina-2 {
		t.Fatalf("stamina %d", p.Stamina)
	}
	timer, err := timers.Get(ctx, 1, game.TimerStamina)
	if err != nil {
		t.Fatalf("stamina timer not armed: %v", err)
	}
	if !timer.FiresAt.Equal(testTime.Add(game.StaminaRegenInterval)) {
		t.Fatalf("stamina timer at %v", timer.FiresAt)
	}
}

func TestGrantExp_LevelUpCancelsStaminaTimer(t *testing.T) {
	store := memory.NewStore()
	timers := memory.NewTimerRepo(store)
	p := game.NewPlayer(1, testTime)
	p.Stamina = 1
	store.SeedTimer(game.Timer{OwnerID: 1, Kind: game.TimerStamina, FiresAt: testTime.Add(time.Hour)})
	ctx := context.Background()

	leveled, err := GrantExp(ctx, &p, game.RequiredExp(2), timers)
	if err != nil {
		t.Fatalf("GrantExp error: %v", err)
	}
	if !leveled || p.Level != 2 {
		t.Fatalf("level %d, want level-up", p.Level)
	}
	if p.Stamina != p.MaxStamina {
		t.Fatalf("stamina %d, want refilled", p.Stamina)
	}
	if _, err := timers.Get(ctx, 1, game.TimerStamina); err == nil {
		t.Fatal("stamina timer survived the refill")
	}
}

func TestGrantExp_NoLevelKeepsTimer(t *testing.T) {
	store := memory.NewStore()
	timers := memory.NewTimerRepo(store)
	p := game.NewPlayer(1, testTime)
	store.SeedTimer(game.Timer{OwnerID: 1, Kind: game.TimerStamina, FiresAt: testTime.Add(time.Hour)})
	ctx := context.Background()

	leveled, err := GrantExp(ctx, &p, 1, timers)
	if err != nil {
		t.Fatalf("GrantExp error: %v", err)
	}
	if leveled {
		t.Fatal("unexpected level-up")
	}
	if _, err := timers.Get(ctx, 1, game.TimerStamina); err != nil {
		t.Fatalf("stamina timer gone: %v", err)
	}
}
