package game

import (
	"testing"
	"time"
)

func TestRequiredExp_Curve(t *testing.T) {
	if got := RequiredExp(1); got != 0 {
		t.Fatalf("level 1 requires %d, want 0", got)
	}
	if got := RequiredExp(2); got != 6 {
		t.Fatalf("level 2 requires %d, want 6", got)
	}
	if got := RequiredExp(3); got != 15 {
		t.Fatalf("level 3 requires %d, want 15", got)
	}
}

func TestRequiredExp_Monotonic(t *testing.T) {
	prev := 0
	for level := 2; level <= 30; level++ {
		need := RequiredExp(level)
		if need <= prev {
			t.Fatalf("RequiredExp(%d)=%d not above RequiredExp(%d)=%d", level, need, level-1, prev)
		}
		prev = need
	}
}

func TestGainExp_SingleLevel(t *testing.T) {
	p := NewPlayer(1, time.Now())
	p.Stamina = 2

	levels := p.GainExp(RequiredExp(2))
	if levels != 1 {
		t.Fatalf("gained %d levels, want 1", levels)
	}
	if p.Level != 2 {
		t.Fatalf("level %d, want 2", p.Level)
	}
	if p.Exp != 0 {
		t.Fatalf("leftover exp %d, want 0", p.Exp)
	}
	if p.SkillPts != 1 {
		t.Fatalf("skill points %d, want 1", p.SkillPts)
	}
	if p.Stamina != p.MaxStamina {
		t.Fatalf("stamina %d, want refill to %d", p.Stamina, p.MaxStamina)
	}
}

func TestGainExp_CrossesMultipleLevels(t *testing.T) {
	p := NewPlayer(1, time.Now())

	levels := p.GainExp(RequiredExp(2) + RequiredExp(3) + 2)
	if levels != 2 {
		t.Fatalf("gained %d levels, want 2", levels)
	}
	if p.Level != MaxLevel {
		t.Fatalf("level %d, want %d", p.Level, MaxLevel)
	}
	if p.SkillPts != 2 {
		t.Fatalf("skill points %d, want 2", p.SkillPts)
	}
}

func TestGainExp_NoopAtMaxLevel(t *testing.T) {
	p := NewPlayer(1, time.Now())
	p.Level = MaxLevel
	p.Exp = 3

	if levels := p.GainExp(1000); levels != 0 {
		t.Fatalf("gained %d levels at cap, want 0", levels)
	}
	if p.Exp != 3 {
		t.Fatalf("exp %d changed at cap", p.Exp)
	}
}
