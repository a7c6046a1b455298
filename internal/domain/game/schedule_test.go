package game

import (
	"testing"
	"time"
)

func TestNextDayBoundary(t *testing.T) {
	now := time.Date(2024, time.March, 14, 17, 30, 12, 0, time.UTC)
	got := NextDayBoundary(now)
	want := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("NextDayBoundary = %v, want %v", got, want)
	}
}

func TestNextMonthBoundary(t *testing.T) {
	cases := []struct {
		now  time.Time
		want time.Time
	}{
		{
			time.Date(2024, time.January, 3, 10, 0, 0, 0, time.UTC),
			time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			// Day 31: naive AddDate(0, 1, 0) would overflow February.
			time.Date(2024, time.January, 31, 23, 59, 0, 0, time.UTC),
			time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			time.Date(2023, time.December, 28, 1, 0, 0, 0, time.UTC),
			time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tc := range cases {
		if got := NextMonthBoundary(tc.now); !got.Equal(tc.want) {
			t.Fatalf("NextMonthBoundary(%v) = %v, want %v", tc.now, got, tc.want)
		}
	}
}

func TestNextYearBoundary(t *testing.T) {
	now := time.Date(2024, time.June, 2, 8, 0, 0, 0, time.UTC)
	want := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	if got := NextYearBoundary(now); !got.Equal(want) {
		t.Fatalf("NextYearBoundary = %v, want %v", got, want)
	}
}

func TestNextBattle_AnchorsToPreviousFire(t *testing.T) {
	last := time.Date(2024, time.March, 14, 16, 0, 0, 0, time.UTC)
	want := last.Add(BattlePeriod)
	if got := NextBattle(last); !got.Equal(want) {
		t.Fatalf("NextBattle = %v, want %v", got, want)
	}
}

func TestBattleAnchor_TruncatesToHour(t *testing.T) {
	now := time.Date(2024, time.March, 14, 16, 45, 31, 0, time.UTC)
	want := time.Date(2024, time.March, 14, 16, 0, 0, 0, time.UTC)
	if got := BattleAnchor(now); !got.Equal(want) {
		t.Fatalf("BattleAnchor = %v, want %v", got, want)
	}
}
