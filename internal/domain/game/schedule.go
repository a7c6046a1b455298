package game

import "time"

// NextDayBoundary is midnight of the following day.
func NextDayBoundary(now time.Time) time.Time {
	d := now.AddDate(0, 0, 1)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
}

// NextMonthBoundary is 00:00 on day 1 of the following month. Anchoring
// to day 25 and adding a week lands in the next month regardless of the
// current day of month, including on the 29th-31st; the result is then
// truncated to the month start. Keep this exact algorithm: naive
// AddDate month arithmetic overflows short months.
func NextMonthBoundary(now time.Time) time.Time {
	d := time.Date(now.Year(), now.Month(), 25, 0, 0, 0, 0, now.Location())
	d = d.AddDate(0, 0, 7)
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, now.Location())
}

// NextYearBoundary is Jan 1 00:00 of the following year.
func NextYearBoundary(now time.Time) time.Time {
	return time.Date(now.Year()+1, time.January, 1, 0, 0, 0, 0, now.Location())
}

// NextBattle advances exactly one period from the previous scheduled
// fire time, so a late tick does not accumulate drift.
func NextBattle(last time.Time) time.Time {
	return last.Add(BattlePeriod)
}

// BattleAnchor is the initial anchor for the battle timer on first
// boot: the current hour, truncated.
func BattleAnchor(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 0, 0, 0, now.Location())
}
