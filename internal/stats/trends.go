package stats

import (
	"time"

	"github.com/pable/go-shuttle-stats/internal/model"
)

// Clock supplies "now" for time-window bucketing. Injected so trend output
// is deterministic under test.
type Clock func() time.Time

// SessionTrend counts sessions in rolling windows anchored at now: past 7
// days vs the 7 before them, and past 30 days vs the 30 before them. Windows
// are half-open: (now-7d, now], (now-14d, now-7d], and so on.
//
// Deltas are (current-previous)/previous*100, defined as 0 when the previous
// window is empty — a jump from 0 to N reads as 0%, never an infinity.
func SessionTrend(sessions []model.Session, now Clock) model.ActivityTrend {
	anchor := now()
	week := anchor.AddDate(0, 0, -7)
	twoWeeks := anchor.AddDate(0, 0, -14)
	month := anchor.AddDate(0, 0, -30)
	twoMonths := anchor.AddDate(0, 0, -60)

	var t model.ActivityTrend
	for _, s := range sessions {
		at := s.CreatedAt
		if at.After(anchor) {
			continue
		}
		if at.After(week) {
			t.PastWeek++
		} else if at.After(twoWeeks) {
			t.PriorWeek++
		}
		if at.After(month) {
			t.PastMonth++
		} else if at.After(twoMonths) {
			t.PriorMonth++
		}
	}
	t.WeekDeltaPct = deltaPct(t.PastWeek, t.PriorWeek)
	t.MonthDeltaPct = deltaPct(t.PastMonth, t.PriorMonth)
	return t
}

func deltaPct(current, previous int) float64 {
	if previous == 0 {
		return 0
	}
	return float64(current-previous) / float64(previous) * 100
}
