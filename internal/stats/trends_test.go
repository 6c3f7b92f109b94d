package stats

import (
	"testing"
	"time"

	"github.com/pable/go-shuttle-stats/internal/model"
)

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func session(id string, createdAt time.Time) model.Session {
	return model.Session{ID: id, Name: id, CreatedAt: createdAt}
}

func TestSessionTrend_Windows(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	sessions := []model.Session{
		session("a", now.AddDate(0, 0, -1)),  // past week + past month
		session("b", now.AddDate(0, 0, -3)),  // past week + past month
		session("c", now.AddDate(0, 0, -10)), // prior week + past month
		session("d", now.AddDate(0, 0, -40)), // prior month only
		session("e", now.AddDate(0, 0, -90)), // outside every window
	}

	tr := SessionTrend(sessions, fixedClock(now))
	if tr.PastWeek != 2 || tr.PriorWeek != 1 {
		t.Errorf("week counts: want 2/1, got %d/%d", tr.PastWeek, tr.PriorWeek)
	}
	if tr.PastMonth != 3 || tr.PriorMonth != 1 {
		t.Errorf("month counts: want 3/1, got %d/%d", tr.PastMonth, tr.PriorMonth)
	}
	if tr.WeekDeltaPct != 100 {
		t.Errorf("week delta: want +100%%, got %f", tr.WeekDeltaPct)
	}
	if tr.MonthDeltaPct != 200 {
		t.Errorf("month delta: want +200%%, got %f", tr.MonthDeltaPct)
	}
}

// A jump from zero reads as 0%, never a division by zero.
func TestSessionTrend_ZeroPreviousWindow(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	var sessions []model.Session
	for i := 0; i < 5; i++ {
		sessions = append(sessions, session(string(rune('a'+i)), now.AddDate(0, 0, -2)))
	}

	tr := SessionTrend(sessions, fixedClock(now))
	if tr.PastWeek != 5 || tr.PriorWeek != 0 {
		t.Fatalf("counts: want 5/0, got %d/%d", tr.PastWeek, tr.PriorWeek)
	}
	if tr.WeekDeltaPct != 0 {
		t.Errorf("0→5 sessions must report 0%%, got %f", tr.WeekDeltaPct)
	}
}

func TestSessionTrend_FutureSessionsIgnored(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	sessions := []model.Session{
		session("future", now.AddDate(0, 0, 1)),
	}
	tr := SessionTrend(sessions, fixedClock(now))
	if tr.PastWeek != 0 || tr.PastMonth != 0 {
		t.Errorf("future sessions must not count, got %+v", tr)
	}
}
