package stats

import "github.com/pable/go-shuttle-stats/internal/model"

// Streaks computes longest and current win/loss run lengths over a
// chronological outcome sequence in a single forward pass. An empty sequence
// yields the degenerate "none"/0 current streak.
func Streaks(outcomes []model.Outcome) model.StreakStats {
	s := model.StreakStats{CurrentStreakType: "none"}
	winRun, lossRun := 0, 0

	for _, o := range outcomes {
		if o == model.OutcomeWin {
			winRun++
			lossRun = 0
			if winRun > s.LongestWinStreak {
				s.LongestWinStreak = winRun
			}
		} else {
			lossRun++
			winRun = 0
			if lossRun > s.LongestLossStreak {
				s.LongestLossStreak = lossRun
			}
		}
	}

	switch {
	case winRun > 0:
		s.CurrentStreakType = "win"
		s.CurrentStreakCount = winRun
	case lossRun > 0:
		s.CurrentStreakType = "loss"
		s.CurrentStreakCount = lossRun
	}
	return s
}
