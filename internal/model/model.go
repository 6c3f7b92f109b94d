package model

import "time"

// Outcome is a single match result from the viewpoint player's perspective.
type Outcome string

const (
	OutcomeWin  Outcome = "W"
	OutcomeLoss Outcome = "L"
)

// Match is one recorded badminton game between two teams. The payer is on the
// losing side, the receiver on the winning side; an amount of zero marks a
// friendly (non-monetary) match. Amounts are integer minor currency units
// (cents) — floats never enter the settlement path.
type Match struct {
	ID          string
	SessionID   string
	PlayedAt    time.Time
	Team1       []string // 1–2 player names, disjoint from Team2
	Team2       []string
	Payer       string
	Receiver    string
	AmountCents int64
	Paid        bool
	PaidBy      string // optional: who marked it settled
}

// IsFriendly reports whether no money changed hands.
func (m *Match) IsFriendly() bool {
	return m.AmountCents == 0
}

// Players returns every participant, team1 first.
func (m *Match) Players() []string {
	out := make([]string, 0, len(m.Team1)+len(m.Team2))
	out = append(out, m.Team1...)
	out = append(out, m.Team2...)
	return out
}

// Session groups matches played together (one court booking, typically).
type Session struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// SessionSummary is a lightweight record for list commands.
type SessionSummary struct {
	ID         string
	Name       string
	CreatedAt  time.Time
	MatchCount int
	TotalCents int64 // sum of all match amounts in the session
}

// Tally is the aggregated record for one counterparty (opponent or partner)
// relative to the viewpoint player.
type Tally struct {
	Name       string
	Wins       int
	Losses     int
	Encounters []Outcome // chronological, oldest first
	NetCents   int64     // signed: positive = viewpoint came out ahead
}

// Total returns the number of matches in the tally.
func (t *Tally) Total() int {
	return t.Wins + t.Losses
}

// WinRate returns wins / total, or 0 with no matches.
func (t *Tally) WinRate() float64 {
	n := t.Total()
	if n == 0 {
		return 0
	}
	return float64(t.Wins) / float64(n)
}

// Settlement is a single directional payment instruction.
type Settlement struct {
	From        string
	To          string
	AmountCents int64
}

// StreakStats holds run-length statistics over a player's outcome sequence.
type StreakStats struct {
	LongestWinStreak   int
	LongestLossStreak  int
	CurrentStreakType  string // "win", "loss", or "none"
	CurrentStreakCount int
}

// PlayerSummary is the top-line record for one player across a match set.
type PlayerSummary struct {
	Name     string
	Matches  int
	Wins     int
	Losses   int
	NetCents int64
}

// WinRate returns wins / matches, or 0 with no matches.
func (s *PlayerSummary) WinRate() float64 {
	if s.Matches == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Matches)
}

// ActivityTrend holds rolling-window session counts anchored at "now".
type ActivityTrend struct {
	PastWeek   int // (now-7d, now]
	PriorWeek  int // (now-14d, now-7d]
	PastMonth  int // (now-30d, now]
	PriorMonth int // (now-60d, now-30d]

	WeekDeltaPct  float64
	MonthDeltaPct float64
}
