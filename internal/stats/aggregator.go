package stats

import (
	"errors"
	"sort"

	"github.com/pable/go-shuttle-stats/internal/model"
)

// Axis selects which counterparties a fold tallies against.
type Axis int

const (
	ByOpponent Axis = iota
	ByPartner
)

// Aggregation is the result of folding a match list from one player's
// perspective. Tallies is keyed by counterparty name and carries no implied
// order; callers sort for display. Skipped counts records dropped for
// contract violations (malformed teams, bad payer/receiver) — a bad record
// must not abort statistics for the rest of the session.
type Aggregation struct {
	Tallies map[string]*model.Tally
	Skipped int
}

// Aggregate folds matches into per-counterparty win/loss tallies, encounter
// sequences, and net amounts for the viewpoint player. Matches are sorted by
// PlayedAt ascending before the fold so Encounters come out chronological
// regardless of input order; everything else is order-insensitive.
func Aggregate(matches []model.Match, viewpoint string, axis Axis) Aggregation {
	agg := Aggregation{Tallies: make(map[string]*model.Tally)}

	for _, m := range sortedByTime(matches) {
		if err := m.Validate(); err != nil {
			agg.Skipped++
			continue
		}
		p, err := Resolve(&m, viewpoint)
		if err != nil {
			// Not this player's match, or no determinable winner; Validate
			// already counted malformed records, so just move on.
			if errors.Is(err, ErrNoWinner) {
				agg.Skipped++
			}
			continue
		}

		counterparties := p.Opponents
		if axis == ByPartner {
			counterparties = p.Teammates
		}

		outcome := model.OutcomeLoss
		delta := -m.AmountCents
		if p.Won {
			outcome = model.OutcomeWin
			delta = m.AmountCents
		}

		for _, name := range counterparties {
			t := agg.Tallies[name]
			if t == nil {
				t = &model.Tally{Name: name}
				agg.Tallies[name] = t
			}
			if p.Won {
				t.Wins++
			} else {
				t.Losses++
			}
			t.Encounters = append(t.Encounters, outcome)
			t.NetCents += delta
		}
	}
	return agg
}

// Outcomes returns the viewpoint player's own chronological W/L sequence,
// the input to streak computation.
func Outcomes(matches []model.Match, viewpoint string) []model.Outcome {
	var out []model.Outcome
	for _, m := range sortedByTime(matches) {
		if m.Validate() != nil {
			continue
		}
		p, err := Resolve(&m, viewpoint)
		if err != nil {
			continue
		}
		if p.Won {
			out = append(out, model.OutcomeWin)
		} else {
			out = append(out, model.OutcomeLoss)
		}
	}
	return out
}

// Summarize rolls a match list up into one player's top-line record.
func Summarize(matches []model.Match, viewpoint string) model.PlayerSummary {
	s := model.PlayerSummary{Name: viewpoint}
	for _, m := range matches {
		if m.Validate() != nil {
			continue
		}
		p, err := Resolve(&m, viewpoint)
		if err != nil {
			continue
		}
		s.Matches++
		if p.Won {
			s.Wins++
			s.NetCents += m.AmountCents
		} else {
			s.Losses++
			s.NetCents -= m.AmountCents
		}
	}
	return s
}

// Recent returns the viewpoint player's n most recent matches in
// chronological order. n <= 0 returns all of the player's matches.
func Recent(matches []model.Match, viewpoint string, n int) []model.Match {
	var own []model.Match
	for _, m := range sortedByTime(matches) {
		if member(m.Team1, viewpoint) || member(m.Team2, viewpoint) {
			own = append(own, m)
		}
	}
	if n > 0 && len(own) > n {
		own = own[len(own)-n:]
	}
	return own
}

// SortedNames returns tally keys in ascending name order, the default
// ordering for tabular display.
func SortedNames(tallies map[string]*model.Tally) []string {
	names := make([]string, 0, len(tallies))
	for name := range tallies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// sortedByTime returns a copy sorted by PlayedAt ascending, ID as tiebreak so
// same-timestamp records fold deterministically.
func sortedByTime(matches []model.Match) []model.Match {
	out := append([]model.Match(nil), matches...)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].PlayedAt.Equal(out[j].PlayedAt) {
			return out[i].PlayedAt.Before(out[j].PlayedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
