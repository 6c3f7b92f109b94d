// Package stats holds the pure aggregation core: participation resolution,
// per-counterparty tallies, rankings, streaks, and activity trends. Every
// function here is a total function of its inputs — no I/O, no clock access
// except through an injected Clock, no hidden state.
package stats

import (
	"errors"

	"github.com/pable/go-shuttle-stats/internal/model"
)

// Side identifies which team of a match a player is on.
type Side int

const (
	SideNone Side = iota
	SideTeam1
	SideTeam2
)

var (
	// ErrNotParticipant means the viewpoint player is on neither team.
	ErrNotParticipant = errors.New("player is not a participant in this match")
	// ErrNoWinner means the winning side cannot be determined (no valid payer).
	ErrNoWinner = errors.New("winning side is undetermined")
)

// Participation describes one player's involvement in one match.
type Participation struct {
	Side      Side
	Teammates []string // own side, viewpoint excluded
	Opponents []string // entire other side
	Won       bool
}

// Resolve determines which side the viewpoint player was on, their teammates
// and opponents, and whether they won. The winning side is the one NOT
// containing the payer (the payer loses). This is the single source of truth
// for winner determination; nothing else in the codebase re-derives it.
func Resolve(m *model.Match, viewpoint string) (Participation, error) {
	var p Participation
	switch {
	case member(m.Team1, viewpoint):
		p.Side = SideTeam1
		p.Teammates = others(m.Team1, viewpoint)
		p.Opponents = append([]string(nil), m.Team2...)
	case member(m.Team2, viewpoint):
		p.Side = SideTeam2
		p.Teammates = others(m.Team2, viewpoint)
		p.Opponents = append([]string(nil), m.Team1...)
	default:
		return Participation{}, ErrNotParticipant
	}

	winning := winningSide(m)
	if winning == SideNone {
		return Participation{}, ErrNoWinner
	}
	p.Won = p.Side == winning
	return p, nil
}

// winningSide returns the side opposite the payer, or SideNone when the payer
// is absent or not a participant.
func winningSide(m *model.Match) Side {
	switch {
	case m.Payer == "":
		return SideNone
	case member(m.Team1, m.Payer):
		return SideTeam2
	case member(m.Team2, m.Payer):
		return SideTeam1
	default:
		return SideNone
	}
}

// member matches exactly and case-sensitively; display names are the join key.
func member(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func others(names []string, exclude string) []string {
	var out []string
	for _, n := range names {
		if n != exclude {
			out = append(out, n)
		}
	}
	return out
}
