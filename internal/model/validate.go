package model

import (
	"errors"
	"fmt"
)

var (
	ErrBadTeams       = errors.New("each team needs 1 or 2 players and no player may appear on both sides")
	ErrBadPayer       = errors.New("payer must be a participant")
	ErrBadReceiver    = errors.New("receiver must be a participant on the opposite side of the payer")
	ErrNegativeAmount = errors.New("amount must not be negative")
)

// Validate checks the record-level contract: team sizes, disjoint sides,
// payer/receiver membership on opposite sides, non-negative amount.
// Aggregation skips (and counts) records that fail this rather than aborting.
func (m *Match) Validate() error {
	if len(m.Team1) < 1 || len(m.Team1) > 2 || len(m.Team2) < 1 || len(m.Team2) > 2 {
		return ErrBadTeams
	}
	for _, p := range m.Team1 {
		if contains(m.Team2, p) {
			return fmt.Errorf("%w: %q is on both teams", ErrBadTeams, p)
		}
	}
	payerOnTeam1 := contains(m.Team1, m.Payer)
	if m.Payer == "" || (!payerOnTeam1 && !contains(m.Team2, m.Payer)) {
		return ErrBadPayer
	}
	// The payer's side loses, so the receiver must sit on the other side.
	var winners []string
	if payerOnTeam1 {
		winners = m.Team2
	} else {
		winners = m.Team1
	}
	if m.Receiver == "" || m.Receiver == m.Payer || !contains(winners, m.Receiver) {
		return ErrBadReceiver
	}
	if m.AmountCents < 0 {
		return ErrNegativeAmount
	}
	return nil
}

// contains reports whether name appears in names. Matching is exact and
// case-sensitive: the display name is the join key across the whole system.
func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
