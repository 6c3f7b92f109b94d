package stats

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/pable/go-shuttle-stats/internal/model"
)

// makeMatch builds a doubles match; payer loses, receiver wins.
func makeMatch(minute int, team1, team2 []string, payer, receiver string, cents int64) model.Match {
	return model.Match{
		ID:          fmt.Sprintf("m%02d", minute),
		SessionID:   "s1",
		PlayedAt:    time.Date(2025, 6, 1, 18, minute, 0, 0, time.UTC),
		Team1:       team1,
		Team2:       team2,
		Payer:       payer,
		Receiver:    receiver,
		AmountCents: cents,
	}
}

func TestResolve_SidesAndWin(t *testing.T) {
	m := makeMatch(0, []string{"Ana", "Ben"}, []string{"Cho", "Dev"}, "Cho", "Ana", 1000)

	p, err := Resolve(&m, "Ana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Side != SideTeam1 {
		t.Errorf("Ana side: want SideTeam1, got %v", p.Side)
	}
	if len(p.Teammates) != 1 || p.Teammates[0] != "Ben" {
		t.Errorf("Ana teammates: want [Ben], got %v", p.Teammates)
	}
	if len(p.Opponents) != 2 || p.Opponents[0] != "Cho" || p.Opponents[1] != "Dev" {
		t.Errorf("Ana opponents: want [Cho Dev], got %v", p.Opponents)
	}
	if !p.Won {
		t.Error("Ana is on the non-payer side, expected Won=true")
	}

	q, err := Resolve(&m, "Cho")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Won {
		t.Error("Cho is the payer, expected Won=false")
	}
}

// Teammates must agree on the outcome, and opposite sides must disagree.
func TestResolve_Consistency(t *testing.T) {
	m := makeMatch(0, []string{"Ana", "Ben"}, []string{"Cho", "Dev"}, "Cho", "Ana", 0)

	won := make(map[string]bool)
	for _, name := range []string{"Ana", "Ben", "Cho", "Dev"} {
		p, err := Resolve(&m, name)
		if err != nil {
			t.Fatalf("Resolve(%s): %v", name, err)
		}
		won[name] = p.Won
	}
	if won["Ana"] != won["Ben"] {
		t.Error("teammates Ana and Ben disagree on outcome")
	}
	if won["Cho"] != won["Dev"] {
		t.Error("teammates Cho and Dev disagree on outcome")
	}
	if won["Ana"] == won["Cho"] {
		t.Error("opposite sides report the same outcome")
	}
}

func TestResolve_NotParticipant(t *testing.T) {
	m := makeMatch(0, []string{"Ana"}, []string{"Ben"}, "Ben", "Ana", 500)
	if _, err := Resolve(&m, "Zoe"); !errors.Is(err, ErrNotParticipant) {
		t.Errorf("want ErrNotParticipant, got %v", err)
	}
}

func TestResolve_CaseSensitiveNames(t *testing.T) {
	m := makeMatch(0, []string{"Ana"}, []string{"Ben"}, "Ben", "Ana", 500)
	if _, err := Resolve(&m, "ana"); !errors.Is(err, ErrNotParticipant) {
		t.Errorf("lowercased name must not match: got %v", err)
	}
}

func TestResolve_UndeterminedWinner(t *testing.T) {
	m := makeMatch(0, []string{"Ana"}, []string{"Ben"}, "", "Ana", 500)
	if _, err := Resolve(&m, "Ana"); !errors.Is(err, ErrNoWinner) {
		t.Errorf("empty payer: want ErrNoWinner, got %v", err)
	}

	m.Payer = "Zoe" // not a participant
	if _, err := Resolve(&m, "Ana"); !errors.Is(err, ErrNoWinner) {
		t.Errorf("outsider payer: want ErrNoWinner, got %v", err)
	}
}
