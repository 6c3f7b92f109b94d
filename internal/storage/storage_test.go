package storage

import (
	"testing"
	"time"

	"github.com/pable/go-shuttle-stats/internal/model"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testSession(id, name string, createdAt time.Time) model.Session {
	return model.Session{ID: id, Name: name, CreatedAt: createdAt}
}

func TestSessionInsertAndLookup(t *testing.T) {
	db := openMemDB(t)

	s := testSession("aabbccdd-1111", "tuesday night", time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC))
	if err := db.InsertSession(s); err != nil {
		t.Fatalf("InsertSession: %v", err)
	}

	got, err := db.GetSessionByPrefix("aabb")
	if err != nil {
		t.Fatalf("GetSessionByPrefix: %v", err)
	}
	if got == nil {
		t.Fatal("expected session for prefix 'aabb'")
	}
	if got.Name != "tuesday night" {
		t.Errorf("unexpected name %q", got.Name)
	}
	if !got.CreatedAt.Equal(s.CreatedAt) {
		t.Errorf("created_at round-trip: want %v, got %v", s.CreatedAt, got.CreatedAt)
	}

	missing, _ := db.GetSessionByPrefix("zzzz")
	if missing != nil {
		t.Error("expected nil for unknown prefix")
	}

	byName, err := db.GetSessionByName("tuesday night")
	if err != nil {
		t.Fatalf("GetSessionByName: %v", err)
	}
	if byName == nil || byName.ID != s.ID {
		t.Errorf("lookup by name: want %s, got %+v", s.ID, byName)
	}
}

func TestListSessions(t *testing.T) {
	db := openMemDB(t)

	older := testSession("s-old", "week 1", time.Date(2025, 5, 1, 19, 0, 0, 0, time.UTC))
	newer := testSession("s-new", "week 2", time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC))
	for _, s := range []model.Session{older, newer} {
		if err := db.InsertSession(s); err != nil {
			t.Fatalf("InsertSession: %v", err)
		}
	}
	if err := db.InsertMatches([]model.Match{
		matchIn("m1", "s-new", 1000),
		matchIn("m2", "s-new", 500),
	}); err != nil {
		t.Fatalf("InsertMatches: %v", err)
	}

	list, err := db.ListSessions()
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(list))
	}
	// Ordered newest first.
	if list[0].ID != "s-new" {
		t.Errorf("expected s-new first, got %s", list[0].ID)
	}
	if list[0].MatchCount != 2 || list[0].TotalCents != 1500 {
		t.Errorf("s-new rollup: want 2 matches / 1500 cents, got %d / %d",
			list[0].MatchCount, list[0].TotalCents)
	}
	if list[1].MatchCount != 0 {
		t.Errorf("s-old rollup: want 0 matches, got %d", list[1].MatchCount)
	}
}

func matchIn(id, sessionID string, cents int64) model.Match {
	return model.Match{
		ID:          id,
		SessionID:   sessionID,
		PlayedAt:    time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC),
		Team1:       []string{"Ana", "Ben"},
		Team2:       []string{"Cho", "Dev"},
		Payer:       "Cho",
		Receiver:    "Ana",
		AmountCents: cents,
	}
}

func TestMatchRoundTrip(t *testing.T) {
	db := openMemDB(t)

	if err := db.InsertSession(testSession("s1", "s1", time.Now().UTC())); err != nil {
		t.Fatalf("InsertSession: %v", err)
	}
	m := matchIn("m1", "s1", 1250)
	m.Paid = true
	m.PaidBy = "Cho"
	if err := db.InsertMatches([]model.Match{m}); err != nil {
		t.Fatalf("InsertMatches: %v", err)
	}

	got, err := db.SessionMatches("s1")
	if err != nil {
		t.Fatalf("SessionMatches: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	r := got[0]
	if len(r.Team1) != 2 || r.Team1[0] != "Ana" || r.Team1[1] != "Ben" {
		t.Errorf("team1 round-trip: got %v", r.Team1)
	}
	if len(r.Team2) != 2 || r.Team2[0] != "Cho" || r.Team2[1] != "Dev" {
		t.Errorf("team2 round-trip: got %v", r.Team2)
	}
	if r.Payer != "Cho" || r.Receiver != "Ana" {
		t.Errorf("payer/receiver round-trip: got %s/%s", r.Payer, r.Receiver)
	}
	if r.AmountCents != 1250 {
		t.Errorf("amount round-trip: want 1250, got %d", r.AmountCents)
	}
	if !r.Paid || r.PaidBy != "Cho" {
		t.Errorf("paid flags round-trip: got %v/%q", r.Paid, r.PaidBy)
	}
	if !r.PlayedAt.Equal(m.PlayedAt) {
		t.Errorf("played_at round-trip: want %v, got %v", m.PlayedAt, r.PlayedAt)
	}
}

func TestSessionMatches_Ordering(t *testing.T) {
	db := openMemDB(t)
	db.InsertSession(testSession("s1", "s1", time.Now().UTC()))

	later := matchIn("m-late", "s1", 100)
	later.PlayedAt = time.Date(2025, 6, 1, 21, 0, 0, 0, time.UTC)
	earlier := matchIn("m-early", "s1", 100)
	earlier.PlayedAt = time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)

	if err := db.InsertMatches([]model.Match{later, earlier}); err != nil {
		t.Fatalf("InsertMatches: %v", err)
	}
	got, err := db.SessionMatches("s1")
	if err != nil {
		t.Fatalf("SessionMatches: %v", err)
	}
	if got[0].ID != "m-early" || got[1].ID != "m-late" {
		t.Errorf("expected played_at ascending order, got %s then %s", got[0].ID, got[1].ID)
	}
}

func TestMarkMatchPaid(t *testing.T) {
	db := openMemDB(t)
	db.InsertSession(testSession("s1", "s1", time.Now().UTC()))
	db.InsertMatches([]model.Match{matchIn("abcdef-123", "s1", 100)})

	id, err := db.MarkMatchPaid("abc", "Cho")
	if err != nil {
		t.Fatalf("MarkMatchPaid: %v", err)
	}
	if id != "abcdef-123" {
		t.Errorf("want full id back, got %q", id)
	}

	got, _ := db.SessionMatches("s1")
	if !got[0].Paid || got[0].PaidBy != "Cho" {
		t.Errorf("paid flags not persisted: %+v", got[0])
	}

	none, err := db.MarkMatchPaid("zzz", "Cho")
	if err != nil {
		t.Fatalf("MarkMatchPaid(miss): %v", err)
	}
	if none != "" {
		t.Errorf("unknown prefix: want empty id, got %q", none)
	}
}

func TestAllSessionsAndMatches(t *testing.T) {
	db := openMemDB(t)
	db.InsertSession(testSession("s1", "s1", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)))
	db.InsertSession(testSession("s2", "s2", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	db.InsertMatches([]model.Match{matchIn("m1", "s1", 100), matchIn("m2", "s2", 200)})

	sessions, err := db.AllSessions()
	if err != nil {
		t.Fatalf("AllSessions: %v", err)
	}
	if len(sessions) != 2 || sessions[0].ID != "s1" {
		t.Errorf("expected oldest-first sessions, got %+v", sessions)
	}

	matches, err := db.AllMatches()
	if err != nil {
		t.Fatalf("AllMatches: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("expected 2 matches, got %d", len(matches))
	}
}

func TestQueryRaw(t *testing.T) {
	db := openMemDB(t)
	db.InsertSession(testSession("s1", "raw", time.Now().UTC()))

	cols, rows, err := db.QueryRaw("SELECT name FROM sessions")
	if err != nil {
		t.Fatalf("QueryRaw: %v", err)
	}
	if len(cols) != 1 || cols[0] != "name" {
		t.Errorf("cols: got %v", cols)
	}
	if len(rows) != 1 || rows[0][0] != "raw" {
		t.Errorf("rows: got %v", rows)
	}
}
