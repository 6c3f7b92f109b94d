package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/pable/go-shuttle-stats/internal/model"
)

const timeLayout = time.RFC3339Nano

// teamSep joins team member names in a single column. Names may contain
// spaces but never pipes.
const teamSep = "|"

// InsertSession inserts a session record. Uses INSERT OR REPLACE for idempotency.
func (db *DB) InsertSession(s model.Session) error {
	_, err := db.conn.Exec(`
		INSERT OR REPLACE INTO sessions(id, name, created_at)
		VALUES (?, ?, ?)`,
		s.ID, s.Name, s.CreatedAt.UTC().Format(timeLayout),
	)
	return err
}

// GetSessionByPrefix returns the session whose id starts with the given
// prefix, or nil if none matches. With multiple matches the oldest wins.
func (db *DB) GetSessionByPrefix(prefix string) (*model.Session, error) {
	row := db.conn.QueryRow(`
		SELECT id, name, created_at FROM sessions
		WHERE id LIKE ? ORDER BY created_at ASC LIMIT 1`,
		prefix+"%",
	)
	var s model.Session
	var createdAt string
	if err := row.Scan(&s.ID, &s.Name, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	t, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	s.CreatedAt = t
	return &s, nil
}

// GetSessionByName returns the session with the exact name, or nil.
func (db *DB) GetSessionByName(name string) (*model.Session, error) {
	row := db.conn.QueryRow(`
		SELECT id, name, created_at FROM sessions
		WHERE name = ? ORDER BY created_at ASC LIMIT 1`,
		name,
	)
	var s model.Session
	var createdAt string
	if err := row.Scan(&s.ID, &s.Name, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	t, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	s.CreatedAt = t
	return &s, nil
}

// ListSessions returns all sessions newest first, with match counts and
// amount totals.
func (db *DB) ListSessions() ([]model.SessionSummary, error) {
	rows, err := db.conn.Query(`
		SELECT s.id, s.name, s.created_at,
		       COUNT(m.id), COALESCE(SUM(m.amount_cents), 0)
		FROM sessions s
		LEFT JOIN matches m ON m.session_id = s.id
		GROUP BY s.id
		ORDER BY s.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.SessionSummary
	for rows.Next() {
		var s model.SessionSummary
		var createdAt string
		if err := rows.Scan(&s.ID, &s.Name, &createdAt, &s.MatchCount, &s.TotalCents); err != nil {
			return nil, err
		}
		t, err := time.Parse(timeLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
		}
		s.CreatedAt = t
		out = append(out, s)
	}
	return out, rows.Err()
}

// AllSessions returns every session, oldest first. Trend analysis feeds on this.
func (db *DB) AllSessions() ([]model.Session, error) {
	rows, err := db.conn.Query(`SELECT id, name, created_at FROM sessions ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Session
	for rows.Next() {
		var s model.Session
		var createdAt string
		if err := rows.Scan(&s.ID, &s.Name, &createdAt); err != nil {
			return nil, err
		}
		t, err := time.Parse(timeLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
		}
		s.CreatedAt = t
		out = append(out, s)
	}
	return out, rows.Err()
}

// InsertMatches bulk-inserts matches in a transaction.
func (db *DB) InsertMatches(matches []model.Match) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO matches(
			id, session_id, played_at, team1, team2,
			payer, receiver, amount_cents, paid, paid_by
		) VALUES (?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, m := range matches {
		_, err = stmt.Exec(
			m.ID, m.SessionID, m.PlayedAt.UTC().Format(timeLayout),
			strings.Join(m.Team1, teamSep), strings.Join(m.Team2, teamSep),
			m.Payer, m.Receiver, m.AmountCents, boolInt(m.Paid), m.PaidBy,
		)
		if err != nil {
			return fmt.Errorf("insert match %s: %w", m.ID, err)
		}
	}
	return tx.Commit()
}

// SessionMatches returns a session's matches ordered by played_at ascending.
func (db *DB) SessionMatches(sessionID string) ([]model.Match, error) {
	return db.queryMatches(`
		SELECT id, session_id, played_at, team1, team2,
		       payer, receiver, amount_cents, paid, paid_by
		FROM matches WHERE session_id = ?
		ORDER BY played_at ASC, id ASC`, sessionID)
}

// AllMatches returns every stored match ordered by played_at ascending.
// Player-level stats filter by participation in memory.
func (db *DB) AllMatches() ([]model.Match, error) {
	return db.queryMatches(`
		SELECT id, session_id, played_at, team1, team2,
		       payer, receiver, amount_cents, paid, paid_by
		FROM matches ORDER BY played_at ASC, id ASC`)
}

// MarkMatchPaid flags a match (matched by id prefix) as settled by the given
// player. Returns the full id of the updated match, or "" if none matched.
func (db *DB) MarkMatchPaid(idPrefix, paidBy string) (string, error) {
	row := db.conn.QueryRow(`SELECT id FROM matches WHERE id LIKE ? LIMIT 1`, idPrefix+"%")
	var id string
	if err := row.Scan(&id); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	_, err := db.conn.Exec(`UPDATE matches SET paid = 1, paid_by = ? WHERE id = ?`, paidBy, id)
	return id, err
}

func (db *DB) queryMatches(query string, args ...any) ([]model.Match, error) {
	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Match
	for rows.Next() {
		var m model.Match
		var playedAt, team1, team2 string
		var paid int
		if err := rows.Scan(&m.ID, &m.SessionID, &playedAt, &team1, &team2,
			&m.Payer, &m.Receiver, &m.AmountCents, &paid, &m.PaidBy); err != nil {
			return nil, err
		}
		t, err := time.Parse(timeLayout, playedAt)
		if err != nil {
			return nil, fmt.Errorf("parse played_at %q: %w", playedAt, err)
		}
		m.PlayedAt = t
		m.Team1 = strings.Split(team1, teamSep)
		m.Team2 = strings.Split(team2, teamSep)
		m.Paid = paid != 0
		out = append(out, m)
	}
	return out, rows.Err()
}

// QueryRaw runs an arbitrary query and returns columns plus stringified rows.
// Escape hatch for the sql command.
func (db *DB) QueryRaw(query string) ([]string, [][]string, error) {
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var out [][]string
	for rows.Next() {
		raw := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(cols))
		for i, v := range raw {
			switch t := v.(type) {
			case nil:
				row[i] = "NULL"
			case []byte:
				row[i] = string(t)
			default:
				row[i] = fmt.Sprintf("%v", t)
			}
		}
		out = append(out, row)
	}
	return cols, out, rows.Err()
}
