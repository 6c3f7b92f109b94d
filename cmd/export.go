package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pable/go-shuttle-stats/internal/model"
	"github.com/pable/go-shuttle-stats/internal/money"
)

var exportOut string

// exchangeFile is the JSON schema shared by export and import. Amounts are
// decimal strings ("12.50") so files stay readable and survive editing by
// hand; they are parsed back through exact decimal arithmetic.
type exchangeFile struct {
	Sessions []sessionJSON `json:"sessions"`
}

type sessionJSON struct {
	ID        string      `json:"id,omitempty"`
	Name      string      `json:"name"`
	CreatedAt time.Time   `json:"created_at"`
	Matches   []matchJSON `json:"matches"`
}

type matchJSON struct {
	ID       string    `json:"id,omitempty"`
	PlayedAt time.Time `json:"played_at"`
	Team1    []string  `json:"team1"`
	Team2    []string  `json:"team2"`
	Payer    string    `json:"payer"`
	Receiver string    `json:"receiver"`
	Amount   string    `json:"amount"`
	Paid     bool      `json:"paid,omitempty"`
	PaidBy   string    `json:"paid_by,omitempty"`
}

var exportCmd = &cobra.Command{
	Use:   "export <session-id-prefix>",
	Short: "Export a session as JSON",
	Long:  "Write a session and its matches to a JSON file that 'import' can read back.",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output path (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := db.GetSessionByPrefix(args[0])
	if err != nil {
		return fmt.Errorf("query session: %w", err)
	}
	if session == nil {
		return fmt.Errorf("no session found with id prefix %q", args[0])
	}
	matches, err := db.SessionMatches(session.ID)
	if err != nil {
		return fmt.Errorf("query matches: %w", err)
	}

	sj := sessionJSON{
		ID:        session.ID,
		Name:      session.Name,
		CreatedAt: session.CreatedAt,
	}
	for _, m := range matches {
		sj.Matches = append(sj.Matches, matchJSON{
			ID:       m.ID,
			PlayedAt: m.PlayedAt,
			Team1:    m.Team1,
			Team2:    m.Team2,
			Payer:    m.Payer,
			Receiver: m.Receiver,
			Amount:   money.FormatCents(m.AmountCents),
			Paid:     m.Paid,
			PaidBy:   m.PaidBy,
		})
	}

	data, err := json.MarshalIndent(exchangeFile{Sessions: []sessionJSON{sj}}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	data = append(data, '\n')

	if exportOut == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(exportOut, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	fmt.Fprintf(os.Stdout, "Wrote %s (%d matches)\n", exportOut, len(sj.Matches))
	return nil
}

// toMatch converts a JSON record back to a model.Match, minting an ID when
// the file has none.
func (j matchJSON) toMatch(sessionID string, newID func() string) (model.Match, error) {
	cents, err := money.ParseCents(j.Amount)
	if err != nil {
		return model.Match{}, err
	}
	id := j.ID
	if id == "" {
		id = newID()
	}
	m := model.Match{
		ID:          id,
		SessionID:   sessionID,
		PlayedAt:    j.PlayedAt,
		Team1:       j.Team1,
		Team2:       j.Team2,
		Payer:       j.Payer,
		Receiver:    j.Receiver,
		AmountCents: cents,
		Paid:        j.Paid,
		PaidBy:      j.PaidBy,
	}
	return m, m.Validate()
}
