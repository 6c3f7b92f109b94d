package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pable/go-shuttle-stats/internal/model"
	"github.com/pable/go-shuttle-stats/internal/money"
)

var (
	recordSession  string
	recordTeam1    string
	recordTeam2    string
	recordPayer    string
	recordReceiver string
	recordAmount   string
	recordAt       string
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a match",
	Long: `Record one match into a session. The session is created on first use.
The payer is on the losing side, the receiver on the winning side;
an amount of 0 records a friendly match.

Example:
  shuttlestats record --session "tuesday" --team1 "Ana,Ben" --team2 "Cho,Dev" \
    --payer Cho --receiver Ana --amount 12.50`,
	Args: cobra.NoArgs,
	RunE: runRecord,
}

func init() {
	recordCmd.Flags().StringVar(&recordSession, "session", "", "session name (required)")
	recordCmd.Flags().StringVar(&recordTeam1, "team1", "", "comma-separated team 1 names (required)")
	recordCmd.Flags().StringVar(&recordTeam2, "team2", "", "comma-separated team 2 names (required)")
	recordCmd.Flags().StringVar(&recordPayer, "payer", "", "losing-side player who pays (required)")
	recordCmd.Flags().StringVar(&recordReceiver, "receiver", "", "winning-side player who receives (required)")
	recordCmd.Flags().StringVar(&recordAmount, "amount", "0", "stake, e.g. 12.50 (0 = friendly)")
	recordCmd.Flags().StringVar(&recordAt, "at", "", "match time, RFC3339 (default: now)")
	recordCmd.MarkFlagRequired("session")
	recordCmd.MarkFlagRequired("team1")
	recordCmd.MarkFlagRequired("team2")
	recordCmd.MarkFlagRequired("payer")
	recordCmd.MarkFlagRequired("receiver")
}

func runRecord(cmd *cobra.Command, args []string) error {
	cents, err := money.ParseCents(recordAmount)
	if err != nil {
		return err
	}
	playedAt := time.Now()
	if recordAt != "" {
		playedAt, err = time.Parse(time.RFC3339, recordAt)
		if err != nil {
			return fmt.Errorf("invalid --at: %w", err)
		}
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := db.GetSessionByName(recordSession)
	if err != nil {
		return fmt.Errorf("look up session: %w", err)
	}
	if session == nil {
		session = &model.Session{
			ID:        uuid.NewString(),
			Name:      recordSession,
			CreatedAt: playedAt,
		}
		if err := db.InsertSession(*session); err != nil {
			return fmt.Errorf("create session: %w", err)
		}
		logrus.WithField("session", session.Name).Debug("created session")
	}

	match := model.Match{
		ID:          uuid.NewString(),
		SessionID:   session.ID,
		PlayedAt:    playedAt,
		Team1:       splitNames(recordTeam1),
		Team2:       splitNames(recordTeam2),
		Payer:       recordPayer,
		Receiver:    recordReceiver,
		AmountCents: cents,
	}
	if err := match.Validate(); err != nil {
		return fmt.Errorf("invalid match: %w", err)
	}
	if err := db.InsertMatches([]model.Match{match}); err != nil {
		return fmt.Errorf("insert match: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Recorded match %s in session %q: %s vs %s\n",
		shortID(match.ID), session.Name,
		strings.Join(match.Team1, " / "), strings.Join(match.Team2, " / "))
	return nil
}

// splitNames splits a comma-separated name list, trimming whitespace.
// Names are kept exactly as entered — matching is case-sensitive everywhere.
func splitNames(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			out = append(out, name)
		}
	}
	return out
}
