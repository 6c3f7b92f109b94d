package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pable/go-shuttle-stats/internal/report"
	"github.com/pable/go-shuttle-stats/internal/settle"
)

var settlePlayer string

var settleCmd = &cobra.Command{
	Use:   "settle <session-id-prefix>",
	Short: "Minimal payment plan for a session",
	Long: `Net the session's unpaid match amounts into the smallest set of
payments that squares everyone. --player lists that player's payments first.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettle,
}

func init() {
	settleCmd.Flags().StringVar(&settlePlayer, "player", "", "surface this player's settlements first")
}

func runSettle(cmd *cobra.Command, args []string) error {
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

	balances, skipped := settle.BalancesFromMatches(matches)
	if skipped > 0 {
		logrus.WithField("skipped", skipped).Warn("malformed match records excluded from settlement")
	}
	settlements, err := settle.Settle(balances)
	if err != nil {
		return fmt.Errorf("settle session %q: %w", session.Name, err)
	}
	settle.SortForPlayer(settlements, settlePlayer)

	fmt.Fprintf(os.Stdout, "\nSettlement plan for %q:\n", session.Name)
	report.PrintSettlements(os.Stdout, settlements, cfg.Currency)
	return nil
}
