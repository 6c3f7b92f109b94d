package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pable/go-shuttle-stats/internal/report"
	"github.com/pable/go-shuttle-stats/internal/settle"
)

var showPlayer string

var showCmd = &cobra.Command{
	Use:   "show <session-id-prefix>",
	Short: "Show a session's match log and settlement plan",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&showPlayer, "player", "", "highlight this player's matches")
}

func runShow(cmd *cobra.Command, args []string) error {
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
		fmt.Fprintf(os.Stderr, "No session found with id prefix %q\n", args[0])
		return nil
	}
	matches, err := db.SessionMatches(session.ID)
	if err != nil {
		return fmt.Errorf("query matches: %w", err)
	}

	var total int64
	for _, m := range matches {
		total += m.AmountCents
	}
	report.PrintSessionHeader(os.Stdout, *session, len(matches), total, cfg.Currency)
	report.PrintMatchLog(os.Stdout, matches, showPlayer, cfg.Currency)

	balances, skipped := settle.BalancesFromMatches(matches)
	if skipped > 0 {
		logrus.WithField("skipped", skipped).Warn("malformed match records excluded from settlement")
	}
	settlements, err := settle.Settle(balances)
	if err != nil {
		return fmt.Errorf("settle session: %w", err)
	}
	settle.SortForPlayer(settlements, showPlayer)

	fmt.Fprintln(os.Stdout, "\nOutstanding settlements:")
	report.PrintSettlements(os.Stdout, settlements, cfg.Currency)
	return nil
}
