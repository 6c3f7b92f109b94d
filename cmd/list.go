package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-shuttle-stats/internal/money"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored sessions",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := db.ListSessions()
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}
	if len(sessions) == 0 {
		fmt.Fprintln(os.Stdout, "No sessions stored yet. Run 'shuttlestats record' to add a match.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-10s  %-20s  %-10s  %7s  %10s\n",
		"ID", "NAME", "DATE", "MATCHES", "POT")
	fmt.Fprintf(os.Stdout, "%-10s  %-20s  %-10s  %7s  %10s\n",
		"──────────", "────────────────────", "──────────", "───────", "──────────")
	for _, s := range sessions {
		fmt.Fprintf(os.Stdout, "%-10s  %-20s  %-10s  %7d  %9s%s\n",
			shortID(s.ID), s.Name, s.CreatedAt.Format("2006-01-02"),
			s.MatchCount, cfg.Currency, money.FormatCents(s.TotalCents))
	}
	return nil
}
