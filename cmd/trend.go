package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pable/go-shuttle-stats/internal/report"
	"github.com/pable/go-shuttle-stats/internal/stats"
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Session activity over recent weeks and months",
	Args:  cobra.NoArgs,
	RunE:  runTrend,
}

func runTrend(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := db.AllSessions()
	if err != nil {
		return fmt.Errorf("query sessions: %w", err)
	}
	if len(sessions) == 0 {
		fmt.Fprintln(os.Stdout, "No sessions stored yet.")
		return nil
	}

	report.PrintTrend(os.Stdout, stats.SessionTrend(sessions, time.Now))
	return nil
}
