package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pable/go-shuttle-stats/internal/model"
	"github.com/pable/go-shuttle-stats/internal/report"
	"github.com/pable/go-shuttle-stats/internal/stats"
)

var (
	playerSession string
	playerLast    int
)

var playerCmd = &cobra.Command{
	Use:   "player [name]",
	Short: "Performance report for a player",
	Long: `Head-to-head records, partner records, rankings, streaks and net
amount for one player, across all sessions or one session (--session).
With no argument the default player from the config file is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlayer,
}

func init() {
	playerCmd.Flags().StringVar(&playerSession, "session", "", "restrict to one session (id prefix)")
	playerCmd.Flags().IntVar(&playerLast, "last", 0, "restrict to the player's N most recent matches")
}

func runPlayer(cmd *cobra.Command, args []string) error {
	name := cfg.Player
	if len(args) == 1 {
		name = args[0]
	}
	if name == "" {
		return fmt.Errorf("no player given and no default set in config")
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	var matches []model.Match
	if playerSession != "" {
		session, err := db.GetSessionByPrefix(playerSession)
		if err != nil {
			return fmt.Errorf("query session: %w", err)
		}
		if session == nil {
			return fmt.Errorf("no session found with id prefix %q", playerSession)
		}
		matches, err = db.SessionMatches(session.ID)
		if err != nil {
			return fmt.Errorf("query matches: %w", err)
		}
	} else {
		matches, err = db.AllMatches()
		if err != nil {
			return fmt.Errorf("query matches: %w", err)
		}
	}

	if playerLast > 0 {
		matches = stats.Recent(matches, name, playerLast)
	}

	summary := stats.Summarize(matches, name)
	if summary.Matches == 0 {
		fmt.Fprintf(os.Stderr, "No matches found for %q\n", name)
		return nil
	}

	opponents := stats.Aggregate(matches, name, stats.ByOpponent)
	partners := stats.Aggregate(matches, name, stats.ByPartner)
	if opponents.Skipped > 0 {
		logrus.WithField("skipped", opponents.Skipped).Warn("malformed match records excluded from stats")
	}
	streaks := stats.Streaks(stats.Outcomes(matches, name))

	report.PrintPlayerOverview(os.Stdout, summary, streaks, cfg.Currency)
	report.PrintOpponentTable(os.Stdout, opponents.Tallies, cfg.Currency)
	fmt.Fprintln(os.Stdout)
	if len(partners.Tallies) > 0 {
		report.PrintPartnerTable(os.Stdout, partners.Tallies, cfg.Currency)
		fmt.Fprintln(os.Stdout)
		report.PrintPartnerRankings(os.Stdout, stats.RankPartners(partners.Tallies, cfg.RankLimit))
		fmt.Fprintln(os.Stdout)
	}
	report.PrintOpponentRankings(os.Stdout, stats.RankOpponents(opponents.Tallies, cfg.MinSamples, cfg.RankLimit))
	return nil
}
