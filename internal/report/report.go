package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/go-shuttle-stats/internal/model"
	"github.com/pable/go-shuttle-stats/internal/money"
	"github.com/pable/go-shuttle-stats/internal/stats"
)

// formLength is how many recent outcomes the FORM column shows.
const formLength = 5

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintSessionHeader prints a one-line summary for a session.
func PrintSessionHeader(w io.Writer, s model.Session, matchCount int, totalCents int64, currency string) {
	fmt.Fprintf(w, "\nSession: %s  |  Date: %s  |  Matches: %d  |  Pot: %s%s  |  ID: %s\n\n",
		s.Name, s.CreatedAt.Format("2006-01-02"), matchCount,
		currency, money.FormatCents(totalCents), shortID(s.ID))
}

// PrintMatchLog prints a session's matches in played order. If focus is
// non-empty, that player's matches are marked with ">".
func PrintMatchLog(w io.Writer, matches []model.Match, focus, currency string) {
	table := newTable(w)
	table.Header(" ", "ID", "TIME", "TEAM 1", "TEAM 2", "PAYER", "RECEIVER", "AMOUNT", "PAID")

	for _, m := range matches {
		marker := " "
		if focus != "" {
			for _, p := range m.Players() {
				if p == focus {
					marker = ">"
					break
				}
			}
		}
		amount := "—"
		if !m.IsFriendly() {
			amount = currency + money.FormatCents(m.AmountCents)
		}
		paid := ""
		if m.Paid {
			paid = "yes"
			if m.PaidBy != "" {
				paid = "yes (" + m.PaidBy + ")"
			}
		}
		table.Append(
			marker,
			shortID(m.ID),
			m.PlayedAt.Format("15:04"),
			joinTeam(m.Team1),
			joinTeam(m.Team2),
			m.Payer,
			m.Receiver,
			amount,
			paid,
		)
	}
	table.Render()
}

// PrintOpponentTable prints head-to-head tallies alphabetically by opponent.
func PrintOpponentTable(w io.Writer, tallies map[string]*model.Tally, currency string) {
	fmt.Fprintln(w, "Head-to-head:")
	printTallyTable(w, "OPPONENT", tallies, currency)
}

// PrintPartnerTable prints partner tallies alphabetically by partner.
func PrintPartnerTable(w io.Writer, tallies map[string]*model.Tally, currency string) {
	fmt.Fprintln(w, "Partners:")
	printTallyTable(w, "PARTNER", tallies, currency)
}

func printTallyTable(w io.Writer, who string, tallies map[string]*model.Tally, currency string) {
	table := newTable(w)
	table.Header(who, "W", "L", "WIN%", "FORM", "NET")

	for _, name := range stats.SortedNames(tallies) {
		t := tallies[name]
		table.Append(
			name,
			strconv.Itoa(t.Wins),
			strconv.Itoa(t.Losses),
			fmt.Sprintf("%.0f%%", t.WinRate()*100),
			formString(t.Encounters),
			currency + money.FormatSigned(t.NetCents),
		)
	}
	table.Render()
}

// PrintPartnerRankings prints best and worst partner lists.
func PrintPartnerRankings(w io.Writer, r stats.PartnerRanking) {
	fmt.Fprintln(w, "Partner rankings:")
	table := newTable(w)
	table.Header(" ", "PARTNER", "W", "L", "SCORE")
	appendRankRows(table, "best", r.Best)
	appendRankRows(table, "worst", r.Worst)
	table.Render()
}

// PrintOpponentRankings prints toughest and easiest opponent lists.
func PrintOpponentRankings(w io.Writer, r stats.OpponentRanking) {
	fmt.Fprintln(w, "Opponent rankings:")
	table := newTable(w)
	table.Header(" ", "OPPONENT", "W", "L", "WIN%")
	for _, e := range r.Toughest {
		table.Append("toughest", e.Name, strconv.Itoa(e.Wins), strconv.Itoa(e.Losses),
			fmt.Sprintf("%.0f%%", e.Score*100))
	}
	for _, e := range r.Easiest {
		table.Append("easiest", e.Name, strconv.Itoa(e.Wins), strconv.Itoa(e.Losses),
			fmt.Sprintf("%.0f%%", e.Score*100))
	}
	table.Render()
}

func appendRankRows(table *tablewriter.Table, label string, entries []stats.Entry) {
	for _, e := range entries {
		table.Append(label, e.Name, strconv.Itoa(e.Wins), strconv.Itoa(e.Losses),
			fmt.Sprintf("%+.1f", e.Score))
	}
}

// PrintPlayerOverview prints one player's top line: record, net, streaks.
func PrintPlayerOverview(w io.Writer, s model.PlayerSummary, streaks model.StreakStats, currency string) {
	fmt.Fprintf(w, "\n%s  |  %d matches  |  %d–%d (%.0f%%)  |  Net: %s%s\n",
		s.Name, s.Matches, s.Wins, s.Losses, s.WinRate()*100,
		currency, money.FormatSigned(s.NetCents))

	current := "none"
	if streaks.CurrentStreakCount > 0 {
		current = fmt.Sprintf("%d %s", streaks.CurrentStreakCount, streaks.CurrentStreakType)
	}
	fmt.Fprintf(w, "Streaks: current %s  |  longest win %d  |  longest loss %d\n\n",
		current, streaks.LongestWinStreak, streaks.LongestLossStreak)
}

// PrintSettlements prints payment instructions. A nil/empty list means the
// session is already square.
func PrintSettlements(w io.Writer, settlements []model.Settlement, currency string) {
	if len(settlements) == 0 {
		fmt.Fprintln(w, "All settled — nobody owes anything.")
		return
	}
	table := newTable(w)
	table.Header("FROM", "TO", "AMOUNT")
	for _, s := range settlements {
		table.Append(s.From, s.To, currency+money.FormatCents(s.AmountCents))
	}
	table.Render()
}

// PrintTrend prints rolling-window session activity with deltas.
func PrintTrend(w io.Writer, t model.ActivityTrend) {
	table := newTable(w)
	table.Header("WINDOW", "CURRENT", "PREVIOUS", "DELTA")
	table.Append("7 days",
		strconv.Itoa(t.PastWeek), strconv.Itoa(t.PriorWeek),
		fmt.Sprintf("%+.0f%%", t.WeekDeltaPct))
	table.Append("30 days",
		strconv.Itoa(t.PastMonth), strconv.Itoa(t.PriorMonth),
		fmt.Sprintf("%+.0f%%", t.MonthDeltaPct))
	table.Render()
}

// formString renders the most recent outcomes oldest-to-newest, e.g. "WWLWW".
// Slicing the tail here is a display concern; tallies keep the full sequence.
func formString(encounters []model.Outcome) string {
	if len(encounters) == 0 {
		return "—"
	}
	start := 0
	if len(encounters) > formLength {
		start = len(encounters) - formLength
	}
	out := ""
	for _, o := range encounters[start:] {
		out += string(o)
	}
	return out
}

func joinTeam(team []string) string {
	out := ""
	for i, p := range team {
		if i > 0 {
			out += " / "
		}
		out += p
	}
	return out
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
