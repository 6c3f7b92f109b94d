package stats

import (
	"sort"

	"github.com/pable/go-shuttle-stats/internal/model"
)

// DefaultMinSamples is the minimum head-to-head sample size before an
// opponent's win rate is considered meaningful.
const DefaultMinSamples = 3

// DefaultRankLimit caps how many entries each ranked list returns.
const DefaultRankLimit = 2

// Entry is one ranked counterparty. Score is the partner score
// (wins - 0.5*losses) for partner rankings and the win rate for opponent
// rankings.
type Entry struct {
	Name   string
	Wins   int
	Losses int
	Score  float64
}

// PartnerRanking lists the partners the viewpoint player performs best and
// worst with. The two lists never overlap: zero-score partners appear in
// neither.
type PartnerRanking struct {
	Best  []Entry
	Worst []Entry
}

// OpponentRanking lists the opponents the viewpoint player struggles against
// and beats most reliably.
type OpponentRanking struct {
	Toughest []Entry
	Easiest  []Entry
}

// RankPartners scores each partner as wins - 0.5*losses, so a loss costs half
// what a win earns. Best holds
// positive scores descending (ties: more games, then name); Worst holds
// negative scores ascending (ties: more losses, then name). Both truncate
// to limit.
func RankPartners(tallies map[string]*model.Tally, limit int) PartnerRanking {
	if limit <= 0 {
		limit = DefaultRankLimit
	}
	var best, worst []Entry
	for _, name := range SortedNames(tallies) {
		t := tallies[name]
		score := float64(t.Wins) - 0.5*float64(t.Losses)
		e := Entry{Name: name, Wins: t.Wins, Losses: t.Losses, Score: score}
		switch {
		case score > 0:
			best = append(best, e)
		case score < 0:
			worst = append(worst, e)
		}
	}
	sort.SliceStable(best, func(i, j int) bool {
		if best[i].Score != best[j].Score {
			return best[i].Score > best[j].Score
		}
		return best[i].Wins+best[i].Losses > best[j].Wins+best[j].Losses
	})
	sort.SliceStable(worst, func(i, j int) bool {
		if worst[i].Score != worst[j].Score {
			return worst[i].Score < worst[j].Score
		}
		return worst[i].Losses > worst[j].Losses
	})
	return PartnerRanking{Best: truncate(best, limit), Worst: truncate(worst, limit)}
}

// RankOpponents ranks by win rate among opponents with at least minSamples
// games. Toughest holds rates below 0.5 ascending (ties: more losses);
// Easiest holds rates above 0.5 descending (ties: more wins). When filtering
// leaves a list empty, it falls back to the single opponent with the most
// losses (toughest) or wins (easiest) across ALL opponents, so sparse data
// still yields something to show.
func RankOpponents(tallies map[string]*model.Tally, minSamples, limit int) OpponentRanking {
	if minSamples <= 0 {
		minSamples = DefaultMinSamples
	}
	if limit <= 0 {
		limit = DefaultRankLimit
	}
	var tough, easy []Entry
	for _, name := range SortedNames(tallies) {
		t := tallies[name]
		if t.Total() < minSamples {
			continue
		}
		e := Entry{Name: name, Wins: t.Wins, Losses: t.Losses, Score: t.WinRate()}
		switch {
		case e.Score < 0.5:
			tough = append(tough, e)
		case e.Score > 0.5:
			easy = append(easy, e)
		}
	}
	sort.SliceStable(tough, func(i, j int) bool {
		if tough[i].Score != tough[j].Score {
			return tough[i].Score < tough[j].Score
		}
		return tough[i].Losses > tough[j].Losses
	})
	sort.SliceStable(easy, func(i, j int) bool {
		if easy[i].Score != easy[j].Score {
			return easy[i].Score > easy[j].Score
		}
		return easy[i].Wins > easy[j].Wins
	})

	r := OpponentRanking{Toughest: truncate(tough, limit), Easiest: truncate(easy, limit)}
	if len(r.Toughest) == 0 {
		if e, ok := fallback(tallies, func(t *model.Tally) int { return t.Losses }); ok {
			r.Toughest = []Entry{e}
		}
	}
	if len(r.Easiest) == 0 {
		if e, ok := fallback(tallies, func(t *model.Tally) int { return t.Wins }); ok {
			r.Easiest = []Entry{e}
		}
	}
	return r
}

// fallback picks the single opponent maximizing metric, ignoring sample size.
// Returns ok=false when no opponent has a positive metric at all.
func fallback(tallies map[string]*model.Tally, metric func(*model.Tally) int) (Entry, bool) {
	var bestName string
	bestVal := 0
	for _, name := range SortedNames(tallies) {
		if v := metric(tallies[name]); v > bestVal {
			bestName, bestVal = name, v
		}
	}
	if bestVal == 0 {
		return Entry{}, false
	}
	t := tallies[bestName]
	return Entry{Name: bestName, Wins: t.Wins, Losses: t.Losses, Score: t.WinRate()}, true
}

func truncate(entries []Entry, limit int) []Entry {
	if len(entries) > limit {
		return entries[:limit]
	}
	return entries
}
