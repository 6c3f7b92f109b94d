// Package settle turns per-player net balances into a minimal list of payment
// instructions. All arithmetic is integer minor currency units (cents), so a
// balanced input can never drift off zero.
package settle

import (
	"errors"
	"fmt"
	"sort"

	"github.com/pable/go-shuttle-stats/internal/model"
)

// ErrUnbalanced reports a balance map whose signed sum is not zero. Netting
// such input would invent or destroy money, so it is refused.
var ErrUnbalanced = errors.New("balances do not sum to zero")

// Settle nets a map of signed balances (positive = owed money, negative =
// owes money) into payment instructions via two-pointer greedy matching:
// repeatedly pair the largest debtor with the largest creditor and settle
// min(|debt|, credit). Produces at most n-1 instructions for n nonzero
// balances; zero-balance players never appear in the output.
func Settle(balances map[string]int64) ([]model.Settlement, error) {
	type account struct {
		name  string
		cents int64
	}

	var sum int64
	accounts := make([]account, 0, len(balances))
	for name, cents := range balances {
		sum += cents
		if cents != 0 {
			accounts = append(accounts, account{name, cents})
		}
	}
	if sum != 0 {
		return nil, fmt.Errorf("%w: off by %d cents", ErrUnbalanced, sum)
	}

	// Most negative first; name tiebreak keeps output reproducible.
	sort.Slice(accounts, func(i, j int) bool {
		if accounts[i].cents != accounts[j].cents {
			return accounts[i].cents < accounts[j].cents
		}
		return accounts[i].name < accounts[j].name
	})

	var out []model.Settlement
	i, j := 0, len(accounts)-1
	for i < j {
		debtor, creditor := &accounts[i], &accounts[j]
		amount := -debtor.cents
		if creditor.cents < amount {
			amount = creditor.cents
		}
		out = append(out, model.Settlement{From: debtor.name, To: creditor.name, AmountCents: amount})
		debtor.cents += amount
		creditor.cents -= amount
		if debtor.cents == 0 {
			i++
		}
		if creditor.cents == 0 {
			j--
		}
	}
	return out, nil
}

// BalancesFromMatches folds unpaid monetary matches into per-player net
// balances: the payer goes down by the amount, the receiver up. Already-paid
// matches and records failing validation are skipped; the skip count is
// returned for diagnostics.
func BalancesFromMatches(matches []model.Match) (map[string]int64, int) {
	balances := make(map[string]int64)
	skipped := 0
	for _, m := range matches {
		if err := m.Validate(); err != nil {
			skipped++
			continue
		}
		if m.Paid || m.IsFriendly() {
			continue
		}
		balances[m.Payer] -= m.AmountCents
		balances[m.Receiver] += m.AmountCents
	}
	return balances, skipped
}

// SortForPlayer reorders settlements in place so instructions involving the
// given player come first. Relative order is otherwise preserved; netting
// correctness does not depend on output order.
func SortForPlayer(settlements []model.Settlement, player string) {
	if player == "" {
		return
	}
	sort.SliceStable(settlements, func(i, j int) bool {
		return involves(settlements[i], player) && !involves(settlements[j], player)
	})
}

func involves(s model.Settlement, player string) bool {
	return s.From == player || s.To == player
}
