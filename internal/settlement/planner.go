package settlement

import (
	"cmp"
	"slices"

	"github.com/suyash01/splitease/internal/models"
)

// Plan turns creditors (positive balances) and debtors (negative balances)
// into payments from debtors to creditors.
//
// With a single creditor the result is optimal: one payment per debtor.
// Otherwise pairs with equal and opposite balances settle each other first and
// the rest goes through a greedy two-cursor pass. The greedy pass is a
// heuristic and does not always find the fewest payments.
func Plan(creditors, debtors []models.Balance) []models.Transaction {
	return plan(creditors, debtors, nil)
}

func plan(creditors, debtors []models.Balance, tr *tracer) []models.Transaction {
	if len(creditors) == 0 || len(debtors) == 0 {
		tr.printf("nothing to settle")
		return []models.Transaction{}
	}

	if len(creditors) == 1 {
		tr.printf("single creditor %s: every debtor pays them directly", creditors[0].Name)
		return payCreditor(creditors[0], debtors)
	}

	txs, creditors, debtors := matchExact(creditors, debtors)
	tr.printf("exact matches: %s", formatTransactions(txs))
	return append(txs, packResidual(creditors, debtors, tr)...)
}

func payCreditor(creditor models.Balance, debtors []models.Balance) []models.Transaction {
	txs := make([]models.Transaction, 0, len(debtors))
	for _, d := range debtors {
		txs = append(txs, models.Transaction{From: d.Name, To: creditor.Name, Amount: -d.Amount})
	}
	return txs
}

// matchExact settles every creditor against the first unmatched debtor owing
// the same amount, scanning both lists in input order. It returns the payments
// and the parties left unmatched.
func matchExact(creditors, debtors []models.Balance) ([]models.Transaction, []models.Balance, []models.Balance) {
	txs := []models.Transaction{}
	matched := make([]bool, len(debtors))
	var restC, restD []models.Balance

	for _, c := range creditors {
		found := false
		for j, d := range debtors {
			if matched[j] || !isZero(c.Amount+d.Amount) {
				continue
			}
			txs = append(txs, models.Transaction{From: d.Name, To: c.Name, Amount: c.Amount})
			matched[j] = true
			found = true
			break
		}
		if !found {
			restC = append(restC, c)
		}
	}

	for j, d := range debtors {
		if !matched[j] {
			restD = append(restD, d)
		}
	}
	return txs, restC, restD
}

// packResidual walks creditors from the largest surplus and debtors from the
// largest deficit. Each step fully settles one of the two current parties.
// Remainders within Epsilon count as settled.
func packResidual(creditors, debtors []models.Balance, tr *tracer) []models.Transaction {
	surplus := slices.Clone(creditors)
	deficit := slices.Clone(debtors)
	slices.SortStableFunc(surplus, func(a, b models.Balance) int { return cmp.Compare(b.Amount, a.Amount) })
	slices.SortStableFunc(deficit, func(a, b models.Balance) int { return cmp.Compare(a.Amount, b.Amount) })

	tr.printf("remaining creditors: %s", formatBalances(surplus))
	tr.printf("remaining debtors: %s", formatBalances(deficit))

	txs := []models.Transaction{}
	i, j := 0, 0
	for i < len(surplus) && j < len(deficit) {
		c, d := &surplus[i], &deficit[j]
		switch {
		case c.Amount <= Epsilon:
			i++
		case -d.Amount <= Epsilon:
			j++
		case c.Amount < -d.Amount:
			txs = append(txs, models.Transaction{From: d.Name, To: c.Name, Amount: c.Amount})
			d.Amount += c.Amount
			c.Amount = 0
			i++
		default:
			txs = append(txs, models.Transaction{From: d.Name, To: c.Name, Amount: -d.Amount})
			c.Amount += d.Amount
			d.Amount = 0
			j++
		}
	}
	return txs
}
