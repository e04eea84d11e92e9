// Package settlement computes who pays whom so that everyone ends up having
// paid the same share of a common expense.
package settlement

import "github.com/suyash01/splitease/internal/models"

type Result struct {
	Contributions []models.Contribution
	FairShare     float64
	Creditors     []models.Balance
	Debtors       []models.Balance
	Transactions  []models.Transaction
	Trace         string
}

// Settle parses input, classifies balances and plans the payments. The only
// possible error is a *ParseError.
func Settle(input string) (*Result, error) {
	contributions, err := Parse(input)
	if err != nil {
		return nil, err
	}

	tr := &tracer{}
	tr.printf("contributions: %s", formatContributions(contributions))

	cls := Classify(contributions)
	tr.printf("fair share: %s", FormatAmount(cls.FairShare))
	tr.printf("creditors: %s", formatBalances(cls.Creditors))
	tr.printf("debtors: %s", formatBalances(cls.Debtors))

	txs := plan(cls.Creditors, cls.Debtors, tr)
	tr.printf("transactions: %s", formatTransactions(txs))

	return &Result{
		Contributions: contributions,
		FairShare:     cls.FairShare,
		Creditors:     cls.Creditors,
		Debtors:       cls.Debtors,
		Transactions:  txs,
		Trace:         tr.String(),
	}, nil
}

// Summary is the outward view of r. Balanced reports whether the transactions
// pass Verify.
func (r *Result) Summary() models.Settlement {
	return models.Settlement{
		FairShare:     r.FairShare,
		Contributions: r.Contributions,
		Transactions:  r.Transactions,
		Trace:         r.Trace,
		Balanced:      Verify(r.Contributions, r.Transactions) == nil,
	}
}
