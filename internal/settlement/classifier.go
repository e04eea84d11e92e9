package settlement

import (
	"math"

	"github.com/suyash01/splitease/internal/models"
)

// Epsilon is the tolerance for every equality and sign check on amounts.
const Epsilon = 1e-6

type Classification struct {
	FairShare float64
	Creditors []models.Balance
	Debtors   []models.Balance
}

// FairShare is the average contribution, 0 for an empty list.
func FairShare(contributions []models.Contribution) float64 {
	if len(contributions) == 0 {
		return 0
	}
	var total float64
	for _, c := range contributions {
		total += c.Amount
	}
	return total / float64(len(contributions))
}

// Classify splits participants into creditors (paid more than the fair share)
// and debtors (paid less). Settled participants are dropped. Both lists keep
// input order.
func Classify(contributions []models.Contribution) Classification {
	cls := Classification{
		FairShare: FairShare(contributions),
		Creditors: []models.Balance{},
		Debtors:   []models.Balance{},
	}
	for i, c := range contributions {
		balance := c.Amount - cls.FairShare
		switch {
		case isZero(balance):
			// settled
		case balance > 0:
			cls.Creditors = append(cls.Creditors, models.Balance{Name: c.Name, Amount: balance, Index: i})
		default:
			cls.Debtors = append(cls.Debtors, models.Balance{Name: c.Name, Amount: balance, Index: i})
		}
	}
	return cls
}

func isZero(x float64) bool {
	return math.Abs(x) <= Epsilon
}
