package settlement

import (
	"errors"
	"fmt"
	"math"

	"github.com/suyash01/splitease/internal/models"
)

var ErrUnbalanced = errors.New("settlement does not balance")

// Verify checks that txs brings every participant to the fair share, that all
// amounts are positive and that nobody pays themselves. Entries sharing a name
// are checked together since transactions only carry names, so a payment
// between two entries of the same name is allowed.
func Verify(contributions []models.Contribution, txs []models.Transaction) error {
	fair := FairShare(contributions)

	net := make(map[string]float64, len(contributions))
	entries := make(map[string]int, len(contributions))
	var order []string
	for _, c := range contributions {
		if _, ok := entries[c.Name]; !ok {
			order = append(order, c.Name)
		}
		net[c.Name] += c.Amount
		entries[c.Name]++
	}

	for i, tx := range txs {
		if tx.Amount <= 0 {
			return fmt.Errorf("%w: transaction %d has non-positive amount %v", ErrUnbalanced, i, tx.Amount)
		}
		if tx.From == tx.To && entries[tx.From] == 1 {
			return fmt.Errorf("%w: transaction %d pays %s to themselves", ErrUnbalanced, i, tx.From)
		}
		if _, ok := entries[tx.From]; !ok {
			return fmt.Errorf("%w: transaction %d from unknown participant %s", ErrUnbalanced, i, tx.From)
		}
		if _, ok := entries[tx.To]; !ok {
			return fmt.Errorf("%w: transaction %d to unknown participant %s", ErrUnbalanced, i, tx.To)
		}
		// the payer's net contribution grows, the payee gets money back
		net[tx.From] += tx.Amount
		net[tx.To] -= tx.Amount
	}

	for _, name := range order {
		want := fair * float64(entries[name])
		if math.Abs(net[name]-want) > Epsilon*float64(entries[name]) {
			return fmt.Errorf("%w: %s ends at %s, want %s", ErrUnbalanced, name, FormatAmount(net[name]), FormatAmount(want))
		}
	}
	return nil
}
