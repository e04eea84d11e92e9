package settlement

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/suyash01/splitease/internal/models"
)

// tracer collects the human readable steps of a settlement. A nil tracer
// discards everything.
type tracer struct {
	b strings.Builder
}

func (t *tracer) printf(format string, args ...any) {
	if t == nil {
		return
	}
	fmt.Fprintf(&t.b, format, args...)
	t.b.WriteByte('\n')
}

func (t *tracer) String() string {
	if t == nil {
		return ""
	}
	return t.b.String()
}

// FormatAmount renders an amount with two decimals. Non-finite values are
// printed as-is.
func FormatAmount(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', 2, 64)
	}
	return decimal.NewFromFloat(x).StringFixed(2)
}

func formatContributions(contributions []models.Contribution) string {
	if len(contributions) == 0 {
		return "none"
	}
	parts := make([]string, len(contributions))
	for i, c := range contributions {
		parts[i] = c.Name + " " + FormatAmount(c.Amount)
	}
	return strings.Join(parts, ", ")
}

func formatBalances(balances []models.Balance) string {
	if len(balances) == 0 {
		return "none"
	}
	parts := make([]string, len(balances))
	for i, b := range balances {
		sign := ""
		if b.Amount > 0 {
			sign = "+"
		}
		parts[i] = b.Name + " " + sign + FormatAmount(b.Amount)
	}
	return strings.Join(parts, ", ")
}

func formatTransactions(txs []models.Transaction) string {
	if len(txs) == 0 {
		return "none"
	}
	parts := make([]string, len(txs))
	for i, tx := range txs {
		parts[i] = fmt.Sprintf("%s -> %s %s", tx.From, tx.To, FormatAmount(tx.Amount))
	}
	return strings.Join(parts, ", ")
}
