package settlement

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suyash01/splitease/internal/models"
	"golang.org/x/sync/errgroup"
)

func assertTransactions(t *testing.T, want, got []models.Transaction) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].From, got[i].From, "transaction %d from", i)
		assert.Equal(t, want[i].To, got[i].To, "transaction %d to", i)
		assert.InDelta(t, want[i].Amount, got[i].Amount, Epsilon, "transaction %d amount", i)
	}
}

func TestSettleScenarios(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		fairShare float64
		want      []models.Transaction
	}{
		{
			name:      "everyone paid the same",
			input:     "A 30\nB 30\nC 30",
			fairShare: 30,
			want:      []models.Transaction{},
		},
		{
			name:      "single creditor",
			input:     "A 100\nB 0\nC 0",
			fairShare: 100.0 / 3,
			want: []models.Transaction{
				{From: "B", To: "A", Amount: 100.0 / 3},
				{From: "C", To: "A", Amount: 100.0 / 3},
			},
		},
		{
			name:      "settled participants are dropped",
			input:     "A 50\nB 50\nC 0\nD 100",
			fairShare: 50,
			want:      []models.Transaction{{From: "C", To: "D", Amount: 50}},
		},
		{
			name:      "exact matches in creditor order",
			input:     "A 90\nB 60\nC 30\nD 0",
			fairShare: 45,
			want: []models.Transaction{
				{From: "D", To: "A", Amount: 45},
				{From: "C", To: "B", Amount: 15},
			},
		},
		{
			name:      "empty input",
			input:     "",
			fairShare: 0,
			want:      []models.Transaction{},
		},
		{
			name:      "single participant",
			input:     "A 12",
			fairShare: 12,
			want:      []models.Transaction{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Settle(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.fairShare, res.FairShare, Epsilon)
			assertTransactions(t, tt.want, res.Transactions)
			assert.NoError(t, Verify(res.Contributions, res.Transactions))
		})
	}
}

func TestSettleParseErrors(t *testing.T) {
	res, err := Settle("A 10\nB")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrIncompleteLine)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Line)

	res, err = Settle("A ten")
	assert.Nil(t, res)
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, NotANumber, perr.Kind)
	assert.Equal(t, 0, perr.Line)
}

func TestSettleTrace(t *testing.T) {
	res, err := Settle("A 90\nB 60\nC 30\nD 0")
	require.NoError(t, err)

	want := strings.Join([]string{
		"contributions: A 90.00, B 60.00, C 30.00, D 0.00",
		"fair share: 45.00",
		"creditors: A +45.00, B +15.00",
		"debtors: C -15.00, D -45.00",
		"exact matches: D -> A 45.00, C -> B 15.00",
		"remaining creditors: none",
		"remaining debtors: none",
		"transactions: D -> A 45.00, C -> B 15.00",
	}, "\n") + "\n"
	assert.Equal(t, want, res.Trace)
}

func TestSettleTraceSingleCreditor(t *testing.T) {
	res, err := Settle("A 100\nB 0\nC 0")
	require.NoError(t, err)
	assert.Contains(t, res.Trace, "single creditor A")
	assert.Contains(t, res.Trace, "transactions: B -> A 33.33, C -> A 33.33")
}

func TestSettleDuplicateNames(t *testing.T) {
	res, err := Settle("A 10\nA 50\nB 30")
	require.NoError(t, err)
	require.Len(t, res.Contributions, 3)
	assertTransactions(t, []models.Transaction{{From: "A", To: "A", Amount: 20}}, res.Transactions)
	assert.NoError(t, Verify(res.Contributions, res.Transactions))
}

func randomInput(r *rand.Rand, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "p%d %d.%02d\n", i, r.IntN(500), r.IntN(100))
	}
	return b.String()
}

func TestSettleProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for round := 0; round < 200; round++ {
		input := randomInput(r, 1+r.IntN(12))

		res, err := Settle(input)
		require.NoError(t, err)
		require.NoError(t, Verify(res.Contributions, res.Transactions), input)

		var surplus, paid float64
		for _, c := range res.Creditors {
			surplus += c.Amount
		}
		for _, tx := range res.Transactions {
			assert.Greater(t, tx.Amount, 0.0, input)
			assert.NotEqual(t, tx.From, tx.To, input)
			paid += tx.Amount
		}
		assert.LessOrEqual(t, paid, surplus+Epsilon, input)

		if len(res.Creditors) == 1 {
			assert.Len(t, res.Transactions, len(res.Debtors), input)
		}
	}
}

func TestSettleBalancedInputs(t *testing.T) {
	for _, input := range []string{"A 0\nB 0", "A 19.99\nB 19.99\nC 19.99", "A -5\nB -5"} {
		res, err := Settle(input)
		require.NoError(t, err)
		assert.Empty(t, res.Transactions, input)
	}
}

func TestSettleConcurrent(t *testing.T) {
	inputs := make([]string, 32)
	r := rand.New(rand.NewPCG(7, 7))
	for i := range inputs {
		inputs[i] = randomInput(r, 2+r.IntN(10))
	}

	results := make([]*Result, len(inputs))
	var g errgroup.Group
	for i, input := range inputs {
		g.Go(func() error {
			res, err := Settle(input)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i, input := range inputs {
		want, err := Settle(input)
		require.NoError(t, err)
		assert.Equal(t, want, results[i])
	}
}

func TestResultSummary(t *testing.T) {
	res, err := Settle("A 100\nB 0")
	require.NoError(t, err)

	s := res.Summary()
	assert.True(t, s.Balanced)
	assert.InDelta(t, 50, s.FairShare, Epsilon)
	assert.Equal(t, res.Transactions, s.Transactions)
	assert.Equal(t, res.Trace, s.Trace)

	res.Transactions = nil
	assert.False(t, res.Summary().Balanced)
}

func TestSettleHugeAmounts(t *testing.T) {
	for _, input := range []string{
		"A 1e308\nB 1e308\nC 0",
		"A 1.7e308\nB -1.7e308\nC -1.7e308",
	} {
		var err error
		require.NotPanics(t, func() { _, err = Settle(input) }, input)
		assert.ErrorIs(t, err, ErrNotANumber, input)
	}

	res, err := Settle("A 1e15\nB -1e15\nC 0")
	require.NoError(t, err)
	assert.NoError(t, Verify(res.Contributions, res.Transactions))
	assert.Contains(t, res.Trace, "transactions: B -> A 1000000000000000.00")
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{100.0 / 3, "33.33"},
		{-15, "-15.00"},
		{math.Inf(1), "+Inf"},
		{math.Inf(-1), "-Inf"},
		{math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount(tt.in))
	}
}
