package settlement

import (
	"math"
	"strconv"
	"strings"

	"github.com/suyash01/splitease/internal/models"
)

// MaxAmount bounds |amount| so that sums over any realistic number of lines
// stay finite.
const MaxAmount = 1e15

// Parse reads one "name amount" pair per line. Empty lines are skipped; any
// other line without exactly two fields, whitespace-only lines included, fails
// the whole batch and no contributions are returned.
func Parse(input string) ([]models.Contribution, error) {
	contributions := []models.Contribution{}
	for i, line := range strings.Split(input, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, &ParseError{Kind: IncompleteLine, Line: i, Text: strings.TrimSpace(line)}
		}

		amount, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || math.IsNaN(amount) || math.Abs(amount) > MaxAmount {
			return nil, &ParseError{Kind: NotANumber, Line: i, Text: strings.TrimSpace(line)}
		}

		contributions = append(contributions, models.Contribution{Name: fields[0], Amount: amount})
	}
	return contributions, nil
}
