package models

// Transaction means From pays To the given amount.
type Transaction struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// Settlement is the outward view of a settlement run, as served by the JSON
// API and printed by the CLI.
type Settlement struct {
	FairShare     float64        `json:"fair_share"`
	Contributions []Contribution `json:"contributions"`
	Transactions  []Transaction  `json:"transactions"`
	Trace         string         `json:"trace"`
	Balanced      bool           `json:"balanced"`
}
