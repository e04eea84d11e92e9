package models

// Contribution is what one participant actually paid toward the shared expense.
// Names are not unique: two lines with the same name are two ledger entries.
type Contribution struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Balance is a participant's amount minus the fair share.
// Index points back into the contribution list.
type Balance struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Index  int     `json:"index"`
}
