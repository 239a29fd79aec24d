package models

import "github.com/shopspring/decimal"

// Movement is one bank transaction recorded for a period.
// A positive amount is a credit, a negative one a debit.
type Movement struct {
	ID       string          `json:"id"`
	PeriodID string          `json:"periodId"`
	Date     Date            `json:"date"`
	Wording  string          `json:"wording"`
	Amount   decimal.Decimal `json:"amount"`
}

// MovementInput is the client-supplied part of a Movement.
type MovementInput struct {
	Date    Date            `json:"date"`
	Wording string          `json:"wording"`
	Amount  decimal.Decimal `json:"amount"`
}

// Checkpoint is an attested account balance on a given date, typically
// copied from a bank statement.
type Checkpoint struct {
	ID       string          `json:"id"`
	PeriodID string          `json:"periodId"`
	Date     Date            `json:"date"`
	Balance  decimal.Decimal `json:"balance"`
}

// CheckpointInput is the client-supplied part of a Checkpoint.
type CheckpointInput struct {
	Date    Date            `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// CheckpointPatch carries the fields of a partial checkpoint update; nil fields are left unchanged.
type CheckpointPatch struct {
	Date    *Date            `json:"date,omitempty"`
	Balance *decimal.Decimal `json:"balance,omitempty"`
}
