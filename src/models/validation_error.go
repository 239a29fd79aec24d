package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ValidationErrorType is the discriminant of a ValidationError.
type ValidationErrorType string

const (
	MissingCheckpoint          ValidationErrorType = "MISSING_CHECKPOINT"
	MissingMovements           ValidationErrorType = "MISSING_MOVEMENTS"
	BalanceMismatch            ValidationErrorType = "BALANCE_MISMATCH"
	PotentialMovementDuplicate ValidationErrorType = "POTENTIAL_MOVEMENT_DUPLICATE"
	UnexpectedAmount           ValidationErrorType = "UNEXPECTED_AMOUNT"

	// Reserved kinds. Clients may already switch on them but no check emits them yet.
	InconsistentDate              ValidationErrorType = "INCONSISTENT_DATE"
	DuplicateMovement             ValidationErrorType = "DUPLICATE_MOVEMENT"
	InitialBalanceMismatch        ValidationErrorType = "INITIAL_BALANCE_MISMATCH"
	MissingTransaction            ValidationErrorType = "MISSING_TRANSACTION"
	MissingIntermediateCheckpoint ValidationErrorType = "MISSING_INTERMEDIATE_CHECKPOINT"
	InconsistentBalance           ValidationErrorType = "INCONSISTENT_BALANCE"
)

// ValidationError is one reconciliation finding. Type selects which of the
// payload fields are meaningful; the others are left empty and omitted from JSON.
type ValidationError struct {
	Type    ValidationErrorType `json:"type"`
	Message string              `json:"message"`

	// BALANCE_MISMATCH
	ExpectedBalance *decimal.Decimal `json:"expectedBalance,omitempty"`
	ActualBalance   *decimal.Decimal `json:"actualBalance,omitempty"`

	// POTENTIAL_MOVEMENT_DUPLICATE
	MovementIDs []string `json:"movementIds,omitempty"`

	// UNEXPECTED_AMOUNT
	MovementID string           `json:"movementId,omitempty"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
}

func NewMissingCheckpointError() ValidationError {
	return ValidationError{Type: MissingCheckpoint, Message: "No checkpoint found"}
}

func NewMissingMovementsError() ValidationError {
	return ValidationError{Type: MissingMovements, Message: "No movements found"}
}

func NewBalanceMismatchError(expected, actual decimal.Decimal) ValidationError {
	return ValidationError{
		Type:            BalanceMismatch,
		Message:         fmt.Sprintf("Final balance %s does not match calculated balance %s", expected, actual),
		ExpectedBalance: &expected,
		ActualBalance:   &actual,
	}
}

func NewPotentialMovementDuplicateError(movementIDs []string) ValidationError {
	return ValidationError{
		Type:        PotentialMovementDuplicate,
		Message:     fmt.Sprintf("Potential duplicate movements detected: %s", strings.Join(movementIDs, ", ")),
		MovementIDs: movementIDs,
	}
}

func NewUnexpectedAmountError(movementID string, amount decimal.Decimal) ValidationError {
	return ValidationError{
		Type:       UnexpectedAmount,
		Message:    fmt.Sprintf("Unexpected amount for movement %s: %s", movementID, amount),
		MovementID: movementID,
		Amount:     &amount,
	}
}
