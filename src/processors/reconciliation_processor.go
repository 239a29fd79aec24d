package processors

import (
	"github.com/shopspring/decimal"
	"github.com/username/bankrecon/backend/src/models"
)

// UnexpectedAmountThreshold is the absolute amount above which a single
// movement is flagged for review.
const UnexpectedAmountThreshold = 10000

var unexpectedAmountLimit = decimal.NewFromInt(UnexpectedAmountThreshold)

type reconciliationProcessorImpl struct{}

func NewReconciliationProcessor() ReconciliationProcessor {
	return &reconciliationProcessorImpl{}
}

// Evaluate runs every check and concatenates their findings, so one run
// reports all categories of problems at once.
func (p *reconciliationProcessorImpl) Evaluate(movements []models.Movement, checkpoints []models.Checkpoint) models.ReconciliationResult {
	errs := []models.ValidationError{}

	if len(movements) == 0 {
		errs = append(errs, models.NewMissingMovementsError())
	}
	if len(checkpoints) == 0 {
		errs = append(errs, models.NewMissingCheckpointError())
	}
	if len(movements) > 0 && len(checkpoints) > 0 {
		if e, ok := checkBalance(movements, checkpoints); !ok {
			errs = append(errs, e)
		}
	}
	errs = append(errs, findDuplicates(movements)...)
	errs = append(errs, findUnexpectedAmounts(movements)...)

	return models.ReconciliationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}

// ReferenceCheckpoint returns the checkpoint whose balance closes the period:
// the one with the latest date, the later one in the slice winning ties.
// checkpoints must not be empty.
func ReferenceCheckpoint(checkpoints []models.Checkpoint) models.Checkpoint {
	ref := checkpoints[0]
	for _, c := range checkpoints[1:] {
		if !c.Date.Before(ref.Date) {
			ref = c
		}
	}
	return ref
}

// SumMovements returns the signed total of all movement amounts.
func SumMovements(movements []models.Movement) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		total = total.Add(m.Amount)
	}
	return total
}

func checkBalance(movements []models.Movement, checkpoints []models.Checkpoint) (models.ValidationError, bool) {
	expected := ReferenceCheckpoint(checkpoints).Balance
	actual := SumMovements(movements)
	if expected.Equal(actual) {
		return models.ValidationError{}, true
	}
	return models.NewBalanceMismatchError(expected, actual), false
}

type duplicateKey struct {
	date    string
	amount  string
	wording string
}

// findDuplicates emits one error per (date, amount, wording) group with two
// or more members, listing every member. Groups keep first-occurrence order.
func findDuplicates(movements []models.Movement) []models.ValidationError {
	groups := make(map[duplicateKey][]string)
	var order []duplicateKey
	for _, m := range movements {
		// decimal.String drops trailing zeros, so 100 and 100.00 share a key.
		key := duplicateKey{date: m.Date.String(), amount: m.Amount.String(), wording: m.Wording}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], m.ID)
	}

	var errs []models.ValidationError
	for _, key := range order {
		if ids := groups[key]; len(ids) > 1 {
			errs = append(errs, models.NewPotentialMovementDuplicateError(ids))
		}
	}
	return errs
}

func findUnexpectedAmounts(movements []models.Movement) []models.ValidationError {
	var errs []models.ValidationError
	for _, m := range movements {
		if m.Amount.Abs().GreaterThan(unexpectedAmountLimit) {
			errs = append(errs, models.NewUnexpectedAmountError(m.ID, m.Amount))
		}
	}
	return errs
}
