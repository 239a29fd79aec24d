package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/username/bankrecon/backend/src/logger"
	"github.com/username/bankrecon/backend/src/models"
)

var ErrValidationFailed = fmt.Errorf("validation failed")

const (
	MaxWordingLength = 255
	MaxPeriodYear    = 9999
)

// MaxAbsAmount bounds movement amounts and checkpoint balances.
var MaxAbsAmount = decimal.New(1, 12)

// dateLayouts are tried in order by ValidateDateString.
var dateLayouts = []string{models.DateLayout, "02/01/2006", "02-01-2006"}

// --- String Validators ---

// ValidateStringNotEmpty checks if a string is not empty after trimming.
func ValidateStringNotEmpty(s, fieldName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s cannot be empty", ErrValidationFailed, fieldName)
	}
	return nil
}

// ValidateStringMaxLength checks if a string's UTF-8 character count is within max bounds.
func ValidateStringMaxLength(s string, maxLength int, fieldName string) error {
	if utf8.RuneCountInString(s) > maxLength {
		return fmt.Errorf("%w: %s exceeds maximum length of %d characters", ErrValidationFailed, fieldName, maxLength)
	}
	return nil
}

// ValidateWording cleans a movement wording and checks it. The returned
// string is what gets stored.
func ValidateWording(s, contextID string) (string, error) {
	cleaned := strings.TrimSpace(SanitizeText(StripUnprintable(s)))
	if err := ValidateStringNotEmpty(cleaned, "wording"); err != nil {
		return "", err
	}
	if err := ValidateStringMaxLength(cleaned, MaxWordingLength, "wording"); err != nil {
		return "", err
	}
	if err := CheckXSSPatterns(cleaned, "wording", contextID); err != nil {
		return "", err
	}
	if err := CheckFormulaInjection(cleaned, "wording", contextID); err != nil {
		return "", err
	}
	return cleaned, nil
}

// --- Numeric Validators ---

// ValidateAmount checks that |d| stays within MaxAbsAmount.
func ValidateAmount(d decimal.Decimal, fieldName string) error {
	if d.Abs().GreaterThan(MaxAbsAmount) {
		logger.L.Warn("Amount out of range", "field", fieldName, "value", d.String())
		return fmt.Errorf("%w: %s must be between -%s and %s", ErrValidationFailed, fieldName, MaxAbsAmount, MaxAbsAmount)
	}
	return nil
}

// ValidateAmountString parses a bank statement amount. Spaces are ignored and
// either ',' or '.' may be the decimal separator; when both appear the last
// one is the decimal separator.
func ValidateAmountString(s, fieldName string) (decimal.Decimal, error) {
	cleaned := strings.Trim(strings.TrimSpace(s), "\"")
	if err := ValidateStringNotEmpty(cleaned, fieldName); err != nil {
		return decimal.Zero, err
	}
	cleaned = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\u00a0' || r == '\u202f' {
			return -1
		}
		return r
	}, cleaned)

	lastComma := strings.LastIndex(cleaned, ",")
	lastDot := strings.LastIndex(cleaned, ".")
	switch {
	case lastComma > lastDot:
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	case lastDot > lastComma && lastComma >= 0:
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s ('%s') is not a valid amount", ErrValidationFailed, fieldName, s)
	}
	if err := ValidateAmount(d, fieldName); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// ValidateYear checks a period year.
func ValidateYear(year int) error {
	if year < models.MinPeriodYear || year > MaxPeriodYear {
		return fmt.Errorf("%w: year must be between %d and %d, got %d", ErrValidationFailed, models.MinPeriodYear, MaxPeriodYear, year)
	}
	return nil
}

// ValidateMonth resolves a French month name.
func ValidateMonth(s string) (models.PeriodMonth, error) {
	m, err := models.ParsePeriodMonth(s)
	if err != nil {
		return "", fmt.Errorf("%w: month ('%s') must be a French month name such as janvier", ErrValidationFailed, s)
	}
	return m, nil
}

// --- Date Validator ---

// ValidateDateString accepts YYYY-MM-DD, DD/MM/YYYY or DD-MM-YYYY and
// rejects dates that only parse through normalisation (e.g. 31/02).
func ValidateDateString(s, fieldName string) (models.Date, error) {
	trimmed := strings.TrimSpace(s)
	if err := ValidateStringNotEmpty(trimmed, fieldName); err != nil {
		return models.Date{}, err
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, trimmed)
		if err != nil {
			continue
		}
		if t.Format(layout) != trimmed {
			break
		}
		return models.DateOf(t), nil
	}
	return models.Date{}, fmt.Errorf("%w: %s ('%s') is not a valid date (expected YYYY-MM-DD or DD/MM/YYYY)", ErrValidationFailed, fieldName, s)
}

// ValidateDateSet rejects the zero Date, i.e. a missing JSON field.
func ValidateDateSet(d models.Date, fieldName string) error {
	if d.IsZero() {
		return fmt.Errorf("%w: %s is required", ErrValidationFailed, fieldName)
	}
	return nil
}

// --- Input Validators ---

// ValidateMovementInput returns the input with its wording cleaned.
func ValidateMovementInput(in models.MovementInput, contextID string) (models.MovementInput, error) {
	if err := ValidateDateSet(in.Date, "date"); err != nil {
		return in, err
	}
	wording, err := ValidateWording(in.Wording, contextID)
	if err != nil {
		return in, err
	}
	if err := ValidateAmount(in.Amount, "amount"); err != nil {
		return in, err
	}
	in.Wording = wording
	return in, nil
}

func ValidateCheckpointInput(in models.CheckpointInput) error {
	if err := ValidateDateSet(in.Date, "date"); err != nil {
		return err
	}
	return ValidateAmount(in.Balance, "balance")
}

// ValidateCheckpointPatch requires at least one field to be present.
func ValidateCheckpointPatch(p models.CheckpointPatch) error {
	if p.Date == nil && p.Balance == nil {
		return fmt.Errorf("%w: patch must set date or balance", ErrValidationFailed)
	}
	if p.Date != nil {
		if err := ValidateDateSet(*p.Date, "date"); err != nil {
			return err
		}
	}
	if p.Balance != nil {
		return ValidateAmount(*p.Balance, "balance")
	}
	return nil
}
