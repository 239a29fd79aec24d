package bankcsv

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/username/bankrecon/backend/src/logger"
	"github.com/username/bankrecon/backend/src/models"
	"github.com/username/bankrecon/backend/src/security/validation"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Header aliases, compared after normalizeHeader.
var (
	dateHeaders    = []string{"date", "date operation", "date de l'operation", "date valeur"}
	wordingHeaders = []string{"wording", "libelle", "label", "description"}
	amountHeaders  = []string{"amount", "montant"}
	debitHeaders   = []string{"debit"}
	creditHeaders  = []string{"credit"}
)

// columns holds the index of each recognised header, -1 when absent.
type columns struct {
	date, wording, amount, debit, credit int
}

// Parser reads bank statement exports: a header row followed by one movement
// per row. Columns are located by name, so their order does not matter.
// Either a signed amount column or a debit/credit pair is required. Comma,
// semicolon and tab delimiters are detected from the header line.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse returns one MovementInput per non-blank row, in file order. Any bad
// row fails the whole file with an error naming the line.
func (p *Parser) Parse(file io.Reader) ([]models.MovementInput, error) {
	br := bufio.NewReader(file)
	if bom, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(bom, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.Comma = detectDelimiter(br)
	reader.FieldsPerRecord = -1 // Allow variable number of fields per record
	// Leading-space trimming would swallow empty tab-separated fields.
	reader.TrimLeadingSpace = reader.Comma != '\t'

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: statement is empty", validation.ErrValidationFailed)
		}
		return nil, fmt.Errorf("bankcsv parser: failed to read CSV header: %w", err)
	}
	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var movements []models.MovementInput
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, fmt.Errorf("%w: line %d: %v", validation.ErrValidationFailed, pe.Line, pe.Err)
			}
			return nil, fmt.Errorf("bankcsv parser: failed to read CSV record: %w", err)
		}
		line, _ := reader.FieldPos(0)
		if isBlank(record) {
			continue
		}
		m, err := cols.movement(record, line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		movements = append(movements, m)
	}

	if len(movements) == 0 {
		return nil, fmt.Errorf("%w: statement contains no movements", validation.ErrValidationFailed)
	}
	logger.L.Debug("Parsed bank statement", "movements", len(movements), "delimiter", string(reader.Comma))
	return movements, nil
}

func (c columns) movement(record []string, line int) (models.MovementInput, error) {
	field := func(i int) string {
		if i < 0 || i >= len(record) {
			return ""
		}
		return record[i]
	}

	date, err := validation.ValidateDateString(field(c.date), "date")
	if err != nil {
		return models.MovementInput{}, err
	}
	wording, err := validation.ValidateWording(field(c.wording), fmt.Sprintf("bankcsv line %d", line))
	if err != nil {
		return models.MovementInput{}, err
	}

	var amount decimal.Decimal
	if c.amount >= 0 {
		amount, err = validation.ValidateAmountString(field(c.amount), "amount")
		if err != nil {
			return models.MovementInput{}, err
		}
	} else {
		amount, err = debitCredit(field(c.debit), field(c.credit))
		if err != nil {
			return models.MovementInput{}, err
		}
	}

	return models.MovementInput{Date: date, Wording: wording, Amount: amount}, nil
}

// debitCredit folds a split debit/credit pair into one signed amount. Debits
// are negative whatever sign the export used.
func debitCredit(debit, credit string) (decimal.Decimal, error) {
	debit, credit = strings.TrimSpace(debit), strings.TrimSpace(credit)
	if debit == "" && credit == "" {
		return decimal.Zero, fmt.Errorf("%w: debit or credit is required", validation.ErrValidationFailed)
	}
	amount := decimal.Zero
	if debit != "" {
		d, err := validation.ValidateAmountString(debit, "debit")
		if err != nil {
			return decimal.Zero, err
		}
		amount = amount.Sub(d.Abs())
	}
	if credit != "" {
		c, err := validation.ValidateAmountString(credit, "credit")
		if err != nil {
			return decimal.Zero, err
		}
		amount = amount.Add(c.Abs())
	}
	return amount, nil
}

func mapColumns(header []string) (columns, error) {
	cols := columns{date: -1, wording: -1, amount: -1, debit: -1, credit: -1}
	for i, h := range header {
		name := normalizeHeader(h)
		switch {
		case cols.date < 0 && slices.Contains(dateHeaders, name):
			cols.date = i
		case cols.wording < 0 && slices.Contains(wordingHeaders, name):
			cols.wording = i
		case cols.amount < 0 && slices.Contains(amountHeaders, name):
			cols.amount = i
		case cols.debit < 0 && slices.Contains(debitHeaders, name):
			cols.debit = i
		case cols.credit < 0 && slices.Contains(creditHeaders, name):
			cols.credit = i
		}
	}

	var missing []string
	if cols.date < 0 {
		missing = append(missing, "date")
	}
	if cols.wording < 0 {
		missing = append(missing, "wording")
	}
	if cols.amount < 0 && cols.debit < 0 && cols.credit < 0 {
		missing = append(missing, "amount")
	}
	if len(missing) > 0 {
		return cols, fmt.Errorf("%w: statement header is missing column(s): %s", validation.ErrValidationFailed, strings.Join(missing, ", "))
	}
	return cols, nil
}

var accentReplacer = strings.NewReplacer(
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"à", "a", "â", "a", "î", "i", "ï", "i",
	"ô", "o", "û", "u", "ù", "u", "ç", "c",
	"’", "'",
)

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(strings.Trim(h, "\"")))
	h = accentReplacer.Replace(h)
	return strings.Join(strings.Fields(h), " ")
}

// detectDelimiter picks the most frequent of ';', tab and ',' on the first
// line, defaulting to ','.
func detectDelimiter(br *bufio.Reader) rune {
	peek, _ := br.Peek(br.Size())
	if i := bytes.IndexByte(peek, '\n'); i >= 0 {
		peek = peek[:i]
	}
	best, bestCount := ',', bytes.Count(peek, []byte{','})
	for _, d := range []rune{';', '\t'} {
		if n := bytes.Count(peek, []byte{byte(d)}); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
