package bankcsv

import (
	"bufio"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/bankrecon/backend/src/security/validation"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantDate []string
		wantWord []string
		wantAmt  []string
	}{
		{
			name:     "comma separated iso dates",
			input:    "date,wording,amount\n2024-09-01,Salaire,2500.00\n2024-09-05,Loyer,-800.50\n",
			wantDate: []string{"2024-09-01", "2024-09-05"},
			wantWord: []string{"Salaire", "Loyer"},
			wantAmt:  []string{"2500", "-800.5"},
		},
		{
			name:     "french export with semicolons",
			input:    "\xEF\xBB\xBFDate;Libellé;Montant\n01/09/2024;VIR SALAIRE;2 500,00\n05/09/2024;\"PRLV EDF; facture\";-64,30\n",
			wantDate: []string{"2024-09-01", "2024-09-05"},
			wantWord: []string{"VIR SALAIRE", "PRLV EDF; facture"},
			wantAmt:  []string{"2500", "-64.3"},
		},
		{
			name:     "columns in any order with blank lines",
			input:    "amount,date,wording\n\n12,2024-09-02,Coffee\n,,\n-3,2024-09-03,Bakery\n",
			wantDate: []string{"2024-09-02", "2024-09-03"},
			wantWord: []string{"Coffee", "Bakery"},
			wantAmt:  []string{"12", "-3"},
		},
		{
			name:     "debit and credit columns",
			input:    "Date\tLibelle\tDebit\tCredit\n2024-09-01\tSalaire\t\t2500\n2024-09-02\tCB\t45,10\t\n",
			wantDate: []string{"2024-09-01", "2024-09-02"},
			wantWord: []string{"Salaire", "CB"},
			wantAmt:  []string{"2500", "-45.1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewParser().Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			require.Len(t, got, len(tt.wantDate))
			for i, m := range got {
				assert.Equal(t, tt.wantDate[i], m.Date.String())
				assert.Equal(t, tt.wantWord[i], m.Wording)
				assert.True(t, m.Amount.Equal(decimal.RequireFromString(tt.wantAmt[i])), "row %d: %s", i, m.Amount)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{name: "empty file", input: "", wantMsg: "empty"},
		{name: "header only", input: "date,wording,amount\n", wantMsg: "no movements"},
		{name: "missing columns", input: "when,what\n2024-09-01,x\n", wantMsg: "date, wording, amount"},
		{name: "bad date", input: "date,wording,amount\n2024-13-01,x,1\n", wantMsg: "line 2"},
		{name: "bad amount", input: "date,wording,amount\n2024-09-01,x,1\n2024-09-02,y,abc\n", wantMsg: "line 3"},
		{name: "formula wording", input: "date,wording,amount\n2024-09-01,=SUM(A1),1\n", wantMsg: "formula"},
		{name: "no debit nor credit", input: "date,wording,debit,credit\n2024-09-01,x,,\n", wantMsg: "debit or credit"},
		{name: "bare quote", input: "date,wording,amount\n2024-09-01,a\"b,1\n", wantMsg: "line 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser().Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, validation.ErrValidationFailed)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func newReader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestDetectDelimiter(t *testing.T) {
	assert.Equal(t, ';', detectDelimiter(newReader("a;b;c\n1,2;3;4")))
	assert.Equal(t, '\t', detectDelimiter(newReader("a\tb\tc")))
	assert.Equal(t, ',', detectDelimiter(newReader("abc")))
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "date de l'operation", normalizeHeader("  Date de l’Opération "))
	assert.Equal(t, "libelle", normalizeHeader("\"LIBELLÉ\""))
}
