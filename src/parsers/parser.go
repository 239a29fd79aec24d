package parsers

import (
	"io"

	"github.com/username/bankrecon/backend/src/models"
)

// Parser turns an uploaded bank statement into movement inputs.
type Parser interface {
	Parse(file io.Reader) ([]models.MovementInput, error)
}
