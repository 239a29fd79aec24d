package models

import (
	"fmt"
	"strings"
	"time"
)

// MinPeriodYear is the earliest year a period may start in.
const MinPeriodYear = 1900

// PeriodMonth is the French month name used by the API ("janvier" … "décembre").
type PeriodMonth string

const (
	January   PeriodMonth = "janvier"
	February  PeriodMonth = "février"
	March     PeriodMonth = "mars"
	April     PeriodMonth = "avril"
	May       PeriodMonth = "mai"
	June      PeriodMonth = "juin"
	July      PeriodMonth = "juillet"
	August    PeriodMonth = "août"
	September PeriodMonth = "septembre"
	October   PeriodMonth = "octobre"
	November  PeriodMonth = "novembre"
	December  PeriodMonth = "décembre"
)

var monthOrdinals = map[PeriodMonth]time.Month{
	January:   time.January,
	February:  time.February,
	March:     time.March,
	April:     time.April,
	May:       time.May,
	June:      time.June,
	July:      time.July,
	August:    time.August,
	September: time.September,
	October:   time.October,
	November:  time.November,
	December:  time.December,
}

// ParsePeriodMonth matches a month name case-insensitively.
func ParsePeriodMonth(s string) (PeriodMonth, error) {
	m := PeriodMonth(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := monthOrdinals[m]; !ok {
		return "", fmt.Errorf("unknown month %q", s)
	}
	return m, nil
}

// Ordinal returns the calendar month, or 0 for an unknown name.
func (m PeriodMonth) Ordinal() time.Month {
	return monthOrdinals[m]
}

// Period is one calendar month used as the reconciliation unit.
// StartDate and EndDate are derived from Year and Month by SetYearMonth and
// must not be assigned directly.
type Period struct {
	ID        string      `json:"id"`
	Year      int         `json:"year"`
	Month     PeriodMonth `json:"month"`
	StartDate Date        `json:"startDate"`
	EndDate   Date        `json:"endDate"`
}

// NewPeriod builds a period for (year, month) with its derived dates.
func NewPeriod(year int, month PeriodMonth) (*Period, error) {
	p := &Period{}
	if err := p.SetYearMonth(year, month); err != nil {
		return nil, err
	}
	return p, nil
}

// SetYearMonth sets Year and Month and recomputes StartDate and EndDate.
func (p *Period) SetYearMonth(year int, month PeriodMonth) error {
	if year < MinPeriodYear {
		return fmt.Errorf("year must be >= %d, got %d", MinPeriodYear, year)
	}
	ordinal := month.Ordinal()
	if ordinal == 0 {
		return fmt.Errorf("unknown month %q", month)
	}
	p.Year = year
	p.Month = month
	p.StartDate = NewDate(year, ordinal, 1)
	// Day 0 of the following month is the last day of this one.
	p.EndDate = NewDate(year, ordinal+1, 0)
	return nil
}

// Contains reports whether d falls within [StartDate, EndDate].
func (p *Period) Contains(d Date) bool {
	return !d.Before(p.StartDate) && !d.After(p.EndDate)
}
