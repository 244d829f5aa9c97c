package entity

import (
	"strings"
	"time"

	"github.com/Finitiix/friend-flows-tracker/pkg/response"
	"github.com/shopspring/decimal"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	ErrInvalidDate    = response.NewError(400, "invalid date, expected YYYY-MM-DD")
	ErrInvalidTime    = response.NewError(400, "invalid time, expected HH:MM")
	ErrNegativeAmount = response.NewError(400, "amount must not be negative")
	ErrEmptyPurpose   = response.NewError(400, "purpose must not be empty")
	ErrEmptyContent   = response.NewError(400, "note content must not be empty")
)

// Payment is one discrete expense event. Date and Time stay strings end to
// end; together they give same-day payments a total order.
type Payment struct {
	ID        string          `json:"id"`
	Date      string          `json:"date"`
	Time      string          `json:"time"`
	Amount    decimal.Decimal `json:"amount"`
	Purpose   string          `json:"purpose"`
	Notes     string          `json:"notes"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (p *Payment) Validate() error {
	if _, err := time.Parse(DateLayout, p.Date); err != nil {
		return ErrInvalidDate
	}

	if _, err := time.Parse(TimeLayout, p.Time); err != nil {
		return ErrInvalidTime
	}

	if p.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	if strings.TrimSpace(p.Purpose) == "" {
		return ErrEmptyPurpose
	}

	return nil
}

// DailyEarning holds at most one record per calendar date; writes for an
// existing date replace the stored amount and notes.
type DailyEarning struct {
	Date           string          `json:"date"`
	EarningsAmount decimal.Decimal `json:"earnings_amount"`
	Notes          string          `json:"notes"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (e *DailyEarning) Validate() error {
	if _, err := time.Parse(DateLayout, e.Date); err != nil {
		return ErrInvalidDate
	}

	if e.EarningsAmount.IsNegative() {
		return ErrNegativeAmount
	}

	return nil
}

// Note is a dated free-text annotation, append-only.
type Note struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (n *Note) Validate() error {
	if _, err := time.Parse(DateLayout, n.Date); err != nil {
		return ErrInvalidDate
	}

	if strings.TrimSpace(n.Content) == "" {
		return ErrEmptyContent
	}

	return nil
}
