package ledger

import (
	"github.com/Finitiix/friend-flows-tracker/internal/entity"
	"github.com/shopspring/decimal"
)

type CreatePaymentRequest struct {
	Date    string          `json:"date" validate:"required,isodate"`
	Time    string          `json:"time" validate:"required,clocktime"`
	Amount  decimal.Decimal `json:"amount" validate:"required"`
	Purpose string          `json:"purpose" validate:"required"`
	Notes   string          `json:"notes"`
}

type UpdatePaymentRequest struct {
	Date    string          `json:"date" validate:"required,isodate"`
	Time    string          `json:"time" validate:"required,clocktime"`
	Amount  decimal.Decimal `json:"amount" validate:"required"`
	Purpose string          `json:"purpose" validate:"required"`
	Notes   string          `json:"notes"`
}

type UpsertEarningRequest struct {
	Date           string          `json:"date" validate:"required,isodate"`
	EarningsAmount decimal.Decimal `json:"earnings_amount" validate:"required"`
	Notes          string          `json:"notes"`
}

type CreateNoteRequest struct {
	Date    string `json:"date" validate:"required,isodate"`
	Content string `json:"content" validate:"required"`
}

type PaymentResponse struct {
	ID      string          `json:"id"`
	Date    string          `json:"date"`
	Time    string          `json:"time"`
	Amount  decimal.Decimal `json:"amount"`
	Purpose string          `json:"purpose"`
	Notes   string          `json:"notes"`
}

type HistoryRowResponse struct {
	Payment       PaymentResponse `json:"payment"`
	DailyEarnings decimal.Decimal `json:"daily_earnings"`
}

type HistoryResponse struct {
	Rows          []HistoryRowResponse `json:"rows"`
	TotalPayments decimal.Decimal      `json:"total_payments"`
	TotalEarnings decimal.Decimal      `json:"total_earnings"`
	NetBalance    decimal.Decimal      `json:"net_balance"`
}

type DashboardResponse struct {
	TodayEarnings    decimal.Decimal `json:"today_earnings"`
	TodayPayments    decimal.Decimal `json:"today_payments"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	TotalPayments    decimal.Decimal `json:"total_payments"`
}

func NewPaymentResponse(p entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:      p.ID,
		Date:    p.Date,
		Time:    p.Time,
		Amount:  p.Amount,
		Purpose: p.Purpose,
		Notes:   p.Notes,
	}
}
