package ledger

import (
	"github.com/Finitiix/friend-flows-tracker/internal/entity"
	"github.com/shopspring/decimal"
)

// Totals are period-level balance figures. Sums are exact; rounding for
// display is left to the caller.
type Totals struct {
	TotalPayments decimal.Decimal
	TotalEarnings decimal.Decimal
	NetBalance    decimal.Decimal
}

// PeriodTotals folds every payment and earnings record passed in.
func PeriodTotals(payments []entity.Payment, earnings []entity.DailyEarning) Totals {
	totalPayments := decimal.Zero
	for _, p := range payments {
		totalPayments = totalPayments.Add(p.Amount)
	}

	totalEarnings := decimal.Zero
	for _, e := range earnings {
		totalEarnings = totalEarnings.Add(e.EarningsAmount)
	}

	return Totals{
		TotalPayments: totalPayments,
		TotalEarnings: totalEarnings,
		NetBalance:    totalEarnings.Sub(totalPayments),
	}
}

// DailyBalance is the earnings recorded for date minus that date's
// payments. A date without an earnings record counts as zero.
func DailyBalance(date string, payments []entity.Payment, earnings []entity.DailyEarning) decimal.Decimal {
	dayEarnings := decimal.Zero
	for _, e := range earnings {
		if e.Date == date {
			dayEarnings = e.EarningsAmount
			break
		}
	}

	for _, p := range payments {
		if p.Date == date {
			dayEarnings = dayEarnings.Sub(p.Amount)
		}
	}

	return dayEarnings
}
