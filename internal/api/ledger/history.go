package ledger

import (
	"sort"
	"strings"

	"github.com/Finitiix/friend-flows-tracker/internal/entity"
	"github.com/shopspring/decimal"
)

type SortKey string

const (
	SortDateDesc   SortKey = "date-desc"
	SortDateAsc    SortKey = "date-asc"
	SortAmountDesc SortKey = "amount-desc"
	SortAmountAsc  SortKey = "amount-asc"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortDateDesc, SortDateAsc, SortAmountDesc, SortAmountAsc:
		return true
	default:
		return false
	}
}

// HistoryFilter is a conjunction of independently optional bounds. Zero
// values impose no constraint.
type HistoryFilter struct {
	DateFrom  string
	DateTo    string
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	Purpose   string
}

func (f HistoryFilter) IsZero() bool {
	return f.DateFrom == "" && f.DateTo == "" &&
		f.MinAmount == nil && f.MaxAmount == nil && f.Purpose == ""
}

// Matches folds only the supplied bounds into an AND.
func (f HistoryFilter) Matches(p entity.Payment) bool {
	if f.DateFrom != "" && p.Date < f.DateFrom {
		return false
	}
	if f.DateTo != "" && p.Date > f.DateTo {
		return false
	}
	if f.MinAmount != nil && p.Amount.LessThan(*f.MinAmount) {
		return false
	}
	if f.MaxAmount != nil && p.Amount.GreaterThan(*f.MaxAmount) {
		return false
	}
	if f.Purpose != "" && !strings.Contains(strings.ToLower(p.Purpose), strings.ToLower(f.Purpose)) {
		return false
	}
	return true
}

// HistoryRow pairs a payment with the earnings recorded for its date.
type HistoryRow struct {
	Payment       entity.Payment
	DailyEarnings decimal.Decimal
}

// FilterPayments keeps the payments matching every supplied bound,
// preserving input order.
func FilterPayments(payments []entity.Payment, f HistoryFilter) []entity.Payment {
	selected := make([]entity.Payment, 0, len(payments))
	for _, p := range payments {
		if f.Matches(p) {
			selected = append(selected, p)
		}
	}
	return selected
}

// SortPayments orders payments by the sort key. Date keys break ties by
// time in the same direction; amount keys keep equal amounts in their
// original relative order.
func SortPayments(payments []entity.Payment, key SortKey) []entity.Payment {
	ordered := make([]entity.Payment, len(payments))
	copy(ordered, payments)

	switch key {
	case SortDateAsc:
		sort.SliceStable(ordered, func(i, j int) bool {
			if ordered[i].Date != ordered[j].Date {
				return ordered[i].Date < ordered[j].Date
			}
			return ordered[i].Time < ordered[j].Time
		})
	case SortDateDesc:
		sort.SliceStable(ordered, func(i, j int) bool {
			if ordered[i].Date != ordered[j].Date {
				return ordered[i].Date > ordered[j].Date
			}
			return ordered[i].Time > ordered[j].Time
		})
	case SortAmountAsc:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Amount.LessThan(ordered[j].Amount)
		})
	case SortAmountDesc:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Amount.GreaterThan(ordered[j].Amount)
		})
	}

	return ordered
}

// JoinEarnings resolves the daily earnings value for each payment by exact
// date match, defaulting to zero when no record exists. Row order follows
// the payment order.
func JoinEarnings(payments []entity.Payment, earnings []entity.DailyEarning) []HistoryRow {
	byDate := make(map[string]decimal.Decimal, len(earnings))
	for _, e := range earnings {
		byDate[e.Date] = e.EarningsAmount
	}

	rows := make([]HistoryRow, len(payments))
	for i, p := range payments {
		rows[i] = HistoryRow{Payment: p, DailyEarnings: byDate[p.Date]}
	}
	return rows
}

// BuildHistory runs the full in-memory pipeline: filter, sort, join. The
// repository's store-side query must stay observably equivalent to this.
func BuildHistory(payments []entity.Payment, earnings []entity.DailyEarning, f HistoryFilter, key SortKey) []HistoryRow {
	return JoinEarnings(SortPayments(FilterPayments(payments, f), key), earnings)
}
