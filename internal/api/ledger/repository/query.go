package ledgerRepository

import (
	"strings"

	"github.com/Finitiix/friend-flows-tracker/internal/api/ledger"
)

const (
	queryInsertPayment = `
		INSERT INTO payments (
			id,
			date,
			time,
			amount,
			purpose,
			notes,
			created_at,
			updated_at
		) VALUES (
			:id,
			:date,
			:time,
			:amount,
			:purpose,
			:notes,
			:created_at,
			:updated_at
		)
	`

	queryUpdatePayment = `
		UPDATE payments
		SET
			date = :date,
			time = :time,
			amount = :amount,
			purpose = :purpose,
			notes = :notes,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeletePayment = `
		DELETE FROM payments
		WHERE id = :id
	`

	querySelectPayments = `
		SELECT
			id,
			date,
			time,
			amount,
			purpose,
			notes,
			created_at,
			updated_at
		FROM payments
	`

	queryUpsertEarning = `
		INSERT INTO daily_earnings (
			date,
			earnings_amount,
			notes,
			updated_at
		) VALUES (
			:date,
			:earnings_amount,
			:notes,
			:updated_at
		)
		ON CONFLICT (date) DO UPDATE SET
			earnings_amount = EXCLUDED.earnings_amount,
			notes = EXCLUDED.notes,
			updated_at = EXCLUDED.updated_at
	`

	queryGetEarningByDate = `
		SELECT
			date,
			earnings_amount,
			notes,
			updated_at
		FROM daily_earnings
		WHERE date = :date
	`

	queryListEarnings = `
		SELECT
			date,
			earnings_amount,
			notes,
			updated_at
		FROM daily_earnings
		ORDER BY date DESC
	`

	queryInsertNote = `
		INSERT INTO notes (
			id,
			date,
			content,
			created_at
		) VALUES (
			:id,
			:date,
			:content,
			:created_at
		)
	`
)

// buildPaymentListQuery folds only the supplied filter bounds into the
// WHERE clause, always through named parameters. The result must stay
// observably equivalent to ledger.BuildHistory's in-memory pipeline.
func buildPaymentListQuery(filter ledger.HistoryFilter, key ledger.SortKey) (string, map[string]interface{}) {
	query := querySelectPayments
	args := map[string]interface{}{}

	var conds []string
	if filter.DateFrom != "" {
		conds = append(conds, "date >= :date_from")
		args["date_from"] = filter.DateFrom
	}
	if filter.DateTo != "" {
		conds = append(conds, "date <= :date_to")
		args["date_to"] = filter.DateTo
	}
	if filter.MinAmount != nil {
		conds = append(conds, "amount >= :min_amount")
		args["min_amount"] = *filter.MinAmount
	}
	if filter.MaxAmount != nil {
		conds = append(conds, "amount <= :max_amount")
		args["max_amount"] = *filter.MaxAmount
	}
	if filter.Purpose != "" {
		conds = append(conds, "purpose ILIKE :purpose")
		args["purpose"] = "%" + filter.Purpose + "%"
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	// ULID ids sort by creation time, so the id tiebreak keeps equal
	// amounts in insertion order across repeated queries.
	switch key {
	case ledger.SortDateAsc:
		query += " ORDER BY date ASC, time ASC"
	case ledger.SortAmountAsc:
		query += " ORDER BY amount ASC, id ASC"
	case ledger.SortAmountDesc:
		query += " ORDER BY amount DESC, id ASC"
	default:
		query += " ORDER BY date DESC, time DESC"
	}

	return query, args
}
