package ledgerRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Finitiix/friend-flows-tracker/internal/entity"
	contextPkg "github.com/Finitiix/friend-flows-tracker/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type DailyEarningDB struct {
	Date           time.Time       `db:"date"`
	EarningsAmount decimal.Decimal `db:"earnings_amount"`
	Notes          sql.NullString  `db:"notes"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

func makeDailyEarning(e DailyEarningDB) entity.DailyEarning {
	return entity.DailyEarning{
		Date:           e.Date.Format(entity.DateLayout),
		EarningsAmount: e.EarningsAmount,
		Notes:          e.Notes.String,
		UpdatedAt:      e.UpdatedAt,
	}
}

// Upsert relies on the unique constraint on date: a second write for the
// same date replaces the stored amount and notes instead of duplicating.
func (r *earningRepository) Upsert(ctx context.Context, earning entity.DailyEarning) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"date":            earning.Date,
		"earnings_amount": earning.EarningsAmount,
		"notes":           earning.Notes,
		"updated_at":      earning.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryUpsertEarning, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for earnings upsert")
		return err
	}

	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when upserting daily earnings")
		return err
	}

	return nil
}

// GetByDate reports absence through the bool instead of an error; a
// missing record is a valid zero-value case for the aggregator.
func (r *earningRepository) GetByDate(ctx context.Context, date string) (entity.DailyEarning, bool, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var earning DailyEarningDB

	argsKV := map[string]interface{}{
		"date": date,
	}

	query, args, err := sqlx.Named(queryGetEarningByDate, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByDate named query preparation err")
		return entity.DailyEarning{}, false, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&earning); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.DailyEarning{}, false, nil
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByDate execution err")
		return entity.DailyEarning{}, false, err
	}

	return makeDailyEarning(earning), true, nil
}

func (r *earningRepository) ListAll(ctx context.Context) ([]entity.DailyEarning, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var earningsList []DailyEarningDB

	query := r.q.Rebind(queryListEarnings)

	if err := r.q.SelectContext(ctx, &earningsList, query); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Earnings list execution err")
		return nil, err
	}

	earnings := make([]entity.DailyEarning, len(earningsList))
	for i, e := range earningsList {
		earnings[i] = makeDailyEarning(e)
	}

	return earnings, nil
}
