package ledgerRepository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Finitiix/friend-flows-tracker/internal/api/ledger"
	"github.com/Finitiix/friend-flows-tracker/internal/entity"
	contextPkg "github.com/Finitiix/friend-flows-tracker/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type PaymentDB struct {
	ID        sql.NullString  `db:"id"`
	Date      time.Time       `db:"date"`
	Time      sql.NullString  `db:"time"`
	Amount    decimal.Decimal `db:"amount"`
	Purpose   sql.NullString  `db:"purpose"`
	Notes     sql.NullString  `db:"notes"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

func makePayment(p PaymentDB) entity.Payment {
	return entity.Payment{
		ID:        p.ID.String,
		Date:      p.Date.Format(entity.DateLayout),
		Time:      p.Time.String,
		Amount:    p.Amount,
		Purpose:   p.Purpose.String,
		Notes:     p.Notes.String,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (r *paymentRepository) Insert(ctx context.Context, payment entity.Payment) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":         payment.ID,
		"date":       payment.Date,
		"time":       payment.Time,
		"amount":     payment.Amount,
		"purpose":    payment.Purpose,
		"notes":      payment.Notes,
		"created_at": payment.CreatedAt,
		"updated_at": payment.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryInsertPayment, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for payment insert")
		return err
	}

	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when inserting payment")
		return err
	}

	return nil
}

func (r *paymentRepository) Update(ctx context.Context, payment entity.Payment) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":         payment.ID,
		"date":       payment.Date,
		"time":       payment.Time,
		"amount":     payment.Amount,
		"purpose":    payment.Purpose,
		"notes":      payment.Notes,
		"updated_at": payment.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryUpdatePayment, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for payment update")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating payment")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Payment update rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         payment.ID,
		}).Warn("Payment update target not found")
		return ledger.ErrPaymentNotFound
	}

	return nil
}

func (r *paymentRepository) Delete(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeletePayment, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for payment delete")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting payment")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Payment delete rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("Payment delete target not found")
		return ledger.ErrPaymentNotFound
	}

	return nil
}

func (r *paymentRepository) List(ctx context.Context, filter ledger.HistoryFilter, key ledger.SortKey) ([]entity.Payment, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var paymentsList []PaymentDB

	namedQuery, argsKV := buildPaymentListQuery(filter, key)

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Payment list named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &paymentsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Payment list execution err")
		return nil, err
	}

	payments := make([]entity.Payment, len(paymentsList))
	for i, p := range paymentsList {
		payments[i] = makePayment(p)
	}

	return payments, nil
}
