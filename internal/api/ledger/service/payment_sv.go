package ledgerService

import (
	"time"

	"github.com/Finitiix/friend-flows-tracker/internal/api/ledger"
	"github.com/Finitiix/friend-flows-tracker/internal/entity"
	contextPkg "github.com/Finitiix/friend-flows-tracker/pkg/context"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *ledgerService) CreatePayment(ctx context.Context, req ledger.CreatePaymentRequest) (entity.Payment, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.ledgerRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Payment{}, err
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Payment{}, err
	}

	now := time.Now()
	payment := entity.Payment{
		ID:        id,
		Date:      req.Date,
		Time:      req.Time,
		Amount:    req.Amount,
		Purpose:   req.Purpose,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := payment.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid payment data")
		return entity.Payment{}, err
	}

	if err := repo.Payments.Insert(ctx, payment); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create payment")
		return entity.Payment{}, ledger.ErrCreatePayment
	}

	return payment, nil
}

func (s *ledgerService) UpdatePayment(ctx context.Context, id string, req ledger.UpdatePaymentRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.ledgerRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	// Full replace of the mutable fields; created_at stays untouched.
	payment := entity.Payment{
		ID:        id,
		Date:      req.Date,
		Time:      req.Time,
		Amount:    req.Amount,
		Purpose:   req.Purpose,
		Notes:     req.Notes,
		UpdatedAt: time.Now(),
	}

	if err := payment.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid payment data")
		return err
	}

	if err := repo.Payments.Update(ctx, payment); err != nil {
		if err == ledger.ErrPaymentNotFound {
			return err
		}

		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to update payment")
		return ledger.ErrUpdatePayment
	}

	return nil
}

func (s *ledgerService) DeletePayment(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.ledgerRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	if err := repo.Payments.Delete(ctx, id); err != nil {
		if err == ledger.ErrPaymentNotFound {
			return err
		}

		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete payment")
		return ledger.ErrDeletePayment
	}

	return nil
}
