package ledgerService

import (
	"time"

	"github.com/Finitiix/friend-flows-tracker/internal/api/ledger"
	"github.com/Finitiix/friend-flows-tracker/internal/entity"
	contextPkg "github.com/Finitiix/friend-flows-tracker/pkg/context"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *ledgerService) UpsertDailyEarning(ctx context.Context, req ledger.UpsertEarningRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.ledgerRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	earning := entity.DailyEarning{
		Date:           req.Date,
		EarningsAmount: req.EarningsAmount,
		Notes:          req.Notes,
		UpdatedAt:      time.Now(),
	}

	if err := earning.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid daily earnings data")
		return err
	}

	if err := repo.Earnings.Upsert(ctx, earning); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"date":       req.Date,
			"error":      err.Error(),
		}).Error("Failed to upsert daily earnings")
		return ledger.ErrUpsertEarning
	}

	return nil
}

func (s *ledgerService) GetDailyEarnings(ctx context.Context) ([]entity.DailyEarning, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.ledgerRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	earnings, err := repo.Earnings.ListAll(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list daily earnings")
		return nil, ledger.ErrQueryLedger
	}

	return earnings, nil
}
