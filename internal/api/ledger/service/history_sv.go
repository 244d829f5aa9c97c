package ledgerService

import (
	"bytes"

	"github.com/Finitiix/friend-flows-tracker/internal/api/ledger"
	"github.com/Finitiix/friend-flows-tracker/internal/entity"
	contextPkg "github.com/Finitiix/friend-flows-tracker/pkg/context"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// GetHistory pushes the filter and sort down to the store, then joins each
// payment with its date's earnings. Totals follow the history screen:
// payments summed over the filtered selection, earnings over all records.
func (s *ledgerService) GetHistory(ctx context.Context, filter ledger.HistoryFilter, key ledger.SortKey) ([]ledger.HistoryRow, ledger.Totals, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.ledgerRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, ledger.Totals{}, err
	}

	if !key.Valid() {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"sort_key":   string(key),
		}).Warn("Invalid sort key")
		return nil, ledger.Totals{}, ledger.ErrInvalidSortKey
	}

	payments, err := repo.Payments.List(ctx, filter, key)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list payments")
		return nil, ledger.Totals{}, ledger.ErrQueryLedger
	}

	earnings, err := repo.Earnings.ListAll(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list daily earnings")
		return nil, ledger.Totals{}, ledger.ErrQueryLedger
	}

	rows := ledger.JoinEarnings(payments, earnings)
	totals := ledger.PeriodTotals(payments, earnings)

	return rows, totals, nil
}

func (s *ledgerService) ExportHistory(ctx context.Context, filter ledger.HistoryFilter, key ledger.SortKey) ([]byte, error) {
	requestID := contextPkg.GetRequestID(ctx)

	rows, _, err := s.GetHistory(ctx, filter, key)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := ledger.WriteCSV(&buf, rows); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to write CSV export")
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"rows":       len(rows),
	}).Info("History exported")

	return buf.Bytes(), nil
}

// GetDashboard recomputes every figure from a fresh snapshot; nothing is
// cached between calls.
func (s *ledgerService) GetDashboard(ctx context.Context, today string) (ledger.DashboardResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.ledgerRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return ledger.DashboardResponse{}, err
	}

	payments, err := repo.Payments.List(ctx, ledger.HistoryFilter{}, ledger.SortDateDesc)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list payments")
		return ledger.DashboardResponse{}, ledger.ErrQueryLedger
	}

	earning, found, err := repo.Earnings.GetByDate(ctx, today)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"date":       today,
			"error":      err.Error(),
		}).Error("Failed to get daily earnings")
		return ledger.DashboardResponse{}, ledger.ErrQueryLedger
	}

	todayEarnings := decimal.Zero
	var todayRecords []entity.DailyEarning
	if found {
		todayEarnings = earning.EarningsAmount
		todayRecords = []entity.DailyEarning{earning}
	}

	totals := ledger.PeriodTotals(payments, nil)
	remaining := ledger.DailyBalance(today, payments, todayRecords)

	return ledger.DashboardResponse{
		TodayEarnings:    todayEarnings,
		TodayPayments:    todayEarnings.Sub(remaining),
		RemainingBalance: remaining,
		TotalPayments:    totals.TotalPayments,
	}, nil
}
