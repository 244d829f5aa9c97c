package ledgerService

import (
	"github.com/Finitiix/friend-flows-tracker/internal/api/ledger"
	ledgerRepository "github.com/Finitiix/friend-flows-tracker/internal/api/ledger/repository"
	"github.com/Finitiix/friend-flows-tracker/internal/entity"
	"github.com/Finitiix/friend-flows-tracker/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ILedgerService interface {
	CreatePayment(ctx context.Context, req ledger.CreatePaymentRequest) (entity.Payment, error)
	UpdatePayment(ctx context.Context, id string, req ledger.UpdatePaymentRequest) error
	DeletePayment(ctx context.Context, id string) error
	GetHistory(ctx context.Context, filter ledger.HistoryFilter, key ledger.SortKey) ([]ledger.HistoryRow, ledger.Totals, error)
	ExportHistory(ctx context.Context, filter ledger.HistoryFilter, key ledger.SortKey) ([]byte, error)
	UpsertDailyEarning(ctx context.Context, req ledger.UpsertEarningRequest) error
	GetDailyEarnings(ctx context.Context) ([]entity.DailyEarning, error)
	CreateNote(ctx context.Context, req ledger.CreateNoteRequest) error
	GetDashboard(ctx context.Context, today string) (ledger.DashboardResponse, error)
}

type ledgerService struct {
	log              *logrus.Logger
	ledgerRepository ledgerRepository.Repository
	utils            utils.IUtils
}

func NewLedgerService(log *logrus.Logger, lr ledgerRepository.Repository, utils utils.IUtils) ILedgerService {
	return &ledgerService{
		log:              log,
		ledgerRepository: lr,
		utils:            utils,
	}
}
