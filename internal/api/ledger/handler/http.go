package ledgerHandler

import (
	ledgerService "github.com/Finitiix/friend-flows-tracker/internal/api/ledger/service"
	"github.com/Finitiix/friend-flows-tracker/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type LedgerHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	ledgerService ledgerService.ILedgerService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ledgerService ledgerService.ILedgerService,
) *LedgerHandler {
	return &LedgerHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		ledgerService: ledgerService,
	}
}

func (h *LedgerHandler) Start(srv fiber.Router) {
	ledger := srv.Group("/ledger")

	ledger.Post("/payments", h.middleware.NewRateLimiter, h.CreatePayment)
	ledger.Put("/payments/:id", h.middleware.NewRateLimiter, h.UpdatePayment)
	ledger.Delete("/payments/:id", h.middleware.NewRateLimiter, h.DeletePayment)
	ledger.Get("/history", h.GetHistory)
	ledger.Get("/history/export", h.ExportHistory)
	ledger.Put("/earnings", h.middleware.NewRateLimiter, h.UpsertDailyEarning)
	ledger.Get("/earnings", h.GetDailyEarnings)
	ledger.Post("/notes", h.middleware.NewRateLimiter, h.CreateNote)
	ledger.Get("/dashboard", h.GetDashboard)
}
