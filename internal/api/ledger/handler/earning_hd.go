package ledgerHandler

import (
	"time"

	"github.com/Finitiix/friend-flows-tracker/internal/api/ledger"
	contextPkg "github.com/Finitiix/friend-flows-tracker/pkg/context"
	"github.com/Finitiix/friend-flows-tracker/pkg/handlerUtil"
	"github.com/Finitiix/friend-flows-tracker/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *LedgerHandler) UpsertDailyEarning(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing upsert daily earnings request")

	var req ledger.UpsertEarningRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.ledgerService.UpsertDailyEarning(c, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "upsert_daily_earning")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Daily earnings saved successfully",
		})
	}
}

func (h *LedgerHandler) GetDailyEarnings(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get daily earnings request")

	earnings, err := h.ledgerService.GetDailyEarnings(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_daily_earnings")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, earnings)
	}
}
