package ledgerHandler

import (
	"time"

	"github.com/Finitiix/friend-flows-tracker/internal/entity"
	contextPkg "github.com/Finitiix/friend-flows-tracker/pkg/context"
	"github.com/Finitiix/friend-flows-tracker/pkg/handlerUtil"
	"github.com/Finitiix/friend-flows-tracker/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *LedgerHandler) GetDashboard(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get dashboard request")

	today := ctx.Query("date", time.Now().Format(entity.DateLayout))
	if _, err := time.Parse(entity.DateLayout, today); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	dashboard, err := h.ledgerService.GetDashboard(c, today)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_dashboard")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, dashboard)
	}
}
