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

func (h *LedgerHandler) CreateNote(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create note request")

	var req ledger.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.ledgerService.CreateNote(c, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_note")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, fiber.Map{
			"message": "Note created successfully",
		})
	}
}
