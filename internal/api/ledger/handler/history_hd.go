package ledgerHandler

import (
	"fmt"
	"time"

	"github.com/Finitiix/friend-flows-tracker/internal/api/ledger"
	"github.com/Finitiix/friend-flows-tracker/internal/entity"
	contextPkg "github.com/Finitiix/friend-flows-tracker/pkg/context"
	"github.com/Finitiix/friend-flows-tracker/pkg/handlerUtil"
	"github.com/Finitiix/friend-flows-tracker/pkg/log"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/net/context"
)

// parseHistoryQuery reads the filter and sort query params. Every bound is
// optional; absent params impose no constraint.
func parseHistoryQuery(ctx *fiber.Ctx) (ledger.HistoryFilter, ledger.SortKey, error) {
	filter := ledger.HistoryFilter{
		DateFrom: ctx.Query("date_from"),
		DateTo:   ctx.Query("date_to"),
		Purpose:  ctx.Query("purpose"),
	}

	if raw := ctx.Query("min_amount"); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return ledger.HistoryFilter{}, "", ledger.ErrInvalidBound
		}
		filter.MinAmount = &amount
	}

	if raw := ctx.Query("max_amount"); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return ledger.HistoryFilter{}, "", ledger.ErrInvalidBound
		}
		filter.MaxAmount = &amount
	}

	key := ledger.SortKey(ctx.Query("sort", string(ledger.SortDateDesc)))
	if !key.Valid() {
		return ledger.HistoryFilter{}, "", ledger.ErrInvalidSortKey
	}

	return filter, key, nil
}

func (h *LedgerHandler) GetHistory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get history request")

	filter, key, err := parseHistoryQuery(ctx)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_history_query")
	}

	rows, totals, err := h.ledgerService.GetHistory(c, filter, key)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_history")
	}

	rowResponses := make([]ledger.HistoryRowResponse, len(rows))
	for i, row := range rows {
		rowResponses[i] = ledger.HistoryRowResponse{
			Payment:       ledger.NewPaymentResponse(row.Payment),
			DailyEarnings: row.DailyEarnings,
		}
	}

	response := ledger.HistoryResponse{
		Rows:          rowResponses,
		TotalPayments: totals.TotalPayments,
		TotalEarnings: totals.TotalEarnings,
		NetBalance:    totals.NetBalance,
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

func (h *LedgerHandler) ExportHistory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing export history request")

	filter, key, err := parseHistoryQuery(ctx)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_history_query")
	}

	data, err := h.ledgerService.ExportHistory(c, filter, key)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "export_history")
	}

	filename := fmt.Sprintf("finance-records-%s.csv", time.Now().Format(entity.DateLayout))

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleFileDownload(ctx, filename, "text/csv", data)
	}
}
