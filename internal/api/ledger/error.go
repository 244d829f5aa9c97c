package ledger

import "github.com/Finitiix/friend-flows-tracker/pkg/response"

var (
	ErrPaymentNotFound = response.NewError(404, "payment not found")
	ErrInvalidSortKey  = response.NewError(400, "invalid sort key")
	ErrInvalidBound    = response.NewError(400, "invalid numeric filter bound")
	ErrCreatePayment   = response.NewError(500, "failed to create payment")
	ErrUpdatePayment   = response.NewError(500, "failed to update payment")
	ErrDeletePayment   = response.NewError(500, "failed to delete payment")
	ErrUpsertEarning   = response.NewError(500, "failed to save daily earnings")
	ErrCreateNote      = response.NewError(500, "failed to create note")
	ErrQueryLedger     = response.NewError(500, "failed to fetch records")
)
