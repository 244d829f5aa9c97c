package ledgerRepository

import (
	"context"

	"github.com/Finitiix/friend-flows-tracker/internal/entity"
	contextPkg "github.com/Finitiix/friend-flows-tracker/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func (r *noteRepository) Insert(ctx context.Context, note entity.Note) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":         note.ID,
		"date":       note.Date,
		"content":    note.Content,
		"created_at": note.CreatedAt,
	}

	query, args, err := sqlx.Named(queryInsertNote, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for note insert")
		return err
	}

	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when inserting note")
		return err
	}

	return nil
}
