package ledgerRepository

import (
	"github.com/Finitiix/friend-flows-tracker/internal/api/ledger"
	"github.com/Finitiix/friend-flows-tracker/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Payments: &paymentRepository{q: sqlExecutor, log: r.log},
		Earnings: &earningRepository{q: sqlExecutor, log: r.log},
		Notes:    &noteRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Payments interface {
		Insert(ctx context.Context, payment entity.Payment) error
		Update(ctx context.Context, payment entity.Payment) error
		Delete(ctx context.Context, id string) error
		List(ctx context.Context, filter ledger.HistoryFilter, key ledger.SortKey) ([]entity.Payment, error)
	}

	Earnings interface {
		Upsert(ctx context.Context, earning entity.DailyEarning) error
		GetByDate(ctx context.Context, date string) (entity.DailyEarning, bool, error)
		ListAll(ctx context.Context) ([]entity.DailyEarning, error)
	}

	Notes interface {
		Insert(ctx context.Context, note entity.Note) error
	}

	Commit   func() error
	Rollback func() error
}

type paymentRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type earningRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type noteRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
