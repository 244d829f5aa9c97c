package ledgerService

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/Finitiix/friend-flows-tracker/internal/api/ledger"
	ledgerRepository "github.com/Finitiix/friend-flows-tracker/internal/api/ledger/repository"
	"github.com/Finitiix/friend-flows-tracker/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type stubPayments struct {
	payments   []entity.Payment
	inserted   []entity.Payment
	updateErr  error
	lastFilter ledger.HistoryFilter
	lastKey    ledger.SortKey
}

func (s *stubPayments) Insert(ctx context.Context, payment entity.Payment) error {
	s.inserted = append(s.inserted, payment)
	return nil
}

func (s *stubPayments) Update(ctx context.Context, payment entity.Payment) error {
	return s.updateErr
}

func (s *stubPayments) Delete(ctx context.Context, id string) error {
	return nil
}

func (s *stubPayments) List(ctx context.Context, filter ledger.HistoryFilter, key ledger.SortKey) ([]entity.Payment, error) {
	s.lastFilter = filter
	s.lastKey = key
	return ledger.SortPayments(ledger.FilterPayments(s.payments, filter), key), nil
}

type stubEarnings struct {
	earnings []entity.DailyEarning
	upserted []entity.DailyEarning
}

func (s *stubEarnings) Upsert(ctx context.Context, earning entity.DailyEarning) error {
	s.upserted = append(s.upserted, earning)
	return nil
}

func (s *stubEarnings) GetByDate(ctx context.Context, date string) (entity.DailyEarning, bool, error) {
	for _, e := range s.earnings {
		if e.Date == date {
			return e, true, nil
		}
	}
	return entity.DailyEarning{}, false, nil
}

func (s *stubEarnings) ListAll(ctx context.Context) ([]entity.DailyEarning, error) {
	return s.earnings, nil
}

type stubNotes struct {
	inserted []entity.Note
}

func (s *stubNotes) Insert(ctx context.Context, note entity.Note) error {
	s.inserted = append(s.inserted, note)
	return nil
}

type stubRepository struct {
	payments *stubPayments
	earnings *stubEarnings
	notes    *stubNotes
}

func (s *stubRepository) NewClient(tx bool) (ledgerRepository.Client, error) {
	return ledgerRepository.Client{
		Payments: s.payments,
		Earnings: s.earnings,
		Notes:    s.notes,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type stubUtils struct{}

func (stubUtils) NewULIDFromTimestamp(t time.Time) (string, error) {
	return "01STUBULID", nil
}

func newTestService(repo *stubRepository) *ledgerService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return &ledgerService{
		log:              logger,
		ledgerRepository: repo,
		utils:            stubUtils{},
	}
}

func mustDec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestCreatePaymentRejectsInvalidDate(t *testing.T) {
	repo := &stubRepository{payments: &stubPayments{}, earnings: &stubEarnings{}, notes: &stubNotes{}}
	svc := newTestService(repo)

	_, err := svc.CreatePayment(context.Background(), ledger.CreatePaymentRequest{
		Date: "03/01/2024", Time: "09:00", Amount: mustDec(t, "100"), Purpose: "supplies",
	})

	if !errors.Is(err, entity.ErrInvalidDate) {
		t.Fatalf("err = %v, want ErrInvalidDate", err)
	}
	if len(repo.payments.inserted) != 0 {
		t.Errorf("invalid payment reached the store")
	}
}

func TestCreatePaymentAssignsIDAndTimestamps(t *testing.T) {
	repo := &stubRepository{payments: &stubPayments{}, earnings: &stubEarnings{}, notes: &stubNotes{}}
	svc := newTestService(repo)

	payment, err := svc.CreatePayment(context.Background(), ledger.CreatePaymentRequest{
		Date: "2024-03-01", Time: "09:00", Amount: mustDec(t, "100"), Purpose: "supplies",
	})
	if err != nil {
		t.Fatalf("CreatePayment: %v", err)
	}

	if payment.ID != "01STUBULID" {
		t.Errorf("ID = %q", payment.ID)
	}
	if payment.CreatedAt.IsZero() || payment.UpdatedAt.IsZero() {
		t.Errorf("timestamps not set: %+v", payment)
	}
	if len(repo.payments.inserted) != 1 {
		t.Fatalf("inserted %d payments, want 1", len(repo.payments.inserted))
	}
}

func TestUpdatePaymentPassesThroughNotFound(t *testing.T) {
	repo := &stubRepository{
		payments: &stubPayments{updateErr: ledger.ErrPaymentNotFound},
		earnings: &stubEarnings{},
		notes:    &stubNotes{},
	}
	svc := newTestService(repo)

	err := svc.UpdatePayment(context.Background(), "missing", ledger.UpdatePaymentRequest{
		Date: "2024-03-01", Time: "09:00", Amount: mustDec(t, "100"), Purpose: "supplies",
	})

	if !errors.Is(err, ledger.ErrPaymentNotFound) {
		t.Fatalf("err = %v, want ErrPaymentNotFound", err)
	}
}

func TestGetHistoryRejectsInvalidSortKey(t *testing.T) {
	repo := &stubRepository{payments: &stubPayments{}, earnings: &stubEarnings{}, notes: &stubNotes{}}
	svc := newTestService(repo)

	_, _, err := svc.GetHistory(context.Background(), ledger.HistoryFilter{}, "newest-first")

	if !errors.Is(err, ledger.ErrInvalidSortKey) {
		t.Fatalf("err = %v, want ErrInvalidSortKey", err)
	}
}

func TestGetHistoryJoinsAndTotals(t *testing.T) {
	repo := &stubRepository{
		payments: &stubPayments{payments: []entity.Payment{
			{ID: "p1", Date: "2024-03-01", Time: "09:00", Amount: mustDec(t, "100"), Purpose: "supplies"},
			{ID: "p2", Date: "2024-03-02", Time: "14:30", Amount: mustDec(t, "150"), Purpose: "rent"},
		}},
		earnings: &stubEarnings{earnings: []entity.DailyEarning{
			{Date: "2024-03-01", EarningsAmount: mustDec(t, "300")},
		}},
		notes: &stubNotes{},
	}
	svc := newTestService(repo)

	rows, totals, err := svc.GetHistory(context.Background(), ledger.HistoryFilter{}, ledger.SortDateAsc)
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if !rows[0].DailyEarnings.Equal(mustDec(t, "300")) {
		t.Errorf("p1 earnings = %s, want 300", rows[0].DailyEarnings)
	}
	if !rows[1].DailyEarnings.IsZero() {
		t.Errorf("p2 earnings = %s, want 0", rows[1].DailyEarnings)
	}
	if !totals.TotalPayments.Equal(mustDec(t, "250")) {
		t.Errorf("TotalPayments = %s, want 250", totals.TotalPayments)
	}
	if !totals.NetBalance.Equal(mustDec(t, "50")) {
		t.Errorf("NetBalance = %s, want 50", totals.NetBalance)
	}
}

func TestGetDashboard(t *testing.T) {
	repo := &stubRepository{
		payments: &stubPayments{payments: []entity.Payment{
			{ID: "p1", Date: "2024-03-01", Time: "09:00", Amount: mustDec(t, "100")},
			{ID: "p2", Date: "2024-03-02", Time: "10:00", Amount: mustDec(t, "30")},
			{ID: "p3", Date: "2024-03-02", Time: "16:00", Amount: mustDec(t, "20")},
		}},
		earnings: &stubEarnings{earnings: []entity.DailyEarning{
			{Date: "2024-03-02", EarningsAmount: mustDec(t, "200")},
		}},
		notes: &stubNotes{},
	}
	svc := newTestService(repo)

	dashboard, err := svc.GetDashboard(context.Background(), "2024-03-02")
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}

	if !dashboard.TodayEarnings.Equal(mustDec(t, "200")) {
		t.Errorf("TodayEarnings = %s, want 200", dashboard.TodayEarnings)
	}
	if !dashboard.TodayPayments.Equal(mustDec(t, "50")) {
		t.Errorf("TodayPayments = %s, want 50", dashboard.TodayPayments)
	}
	if !dashboard.RemainingBalance.Equal(mustDec(t, "150")) {
		t.Errorf("RemainingBalance = %s, want 150", dashboard.RemainingBalance)
	}
	if !dashboard.TotalPayments.Equal(mustDec(t, "150")) {
		t.Errorf("TotalPayments = %s, want 150", dashboard.TotalPayments)
	}
}

func TestGetDashboardNoEarningsRecord(t *testing.T) {
	repo := &stubRepository{
		payments: &stubPayments{payments: []entity.Payment{
			{ID: "p1", Date: "2024-03-02", Time: "10:00", Amount: mustDec(t, "50")},
		}},
		earnings: &stubEarnings{},
		notes:    &stubNotes{},
	}
	svc := newTestService(repo)

	dashboard, err := svc.GetDashboard(context.Background(), "2024-03-02")
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}

	if !dashboard.TodayEarnings.IsZero() {
		t.Errorf("TodayEarnings = %s, want 0", dashboard.TodayEarnings)
	}
	if !dashboard.RemainingBalance.Equal(mustDec(t, "-50")) {
		t.Errorf("RemainingBalance = %s, want -50", dashboard.RemainingBalance)
	}
}

func TestCreateNoteTrimsContent(t *testing.T) {
	repo := &stubRepository{payments: &stubPayments{}, earnings: &stubEarnings{}, notes: &stubNotes{}}
	svc := newTestService(repo)

	err := svc.CreateNote(context.Background(), ledger.CreateNoteRequest{
		Date: "2024-03-01", Content: "  ran out of flour  ",
	})
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}

	if len(repo.notes.inserted) != 1 {
		t.Fatalf("inserted %d notes, want 1", len(repo.notes.inserted))
	}
	if got := repo.notes.inserted[0].Content; got != "ran out of flour" {
		t.Errorf("content = %q, want trimmed", got)
	}
}

func TestCreateNoteRejectsWhitespaceOnly(t *testing.T) {
	repo := &stubRepository{payments: &stubPayments{}, earnings: &stubEarnings{}, notes: &stubNotes{}}
	svc := newTestService(repo)

	err := svc.CreateNote(context.Background(), ledger.CreateNoteRequest{
		Date: "2024-03-01", Content: "   ",
	})

	if !errors.Is(err, entity.ErrEmptyContent) {
		t.Fatalf("err = %v, want ErrEmptyContent", err)
	}
	if len(repo.notes.inserted) != 0 {
		t.Errorf("blank note reached the store")
	}
}

func TestUpsertDailyEarningValidates(t *testing.T) {
	repo := &stubRepository{payments: &stubPayments{}, earnings: &stubEarnings{}, notes: &stubNotes{}}
	svc := newTestService(repo)

	err := svc.UpsertDailyEarning(context.Background(), ledger.UpsertEarningRequest{
		Date: "2024-03-01", EarningsAmount: mustDec(t, "-10"),
	})

	if !errors.Is(err, entity.ErrNegativeAmount) {
		t.Fatalf("err = %v, want ErrNegativeAmount", err)
	}
	if len(repo.earnings.upserted) != 0 {
		t.Errorf("invalid earnings reached the store")
	}
}
