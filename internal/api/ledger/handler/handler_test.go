package ledgerHandler_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Finitiix/friend-flows-tracker/internal/api/ledger"
	ledgerHandler "github.com/Finitiix/friend-flows-tracker/internal/api/ledger/handler"
	"github.com/Finitiix/friend-flows-tracker/internal/config"
	"github.com/Finitiix/friend-flows-tracker/internal/entity"
	"github.com/Finitiix/friend-flows-tracker/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type stubLedgerService struct {
	history      []ledger.HistoryRow
	totals       ledger.Totals
	export       []byte
	dashboard    ledger.DashboardResponse
	historyErr   error
	lastSortKey  ledger.SortKey
	lastFilter   ledger.HistoryFilter
	createdNotes int
}

func (s *stubLedgerService) CreatePayment(ctx context.Context, req ledger.CreatePaymentRequest) (entity.Payment, error) {
	return entity.Payment{
		ID: "01HVXA", Date: req.Date, Time: req.Time,
		Amount: req.Amount, Purpose: req.Purpose, Notes: req.Notes,
	}, nil
}

func (s *stubLedgerService) UpdatePayment(ctx context.Context, id string, req ledger.UpdatePaymentRequest) error {
	if id == "missing" {
		return ledger.ErrPaymentNotFound
	}
	return nil
}

func (s *stubLedgerService) DeletePayment(ctx context.Context, id string) error {
	if id == "missing" {
		return ledger.ErrPaymentNotFound
	}
	return nil
}

func (s *stubLedgerService) GetHistory(ctx context.Context, filter ledger.HistoryFilter, key ledger.SortKey) ([]ledger.HistoryRow, ledger.Totals, error) {
	s.lastFilter = filter
	s.lastSortKey = key
	return s.history, s.totals, s.historyErr
}

func (s *stubLedgerService) ExportHistory(ctx context.Context, filter ledger.HistoryFilter, key ledger.SortKey) ([]byte, error) {
	return s.export, nil
}

func (s *stubLedgerService) UpsertDailyEarning(ctx context.Context, req ledger.UpsertEarningRequest) error {
	return nil
}

func (s *stubLedgerService) GetDailyEarnings(ctx context.Context) ([]entity.DailyEarning, error) {
	return nil, nil
}

func (s *stubLedgerService) CreateNote(ctx context.Context, req ledger.CreateNoteRequest) error {
	s.createdNotes++
	return nil
}

func (s *stubLedgerService) GetDashboard(ctx context.Context, today string) (ledger.DashboardResponse, error) {
	return s.dashboard, nil
}

func newTestApp(t *testing.T, svc *stubLedgerService) *fiber.App {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New()
	router := app.Group("/api/v1")

	h := ledgerHandler.New(logger, config.NewValidator(), middleware.New(logger), svc)
	h.Start(router)

	return app
}

func TestCreatePayment(t *testing.T) {
	app := newTestApp(t, &stubLedgerService{})

	body := `{"date":"2024-03-01","time":"09:00","amount":100,"purpose":"supplies"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ledger/payments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
}

func TestCreatePaymentRejectsBadDate(t *testing.T) {
	app := newTestApp(t, &stubLedgerService{})

	body := `{"date":"01/03/2024","time":"09:00","amount":100,"purpose":"supplies"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ledger/payments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestUpdatePaymentNotFound(t *testing.T) {
	app := newTestApp(t, &stubLedgerService{})

	body := `{"date":"2024-03-01","time":"09:00","amount":100,"purpose":"supplies"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/ledger/payments/missing", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestGetHistoryDefaultsToDateDesc(t *testing.T) {
	svc := &stubLedgerService{}
	app := newTestApp(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ledger/history", nil)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if svc.lastSortKey != ledger.SortDateDesc {
		t.Errorf("sort key = %q, want %q", svc.lastSortKey, ledger.SortDateDesc)
	}
}

func TestGetHistoryParsesFilter(t *testing.T) {
	svc := &stubLedgerService{}
	app := newTestApp(t, svc)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/ledger/history?date_from=2024-03-01&min_amount=10.50&purpose=rent&sort=amount-asc", nil)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if svc.lastFilter.DateFrom != "2024-03-01" || svc.lastFilter.Purpose != "rent" {
		t.Errorf("filter = %+v", svc.lastFilter)
	}
	if svc.lastFilter.MinAmount == nil || !svc.lastFilter.MinAmount.Equal(decimal.RequireFromString("10.50")) {
		t.Errorf("min amount = %v, want 10.50", svc.lastFilter.MinAmount)
	}
	if svc.lastSortKey != ledger.SortAmountAsc {
		t.Errorf("sort key = %q, want %q", svc.lastSortKey, ledger.SortAmountAsc)
	}
}

func TestGetHistoryRejectsBadSortKey(t *testing.T) {
	app := newTestApp(t, &stubLedgerService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ledger/history?sort=bogus", nil)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestGetHistoryRejectsBadAmountBound(t *testing.T) {
	app := newTestApp(t, &stubLedgerService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ledger/history?min_amount=ten", nil)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestExportHistory(t *testing.T) {
	svc := &stubLedgerService{export: []byte("Date,Time,Amount,Purpose,Daily Earnings,Notes\n")}
	app := newTestApp(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ledger/history/export", nil)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}

	disposition := resp.Header.Get("Content-Disposition")
	if !strings.HasPrefix(disposition, `attachment; filename="finance-records-`) ||
		!strings.HasSuffix(disposition, `.csv"`) {
		t.Errorf("Content-Disposition = %q", disposition)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	if string(data) != string(svc.export) {
		t.Errorf("body = %q, want %q", data, svc.export)
	}
}

func TestCreateNote(t *testing.T) {
	svc := &stubLedgerService{}
	app := newTestApp(t, svc)

	body := `{"date":"2024-03-01","content":"ran out of flour"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ledger/notes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	if svc.createdNotes != 1 {
		t.Errorf("createdNotes = %d, want 1", svc.createdNotes)
	}
}

func TestGetDashboardRejectsBadDate(t *testing.T) {
	app := newTestApp(t, &stubLedgerService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ledger/dashboard?date=yesterday", nil)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
