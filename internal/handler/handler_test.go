package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Csully01/stock-exchange-webserver/internal/service"
	"github.com/Csully01/stock-exchange-webserver/internal/store"
)

// testEnv bundles the dependencies for admin handler tests.
type testEnv struct {
	router http.Handler
	txSvc  *service.TransactionService
}

func newTestEnv() *testEnv {
	ledger := store.NewLedger()
	txSvc := service.NewTransactionService(ledger)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &testEnv{
		router: NewRouter(txSvc, logger),
		txSvc:  txSvc,
	}
}

// doGet sends a GET request and returns the recorder.
func (env *testEnv) doGet(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	return rr
}

// decodeJSON decodes the response body into v.
func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v (body: %s)", err, rr.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	env := newTestEnv()

	rr := env.doGet(t, "/healthz")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp map[string]string
	decodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %q", resp["status"])
	}
}

func TestGetStock(t *testing.T) {
	env := newTestEnv()
	env.txSvc.Dispatch("create", "ABC", 100)

	rr := env.doGet(t, "/stocks/ABC")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp stockResponse
	decodeJSON(t, rr, &resp)
	if resp.Symbol != "ABC" {
		t.Fatalf("expected symbol ABC, got %q", resp.Symbol)
	}
	if resp.Balance != 100 {
		t.Fatalf("expected balance 100, got %d", resp.Balance)
	}
}

func TestGetStock_NotFound(t *testing.T) {
	env := newTestEnv()

	rr := env.doGet(t, "/stocks/GHOST")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}

	var resp errorResponse
	decodeJSON(t, rr, &resp)
	if resp.Error != "stock_not_found" {
		t.Fatalf("expected stock_not_found, got %q", resp.Error)
	}
}

func TestListStocks(t *testing.T) {
	env := newTestEnv()
	env.txSvc.Dispatch("create", "MSFT", 10)
	env.txSvc.Dispatch("create", "AAPL", 20)
	env.txSvc.Dispatch("buy", "AAPL", 5)

	rr := env.doGet(t, "/stocks")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp listResponse
	decodeJSON(t, rr, &resp)
	if resp.Count != 2 {
		t.Fatalf("expected count 2, got %d", resp.Count)
	}
	if resp.Stocks[0].Symbol != "AAPL" || resp.Stocks[1].Symbol != "MSFT" {
		t.Fatalf("expected [AAPL MSFT], got %+v", resp.Stocks)
	}
	if resp.Stocks[0].Balance != 15 {
		t.Fatalf("expected AAPL balance 15, got %d", resp.Stocks[0].Balance)
	}
}

func TestListStocks_Empty(t *testing.T) {
	env := newTestEnv()

	rr := env.doGet(t, "/stocks")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp listResponse
	decodeJSON(t, rr, &resp)
	if resp.Count != 0 {
		t.Fatalf("expected count 0, got %d", resp.Count)
	}
	if len(resp.Stocks) != 0 {
		t.Fatalf("expected no stocks, got %+v", resp.Stocks)
	}
}

func TestListStocks_AfterReset(t *testing.T) {
	env := newTestEnv()
	env.txSvc.Dispatch("create", "ABC", 100)
	env.txSvc.Dispatch("reset", "", 0)

	rr := env.doGet(t, "/stocks")
	var resp listResponse
	decodeJSON(t, rr, &resp)
	if resp.Count != 0 {
		t.Fatalf("expected count 0 after reset, got %d", resp.Count)
	}
}
