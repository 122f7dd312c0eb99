package handler

import (
	"errors"
	"net/http"

	"github.com/Csully01/stock-exchange-webserver/internal/domain"
	"github.com/Csully01/stock-exchange-webserver/internal/service"
	"github.com/go-chi/chi/v5"
)

// StockHandler handles the admin stock endpoints.
type StockHandler struct {
	txSvc *service.TransactionService
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(txSvc *service.TransactionService) *StockHandler {
	return &StockHandler{txSvc: txSvc}
}

// stockResponse is a single ledger entry in JSON form.
type stockResponse struct {
	Symbol  string `json:"symbol"`
	Balance int64  `json:"balance"`
}

// listResponse is the JSON response for GET /stocks.
type listResponse struct {
	Stocks []stockResponse `json:"stocks"`
	Count  int             `json:"count"`
}

// List handles GET /stocks. Entries come back in ascending symbol order.
func (h *StockHandler) List(w http.ResponseWriter, r *http.Request) {
	snap := h.txSvc.Snapshot()

	stocks := make([]stockResponse, len(snap))
	for i, s := range snap {
		stocks[i] = stockResponse{Symbol: s.Symbol, Balance: s.Balance}
	}

	WriteJSON(w, http.StatusOK, listResponse{Stocks: stocks, Count: len(stocks)})
}

// Get handles GET /stocks/{symbol}.
func (h *StockHandler) Get(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	balance, err := h.txSvc.Balance(symbol)
	if err != nil {
		if errors.Is(err, domain.ErrStockNotFound) {
			WriteError(w, http.StatusNotFound, "stock_not_found", "Stock not found")
			return
		}
		WriteError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	WriteJSON(w, http.StatusOK, stockResponse{Symbol: symbol, Balance: balance})
}
