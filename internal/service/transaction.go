package service

import (
	"github.com/Csully01/stock-exchange-webserver/internal/domain"
	"github.com/Csully01/stock-exchange-webserver/internal/store"
)

// Transaction verbs accepted on the wire.
const (
	VerbCreate = "create"
	VerbBuy    = "buy"
	VerbSell   = "sell"
	VerbStatus = "status"
	VerbReset  = "reset"
)

// TransactionService routes parsed transactions to the ledger and turns the
// outcome into the result string reported to the client. It holds no state
// of its own beyond the ledger handle.
type TransactionService struct {
	ledger *store.Ledger
}

// NewTransactionService creates a TransactionService backed by the given ledger.
func NewTransactionService(ledger *store.Ledger) *TransactionService {
	return &TransactionService{ledger: ledger}
}

// Dispatch executes one transaction. Unknown verbs yield "Invalid request";
// missing symbols yield "Stock not found" or "Stock {s} already exists" —
// all normal results, never errors. Buy decreases the balance by amount,
// sell increases it, with no floor check either way.
func (t *TransactionService) Dispatch(verb, symbol string, amount int64) string {
	switch verb {
	case VerbCreate:
		if err := t.ledger.Create(symbol, amount); err != nil {
			return domain.AlreadyExistsResult(symbol)
		}
		return domain.CreatedResult(symbol, amount)
	case VerbBuy:
		return t.adjust(symbol, -amount)
	case VerbSell:
		return t.adjust(symbol, amount)
	case VerbStatus:
		balance, err := t.ledger.Balance(symbol)
		if err != nil {
			return domain.ResultNotFound
		}
		return domain.BalanceResult(symbol, balance)
	case VerbReset:
		t.ledger.Reset()
		return domain.ResultReset
	default:
		return domain.ResultInvalidRequest
	}
}

func (t *TransactionService) adjust(symbol string, delta int64) string {
	if err := t.ledger.Adjust(symbol, delta); err != nil {
		return domain.ResultNotFound
	}
	return domain.UpdatedResult(symbol)
}

// Balance reads a stock's balance for the admin surface. It returns
// domain.ErrStockNotFound when the symbol is absent.
func (t *TransactionService) Balance(symbol string) (int64, error) {
	return t.ledger.Balance(symbol)
}

// Snapshot returns all ledger entries in symbol order for the admin surface.
func (t *TransactionService) Snapshot() []store.Snapshot {
	return t.ledger.Snapshot()
}
