package store

import (
	"sync"

	"github.com/Csully01/stock-exchange-webserver/internal/domain"
	"github.com/google/btree"
)

// Ledger is the process-wide, thread-safe mapping from stock symbol to
// stock entry.
//
// Locking is two-tier: mu guards the shape of the map (insertion, full
// clear, lookup), while each entry's own mutex guards its balance. Adjust
// and Balance hold the structural read lock for their entire critical
// section, so a Reset (which takes the write lock) can never clear the map
// out from under an in-flight balance access.
//
// An ordered symbol index is maintained alongside the map so snapshots come
// out in symbol order without sorting on every read.
type Ledger struct {
	mu     sync.RWMutex
	stocks map[string]*domain.Stock
	index  *btree.BTreeG[string]
}

// NewLedger creates an empty Ledger.
func NewLedger() *Ledger {
	const degree = 32
	return &Ledger{
		stocks: make(map[string]*domain.Stock),
		index:  btree.NewG[string](degree, func(a, b string) bool { return a < b }),
	}
}

// Create inserts a new stock with the given initial balance. It returns
// domain.ErrStockAlreadyExists, and makes no change, if the symbol is
// already present. The presence check and the insert happen under the same
// write lock, so two racing creators of one symbol cannot both succeed.
func (l *Ledger) Create(symbol string, balance int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.stocks[symbol]; exists {
		return domain.ErrStockAlreadyExists
	}
	l.stocks[symbol] = &domain.Stock{Symbol: symbol, Balance: balance}
	l.index.ReplaceOrInsert(symbol)
	return nil
}

// Adjust applies delta to the stock's balance. Buy passes a negative delta,
// sell a positive one. No floor is enforced; balances may go negative.
// Returns domain.ErrStockNotFound if the symbol is absent.
func (l *Ledger) Adjust(symbol string, delta int64) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s, ok := l.stocks[symbol]
	if !ok {
		return domain.ErrStockNotFound
	}
	s.Mu.Lock()
	s.Balance += delta
	s.Mu.Unlock()
	return nil
}

// Balance returns the stock's current balance, or domain.ErrStockNotFound
// if the symbol is absent. The read takes the entry lock so it never
// observes a torn write from a concurrent Adjust.
func (l *Ledger) Balance(symbol string) (int64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s, ok := l.stocks[symbol]
	if !ok {
		return 0, domain.ErrStockNotFound
	}
	s.Mu.Lock()
	b := s.Balance
	s.Mu.Unlock()
	return b, nil
}

// Exists returns true if the symbol is present.
func (l *Ledger) Exists(symbol string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, ok := l.stocks[symbol]
	return ok
}

// Reset removes every entry. It takes the structural write lock, so it is
// mutually exclusive with all other ledger operations.
func (l *Ledger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.stocks = make(map[string]*domain.Stock)
	l.index.Clear(false)
}

// Len returns the number of stocks in the ledger.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.stocks)
}

// Snapshot is a point-in-time copy of one ledger entry.
type Snapshot struct {
	Symbol  string
	Balance int64
}

// Snapshot returns a consistent copy of every entry in ascending symbol
// order. The structural read lock is held for the whole walk, so the result
// reflects a single point in time with respect to creates and resets.
func (l *Ledger) Snapshot() []Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Snapshot, 0, len(l.stocks))
	l.index.Ascend(func(symbol string) bool {
		s, ok := l.stocks[symbol]
		if !ok {
			return true
		}
		s.Mu.Lock()
		b := s.Balance
		s.Mu.Unlock()
		out = append(out, Snapshot{Symbol: symbol, Balance: b})
		return true
	})
	return out
}
