package domain

import "sync"

// Stock is a single ledger entry. Symbol is immutable once the entry is
// created; Balance is only read or written while Mu is held.
type Stock struct {
	Symbol  string
	Balance int64
	Mu      sync.Mutex // per-stock lock for balance access
}
