package domain

import "errors"

// Sentinel errors for ledger lookups. The service layer maps these to the
// plain-text results the wire protocol reports to clients.
var (
	ErrStockNotFound      = errors.New("stock_not_found")
	ErrStockAlreadyExists = errors.New("stock_already_exists")
)
