package domain

import "strconv"

// Result strings written back to clients. These are part of the wire
// contract and must not change shape.
const (
	ResultNotFound       = "Stock not found"
	ResultReset          = "Stocks reset"
	ResultInvalidRequest = "Invalid request"
)

// CreatedResult is the confirmation for a successful create.
func CreatedResult(symbol string, balance int64) string {
	return "Stock " + symbol + " created with balance = " + strconv.FormatInt(balance, 10)
}

// AlreadyExistsResult is the response for a create on an existing symbol.
func AlreadyExistsResult(symbol string) string {
	return "Stock " + symbol + " already exists"
}

// UpdatedResult is the confirmation for a buy or sell.
func UpdatedResult(symbol string) string {
	return "Stock " + symbol + "'s balance updated"
}

// BalanceResult reports a stock's current balance.
func BalanceResult(symbol string, balance int64) string {
	return "Balance for stock " + symbol + " = " + strconv.FormatInt(balance, 10)
}
