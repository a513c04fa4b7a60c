package model

import (
	"github.com/shopspring/decimal"
)

// BankSummary is one row of the Banks Summary sheet.
type BankSummary struct {
	Bank           string
	OpeningBalance decimal.Decimal
	TotalCredit    decimal.Decimal
	TotalDebit     decimal.Decimal
	ClosingBalance decimal.Decimal
	Formula        string
}
