package model

import (
	"github.com/shopspring/decimal"
)

// RawSheet is one worksheet as read from the input workbook: a header row of
// column labels plus string data rows. Rows are padded to the header width.
type RawSheet struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Ledger is one bank's ingested sheet: normalized vouchers plus the metadata
// captured while cleaning it.
type Ledger struct {
	BankName       string
	OpeningBalance decimal.Decimal
	Vouchers       []Voucher
}
