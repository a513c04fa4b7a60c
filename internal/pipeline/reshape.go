package pipeline

import (
	"strings"

	"github.com/ledgerbook-dev/ledgerbook/internal/config"
	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

// Reshape interleaves one placeholder row after every voucher, then fills the
// placeholders: ledger name from the bank, amount forward-filled from the
// owning entry, Dr/Cr inverted from the preceding row. The result always has
// exactly twice as many rows as the ledger.
func Reshape(led model.Ledger, pol config.Policy) []model.Voucher {
	rows := interleavePlaceholders(led.Vouchers)

	name := led.BankName
	if pol.CleanBankNames {
		name = CleanBankName(name)
	}
	fillLedgerNames(rows, led.BankName, name, pol.CleanBankNames)
	forwardFillAmounts(rows)
	invertPendingFlags(rows)
	return rows
}

// interleavePlaceholders gives originals the even indices and all-pending
// placeholders the odd ones, preserving original order.
func interleavePlaceholders(vouchers []model.Voucher) []model.Voucher {
	out := make([]model.Voucher, 0, 2*len(vouchers))
	for _, v := range vouchers {
		out = append(out, v, model.PlaceholderVoucher())
	}
	return out
}

// fillLedgerNames writes the bank name into pending ledger-name cells. When
// cleaning is on, a voucher already naming the raw bank (the bank's own
// ledger line) is normalized to the cleaned form as well.
func fillLedgerNames(rows []model.Voucher, rawName, fillName string, clean bool) {
	for i := range rows {
		switch {
		case rows[i].LedgerName.IsPending():
			rows[i].LedgerName = model.Value(fillName)
		case clean && rows[i].LedgerName.String() == rawName:
			rows[i].LedgerName = model.Value(fillName)
		}
	}
}

// forwardFillAmounts propagates the last seen amount into pending and missing
// cells, as a single sequential scan. Cells before the first real amount stay
// missing.
func forwardFillAmounts(rows []model.Voucher) {
	last := model.Missing()
	for i := range rows {
		if rows[i].Amount.HasValue() {
			last = rows[i].Amount
			continue
		}
		rows[i].Amount = last
	}
}

// invertPendingFlags gives every placeholder the opposite Dr/Cr flag of the
// row immediately above it. A missing or invalid flag above leaves the
// placeholder's flag missing.
func invertPendingFlags(rows []model.Voucher) {
	for i := range rows {
		if !rows[i].DrCr.IsPending() {
			continue
		}
		rows[i].DrCr = model.Missing()
		if i == 0 {
			continue
		}
		if above, ok := rows[i-1].DrCr.Get(); ok {
			if inv, ok := model.InvertDrCr(above); ok {
				rows[i].DrCr = model.Value(inv)
			}
		}
	}
}

// CleanBankName appends " A/c" unless the name already reads as an account.
func CleanBankName(name string) string {
	if strings.Contains(name, "A/c") || strings.Contains(name, "Account") {
		return name
	}
	return name + " A/c"
}
