package pipeline

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerbook-dev/ledgerbook/internal/config"
	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

// Reconcile produces one summary per bank, in first-seen order. The policy
// picks both the rows the totals come from and the closing-balance sign
// convention:
//
//   - per-sheet: totals over each ledger's ingested vouchers
//   - final-table: totals over aggregated rows whose ledger name matches the
//     bank (i.e. the interleaved bank-side legs, which carry inverted flags)
func Reconcile(ledgers []model.Ledger, table Table, pol config.Policy) ([]model.BankSummary, error) {
	summaries := make([]model.BankSummary, 0, len(ledgers))
	for _, led := range ledgers {
		var rows []model.Voucher
		switch pol.ReconcileSource {
		case config.FinalTable:
			rows = bankRows(table.Rows, led.BankName)
		default:
			rows = led.Vouchers
		}

		debit, credit, err := totals(rows)
		if err != nil {
			return nil, fmt.Errorf("reconciling %s: %w", led.BankName, err)
		}

		s := model.BankSummary{
			Bank:           led.BankName,
			OpeningBalance: led.OpeningBalance,
			TotalCredit:    credit,
			TotalDebit:     debit,
		}
		s.ClosingBalance, s.Formula = closingBalance(pol.SignConvention, led.OpeningBalance, debit, credit)
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// bankRows selects aggregated rows attributed to bank by ledger-name match,
// against both the raw and the cleaned spelling.
func bankRows(rows []model.Voucher, bank string) []model.Voucher {
	cleaned := CleanBankName(bank)
	var out []model.Voucher
	for _, v := range rows {
		if name, ok := v.LedgerName.Get(); ok && (name == bank || name == cleaned) {
			out = append(out, v)
		}
	}
	return out
}

// totals sums amounts by Dr/Cr flag. Rows without a flag or an amount don't
// contribute.
func totals(rows []model.Voucher) (debit, credit decimal.Decimal, err error) {
	for _, v := range rows {
		flag, ok := v.DrCr.Get()
		if !ok {
			continue
		}
		amount, ok, err := v.AmountDecimal()
		if err != nil {
			return decimal.Zero, decimal.Zero, err
		}
		if !ok {
			continue
		}
		switch flag {
		case model.Debit:
			debit = debit.Add(amount)
		case model.Credit:
			credit = credit.Add(amount)
		}
	}
	return debit, credit, nil
}

// closingBalance applies the sign convention and renders the matching
// formula string.
func closingBalance(sign config.SignConvention, opening, debit, credit decimal.Decimal) (decimal.Decimal, string) {
	if sign == config.DebitMinusCredit {
		closing := opening.Add(debit).Sub(credit)
		formula := fmt.Sprintf(
			"Opening Balance (%s) + Total Debit (%s) - Total Credit (%s) = Closing Balance (%s)",
			opening, debit, credit, closing)
		return closing, formula
	}
	closing := opening.Add(credit).Sub(debit)
	formula := fmt.Sprintf(
		"Opening Balance (%s) + Total Credit (%s) - Total Debit (%s) = Closing Balance (%s)",
		opening, credit, debit, closing)
	return closing, formula
}
