package pipeline

import (
	"github.com/ledgerbook-dev/ledgerbook/internal/config"
	"github.com/ledgerbook-dev/ledgerbook/internal/model"
	"github.com/ledgerbook-dev/ledgerbook/internal/schema"
)

// Result is everything the pipeline produces for one workbook.
type Result struct {
	Table     Table
	Summaries []model.BankSummary
}

// Run executes the full normalization flow over the workbook's sheets, in
// sheet order. A later sheet for an already-seen bank is skipped outright so
// each bank is summarized exactly once.
func Run(sheets []model.RawSheet, cfg *config.Config) (Result, error) {
	sch, err := schema.New(cfg.Columns)
	if err != nil {
		return Result{}, err
	}

	seen := NewSeenBanks()
	var ledgers []model.Ledger
	var reshaped [][]model.Voucher

	for _, sheet := range sheets {
		bank, err := BankName(sheet)
		if err != nil {
			return Result{}, err
		}
		if seen.Contains(bank) {
			continue
		}
		if cfg.Policy.ExcludeOwnBankRows {
			seen.Add(bank)
		}

		led, err := Ingest(sheet, sch, bank, seen)
		if err != nil {
			return Result{}, err
		}
		seen.Add(bank)

		ledgers = append(ledgers, led)
		reshaped = append(reshaped, Reshape(led, cfg.Policy))
	}

	table := Aggregate(reshaped)
	summaries, err := Reconcile(ledgers, table, cfg.Policy)
	if err != nil {
		return Result{}, err
	}
	return Result{Table: table, Summaries: summaries}, nil
}
