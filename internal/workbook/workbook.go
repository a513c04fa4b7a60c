// Package workbook reads and writes xlsx files for the pipeline. It is a
// thin wrapper over excelize: all ledger semantics live in internal/pipeline.
package workbook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/ledgerbook-dev/ledgerbook/internal/model"
	"github.com/ledgerbook-dev/ledgerbook/internal/pipeline"
	"github.com/ledgerbook-dev/ledgerbook/internal/schema"
)

// Output sheet names. Existing sheets with these names are replaced; every
// other sheet in the destination workbook is left untouched.
const (
	VouchersSheet = "Accounting Vouchers"
	SummarySheet  = "Banks Summary"
)

// summaryHeader is the fixed header of the Banks Summary sheet.
var summaryHeader = []string{
	"Bank", "Opening Balance", "Total Credit", "Total Debit", "Closing Balance", "Formula",
}

// Read loads every sheet of an xlsx workbook, in workbook order. Rows are
// padded to the header width. Sheets with no content at all are skipped.
func Read(path string) ([]model.RawSheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	var sheets []model.RawSheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("reading sheet %q: %w", name, err)
		}
		if len(rows) == 0 {
			continue
		}

		header := rows[0]
		data := make([][]string, len(rows)-1)
		for i, row := range rows[1:] {
			padded := make([]string, len(header))
			copy(padded, row)
			data[i] = padded
		}
		sheets = append(sheets, model.RawSheet{Name: name, Header: header, Rows: data})
	}
	return sheets, nil
}

// EnsureDestination creates an empty workbook at path when nothing exists
// there yet.
func EnsureDestination(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking output %s: %w", path, err)
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("creating workbook %s: %w", path, err)
	}
	return nil
}

// Write replaces the voucher and summary sheets in the destination workbook
// and saves it.
func Write(path string, sch *schema.Schema, table pipeline.Table, summaries []model.BankSummary) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	// Deleting the last sheet of a workbook is not allowed, so park a
	// scratch sheet when the replacement would empty it.
	const scratch = "__ledgerbook__"
	targets := []string{VouchersSheet, SummarySheet}
	scratchAdded := false
	if remaining(f, targets) == 0 {
		if _, err := f.NewSheet(scratch); err != nil {
			return fmt.Errorf("adding scratch sheet: %w", err)
		}
		scratchAdded = true
	}

	for _, name := range targets {
		idx, err := f.GetSheetIndex(name)
		if err != nil {
			return fmt.Errorf("looking up sheet %q: %w", name, err)
		}
		if idx >= 0 {
			if err := f.DeleteSheet(name); err != nil {
				return fmt.Errorf("replacing sheet %q: %w", name, err)
			}
		}
	}

	if err := writeVouchers(f, sch, table); err != nil {
		return err
	}
	if err := writeSummaries(f, summaries); err != nil {
		return err
	}

	if scratchAdded {
		if err := f.DeleteSheet(scratch); err != nil {
			return fmt.Errorf("removing scratch sheet: %w", err)
		}
	}

	idx, err := f.GetSheetIndex(VouchersSheet)
	if err == nil && idx >= 0 {
		f.SetActiveSheet(idx)
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

// remaining counts the workbook's sheets that are not in names.
func remaining(f *excelize.File, names []string) int {
	drop := make(map[string]struct{}, len(names))
	for _, n := range names {
		drop[n] = struct{}{}
	}
	n := 0
	for _, s := range f.GetSheetList() {
		if _, ok := drop[s]; !ok {
			n++
		}
	}
	return n
}

func writeVouchers(f *excelize.File, sch *schema.Schema, table pipeline.Table) error {
	if _, err := f.NewSheet(VouchersSheet); err != nil {
		return fmt.Errorf("creating sheet %q: %w", VouchersSheet, err)
	}

	header := make([]any, len(table.Roles))
	for i, role := range table.Roles {
		header[i] = sch.Label(role)
	}
	if err := setRow(f, VouchersSheet, 1, header); err != nil {
		return err
	}

	for r, v := range table.Rows {
		cells := make([]any, len(table.Roles))
		for i, role := range table.Roles {
			cells[i] = cellValue(v, role)
		}
		if err := setRow(f, VouchersSheet, r+2, cells); err != nil {
			return err
		}
	}
	return nil
}

// cellValue renders one voucher cell for the sheet: amounts as numbers,
// everything else as text, missing cells as empty.
func cellValue(v model.Voucher, role model.Role) any {
	c := v.Cell(role)
	s, ok := c.Get()
	if !ok {
		return nil
	}
	if role == model.RoleLedgerAmount {
		if d, err := decimal.NewFromString(s); err == nil {
			f64, _ := d.Float64()
			return f64
		}
	}
	return s
}

func writeSummaries(f *excelize.File, summaries []model.BankSummary) error {
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("creating sheet %q: %w", SummarySheet, err)
	}

	header := make([]any, len(summaryHeader))
	for i, h := range summaryHeader {
		header[i] = h
	}
	if err := setRow(f, SummarySheet, 1, header); err != nil {
		return err
	}

	for r, s := range summaries {
		row := []any{
			s.Bank,
			num(s.OpeningBalance),
			num(s.TotalCredit),
			num(s.TotalDebit),
			num(s.ClosingBalance),
			s.Formula,
		}
		if err := setRow(f, SummarySheet, r+2, row); err != nil {
			return err
		}
	}

	// The formula column holds long text; widen it so it reads at a glance.
	if err := f.SetColWidth(SummarySheet, "F", "F", 80); err != nil {
		return fmt.Errorf("sizing formula column: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, cells []any) error {
	axis, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("addressing row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, axis, &cells); err != nil {
		return fmt.Errorf("writing row %d of %q: %w", row, sheet, err)
	}
	return nil
}

func num(d decimal.Decimal) float64 {
	f64, _ := d.Float64()
	return f64
}
