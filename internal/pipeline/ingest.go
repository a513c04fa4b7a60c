// Package pipeline implements the ledger normalization flow: per-sheet
// ingestion, row reshaping, cross-sheet aggregation and per-bank
// reconciliation.
package pipeline

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerbook-dev/ledgerbook/internal/model"
	"github.com/ledgerbook-dev/ledgerbook/internal/schema"
)

const (
	// bankSentinel in the last header cell means the bank name lives in the
	// second data row of that column instead.
	bankSentinel = "Bank"
	// openingBalanceLabel marks the pseudo-row carrying the opening balance.
	openingBalanceLabel = "Opening Balance"
	// outputDateFormat is how voucher dates are rendered in the output.
	outputDateFormat = "02-01-2006"
)

// dateLayouts are the voucher-date renderings accepted from the sheet, tried
// in order. Excel serial numbers are handled separately.
var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"2006-01-02 15:04:05",
	"1-2-06",
	"1/2/06",
}

// excelEpoch is day zero of Excel's 1900 date system.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// ShapeError reports a sheet whose contents don't fit the expected ledger
// layout.
type ShapeError struct {
	Sheet  string
	Detail string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("sheet %q: %s", e.Sheet, e.Detail)
}

func shapeErrorf(sheet, format string, args ...any) *ShapeError {
	return &ShapeError{Sheet: sheet, Detail: fmt.Sprintf(format, args...)}
}

// BankName extracts the bank name from a raw sheet: the last column header,
// or the cell at data-row index 1 of that column when the header is the
// "Bank" sentinel.
func BankName(sheet model.RawSheet) (string, error) {
	last := -1
	for i, label := range sheet.Header {
		if strings.TrimSpace(label) != "" {
			last = i
		}
	}
	if last < 0 {
		return "", shapeErrorf(sheet.Name, "no column headers")
	}

	label := strings.TrimSpace(sheet.Header[last])
	if label != bankSentinel {
		return label, nil
	}

	if len(sheet.Rows) < 2 || last >= len(sheet.Rows[1]) || strings.TrimSpace(sheet.Rows[1][last]) == "" {
		return "", shapeErrorf(sheet.Name, "header is %q but the bank name cell is empty", bankSentinel)
	}
	return strings.TrimSpace(sheet.Rows[1][last]), nil
}

// Ingest cleans one raw sheet into a Ledger: captures the opening balance,
// filters rows belonging to already-seen banks, restricts columns to the
// voucher schema and normalizes dates, amounts and Dr/Cr flags.
//
// The caller decides whether the sheet's own bank is in seen before calling
// (the own-row exclusion variant) or only afterwards.
func Ingest(sheet model.RawSheet, sch *schema.Schema, bankName string, seen *SeenBanks) (model.Ledger, error) {
	restricted, err := sch.Restrict(sheet)
	if err != nil {
		return model.Ledger{}, shapeErrorf(sheet.Name, "%v", err)
	}

	led := model.Ledger{BankName: bankName, OpeningBalance: decimal.Zero}
	captured := false

	for i, raw := range sheet.Rows {
		if allBlank(raw) {
			continue
		}

		v := sch.Project(restricted.Rows[i])
		name := v.LedgerName.String()

		if seen.Contains(name) {
			continue
		}

		if name == openingBalanceLabel {
			if !captured {
				if s, ok := v.Amount.Get(); ok {
					d, err := parseAmount(s)
					if err != nil {
						return model.Ledger{}, shapeErrorf(sheet.Name, "row %d: opening balance %q: %v", i+2, s, err)
					}
					led.OpeningBalance = d
				}
				captured = true
			}
			continue
		}

		if v.Empty() {
			continue
		}

		if err := normalizeVoucher(&v); err != nil {
			return model.Ledger{}, shapeErrorf(sheet.Name, "row %d: %v", i+2, err)
		}
		led.Vouchers = append(led.Vouchers, v)
	}

	return led, nil
}

// normalizeVoucher rewrites the date to DD-MM-YYYY, the amount to a canonical
// decimal string, and rejects unknown Dr/Cr flags.
func normalizeVoucher(v *model.Voucher) error {
	if s, ok := v.Date.Get(); ok {
		t, err := parseDate(s)
		if err != nil {
			return err
		}
		v.Date = model.Value(t.Format(outputDateFormat))
	}

	if s, ok := v.Amount.Get(); ok {
		d, err := parseAmount(s)
		if err != nil {
			return fmt.Errorf("amount %q: %w", s, err)
		}
		v.Amount = model.Value(d.String())
	}

	if s, ok := v.DrCr.Get(); ok && !model.ValidDrCr(s) {
		return fmt.Errorf("unknown Dr/Cr flag %q", s)
	}
	return nil
}

// parseDate accepts the layouts in dateLayouts plus raw Excel serial numbers.
func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		days := time.Duration(serial * 24 * float64(time.Hour))
		return excelEpoch.Add(days), nil
	}
	return time.Time{}, fmt.Errorf("voucher date %q is not a date", s)
}

// parseAmount parses a sheet amount, tolerating thousands separators.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	return decimal.NewFromString(s)
}

func allBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// SeenBanks is the ordered set of bank names encountered so far.
type SeenBanks struct {
	names []string
	set   map[string]struct{}
}

// NewSeenBanks returns an empty seen-set.
func NewSeenBanks() *SeenBanks {
	return &SeenBanks{set: make(map[string]struct{})}
}

// Add records a bank name; re-adding is a no-op.
func (s *SeenBanks) Add(name string) {
	if _, ok := s.set[name]; ok {
		return
	}
	s.set[name] = struct{}{}
	s.names = append(s.names, name)
}

// Contains reports whether name has been recorded.
func (s *SeenBanks) Contains(name string) bool {
	_, ok := s.set[name]
	return ok
}

// Names returns the recorded names in first-seen order.
func (s *SeenBanks) Names() []string {
	return s.names
}
