package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerbook-dev/ledgerbook/internal/config"
	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

func testSchema(t *testing.T) *Schema {
	t.Helper()
	s, err := New(config.Default().Columns)
	require.NoError(t, err)
	return s
}

func TestNewRequiresEveryRole(t *testing.T) {
	cols := config.Default().Columns
	cols.Narration = ""
	_, err := New(cols)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "narration")
}

func TestRestrictReordersAndDrops(t *testing.T) {
	s := testSchema(t)
	sheet := model.RawSheet{
		Name: "HDFC",
		Header: []string{
			"Ledger Name", "Voucher Date", "Unnamed: 2", "Ledger Amount",
			"Ledger Amount Dr/Cr", "Voucher Type Name", "Voucher Narration", "HDFC Bank",
		},
		Rows: [][]string{
			{"Acme Supplies", "2025-04-01", "junk", "250", "Dr", "Payment", "Invoice 42", ""},
		},
	}

	got, err := s.Restrict(sheet)
	require.NoError(t, err)
	assert.Equal(t, s.Labels(), got.Header)
	require.Len(t, got.Rows, 1)
	assert.Equal(t, []string{"2025-04-01", "Payment", "Acme Supplies", "250", "Dr", "Invoice 42"}, got.Rows[0])
}

func TestRestrictIdempotent(t *testing.T) {
	s := testSchema(t)
	sheet := model.RawSheet{
		Name:   "HDFC",
		Header: []string{"Voucher Date", "Voucher Type Name", "Ledger Name", "Ledger Amount", "Ledger Amount Dr/Cr", "Voucher Narration", "HDFC Bank"},
		Rows: [][]string{
			{"2025-04-01", "Payment", "Acme Supplies", "250", "Dr", "Invoice 42", ""},
			{"2025-04-02", "Receipt", "Globex", "990", "Cr", "", ""},
		},
	}

	once, err := s.Restrict(sheet)
	require.NoError(t, err)
	twice, err := s.Restrict(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice, "restricting an already restricted sheet must be a no-op")
}

func TestRestrictMissingColumn(t *testing.T) {
	s := testSchema(t)

	// Every label present except the amount column; the error must name it.
	sheet := model.RawSheet{
		Name:   "broken",
		Header: []string{"Voucher Date", "Voucher Type Name", "Ledger Name", "Ledger Amount Dr/Cr", "Voucher Narration"},
	}
	_, err := s.Restrict(sheet)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Ledger Amount")
	assert.Contains(t, err.Error(), "ledger_amount")
}

func TestRestrictReportsFirstUnboundRole(t *testing.T) {
	s := testSchema(t)

	// With several labels absent, the first unbound role in role order is
	// the one reported.
	sheet := model.RawSheet{
		Name:   "broken",
		Header: []string{"Voucher Date", "Ledger Name"},
	}
	_, err := s.Restrict(sheet)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Voucher Type Name")
	assert.Contains(t, err.Error(), "voucher_type")
}

func TestRestrictShortRows(t *testing.T) {
	s := testSchema(t)
	sheet := model.RawSheet{
		Name:   "HDFC",
		Header: []string{"Voucher Date", "Voucher Type Name", "Ledger Name", "Ledger Amount", "Ledger Amount Dr/Cr", "Voucher Narration"},
		Rows: [][]string{
			{"2025-04-01", "Payment"},
		},
	}
	got, err := s.Restrict(sheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-04-01", "Payment", "", "", "", ""}, got.Rows[0])
}

func TestProject(t *testing.T) {
	s := testSchema(t)
	v := s.Project([]string{"01-04-2025", "Payment", " Acme Supplies ", "250", "Dr", ""})
	assert.Equal(t, "01-04-2025", v.Date.String())
	assert.Equal(t, "Acme Supplies", v.LedgerName.String(), "projected cells are trimmed")
	assert.True(t, v.Narration.IsMissing(), "blank cells project to missing")
	assert.False(t, v.Empty())

	assert.True(t, s.Project([]string{"", "", "", "", "", ""}).Empty())
}
