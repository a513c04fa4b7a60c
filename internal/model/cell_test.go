package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellStates(t *testing.T) {
	v := Value("Dr")
	assert.True(t, v.HasValue())
	assert.False(t, v.IsPending())
	assert.False(t, v.IsMissing())
	assert.Equal(t, "Dr", v.String())

	p := Pending()
	assert.True(t, p.IsPending())
	assert.False(t, p.HasValue())
	assert.Empty(t, p.String())

	var zero Cell
	assert.True(t, zero.IsMissing(), "zero Cell must be missing")

	s, ok := Missing().Get()
	assert.False(t, ok)
	assert.Empty(t, s)
}

func TestInvertDrCr(t *testing.T) {
	inv, ok := InvertDrCr(Debit)
	require.True(t, ok)
	assert.Equal(t, Credit, inv)

	inv, ok = InvertDrCr(Credit)
	require.True(t, ok)
	assert.Equal(t, Debit, inv)

	_, ok = InvertDrCr("Drx")
	assert.False(t, ok)
	_, ok = InvertDrCr("")
	assert.False(t, ok)
}

func TestVoucherCellRoundTrip(t *testing.T) {
	var v Voucher
	for _, role := range Roles() {
		v.SetCell(role, Value(string(role)))
	}
	for _, role := range Roles() {
		assert.Equal(t, string(role), v.Cell(role).String(), "role %s", role)
	}
	assert.False(t, v.Empty())
	assert.True(t, Voucher{}.Empty())
}

func TestAmountDecimal(t *testing.T) {
	v := Voucher{Amount: Value("1500.25")}
	d, ok, err := v.AmountDecimal()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1500.25", d.String())

	_, ok, err = Voucher{}.AmountDecimal()
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = Voucher{Amount: Value("not-a-number")}.AmountDecimal()
	require.Error(t, err)
	assert.True(t, ok)
}
