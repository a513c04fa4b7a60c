package model

import (
	"github.com/shopspring/decimal"
)

// Voucher is one row of the consolidated voucher table. Each field is a Cell
// so placeholder rows can mark every column as pending until the reshape
// passes fill them in.
type Voucher struct {
	Date       Cell
	Type       Cell
	LedgerName Cell
	Amount     Cell
	DrCr       Cell
	Narration  Cell
}

// PlaceholderVoucher returns a row with every cell pending.
func PlaceholderVoucher() Voucher {
	return Voucher{
		Date:       Pending(),
		Type:       Pending(),
		LedgerName: Pending(),
		Amount:     Pending(),
		DrCr:       Pending(),
		Narration:  Pending(),
	}
}

// Cell returns the cell bound to role.
func (v Voucher) Cell(role Role) Cell {
	switch role {
	case RoleVoucherDate:
		return v.Date
	case RoleVoucherType:
		return v.Type
	case RoleLedgerName:
		return v.LedgerName
	case RoleLedgerAmount:
		return v.Amount
	case RoleDrCr:
		return v.DrCr
	case RoleNarration:
		return v.Narration
	}
	return Missing()
}

// SetCell replaces the cell bound to role.
func (v *Voucher) SetCell(role Role, c Cell) {
	switch role {
	case RoleVoucherDate:
		v.Date = c
	case RoleVoucherType:
		v.Type = c
	case RoleLedgerName:
		v.LedgerName = c
	case RoleDrCr:
		v.DrCr = c
	case RoleLedgerAmount:
		v.Amount = c
	case RoleNarration:
		v.Narration = c
	}
}

// Empty reports whether every cell is missing.
func (v Voucher) Empty() bool {
	for _, role := range Roles() {
		if !v.Cell(role).IsMissing() {
			return false
		}
	}
	return true
}

// AmountDecimal parses the amount cell. ok is false when the cell holds no
// value.
func (v Voucher) AmountDecimal() (d decimal.Decimal, ok bool, err error) {
	s, ok := v.Amount.Get()
	if !ok {
		return decimal.Zero, false, nil
	}
	d, err = decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, true, err
	}
	return d, true, nil
}
