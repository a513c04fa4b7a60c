package model

// Role identifies one of the six logical voucher columns. The concrete sheet
// labels bound to each role come from configuration.
type Role string

const (
	RoleVoucherDate  Role = "voucher_date"
	RoleVoucherType  Role = "voucher_type"
	RoleLedgerName   Role = "ledger_name"
	RoleLedgerAmount Role = "ledger_amount"
	RoleDrCr         Role = "dr_cr"
	RoleNarration    Role = "narration"
)

// Roles lists all roles in output column order.
func Roles() []Role {
	return []Role{
		RoleVoucherDate,
		RoleVoucherType,
		RoleLedgerName,
		RoleLedgerAmount,
		RoleDrCr,
		RoleNarration,
	}
}
