package pipeline

import (
	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

// Table is the consolidated voucher table: the roles that survived the
// empty-column trim, in role order, and the final rows including blank
// separators.
type Table struct {
	Roles []model.Role
	Rows  []model.Voucher
}

// Aggregate concatenates the reshaped sheets in order, trims empty columns
// and rows, inserts a blank separator after every other row, and downgrades
// any leftover pending cell to missing.
//
// Pending cells count as occupied during the trim: a continuation row's
// pending date keeps the date column alive, matching the original layout.
func Aggregate(sheets [][]model.Voucher) Table {
	var rows []model.Voucher
	for _, sheet := range sheets {
		rows = append(rows, sheet...)
	}

	roles := occupiedRoles(rows)
	rows = dropEmptyRows(rows, roles)
	rows = interleaveSeparators(rows)
	clearPending(rows)
	return Table{Roles: roles, Rows: rows}
}

// occupiedRoles returns the roles with at least one non-missing cell.
func occupiedRoles(rows []model.Voucher) []model.Role {
	var roles []model.Role
	for _, role := range model.Roles() {
		for _, v := range rows {
			if !v.Cell(role).IsMissing() {
				roles = append(roles, role)
				break
			}
		}
	}
	return roles
}

// dropEmptyRows removes rows with no cell in any surviving role.
func dropEmptyRows(rows []model.Voucher, roles []model.Role) []model.Voucher {
	out := rows[:0]
	for _, v := range rows {
		keep := false
		for _, role := range roles {
			if !v.Cell(role).IsMissing() {
				keep = true
				break
			}
		}
		if keep {
			out = append(out, v)
		}
	}
	return out
}

// interleaveSeparators inserts one placeholder row after every other row
// (after original indices 1, 3, 5, ...), keeping the alternating visual
// grouping of the source layout.
func interleaveSeparators(rows []model.Voucher) []model.Voucher {
	out := make([]model.Voucher, 0, len(rows)+len(rows)/2)
	for i, v := range rows {
		out = append(out, v)
		if i%2 == 1 {
			out = append(out, model.PlaceholderVoucher())
		}
	}
	return out
}

// clearPending converts every remaining pending cell to a true missing value.
func clearPending(rows []model.Voucher) {
	for i := range rows {
		for _, role := range model.Roles() {
			if rows[i].Cell(role).IsPending() {
				rows[i].SetCell(role, model.Missing())
			}
		}
	}
}
