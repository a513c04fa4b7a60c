// Package schema binds the six logical voucher roles to the concrete column
// labels of a workbook and projects raw sheet rows onto that fixed shape.
package schema

import (
	"fmt"
	"strings"

	"github.com/ledgerbook-dev/ledgerbook/internal/config"
	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

// unnamedPrefix marks auto-generated labels for header cells that were blank
// in the source sheet.
const unnamedPrefix = "Unnamed"

// Schema is the fixed ordered set of voucher columns with their bound labels.
type Schema struct {
	labels map[model.Role]string
}

// New builds a Schema from validated column bindings.
func New(cols config.Columns) (*Schema, error) {
	labels := make(map[model.Role]string, len(model.Roles()))
	for _, role := range model.Roles() {
		label := cols.Label(role)
		if label == "" {
			return nil, fmt.Errorf("schema: no column label bound to role %q", role)
		}
		labels[role] = label
	}
	return &Schema{labels: labels}, nil
}

// Label returns the sheet label bound to role.
func (s *Schema) Label(role model.Role) string {
	return s.labels[role]
}

// Labels returns the bound labels in role order.
func (s *Schema) Labels() []string {
	out := make([]string, 0, len(model.Roles()))
	for _, role := range model.Roles() {
		out = append(out, s.labels[role])
	}
	return out
}

// locate maps every role to its column index in header. Columns with blank or
// sheet-generated "Unnamed" labels are never matched.
func (s *Schema) locate(header []string) (map[model.Role]int, error) {
	byLabel := make(map[string]int, len(header))
	for i, label := range header {
		label = strings.TrimSpace(label)
		if label == "" || strings.HasPrefix(label, unnamedPrefix) {
			continue
		}
		if _, dup := byLabel[label]; !dup {
			byLabel[label] = i
		}
	}

	at := make(map[model.Role]int, len(s.labels))
	for _, role := range model.Roles() {
		i, ok := byLabel[s.labels[role]]
		if !ok {
			return nil, fmt.Errorf("schema: sheet has no %q column for role %q", s.labels[role], role)
		}
		at[role] = i
	}
	return at, nil
}

// Restrict drops every column outside the schema and reorders the survivors
// to role order. Restricting an already restricted sheet is a no-op.
func (s *Schema) Restrict(sheet model.RawSheet) (model.RawSheet, error) {
	at, err := s.locate(sheet.Header)
	if err != nil {
		return model.RawSheet{}, err
	}

	out := model.RawSheet{Name: sheet.Name, Header: s.Labels()}
	out.Rows = make([][]string, len(sheet.Rows))
	for r, row := range sheet.Rows {
		cells := make([]string, 0, len(model.Roles()))
		for _, role := range model.Roles() {
			i := at[role]
			if i < len(row) {
				cells = append(cells, row[i])
			} else {
				cells = append(cells, "")
			}
		}
		out.Rows[r] = cells
	}
	return out, nil
}

// Project converts one restricted row into a Voucher. Blank cells become
// missing.
func (s *Schema) Project(row []string) model.Voucher {
	var v model.Voucher
	for i, role := range model.Roles() {
		if i < len(row) && strings.TrimSpace(row[i]) != "" {
			v.SetCell(role, model.Value(strings.TrimSpace(row[i])))
		} else {
			v.SetCell(role, model.Missing())
		}
	}
	return v
}
