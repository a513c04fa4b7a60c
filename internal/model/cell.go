package model

// cellState tags the three states a table cell can be in. A pending cell
// belongs to a freshly interleaved placeholder row and is waiting for the
// reshaper to fill it; a missing cell is genuinely absent and stays blank in
// the output.
type cellState int

const (
	stateMissing cellState = iota
	statePending
	stateValue
)

// Cell is one table cell: a string value, or an explicit pending/missing
// marker. The zero Cell is missing.
type Cell struct {
	state cellState
	value string
}

// Value returns a Cell holding v.
func Value(v string) Cell {
	return Cell{state: stateValue, value: v}
}

// Pending returns a placeholder Cell awaiting a fill pass.
func Pending() Cell {
	return Cell{state: statePending}
}

// Missing returns an absent Cell.
func Missing() Cell {
	return Cell{}
}

// IsPending reports whether the cell is an unfilled placeholder.
func (c Cell) IsPending() bool { return c.state == statePending }

// IsMissing reports whether the cell is absent.
func (c Cell) IsMissing() bool { return c.state == stateMissing }

// HasValue reports whether the cell holds a real value.
func (c Cell) HasValue() bool { return c.state == stateValue }

// String returns the cell's value, or "" for pending/missing cells.
func (c Cell) String() string {
	if c.state != stateValue {
		return ""
	}
	return c.value
}

// Get returns the cell's value and whether one is present.
func (c Cell) Get() (string, bool) {
	return c.value, c.state == stateValue
}
