package model

// Debit/credit flags as they appear in the sheet and the output.
const (
	Debit  = "Dr"
	Credit = "Cr"
)

// InvertDrCr maps Dr to Cr and Cr to Dr. ok is false for any other value.
func InvertDrCr(flag string) (string, bool) {
	switch flag {
	case Debit:
		return Credit, true
	case Credit:
		return Debit, true
	}
	return "", false
}

// ValidDrCr reports whether flag is exactly Dr or Cr.
func ValidDrCr(flag string) bool {
	return flag == Debit || flag == Credit
}
