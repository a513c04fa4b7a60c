package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ledgerbook-dev/ledgerbook/internal/model"
)

// SignConvention selects how the closing balance is derived from the
// movement totals.
type SignConvention string

const (
	// CreditMinusDebit: closing = opening + total credit - total debit.
	CreditMinusDebit SignConvention = "credit-minus-debit"
	// DebitMinusCredit: closing = opening + total debit - total credit.
	DebitMinusCredit SignConvention = "debit-minus-credit"
)

// ReconcileSource selects which rows the per-bank totals are computed from.
type ReconcileSource string

const (
	// PerSheet totals each bank's ingested vouchers before reshaping.
	PerSheet ReconcileSource = "per-sheet"
	// FinalTable totals rows of the aggregated table whose ledger name
	// matches the bank.
	FinalTable ReconcileSource = "final-table"
)

// Config is the top-level configuration document, loaded once at startup and
// passed by reference into every pipeline component.
type Config struct {
	Columns Columns `json:"columns"`
	Policy  Policy  `json:"policy"`
}

// Columns binds the six logical voucher roles to concrete sheet labels.
type Columns struct {
	VoucherDate  string `json:"voucher_date"`
	VoucherType  string `json:"voucher_type"`
	LedgerName   string `json:"ledger_name"`
	LedgerAmount string `json:"ledger_amount"`
	DrCr         string `json:"dr_cr"`
	Narration    string `json:"narration"`
}

// Policy holds the reconciliation and formatting variants.
type Policy struct {
	// CleanBankNames appends " A/c" to bank names that don't already carry
	// an account suffix.
	CleanBankNames bool `json:"clean_bank_names"`
	// SignConvention for the closing balance.
	SignConvention SignConvention `json:"sign_convention"`
	// ReconcileSource for the per-bank totals.
	ReconcileSource ReconcileSource `json:"reconcile_source"`
	// ExcludeOwnBankRows adds the current bank to the seen-set before the
	// seen-bank row filter, stripping the bank's own ledger lines from its
	// sheet.
	ExcludeOwnBankRows bool `json:"exclude_own_bank_rows"`
}

// Label returns the sheet label bound to role.
func (c Columns) Label(role model.Role) string {
	switch role {
	case model.RoleVoucherDate:
		return c.VoucherDate
	case model.RoleVoucherType:
		return c.VoucherType
	case model.RoleLedgerName:
		return c.LedgerName
	case model.RoleLedgerAmount:
		return c.LedgerAmount
	case model.RoleDrCr:
		return c.DrCr
	case model.RoleNarration:
		return c.Narration
	}
	return ""
}

// Load reads and validates a JSON config file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate fails fast on an unusable column binding or policy value.
func (c *Config) Validate() error {
	seen := make(map[string]model.Role, len(model.Roles()))
	for _, role := range model.Roles() {
		label := c.Columns.Label(role)
		if label == "" {
			return fmt.Errorf("config: no column label bound to role %q", role)
		}
		if prev, dup := seen[label]; dup {
			return fmt.Errorf("config: column label %q bound to both %q and %q", label, prev, role)
		}
		seen[label] = role
	}

	switch c.Policy.SignConvention {
	case CreditMinusDebit, DebitMinusCredit:
	default:
		return fmt.Errorf("config: unknown sign convention %q", c.Policy.SignConvention)
	}

	switch c.Policy.ReconcileSource {
	case PerSheet, FinalTable:
	default:
		return fmt.Errorf("config: unknown reconcile source %q", c.Policy.ReconcileSource)
	}
	return nil
}

// Default returns the canonical configuration: Tally-style column labels and
// the per-sheet reconciliation variant.
func Default() *Config {
	return &Config{
		Columns: Columns{
			VoucherDate:  "Voucher Date",
			VoucherType:  "Voucher Type Name",
			LedgerName:   "Ledger Name",
			LedgerAmount: "Ledger Amount",
			DrCr:         "Ledger Amount Dr/Cr",
			Narration:    "Voucher Narration",
		},
		Policy: Policy{
			CleanBankNames:     true,
			SignConvention:     CreditMinusDebit,
			ReconcileSource:    PerSheet,
			ExcludeOwnBankRows: false,
		},
	}
}

// Save writes a Config to a JSON file.
func Save(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
