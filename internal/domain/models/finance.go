package models

import "time"

// SchemaVersion tags every persisted payload so future layout changes can be
// migrated. The stored data carried no version field historically.
const SchemaVersion = 1

// TransactionType enumerates the two ledger entry kinds.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the enumerated values.
func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// FinancialRecord is one immutable ledger entry owned by a single farmer.
// Records are appended, never mutated or deleted.
type FinancialRecord struct {
	SchemaVersion int             `json:"schemaVersion"`
	ID            string          `json:"id"`
	FarmerID      string          `json:"farmerId"`
	Type          TransactionType `json:"type"`
	Category      string          `json:"category"`
	Amount        float64         `json:"amount"`
	Description   string          `json:"description,omitempty"`
	Date          string          `json:"date,omitempty"` // transaction date as supplied, may differ from CreatedAt
	CreatedAt     time.Time       `json:"createdAt"`
}

// FinancialSummary is derived from a record set at read time, never stored.
type FinancialSummary struct {
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	Profit       float64 `json:"profit"`
	ProfitMargin float64 `json:"profitMargin"` // percent, one decimal; 0 when no income
}

// RecordTransactionRequest is the payload accepted by POST /finance/record.
type RecordTransactionRequest struct {
	FarmerID    string   `json:"farmerId"`
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	Amount      *float64 `json:"amount"` // pointer so a missing amount is distinguishable from zero
	Description string   `json:"description"`
	Date        string   `json:"date"`
}

// LedgerView pairs the raw records with their derived summary.
type LedgerView struct {
	Records []FinancialRecord `json:"records"`
	Summary FinancialSummary  `json:"summary"`
}
