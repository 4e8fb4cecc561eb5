// internal/domain/statement.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal" // For precise monetary calculations
)

// OperationType defines the kind of a statement operation.
type OperationType string

const (
	OperationTypeDeposit  OperationType = "deposit"
	OperationTypeWithdraw OperationType = "withdraw"
)

// Valid reports whether the operation type is one of the known kinds.
func (t OperationType) Valid() bool {
	return t == OperationTypeDeposit || t == OperationTypeWithdraw
}

// Statement represents one immutable financial event (deposit or withdraw)
// recorded against a user's balance. Statements are never edited after
// creation; UpdatedAt carries the creation instant by convention.
type Statement struct {
	ID          string          `db:"id" json:"id"`                 // Primary key, UUID in DB
	UserID      string          `db:"user_id" json:"user_id"`       // Owner reference, foreign key to User
	Type        OperationType   `db:"type" json:"type"`             // deposit or withdraw
	Amount      decimal.Decimal `db:"amount" json:"amount"`         // Positive amount, NUMERIC(20, 2) in DB
	Description string          `db:"description" json:"description"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// NewStatement creates a new Statement instance with a fresh identifier and
// a single creation instant for both timestamps.
func NewStatement(userID string, opType OperationType, amount decimal.Decimal, description string) *Statement {
	now := time.Now().UTC()
	return &Statement{
		ID:          uuid.NewString(),
		UserID:      userID,
		Type:        opType,
		Amount:      amount,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
