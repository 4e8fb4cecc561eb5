// internal/api/types/response.go
package types

import (
	"github.com/shopspring/decimal"

	"finledger/internal/domain"
)

// StatementResponse is the wire representation of a single statement.
// Amounts are serialized with two fractional digits.
type StatementResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// NewStatementResponse shapes a domain statement for the wire.
func NewStatementResponse(s *domain.Statement) StatementResponse {
	return StatementResponse{
		ID:          s.ID,
		UserID:      s.UserID,
		Type:        string(s.Type),
		Amount:      s.Amount.StringFixed(2),
		Description: s.Description,
		CreatedAt:   s.CreatedAt.Format("2006-01-02T15:04:05.000Z07:00"),
		UpdatedAt:   s.UpdatedAt.Format("2006-01-02T15:04:05.000Z07:00"),
	}
}

// BalanceResponse carries a user's full statement history in creation order
// and the balance derived from it.
type BalanceResponse struct {
	Statement []StatementResponse `json:"statement"`
	Balance   string              `json:"balance"`
}

// NewBalanceResponse shapes a statement history and balance for the wire.
func NewBalanceResponse(statements []domain.Statement, balance decimal.Decimal) BalanceResponse {
	shaped := make([]StatementResponse, 0, len(statements))
	for i := range statements {
		shaped = append(shaped, NewStatementResponse(&statements[i]))
	}
	return BalanceResponse{
		Statement: shaped,
		Balance:   balance.StringFixed(2),
	}
}

// UserResponse is the wire representation of a user (no credential hash).
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// NewUserResponse shapes a domain user for the wire.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format("2006-01-02T15:04:05.000Z07:00"),
		UpdatedAt: u.UpdatedAt.Format("2006-01-02T15:04:05.000Z07:00"),
	}
}

// SessionResponse is returned by a successful authentication.
type SessionResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
