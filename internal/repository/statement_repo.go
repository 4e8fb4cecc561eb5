// internal/repository/statement_repo.go
package repository

import (
	"context"

	"finledger/internal/domain"
)

// StatementRepository defines the interface for statement data operations.
// Statements are append-only: there are no update or delete operations.
type StatementRepository interface {
	// CreateStatement adds a new statement record to the database using the provided DBExecutor.
	CreateStatement(ctx context.Context, q DBExecutor, statement *domain.Statement) error
	// GetStatementsByUserID retrieves all statements for a user in creation order.
	GetStatementsByUserID(ctx context.Context, q DBExecutor, userID string) ([]domain.Statement, error)
	// GetStatementByID retrieves a single statement by its ID.
	GetStatementByID(ctx context.Context, q DBExecutor, id string) (*domain.Statement, error)
}
