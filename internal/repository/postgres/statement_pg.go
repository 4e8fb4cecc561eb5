// internal/repository/postgres/statement_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"finledger/internal/domain"
	"finledger/internal/repository"
	"finledger/internal/util"

	"github.com/jmoiron/sqlx"
)

// StatementRepository implements repository.StatementRepository for PostgreSQL.
type StatementRepository struct {
	// Stateless; methods receive a DBExecutor directly.
}

// NewStatementRepository creates a new StatementRepository.
func NewStatementRepository(db *sqlx.DB) repository.StatementRepository {
	return &StatementRepository{}
}

// CreateStatement inserts a new statement record into the database using the provided DBExecutor.
func (r *StatementRepository) CreateStatement(ctx context.Context, q repository.DBExecutor, statement *domain.Statement) error {
	query := `INSERT INTO statements (id, user_id, type, amount, description, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := q.ExecContext(ctx, query,
		statement.ID,
		statement.UserID,
		statement.Type,
		statement.Amount,
		statement.Description,
		statement.CreatedAt,
		statement.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create statement: %w", err)
	}
	return nil
}

// GetStatementsByUserID retrieves all statements for a user in creation order.
// The id tiebreak keeps the order deterministic for rows sharing a timestamp.
func (r *StatementRepository) GetStatementsByUserID(ctx context.Context, q repository.DBExecutor, userID string) ([]domain.Statement, error) {
	statements := []domain.Statement{}
	query := `
		SELECT id, user_id, type, amount, description, created_at, updated_at
		FROM statements
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC`
	err := q.SelectContext(ctx, &statements, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch statements for user %s: %w", userID, err)
	}
	return statements, nil
}

// GetStatementByID retrieves a single statement by its ID.
func (r *StatementRepository) GetStatementByID(ctx context.Context, q repository.DBExecutor, id string) (*domain.Statement, error) {
	var statement domain.Statement
	query := `SELECT id, user_id, type, amount, description, created_at, updated_at FROM statements WHERE id = $1`
	err := q.GetContext(ctx, &statement, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get statement by ID %s: %w", id, err)
	}
	return &statement, nil
}
