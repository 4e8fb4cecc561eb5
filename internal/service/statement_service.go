// internal/service/statement_service.go
package service

import (
	"context"
	"fmt"

	"finledger/internal/domain"
	"finledger/internal/repository"
	"finledger/internal/util"
	"finledger/pkg/db"

	"github.com/shopspring/decimal"
)

// StatementService defines the interface for statement-related business logic:
// recording deposit/withdraw operations, computing the running balance, and
// looking up individual operations.
type StatementService interface {
	CreateStatement(ctx context.Context, userID string, opType domain.OperationType, amount decimal.Decimal, description string) (*domain.Statement, error)
	GetBalance(ctx context.Context, userID string) ([]domain.Statement, decimal.Decimal, error)
	GetStatementOperation(ctx context.Context, userID, statementID string) (*domain.Statement, error)
}

// statementService implements the StatementService interface.
type statementService struct {
	dbBeginner    db.DBTxBeginner       // For starting transactions (e.g., *sqlx.DB)
	dbExecutor    repository.DBExecutor // For non-transactional reads (e.g., *sqlx.DB)
	userRepo      repository.UserRepository
	statementRepo repository.StatementRepository
	beginTx       db.BeginTxFunc
	commitTx      db.CommitTxFunc
	rollbackTx    db.RollbackTxFunc
}

// NewStatementService creates a new instance of StatementService.
func NewStatementService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	statementRepo repository.StatementRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) StatementService {
	return &statementService{
		dbBeginner:    dbBeginner,
		dbExecutor:    dbExecutor,
		userRepo:      userRepo,
		statementRepo: statementRepo,
		beginTx:       beginTx,
		commitTx:      commitTx,
		rollbackTx:    rollbackTx,
	}
}

// balanceOf folds a statement history into a single balance: deposits add,
// withdraws subtract. An empty history yields zero.
func balanceOf(statements []domain.Statement) decimal.Decimal {
	balance := decimal.Zero
	for _, statement := range statements {
		switch statement.Type {
		case domain.OperationTypeDeposit:
			balance = balance.Add(statement.Amount)
		case domain.OperationTypeWithdraw:
			balance = balance.Sub(statement.Amount)
		}
	}
	return balance
}

// CreateStatement records a deposit or withdraw operation for a user.
// A withdraw is only accepted when its amount does not exceed the user's
// current balance; an amount equal to the balance is accepted. The balance
// check and the insert run in one transaction holding a lock on the user's
// row, so two concurrent withdraws for the same user cannot both pass the
// funds check against the same balance.
func (s *statementService) CreateStatement(ctx context.Context, userID string, opType domain.OperationType, amount decimal.Decimal, description string) (*domain.Statement, error) {
	if !opType.Valid() {
		return nil, util.ErrInvalidInput
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, util.ErrInvalidInput
	}
	if description == "" {
		return nil, util.ErrInvalidInput
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("create statement: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("create statement: transaction controller does not implement DBExecutor")
	}

	// Lock the owner row for the duration of the transaction. Deposits take
	// the same path: the lock is cheap and keeps insertion order stable per user.
	if _, err := s.userRepo.GetUserByIDForUpdate(ctx, txExecutor, userID); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("create statement: failed to get user %s: %w", userID, err)
	}

	if opType == domain.OperationTypeWithdraw {
		statements, err := s.statementRepo.GetStatementsByUserID(ctx, txExecutor, userID)
		if err != nil {
			return nil, fmt.Errorf("create statement: failed to fetch statements for user %s: %w", userID, err)
		}
		if amount.GreaterThan(balanceOf(statements)) {
			return nil, util.ErrInsufficientFunds
		}
	}

	statement := domain.NewStatement(userID, opType, amount, description)
	if err := s.statementRepo.CreateStatement(ctx, txExecutor, statement); err != nil {
		return nil, fmt.Errorf("create statement: failed to persist statement: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("create statement: failed to commit transaction: %w", err)
	}

	return statement, nil
}

// GetBalance returns the full statement history for a user in creation order
// along with the balance derived from it. A user with no statements gets an
// empty history and a zero balance.
func (s *statementService) GetBalance(ctx context.Context, userID string) ([]domain.Statement, decimal.Decimal, error) {
	if _, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, userID); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, decimal.Zero, util.ErrUserNotFound
		}
		return nil, decimal.Zero, fmt.Errorf("get balance: failed to get user %s: %w", userID, err)
	}

	statements, err := s.statementRepo.GetStatementsByUserID(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("get balance: failed to fetch statements for user %s: %w", userID, err)
	}

	return statements, balanceOf(statements), nil
}

// GetStatementOperation returns a single statement if and only if it belongs
// to the given user. A statement owned by a different user is reported the
// same way as a missing one, so callers cannot probe for other users' records.
func (s *statementService) GetStatementOperation(ctx context.Context, userID, statementID string) (*domain.Statement, error) {
	if _, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, userID); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("get statement operation: failed to get user %s: %w", userID, err)
	}

	statement, err := s.statementRepo.GetStatementByID(ctx, s.dbExecutor, statementID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrStatementNotFound
		}
		return nil, fmt.Errorf("get statement operation: failed to get statement %s: %w", statementID, err)
	}
	if statement.UserID != userID {
		return nil, util.ErrStatementNotFound
	}

	return statement, nil
}
