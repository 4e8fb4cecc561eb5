// internal/api/handler/statement.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"finledger/internal/api/types"
	"finledger/internal/auth"
	"finledger/internal/domain"
	"finledger/internal/service"
	"finledger/internal/util"
)

// StatementHandler handles HTTP requests related to statement operations.
type StatementHandler struct {
	service service.StatementService
	logger  *slog.Logger
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(svc service.StatementService, logger *slog.Logger) *StatementHandler {
	return &StatementHandler{
		service: svc,
		logger:  logger,
	}
}

// CreateStatementRequest represents the request body for deposit and withdraw.
type CreateStatementRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

func (h *StatementHandler) createStatement(w http.ResponseWriter, r *http.Request, opType domain.OperationType) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(w, h.logger, util.ErrUserNotFound)
		return
	}

	var req CreateStatementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	// Basic validation
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if req.Description == "" {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	statement, err := h.service.CreateStatement(r.Context(), userID, opType, req.Amount, req.Description)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusCreated, types.NewStatementResponse(statement))
}

// Deposit handles the deposit request.
// POST /api/v1/statements/deposit
func (h *StatementHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.createStatement(w, r, domain.OperationTypeDeposit)
}

// Withdraw handles the withdraw request.
// POST /api/v1/statements/withdraw
func (h *StatementHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.createStatement(w, r, domain.OperationTypeWithdraw)
}

// GetBalance handles the balance request.
// GET /api/v1/statements/balance
func (h *StatementHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(w, h.logger, util.ErrUserNotFound)
		return
	}

	statements, balance, err := h.service.GetBalance(r.Context(), userID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, types.NewBalanceResponse(statements, balance))
}

// GetStatementOperation handles the single-statement lookup request.
// GET /api/v1/statements/{statementID}
func (h *StatementHandler) GetStatementOperation(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(w, h.logger, util.ErrUserNotFound)
		return
	}

	statementID := chi.URLParam(r, "statementID")
	if statementID == "" {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	statement, err := h.service.GetStatementOperation(r.Context(), userID, statementID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, types.NewStatementResponse(statement))
}
