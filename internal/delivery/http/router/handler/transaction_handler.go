package handler

import (
	"log/slog"
	"net/http"
	"time"

	"avo/internal/delivery/http/middleware"
	"avo/internal/delivery/http/response"
	"avo/internal/domain/entity"
	"avo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TransactionHandler holds dependencies for transaction log handlers.
type TransactionHandler struct {
	uc     usecase.TransactionUsecase
	logger *slog.Logger
}

// NewTransactionHandler is the constructor for TransactionHandler, injected by Fx.
func NewTransactionHandler(uc usecase.TransactionUsecase, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{
		uc:     uc,
		logger: logger,
	}
}

type createTransactionRequest struct {
	BusinessID *uuid.UUID `json:"business_id"`
	CouponID   *uuid.UUID `json:"coupon_id"`
	Amount     float64    `json:"amount" validate:"min=0"`
	Status     string     `json:"status" validate:"omitempty,oneof=pending completed failed"`
	Note       string     `json:"note"`
}

// CreateTransaction appends a record attributed to the authenticated user.
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var req createTransactionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transaction input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	txn, err := h.uc.CreateTransaction(c.Request().Context(), &usecase.CreateTransactionInput{
		UserID:     userID,
		BusinessID: req.BusinessID,
		CouponID:   req.CouponID,
		Amount:     req.Amount,
		Status:     entity.TransactionStatus(req.Status),
		Note:       req.Note,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toTransactionView(txn), "Transaction recorded")
}

// GetTransactions returns either a single record by id or a filtered listing.
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	if idParam := c.QueryParam("id"); idParam != "" {
		id, err := uuid.Parse(idParam)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid id query parameter")
		}

		txn, err := h.uc.GetTransaction(c.Request().Context(), id)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, toTransactionView(txn), "Transaction retrieved")
	}

	input := &usecase.ListTransactionsInput{UserID: &userID}
	if businessParam := c.QueryParam("businessId"); businessParam != "" {
		businessID, err := uuid.Parse(businessParam)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid businessId query parameter")
		}
		input.BusinessID = &businessID
	}

	var err error
	if input.From, err = parseTimeParam(c.QueryParam("from")); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid from query parameter, expected RFC 3339")
	}
	if input.To, err = parseTimeParam(c.QueryParam("to")); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid to query parameter, expected RFC 3339")
	}

	txns, err := h.uc.ListTransactions(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTransactionViews(txns), "Transactions retrieved")
}

type updateTransactionRequest struct {
	TransactionID uuid.UUID `json:"transaction_id" validate:"required"`
	Amount        *float64  `json:"amount"`
	Status        *string   `json:"status" validate:"omitempty,oneof=pending completed failed"`
	Note          *string   `json:"note"`
}

// UpdateTransaction applies a partial correction to an existing record.
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	if _, ok := middleware.UserID(c); !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var req updateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transaction input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateTransactionInput{
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		Note:          req.Note,
	}
	if req.Status != nil {
		status := entity.TransactionStatus(*req.Status)
		input.Status = &status
	}

	txn, err := h.uc.UpdateTransaction(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTransactionView(txn), "Transaction updated")
}

func parseTimeParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}

	return &t, nil
}
