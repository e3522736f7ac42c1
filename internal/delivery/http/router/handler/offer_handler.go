package handler

import (
	"log/slog"
	"net/http"
	"time"

	"avo/internal/delivery/http/middleware"
	"avo/internal/delivery/http/response"
	"avo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OfferHandler holds dependencies for offer catalog handlers.
type OfferHandler struct {
	uc     usecase.OfferUsecase
	logger *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler, injected by Fx.
func NewOfferHandler(uc usecase.OfferUsecase, logger *slog.Logger) *OfferHandler {
	return &OfferHandler{
		uc:     uc,
		logger: logger,
	}
}

type saveOfferRequest struct {
	OfferID         *uuid.UUID `json:"offer_id"`
	Title           string     `json:"title" validate:"required"`
	Description     string     `json:"description"`
	DiscountPercent int        `json:"discount_percent" validate:"required,min=1,max=100"`
	UsageLimit      int        `json:"usage_limit" validate:"required,min=1"`
	ValidFrom       time.Time  `json:"valid_from" validate:"required"`
	ValidUntil      time.Time  `json:"valid_until" validate:"required"`
}

// SaveOffer creates or updates an offer for the admin's business.
func (h *OfferHandler) SaveOffer(c echo.Context) error {
	adminID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var req saveOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	offer, err := h.uc.SaveOffer(c.Request().Context(), adminID, &usecase.SaveOfferInput{
		OfferID:         req.OfferID,
		Title:           req.Title,
		Description:     req.Description,
		DiscountPercent: req.DiscountPercent,
		UsageLimit:      req.UsageLimit,
		ValidFrom:       req.ValidFrom,
		ValidUntil:      req.ValidUntil,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	status := http.StatusCreated
	if req.OfferID != nil {
		status = http.StatusOK
	}

	return response.Success(c, status, toOfferView(offer), "Offer saved")
}

// DeleteOffer soft-deletes an offer owned by the admin.
func (h *OfferHandler) DeleteOffer(c echo.Context) error {
	adminID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	offerID, err := uuid.Parse(c.QueryParam("offerId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid or missing offerId query parameter")
	}

	if err := h.uc.DeleteOffer(c.Request().Context(), adminID, offerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Offer deleted")
}

type publishOfferRequest struct {
	OfferID   uuid.UUID `json:"offer_id" validate:"required"`
	Published bool      `json:"published"`
}

// PublishOffer toggles an offer's published state.
func (h *OfferHandler) PublishOffer(c echo.Context) error {
	adminID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var req publishOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid publish input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	offer, err := h.uc.SetOfferPublished(c.Request().Context(), adminID, req.OfferID, req.Published)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOfferView(offer), "Offer publication updated")
}

// ListPublishedOffers returns the public offer catalogue.
func (h *OfferHandler) ListPublishedOffers(c echo.Context) error {
	offers, err := h.uc.ListPublishedOffers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOfferViews(offers), "Published offers retrieved")
}

// ListBusinessOffers returns every offer of the admin's business.
func (h *OfferHandler) ListBusinessOffers(c echo.Context) error {
	adminID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	offers, err := h.uc.ListBusinessOffers(c.Request().Context(), adminID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOfferViews(offers), "Business offers retrieved")
}
