package handler

import (
	"log/slog"
	"net/http"

	"avo/internal/delivery/http/middleware"
	"avo/internal/delivery/http/response"
	"avo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CouponHandler holds dependencies for coupon lifecycle handlers.
type CouponHandler struct {
	uc     usecase.CouponUsecase
	logger *slog.Logger
}

// NewCouponHandler is the constructor for CouponHandler, injected by Fx.
func NewCouponHandler(uc usecase.CouponUsecase, logger *slog.Logger) *CouponHandler {
	return &CouponHandler{
		uc:     uc,
		logger: logger,
	}
}

type redeemCouponRequest struct {
	OfferID uuid.UUID `json:"offer_id" validate:"required"`
}

// RedeemCoupon claims an offer for the authenticated user.
func (h *CouponHandler) RedeemCoupon(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var req redeemCouponRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid redeem input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	coupon, err := h.uc.RedeemCoupon(c.Request().Context(), userID, req.OfferID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCouponView(coupon), "Coupon redeemed")
}

type useCouponRequest struct {
	CouponID uuid.UUID `json:"coupon_id" validate:"required"`
}

// UseCoupon consumes one use of a coupon on behalf of the admin's business.
func (h *CouponHandler) UseCoupon(c echo.Context) error {
	consumerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var req useCouponRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid use input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UseCoupon(c.Request().Context(), consumerID, req.CouponID)
	if err != nil {
		return errors.WithStack(err)
	}

	data := struct {
		Coupon   *couponView `json:"coupon"`
		UsesLeft int         `json:"uses_left"`
	}{
		Coupon:   toCouponView(output.Coupon),
		UsesLeft: output.UsesLeft,
	}

	return response.Success(c, http.StatusOK, data, "Coupon use recorded")
}

// GetRedeemedCoupons lists the user's coupons with their usage state.
func (h *CouponHandler) GetRedeemedCoupons(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	coupons, err := h.uc.GetRedeemedCoupons(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCouponWithUsageViews(coupons), "Redeemed coupons retrieved")
}

// GetValidCoupons lists only the user's currently usable coupons.
func (h *CouponHandler) GetValidCoupons(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	coupons, err := h.uc.GetValidCoupons(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCouponWithUsageViews(coupons), "Valid coupons retrieved")
}

// GetCouponUsage aggregates the user's consumption per offer.
func (h *CouponHandler) GetCouponUsage(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	summaries, err := h.uc.GetCouponUsage(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUsageSummaryViews(summaries), "Coupon usage retrieved")
}

// GetBusinessCouponUsage aggregates consumption across the admin's offers.
func (h *CouponHandler) GetBusinessCouponUsage(c echo.Context) error {
	adminID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	summaries, err := h.uc.GetBusinessCouponUsage(c.Request().Context(), adminID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUsageSummaryViews(summaries), "Business coupon usage retrieved")
}

// GetEmployeeCouponHistory returns the per-employee consumption audit.
func (h *CouponHandler) GetEmployeeCouponHistory(c echo.Context) error {
	adminID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	audit, err := h.uc.GetEmployeeCouponHistory(c.Request().Context(), adminID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toEmployeeAuditViews(audit), "Employee coupon history retrieved")
}

// CouponQR streams the PNG QR code for one of the user's coupons.
func (h *CouponHandler) CouponQR(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	couponID, err := uuid.Parse(c.QueryParam("couponId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid or missing couponId query parameter")
	}

	png, err := h.uc.CouponQR(c.Request().Context(), userID, couponID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
