// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"avo/internal/delivery/http/middleware"
	"avo/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	IdentityHandler     *handler.IdentityHandler
	BusinessHandler     *handler.BusinessHandler
	OfferHandler        *handler.OfferHandler
	CouponHandler       *handler.CouponHandler
	TransactionHandler  *handler.TransactionHandler
	MediaHandler        *handler.MediaHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application. Route names
// keep the public API the clients already consume.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	avo := e.Group("/avo")
	avo.Use(r.params.RequestIDMiddleware.Process)

	authenticate := r.params.AuthMiddleware.Authenticate
	adminOnly := r.params.AuthMiddleware.RequireBusinessAdmin

	// Account and session routes, no auth required.
	avo.POST("/SignUp", r.params.IdentityHandler.SignUp)
	avo.POST("/resend-otp", r.params.IdentityHandler.ResendOTP)
	avo.POST("/verify-otp", r.params.IdentityHandler.VerifyOTP)
	avo.POST("/signin", r.params.IdentityHandler.SignIn)
	avo.POST("/forgot-password", r.params.IdentityHandler.ForgotPassword)
	avo.POST("/reset-password", r.params.IdentityHandler.ResetPassword)
	avo.POST("/google_register", r.params.IdentityHandler.GoogleRegister)
	avo.POST("/google_signIn", r.params.IdentityHandler.GoogleSignIn)

	// Authenticated user routes.
	avo.PUT("/update-profile", r.params.IdentityHandler.UpdateProfile, authenticate)
	avo.GET("/user-details", r.params.BusinessHandler.GetUserDetails, authenticate)
	avo.GET("/publish-offer-list", r.params.OfferHandler.ListPublishedOffers, authenticate)
	avo.POST("/redeem-coupon", r.params.CouponHandler.RedeemCoupon, authenticate)
	avo.GET("/redeemed-coupons", r.params.CouponHandler.GetRedeemedCoupons, authenticate)
	avo.GET("/valid-coupons", r.params.CouponHandler.GetValidCoupons, authenticate)
	avo.GET("/coupon-usage", r.params.CouponHandler.GetCouponUsage, authenticate)
	avo.GET("/coupon-qr", r.params.CouponHandler.CouponQR, authenticate)
	avo.POST("/upload-image", r.params.MediaHandler.UploadImage, authenticate)

	// Consumption is open to the whole roster: the usecase itself scopes the
	// coupon to the business the consuming account belongs to.
	avo.POST("/use-coupon", r.params.CouponHandler.UseCoupon, authenticate)

	// Transaction log routes.
	avo.POST("/transactions", r.params.TransactionHandler.CreateTransaction, authenticate)
	avo.GET("/transactions_Details", r.params.TransactionHandler.GetTransactions, authenticate)
	avo.PUT("/update_transactions", r.params.TransactionHandler.UpdateTransaction, authenticate)

	// Business-admin routes.
	avo.GET("/user-details-byId", r.params.BusinessHandler.GetUserDetailsByID, authenticate, adminOnly)
	avo.GET("/business-details", r.params.BusinessHandler.GetBusinessDetails, authenticate, adminOnly)
	avo.POST("/update-business", r.params.BusinessHandler.UpdateBusiness, authenticate, adminOnly)
	avo.GET("/employee-list", r.params.BusinessHandler.ListEmployees, authenticate, adminOnly)
	avo.POST("/add-employee", r.params.BusinessHandler.AddEmployee, authenticate, adminOnly)
	avo.PUT("/update-employee", r.params.BusinessHandler.UpdateEmployee, authenticate, adminOnly)
	avo.DELETE("/delete-employees", r.params.BusinessHandler.DeleteEmployees, authenticate, adminOnly)
	avo.POST("/create-offer", r.params.OfferHandler.SaveOffer, authenticate, adminOnly)
	avo.DELETE("/delete-offer", r.params.OfferHandler.DeleteOffer, authenticate, adminOnly)
	avo.POST("/publish-offer", r.params.OfferHandler.PublishOffer, authenticate, adminOnly)
	avo.GET("/business-offer-list", r.params.OfferHandler.ListBusinessOffers, authenticate, adminOnly)
	avo.GET("/coupon-usage-business", r.params.CouponHandler.GetBusinessCouponUsage, authenticate, adminOnly)
	avo.GET("/employee-history", r.params.CouponHandler.GetEmployeeCouponHistory, authenticate, adminOnly)
}
