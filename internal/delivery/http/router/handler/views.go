package handler

import (
	"time"

	"avo/internal/domain/entity"

	"github.com/google/uuid"
)

// View models returned to clients. Entities are never serialized directly:
// password hashes, OTPs and stored tokens stay out of responses.

type userView struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Number       *string    `json:"number,omitempty"`
	Address      string     `json:"address,omitempty"`
	ProfilePhoto string     `json:"profile_photo,omitempty"`
	Role         string     `json:"role"`
	IsVerified   bool       `json:"is_verified"`
	BusinessID   *uuid.UUID `json:"business_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func toUserView(user *entity.User) *userView {
	if user == nil {
		return nil
	}

	return &userView{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Number:       user.Number,
		Address:      user.Address,
		ProfilePhoto: user.ProfilePhoto,
		Role:         user.Role.String(),
		IsVerified:   user.IsVerified,
		BusinessID:   user.BusinessID,
		CreatedAt:    user.CreatedAt,
	}
}

func toUserViews(users []*entity.User) []*userView {
	views := make([]*userView, 0, len(users))
	for _, user := range users {
		views = append(views, toUserView(user))
	}

	return views
}

type businessView struct {
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"owner_id"`
	Name    string    `json:"name"`
	Address string    `json:"address,omitempty"`
	City    string    `json:"city,omitempty"`
	State   string    `json:"state,omitempty"`
	Country string    `json:"country,omitempty"`
	Pincode string    `json:"pincode,omitempty"`
	Logo    string    `json:"logo,omitempty"`
}

func toBusinessView(business *entity.Business) *businessView {
	if business == nil {
		return nil
	}

	return &businessView{
		ID:      business.ID,
		OwnerID: business.OwnerID,
		Name:    business.Name,
		Address: business.Address,
		City:    business.City,
		State:   business.State,
		Country: business.Country,
		Pincode: business.Pincode,
		Logo:    business.Logo,
	}
}

type offerView struct {
	ID              uuid.UUID `json:"id"`
	BusinessID      uuid.UUID `json:"business_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	DiscountPercent int       `json:"discount_percent"`
	UsageLimit      int       `json:"usage_limit"`
	ValidFrom       time.Time `json:"valid_from"`
	ValidUntil      time.Time `json:"valid_until"`
	Published       bool      `json:"published"`
}

func toOfferView(offer *entity.Offer) *offerView {
	if offer == nil {
		return nil
	}

	return &offerView{
		ID:              offer.ID,
		BusinessID:      offer.BusinessID,
		Title:           offer.Title,
		Description:     offer.Description,
		DiscountPercent: offer.DiscountPercent,
		UsageLimit:      offer.UsageLimit,
		ValidFrom:       offer.ValidFrom,
		ValidUntil:      offer.ValidUntil,
		Published:       offer.Published,
	}
}

func toOfferViews(offers []*entity.Offer) []*offerView {
	views := make([]*offerView, 0, len(offers))
	for _, offer := range offers {
		views = append(views, toOfferView(offer))
	}

	return views
}

type couponView struct {
	ID         uuid.UUID `json:"id"`
	OfferID    uuid.UUID `json:"offer_id"`
	UserID     uuid.UUID `json:"user_id"`
	Status     string    `json:"status"`
	Uses       int       `json:"uses"`
	UsageLimit int       `json:"usage_limit"`
	ExpiresAt  time.Time `json:"expires_at"`
	RedeemedAt time.Time `json:"redeemed_at"`
}

func toCouponView(coupon *entity.Coupon) *couponView {
	if coupon == nil {
		return nil
	}

	return &couponView{
		ID:         coupon.ID,
		OfferID:    coupon.OfferID,
		UserID:     coupon.UserID,
		Status:     string(coupon.Status),
		Uses:       coupon.Uses,
		UsageLimit: coupon.UsageLimit,
		ExpiresAt:  coupon.ExpiresAt,
		RedeemedAt: coupon.RedeemedAt,
	}
}

type couponWithUsageView struct {
	couponView

	OfferTitle string    `json:"offer_title"`
	BusinessID uuid.UUID `json:"business_id"`
	UsesLeft   int       `json:"uses_left"`
}

func toCouponWithUsageViews(coupons []*entity.CouponWithUsage) []*couponWithUsageView {
	views := make([]*couponWithUsageView, 0, len(coupons))
	for _, c := range coupons {
		views = append(views, &couponWithUsageView{
			couponView: *toCouponView(&c.Coupon),
			OfferTitle: c.OfferTitle,
			BusinessID: c.BusinessID,
			UsesLeft:   c.UsesLeft,
		})
	}

	return views
}

type usageSummaryView struct {
	OfferID       uuid.UUID `json:"offer_id"`
	OfferTitle    string    `json:"offer_title"`
	CouponsIssued int       `json:"coupons_issued"`
	TotalUses     int       `json:"total_uses"`
}

func toUsageSummaryViews(summaries []*entity.OfferUsageSummary) []*usageSummaryView {
	views := make([]*usageSummaryView, 0, len(summaries))
	for _, s := range summaries {
		views = append(views, &usageSummaryView{
			OfferID:       s.OfferID,
			OfferTitle:    s.OfferTitle,
			CouponsIssued: s.CouponsIssued,
			TotalUses:     s.TotalUses,
		})
	}

	return views
}

type employeeAuditView struct {
	EmployeeID   uuid.UUID `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	CouponID     uuid.UUID `json:"coupon_id"`
	OfferTitle   string    `json:"offer_title"`
	UsedAt       time.Time `json:"used_at"`
}

func toEmployeeAuditViews(audit []*entity.EmployeeCouponAudit) []*employeeAuditView {
	views := make([]*employeeAuditView, 0, len(audit))
	for _, a := range audit {
		views = append(views, &employeeAuditView{
			EmployeeID:   a.EmployeeID,
			EmployeeName: a.EmployeeName,
			CouponID:     a.CouponID,
			OfferTitle:   a.OfferTitle,
			UsedAt:       a.UsedAt,
		})
	}

	return views
}

type transactionView struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	BusinessID *uuid.UUID `json:"business_id,omitempty"`
	CouponID   *uuid.UUID `json:"coupon_id,omitempty"`
	Amount     float64    `json:"amount"`
	Status     string     `json:"status"`
	Note       string     `json:"note,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func toTransactionView(txn *entity.Transaction) *transactionView {
	if txn == nil {
		return nil
	}

	return &transactionView{
		ID:         txn.ID,
		UserID:     txn.UserID,
		BusinessID: txn.BusinessID,
		CouponID:   txn.CouponID,
		Amount:     txn.Amount,
		Status:     string(txn.Status),
		Note:       txn.Note,
		CreatedAt:  txn.CreatedAt,
	}
}

func toTransactionViews(txns []*entity.Transaction) []*transactionView {
	views := make([]*transactionView, 0, len(txns))
	for _, txn := range txns {
		views = append(views, toTransactionView(txn))
	}

	return views
}

type signInView struct {
	Token    string        `json:"token"`
	User     *userView     `json:"user"`
	Business *businessView `json:"business,omitempty"`
}
