package postgres

import (
	"context"
	"time"

	"avo/internal/domain/entity"
	domainerrors "avo/internal/domain/errors"
	"avo/internal/domain/repository"
	"avo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// couponRepository implements the repository.CouponRepository interface using GORM.
type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{db: db}
}

// FindByID retrieves a single coupon by its unique ID.
func (repo *couponRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	var couponM model.CouponModel
	if err := repo.db.WithContext(ctx).First(&couponM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by id")
	}

	return toCouponDomain(&couponM), nil
}

// FindActiveByUserAndOffer retrieves the coupon holding the user's redemption
// slot for an offer, if any. Exhausted coupons still hold the slot until their
// window passes; only EXPIRED frees it.
func (repo *couponRepository) FindActiveByUserAndOffer(ctx context.Context, userID, offerID uuid.UUID) (*entity.Coupon, error) {
	var couponM model.CouponModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND offer_id = ? AND status IN ?", userID, offerID, heldStatuses()).
		First(&couponM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find active coupon")
	}

	return toCouponDomain(&couponM), nil
}

// Create persists a new coupon. A partial unique index over (user_id, offer_id)
// for non-expired statuses makes concurrent duplicate redemptions fail here.
func (repo *couponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	couponM := fromCouponDomain(coupon)

	if err := repo.db.WithContext(ctx).Create(couponM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCoupon
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid offer or user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create coupon")
	}

	coupon.ID = couponM.ID
	coupon.UpdatedAt = couponM.UpdatedAt

	return nil
}

// MarkExpired transitions a coupon to EXPIRED.
func (repo *couponRepository) MarkExpired(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(entity.CouponStatusExpired),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark coupon expired")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCouponNotFound
	}

	return nil
}

// ConsumeUse atomically increments the coupon's use count. The conditional
// WHERE clause is the whole concurrency story: two racing calls both run
// 'uses = uses + 1 WHERE uses < usage_limit', and the row lock serializes
// them so the count can never pass the limit.
func (repo *couponRepository) ConsumeUse(ctx context.Context, id uuid.UUID) (int, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("id = ? AND uses < usage_limit", id).
		UpdateColumn("uses", gorm.Expr("uses + 1"))
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to consume coupon use")
	}

	if result.RowsAffected == 0 {
		// Either the coupon does not exist or it has no uses left.
		var count int64
		if err := repo.db.WithContext(ctx).Model(&model.CouponModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return 0, errors.Wrap(err, "failed to check coupon existence")
		}
		if count == 0 {
			return 0, repository.ErrCouponNotFound
		}

		return 0, repository.ErrNoUsesLeft
	}

	var couponM model.CouponModel
	if err := repo.db.WithContext(ctx).First(&couponM, "id = ?", id).Error; err != nil {
		return 0, errors.Wrap(err, "failed to reload coupon after use")
	}

	// Move the status forward to match the new count.
	newStatus := entity.StatusForUses(couponM.Uses, couponM.UsageLimit)
	err := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(newStatus),
			"updated_at": time.Now(),
		}).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to update coupon status")
	}

	return couponM.Uses, nil
}

// CreateUsage appends a consumption audit record.
func (repo *couponRepository) CreateUsage(ctx context.Context, usage *entity.CouponUsage) error {
	usageM := &model.CouponUsageModel{
		ID:       usage.ID,
		CouponID: usage.CouponID,
		UsedBy:   usage.UsedBy,
		UsedAt:   usage.UsedAt,
	}

	if err := repo.db.WithContext(ctx).Create(usageM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create coupon usage record")
	}

	usage.ID = usageM.ID

	return nil
}

// couponUsageRow is the scan target for the coupon+offer join.
type couponUsageRow struct {
	model.CouponModel
	OfferTitle      string
	OfferBusinessID uuid.UUID
}

// ListWithUsageByUser returns all of the user's coupons joined with offer terms, newest first.
func (repo *couponRepository) ListWithUsageByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CouponWithUsage, error) {
	var rows []*couponUsageRow
	err := repo.db.WithContext(ctx).
		Table("coupons").
		Select("coupons.*, offers.title AS offer_title, offers.business_id AS offer_business_id").
		Joins("JOIN offers ON offers.id = coupons.offer_id").
		Where("coupons.user_id = ?", userID).
		Order("coupons.redeemed_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list coupons with usage")
	}

	return toCouponWithUsageSlice(rows), nil
}

// ListValidByUser returns the user's active coupons that are still inside
// both their own expiry and the offer's validity window.
func (repo *couponRepository) ListValidByUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]*entity.CouponWithUsage, error) {
	var rows []*couponUsageRow
	err := repo.db.WithContext(ctx).
		Table("coupons").
		Select("coupons.*, offers.title AS offer_title, offers.business_id AS offer_business_id").
		Joins("JOIN offers ON offers.id = coupons.offer_id").
		Where("coupons.user_id = ? AND coupons.status IN ?", userID, usableStatuses()).
		Where("coupons.expires_at > ? AND offers.valid_until > ? AND offers.deleted_at IS NULL", now, now).
		Order("coupons.expires_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list valid coupons")
	}

	return toCouponWithUsageSlice(rows), nil
}

// SummarizeUsageByUser aggregates the user's consumption per offer.
func (repo *couponRepository) SummarizeUsageByUser(ctx context.Context, userID uuid.UUID) ([]*entity.OfferUsageSummary, error) {
	return repo.summarizeUsage(ctx, "coupons.user_id = ?", userID)
}

// SummarizeUsageByBusiness aggregates consumption per offer across all
// offers owned by a business.
func (repo *couponRepository) SummarizeUsageByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.OfferUsageSummary, error) {
	return repo.summarizeUsage(ctx, "offers.business_id = ?", businessID)
}

func (repo *couponRepository) summarizeUsage(ctx context.Context, cond string, arg any) ([]*entity.OfferUsageSummary, error) {
	type summaryRow struct {
		OfferID       uuid.UUID
		OfferTitle    string
		CouponsIssued int
		TotalUses     int
	}

	var rows []*summaryRow
	err := repo.db.WithContext(ctx).
		Table("coupons").
		Select("offers.id AS offer_id, offers.title AS offer_title, COUNT(coupons.id) AS coupons_issued, COALESCE(SUM(coupons.uses), 0) AS total_uses").
		Joins("JOIN offers ON offers.id = coupons.offer_id").
		Where(cond, arg).
		Group("offers.id, offers.title").
		Order("offers.title ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize coupon usage")
	}

	summaries := make([]*entity.OfferUsageSummary, 0, len(rows))
	for _, r := range rows {
		summaries = append(summaries, &entity.OfferUsageSummary{
			OfferID:       r.OfferID,
			OfferTitle:    r.OfferTitle,
			CouponsIssued: r.CouponsIssued,
			TotalUses:     r.TotalUses,
		})
	}

	return summaries, nil
}

// ListEmployeeAudit joins a business's employees to the coupon uses they recorded.
func (repo *couponRepository) ListEmployeeAudit(ctx context.Context, businessID uuid.UUID) ([]*entity.EmployeeCouponAudit, error) {
	type auditRow struct {
		EmployeeID   uuid.UUID
		EmployeeName string
		CouponID     uuid.UUID
		OfferTitle   string
		UsedAt       time.Time
	}

	var rows []*auditRow
	err := repo.db.WithContext(ctx).
		Table("coupon_usages").
		Select("users.id AS employee_id, users.name AS employee_name, coupon_usages.coupon_id, offers.title AS offer_title, coupon_usages.used_at").
		Joins("JOIN users ON users.id = coupon_usages.used_by").
		Joins("JOIN coupons ON coupons.id = coupon_usages.coupon_id").
		Joins("JOIN offers ON offers.id = coupons.offer_id").
		Where("users.business_id = ?", businessID).
		Order("coupon_usages.used_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list employee coupon audit")
	}

	audits := make([]*entity.EmployeeCouponAudit, 0, len(rows))
	for _, r := range rows {
		audits = append(audits, &entity.EmployeeCouponAudit{
			EmployeeID:   r.EmployeeID,
			EmployeeName: r.EmployeeName,
			CouponID:     r.CouponID,
			OfferTitle:   r.OfferTitle,
			UsedAt:       r.UsedAt,
		})
	}

	return audits, nil
}

// usableStatuses are the statuses with consumption slots remaining.
func usableStatuses() []string {
	return []string{
		string(entity.CouponStatusRedeemed),
		string(entity.CouponStatusPartiallyUsed),
	}
}

// heldStatuses additionally include EXHAUSTED: a fully consumed coupon keeps
// blocking re-redemption of the same offer until its window passes.
func heldStatuses() []string {
	return append(usableStatuses(), string(entity.CouponStatusExhausted))
}

func toCouponWithUsageSlice(rows []*couponUsageRow) []*entity.CouponWithUsage {
	result := make([]*entity.CouponWithUsage, 0, len(rows))
	for _, r := range rows {
		coupon := toCouponDomain(&r.CouponModel)
		result = append(result, &entity.CouponWithUsage{
			Coupon:     *coupon,
			OfferTitle: r.OfferTitle,
			BusinessID: r.OfferBusinessID,
			UsesLeft:   coupon.UsageLimit - coupon.Uses,
		})
	}

	return result
}

// toCouponDomain converts a GORM CouponModel to a domain Coupon entity.
func toCouponDomain(data *model.CouponModel) *entity.Coupon {
	if data == nil {
		return nil
	}

	return &entity.Coupon{
		ID:         data.ID,
		OfferID:    data.OfferID,
		UserID:     data.UserID,
		Status:     entity.CouponStatus(data.Status),
		Uses:       data.Uses,
		UsageLimit: data.UsageLimit,
		ExpiresAt:  data.ExpiresAt,
		RedeemedAt: data.RedeemedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromCouponDomain converts a domain Coupon entity to a GORM CouponModel.
func fromCouponDomain(data *entity.Coupon) *model.CouponModel {
	if data == nil {
		return nil
	}

	return &model.CouponModel{
		ID:         data.ID,
		OfferID:    data.OfferID,
		UserID:     data.UserID,
		Status:     string(data.Status),
		Uses:       data.Uses,
		UsageLimit: data.UsageLimit,
		ExpiresAt:  data.ExpiresAt,
		RedeemedAt: data.RedeemedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
