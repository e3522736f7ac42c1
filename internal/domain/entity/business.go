package entity

import (
	"time"

	"github.com/google/uuid"
)

// Business is a merchant account owned by exactly one business-admin user.
// Offers and employee accounts hang off a business.
type Business struct {
	ID      uuid.UUID
	OwnerID uuid.UUID // The business-admin user who owns this business. Unique.
	Name    string
	Address string
	City    string
	State   string
	Country string
	Pincode string
	Logo    string // Public URL of the business logo, empty when unset.

	CreatedAt time.Time
	UpdatedAt time.Time
}
