package models

import "time"

// AvailabilityConfig is the owner-authored schedule configuration for a
// court (or a sub-court override). All times are stored normalized to
// 24-hour "HH:00" strings; write paths normalize before persisting.
type AvailabilityConfig struct {
	// MaxAdvanceBookingDays limits how far ahead a date may be booked.
	// Nil means unlimited.
	MaxAdvanceBookingDays *int `bson:"maxAdvanceBookingDays,omitempty" json:"maxAdvanceBookingDays,omitempty"`

	// AlwaysBlockedTimes are blocked on every calendar date.
	AlwaysBlockedTimes []string `bson:"alwaysBlockedTimes,omitempty" json:"alwaysBlockedTimes,omitempty"`

	// AlwaysBlockedTimesByDayOfWeek maps "0" (Sunday) through "6"
	// (Saturday) to recurring weekly blocks.
	AlwaysBlockedTimesByDayOfWeek map[string][]string `bson:"alwaysBlockedTimesByDayOfWeek,omitempty" json:"alwaysBlockedTimesByDayOfWeek,omitempty"`

	// BlockedTimesByDate maps "YYYY-MM-DD" dates to one-off blocks.
	BlockedTimesByDate map[string][]string `bson:"blockedTimesByDate,omitempty" json:"blockedTimesByDate,omitempty"`
}

// SubCourt is one playable court inside a multi-court listing.
// A nil Availability inherits the listing-level config.
type SubCourt struct {
	ID           string              `bson:"id" json:"id"`
	Name         string              `bson:"name" json:"name"`
	Availability *AvailabilityConfig `bson:"availability,omitempty" json:"availability,omitempty"`
}

// Court is a listed facility owned by a single owner account.
type Court struct {
	ID           string             `bson:"id" json:"id"`
	OwnerID      string             `bson:"owner_id" json:"ownerId"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Address      string             `bson:"address,omitempty" json:"address,omitempty"`
	City         string             `bson:"city,omitempty" json:"city,omitempty"`
	Surface      string             `bson:"surface,omitempty" json:"surface,omitempty"` // e.g. "clay", "hard", "grass"
	Indoor       bool               `bson:"indoor" json:"indoor"`
	PricePerHour float64            `bson:"price_per_hour" json:"pricePerHour"`
	Currency     string             `bson:"currency" json:"currency"`
	Photos       []string           `bson:"photos,omitempty" json:"photos,omitempty"` // storage public IDs
	Availability AvailabilityConfig `bson:"availability" json:"availability"`
	SubCourts    []SubCourt         `bson:"sub_courts,omitempty" json:"subCourts,omitempty"`
	Active       bool               `bson:"active" json:"active"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}

// ConfigFor resolves the effective availability config for a sub-court.
// A sub-court with its own config overrides the listing default.
func (c *Court) ConfigFor(subCourtID string) AvailabilityConfig {
	if subCourtID == "" {
		return c.Availability
	}
	for _, sc := range c.SubCourts {
		if sc.ID == subCourtID && sc.Availability != nil {
			return *sc.Availability
		}
	}
	return c.Availability
}

// HasSubCourt reports whether the listing contains the given sub-court.
func (c *Court) HasSubCourt(subCourtID string) bool {
	for _, sc := range c.SubCourts {
		if sc.ID == subCourtID {
			return true
		}
	}
	return false
}
