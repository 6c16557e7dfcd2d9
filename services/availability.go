package services

import (
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"clinic_availability_go/config"
	"clinic_availability_go/services/availability"
)

// Availability is the process-wide resolver, set by InitAvailability
var Availability *availability.Resolver

// ConstraintCache is non-nil when snapshot caching is enabled
var ConstraintCache *CachedConstraintFetcher

// AvailabilityOptions configures InitAvailability
type AvailabilityOptions struct {
	Policy       availability.Policy
	CacheEnabled bool
	CacheSize    int
}

// OptionsFromConfig reads the slot policy and cache settings from cfg
func OptionsFromConfig(cfg *config.Config) AvailabilityOptions {
	return AvailabilityOptions{
		Policy: availability.Policy{
			MinSlot:   cfg.MinSlotMinutes,
			Preferred: cfg.PreferredSlotMinutes,
		},
		CacheEnabled: cfg.CacheEnabled,
		CacheSize:    cfg.CacheSize,
	}
}

// NewAvailabilityResolver builds a resolver backed by the database, with an
// optional snapshot cache in front of it
func NewAvailabilityResolver(database *gorm.DB, opts AvailabilityOptions, logger zerolog.Logger) (*availability.Resolver, *CachedConstraintFetcher, error) {
	var fetcher availability.ConstraintFetcher = NewConstraintStore(database)

	var cache *CachedConstraintFetcher
	if opts.CacheEnabled {
		var err error
		cache, err = NewCachedConstraintFetcher(fetcher, opts.CacheSize, logger)
		if err != nil {
			return nil, nil, err
		}
		fetcher = cache
	}

	resolver, err := availability.NewResolver(fetcher, opts.Policy, logger)
	if err != nil {
		return nil, nil, err
	}
	return resolver, cache, nil
}

// InitAvailability sets the package-level resolver and cache
func InitAvailability(database *gorm.DB, opts AvailabilityOptions, logger zerolog.Logger) error {
	resolver, cache, err := NewAvailabilityResolver(database, opts, logger)
	if err != nil {
		return err
	}
	Availability = resolver
	ConstraintCache = cache
	return nil
}

// invalidateConstraints must follow every write that changes what a
// practitioner's availability depends on
func invalidateConstraints(practitionerID string) {
	if ConstraintCache != nil {
		ConstraintCache.Invalidate(practitionerID)
	}
}

// invalidateAllConstraints follows organization-wide writes
func invalidateAllConstraints() {
	if ConstraintCache != nil {
		ConstraintCache.Purge()
	}
}
