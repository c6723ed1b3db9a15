package packagerepo

import (
	"context"
	"errors"

	"forwarding/internal/adapters/out/postgres/pgerr"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPackageRepository implements ports.PackageRepository using GORM.
type GormPackageRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormPackageRepository(db *gorm.DB, tracker aggregateTracker) *GormPackageRepository {
	return &GormPackageRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the package together with its status history.
//
// Parameters:
//   - ctx: request context; the insert runs in the transaction of the unit of work
//   - aggregate: a constructed package that is not stored yet
//
// Returns:
//   - errs.ErrObjectAlreadyExists naming trackingCode or packageID when either is taken
//   - the validation error of an unconstructed aggregate
//   - a driver error otherwise
func (r *GormPackageRepository) Add(ctx context.Context, aggregate *parcel.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.AlreadyExists(err,
			pgerr.UniqueKey{Constraint: "idx_packages_tracking_code", Param: "trackingCode", Value: dto.TrackingCode},
			pgerr.UniqueKey{Constraint: "packages_pkey", Param: "packageID", Value: dto.ID.String()},
		)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the mutable columns when the stored version still matches the
// loaded one, then appends status records that are not stored yet.
func (r *GormPackageRepository) Update(ctx context.Context, aggregate *parcel.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&PackageDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"length":        dto.Measurements.Length,
			"width":         dto.Measurements.Width,
			"height":        dto.Measurements.Height,
			"weight_grams":  dto.Measurements.WeightGrams,
			"price_per_kg":  dto.Measurements.PricePerKg,
			"is_paid":       dto.IsPaid,
			"is_prohibited": dto.IsProhibited,
			"race_id":       dto.RaceID,
			"status":        dto.Status,
			"version":       gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause("package", errors.New(aggregate.TrackingCode().String()))
	}

	if len(dto.Statuses) > 0 {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.Statuses).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPackageRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Package, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.first(ctx, "packageID", id.String(), "id = ?", id.Bytes())
}

func (r *GormPackageRepository) GetByTrackingCode(ctx context.Context, code kernel.TrackingCode) (*parcel.Package, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	return r.first(ctx, "trackingCode", code.String(), "tracking_code = ?", code.String())
}

func (r *GormPackageRepository) first(ctx context.Context, param, value string, query string, args ...any) (*parcel.Package, error) {
	var dto PackageDTO
	err := r.db.WithContext(ctx).
		Preload("Statuses", func(db *gorm.DB) *gorm.DB {
			return db.Order("status")
		}).
		Where(query, args...).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, value)
		}
		return nil, err
	}

	return toDomain(dto)
}
