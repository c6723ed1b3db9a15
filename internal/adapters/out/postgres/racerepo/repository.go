package racerepo

import (
	"context"
	"errors"

	"forwarding/internal/adapters/out/postgres/pgerr"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/race"
	"forwarding/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRaceRepository implements ports.RaceRepository using GORM.
type GormRaceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormRaceRepository(db *gorm.DB, tracker aggregateTracker) *GormRaceRepository {
	return &GormRaceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a race. A taken name is reported as errs.ErrObjectAlreadyExists.
func (r *GormRaceRepository) Add(ctx context.Context, aggregate *race.Race) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.AlreadyExists(err,
			pgerr.UniqueKey{Constraint: "idx_races_name", Param: "race name", Value: dto.Name},
			pgerr.UniqueKey{Constraint: "races_pkey", Param: "raceID", Value: dto.ID.String()},
		)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get loads the race and the identifiers of the packages sent with it.
func (r *GormRaceRepository) Get(ctx context.Context, id kernel.UUID) (*race.Race, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)

	var dto RaceDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("raceID", id.String())
		}
		return nil, err
	}

	var packageIDs []uuid.UUID
	if err := db.Table("packages").
		Where("race_id = ?", dto.ID).
		Order("id").
		Pluck("id", &packageIDs).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, packageIDs)
}

func (r *GormRaceRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&RaceDTO{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
