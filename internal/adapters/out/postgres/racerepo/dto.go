// Package racerepo persists races. Package membership is not stored on the race
// row; it is derived from packages.race_id.
package racerepo

import (
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/race"

	"github.com/google/uuid"
)

// RaceDTO is a row of the races table.
type RaceDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_races_name"`
	Origin      string    `gorm:"type:varchar(16);not null"`
	Destination string    `gorm:"type:varchar(16);not null"`
	Start       time.Time `gorm:"type:timestamptz;not null"`
	Arrival     time.Time `gorm:"type:timestamptz;not null"`
}

func (RaceDTO) TableName() string {
	return "races"
}

func fromDomain(r *race.Race) RaceDTO {
	return RaceDTO{
		ID:          r.ID().Bytes(),
		Name:        r.Name(),
		Origin:      r.Origin(),
		Destination: r.Destination(),
		Start:       r.Start(),
		Arrival:     r.Arrival(),
	}
}

func toDomain(dto RaceDTO, packageIDs []uuid.UUID) (*race.Race, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(packageIDs))
	for _, raw := range packageIDs {
		packageID, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, packageID)
	}

	return race.RestoreRace(id, dto.Name, dto.Origin, dto.Destination, dto.Start, dto.Arrival, ids)
}
