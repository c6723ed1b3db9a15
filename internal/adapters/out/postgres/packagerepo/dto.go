// Package packagerepo persists the package aggregate and its status history.
// The current status is stored next to the history so the read side can filter on it.
package packagerepo

import (
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// PackageDTO is a row of the packages table.
type PackageDTO struct {
	ID             uuid.UUID            `gorm:"type:uuid;primaryKey"`
	TrackingCode   string               `gorm:"type:varchar(64);not null;uniqueIndex:idx_packages_tracking_code"`
	Category       int                  `gorm:"type:smallint;not null"`
	Description    string               `gorm:"type:varchar(500);not null"`
	WebsiteAddress *string              `gorm:"type:text"`
	RetailPrice    string               `gorm:"type:varchar(32);not null"`
	ItemCount      int                  `gorm:"type:int;not null"`
	HouseDelivery  bool                 `gorm:"not null;default:false"`
	OwnerID        uuid.UUID            `gorm:"type:uuid;not null;index"`
	SenderID       *uuid.UUID           `gorm:"type:uuid"`
	Measurements   MeasurementsDTO      `gorm:"embedded"`
	IsPaid         bool                 `gorm:"not null;default:false"`
	IsProhibited   bool                 `gorm:"not null;default:false"`
	RaceID         *uuid.UUID           `gorm:"type:uuid;index"`
	Status         int                  `gorm:"type:smallint;not null;index"`
	Version        int                  `gorm:"type:int;not null"`
	Statuses       []ReceptionStatusDTO `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`
}

func (PackageDTO) TableName() string {
	return "packages"
}

// MeasurementsDTO holds the warehouse measurements; all columns are NULL before arrival.
type MeasurementsDTO struct {
	Length      *float64 `gorm:"type:double precision"`
	Width       *float64 `gorm:"type:double precision"`
	Height      *float64 `gorm:"type:double precision"`
	WeightGrams *int64   `gorm:"type:bigint"`
	PricePerKg  *string  `gorm:"type:varchar(32)"`
}

// ReceptionStatusDTO is a row of the reception_statuses table. Rows are only inserted.
type ReceptionStatusDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PackageID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_reception_statuses_package_status"`
	Status    int        `gorm:"type:smallint;not null;uniqueIndex:idx_reception_statuses_package_status"`
	StaffID   *uuid.UUID `gorm:"type:uuid"`
	Date      time.Time  `gorm:"type:timestamptz;not null"`
}

func (ReceptionStatusDTO) TableName() string {
	return "reception_statuses"
}

func fromDomain(p *parcel.Package) PackageDTO {
	packageID := p.ID().Bytes()

	statuses := make([]ReceptionStatusDTO, 0, len(p.Statuses()))
	for _, rs := range p.Statuses() {
		statuses = append(statuses, ReceptionStatusDTO{
			ID:        rs.ID().Bytes(),
			PackageID: packageID,
			Status:    int(rs.Status()),
			StaffID:   optionalUUID(rs.StaffID()),
			Date:      rs.Date(),
		})
	}

	var website *string
	if w := p.WebsiteAddress(); w != nil {
		value := w.String()
		website = &value
	}

	var measurements MeasurementsDTO
	if m := p.Measurements(); m != nil {
		length, width, height := m.Dimensions().Length(), m.Dimensions().Width(), m.Dimensions().Height()
		weight := m.WeightGrams()
		rate := m.PricePerKg().String()
		measurements = MeasurementsDTO{
			Length:      &length,
			Width:       &width,
			Height:      &height,
			WeightGrams: &weight,
			PricePerKg:  &rate,
		}
	}

	return PackageDTO{
		ID:             packageID,
		TrackingCode:   p.TrackingCode().String(),
		Category:       int(p.Category()),
		Description:    p.Description(),
		WebsiteAddress: website,
		RetailPrice:    p.RetailPrice().String(),
		ItemCount:      p.ItemCount(),
		HouseDelivery:  p.HouseDelivery(),
		OwnerID:        p.OwnerID().Bytes(),
		SenderID:       optionalUUID(p.SenderID()),
		Measurements:   measurements,
		IsPaid:         p.IsPaid(),
		IsProhibited:   p.IsProhibited(),
		RaceID:         optionalUUID(p.RaceID()),
		Status:         int(p.CurrentStatus()),
		Version:        p.Version(),
		Statuses:       statuses,
	}
}

func toDomain(dto PackageDTO) (*parcel.Package, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingCode, err := kernel.NewTrackingCode(dto.TrackingCode)
	if err != nil {
		return nil, err
	}

	retailPrice, err := kernel.ParseMoney(dto.RetailPrice)
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	senderID, err := restoreOptionalUUID(dto.SenderID)
	if err != nil {
		return nil, err
	}

	raceID, err := restoreOptionalUUID(dto.RaceID)
	if err != nil {
		return nil, err
	}

	var website *kernel.WebAddress
	if dto.WebsiteAddress != nil {
		w, webErr := kernel.NewWebAddress(*dto.WebsiteAddress)
		if webErr != nil {
			return nil, webErr
		}
		website = &w
	}

	measurements, err := measurementsToDomain(dto.Measurements)
	if err != nil {
		return nil, err
	}

	statuses := make([]parcel.ReceptionStatus, 0, len(dto.Statuses))
	for _, rsDTO := range dto.Statuses {
		rs, rsErr := receptionStatusToDomain(rsDTO)
		if rsErr != nil {
			return nil, rsErr
		}
		statuses = append(statuses, rs)
	}

	return parcel.RestorePackage(parcel.RestorePackageParams{
		ID:             id,
		TrackingCode:   trackingCode,
		Category:       parcel.Category(dto.Category),
		Description:    dto.Description,
		WebsiteAddress: website,
		RetailPrice:    retailPrice,
		ItemCount:      dto.ItemCount,
		HouseDelivery:  dto.HouseDelivery,
		OwnerID:        ownerID,
		SenderID:       senderID,
		Measurements:   measurements,
		IsPaid:         dto.IsPaid,
		IsProhibited:   dto.IsProhibited,
		RaceID:         raceID,
		Statuses:       statuses,
		Version:        dto.Version,
	})
}

func measurementsToDomain(dto MeasurementsDTO) (*parcel.Measurements, error) {
	if dto.Length == nil || dto.Width == nil || dto.Height == nil || dto.WeightGrams == nil || dto.PricePerKg == nil {
		return nil, nil
	}

	dimensions, err := kernel.NewDimensions(*dto.Length, *dto.Width, *dto.Height)
	if err != nil {
		return nil, err
	}

	rate, err := kernel.ParseMoney(*dto.PricePerKg)
	if err != nil {
		return nil, err
	}

	m, err := parcel.NewMeasurements(dimensions, *dto.WeightGrams, rate)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func receptionStatusToDomain(dto ReceptionStatusDTO) (parcel.ReceptionStatus, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return parcel.ReceptionStatus{}, err
	}

	packageID, err := kernel.UUIDFromBytes(dto.PackageID[:])
	if err != nil {
		return parcel.ReceptionStatus{}, err
	}

	staffID, err := restoreOptionalUUID(dto.StaffID)
	if err != nil {
		return parcel.ReceptionStatus{}, err
	}

	return parcel.RestoreReceptionStatus(id, packageID, parcel.Status(dto.Status), staffID, dto.Date)
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func restoreOptionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
