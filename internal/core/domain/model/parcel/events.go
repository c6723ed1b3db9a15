package parcel

import (
	"time"

	"forwarding/internal/core/domain/model/kernel"
)

// Event type names. They are stored in the outbox and used as broker message
// types, so they must not change.
const (
	PackageArrivedAtWarehouseEventType   = "PackageArrivedAtWarehouse"
	PackageSentToDestinationEventType    = "PackageSentToDestination"
	PackageArrivedAtDestinationEventType = "PackageArrivedAtDestination"
	PackageDeliveredEventType            = "PackageDelivered"
	PackageIsDeemedProhibitedEventType   = "PackageIsDeemedProhibited"
)

// PackageArrivedAtWarehouse is returned by Package.ArrivedAtWarehouse.
type PackageArrivedAtWarehouse struct {
	PackageID    kernel.UUID         `json:"packageId"`
	OwnerID      kernel.UUID         `json:"ownerId"`
	TrackingCode kernel.TrackingCode `json:"trackingCode"`
	StaffID      kernel.UUID         `json:"staffId"`
	Date         time.Time           `json:"date"`
}

func (e PackageArrivedAtWarehouse) EventType() string        { return PackageArrivedAtWarehouseEventType }
func (e PackageArrivedAtWarehouse) AggregateID() kernel.UUID { return e.PackageID }

// PackageSentToDestination is returned by Package.SentToDestination.
type PackageSentToDestination struct {
	PackageID    kernel.UUID         `json:"packageId"`
	OwnerID      kernel.UUID         `json:"ownerId"`
	TrackingCode kernel.TrackingCode `json:"trackingCode"`
	RaceID       kernel.UUID         `json:"raceId"`
	StaffID      kernel.UUID         `json:"staffId"`
	Date         time.Time           `json:"date"`
}

func (e PackageSentToDestination) EventType() string        { return PackageSentToDestinationEventType }
func (e PackageSentToDestination) AggregateID() kernel.UUID { return e.PackageID }

// PackageArrivedAtDestination is returned by Package.ArrivedAtDestination.
type PackageArrivedAtDestination struct {
	PackageID    kernel.UUID         `json:"packageId"`
	OwnerID      kernel.UUID         `json:"ownerId"`
	TrackingCode kernel.TrackingCode `json:"trackingCode"`
	ReceivedByID kernel.UUID         `json:"receivedById"`
	Date         time.Time           `json:"date"`
}

func (e PackageArrivedAtDestination) EventType() string        { return PackageArrivedAtDestinationEventType }
func (e PackageArrivedAtDestination) AggregateID() kernel.UUID { return e.PackageID }

// PackageDelivered is returned by Package.Delivered.
type PackageDelivered struct {
	PackageID    kernel.UUID         `json:"packageId"`
	OwnerID      kernel.UUID         `json:"ownerId"`
	TrackingCode kernel.TrackingCode `json:"trackingCode"`
	Date         time.Time           `json:"date"`
}

func (e PackageDelivered) EventType() string        { return PackageDeliveredEventType }
func (e PackageDelivered) AggregateID() kernel.UUID { return e.PackageID }

// PackageIsDeemedProhibited is returned by Package.FlagAsProhibited.
type PackageIsDeemedProhibited struct {
	PackageID    kernel.UUID         `json:"packageId"`
	OwnerID      kernel.UUID         `json:"ownerId"`
	TrackingCode kernel.TrackingCode `json:"trackingCode"`
}

func (e PackageIsDeemedProhibited) EventType() string        { return PackageIsDeemedProhibitedEventType }
func (e PackageIsDeemedProhibited) AggregateID() kernel.UUID { return e.PackageID }
