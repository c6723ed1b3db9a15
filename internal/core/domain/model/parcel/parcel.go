package parcel

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/pricing"
	"forwarding/internal/pkg/errs"
)

const maxDescriptionLength = 500

var (
	// ErrPackageIsNotConstructed is returned when a Package was not created through
	// NewPackage, NewPersonalPackage or RestorePackage.
	ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage or RestorePackage")

	// ErrPackageProhibited is returned by every transition once the package was flagged.
	ErrPackageProhibited = errors.New("package is prohibited")

	// ErrPackageAlreadyPaid is returned by MarkPaid on a paid package.
	ErrPackageAlreadyPaid = errors.New("package is already paid")

	// ErrPackageIsNotMeasured is returned when a price is requested before warehouse arrival.
	ErrPackageIsNotMeasured = errors.New("package has not been measured at the warehouse")

	// ErrEmptyStatusHistory is returned when restoring a package without statuses.
	ErrEmptyStatusHistory = errors.New("status history is empty")

	// ErrInvalidInitialStatus is returned when a restored history does not start with Awaiting.
	ErrInvalidInitialStatus = errors.New("status history must start with Awaiting")
)

// Owner is the user a package belongs to.
type Owner interface {
	ID() kernel.UUID
	AttachPackage(packageID kernel.UUID)
}

// Race is the transport batch a warehoused package is dispatched with.
// AddPackage must reject packages that are not InWarehouse.
type Race interface {
	ID() kernel.UUID
	AddPackage(p *Package) error
}

// Declaration is what a customer states about a package before it reaches the warehouse.
// TrackingCode and WebsiteAddress are optional; a code is generated when none is given.
type Declaration struct {
	TrackingCode   *kernel.TrackingCode
	Category       Category
	Description    string
	WebsiteAddress *kernel.WebAddress
	RetailPrice    kernel.Money
	ItemCount      int
	HouseDelivery  bool
}

// Package is the aggregate root of a parcel's custody lifecycle.
//
// Package follows these invariants:
//   - The status history is never empty and starts with Awaiting
//   - Each transition appends exactly the next status; the last record is the current status
//   - Once prohibited, every transition fails with ErrPackageProhibited
//   - Measurements are present exactly from InWarehouse on
//   - A race is bound exactly from InTransit on
//
// Mutations return the emitted domain event; the package keeps no pending events.
type Package struct {
	id             kernel.UUID
	trackingCode   kernel.TrackingCode
	category       Category
	description    string
	websiteAddress *kernel.WebAddress
	retailPrice    kernel.Money
	itemCount      int
	houseDelivery  bool
	ownerID        kernel.UUID
	senderID       *kernel.UUID
	measurements   *Measurements
	isPaid         bool
	isProhibited   bool
	raceID         *kernel.UUID
	statuses       []ReceptionStatus
	version        int

	isConstructed bool
}

// NewPackage declares a package for owner. The package starts Awaiting at now
// and is attached to the owner's collection.
//
// Example:
//
//	retail, _ := kernel.NewMoney(kernel.USD, 4999)
//	pkg, err := parcel.NewPackage(parcel.Declaration{
//	    Category:    parcel.Electronics,
//	    Description: "Headphones",
//	    RetailPrice: retail,
//	    ItemCount:   1,
//	}, user, time.Now())
func NewPackage(declaration Declaration, owner Owner, now time.Time) (*Package, error) {
	if owner == nil {
		return nil, errs.NewValueIsRequiredError("owner")
	}

	trackingCode := kernel.GenerateTrackingCode()
	if declaration.TrackingCode != nil {
		trackingCode = *declaration.TrackingCode
	}

	p := &Package{
		id:            kernel.NewUUID(),
		houseDelivery: declaration.HouseDelivery,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setTrackingCode(trackingCode),
		p.setCategory(declaration.Category),
		p.setDescription(declaration.Description),
		p.setRetailPrice(declaration.RetailPrice),
		p.setItemCount(declaration.ItemCount),
		p.setOwnerID(owner.ID()),
	); err != nil {
		return nil, err
	}
	p.websiteAddress = declaration.WebsiteAddress

	awaiting, err := newReceptionStatus(p.id, Awaiting, nil, now)
	if err != nil {
		return nil, err
	}
	p.statuses = []ReceptionStatus{awaiting}

	owner.AttachPackage(p.id)
	return p, nil
}

// NewPersonalPackage declares a person-to-person shipment from sender to receiver.
// The receiver owns the package.
func NewPersonalPackage(category Category, sender, receiver Owner, retailPrice kernel.Money, now time.Time) (*Package, error) {
	if sender == nil {
		return nil, errs.NewValueIsRequiredError("sender")
	}
	if receiver != nil && sender.ID().IsEqual(receiver.ID()) {
		return nil, errs.NewValueIsInvalidErrorWithCause("sender", errors.New("sender and receiver must differ"))
	}

	p, err := NewPackage(Declaration{
		Category:    category,
		Description: "Personal package",
		RetailPrice: retailPrice,
		ItemCount:   1,
	}, receiver, now)
	if err != nil {
		return nil, err
	}

	senderID := sender.ID()
	p.senderID = &senderID
	return p, nil
}

// RestorePackageParams carries the stored state of a package.
type RestorePackageParams struct {
	ID             kernel.UUID
	TrackingCode   kernel.TrackingCode
	Category       Category
	Description    string
	WebsiteAddress *kernel.WebAddress
	RetailPrice    kernel.Money
	ItemCount      int
	HouseDelivery  bool
	OwnerID        kernel.UUID
	SenderID       *kernel.UUID
	Measurements   *Measurements
	IsPaid         bool
	IsProhibited   bool
	RaceID         *kernel.UUID
	Statuses       []ReceptionStatus
	Version        int
}

// RestorePackage rebuilds a package from storage and re-checks every invariant.
func RestorePackage(params RestorePackageParams) (*Package, error) {
	p := &Package{
		websiteAddress: params.WebsiteAddress,
		houseDelivery:  params.HouseDelivery,
		isPaid:         params.IsPaid,
		isProhibited:   params.IsProhibited,
		version:        params.Version,
		isConstructed:  true,
	}

	if err := errors.Join(
		p.setID(params.ID),
		p.setTrackingCode(params.TrackingCode),
		p.setCategory(params.Category),
		p.setDescription(params.Description),
		p.setRetailPrice(params.RetailPrice),
		p.setItemCount(params.ItemCount),
		p.setOwnerID(params.OwnerID),
	); err != nil {
		return nil, err
	}

	if err := p.setStatuses(params.Statuses); err != nil {
		return nil, err
	}

	if err := errors.Join(
		p.restoreSender(params.SenderID),
		p.restoreMeasurements(params.Measurements),
		p.restoreRace(params.RaceID),
	); err != nil {
		return nil, err
	}

	if p.isPaid && p.measurements == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("isPaid", ErrPackageIsNotMeasured)
	}

	return p, nil
}

// Validate ensures the Package instance was properly constructed.
func (p *Package) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageIsNotConstructed
	}

	return nil
}

// IsEqual compares two packages by identifier.
func (p *Package) IsEqual(other *Package) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Package) ID() kernel.UUID {
	return p.id
}

func (p *Package) TrackingCode() kernel.TrackingCode {
	return p.trackingCode
}

func (p *Package) Category() Category {
	return p.category
}

func (p *Package) Description() string {
	return p.description
}

// WebsiteAddress returns the declared product page, or nil.
func (p *Package) WebsiteAddress() *kernel.WebAddress {
	return p.websiteAddress
}

func (p *Package) RetailPrice() kernel.Money {
	return p.retailPrice
}

func (p *Package) ItemCount() int {
	return p.itemCount
}

func (p *Package) HouseDelivery() bool {
	return p.houseDelivery
}

func (p *Package) OwnerID() kernel.UUID {
	return p.ownerID
}

// SenderID returns the sender of a person-to-person package, or nil.
func (p *Package) SenderID() *kernel.UUID {
	return p.senderID
}

// Measurements returns the warehouse measurements, or nil before warehouse arrival.
func (p *Package) Measurements() *Measurements {
	if p.measurements == nil {
		return nil
	}
	m := *p.measurements
	return &m
}

func (p *Package) IsPaid() bool {
	return p.isPaid
}

func (p *Package) IsProhibited() bool {
	return p.isProhibited
}

// RaceID returns the race the package travels with, or nil before dispatch.
func (p *Package) RaceID() *kernel.UUID {
	return p.raceID
}

// Version is the persistence version the package was loaded with.
func (p *Package) Version() int {
	return p.version
}

// Statuses returns a copy of the status history, oldest first.
func (p *Package) Statuses() []ReceptionStatus {
	return slices.Clone(p.statuses)
}

// CurrentReceptionStatus returns the latest status record.
func (p *Package) CurrentReceptionStatus() ReceptionStatus {
	return p.statuses[len(p.statuses)-1]
}

// CurrentStatus returns the status of the latest record.
func (p *Package) CurrentStatus() Status {
	if len(p.statuses) == 0 {
		return Unknown
	}
	return p.CurrentReceptionStatus().Status()
}

// Price quotes the package with pricing.DefaultPolicy.
// ErrPackageIsNotMeasured is returned before warehouse arrival.
func (p *Package) Price() (pricing.PackagePrice, error) {
	return p.PriceWithPolicy(pricing.DefaultPolicy())
}

// PriceWithPolicy quotes the package with an explicit pricing policy.
func (p *Package) PriceWithPolicy(policy pricing.Policy) (pricing.PackagePrice, error) {
	if err := p.Validate(); err != nil {
		return pricing.PackagePrice{}, err
	}

	if p.measurements == nil {
		return pricing.PackagePrice{}, ErrPackageIsNotMeasured
	}

	return policy.NewPackagePrice(
		p.measurements.Dimensions(),
		p.measurements.WeightGrams(),
		p.houseDelivery,
		p.measurements.PricePerKg(),
	)
}

// ShippingPrice is the total price the owner pays under pricing.DefaultPolicy.
func (p *Package) ShippingPrice() (kernel.Money, error) {
	return p.ShippingPriceWithPolicy(pricing.DefaultPolicy())
}

// ShippingPriceWithPolicy is the total price the owner pays under policy.
// Quotes and payments must use the same policy.
func (p *Package) ShippingPriceWithPolicy(policy pricing.Policy) (kernel.Money, error) {
	price, err := p.PriceWithPolicy(policy)
	if err != nil {
		return kernel.Money{}, err
	}

	return price.TotalPrice(), nil
}

// ArrivedAtWarehouse records the warehouse check-in by staff together with the
// measured dimensions, weight and the per-kilogram rate.
//
// Business Rules:
//   - The package must be Awaiting and not prohibited
//   - Dimensions, weight and rate are set together
func (p *Package) ArrivedAtWarehouse(
	staffID kernel.UUID,
	dimensions kernel.Dimensions,
	weightGrams int64,
	date time.Time,
	pricePerKg kernel.Money,
) (PackageArrivedAtWarehouse, error) {
	if err := p.ensureCanTransitionTo(InWarehouse); err != nil {
		return PackageArrivedAtWarehouse{}, err
	}

	measurements, err := NewMeasurements(dimensions, weightGrams, pricePerKg)
	if err != nil {
		return PackageArrivedAtWarehouse{}, err
	}

	status, err := newReceptionStatus(p.id, InWarehouse, &staffID, date)
	if err != nil {
		return PackageArrivedAtWarehouse{}, err
	}

	p.measurements = &measurements
	p.statuses = append(p.statuses, status)

	return PackageArrivedAtWarehouse{
		PackageID:    p.id,
		OwnerID:      p.ownerID,
		TrackingCode: p.trackingCode,
		StaffID:      staffID,
		Date:         date,
	}, nil
}

// SentToDestination dispatches a warehoused package with race. The race is
// asked to accept the package before the InTransit status is appended.
func (p *Package) SentToDestination(staffID kernel.UUID, race Race, date time.Time) (PackageSentToDestination, error) {
	if err := p.ensureCanTransitionTo(InTransit); err != nil {
		return PackageSentToDestination{}, err
	}

	if race == nil {
		return PackageSentToDestination{}, errs.NewValueIsRequiredError("race")
	}

	raceID := race.ID()
	if err := raceID.Validate(); err != nil {
		return PackageSentToDestination{}, err
	}

	status, err := newReceptionStatus(p.id, InTransit, &staffID, date)
	if err != nil {
		return PackageSentToDestination{}, err
	}

	if err = race.AddPackage(p); err != nil {
		return PackageSentToDestination{}, err
	}

	p.raceID = &raceID
	p.statuses = append(p.statuses, status)

	return PackageSentToDestination{
		PackageID:    p.id,
		OwnerID:      p.ownerID,
		TrackingCode: p.trackingCode,
		RaceID:       raceID,
		StaffID:      staffID,
		Date:         date,
	}, nil
}

// ArrivedAtDestination records that staff at the destination office received the package.
func (p *Package) ArrivedAtDestination(staffID kernel.UUID, date time.Time) (PackageArrivedAtDestination, error) {
	if err := p.ensureCanTransitionTo(Arrived); err != nil {
		return PackageArrivedAtDestination{}, err
	}

	status, err := newReceptionStatus(p.id, Arrived, &staffID, date)
	if err != nil {
		return PackageArrivedAtDestination{}, err
	}

	p.statuses = append(p.statuses, status)

	return PackageArrivedAtDestination{
		PackageID:    p.id,
		OwnerID:      p.ownerID,
		TrackingCode: p.trackingCode,
		ReceivedByID: staffID,
		Date:         date,
	}, nil
}

// Delivered closes the lifecycle.
func (p *Package) Delivered(date time.Time) (PackageDelivered, error) {
	if err := p.ensureCanTransitionTo(Delivered); err != nil {
		return PackageDelivered{}, err
	}

	status, err := newReceptionStatus(p.id, Delivered, nil, date)
	if err != nil {
		return PackageDelivered{}, err
	}

	p.statuses = append(p.statuses, status)

	return PackageDelivered{
		PackageID:    p.id,
		OwnerID:      p.ownerID,
		TrackingCode: p.trackingCode,
		Date:         date,
	}, nil
}

// FlagAsProhibited marks the package as prohibited regardless of its status.
// From then on every transition fails with ErrPackageProhibited.
func (p *Package) FlagAsProhibited() PackageIsDeemedProhibited {
	p.isProhibited = true

	return PackageIsDeemedProhibited{
		PackageID:    p.id,
		OwnerID:      p.ownerID,
		TrackingCode: p.trackingCode,
	}
}

// MarkPaid records a successful balance debit. It is called by the user
// balance ledger only; a second payment is rejected.
func (p *Package) MarkPaid() error {
	if err := p.Validate(); err != nil {
		return err
	}

	if p.isPaid {
		return fmt.Errorf("%w: %s", ErrPackageAlreadyPaid, p.trackingCode)
	}

	if p.measurements == nil {
		return ErrPackageIsNotMeasured
	}

	p.isPaid = true
	return nil
}

func (p *Package) ensureCanTransitionTo(target Status) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if p.isProhibited {
		return fmt.Errorf("%w: %s", ErrPackageProhibited, p.trackingCode)
	}

	return p.CurrentStatus().ValidateTransitionTo(target)
}

func (p *Package) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *Package) setTrackingCode(code kernel.TrackingCode) error {
	if err := code.Validate(); err != nil {
		return err
	}

	p.trackingCode = code
	return nil
}

func (p *Package) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	p.category = category
	return nil
}

func (p *Package) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return errs.NewValueIsRequiredError("description")
	}

	if len(description) > maxDescriptionLength {
		return errs.NewValueIsOutOfRangeError("description length", len(description), 1, maxDescriptionLength)
	}

	p.description = description
	return nil
}

func (p *Package) setRetailPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	p.retailPrice = price
	return nil
}

func (p *Package) setItemCount(count int) error {
	if count < 1 {
		return errs.NewValueIsOutOfRangeError("itemCount", count, 1, "unbounded")
	}

	p.itemCount = count
	return nil
}

func (p *Package) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.ownerID = id
	return nil
}

func (p *Package) setStatuses(statuses []ReceptionStatus) error {
	if len(statuses) == 0 {
		return ErrEmptyStatusHistory
	}

	if statuses[0].Status() != Awaiting {
		return fmt.Errorf("%w: got %s", ErrInvalidInitialStatus, statuses[0].Status())
	}

	for i, status := range statuses {
		if err := status.Validate(); err != nil {
			return err
		}

		if !status.PackageID().IsEqual(p.id) {
			return errs.NewValueIsInvalidErrorWithCause(
				"statuses",
				fmt.Errorf("status %s belongs to package %s", status.ID(), status.PackageID()),
			)
		}

		if i > 0 {
			if err := statuses[i-1].Status().ValidateTransitionTo(status.Status()); err != nil {
				return err
			}
		}
	}

	p.statuses = slices.Clone(statuses)
	return nil
}

func (p *Package) restoreSender(senderID *kernel.UUID) error {
	if senderID == nil {
		return nil
	}

	if err := senderID.Validate(); err != nil {
		return err
	}

	id := *senderID
	p.senderID = &id
	return nil
}

func (p *Package) restoreMeasurements(m *Measurements) error {
	measured := p.CurrentStatus() >= InWarehouse

	switch {
	case measured && m == nil:
		return errs.NewValueIsRequiredErrorWithCause(
			"measurements",
			fmt.Errorf("%s package must be measured", p.CurrentStatus()),
		)
	case !measured && m != nil:
		return errs.NewValueIsInvalidErrorWithCause(
			"measurements",
			fmt.Errorf("%s package cannot be measured yet", p.CurrentStatus()),
		)
	case m != nil:
		if err := m.Validate(); err != nil {
			return err
		}
		measurements := *m
		p.measurements = &measurements
	}

	return nil
}

func (p *Package) restoreRace(raceID *kernel.UUID) error {
	dispatched := p.CurrentStatus() >= InTransit

	switch {
	case dispatched && raceID == nil:
		return errs.NewValueIsRequiredErrorWithCause(
			"raceID",
			fmt.Errorf("%s package must belong to a race", p.CurrentStatus()),
		)
	case !dispatched && raceID != nil:
		return errs.NewValueIsInvalidErrorWithCause(
			"raceID",
			fmt.Errorf("%s package cannot belong to a race yet", p.CurrentStatus()),
		)
	case raceID != nil:
		if err := raceID.Validate(); err != nil {
			return err
		}
		id := *raceID
		p.raceID = &id
	}

	return nil
}
