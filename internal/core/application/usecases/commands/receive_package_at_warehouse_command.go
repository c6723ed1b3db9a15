package commands

import (
	"errors"
	"fmt"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/pricing"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

const (
	maxPricePerKgAmount  = 1000
	pricePerKgAmountStep = 10
)

var (
	ErrReceivePackageAtWarehouseCommandIsNotConstructed = errors.New(
		"ReceivePackageAtWarehouseCommand must be created via NewReceivePackageAtWarehouseCommand constructor",
	)
)

// ReceivePackageAtWarehouseCommand is a warehouse scan: the staff member reads
// the tracking code and records size, weight and the per-kilogram rate.
//
// Example:
//
//	dims, _ := kernel.NewDimensions(60, 60, 60)
//	rate, _ := kernel.NewMoney(kernel.USD, 800)
//	cmd, err := NewReceivePackageAtWarehouseCommand(staffID, code, dims, 2000, rate)
type ReceivePackageAtWarehouseCommand struct { //nolint:recvcheck //using for validation
	staffID      kernel.UUID
	trackingCode kernel.TrackingCode
	dimensions   kernel.Dimensions
	weightGrams  int64
	pricePerKg   kernel.Money

	guard guard.ConstructorGuard
}

// NewReceivePackageAtWarehouseCommand validates the scan. The rate must be a
// positive USD amount of whole ten-cent steps, at most 10.00.
func NewReceivePackageAtWarehouseCommand(
	staffID kernel.UUID,
	trackingCode kernel.TrackingCode,
	dimensions kernel.Dimensions,
	weightGrams int64,
	pricePerKg kernel.Money,
) (ReceivePackageAtWarehouseCommand, error) {
	cmd := ReceivePackageAtWarehouseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStaffID(staffID),
		cmd.setTrackingCode(trackingCode),
		cmd.setDimensions(dimensions),
		cmd.setWeightGrams(weightGrams),
		cmd.setPricePerKg(pricePerKg),
	); err != nil {
		return ReceivePackageAtWarehouseCommand{}, err
	}

	return cmd, nil
}

func (c ReceivePackageAtWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrReceivePackageAtWarehouseCommandIsNotConstructed)
}

func (c ReceivePackageAtWarehouseCommand) StaffID() kernel.UUID {
	return c.staffID
}

func (c ReceivePackageAtWarehouseCommand) TrackingCode() kernel.TrackingCode {
	return c.trackingCode
}

func (c ReceivePackageAtWarehouseCommand) Dimensions() kernel.Dimensions {
	return c.dimensions
}

func (c ReceivePackageAtWarehouseCommand) WeightGrams() int64 {
	return c.weightGrams
}

func (c ReceivePackageAtWarehouseCommand) PricePerKg() kernel.Money {
	return c.pricePerKg
}

func (c *ReceivePackageAtWarehouseCommand) setStaffID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.staffID = id
	return nil
}

func (c *ReceivePackageAtWarehouseCommand) setTrackingCode(code kernel.TrackingCode) error {
	if err := code.Validate(); err != nil {
		return err
	}

	c.trackingCode = code
	return nil
}

func (c *ReceivePackageAtWarehouseCommand) setDimensions(d kernel.Dimensions) error {
	if err := d.Validate(); err != nil {
		return err
	}

	c.dimensions = d
	return nil
}

func (c *ReceivePackageAtWarehouseCommand) setWeightGrams(grams int64) error {
	if grams <= 0 || grams > pricing.MaxWeightGrams {
		return errs.NewValueIsOutOfRangeError("weightGrams", grams, 1, pricing.MaxWeightGrams)
	}

	c.weightGrams = grams
	return nil
}

func (c *ReceivePackageAtWarehouseCommand) setPricePerKg(rate kernel.Money) error {
	if err := rate.Validate(); err != nil {
		return err
	}

	if rate.Currency() != kernel.USD {
		return errs.NewValueIsInvalidErrorWithCause("pricePerKg", fmt.Errorf("currency must be USD, got %s", rate.Currency()))
	}

	if amount := rate.Amount(); amount <= 0 || amount > maxPricePerKgAmount {
		return errs.NewValueIsOutOfRangeError("pricePerKg", amount, pricePerKgAmountStep, maxPricePerKgAmount)
	}

	if rate.Amount()%pricePerKgAmountStep != 0 {
		return errs.NewValueIsInvalidErrorWithCause("pricePerKg", fmt.Errorf("%d must not contain single cents", rate.Amount()))
	}

	c.pricePerKg = rate
	return nil
}
