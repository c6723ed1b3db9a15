package parcel

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/pricing"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

// ErrMeasurementsAreNotConstructed is returned when a zero value Measurements is used.
var ErrMeasurementsAreNotConstructed = errs.NewValueIsRequiredError(
	"measurements must be created via NewMeasurements")

// Measurements holds what staff record at warehouse arrival: size, weight and
// the per-kilogram rate. The three are only ever set together.
type Measurements struct { //nolint:recvcheck //using for validation
	dimensions  kernel.Dimensions
	weightGrams int64
	pricePerKg  kernel.Money
	guard       guard.ConstructorGuard
}

func NewMeasurements(dimensions kernel.Dimensions, weightGrams int64, pricePerKg kernel.Money) (Measurements, error) {
	m := Measurements{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setDimensions(dimensions),
		m.setWeightGrams(weightGrams),
		m.setPricePerKg(pricePerKg),
	); err != nil {
		return Measurements{}, err
	}

	return m, nil
}

func (m Measurements) Validate() error {
	return m.guard.Validate(ErrMeasurementsAreNotConstructed)
}

func (m Measurements) Dimensions() kernel.Dimensions {
	return m.dimensions
}

func (m Measurements) WeightGrams() int64 {
	return m.weightGrams
}

func (m Measurements) PricePerKg() kernel.Money {
	return m.pricePerKg
}

func (m *Measurements) setDimensions(d kernel.Dimensions) error {
	if err := d.Validate(); err != nil {
		return err
	}

	m.dimensions = d
	return nil
}

func (m *Measurements) setWeightGrams(grams int64) error {
	if grams <= 0 || grams > pricing.MaxWeightGrams {
		return errs.NewValueIsOutOfRangeError("weightGrams", grams, 1, pricing.MaxWeightGrams)
	}

	m.weightGrams = grams
	return nil
}

func (m *Measurements) setPricePerKg(rate kernel.Money) error {
	if err := rate.Validate(); err != nil {
		return err
	}

	m.pricePerKg = rate
	return nil
}
