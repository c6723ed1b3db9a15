package queries

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/pricing"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var (
	ErrCalculatePriceQueryIsNotConstructed = errors.New(
		"CalculatePriceQuery must be created via NewCalculatePriceQuery constructor",
	)
)

// CalculatePriceQuery quotes a shipment before the package exists.
type CalculatePriceQuery struct { //nolint:recvcheck //using for validation
	dimensions    kernel.Dimensions
	weightGrams   int64
	houseDelivery bool
	pricePerKg    kernel.Money
	guard         guard.ConstructorGuard
}

func NewCalculatePriceQuery(
	length, width, height float64,
	weightGrams int64,
	houseDelivery bool,
	pricePerKg kernel.Money,
) (CalculatePriceQuery, error) {
	q := CalculatePriceQuery{
		houseDelivery: houseDelivery,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setDimensions(length, width, height),
		q.setWeightGrams(weightGrams),
		q.setPricePerKg(pricePerKg),
	); err != nil {
		return CalculatePriceQuery{}, err
	}

	return q, nil
}

func (q CalculatePriceQuery) Validate() error {
	return q.guard.Validate(ErrCalculatePriceQueryIsNotConstructed)
}

func (q CalculatePriceQuery) Dimensions() kernel.Dimensions { return q.dimensions }
func (q CalculatePriceQuery) WeightGrams() int64            { return q.weightGrams }
func (q CalculatePriceQuery) HouseDelivery() bool           { return q.houseDelivery }
func (q CalculatePriceQuery) PricePerKg() kernel.Money      { return q.pricePerKg }

func (q *CalculatePriceQuery) setDimensions(length, width, height float64) error {
	d, err := kernel.NewDimensions(length, width, height)
	if err != nil {
		return err
	}

	q.dimensions = d
	return nil
}

func (q *CalculatePriceQuery) setWeightGrams(grams int64) error {
	if grams <= 0 || grams > pricing.MaxWeightGrams {
		return errs.NewValueIsOutOfRangeError("weightGrams", grams, 1, pricing.MaxWeightGrams)
	}

	q.weightGrams = grams
	return nil
}

func (q *CalculatePriceQuery) setPricePerKg(rate kernel.Money) error {
	if err := rate.Validate(); err != nil {
		return err
	}

	q.pricePerKg = rate
	return nil
}

// CalculatePriceQueryResponse carries both bases so the client can show why
// the total was chosen.
type CalculatePriceQueryResponse struct {
	IsVolumetric          bool
	VolumetricWeightPrice kernel.Money
	WeightPrice           kernel.Money
	TotalPrice            kernel.Money
}
