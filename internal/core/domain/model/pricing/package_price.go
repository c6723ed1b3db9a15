package pricing

import (
	"errors"
	"fmt"
	"math"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

const gramsPerKilogram = 1000

// MaxWeightGrams is the heaviest package accepted for pricing, one tonne.
const MaxWeightGrams int64 = 1_000_000

// ErrPackagePriceIsNotConstructed is returned when a zero value PackagePrice is used.
var ErrPackagePriceIsNotConstructed = errs.NewValueIsRequiredError(
	"package price must be created via NewPackagePrice")

// PackagePrice is the shipping price quote of a measured package. It is a pure
// function of dimensions, weight, delivery mode and the per-kilogram rate and
// is recomputed on every read rather than stored.
//
// Example:
//
//	dims, _ := kernel.NewDimensions(60, 60, 60)
//	rate, _ := kernel.NewMoney(kernel.USD, 800)
//	price, err := pricing.NewPackagePrice(dims, 2000, false, rate)
//	if err != nil {
//	    return err
//	}
//	price.VolumetricWeightPrice() // USD-40
//	price.WeightPrice()           // USD-1600
//	price.TotalPrice()            // USD-1600
type PackagePrice struct {
	dimensions      kernel.Dimensions
	weightGrams     int64
	isHouseDelivery bool
	pricePerKg      kernel.Money
	policy          Policy
	weightPrice     kernel.Money
	volumetricPrice kernel.Money
	totalPrice      kernel.Money
	guard           guard.ConstructorGuard
}

// NewPackagePrice prices with DefaultPolicy.
func NewPackagePrice(
	dimensions kernel.Dimensions,
	weightGrams int64,
	isHouseDelivery bool,
	pricePerKg kernel.Money,
) (PackagePrice, error) {
	return DefaultPolicy().NewPackagePrice(dimensions, weightGrams, isHouseDelivery, pricePerKg)
}

// NewPackagePrice prices with this policy. The rate must be in the policy currency.
//
// Parameters:
//   - dimensions: measured sides, each within kernel.MaxSideCm
//   - weightGrams: actual weight in 1..MaxWeightGrams
//   - isHouseDelivery: adds the policy house delivery fee
//   - pricePerKg: rate in minor units per kilogram
//
// Returns an out of range error when an amount does not fit into int64 minor units.
func (p Policy) NewPackagePrice(
	dimensions kernel.Dimensions,
	weightGrams int64,
	isHouseDelivery bool,
	pricePerKg kernel.Money,
) (PackagePrice, error) {
	if err := p.Validate(); err != nil {
		return PackagePrice{}, err
	}

	var weightErr, currencyErr error
	if weightGrams <= 0 || weightGrams > MaxWeightGrams {
		weightErr = errs.NewValueIsOutOfRangeError("weightGrams", weightGrams, 1, MaxWeightGrams)
	}

	if pricePerKg.Validate() == nil && pricePerKg.Currency() != p.Currency {
		currencyErr = kernel.NewCurrencyMismatchError(pricePerKg.Currency(), p.Currency)
	}

	if err := errors.Join(dimensions.Validate(), pricePerKg.Validate(), weightErr, currencyErr); err != nil {
		return PackagePrice{}, err
	}

	pp := PackagePrice{
		dimensions:      dimensions,
		weightGrams:     weightGrams,
		isHouseDelivery: isHouseDelivery,
		pricePerKg:      pricePerKg,
		policy:          p,
		guard:           guard.NewConstructorGuard(),
	}
	if err := pp.calculate(); err != nil {
		return PackagePrice{}, err
	}

	return pp, nil
}

// Validate returns ErrPackagePriceIsNotConstructed for the zero value.
func (pp PackagePrice) Validate() error {
	return pp.guard.Validate(ErrPackagePriceIsNotConstructed)
}

func (pp PackagePrice) Policy() Policy {
	return pp.policy
}

func (pp PackagePrice) PricePerKg() kernel.Money {
	return pp.pricePerKg
}

// IsCalculatingVolumetricWeight reports whether the volumetric basis applies.
func (pp PackagePrice) IsCalculatingVolumetricWeight() bool {
	return pp.policy.ShouldCalculateVolumetricWeight(
		pp.dimensions.Length(), pp.dimensions.Width(), pp.dimensions.Height())
}

// VolumetricWeightPrice is RoundUp(l*w*h / divisor) when the threshold is
// exceeded and zero otherwise.
func (pp PackagePrice) VolumetricWeightPrice() kernel.Money {
	return pp.volumetricPrice
}

// WeightPrice is RoundUp(weightGrams * rate / 1000), with the division rounded up.
func (pp PackagePrice) WeightPrice() kernel.Money {
	return pp.weightPrice
}

// TotalPrice combines both bases according to the policy and adds the house
// delivery fee when requested.
func (pp PackagePrice) TotalPrice() kernel.Money {
	return pp.totalPrice
}

func (pp *PackagePrice) calculate() error {
	weight, err := pp.weightAmount()
	if err != nil {
		return err
	}

	volumetric, err := pp.volumetricAmount()
	if err != nil {
		return err
	}

	var total int64
	switch pp.policy.Combination {
	case CombineSum:
		total, err = addAmounts("totalPrice", weight, volumetric)
	case CombineMax, CombineUnknown:
		total = max(weight, volumetric)
	}
	if err == nil && pp.isHouseDelivery {
		total, err = addAmounts("totalPrice", total, pp.policy.HouseDeliveryFee)
	}
	if err != nil {
		return err
	}

	var weightErr, volumetricErr, totalErr error
	pp.weightPrice, weightErr = kernel.NewMoney(pp.policy.Currency, weight)
	pp.volumetricPrice, volumetricErr = kernel.NewMoney(pp.policy.Currency, volumetric)
	pp.totalPrice, totalErr = kernel.NewMoney(pp.policy.Currency, total)

	return errors.Join(weightErr, volumetricErr, totalErr)
}

func (pp PackagePrice) volumetricAmount() (int64, error) {
	if !pp.IsCalculatingVolumetricWeight() {
		return 0, nil
	}

	volume := pp.dimensions.Volume()
	if volume >= math.MaxInt64 {
		return 0, errs.NewValueIsOutOfRangeError("volume", volume, 0, int64(math.MaxInt64))
	}

	return roundUpChecked("volumetricWeightPrice", int64(volume)/pp.policy.VolumetricDivisor)
}

func (pp PackagePrice) weightAmount() (int64, error) {
	rate := pp.pricePerKg.Amount()
	if rate > 0 && pp.weightGrams > (math.MaxInt64-gramsPerKilogram+1)/rate {
		return 0, errs.NewValueIsOutOfRangeErrorWithCause("weightPrice", pp.weightGrams, 1, MaxWeightGrams,
			fmt.Errorf("%d g at %s per kg overflows the price", pp.weightGrams, pp.pricePerKg))
	}

	product := pp.weightGrams * rate
	return roundUpChecked("weightPrice", (product+gramsPerKilogram-1)/gramsPerKilogram)
}

func addAmounts(name string, a, b int64) (int64, error) {
	if a > math.MaxInt64-b {
		return 0, errs.NewValueIsOutOfRangeError(name, fmt.Sprintf("%d+%d", a, b), 0, int64(math.MaxInt64))
	}

	return a + b, nil
}

func roundUpChecked(name string, amount int64) (int64, error) {
	if amount > math.MaxInt64-9 {
		return 0, errs.NewValueIsOutOfRangeError(name, amount, 0, int64(math.MaxInt64-9))
	}

	return RoundUp(amount), nil
}
