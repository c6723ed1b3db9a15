package pricing

import (
	"errors"
	"fmt"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
)

// Combination selects how the weight and volumetric bases are combined.
type Combination int

const (
	// CombineUnknown is the invalid zero value.
	CombineUnknown Combination = iota

	// CombineMax charges the larger of the two bases.
	CombineMax

	// CombineSum charges both bases. Packages priced before the max rule was
	// introduced used this combination.
	CombineSum
)

func (c Combination) String() string {
	switch c {
	case CombineMax:
		return "max"
	case CombineSum:
		return "sum"
	default:
		return "unknown"
	}
}

// Default pricing constants.
const (
	DefaultVolumetricThreshold = 150.0
	DefaultVolumetricDivisor   = 6000
	DefaultHouseDeliveryFee    = 500
	DefaultCurrency            = kernel.USD
)

// Policy groups the pricing constants so that markets can vary them without
// touching the package lifecycle.
type Policy struct {
	// Currency of every computed price; the per-kilogram rate must use it too.
	Currency kernel.Currency

	// VolumetricThreshold is the length+width+height (cm) above which the
	// volumetric basis applies. The comparison is strict.
	VolumetricThreshold float64

	// VolumetricDivisor converts cubic centimetres to the volumetric basis.
	VolumetricDivisor int64

	// HouseDeliveryFee is the flat surcharge in minor units.
	HouseDeliveryFee int64

	Combination Combination
}

// DefaultPolicy returns the USD policy: threshold 150 cm, divisor 6000,
// house delivery fee 500 and the max combination.
func DefaultPolicy() Policy {
	return Policy{
		Currency:            DefaultCurrency,
		VolumetricThreshold: DefaultVolumetricThreshold,
		VolumetricDivisor:   DefaultVolumetricDivisor,
		HouseDeliveryFee:    DefaultHouseDeliveryFee,
		Combination:         CombineMax,
	}
}

// LegacySumPolicy is DefaultPolicy with the historical sum combination.
func LegacySumPolicy() Policy {
	p := DefaultPolicy()
	p.Combination = CombineSum
	return p
}

// Validate checks every field of the policy.
func (p Policy) Validate() error {
	var combinationErr error
	if p.Combination != CombineMax && p.Combination != CombineSum {
		combinationErr = errs.NewValueIsInvalidErrorWithCause(
			"combination",
			fmt.Errorf("%d is not a valid combination", p.Combination),
		)
	}

	var thresholdErr, divisorErr, feeErr error
	if p.VolumetricThreshold <= 0 {
		thresholdErr = errs.NewValueIsInvalidErrorWithCause("volumetricThreshold", errors.New("must be positive"))
	}
	if p.VolumetricDivisor <= 0 {
		divisorErr = errs.NewValueIsInvalidErrorWithCause("volumetricDivisor", errors.New("must be positive"))
	}
	if p.HouseDeliveryFee < 0 {
		feeErr = errs.NewValueIsInvalidErrorWithCause("houseDeliveryFee", errors.New("must not be negative"))
	}

	return errors.Join(p.Currency.Validate(), combinationErr, thresholdErr, divisorErr, feeErr)
}

// ShouldCalculateVolumetricWeight reports whether l+w+h exceeds the threshold.
func (p Policy) ShouldCalculateVolumetricWeight(length, width, height float64) bool {
	return length+width+height > p.VolumetricThreshold
}

// ShouldCalculateVolumetricWeight applies the default 150 cm threshold.
func ShouldCalculateVolumetricWeight(length, width, height float64) bool {
	return DefaultPolicy().ShouldCalculateVolumetricWeight(length, width, height)
}

// RoundUp rounds a non-negative minor unit amount up to the next multiple of 10.
// Values already divisible by 10 are returned unchanged.
func RoundUp(value int64) int64 {
	return value + (10-value%10)%10
}
