package kernel

import (
	"errors"
	"fmt"
	"math"

	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

// ErrDimensionsAreNotConstructed is returned when a zero value Dimensions is used.
var ErrDimensionsAreNotConstructed = errs.NewValueIsRequiredError(
	"dimensions must be created via NewDimensions constructor")

// MaxSideCm is the longest side accepted for a package, ten metres.
const MaxSideCm = 1000.0

// Dimensions is the measured size of a package in centimetres. It becomes known
// when staff check a package into the warehouse and drives volumetric pricing.
//
// Example:
//
//	dims, err := kernel.NewDimensions(60, 60, 60)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(dims.Sum())    // 180
//	fmt.Println(dims.Volume()) // 216000
type Dimensions struct { //nolint:recvcheck //using for validation
	length float64
	width  float64
	height float64
	guard  guard.ConstructorGuard
}

// NewDimensions validates that every side is a positive finite number of
// centimetres no longer than MaxSideCm.
func NewDimensions(length, width, height float64) (Dimensions, error) {
	d := Dimensions{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setLength(length),
		d.setWidth(width),
		d.setHeight(height),
	); err != nil {
		return Dimensions{}, err
	}

	return d, nil
}

// Validate returns ErrDimensionsAreNotConstructed for the zero value.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

func (d Dimensions) Length() float64 {
	return d.length
}

func (d Dimensions) Width() float64 {
	return d.width
}

func (d Dimensions) Height() float64 {
	return d.height
}

// Sum returns length + width + height, the figure compared against the volumetric threshold.
func (d Dimensions) Sum() float64 {
	return d.length + d.width + d.height
}

// Volume returns length * width * height in cubic centimetres.
func (d Dimensions) Volume() float64 {
	return d.length * d.width * d.height
}

// IsEqual compares two dimensions side by side.
func (d Dimensions) IsEqual(other Dimensions) bool {
	return d.length == other.length && d.width == other.width && d.height == other.height
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%gx%gx%g cm", d.length, d.width, d.height)
}

func (d *Dimensions) setLength(v float64) error {
	if err := validateSide("length", v); err != nil {
		return err
	}

	d.length = v
	return nil
}

func (d *Dimensions) setWidth(v float64) error {
	if err := validateSide("width", v); err != nil {
		return err
	}

	d.width = v
	return nil
}

func (d *Dimensions) setHeight(v float64) error {
	if err := validateSide("height", v); err != nil {
		return err
	}

	d.height = v
	return nil
}

func validateSide(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is not a finite number", v))
	}

	if v <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%g cm must be greater than 0", v))
	}

	if v > MaxSideCm {
		return errs.NewValueIsOutOfRangeError(name, v, 0, MaxSideCm)
	}

	return nil
}
