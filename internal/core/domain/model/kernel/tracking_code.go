package kernel

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"regexp"
	"strconv"
)

const (
	generatedCodePrefix = "GE"
	generatedCodeSuffix = "SGW"
	generatedDigits     = 21
)

var (
	// ErrMalformedTrackingCode is returned for codes matching no known carrier format.
	ErrMalformedTrackingCode = errors.New("malformed tracking code")

	// trackingCodePatterns lists the carrier formats accepted for declared packages.
	trackingCodePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\d{10}$`),                // DHL Express
		regexp.MustCompile(`^\d{12}$`),                // FedEx Express
		regexp.MustCompile(`^\d{14}$`),                // DHL eCommerce
		regexp.MustCompile(`^\d{15}$`),                // FedEx Ground
		regexp.MustCompile(`^\d{16}$`),                // Hermes
		regexp.MustCompile(`^\d{20,22}$`),             // USPS, FedEx SmartPost
		regexp.MustCompile(`^1Z[0-9A-Z]{16}$`),        // UPS
		regexp.MustCompile(`^[A-Z]{2}\d{9}[A-Z]{2}$`), // UPU S10 postal items
		regexp.MustCompile(`^[A-Z0-9]{9,40}$`),        // generic
	}
)

// TrackingCode is the external identifier of a parcel, either issued by the
// shipping carrier or generated for packages that arrive without one.
// Equality is by value.
type TrackingCode struct {
	value string
}

// IsValidTrackingCode reports whether code matches one of the carrier patterns.
func IsValidTrackingCode(code string) bool {
	if code == "" {
		return false
	}

	for _, pattern := range trackingCodePatterns {
		if pattern.MatchString(code) {
			return true
		}
	}

	return false
}

// NewTrackingCode validates a carrier code.
func NewTrackingCode(code string) (TrackingCode, error) {
	if !IsValidTrackingCode(code) {
		return TrackingCode{}, fmt.Errorf("%w: %q", ErrMalformedTrackingCode, code)
	}

	return TrackingCode{value: code}, nil
}

// GenerateTrackingCode builds an internal code: "GE", the first 21 digits of two
// concatenated random 63-bit integers, then "SGW".
func GenerateTrackingCode() TrackingCode {
	var digits string
	for len(digits) < generatedDigits {
		digits = strconv.FormatInt(rand.Int64N(math.MaxInt64), 10) +
			strconv.FormatInt(rand.Int64N(math.MaxInt64), 10)
	}

	return TrackingCode{value: generatedCodePrefix + digits[:generatedDigits] + generatedCodeSuffix}
}

func (c TrackingCode) String() string {
	return c.value
}

func (c TrackingCode) IsEmpty() bool {
	return c.value == ""
}

func (c TrackingCode) IsEqual(other TrackingCode) bool {
	return c.value == other.value
}

// Validate rejects the zero value.
func (c TrackingCode) Validate() error {
	if c.value == "" {
		return fmt.Errorf("%w: empty", ErrMalformedTrackingCode)
	}
	return nil
}

func (c TrackingCode) MarshalText() ([]byte, error) {
	return []byte(c.value), nil
}

func (c *TrackingCode) UnmarshalText(data []byte) error {
	parsed, err := NewTrackingCode(string(data))
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}
