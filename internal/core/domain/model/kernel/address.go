package kernel

import (
	"fmt"
	"strings"

	"forwarding/internal/pkg/errs"
)

const (
	noAddressText   = "not-specified"
	fullAddressText = "full"
)

// Address is a closed sum type: NoAddress or FullAddress. Consumers switch on
// the concrete type:
//
//	switch a := addr.(type) {
//	case kernel.NoAddress:
//	    return ErrDeliveryAddressIsRequired
//	case kernel.FullAddress:
//	    return deliverTo(a.City())
//	}
type Address interface {
	isAddress()
}

// NoAddress marks a user that has not registered a delivery address yet.
type NoAddress struct{}

func (NoAddress) isAddress() {}

// FullAddress is a home delivery address.
type FullAddress struct {
	country string
	state   string
	city    string
	zipCode string
	line    string
}

func (FullAddress) isAddress() {}

// NewFullAddress validates a delivery address. Country, state, city and zip code
// are single tokens in the stored form, so they must not contain spaces.
func NewFullAddress(country, state, city, zipCode, line string) (FullAddress, error) {
	tokens := []struct{ name, value string }{
		{"country", country},
		{"state", state},
		{"city", city},
		{"zipCode", zipCode},
	}

	for _, token := range tokens {
		if token.value == "" {
			return FullAddress{}, errs.NewValueIsRequiredError(token.name)
		}
		if strings.ContainsAny(token.value, " \t\n") {
			return FullAddress{}, errs.NewValueIsInvalidErrorWithCause(
				token.name,
				fmt.Errorf("%q must not contain spaces", token.value),
			)
		}
	}

	if strings.TrimSpace(line) == "" {
		return FullAddress{}, errs.NewValueIsRequiredError("address line")
	}

	return FullAddress{country: country, state: state, city: city, zipCode: zipCode, line: line}, nil
}

func (a FullAddress) Country() string { return a.country }
func (a FullAddress) State() string   { return a.state }
func (a FullAddress) City() string    { return a.city }
func (a FullAddress) ZipCode() string { return a.zipCode }
func (a FullAddress) Line() string    { return a.line }

// FormatAddress renders the stored text form:
// "not-specified" or "full <country> <state> <city> <zip> <line>".
func FormatAddress(address Address) (string, error) {
	switch a := address.(type) {
	case NoAddress:
		return noAddressText, nil
	case FullAddress:
		return strings.Join([]string{fullAddressText, a.country, a.state, a.city, a.zipCode, a.line}, " "), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("address", fmt.Errorf("unsupported address %T", address))
	}
}

// ParseAddress is the inverse of FormatAddress. The address line may contain spaces.
func ParseAddress(value string) (Address, error) {
	fields := strings.Split(value, " ")

	switch {
	case len(fields) == 1 && fields[0] == noAddressText:
		return NoAddress{}, nil
	case len(fields) >= 6 && fields[0] == fullAddressText:
		return NewFullAddress(fields[1], fields[2], fields[3], fields[4], strings.Join(fields[5:], " "))
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("address", fmt.Errorf("%q has an unknown format", value))
	}
}
