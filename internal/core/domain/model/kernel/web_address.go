package kernel

import (
	"fmt"
	"net/url"

	"forwarding/internal/pkg/errs"
)

const maxWebAddressLength = 255

// WebAddress is the product page a customer declares for a purchased item.
type WebAddress struct {
	value string
}

// NewWebAddress accepts a non-empty absolute http(s) URL of at most 255 characters.
func NewWebAddress(value string) (WebAddress, error) {
	if value == "" {
		return WebAddress{}, errs.NewValueIsRequiredError("websiteAddress")
	}

	if len(value) > maxWebAddressLength {
		return WebAddress{}, errs.NewValueIsOutOfRangeError("websiteAddress length", len(value), 1, maxWebAddressLength)
	}

	u, err := url.Parse(value)
	if err != nil {
		return WebAddress{}, errs.NewValueIsInvalidErrorWithCause("websiteAddress", err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return WebAddress{}, errs.NewValueIsInvalidErrorWithCause(
			"websiteAddress",
			fmt.Errorf("%q is not an absolute http(s) URL", value),
		)
	}

	return WebAddress{value: value}, nil
}

func (w WebAddress) String() string {
	return w.value
}
