// Package currency converts top-up amounts between currencies with a fixed
// rate table. Every rate is the price of one unit of the currency in the base
// currency, e.g. "USD:2.70,EUR:2.95,GEL:1" for a GEL base.
package currency

import (
	"context"
	"fmt"
	"strings"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Rates maps a currency to its price in the base currency.
type Rates map[kernel.Currency]decimal.Decimal

// ParseRates reads the "CUR:rate,CUR:rate" form used in configuration.
func ParseRates(value string) (Rates, error) {
	rates := make(Rates)

	for _, pair := range strings.Split(value, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		code, rawRate, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("currency rates", fmt.Errorf("%q is not CUR:rate", pair))
		}

		currency, err := kernel.NewCurrency(strings.TrimSpace(code))
		if err != nil {
			return nil, err
		}

		rate, err := decimal.NewFromString(strings.TrimSpace(rawRate))
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("currency rates", fmt.Errorf("rate of %s: %w", currency, err))
		}
		if !rate.IsPositive() {
			return nil, errs.NewValueIsOutOfRangeError("rate of "+string(currency), rate.String(), "> 0", "unbounded")
		}

		rates[currency] = rate
	}

	if len(rates) == 0 {
		return nil, errs.NewValueIsRequiredError("currency rates")
	}

	return rates, nil
}

// RateTableConverter implements ports.CurrencyConverter.
type RateTableConverter struct {
	rates Rates
}

func NewRateTableConverter(rates Rates) *RateTableConverter {
	return &RateTableConverter{rates: rates}
}

// ConvertTo converts through the base currency and truncates to whole minor
// units, so the customer is never credited more than was paid.
func (c *RateTableConverter) ConvertTo(
	_ context.Context,
	amount kernel.Money,
	target kernel.Currency,
) (kernel.Money, error) {
	if err := amount.Validate(); err != nil {
		return kernel.Money{}, err
	}

	if amount.Currency() == target {
		return amount, nil
	}

	from, err := c.rate(amount.Currency())
	if err != nil {
		return kernel.Money{}, err
	}
	to, err := c.rate(target)
	if err != nil {
		return kernel.Money{}, err
	}

	converted := decimal.NewFromInt(amount.Amount()).
		Mul(from).
		DivRound(to, 8).
		Truncate(0)

	return kernel.NewMoney(target, converted.IntPart())
}

func (c *RateTableConverter) rate(currency kernel.Currency) (decimal.Decimal, error) {
	rate, ok := c.rates[currency]
	if !ok {
		return decimal.Decimal{}, errs.NewValueIsInvalidErrorWithCause(
			"currency", fmt.Errorf("no exchange rate for %s", currency))
	}
	return rate, nil
}
