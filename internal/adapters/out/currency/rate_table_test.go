package currency_test

import (
	"testing"

	"forwarding/internal/adapters/out/currency"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, c kernel.Currency, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(c, amount)
	require.NoError(t, err)
	return m
}

func TestParseRates(t *testing.T) {
	t.Run("valid table", func(t *testing.T) {
		rates, err := currency.ParseRates("USD:2.70, EUR:2.95,GEL:1")

		require.NoError(t, err)
		require.Len(t, rates, 3)
		assert.Equal(t, "2.7", rates[kernel.USD].String())
		assert.Equal(t, "1", rates[kernel.GEL].String())
	})

	tests := []struct {
		name  string
		value string
		want  error
	}{
		{"empty", "", errs.ErrValueIsRequired},
		{"missing separator", "USD2.70", errs.ErrValueIsInvalid},
		{"bad currency", "usd:2.70", errs.ErrValueIsInvalid},
		{"bad rate", "USD:abc", errs.ErrValueIsInvalid},
		{"zero rate", "USD:0", errs.ErrValueIsOutOfRange},
		{"negative rate", "USD:-1", errs.ErrValueIsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := currency.ParseRates(tt.value)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRateTableConverter_ConvertTo(t *testing.T) {
	rates, err := currency.ParseRates("USD:2.70,EUR:2.95,GEL:1")
	require.NoError(t, err)
	converter := currency.NewRateTableConverter(rates)

	tests := []struct {
		name   string
		amount kernel.Money
		target kernel.Currency
		want   int64
	}{
		{"same currency is unchanged", money(t, kernel.USD, 1234), kernel.USD, 1234},
		{"into the base currency", money(t, kernel.USD, 1000), kernel.GEL, 2700},
		{"out of the base currency", money(t, kernel.GEL, 1620), kernel.USD, 600},
		{"truncates fractions of a cent", money(t, kernel.GEL, 1000), kernel.USD, 370},
		{"between two foreign currencies", money(t, kernel.EUR, 1000), kernel.USD, 1092},
		{"zero stays zero", money(t, kernel.GEL, 0), kernel.USD, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, convErr := converter.ConvertTo(t.Context(), tt.amount, tt.target)

			require.NoError(t, convErr)
			assert.Equal(t, tt.target, got.Currency())
			assert.Equal(t, tt.want, got.Amount())
		})
	}

	t.Run("unknown currency", func(t *testing.T) {
		_, convErr := converter.ConvertTo(t.Context(), money(t, kernel.GBP, 100), kernel.USD)
		require.ErrorIs(t, convErr, errs.ErrValueIsInvalid)
	})

	t.Run("zero value money", func(t *testing.T) {
		_, convErr := converter.ConvertTo(t.Context(), kernel.Money{}, kernel.USD)
		require.ErrorIs(t, convErr, kernel.ErrMoneyIsNotConstructed)
	})
}
