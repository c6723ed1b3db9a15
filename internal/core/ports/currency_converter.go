package ports

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"
)

// CurrencyConverter converts top-up amounts into a balance currency.
// It is never used for pricing.
type CurrencyConverter interface {
	ConvertTo(ctx context.Context, amount kernel.Money, target kernel.Currency) (kernel.Money, error)
}
