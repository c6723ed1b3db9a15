package queries

import (
	"context"

	"forwarding/internal/core/domain/model/pricing"
)

// CalculatePriceQueryHandler prices with a fixed policy and touches no storage.
type CalculatePriceQueryHandler struct {
	policy pricing.Policy
}

func NewCalculatePriceQueryHandler(policy pricing.Policy) CalculatePriceQueryHandler {
	return CalculatePriceQueryHandler{policy: policy}
}

func (h CalculatePriceQueryHandler) Handle(
	_ context.Context,
	query CalculatePriceQuery,
) (CalculatePriceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CalculatePriceQueryResponse{}, err
	}

	price, err := h.policy.NewPackagePrice(
		query.Dimensions(),
		query.WeightGrams(),
		query.HouseDelivery(),
		query.PricePerKg(),
	)
	if err != nil {
		return CalculatePriceQueryResponse{}, err
	}

	return CalculatePriceQueryResponse{
		IsVolumetric:          price.IsCalculatingVolumetricWeight(),
		VolumetricWeightPrice: price.VolumetricWeightPrice(),
		WeightPrice:           price.WeightPrice(),
		TotalPrice:            price.TotalPrice(),
	}, nil
}
