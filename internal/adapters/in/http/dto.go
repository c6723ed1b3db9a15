package http

import (
	"time"

	"forwarding/internal/core/application/usecases/queries"
	"forwarding/internal/core/domain/model/kernel"
)

// MoneyDTO carries minor units, e.g. {"currency":"USD","amount":1600} is $16.00.
type MoneyDTO struct {
	Currency string `json:"currency" validate:"required,len=3"`
	Amount   int64  `json:"amount" validate:"gte=0"`
}

func (m MoneyDTO) toDomain() (kernel.Money, error) {
	return kernel.NewMoney(kernel.Currency(m.Currency), m.Amount)
}

type MoneyResponse struct {
	Currency  string `json:"currency"`
	Amount    int64  `json:"amount"`
	Formatted string `json:"formatted"`
}

func moneyResponse(m kernel.Money) MoneyResponse {
	return MoneyResponse{
		Currency:  string(m.Currency()),
		Amount:    m.Amount(),
		Formatted: m.FormattedValue(),
	}
}

type AddressDTO struct {
	Country string `json:"country" validate:"required"`
	State   string `json:"state" validate:"required"`
	City    string `json:"city" validate:"required"`
	ZipCode string `json:"zipCode" validate:"required"`
	Line    string `json:"line" validate:"required"`
}

func (a AddressDTO) toDomain() (kernel.FullAddress, error) {
	return kernel.NewFullAddress(a.Country, a.State, a.City, a.ZipCode, a.Line)
}

type CreateUserRequest struct {
	Currency string      `json:"currency" validate:"required,len=3"`
	Address  *AddressDTO `json:"address"`
}

type TopUpRequest struct {
	Amount        MoneyDTO `json:"amount"`
	PaymentMethod string   `json:"paymentMethod" validate:"required,oneof=Card BankTransfer"`
	SessionID     string   `json:"sessionId" validate:"required,max=255"`
}

type BalanceResponse struct {
	Balance MoneyResponse `json:"balance"`
}

type CreatePackageRequest struct {
	TrackingCode   string   `json:"trackingCode"`
	Category       string   `json:"category" validate:"required"`
	Description    string   `json:"description" validate:"required"`
	WebsiteAddress string   `json:"websiteAddress"`
	RetailPrice    MoneyDTO `json:"retailPrice"`
	ItemCount      int      `json:"itemCount" validate:"gte=1"`
	HouseDelivery  bool     `json:"houseDelivery"`
}

type CreatePersonalPackageRequest struct {
	ReceiverID  string   `json:"receiverId" validate:"required,uuid"`
	RetailPrice MoneyDTO `json:"retailPrice"`
}

type CreatePackageResponse struct {
	ID           string `json:"id"`
	TrackingCode string `json:"trackingCode"`
}

type WarehouseReceptionRequest struct {
	TrackingCode string   `json:"trackingCode" validate:"required"`
	Length       float64  `json:"length" validate:"gt=0,lte=1000"`
	Width        float64  `json:"width" validate:"gt=0,lte=1000"`
	Height       float64  `json:"height" validate:"gt=0,lte=1000"`
	WeightGrams  int64    `json:"weightGrams" validate:"gt=0,lte=1000000"`
	PricePerKg   MoneyDTO `json:"pricePerKg"`
}

type WarehouseReceptionResponse struct {
	Result string `json:"result"`
}

type CreateRaceRequest struct {
	Name        string    `json:"name" validate:"required,max=32"`
	Origin      string    `json:"origin" validate:"required,max=16"`
	Destination string    `json:"destination" validate:"required,max=16"`
	Start       time.Time `json:"start" validate:"required"`
	Arrival     time.Time `json:"arrival" validate:"required"`
}

type IDResponse struct {
	ID string `json:"id"`
}

type SendPackageRequest struct {
	PackageID string `json:"packageId" validate:"required,uuid"`
}

type PaymentResponse struct {
	Charged MoneyResponse `json:"charged"`
}

type PriceRequest struct {
	Length        float64  `json:"length" validate:"gt=0,lte=1000"`
	Width         float64  `json:"width" validate:"gt=0,lte=1000"`
	Height        float64  `json:"height" validate:"gt=0,lte=1000"`
	WeightGrams   int64    `json:"weightGrams" validate:"gt=0,lte=1000000"`
	HouseDelivery bool     `json:"houseDelivery"`
	PricePerKg    MoneyDTO `json:"pricePerKg"`
}

type PriceResponse struct {
	IsVolumetric          bool          `json:"isVolumetric"`
	VolumetricWeightPrice MoneyResponse `json:"volumetricWeightPrice"`
	WeightPrice           MoneyResponse `json:"weightPrice"`
	TotalPrice            MoneyResponse `json:"totalPrice"`
}

type ReceptionStatusResponse struct {
	Status  string    `json:"status"`
	StaffID *string   `json:"staffId,omitempty"`
	Date    time.Time `json:"date"`
}

type PackageResponse struct {
	ID            string                    `json:"id"`
	TrackingCode  string                    `json:"trackingCode"`
	Category      string                    `json:"category"`
	Description   string                    `json:"description"`
	ItemCount     int                       `json:"itemCount"`
	OwnerID       string                    `json:"ownerId"`
	Status        string                    `json:"status"`
	HouseDelivery bool                      `json:"houseDelivery"`
	IsPaid        bool                      `json:"isPaid"`
	IsProhibited  bool                      `json:"isProhibited"`
	RaceID        *string                   `json:"raceId,omitempty"`
	ShippingPrice *MoneyResponse            `json:"shippingPrice,omitempty"`
	History       []ReceptionStatusResponse `json:"history"`
}

func packageResponse(v queries.GetPackageByTrackingCodeQueryResponse) PackageResponse {
	response := PackageResponse{
		ID:            v.ID.String(),
		TrackingCode:  v.TrackingCode,
		Category:      v.Category.String(),
		Description:   v.Description,
		ItemCount:     v.ItemCount,
		OwnerID:       v.OwnerID.String(),
		Status:        v.Status.String(),
		HouseDelivery: v.HouseDelivery,
		IsPaid:        v.IsPaid,
		IsProhibited:  v.IsProhibited,
		History:       make([]ReceptionStatusResponse, 0, len(v.History)),
	}

	if v.RaceID != nil {
		id := v.RaceID.String()
		response.RaceID = &id
	}
	if v.ShippingPrice != nil {
		price := moneyResponse(*v.ShippingPrice)
		response.ShippingPrice = &price
	}

	for _, h := range v.History {
		entry := ReceptionStatusResponse{Status: h.Status.String(), Date: h.Date}
		if h.StaffID != nil {
			id := h.StaffID.String()
			entry.StaffID = &id
		}
		response.History = append(response.History, entry)
	}

	return response
}

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
