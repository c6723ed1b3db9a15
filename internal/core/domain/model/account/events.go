package account

import (
	"forwarding/internal/core/domain/model/kernel"
)

const (
	UserPaidForPackageEventType = "UserPaidForPackage"
	UserBalanceTopUpEventType   = "UserBalanceTopUp"
)

// UserPaidForPackage is returned by User.PayForPackage.
type UserPaidForPackage struct {
	UserID    kernel.UUID  `json:"userId"`
	PackageID kernel.UUID  `json:"packageId"`
	Amount    kernel.Money `json:"amount"`
}

func (e UserPaidForPackage) EventType() string        { return UserPaidForPackageEventType }
func (e UserPaidForPackage) AggregateID() kernel.UUID { return e.UserID }

// UserBalanceTopUp is returned by User.AddBalance.
type UserBalanceTopUp struct {
	UserID           kernel.UUID   `json:"userId"`
	Amount           kernel.Money  `json:"amount"`
	PaymentMethod    PaymentMethod `json:"paymentMethod"`
	PaymentSessionID string        `json:"paymentSessionId"`
}

func (e UserBalanceTopUp) EventType() string        { return UserBalanceTopUpEventType }
func (e UserBalanceTopUp) AggregateID() kernel.UUID { return e.UserID }
