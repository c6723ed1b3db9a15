package account

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/core/domain/model/pricing"
	"forwarding/internal/pkg/errs"
)

const maxPaymentSessionIDLength = 255

var (
	// ErrUserIsNotConstructed is returned when a User was not created through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

	// ErrInsufficientBalance is the sentinel behind InsufficientBalanceError.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// InsufficientBalanceError is returned by PayForPackage when the balance is
// lower than the shipping price.
type InsufficientBalanceError struct {
	Balance  kernel.Money
	Required kernel.Money
}

func NewInsufficientBalanceError(balance, required kernel.Money) *InsufficientBalanceError {
	return &InsufficientBalanceError{Balance: balance, Required: required}
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("%s: balance is %s, required %s", ErrInsufficientBalance, e.Balance, e.Required)
}

func (e *InsufficientBalanceError) Unwrap() error {
	return ErrInsufficientBalance
}

// User is the balance ledger of a customer. The balance changes only through
// AddBalance and PayForPackage and never goes below zero.
type User struct {
	id         kernel.UUID
	balance    kernel.Money
	address    kernel.Address
	packageIDs []kernel.UUID
	version    int

	isConstructed bool
}

// NewUser opens an empty balance in currency. The user has no delivery address yet.
func NewUser(id kernel.UUID, currency kernel.Currency) (*User, error) {
	balance, err := kernel.ZeroMoney(currency)
	if err != nil {
		return nil, err
	}

	return RestoreUser(id, balance, kernel.NoAddress{}, nil, 0)
}

func RestoreUser(
	id kernel.UUID,
	balance kernel.Money,
	address kernel.Address,
	packageIDs []kernel.UUID,
	version int,
) (*User, error) {
	u := &User{
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setBalance(balance),
		u.SetAddress(address),
	); err != nil {
		return nil, err
	}

	u.packageIDs = slices.Clone(packageIDs)
	return u, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Balance() kernel.Money {
	return u.balance
}

func (u *User) Address() kernel.Address {
	return u.address
}

// PackageIDs returns a copy of the identifiers of packages owned by the user.
func (u *User) PackageIDs() []kernel.UUID {
	return slices.Clone(u.packageIDs)
}

func (u *User) Version() int {
	return u.version
}

// Owns reports whether the package belongs to the user.
func (u *User) Owns(p *parcel.Package) bool {
	return p.OwnerID().IsEqual(u.id)
}

// SetAddress replaces the delivery address. A nil address is rejected.
func (u *User) SetAddress(address kernel.Address) error {
	if address == nil {
		return errs.NewValueIsRequiredError("address")
	}

	u.address = address
	return nil
}

// AttachPackage adds a package to the user's collection. Attaching the same package twice is a no-op.
func (u *User) AttachPackage(packageID kernel.UUID) {
	if slices.ContainsFunc(u.packageIDs, packageID.IsEqual) {
		return
	}
	u.packageIDs = append(u.packageIDs, packageID)
}

// PayForPackage debits the shipping price of p under policy and marks it paid.
//
// Business Rules:
//   - The package must be measured and not paid yet
//   - The price must be in the balance currency; no conversion is applied
//   - The balance must cover the price
func (u *User) PayForPackage(p *parcel.Package, policy pricing.Policy) (UserPaidForPackage, error) {
	if err := errors.Join(u.Validate(), p.Validate()); err != nil {
		return UserPaidForPackage{}, err
	}

	if p.IsPaid() {
		return UserPaidForPackage{}, fmt.Errorf("%w: %s", parcel.ErrPackageAlreadyPaid, p.TrackingCode())
	}

	price, err := p.ShippingPriceWithPolicy(policy)
	if err != nil {
		return UserPaidForPackage{}, err
	}

	enough, err := u.balance.GreaterThanOrEqual(price)
	if err != nil {
		return UserPaidForPackage{}, err
	}
	if !enough {
		return UserPaidForPackage{}, NewInsufficientBalanceError(u.balance, price)
	}

	balance, err := u.balance.Sub(price)
	if err != nil {
		return UserPaidForPackage{}, err
	}

	if err = p.MarkPaid(); err != nil {
		return UserPaidForPackage{}, err
	}
	u.balance = balance

	return UserPaidForPackage{
		UserID:    u.id,
		PackageID: p.ID(),
		Amount:    price,
	}, nil
}

// AddBalance credits a top-up that was paid with method in the payment session sessionID.
// The amount must be positive and in the balance currency.
func (u *User) AddBalance(amount kernel.Money, method PaymentMethod, sessionID string) (UserBalanceTopUp, error) {
	if err := u.Validate(); err != nil {
		return UserBalanceTopUp{}, err
	}

	if err := errors.Join(
		amount.Validate(),
		method.Validate(),
		validateSessionID(sessionID),
	); err != nil {
		return UserBalanceTopUp{}, err
	}

	if amount.IsZero() {
		return UserBalanceTopUp{}, errs.NewValueIsOutOfRangeError("amount", amount.Amount(), 1, "unbounded")
	}

	balance, err := u.balance.Add(amount)
	if err != nil {
		return UserBalanceTopUp{}, err
	}
	u.balance = balance

	return UserBalanceTopUp{
		UserID:           u.id,
		Amount:           amount,
		PaymentMethod:    method,
		PaymentSessionID: sessionID,
	}, nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	u.id = id
	return nil
}

func (u *User) setBalance(balance kernel.Money) error {
	if err := balance.Validate(); err != nil {
		return err
	}

	u.balance = balance
	return nil
}

func validateSessionID(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return errs.NewValueIsRequiredError("paymentSessionID")
	}
	if len(sessionID) > maxPaymentSessionIDLength {
		return errs.NewValueIsOutOfRangeError("paymentSessionID length", len(sessionID), 1, maxPaymentSessionIDLength)
	}
	return nil
}
