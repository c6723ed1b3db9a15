// Package userrepo persists user balances and delivery addresses.
package userrepo

import (
	"forwarding/internal/core/domain/model/account"
	"forwarding/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO is a row of the users table. Balance uses the Money storage form
// ("USD-1600") and Address the kernel.FormatAddress form.
type UserDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Balance string    `gorm:"type:varchar(32);not null"`
	Address string    `gorm:"type:text;not null"`
	Version int       `gorm:"type:int;not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *account.User) (UserDTO, error) {
	address, err := kernel.FormatAddress(u.Address())
	if err != nil {
		return UserDTO{}, err
	}

	return UserDTO{
		ID:      u.ID().Bytes(),
		Balance: u.Balance().String(),
		Address: address,
		Version: u.Version(),
	}, nil
}

func toDomain(dto UserDTO, packageIDs []uuid.UUID) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	balance, err := kernel.ParseMoney(dto.Balance)
	if err != nil {
		return nil, err
	}

	address, err := kernel.ParseAddress(dto.Address)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(packageIDs))
	for _, raw := range packageIDs {
		packageID, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, packageID)
	}

	return account.RestoreUser(id, balance, address, ids, dto.Version)
}
