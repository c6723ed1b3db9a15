package commands_test

import (
	"testing"
	"time"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/core/domain/model/pricing"
	"forwarding/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreatePackageCommand_ValidInput(t *testing.T) {
	ownerID := kernel.NewUUID()
	d := parcel.Declaration{
		Category:    parcel.Books,
		Description: "Two novels",
		RetailPrice: usd(t, 2500),
		ItemCount:   2,
	}

	cmd, err := commands.NewCreatePackageCommand(ownerID, d)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, ownerID, cmd.OwnerID())
	assert.Equal(t, d, cmd.Declaration())
}

func TestNewCreatePackageCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCreatePackageCommand(kernel.UUID{}, parcel.Declaration{})

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewCreatePackageCommand_BlankDescription(t *testing.T) {
	_, err := commands.NewCreatePackageCommand(kernel.NewUUID(), parcel.Declaration{
		Category:    parcel.Books,
		Description: "   ",
		RetailPrice: usd(t, 2500),
		ItemCount:   1,
	})

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreatePersonalPackageCommand_SameParties(t *testing.T) {
	id := kernel.NewUUID()

	_, err := commands.NewCreatePersonalPackageCommand(id, id, usd(t, 100))

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewReceivePackageAtWarehouseCommand_Rate(t *testing.T) {
	code := kernel.GenerateTrackingCode()
	eur, err := kernel.NewMoney(kernel.EUR, 800)
	require.NoError(t, err)

	tests := []struct {
		name    string
		rate    kernel.Money
		wantErr error
	}{
		{"valid", usd(t, 800), nil},
		{"maximum", usd(t, 1000), nil},
		{"zero", usd(t, 0), errs.ErrValueIsOutOfRange},
		{"above maximum", usd(t, 1010), errs.ErrValueIsOutOfRange},
		{"single cents", usd(t, 805), errs.ErrValueIsInvalid},
		{"not usd", eur, errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := commands.NewReceivePackageAtWarehouseCommand(kernel.NewUUID(), code, dimensions(t), 1500, tt.rate)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.rate, cmd.PricePerKg())
			assert.Equal(t, code, cmd.TrackingCode())
		})
	}
}

func TestNewReceivePackageAtWarehouseCommand_InvalidWeight(t *testing.T) {
	for _, grams := range []int64{0, pricing.MaxWeightGrams + 1, 9_300_000_000_000_000} {
		_, err := commands.NewReceivePackageAtWarehouseCommand(
			kernel.NewUUID(), kernel.GenerateTrackingCode(), dimensions(t), grams, usd(t, 800))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "weight %d", grams)
	}
}

func TestNewCreateRaceCommand(t *testing.T) {
	tests := []struct {
		name        string
		raceName    string
		origin      string
		destination string
		arrival     int
		wantErr     error
	}{
		{"valid", "NYC-TBS-01", "New York", "Tbilisi", 20, nil},
		{"blank name", " ", "New York", "Tbilisi", 20, errs.ErrValueIsRequired},
		{"long name", "a race name that is longer than 32", "New York", "Tbilisi", 20, errs.ErrValueIsOutOfRange},
		{"long origin", "NYC-TBS-01", "New York City JFK", "Tbilisi", 20, errs.ErrValueIsOutOfRange},
		{"arrival before start", "NYC-TBS-01", "New York", "Tbilisi", -1, errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := now.Add(24 * time.Hour)
			arrival := start.Add(time.Duration(tt.arrival) * time.Hour)
			cmd, err := commands.NewCreateRaceCommand(tt.raceName, tt.origin, tt.destination, start, arrival)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raceName, cmd.Name())
			assert.True(t, cmd.Arrival().After(cmd.Start()))
		})
	}
}

func TestNewTopUpBalanceCommand_InvalidSession(t *testing.T) {
	_, err := commands.NewTopUpBalanceCommand(kernel.NewUUID(), usd(t, 100), 0, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewRelayOutboxCommand_BatchSize(t *testing.T) {
	_, err := commands.NewRelayOutboxCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	cmd, err := commands.NewRelayOutboxCommand(100)
	require.NoError(t, err)
	assert.Equal(t, 100, cmd.BatchSize())
}

func TestNewCreateUserCommand_DefaultsToNoAddress(t *testing.T) {
	cmd, err := commands.NewCreateUserCommand(kernel.NewUUID(), kernel.GEL, nil)

	require.NoError(t, err)
	assert.Equal(t, kernel.NoAddress{}, cmd.Address())
	assert.Equal(t, kernel.GEL, cmd.Currency())
}
