package commands_test

import (
	"context"
	"testing"
	"time"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/account"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/core/domain/model/race"
	"forwarding/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type MockPackageRepository struct{ mock.Mock }

func (m *MockPackageRepository) Add(ctx context.Context, p *parcel.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPackageRepository) Update(ctx context.Context, p *parcel.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPackageRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Package), args.Error(1)
}

func (m *MockPackageRepository) GetByTrackingCode(ctx context.Context, code kernel.TrackingCode) (*parcel.Package, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Package), args.Error(1)
}

type MockRaceRepository struct{ mock.Mock }

func (m *MockRaceRepository) Add(ctx context.Context, r *race.Race) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRaceRepository) Get(ctx context.Context, id kernel.UUID) (*race.Race, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*race.Race), args.Error(1)
}

func (m *MockRaceRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *account.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *account.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*account.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, occurredAt time.Time, events ...kernel.DomainEvent) error {
	args := m.Called(ctx, occurredAt, events)
	return args.Error(0)
}

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.OutboxMessage), args.Error(1)
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, publishedAt time.Time, ids ...kernel.UUID) error {
	args := m.Called(ctx, publishedAt, ids)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) PackageRepository() ports.PackageRepository {
	args := m.Called()
	return args.Get(0).(ports.PackageRepository)
}

func (m *MockUoW) RaceRepository() ports.RaceRepository {
	args := m.Called()
	return args.Get(0).(ports.RaceRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockPackageUoWFactory struct{ mock.Mock }

func (m *MockPackageUoWFactory) Create() commands.PackageUoW {
	args := m.Called()
	return args.Get(0).(commands.PackageUoW)
}

type MockRaceUoWFactory struct{ mock.Mock }

func (m *MockRaceUoWFactory) Create() commands.RaceUoW {
	args := m.Called()
	return args.Get(0).(commands.RaceUoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	args := m.Called()
	return args.Get(0).(commands.OutboxUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	args := m.Called(ctx, messages)
	return args.Error(0)
}

type MockCurrencyConverter struct{ mock.Mock }

func (m *MockCurrencyConverter) ConvertTo(
	ctx context.Context,
	amount kernel.Money,
	target kernel.Currency,
) (kernel.Money, error) {
	args := m.Called(ctx, amount, target)
	return args.Get(0).(kernel.Money), args.Error(1)
}

func eventOfType(eventType string) any {
	return mock.MatchedBy(func(events []kernel.DomainEvent) bool {
		return len(events) == 1 && events[0].EventType() == eventType
	})
}

func usd(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(kernel.USD, amount)
	require.NoError(t, err)
	return m
}

func userWithBalance(t *testing.T, amount int64) *account.User {
	t.Helper()
	u, err := account.RestoreUser(kernel.NewUUID(), usd(t, amount), kernel.NoAddress{}, nil, 0)
	require.NoError(t, err)
	return u
}

func futureRace(t *testing.T) *race.Race {
	t.Helper()
	r, err := race.NewRace("NYC-TBS-01", "NYC", "TBS", now.Add(time.Hour), now.Add(20*time.Hour))
	require.NoError(t, err)
	return r
}

// packageIn moves a new package of owner up to status. Its shipping price is USD 16.00.
func packageIn(t *testing.T, owner parcel.Owner, status parcel.Status) *parcel.Package {
	t.Helper()
	p, err := parcel.NewPackage(parcel.Declaration{
		Category:    parcel.Clothing,
		Description: "Jacket",
		RetailPrice: usd(t, 9900),
		ItemCount:   1,
	}, owner, now.Add(-72*time.Hour))
	require.NoError(t, err)

	staff := kernel.NewUUID()
	if status >= parcel.InWarehouse {
		_, err = p.ArrivedAtWarehouse(staff, dimensions(t), 2000, now.Add(-48*time.Hour), usd(t, 800))
		require.NoError(t, err)
	}
	if status >= parcel.InTransit {
		_, err = p.SentToDestination(staff, futureRace(t), now.Add(-47*time.Hour))
		require.NoError(t, err)
	}
	if status >= parcel.Arrived {
		_, err = p.ArrivedAtDestination(staff, now.Add(-24*time.Hour))
		require.NoError(t, err)
	}
	if status >= parcel.Delivered {
		require.NoError(t, p.MarkPaid())
		_, err = p.Delivered(now.Add(-time.Hour))
		require.NoError(t, err)
	}
	return p
}

func dimensions(t *testing.T) kernel.Dimensions {
	t.Helper()
	d, err := kernel.NewDimensions(60, 60, 60)
	require.NoError(t, err)
	return d
}
