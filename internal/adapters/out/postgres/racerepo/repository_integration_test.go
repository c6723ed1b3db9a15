package racerepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	postgresadapter "forwarding/internal/adapters/out/postgres"
	"forwarding/internal/adapters/out/postgres/packagerepo"
	"forwarding/internal/adapters/out/postgres/pgtest"
	"forwarding/internal/adapters/out/postgres/racerepo"
	"forwarding/internal/core/domain/model/account"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/core/domain/model/race"
	"forwarding/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type RaceRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *racerepo.GormRaceRepository
	tracker    *MockAggregateTracker
	start      time.Time
}

func (suite *RaceRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Run(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.Require().NoError(postgresadapter.Migrate(db))
	suite.start = time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
}

func (suite *RaceRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE " + strings.Join(postgresadapter.Tables, ", ")).Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	suite.repository = racerepo.NewGormRaceRepository(suite.db, suite.tracker)
}

func (suite *RaceRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RaceRepositoryIntegrationTestSuite) newRace(name string) *race.Race {
	r, err := race.NewRace(name, "NYC", "TBS", suite.start, suite.start.Add(20*time.Hour))
	suite.Require().NoError(err)
	return r
}

func (suite *RaceRepositoryIntegrationTestSuite) TestAdd_ThenGet() {
	ctx := context.Background()
	r := suite.newRace("NYC-TBS-01")

	suite.Require().NoError(suite.repository.Add(ctx, r))

	got, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Equal("NYC-TBS-01", got.Name())
	suite.Equal("NYC", got.Origin())
	suite.Equal("TBS", got.Destination())
	suite.True(got.Start().Equal(suite.start))
	suite.True(got.Arrival().Equal(suite.start.Add(20 * time.Hour)))
	suite.Empty(got.PackageIDs())

	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", r.ID(), r)
}

func (suite *RaceRepositoryIntegrationTestSuite) TestAdd_NameTaken() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newRace("NYC-TBS-01")))

	err := suite.repository.Add(ctx, suite.newRace("NYC-TBS-01"))

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *RaceRepositoryIntegrationTestSuite) TestGet_LoadsDispatchedPackages() {
	ctx := context.Background()
	r := suite.newRace("NYC-TBS-02")
	suite.Require().NoError(suite.repository.Add(ctx, r))

	owner, err := account.NewUser(kernel.NewUUID(), kernel.USD)
	suite.Require().NoError(err)
	retail, err := kernel.NewMoney(kernel.USD, 1500)
	suite.Require().NoError(err)
	rate, err := kernel.NewMoney(kernel.USD, 800)
	suite.Require().NoError(err)
	dims, err := kernel.NewDimensions(30, 20, 10)
	suite.Require().NoError(err)

	p, err := parcel.NewPackage(parcel.Declaration{
		Category:    parcel.Books,
		Description: "Novel",
		RetailPrice: retail,
		ItemCount:   1,
	}, owner, suite.start.Add(-72*time.Hour))
	suite.Require().NoError(err)
	staff := kernel.NewUUID()
	_, err = p.ArrivedAtWarehouse(staff, dims, 400, suite.start.Add(-48*time.Hour), rate)
	suite.Require().NoError(err)
	_, err = p.SentToDestination(staff, r, suite.start.Add(-time.Hour))
	suite.Require().NoError(err)

	packages := packagerepo.NewGormPackageRepository(suite.db, suite.tracker)
	suite.Require().NoError(packages.Add(ctx, p))

	got, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Require().Len(got.PackageIDs(), 1)
	suite.True(p.ID().IsEqual(got.PackageIDs()[0]))
}

func (suite *RaceRepositoryIntegrationTestSuite) TestExistsByName() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newRace("NYC-TBS-03")))

	exists, err := suite.repository.ExistsByName(ctx, "NYC-TBS-03")
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.ExistsByName(ctx, "NYC-TBS-04")
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *RaceRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestRaceRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RaceRepositoryIntegrationTestSuite))
}
