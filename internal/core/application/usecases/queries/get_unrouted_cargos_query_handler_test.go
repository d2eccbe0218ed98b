package queries_test

import (
	"context"
	"testing"
	"time"

	"cargotracker/internal/adapters/out/postgres/cargorepo"
	"cargotracker/internal/core/application/usecases/queries"
	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetUnroutedCargosQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetUnroutedCargosQueryHandler
	cargoRepo *cargorepo.GormCargoRepository
}

func (suite *GetUnroutedCargosQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&cargorepo.CargoDTO{}, &cargorepo.LegDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetUnroutedCargosQueryHandler(db)
	suite.cargoRepo = cargorepo.NewGormCargoRepository(db)
}

func (suite *GetUnroutedCargosQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE cargos, legs CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetUnroutedCargosQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetUnroutedCargosQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetUnroutedCargosQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetUnroutedCargosQueryHandlerTestSuite) TestHandle_MixedCargos_ReturnsOnlyUnrouted() {
	ctx := context.Background()

	unrouted1 := suite.bookCargo("AAA111")
	unrouted2 := suite.bookCargo("BBB222")
	routed := suite.bookCargo("CCC333")
	suite.Require().NoError(routed.AssignItinerary(suite.oneLegItinerary(), handling.EmptyHistory()))

	for _, aggregate := range []*cargo.Cargo{unrouted1, unrouted2, routed} {
		suite.Require().NoError(suite.cargoRepo.Add(ctx, aggregate))
	}

	result, err := suite.handler.Handle(ctx, queries.NewGetUnroutedCargosQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("AAA111", result[0].TrackingID.String())
	suite.Equal("BBB222", result[1].TrackingID.String())
	suite.Equal("USCHI", result[0].Origin.String())
	suite.Equal("FIHEL", result[0].Destination.String())
	suite.True(result[0].ArrivalDeadline.Equal(baseTime.Add(30 * 24 * time.Hour)))
}

func (suite *GetUnroutedCargosQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetUnroutedCargosQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetUnroutedCargosQuery constructor")
}

func (suite *GetUnroutedCargosQueryHandlerTestSuite) bookCargo(trackingID string) *cargo.Cargo {
	id, err := kernel.NewTrackingID(trackingID)
	suite.Require().NoError(err)

	origin, err := kernel.NewUnLocode("USCHI")
	suite.Require().NoError(err)

	destination, err := kernel.NewUnLocode("FIHEL")
	suite.Require().NoError(err)

	spec, err := cargo.NewRouteSpecification(origin, destination, baseTime.Add(30*24*time.Hour))
	suite.Require().NoError(err)

	aggregate, err := cargo.NewCargo(id, spec)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *GetUnroutedCargosQueryHandlerTestSuite) oneLegItinerary() *cargo.Itinerary {
	voyageNumber, err := voyage.NewNumber("V0100")
	suite.Require().NoError(err)

	load, err := kernel.NewUnLocode("USCHI")
	suite.Require().NoError(err)

	unload, err := kernel.NewUnLocode("FIHEL")
	suite.Require().NoError(err)

	leg, err := cargo.NewLeg(
		voyageNumber, load, unload, baseTime.Add(24*time.Hour), baseTime.Add(10*24*time.Hour))
	suite.Require().NoError(err)

	itinerary, err := cargo.NewItinerary([]cargo.Leg{leg})
	suite.Require().NoError(err)
	return itinerary
}

func TestGetUnroutedCargosQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetUnroutedCargosQueryHandlerTestSuite))
}
