package cmd

import (
	"fmt"
	"log/slog"

	"forwarding/internal/adapters/in/http"
	"forwarding/internal/adapters/out/currency"
	"forwarding/internal/adapters/out/kafka"
	"forwarding/internal/adapters/out/postgres"
	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/application/usecases/queries"
	"forwarding/internal/core/domain/model/pricing"
	"forwarding/internal/core/ports"
	"forwarding/internal/jobs"
	"forwarding/internal/pkg/clock"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      ports.Clock
	policy     pricing.Policy
	converter  ports.CurrencyConverter
	publisher  *kafka.Publisher
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	rates, err := currency.ParseRates(config.CurrencyRates)
	if err != nil {
		return nil, fmt.Errorf("CURRENCY_RATES: %w", err)
	}

	policy := pricing.DefaultPolicy()
	if config.PricingCombination == "sum" {
		policy = pricing.LegacySumPolicy()
	}

	return &CompositionRoot{
		config:     config,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clock.System{},
		policy:     policy,
		converter:  currency.NewRateTableConverter(rates),
		publisher: kafka.NewPublisher(kafka.Config{
			Brokers: config.KafkaBrokers,
			Topic:   config.KafkaEventsTopic,
		}),
	}, nil
}

// Close releases the broker connection.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

func (c *CompositionRoot) uow() FuncUoWFactory {
	return func() commands.UoW {
		return c.uowFactory.Create()
	}
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateUserCommandHandler(f)
}

func (c *CompositionRoot) CreateTopUpBalanceCommandHandler() commands.TopUpBalanceCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTopUpBalanceCommandHandler(f, c.converter, c.clock)
}

func (c *CompositionRoot) CreateChangeAddressCommandHandler() commands.ChangeAddressCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeAddressCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePackageCommandHandler() commands.CreatePackageCommandHandler {
	return commands.NewCreatePackageCommandHandler(c.uow(), c.clock)
}

func (c *CompositionRoot) CreateCreatePersonalPackageCommandHandler() commands.CreatePersonalPackageCommandHandler {
	return commands.NewCreatePersonalPackageCommandHandler(c.uow(), c.clock)
}

func (c *CompositionRoot) CreateReceivePackageAtWarehouseCommandHandler() commands.ReceivePackageAtWarehouseCommandHandler {
	return commands.NewReceivePackageAtWarehouseCommandHandler(c.uow(), c.clock)
}

func (c *CompositionRoot) CreateCreateRaceCommandHandler() commands.CreateRaceCommandHandler {
	var f commands.RaceUoWFactory = FuncRaceUoWFactory(func() commands.RaceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRaceCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateSendPackageToDestinationCommandHandler() commands.SendPackageToDestinationCommandHandler {
	return commands.NewSendPackageToDestinationCommandHandler(c.uow(), c.clock)
}

func (c *CompositionRoot) packageUoW() FuncPackageUoWFactory {
	return func() commands.PackageUoW {
		return c.uowFactory.Create()
	}
}

func (c *CompositionRoot) CreateReceivePackageAtDestinationCommandHandler() commands.ReceivePackageAtDestinationCommandHandler {
	return commands.NewReceivePackageAtDestinationCommandHandler(c.packageUoW(), c.clock)
}

func (c *CompositionRoot) CreateDeliverPackageCommandHandler() commands.DeliverPackageCommandHandler {
	return commands.NewDeliverPackageCommandHandler(c.packageUoW(), c.clock)
}

func (c *CompositionRoot) CreateFlagPackageAsProhibitedCommandHandler() commands.FlagPackageAsProhibitedCommandHandler {
	return commands.NewFlagPackageAsProhibitedCommandHandler(c.packageUoW(), c.clock)
}

func (c *CompositionRoot) CreatePayForShippingCommandHandler() commands.PayForShippingCommandHandler {
	return commands.NewPayForShippingCommandHandler(c.uow(), c.clock, c.policy)
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayOutboxCommandHandler(f, c.publisher, c.clock)
}

func (c *CompositionRoot) CreateGetPackageByTrackingCodeQueryHandler() queries.GetPackageByTrackingCodeQueryHandler {
	return queries.NewGetPackageByTrackingCodeQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateCalculatePriceQueryHandler() queries.CalculatePriceQueryHandler {
	return queries.NewCalculatePriceQueryHandler(c.policy)
}

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(http.Handlers{
		CreateUser:                  c.CreateCreateUserCommandHandler(),
		TopUpBalance:                c.CreateTopUpBalanceCommandHandler(),
		ChangeAddress:               c.CreateChangeAddressCommandHandler(),
		CreatePackage:               c.CreateCreatePackageCommandHandler(),
		CreatePersonalPackage:       c.CreateCreatePersonalPackageCommandHandler(),
		ReceivePackageAtWarehouse:   c.CreateReceivePackageAtWarehouseCommandHandler(),
		CreateRace:                  c.CreateCreateRaceCommandHandler(),
		SendPackageToDestination:    c.CreateSendPackageToDestinationCommandHandler(),
		ReceivePackageAtDestination: c.CreateReceivePackageAtDestinationCommandHandler(),
		DeliverPackage:              c.CreateDeliverPackageCommandHandler(),
		FlagPackageAsProhibited:     c.CreateFlagPackageAsProhibitedCommandHandler(),
		PayForShipping:              c.CreatePayForShippingCommandHandler(),
		GetPackageByTrackingCode:    c.CreateGetPackageByTrackingCodeQueryHandler(),
		CalculatePrice:              c.CreateCalculatePriceQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(jobs.Config{
		OutboxRelaySchedule:  c.config.OutboxRelaySchedule,
		OutboxRelayBatchSize: c.config.OutboxBatchSize,
	}, c.CreateRelayOutboxCommandHandler(), c.logger)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncPackageUoWFactory func() commands.PackageUoW

func (f FuncPackageUoWFactory) Create() commands.PackageUoW {
	return f()
}

type FuncRaceUoWFactory func() commands.RaceUoW

func (f FuncRaceUoWFactory) Create() commands.RaceUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
