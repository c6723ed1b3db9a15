package http

import (
	"context"
	"net/http"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/application/usecases/queries"
	"forwarding/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Use case ports of the HTTP adapter. The command and query handlers satisfy
// them; tests substitute mocks.
type (
	CreateUserHandler interface {
		Handle(ctx context.Context, cmd commands.CreateUserCommand) error
	}
	TopUpBalanceHandler interface {
		Handle(ctx context.Context, cmd commands.TopUpBalanceCommand) (kernel.Money, error)
	}
	ChangeAddressHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeAddressCommand) error
	}
	CreatePackageHandler interface {
		Handle(ctx context.Context, cmd commands.CreatePackageCommand) (commands.CreatePackageResult, error)
	}
	CreatePersonalPackageHandler interface {
		Handle(ctx context.Context, cmd commands.CreatePersonalPackageCommand) (commands.CreatePackageResult, error)
	}
	ReceivePackageAtWarehouseHandler interface {
		Handle(ctx context.Context, cmd commands.ReceivePackageAtWarehouseCommand) (commands.ReceptionResult, error)
	}
	CreateRaceHandler interface {
		Handle(ctx context.Context, cmd commands.CreateRaceCommand) (kernel.UUID, error)
	}
	SendPackageToDestinationHandler interface {
		Handle(ctx context.Context, cmd commands.SendPackageToDestinationCommand) error
	}
	ReceivePackageAtDestinationHandler interface {
		Handle(ctx context.Context, cmd commands.ReceivePackageAtDestinationCommand) error
	}
	DeliverPackageHandler interface {
		Handle(ctx context.Context, cmd commands.DeliverPackageCommand) error
	}
	FlagPackageAsProhibitedHandler interface {
		Handle(ctx context.Context, cmd commands.FlagPackageAsProhibitedCommand) error
	}
	PayForShippingHandler interface {
		Handle(ctx context.Context, cmd commands.PayForShippingCommand) (kernel.Money, error)
	}
	GetPackageByTrackingCodeHandler interface {
		Handle(
			ctx context.Context,
			query queries.GetPackageByTrackingCodeQuery,
		) (queries.GetPackageByTrackingCodeQueryResponse, error)
	}
	CalculatePriceHandler interface {
		Handle(ctx context.Context, query queries.CalculatePriceQuery) (queries.CalculatePriceQueryResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateUser                  CreateUserHandler
	TopUpBalance                TopUpBalanceHandler
	ChangeAddress               ChangeAddressHandler
	CreatePackage               CreatePackageHandler
	CreatePersonalPackage       CreatePersonalPackageHandler
	ReceivePackageAtWarehouse   ReceivePackageAtWarehouseHandler
	CreateRace                  CreateRaceHandler
	SendPackageToDestination    SendPackageToDestinationHandler
	ReceivePackageAtDestination ReceivePackageAtDestinationHandler
	DeliverPackage              DeliverPackageHandler
	FlagPackageAsProhibited     FlagPackageAsProhibitedHandler
	PayForShipping              PayForShippingHandler
	GetPackageByTrackingCode    GetPackageByTrackingCodeHandler
	CalculatePrice              CalculatePriceHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	h Handlers
}

func NewServer(h Handlers) *Server {
	return &Server{h: h}
}

// Register mounts the API under /api/v1. The acting user or staff member is
// read from the X-User-ID header.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	v1 := e.Group("/api/v1")

	v1.POST("/users", s.CreateUser)
	v1.POST("/users/:id/top-ups", s.TopUpBalance)
	v1.PUT("/users/:id/address", s.ChangeAddress)

	v1.POST("/packages", s.CreatePackage)
	v1.POST("/packages/personal", s.CreatePersonalPackage)
	v1.GET("/packages/:trackingCode", s.GetPackage)
	v1.POST("/packages/:trackingCode/arrival", s.ReceivePackageAtDestination)
	v1.POST("/packages/:trackingCode/prohibition", s.FlagPackageAsProhibited)
	v1.POST("/packages/:id/delivery", s.DeliverPackage)
	v1.POST("/packages/:id/payment", s.PayForShipping)

	v1.POST("/warehouse/receptions", s.ReceivePackageAtWarehouse)

	v1.POST("/races", s.CreateRace)
	v1.POST("/races/:id/packages", s.SendPackageToDestination)

	v1.POST("/prices", s.CalculatePrice)
}
