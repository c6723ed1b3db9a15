package http

import (
	"net/http"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateRace handles POST /api/v1/races - schedules a transport batch.
func (s *Server) CreateRace(c echo.Context) error {
	if _, err := actingUser(c); err != nil {
		return err
	}

	var req CreateRaceRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateRaceCommand(req.Name, req.Origin, req.Destination, req.Start, req.Arrival)
	if err != nil {
		return err
	}

	raceID, err := s.h.CreateRace.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, IDResponse{ID: raceID.String()})
}

// SendPackageToDestination handles POST /api/v1/races/:id/packages - loads a
// warehoused package onto the race.
func (s *Server) SendPackageToDestination(c echo.Context) error {
	staffID, err := actingUser(c)
	if err != nil {
		return err
	}

	raceID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req SendPackageRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	packageID, err := kernel.UUIDFromString(req.PackageID)
	if err != nil {
		return badRequest("packageId", err)
	}

	cmd, err := commands.NewSendPackageToDestinationCommand(staffID, packageID, raceID)
	if err != nil {
		return err
	}

	if err = s.h.SendPackageToDestination.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
