package http

import (
	"net/http"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/account"
	"forwarding/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// actingUser returns the id of the authenticated user or staff member.
func actingUser(c echo.Context) (kernel.UUID, error) {
	raw := c.Request().Header.Get(userIDHeader)
	if raw == "" {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized, userIDHeader+" header is required")
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, badRequest(userIDHeader, err)
	}
	return id, nil
}

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param(name))
	if err != nil {
		return kernel.UUID{}, badRequest(name, err)
	}
	return id, nil
}

// bind decodes and validates the request body.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return badRequest("body", err)
	}
	return c.Validate(req)
}

// CreateUser handles POST /api/v1/users - opens a balance account for the caller.
func (s *Server) CreateUser(c echo.Context) error {
	userID, err := actingUser(c)
	if err != nil {
		return err
	}

	var req CreateUserRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	var address kernel.Address = kernel.NoAddress{}
	if req.Address != nil {
		full, addrErr := req.Address.toDomain()
		if addrErr != nil {
			return addrErr
		}
		address = full
	}

	cmd, err := commands.NewCreateUserCommand(userID, kernel.Currency(req.Currency), address)
	if err != nil {
		return err
	}

	if err = s.h.CreateUser.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, IDResponse{ID: userID.String()})
}

// TopUpBalance handles POST /api/v1/users/:id/top-ups - credits a completed payment.
func (s *Server) TopUpBalance(c echo.Context) error {
	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req TopUpRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	amount, err := req.Amount.toDomain()
	if err != nil {
		return err
	}

	method, err := account.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return err
	}

	cmd, err := commands.NewTopUpBalanceCommand(userID, amount, method, req.SessionID)
	if err != nil {
		return err
	}

	balance, err := s.h.TopUpBalance.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, BalanceResponse{Balance: moneyResponse(balance)})
}

// ChangeAddress handles PUT /api/v1/users/:id/address - replaces the delivery address.
//
// Responses:
//   - 204 when the address is stored
//   - 400 for a malformed id or address
//   - 404 when the user does not exist
//   - 409 when the user changed concurrently
func (s *Server) ChangeAddress(c echo.Context) error {
	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req AddressDTO
	if err = bind(c, &req); err != nil {
		return err
	}

	address, err := req.toDomain()
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeAddressCommand(userID, address)
	if err != nil {
		return err
	}

	if err = s.h.ChangeAddress.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
