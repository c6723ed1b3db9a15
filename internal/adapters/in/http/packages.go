package http

import (
	"net/http"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/application/usecases/queries"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"

	"github.com/labstack/echo/v4"
)

func pathTrackingCode(c echo.Context) (kernel.TrackingCode, error) {
	code, err := kernel.NewTrackingCode(c.Param("trackingCode"))
	if err != nil {
		return kernel.TrackingCode{}, badRequest("trackingCode", err)
	}
	return code, nil
}

// CreatePackage handles POST /api/v1/packages - the caller declares an incoming package.
func (s *Server) CreatePackage(c echo.Context) error {
	ownerID, err := actingUser(c)
	if err != nil {
		return err
	}

	var req CreatePackageRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	declaration, err := req.toDeclaration()
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreatePackageCommand(ownerID, declaration)
	if err != nil {
		return err
	}

	result, err := s.h.CreatePackage.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreatePackageResponse{
		ID:           result.PackageID.String(),
		TrackingCode: result.TrackingCode.String(),
	})
}

func (r CreatePackageRequest) toDeclaration() (parcel.Declaration, error) {
	category, err := parcel.ParseCategory(r.Category)
	if err != nil {
		return parcel.Declaration{}, err
	}

	retail, err := r.RetailPrice.toDomain()
	if err != nil {
		return parcel.Declaration{}, err
	}

	declaration := parcel.Declaration{
		Category:      category,
		Description:   r.Description,
		RetailPrice:   retail,
		ItemCount:     r.ItemCount,
		HouseDelivery: r.HouseDelivery,
	}

	if r.TrackingCode != "" {
		code, codeErr := kernel.NewTrackingCode(r.TrackingCode)
		if codeErr != nil {
			return parcel.Declaration{}, badRequest("trackingCode", codeErr)
		}
		declaration.TrackingCode = &code
	}

	if r.WebsiteAddress != "" {
		website, webErr := kernel.NewWebAddress(r.WebsiteAddress)
		if webErr != nil {
			return parcel.Declaration{}, webErr
		}
		declaration.WebsiteAddress = &website
	}

	return declaration, nil
}

// CreatePersonalPackage handles POST /api/v1/packages/personal - the caller sends to another user.
func (s *Server) CreatePersonalPackage(c echo.Context) error {
	senderID, err := actingUser(c)
	if err != nil {
		return err
	}

	var req CreatePersonalPackageRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	receiverID, err := kernel.UUIDFromString(req.ReceiverID)
	if err != nil {
		return badRequest("receiverId", err)
	}

	retail, err := req.RetailPrice.toDomain()
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreatePersonalPackageCommand(senderID, receiverID, retail)
	if err != nil {
		return err
	}

	result, err := s.h.CreatePersonalPackage.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreatePackageResponse{
		ID:           result.PackageID.String(),
		TrackingCode: result.TrackingCode.String(),
	})
}

// GetPackage handles GET /api/v1/packages/:trackingCode.
func (s *Server) GetPackage(c echo.Context) error {
	query, err := queries.NewGetPackageByTrackingCodeQuery(c.Param("trackingCode"))
	if err != nil {
		return err
	}

	view, err := s.h.GetPackageByTrackingCode.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, packageResponse(view))
}

// ReceivePackageAtWarehouse handles POST /api/v1/warehouse/receptions - a staff scan.
//
// Responses:
//   - 200 with the result for a declared package or a repeated scan
//   - 201 with NoOwnerFound when an undeclared package was registered under the staff member
//   - 400 for a malformed tracking code, a side above 1000 cm or a weight above 1 t
//   - 401 without the X-User-ID header
func (s *Server) ReceivePackageAtWarehouse(c echo.Context) error {
	staffID, err := actingUser(c)
	if err != nil {
		return err
	}

	var req WarehouseReceptionRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	code, err := kernel.NewTrackingCode(req.TrackingCode)
	if err != nil {
		return badRequest("trackingCode", err)
	}

	dims, err := kernel.NewDimensions(req.Length, req.Width, req.Height)
	if err != nil {
		return err
	}

	rate, err := req.PricePerKg.toDomain()
	if err != nil {
		return err
	}

	cmd, err := commands.NewReceivePackageAtWarehouseCommand(staffID, code, dims, req.WeightGrams, rate)
	if err != nil {
		return err
	}

	result, err := s.h.ReceivePackageAtWarehouse.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	status := http.StatusOK
	if result == commands.ReceptionNoOwnerFound {
		status = http.StatusCreated
	}
	return c.JSON(status, WarehouseReceptionResponse{Result: result.String()})
}

// ReceivePackageAtDestination handles POST /api/v1/packages/:trackingCode/arrival.
func (s *Server) ReceivePackageAtDestination(c echo.Context) error {
	staffID, err := actingUser(c)
	if err != nil {
		return err
	}

	code, err := pathTrackingCode(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewReceivePackageAtDestinationCommand(staffID, code)
	if err != nil {
		return err
	}

	if err = s.h.ReceivePackageAtDestination.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// FlagPackageAsProhibited handles POST /api/v1/packages/:trackingCode/prohibition.
func (s *Server) FlagPackageAsProhibited(c echo.Context) error {
	if _, err := actingUser(c); err != nil {
		return err
	}

	code, err := pathTrackingCode(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewFlagPackageAsProhibitedCommand(code)
	if err != nil {
		return err
	}

	if err = s.h.FlagPackageAsProhibited.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// DeliverPackage handles POST /api/v1/packages/:id/delivery.
func (s *Server) DeliverPackage(c echo.Context) error {
	if _, err := actingUser(c); err != nil {
		return err
	}

	packageID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeliverPackageCommand(packageID)
	if err != nil {
		return err
	}

	if err = s.h.DeliverPackage.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// PayForShipping handles POST /api/v1/packages/:id/payment - charges the caller's balance.
//
// Responses:
//   - 200 with the charged amount, which equals the price quoted by GET /packages/:trackingCode
//   - 402 when the balance does not cover the price
//   - 403 when the caller does not own the package
//   - 409 when the package is already paid
//   - 422 when the package has not arrived
func (s *Server) PayForShipping(c echo.Context) error {
	userID, err := actingUser(c)
	if err != nil {
		return err
	}

	packageID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewPayForShippingCommand(userID, packageID)
	if err != nil {
		return err
	}

	charged, err := s.h.PayForShipping.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, PaymentResponse{Charged: moneyResponse(charged)})
}

// CalculatePrice handles POST /api/v1/prices - a quote without a package.
func (s *Server) CalculatePrice(c echo.Context) error {
	var req PriceRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	rate, err := req.PricePerKg.toDomain()
	if err != nil {
		return err
	}

	query, err := queries.NewCalculatePriceQuery(
		req.Length, req.Width, req.Height, req.WeightGrams, req.HouseDelivery, rate)
	if err != nil {
		return err
	}

	quote, err := s.h.CalculatePrice.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, PriceResponse{
		IsVolumetric:          quote.IsVolumetric,
		VolumetricWeightPrice: moneyResponse(quote.VolumetricWeightPrice),
		WeightPrice:           moneyResponse(quote.WeightPrice),
		TotalPrice:            moneyResponse(quote.TotalPrice),
	})
}
