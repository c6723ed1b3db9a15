package queries

import (
	"context"
	"database/sql"
	"fmt"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/core/domain/model/pricing"
	"forwarding/internal/pkg/errs"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPackageByTrackingCodeQueryHandler reads the packages and reception_statuses
// tables directly.
type GetPackageByTrackingCodeQueryHandler struct {
	db     *gorm.DB
	qb     sq.StatementBuilderType
	policy pricing.Policy
}

// NewGetPackageByTrackingCodeQueryHandler prices measured packages with policy.
func NewGetPackageByTrackingCodeQueryHandler(db *gorm.DB, policy pricing.Policy) GetPackageByTrackingCodeQueryHandler {
	return GetPackageByTrackingCodeQueryHandler{
		db: db,
		// "?" placeholders are rebound to $n by GORM.
		qb:     sq.StatementBuilder.PlaceholderFormat(sq.Question),
		policy: policy,
	}
}

// Handle returns errs.ObjectNotFoundError when no package has the code.
func (h GetPackageByTrackingCodeQueryHandler) Handle(
	ctx context.Context,
	query GetPackageByTrackingCodeQuery,
) (GetPackageByTrackingCodeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPackageByTrackingCodeQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	code := query.TrackingCode().String()

	stmt, args, err := h.qb.Select(
		"id", "tracking_code", "category", "description", "item_count", "owner_id",
		"status", "house_delivery", "is_paid", "is_prohibited", "race_id",
		"length", "width", "height", "weight_grams", "price_per_kg",
	).
		From("packages").
		Where(sq.Eq{"tracking_code": code}).
		ToSql()
	if err != nil {
		return GetPackageByTrackingCodeQueryResponse{}, err
	}

	var (
		row                   packageRow
		found                 bool
		response              GetPackageByTrackingCodeQueryResponse
		length, width, height sql.NullFloat64
		weightGrams           sql.NullInt64
		pricePerKg            sql.NullString
	)

	rows, err := db.Raw(stmt, args...).Rows()
	if err != nil {
		return GetPackageByTrackingCodeQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		found = true
		err = rows.Scan(
			&row.id, &row.trackingCode, &row.category, &row.description, &row.itemCount, &row.ownerID,
			&row.status, &row.houseDelivery, &row.isPaid, &row.isProhibited, &row.raceID,
			&length, &width, &height, &weightGrams, &pricePerKg,
		)
		if err != nil {
			return GetPackageByTrackingCodeQueryResponse{}, err
		}
	}
	if err = rows.Err(); err != nil {
		return GetPackageByTrackingCodeQueryResponse{}, err
	}

	if !found {
		return GetPackageByTrackingCodeQueryResponse{}, errs.NewObjectNotFoundError("trackingCode", code)
	}

	response, err = row.toResponse()
	if err != nil {
		return GetPackageByTrackingCodeQueryResponse{}, err
	}

	if length.Valid && width.Valid && height.Valid && weightGrams.Valid && pricePerKg.Valid {
		price, priceErr := h.shippingPrice(length.Float64, width.Float64, height.Float64,
			weightGrams.Int64, row.houseDelivery, pricePerKg.String)
		if priceErr != nil {
			return GetPackageByTrackingCodeQueryResponse{}, priceErr
		}
		response.ShippingPrice = &price
	}

	response.History, err = h.history(db, row.id)
	if err != nil {
		return GetPackageByTrackingCodeQueryResponse{}, err
	}

	return response, nil
}

func (h GetPackageByTrackingCodeQueryHandler) history(db *gorm.DB, packageID uuid.UUID) ([]ReceptionStatusView, error) {
	stmt, args, err := h.qb.Select("status", "staff_id", "date").
		From("reception_statuses").
		Where(sq.Eq{"package_id": packageID}).
		OrderBy("status").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]ReceptionStatusView, 0, int(parcel.Delivered))
	for rows.Next() {
		var (
			view    ReceptionStatusView
			status  int
			staffID *uuid.UUID
		)
		if err = rows.Scan(&status, &staffID, &view.Date); err != nil {
			return nil, err
		}

		view.Status = parcel.Status(status)
		if staffID != nil {
			id, idErr := kernel.UUIDFromBytes(staffID[:])
			if idErr != nil {
				return nil, idErr
			}
			view.StaffID = &id
		}
		history = append(history, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}

func (h GetPackageByTrackingCodeQueryHandler) shippingPrice(
	length, width, height float64,
	weightGrams int64,
	houseDelivery bool,
	storedRate string,
) (kernel.Money, error) {
	dims, err := kernel.NewDimensions(length, width, height)
	if err != nil {
		return kernel.Money{}, err
	}

	rate, err := kernel.ParseMoney(storedRate)
	if err != nil {
		return kernel.Money{}, fmt.Errorf("stored price per kg: %w", err)
	}

	price, err := h.policy.NewPackagePrice(dims, weightGrams, houseDelivery, rate)
	if err != nil {
		return kernel.Money{}, err
	}

	return price.TotalPrice(), nil
}

type packageRow struct {
	id            uuid.UUID
	trackingCode  string
	category      int
	description   string
	itemCount     int
	ownerID       uuid.UUID
	status        int
	houseDelivery bool
	isPaid        bool
	isProhibited  bool
	raceID        *uuid.UUID
}

func (r packageRow) toResponse() (GetPackageByTrackingCodeQueryResponse, error) {
	id, err := kernel.UUIDFromBytes(r.id[:])
	if err != nil {
		return GetPackageByTrackingCodeQueryResponse{}, err
	}

	ownerID, err := kernel.UUIDFromBytes(r.ownerID[:])
	if err != nil {
		return GetPackageByTrackingCodeQueryResponse{}, err
	}

	response := GetPackageByTrackingCodeQueryResponse{
		ID:            id,
		TrackingCode:  r.trackingCode,
		Category:      parcel.Category(r.category),
		Description:   r.description,
		ItemCount:     r.itemCount,
		OwnerID:       ownerID,
		Status:        parcel.Status(r.status),
		HouseDelivery: r.houseDelivery,
		IsPaid:        r.isPaid,
		IsProhibited:  r.isProhibited,
	}

	if r.raceID != nil {
		raceID, raceErr := kernel.UUIDFromBytes(r.raceID[:])
		if raceErr != nil {
			return GetPackageByTrackingCodeQueryResponse{}, raceErr
		}
		response.RaceID = &raceID
	}

	return response, nil
}
