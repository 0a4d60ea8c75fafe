package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/futsal-booking/api/internal/entity"
)

// ErrServiceKeyConflict indicates the derived service key already exists for
// another service.
var ErrServiceKeyConflict = errors.New("service key already exists")

// ListingIDs carries the generated identifiers of a created listing.
type ListingIDs struct {
	BusinessID uuid.UUID
	ServiceID  uuid.UUID
	ResourceID uuid.UUID
}

// CreateListingInput bundles the rows of one submission. Identifier and
// foreign-key fields are left blank; they are generated inside the
// transaction and threaded forward in dependency order.
type CreateListingInput struct {
	Business         entity.Business
	Service          entity.Service
	ServiceKeyPrefix string
	Resource         entity.Resource
	Slots            []entity.Slot
	Schedules        []entity.Schedule
	PaymentMethods   []entity.PaymentMethod
}

// ListingsRepository persists a complete listing submission.
type ListingsRepository interface {
	CreateListing(ctx context.Context, input CreateListingInput) (ListingIDs, error)
}

// PGXListingsRepository implements ListingsRepository with pgx.
type PGXListingsRepository struct {
	pool pgxPool
}

// NewPGXListingsRepository wires a pgx backed listings repository.
func NewPGXListingsRepository(pool *pgxpool.Pool) *PGXListingsRepository {
	return &PGXListingsRepository{pool: pool}
}

const insertBusinessSQL = `
        INSERT INTO businesses (
            owner_id, name, address, towns, province_district,
            google_map_location, facebook_page, tiktok_url, website,
            nearest_bus_stop, nearest_train_station,
            price_currency, pos_lite_price, service_listing_price,
            lite_pos, lite_pos_expired, payment_status, searchable_business
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
        RETURNING id;
    `

const insertServiceSQL = `
        INSERT INTO services (
            category_id, service_key, popular_products, services_description,
            facilities, rules, service_images, contact_phone,
            contact_available_start, contact_available_until,
            service_listing_receipt, service_listing_expired, default_duration_min
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
        RETURNING id;
    `

const insertResourceSQL = `
        INSERT INTO business_resources (business_id, service_id, name, max_capacity, base_price, field_type)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id;
    `

const insertSlotSQL = `
        INSERT INTO slots (resource_id, slot_name, slot_price, start_time, end_time, is_booked)
        VALUES ($1,$2,$3,$4,$5,$6);
    `

const insertScheduleSQL = `
        INSERT INTO business_schedules (resource_id, day_of_week, is_open, open_time, close_time)
        VALUES ($1,$2,$3,$4,$5);
    `

const insertPaymentMethodSQL = `
        INSERT INTO payment_methods (business_id, method_type, account_name, account_number)
        VALUES ($1,$2,$3,$4);
    `

// CreateListing inserts the business, service, resource, slots, schedules and
// payment methods of one submission inside a single transaction. A failure at
// any step rolls back every row written so far, so no orphaned partial
// listing survives a failed submission.
func (r *PGXListingsRepository) CreateListing(ctx context.Context, input CreateListingInput) (ListingIDs, error) {
	var ids ListingIDs

	// A resource with zero price tiers is invalid.
	if len(input.Slots) == 0 {
		return ids, fmt.Errorf("listing requires at least one slot")
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return ids, fmt.Errorf("start listing tx: %w", err)
	}
	defer tx.Rollback(ctx)

	b := input.Business
	err = tx.QueryRow(ctx, insertBusinessSQL,
		b.OwnerID, b.Name, b.Address, b.Towns, b.ProvinceDistrict,
		b.GoogleMapLocation, b.FacebookPage, b.TiktokURL, b.Website,
		b.NearestBusStop, b.NearestTrainStation,
		b.PriceCurrency, b.PosLitePrice, b.ServiceListingPrice,
		b.LitePos, b.LitePosExpired, b.PaymentStatus, b.SearchableBusiness,
	).Scan(&ids.BusinessID)
	if err != nil {
		return ids, fmt.Errorf("create business: %w", err)
	}

	// The key is derived from the just-generated business id, so concurrent
	// submissions can never collide on it.
	serviceKey := fmt.Sprintf("%s_%s", input.ServiceKeyPrefix, ids.BusinessID)

	svc := input.Service
	err = tx.QueryRow(ctx, insertServiceSQL,
		svc.CategoryID, serviceKey, svc.PopularProducts, svc.Description,
		svc.Facilities, svc.Rules, svc.Images, svc.ContactPhone,
		svc.ContactAvailableStart, svc.ContactAvailableUntil,
		svc.ReceiptURL, svc.ListingExpired, svc.DefaultDurationMin,
	).Scan(&ids.ServiceID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "service_key") {
			return ids, fmt.Errorf("%w: %v", ErrServiceKeyConflict, pgErr)
		}
		return ids, fmt.Errorf("create service: %w", err)
	}

	res := input.Resource
	err = tx.QueryRow(ctx, insertResourceSQL,
		ids.BusinessID, ids.ServiceID, res.Name, res.MaxCapacity, res.BasePrice, res.FieldType,
	).Scan(&ids.ResourceID)
	if err != nil {
		return ids, fmt.Errorf("create resource: %w", err)
	}

	for i, slot := range input.Slots {
		if _, err := tx.Exec(ctx, insertSlotSQL,
			ids.ResourceID, slot.Name, slot.Price, slot.StartTime, slot.EndTime, slot.IsBooked,
		); err != nil {
			return ids, fmt.Errorf("create slot %d: %w", i, err)
		}
	}

	for _, schedule := range input.Schedules {
		if _, err := tx.Exec(ctx, insertScheduleSQL,
			ids.ResourceID, schedule.DayOfWeek, schedule.IsOpen, schedule.OpenTime, schedule.CloseTime,
		); err != nil {
			return ids, fmt.Errorf("create schedule day %d: %w", schedule.DayOfWeek, err)
		}
	}

	for _, method := range input.PaymentMethods {
		if _, err := tx.Exec(ctx, insertPaymentMethodSQL,
			ids.BusinessID, method.MethodType, method.AccountName, method.AccountNumber,
		); err != nil {
			return ids, fmt.Errorf("create payment method %s: %w", method.MethodType, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return ids, fmt.Errorf("commit listing tx: %w", err)
	}

	return ids, nil
}
