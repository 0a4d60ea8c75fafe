package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/futsal-booking/api/internal/dto"
	"github.com/octobees/futsal-booking/api/internal/entity"
)

// SearchRepository exposes the read side consumed by the browse/search UI.
type SearchRepository interface {
	ListServices(ctx context.Context, filter dto.SearchFilter) ([]entity.ServiceListing, error)
}

// PGXSearchRepository implements SearchRepository with pgx.
type PGXSearchRepository struct {
	pool pgxPool
}

// NewPGXSearchRepository wires a pgx backed search repository.
func NewPGXSearchRepository(pool *pgxpool.Pool) *PGXSearchRepository {
	return &PGXSearchRepository{pool: pool}
}

// ListServices retrieves listed services joined to their owning business,
// newest first, with offset pagination.
func (r *PGXSearchRepository) ListServices(ctx context.Context, filter dto.SearchFilter) ([]entity.ServiceListing, error) {
	baseQuery := strings.Builder{}
	baseQuery.WriteString(`
        SELECT
            s.id,
            s.service_key,
            s.services_description,
            s.service_images,
            s.popular_products,
            s.contact_phone,
            b.id,
            b.name,
            b.towns,
            b.province_district,
            b.address,
            b.searchable_business,
            br.id,
            br.base_price,
            br.field_type,
            br.max_capacity,
            s.created_at
        FROM services s
        JOIN business_resources br ON br.service_id = s.id
        JOIN businesses b ON b.id = br.business_id
    `)

	var (
		clauses []string
		args    []any
		idx     = 1
	)

	if !filter.IncludeHidden {
		clauses = append(clauses, "b.searchable_business = TRUE")
	}
	if filter.Q != "" {
		pattern := fmt.Sprintf("%%%s%%", filter.Q)
		clauses = append(clauses, fmt.Sprintf("(b.name ILIKE $%d OR s.services_description ILIKE $%d)", idx, idx+1))
		args = append(args, pattern, pattern)
		idx += 2
	}
	if filter.Category != "" {
		clauses = append(clauses, fmt.Sprintf("s.category_id = $%d", idx))
		args = append(args, filter.Category)
		idx++
	}
	if filter.Location != "" {
		if strings.Contains(filter.Location, ",") {
			parts := strings.SplitN(filter.Location, ",", 2)
			town := strings.TrimSpace(parts[0])
			province := strings.TrimSpace(parts[1])
			if town != "" {
				clauses = append(clauses, fmt.Sprintf("b.towns ILIKE $%d", idx))
				args = append(args, fmt.Sprintf("%%%s%%", town))
				idx++
			}
			if province != "" {
				clauses = append(clauses, fmt.Sprintf("b.province_district ILIKE $%d", idx))
				args = append(args, fmt.Sprintf("%%%s%%", province))
				idx++
			}
		} else {
			pattern := fmt.Sprintf("%%%s%%", strings.TrimSpace(filter.Location))
			clauses = append(clauses, fmt.Sprintf("(b.towns ILIKE $%d OR b.province_district ILIKE $%d OR b.address ILIKE $%d)", idx, idx+1, idx+2))
			args = append(args, pattern, pattern, pattern)
			idx += 3
		}
	}

	if len(clauses) > 0 {
		baseQuery.WriteString(" WHERE ")
		baseQuery.WriteString(strings.Join(clauses, " AND "))
	}

	baseQuery.WriteString(" ORDER BY s.created_at DESC")

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage <= 0 {
		perPage = 6
	}
	offset := (page - 1) * perPage
	baseQuery.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", idx, idx+1))
	args = append(args, perPage, offset)

	rows, err := r.pool.Query(ctx, baseQuery.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	return scanServiceListings(rows)
}

func scanServiceListings(rows pgx.Rows) ([]entity.ServiceListing, error) {
	var listings []entity.ServiceListing
	for rows.Next() {
		var (
			listing         entity.ServiceListing
			images          []string
			popularProducts *string
			contactPhone    *string
		)

		err := rows.Scan(
			&listing.ServiceID,
			&listing.ServiceKey,
			&listing.Description,
			&images,
			&popularProducts,
			&contactPhone,
			&listing.BusinessID,
			&listing.BusinessName,
			&listing.Towns,
			&listing.ProvinceDistrict,
			&listing.Address,
			&listing.Searchable,
			&listing.ResourceID,
			&listing.BasePrice,
			&listing.FieldType,
			&listing.MaxCapacity,
			&listing.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan service listing: %w", err)
		}

		listing.Images = images
		listing.PopularProducts = popularProducts
		listing.ContactPhone = contactPhone
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate service listings: %w", err)
	}
	return listings, nil
}
