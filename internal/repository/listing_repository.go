package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jcanovas/vivenda/internal/database"
	"github.com/jcanovas/vivenda/internal/models"
	"github.com/jcanovas/vivenda/internal/query"
)

// ListingRepository defines the data access operations for published
// listings.
type ListingRepository interface {
	// Create persists a canonical listing record together with its media
	// rows in one transaction and returns the generated id.
	Create(ctx context.Context, listing models.NewListing) (uuid.UUID, error)

	// FindByID loads one listing with its media, ordered by position.
	// Returns nil, nil if the listing does not exist (not an error).
	FindByID(ctx context.Context, id uuid.UUID) (*models.Listing, error)

	// FindMany returns one page of summaries matching the predicate, in the
	// given order. Returns an empty slice when nothing matches.
	FindMany(ctx context.Context, p *query.Predicate, order query.Ordering, limit, offset int) ([]models.ListingSummary, error)

	// Count returns how many listings match the predicate.
	Count(ctx context.Context, p *query.Predicate) (int, error)

	// Delete removes a listing and, through the schema's cascade, its media
	// rows. Deleting an absent listing is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error
}

// listingRepository is the concrete pgx-backed implementation.
type listingRepository struct {
	db *database.Database
}

// NewListingRepository creates a new instance of ListingRepository.
func NewListingRepository(db *database.Database) ListingRepository {
	return &listingRepository{db: db}
}

const listingColumns = `
	id,
	title,
	kind,
	operation,
	price,
	price_hidden,
	community_fees,
	description,
	address,
	city,
	province,
	postal_code,
	lat,
	lng,
	area_m2,
	bedrooms,
	bathrooms,
	year_built,
	condition,
	energy_status,
	energy_rating,
	energy_consumption,
	energy_emissions,
	extras,
	cover,
	reference,
	contact_email,
	contact_phone,
	created_at`

// Create inserts the listing row and one listing_media row per image in a
// single transaction, so a partially attached listing can never be observed.
func (r *listingRepository) Create(ctx context.Context, listing models.NewListing) (uuid.UUID, error) {
	id := uuid.New()

	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insertListing := `
		INSERT INTO listings (
			id, title, kind, operation, price, price_hidden, community_fees,
			description, address, city, province, postal_code, lat, lng,
			area_m2, bedrooms, bathrooms, year_built, condition,
			energy_status, energy_rating, energy_consumption, energy_emissions,
			extras, cover, reference, contact_email, contact_phone
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19,
			$20, $21, $22, $23,
			$24, $25, $26, $27, $28
		)
	`

	_, err = tx.Exec(ctx, insertListing,
		id,
		listing.Title,
		listing.Kind,
		listing.Operation,
		listing.Price,
		listing.PriceHidden,
		listing.CommunityFees,
		listing.Description,
		listing.Address,
		listing.City,
		listing.Province,
		listing.PostalCode,
		listing.Lat,
		listing.Lng,
		listing.AreaM2,
		listing.Bedrooms,
		listing.Bathrooms,
		listing.YearBuilt,
		listing.Condition,
		listing.Energy.Status,
		listing.Energy.Rating,
		listing.Energy.Consumption,
		listing.Energy.Emissions,
		listing.Extras,
		listing.Cover,
		listing.Reference,
		listing.ContactEmail,
		listing.ContactPhone,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert listing: %w", err)
	}

	insertMedia := `
		INSERT INTO listing_media (id, listing_id, url, position)
		VALUES ($1, $2, $3, $4)
	`
	for i, url := range listing.Media {
		if _, err := tx.Exec(ctx, insertMedia, uuid.New(), id, url, i); err != nil {
			return uuid.Nil, fmt.Errorf("failed to insert media %d for listing %s: %w", i, id, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit listing %s: %w", id, err)
	}

	return id, nil
}

// FindByID loads the listing row and then its media, ordered by position.
func (r *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	queryListing := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`

	var listing models.Listing
	err := r.db.Pool.QueryRow(ctx, queryListing, id).Scan(
		&listing.ID,
		&listing.Title,
		&listing.Kind,
		&listing.Operation,
		&listing.Price,
		&listing.PriceHidden,
		&listing.CommunityFees,
		&listing.Description,
		&listing.Address,
		&listing.City,
		&listing.Province,
		&listing.PostalCode,
		&listing.Lat,
		&listing.Lng,
		&listing.AreaM2,
		&listing.Bedrooms,
		&listing.Bathrooms,
		&listing.YearBuilt,
		&listing.Condition,
		&listing.Energy.Status,
		&listing.Energy.Rating,
		&listing.Energy.Consumption,
		&listing.Energy.Emissions,
		&listing.Extras,
		&listing.Cover,
		&listing.Reference,
		&listing.ContactEmail,
		&listing.ContactPhone,
		&listing.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query listing %s: %w", id, err)
	}

	queryMedia := `
		SELECT id, url, position
		FROM listing_media
		WHERE listing_id = $1
		ORDER BY position
	`
	rows, err := r.db.Pool.Query(ctx, queryMedia, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query media for listing %s: %w", id, err)
	}
	defer rows.Close()

	listing.Media = []models.Media{}
	for rows.Next() {
		var m models.Media
		if err := rows.Scan(&m.ID, &m.URL, &m.Position); err != nil {
			return nil, fmt.Errorf("failed to scan media row: %w", err)
		}
		listing.Media = append(listing.Media, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating media rows: %w", err)
	}

	return &listing, nil
}

// FindMany executes the compiled predicate over the summary projection. The
// limit and offset placeholders are numbered after the predicate's own
// arguments so both can share one argument list.
func (r *listingRepository) FindMany(ctx context.Context, p *query.Predicate, order query.Ordering, limit, offset int) ([]models.ListingSummary, error) {
	where, args := p.Where()
	sql := fmt.Sprintf(`
		SELECT id, title, price, city, area_m2, bedrooms, bathrooms, created_at, cover
		FROM listings
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, where, order.OrderBy(), len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	results := []models.ListingSummary{}
	for rows.Next() {
		var s models.ListingSummary
		err := rows.Scan(
			&s.ID,
			&s.Title,
			&s.Price,
			&s.City,
			&s.AreaM2,
			&s.Bedrooms,
			&s.Bathrooms,
			&s.CreatedAt,
			&s.Cover,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing row: %w", err)
		}
		results = append(results, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating listing rows: %w", err)
	}

	return results, nil
}

// Count returns the number of listings matching the predicate.
func (r *listingRepository) Count(ctx context.Context, p *query.Predicate) (int, error) {
	where, args := p.Where()
	sql := fmt.Sprintf(`SELECT COUNT(*) FROM listings WHERE %s`, where)

	var total int
	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}
	return total, nil
}

// Delete removes the listing; listing_media rows go with it via ON DELETE
// CASCADE. No error is returned when the id does not exist.
func (r *listingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Pool.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete listing %s: %w", id, err)
	}
	return nil
}
