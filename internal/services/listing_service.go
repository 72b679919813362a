package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/jcanovas/vivenda/internal/logger"
	"github.com/jcanovas/vivenda/internal/models"
	"github.com/jcanovas/vivenda/internal/query"
	"github.com/jcanovas/vivenda/internal/repository"
)

// ErrListingNotFound is returned when a listing id does not exist.
var ErrListingNotFound = errors.New("listing not found")

// SearchResult is one page of discovery results plus the pagination window
// that produced it.
type SearchResult struct {
	Items []models.ListingSummary `json:"items"`
	Page  int                     `json:"page"`
	Pages int                     `json:"totalPages"`
	Total int                     `json:"total"`
	Size  int                     `json:"pageSize"`
}

// ListingService defines the business logic over published listings.
type ListingService interface {
	// Search runs a discovery query from raw request parameters. It never
	// fails on malformed parameters; only storage errors are returned.
	Search(ctx context.Context, params url.Values) (*SearchResult, error)

	// Get retrieves one listing with its media.
	// Returns ErrListingNotFound when the id does not exist.
	Get(ctx context.Context, id uuid.UUID) (*models.Listing, error)

	// Delete removes a listing. Deleting an absent listing is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error
}

// listingService is the concrete implementation of ListingService.
type listingService struct {
	repo repository.ListingRepository
	log  *logger.Logger
}

// NewListingService creates a new instance of ListingService.
func NewListingService(repo repository.ListingRepository, log *logger.Logger) ListingService {
	return &listingService{
		repo: repo,
		log:  log,
	}
}

// Search compiles the request once and reuses the same predicate for the
// count and the page query, so the window always describes the result set it
// paginates. The requested page is clamped into range after counting, which
// means a page past the end returns the last page rather than nothing.
func (s *listingService) Search(ctx context.Context, params url.Values) (*SearchResult, error) {
	req := query.ParseRequest(params)
	predicate := query.Compile(req)
	ordering := query.ResolveSort(req.Sort, req.Direction)

	total, err := s.repo.Count(ctx, predicate)
	if err != nil {
		s.log.Error("Failed to count listings", err, nil)
		return nil, fmt.Errorf("failed to count listings: %w", err)
	}

	window := query.Paginate(total, req.Page, req.PageSize)

	items, err := s.repo.FindMany(ctx, predicate, ordering, window.PageSize, window.Offset)
	if err != nil {
		s.log.Error("Failed to query listings", err, nil)
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}

	s.log.Debug("Discovery query served", map[string]interface{}{
		"total": total,
		"page":  window.Page,
		"count": len(items),
	})

	return &SearchResult{
		Items: items,
		Page:  window.Page,
		Pages: window.TotalPages,
		Total: total,
		Size:  window.PageSize,
	}, nil
}

// Get retrieves a single listing by id.
func (s *listingService) Get(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	listing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load listing", err, map[string]interface{}{
			"listing": id.String(),
		})
		return nil, fmt.Errorf("failed to load listing: %w", err)
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}
	return listing, nil
}

// Delete removes a listing and its media.
func (s *listingService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete listing", err, map[string]interface{}{
			"listing": id.String(),
		})
		return fmt.Errorf("failed to delete listing: %w", err)
	}

	s.log.Info("Listing deleted", map[string]interface{}{
		"listing": id.String(),
	})
	return nil
}
