package service

import (
	"context"

	"github.com/octobees/futsal-booking/api/internal/dto"
	"github.com/octobees/futsal-booking/api/internal/entity"
	"github.com/octobees/futsal-booking/api/internal/repository"
)

// SearchService exposes the read side of the listing catalogue.
type SearchService struct {
	repo repository.SearchRepository
}

// NewSearchService creates a new instance of SearchService.
func NewSearchService(repo repository.SearchRepository) *SearchService {
	return &SearchService{repo: repo}
}

// ListServices returns listings respecting pagination defaults.
func (s *SearchService) ListServices(ctx context.Context, filter dto.SearchFilter) ([]entity.ServiceListing, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = 6
	}
	if filter.PerPage > 50 {
		filter.PerPage = 50
	}
	return s.repo.ListServices(ctx, filter)
}
