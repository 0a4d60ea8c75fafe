package service

import (
	"context"
	"testing"

	"github.com/octobees/futsal-booking/api/internal/dto"
	"github.com/octobees/futsal-booking/api/internal/entity"
)

type stubSearchRepo struct {
	filter dto.SearchFilter
	rows   []entity.ServiceListing
	err    error
}

func (s *stubSearchRepo) ListServices(ctx context.Context, filter dto.SearchFilter) ([]entity.ServiceListing, error) {
	s.filter = filter
	return s.rows, s.err
}

func TestListServicesPaginationDefaults(t *testing.T) {
	repo := &stubSearchRepo{}
	svc := NewSearchService(repo)

	if _, err := svc.ListServices(context.Background(), dto.SearchFilter{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.filter.Page != 1 {
		t.Errorf("expected page 1, got %d", repo.filter.Page)
	}
	if repo.filter.PerPage != 6 {
		t.Errorf("expected per page 6, got %d", repo.filter.PerPage)
	}
}

func TestListServicesPerPageCap(t *testing.T) {
	repo := &stubSearchRepo{}
	svc := NewSearchService(repo)

	if _, err := svc.ListServices(context.Background(), dto.SearchFilter{Page: 3, PerPage: 500}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.filter.Page != 3 {
		t.Errorf("expected page 3, got %d", repo.filter.Page)
	}
	if repo.filter.PerPage != 50 {
		t.Errorf("expected per page capped at 50, got %d", repo.filter.PerPage)
	}
}

func TestListServicesPassesFilterThrough(t *testing.T) {
	repo := &stubSearchRepo{rows: []entity.ServiceListing{{BusinessName: "Golden Goal Futsal"}}}
	svc := NewSearchService(repo)

	filter := dto.SearchFilter{Q: "futsal", Location: "Yankin, Yangon", IncludeHidden: true, Page: 2, PerPage: 10}
	rows, err := svc.ListServices(context.Background(), filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if repo.filter.Q != "futsal" || repo.filter.Location != "Yankin, Yangon" || !repo.filter.IncludeHidden {
		t.Fatalf("filter not passed through: %+v", repo.filter)
	}
}
