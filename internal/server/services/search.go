package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aadhaarseva/registry/internal/server/models"
	"github.com/aadhaarseva/registry/internal/server/repositories/repomanager"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// SearchService orchestrates the criteria-based search: it runs the count
// query, computes pagination metadata, runs the paged row query, and
// assembles the result envelope.
type SearchService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewSearchService constructs a SearchService over the given pool.
func NewSearchService(db *sql.DB, m repomanager.RepositoryManager) *SearchService {
	return &SearchService{db: db, repomanager: m}
}

// normalize clamps pagination fields: page defaults to 1, pageSize defaults
// to 10 and is capped at 100 to keep result sets bounded.
func normalize(c models.SearchCriteria) models.SearchCriteria {
	if c.Page < 1 {
		c.Page = 1
	}
	if c.PageSize < 1 {
		c.PageSize = defaultPageSize
	}
	if c.PageSize > maxPageSize {
		c.PageSize = maxPageSize
	}
	return c
}

// Search returns one page of records matching every supplied criterion,
// plus the total match count and totalPages = ceil(total/pageSize). Zero
// matches yield totalPages 0 and an empty page.
//
// The count and the page read run as two separate statements with no shared
// snapshot: under concurrent writes they can observe slightly different
// states, so total and the returned row count may disagree momentarily.
func (s *SearchService) Search(ctx context.Context, c models.SearchCriteria) (*models.SearchResult, error) {
	c = normalize(c)
	repo := s.repomanager.Records(s.db)

	total, err := repo.Count(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("error counting records: %w", err)
	}

	data, err := repo.Search(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("error searching records: %w", err)
	}
	if data == nil {
		data = []*models.Record{}
	}

	return &models.SearchResult{
		Data:       data,
		Total:      total,
		Page:       c.Page,
		PageSize:   c.PageSize,
		TotalPages: (total + c.PageSize - 1) / c.PageSize,
	}, nil
}

// QuickSearchByNumber is a direct exact-match lookup; it bypasses the query
// builder since it has only one predicate.
func (s *SearchService) QuickSearchByNumber(ctx context.Context, aadhaarNumber string) (*models.Record, error) {
	repo := s.repomanager.Records(s.db)
	return repo.GetByNumber(ctx, aadhaarNumber)
}

// QuickSearchByName returns up to limit records whose name contains the
// substring, with no pagination envelope. limit defaults to 10 and is
// capped at 100.
func (s *SearchService) QuickSearchByName(ctx context.Context, name string, limit int) ([]*models.Record, error) {
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	repo := s.repomanager.Records(s.db)
	return repo.SearchByName(ctx, name, limit)
}
