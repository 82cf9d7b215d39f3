package records

import (
	"context"

	"github.com/aadhaarseva/registry/internal/server/models"
)

// Repository is the record store contract. Implementations must keep Upsert
// atomic with respect to concurrent callers on the same aadhaar number.
type Repository interface {
	// GetByNumber returns the record with the given aadhaar number, or
	// common.ErrNotFound when no such record exists.
	GetByNumber(ctx context.Context, aadhaarNumber string) (*models.Record, error)

	// Upsert inserts the record or, when the aadhaar number already exists,
	// overwrites every optional field in place (full replace, not a merge)
	// and refreshes updated_at. Returns the resulting stored record.
	Upsert(ctx context.Context, rec *models.Record) (*models.Record, error)

	// ListAll returns every record ordered by creation time descending.
	ListAll(ctx context.Context) ([]*models.Record, error)

	// Count returns the number of records matching the criteria's filters.
	// Pagination fields are ignored.
	Count(ctx context.Context, c models.SearchCriteria) (int, error)

	// Search returns one page of records matching the criteria, newest
	// created first.
	Search(ctx context.Context, c models.SearchCriteria) ([]*models.Record, error)

	// SearchByName returns up to limit records whose name contains the given
	// substring, matched case-insensitively.
	SearchByName(ctx context.Context, name string, limit int) ([]*models.Record, error)
}
