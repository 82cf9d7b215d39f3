// Package services contains the registry's business logic. This file
// implements RecordService, the caller-facing boundary for saving and
// reading records: it validates input before anything reaches the store.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"github.com/aadhaarseva/registry/internal/common"
	"github.com/aadhaarseva/registry/internal/server/models"
	"github.com/aadhaarseva/registry/internal/server/repositories/repomanager"
)

var aadhaarNumberRe = regexp.MustCompile(`^\d{12}$`)

// RecordService provides record-level operations:
// - Save: validate and upsert a record
// - GetByNumber: exact lookup by aadhaar number
// - ListAll: every record, newest created first
type RecordService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewRecordService constructs a RecordService over the given pool.
func NewRecordService(db *sql.DB, m repomanager.RepositoryManager) *RecordService {
	return &RecordService{db: db, repomanager: m}
}

// Save validates the record and upserts it. Saving an existing aadhaar
// number replaces every optional field with the supplied value, including
// replacing with absence. Validation failures match common.ErrValidation.
func (s *RecordService) Save(ctx context.Context, rec *models.Record) (*models.Record, error) {
	if !aadhaarNumberRe.MatchString(rec.AadhaarNumber) {
		return nil, fmt.Errorf("%w: aadhaar number must be exactly 12 digits", common.ErrValidation)
	}
	if strings.TrimSpace(rec.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrValidation)
	}
	if rec.PhoneNumber != nil && len(*rec.PhoneNumber) > 15 {
		return nil, fmt.Errorf("%w: phone number must be at most 15 characters", common.ErrValidation)
	}

	repo := s.repomanager.Records(s.db)
	saved, err := repo.Upsert(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("error saving record: %w", err)
	}
	return saved, nil
}

// GetByNumber returns the record with the given aadhaar number, or
// common.ErrNotFound when absent.
func (s *RecordService) GetByNumber(ctx context.Context, aadhaarNumber string) (*models.Record, error) {
	repo := s.repomanager.Records(s.db)
	return repo.GetByNumber(ctx, aadhaarNumber)
}

// ListAll returns every stored record, newest created first.
func (s *RecordService) ListAll(ctx context.Context) ([]*models.Record, error) {
	repo := s.repomanager.Records(s.db)
	return repo.ListAll(ctx)
}
