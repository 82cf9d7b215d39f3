// Package records provides the PostgreSQL-backed record store and the
// criteria-to-SQL translation used by search.
package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aadhaarseva/registry/internal/common"
	"github.com/aadhaarseva/registry/internal/dbx"
	"github.com/aadhaarseva/registry/internal/server/models"
)

// PostgresRepository implements record storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(s rowScanner) (*models.Record, error) {
	var (
		rec     models.Record
		dob     sql.NullTime
		gender  sql.NullString
		address sql.NullString
		phone   sql.NullString
		email   sql.NullString
	)
	if err := s.Scan(&rec.ID, &rec.AadhaarNumber, &rec.Name, &dob,
		&gender, &address, &phone, &email, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	if dob.Valid {
		d := dob.Time
		rec.DateOfBirth = &d
	}
	if gender.Valid {
		rec.Gender = &gender.String
	}
	if address.Valid {
		rec.Address = &address.String
	}
	if phone.Valid {
		rec.PhoneNumber = &phone.String
	}
	if email.Valid {
		rec.Email = &email.String
	}
	return &rec, nil
}

// GetByNumber returns the record with the given aadhaar number.
// Absence reports common.ErrNotFound, not a DB failure.
func (r *PostgresRepository) GetByNumber(ctx context.Context, aadhaarNumber string) (*models.Record, error) {
	query := "SELECT " + recordColumns + ` FROM aadhaar_details
		 WHERE aadhaar_number = $1
		 `

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, aadhaarNumber))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", dbx.Classify(err))
	}

	return rec, nil
}

// Upsert inserts the record or overwrites the existing row for the same
// aadhaar number. The conflict handling is a single conditional statement,
// so two concurrent upserts of one number resolve to one whole-row winner
// and never an interleaved merge.
func (r *PostgresRepository) Upsert(ctx context.Context, rec *models.Record) (*models.Record, error) {
	query := `
		INSERT INTO aadhaar_details
			(aadhaar_number, name, date_of_birth, gender, address, phone_number, email)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (aadhaar_number)
		DO UPDATE SET
			name = EXCLUDED.name,
			date_of_birth = EXCLUDED.date_of_birth,
			gender = EXCLUDED.gender,
			address = EXCLUDED.address,
			phone_number = EXCLUDED.phone_number,
			email = EXCLUDED.email,
			updated_at = CURRENT_TIMESTAMP
		RETURNING ` + recordColumns

	saved, err := scanRecord(r.db.QueryRowContext(ctx, query,
		rec.AadhaarNumber, rec.Name, rec.DateOfBirth, rec.Gender,
		rec.Address, rec.PhoneNumber, rec.Email))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", dbx.Classify(err))
	}

	return saved, nil
}

// ListAll returns every record, newest created first.
func (r *PostgresRepository) ListAll(ctx context.Context) ([]*models.Record, error) {
	query := "SELECT " + recordColumns + " FROM aadhaar_details ORDER BY created_at DESC"
	return r.queryRecords(ctx, query)
}

// Count returns the number of records matching the criteria's filters.
func (r *PostgresRepository) Count(ctx context.Context, c models.SearchCriteria) (int, error) {
	_, countSQL, _, countArgs := buildSearchQuery(c)

	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return 0, fmt.Errorf("db error: %w", dbx.Classify(err))
	}
	return total, nil
}

// Search returns one page of records matching the criteria.
func (r *PostgresRepository) Search(ctx context.Context, c models.SearchCriteria) ([]*models.Record, error) {
	rowSQL, _, rowArgs, _ := buildSearchQuery(c)
	return r.queryRecords(ctx, rowSQL, rowArgs...)
}

// SearchByName returns up to limit records whose name contains the substring.
func (r *PostgresRepository) SearchByName(ctx context.Context, name string, limit int) ([]*models.Record, error) {
	query := "SELECT " + recordColumns + ` FROM aadhaar_details
		 WHERE LOWER(name) LIKE LOWER($1)
		 ORDER BY created_at DESC
		 LIMIT $2
		 `
	return r.queryRecords(ctx, query, "%"+name+"%", limit)
}

func (r *PostgresRepository) queryRecords(ctx context.Context, query string, args ...any) ([]*models.Record, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", dbx.Classify(err))
	}
	defer rows.Close()

	var result []*models.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", dbx.Classify(err))
	}
	return result, nil
}
