package records

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aadhaarseva/registry/internal/common"
	"github.com/aadhaarseva/registry/internal/server/models"
)

var recordColumnNames = []string{
	"id", "aadhaar_number", "name", "date_of_birth", "gender",
	"address", "phone_number", "email", "created_at", "updated_at",
}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestGetByNumber_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*aadhaar_number,.*FROM\s+aadhaar_details\s+WHERE\s+aadhaar_number\s*=\s*\$1\s*$`

	now := time.Now()
	dob := time.Date(1992, 8, 22, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(recordColumnNames).
		AddRow(int64(1), "234567890123", "Priya Sharma", dob, "Female",
			"456 Park Avenue, Mumbai", "9876543211", "priya.sharma@example.com", now, now)
	mock.ExpectQuery(q).WithArgs("234567890123").WillReturnRows(rows)

	got, err := repo.GetByNumber(context.Background(), "234567890123")
	require.NoError(t, err)
	assert.Equal(t, "234567890123", got.AadhaarNumber)
	assert.Equal(t, "Priya Sharma", got.Name)
	require.NotNil(t, got.Gender)
	assert.Equal(t, "Female", *got.Gender)
	require.NotNil(t, got.DateOfBirth)
	assert.True(t, got.DateOfBirth.Equal(dob))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByNumber_NullOptionalFields(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)WHERE\s+aadhaar_number\s*=\s*\$1`

	now := time.Now()
	rows := sqlmock.NewRows(recordColumnNames).
		AddRow(int64(2), "345678901234", "Amit Patel", nil, nil, nil, nil, nil, now, now)
	mock.ExpectQuery(q).WithArgs("345678901234").WillReturnRows(rows)

	got, err := repo.GetByNumber(context.Background(), "345678901234")
	require.NoError(t, err)
	assert.Nil(t, got.DateOfBirth)
	assert.Nil(t, got.Gender)
	assert.Nil(t, got.Address)
	assert.Nil(t, got.PhoneNumber)
	assert.Nil(t, got.Email)
}

func TestGetByNumber_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)WHERE\s+aadhaar_number\s*=\s*\$1`
	mock.ExpectQuery(q).WithArgs("999999999999").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByNumber(context.Background(), "999999999999")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetByNumber_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)WHERE\s+aadhaar_number\s*=\s*\$1`
	mock.ExpectQuery(q).WithArgs("234567890123").WillReturnError(errors.New("db down"))

	_, err := repo.GetByNumber(context.Background(), "234567890123")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestUpsert_InsertReturnsRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+aadhaar_details.*ON\s+CONFLICT\s+\(aadhaar_number\).*DO\s+UPDATE\s+SET.*updated_at\s*=\s*CURRENT_TIMESTAMP.*RETURNING\s+id,`

	now := time.Now()
	gender := "Female"
	rows := sqlmock.NewRows(recordColumnNames).
		AddRow(int64(7), "234567890123", "Priya Sharma", nil, gender, nil, nil, nil, now, now)
	mock.ExpectQuery(q).
		WithArgs("234567890123", "Priya Sharma", nil, &gender, nil, nil, nil).
		WillReturnRows(rows)

	got, err := repo.Upsert(context.Background(), &models.Record{
		AadhaarNumber: "234567890123",
		Name:          "Priya Sharma",
		Gender:        &gender,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "Priya Sharma", got.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_OmittedFieldsBindNull(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)INSERT\s+INTO\s+aadhaar_details`

	now := time.Now()
	rows := sqlmock.NewRows(recordColumnNames).
		AddRow(int64(7), "234567890123", "Priya Sharma", nil, nil, nil, nil, nil, now, now)
	// Every omitted optional field must reach the engine as NULL so the
	// conflict branch overwrites with absence (full replace).
	mock.ExpectQuery(q).
		WithArgs("234567890123", "Priya Sharma", nil, nil, nil, nil, nil).
		WillReturnRows(rows)

	got, err := repo.Upsert(context.Background(), &models.Record{
		AadhaarNumber: "234567890123",
		Name:          "Priya Sharma",
	})
	require.NoError(t, err)
	assert.Nil(t, got.PhoneNumber)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_ClassifiesSchemaMissing(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+aadhaar_details`).
		WillReturnError(&pgconn.PgError{Code: "42P01", Message: `relation "aadhaar_details" does not exist`})

	_, err := repo.Upsert(context.Background(), &models.Record{
		AadhaarNumber: "234567890123",
		Name:          "Priya Sharma",
	})
	assert.ErrorIs(t, err, common.ErrSchemaMissing)
}

func TestListAll_OrderedNewestFirst(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*FROM\s+aadhaar_details\s+ORDER\s+BY\s+created_at\s+DESC\s*$`

	now := time.Now()
	rows := sqlmock.NewRows(recordColumnNames).
		AddRow(int64(2), "345678901234", "Amit Patel", nil, nil, nil, nil, nil, now, now).
		AddRow(int64(1), "234567890123", "Priya Sharma", nil, nil, nil, nil, nil, now.Add(-time.Hour), now.Add(-time.Hour))
	mock.ExpectQuery(q).WillReturnRows(rows)

	got, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "345678901234", got[0].AadhaarNumber)
	assert.Equal(t, "234567890123", got[1].AadhaarNumber)
}

func TestCount_UsesFilterArgs(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+COUNT\(\*\)\s+FROM\s+aadhaar_details\s+WHERE\s+1=1\s+AND\s+LOWER\(gender\)\s*=\s*LOWER\(\$1\)\s*$`
	mock.ExpectQuery(q).WithArgs("female").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	total, err := repo.Count(context.Background(), models.SearchCriteria{Gender: "female", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestSearch_BindsPaginationArgs(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)LOWER\(name\)\s+LIKE\s+LOWER\(\$1\).*ORDER\s+BY\s+created_at\s+DESC\s+LIMIT\s+\$2\s+OFFSET\s+\$3`

	now := time.Now()
	rows := sqlmock.NewRows(recordColumnNames).
		AddRow(int64(1), "234567890123", "Priya Sharma", nil, nil, nil, nil, nil, now, now)
	mock.ExpectQuery(q).WithArgs("%priya%", 10, 10).WillReturnRows(rows)

	got, err := repo.Search(context.Background(), models.SearchCriteria{Name: "priya", Page: 2, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Priya Sharma", got[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchByName(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)WHERE\s+LOWER\(name\)\s+LIKE\s+LOWER\(\$1\)\s+ORDER\s+BY\s+created_at\s+DESC\s+LIMIT\s+\$2`

	now := time.Now()
	rows := sqlmock.NewRows(recordColumnNames).
		AddRow(int64(1), "234567890123", "Priya Sharma", nil, nil, nil, nil, nil, now, now)
	mock.ExpectQuery(q).WithArgs("%sharma%", 5).WillReturnRows(rows)

	got, err := repo.SearchByName(context.Background(), "sharma", 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestSearchByName_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)WHERE\s+LOWER\(name\)\s+LIKE\s+LOWER\(\$1\)`
	mock.ExpectQuery(q).WithArgs("%ghost%", 10).
		WillReturnRows(sqlmock.NewRows(recordColumnNames))

	got, err := repo.SearchByName(context.Background(), "ghost", 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}
