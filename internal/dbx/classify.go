package dbx

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/aadhaarseva/registry/internal/common"
)

// PostgreSQL SQLSTATE codes:
// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	codeUniqueViolation = "23505"
	codeInvalidPassword = "28P01"
	codeInvalidAuthSpec = "28000"
	codeUndefinedTable  = "42P01"
)

// Classify translates a driver error into one of the registry's sentinel
// error kinds (common.Err*) so callers can match with errors.Is without
// importing pgconn. Errors that do not map to a known kind are returned
// unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == codeUniqueViolation:
			return fmt.Errorf("%w: %v", common.ErrDuplicateNumber, err)
		case pgErr.Code == codeInvalidPassword || pgErr.Code == codeInvalidAuthSpec:
			return fmt.Errorf("%w: %v", common.ErrAuthFailed, err)
		case pgErr.Code == codeUndefinedTable:
			return fmt.Errorf("%w: %v", common.ErrSchemaMissing, err)
		case strings.HasPrefix(pgErr.Code, "08"): // connection_exception class
			return fmt.Errorf("%w: %v", common.ErrConnectionFailed, err)
		}
		return err
	}

	// The driver never reached the server (refused, host not found, reset).
	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", common.ErrConnectionFailed, err)
	}

	return err
}
