package records

import (
	"fmt"
	"strings"

	"github.com/aadhaarseva/registry/internal/server/models"
)

// recordColumns is the projection shared by every row query.
const recordColumns = "id, aadhaar_number, name, date_of_birth, gender, address, phone_number, email, created_at, updated_at"

// buildSearchQuery translates criteria into a paged row query, a matching
// count query, and their positional arguments. Both statements share the
// same predicate list and filter arguments; the row query additionally
// orders by created_at descending and appends LIMIT/OFFSET as the last two
// positional parameters.
//
// Every caller-supplied value binds through a parameter placeholder. The
// only text interpolated into the statements is the placeholder ordinal
// itself, so values containing SQL metacharacters stay inert.
//
// Page and PageSize are assumed normalized (>= 1) by the caller.
func buildSearchQuery(c models.SearchCriteria) (rowSQL, countSQL string, rowArgs, countArgs []any) {
	var (
		where strings.Builder
		args  []any
	)

	// add appends one predicate and binds one parameter. clause must
	// contain a single %d verb for the placeholder ordinal.
	add := func(clause string, value any) {
		args = append(args, value)
		fmt.Fprintf(&where, " AND "+clause, len(args))
	}

	// Fixed predicate order keeps the generated SQL deterministic for any
	// given set of supplied criteria.
	if c.AadhaarNumber != "" {
		add("aadhaar_number = $%d", c.AadhaarNumber)
	}
	if c.Name != "" {
		add("LOWER(name) LIKE LOWER($%d)", "%"+c.Name+"%")
	}
	if c.Gender != "" {
		add("LOWER(gender) = LOWER($%d)", c.Gender)
	}
	if c.AddressKeyword != "" {
		add("LOWER(address) LIKE LOWER($%d)", "%"+c.AddressKeyword+"%")
	}
	if c.PhoneNumber != "" {
		add("phone_number LIKE $%d", "%"+c.PhoneNumber+"%")
	}
	if c.Email != "" {
		add("LOWER(email) LIKE LOWER($%d)", "%"+c.Email+"%")
	}
	// Both bounds are inclusive; either may be supplied on its own.
	if c.DOBFrom != nil {
		add("date_of_birth >= $%d", *c.DOBFrom)
	}
	if c.DOBTo != nil {
		add("date_of_birth <= $%d", *c.DOBTo)
	}

	countSQL = "SELECT COUNT(*) FROM aadhaar_details WHERE 1=1" + where.String()
	countArgs = args

	offset := (c.Page - 1) * c.PageSize
	rowArgs = append(append([]any{}, args...), c.PageSize, offset)
	rowSQL = fmt.Sprintf(
		"SELECT %s FROM aadhaar_details WHERE 1=1%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		recordColumns, where.String(), len(args)+1, len(args)+2)

	return rowSQL, countSQL, rowArgs, countArgs
}
