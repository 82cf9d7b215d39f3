package repomanager

import (
	"context"
	"database/sql"

	"github.com/aadhaarseva/registry/internal/dbx"
	"github.com/aadhaarseva/registry/internal/server/repositories/records"
)

// RepositoryManager vends repository implementations bound to a DBTX and
// exposes a schema migration hook.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Records(db dbx.DBTX) records.Repository
}
