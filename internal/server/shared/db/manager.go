package db

import (
	"context"
	"database/sql"

	"github.com/mkuznetsov/ssocore/internal/dbx"
	"github.com/mkuznetsov/ssocore/internal/server/users"
)

// Manager owns the database connection and hands out repositories bound to
// either the shared connection or an open transaction.
type Manager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users(db dbx.DBTX) users.Repository
	Close() error
}
