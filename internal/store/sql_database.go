package store

import (
	"database/sql"

	"github.com/constXife/zann-sub000/internal/logger"
	"github.com/constXife/zann-sub000/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
