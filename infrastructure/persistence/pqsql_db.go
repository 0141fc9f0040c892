package persistence

import (
	"database/sql"
	"fmt"

	"axlas-recipes/infrastructure/configuration"
	"axlas-recipes/infrastructure/logger"

	_ "github.com/lib/pq"
)

// NewPostgreSQLDB opens the Postgres connection used for the discovery audit
// log. Caller decides whether a failure is fatal.
func NewPostgreSQLDB() (*sql.DB, error) {
	cfg := configuration.C.Database.Psql
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Cannot open PostgreSQL connection")
		return nil, err
	}
	if err := db.Ping(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("PostgreSQL ping failed")
		return nil, err
	}
	return db, nil
}
