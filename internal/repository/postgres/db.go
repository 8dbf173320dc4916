package postgres

import (
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"gstbill/internal/config"
)

// NewDB opens a PostgreSQL pool through the pgx stdlib driver and verifies
// the connection with a ping before returning it.
func NewDB(cfg *config.DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("opening postgres pool: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpen)
	db.SetMaxIdleConns(cfg.MaxIdle)
	// Recycle connections so long-lived pools survive server-side restarts
	// and failovers.
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}
