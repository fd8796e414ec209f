package warehouse

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/snowflakedb/gosnowflake"
	"github.com/vfg2006/liquor-sales-dashboard/internal/config"
	_ "modernc.org/sqlite"
)

// Connection é o handle autenticado para o data warehouse
type Connection struct {
	*sql.DB
	driver string
}

func NewConnection(
	ctx context.Context,
	cfg config.Warehouse,
) (*Connection, error) {
	switch cfg.Driver {
	case config.DriverSnowflake, config.DriverPostgres, config.DriverSQLite:
	default:
		return nil, fmt.Errorf("warehouse: driver não suportado: %q", cfg.Driver)
	}

	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Connection{DB: db, driver: cfg.Driver}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

func (c *Connection) Driver() string {
	return c.driver
}
