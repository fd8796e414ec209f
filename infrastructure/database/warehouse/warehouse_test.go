package warehouse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/liquor-sales-dashboard/internal/config"
)

func TestNewConnection_SQLite(t *testing.T) {
	ctx := context.Background()

	conn, err := NewConnection(ctx, config.Warehouse{Driver: config.DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	defer conn.Close()

	assert.Equal(t, config.DriverSQLite, conn.Driver())
	assert.NoError(t, conn.Ping(ctx))

	var one int
	require.NoError(t, conn.QueryRowContext(ctx, "SELECT 1").Scan(&one))
	assert.Equal(t, 1, one)
}

func TestNewConnection_UnknownDriver(t *testing.T) {
	conn, err := NewConnection(context.Background(), config.Warehouse{Driver: "oracle", DSN: "x"})
	assert.Error(t, err)
	assert.Nil(t, conn)
}
