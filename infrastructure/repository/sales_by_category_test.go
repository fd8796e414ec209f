package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/liquor-sales-dashboard/internal/domain"
	_ "modernc.org/sqlite"
)

func openSalesDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE iowa_liquor_sales (
		LIQUOR_CATEGORY TEXT,
		SALE_DOLLARS    REAL,
		SALE_YEAR       INTEGER
	)`)
	require.NoError(t, err)

	return db
}

func insertSale(t *testing.T, db *sql.DB, category any, dollars float64, year int) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO iowa_liquor_sales (LIQUOR_CATEGORY, SALE_DOLLARS, SALE_YEAR) VALUES (?, ?, ?)",
		category, dollars, year,
	)
	require.NoError(t, err)
}

func TestBuildSalesByCategoryStatement(t *testing.T) {
	statement, err := BuildSalesByCategoryStatement("EVO_DEMO.IOWA_LIQUOR_SALES.IOWA_LIQUOR_SALES", 2025)
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT LIQUOR_CATEGORY, SUM(SALE_DOLLARS) AS SALE_DOLLARS "+
			"FROM EVO_DEMO.IOWA_LIQUOR_SALES.IOWA_LIQUOR_SALES "+
			"WHERE SALE_YEAR = 2025 "+
			"GROUP BY LIQUOR_CATEGORY "+
			"ORDER BY SALE_DOLLARS ASC",
		statement,
	)
	assert.NotContains(t, statement, "?")
}

func TestBuildSalesByCategoryStatement_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		table string
		year  int
	}{
		{name: "tabela vazia", table: "", year: 2025},
		{name: "injeção de sql", table: "sales; DROP TABLE sales", year: 2025},
		{name: "partes demais", table: "a.b.c.d", year: 2025},
		{name: "espaço no nome", table: "iowa sales", year: 2025},
		{name: "ano zerado", table: "sales", year: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statement, err := BuildSalesByCategoryStatement(tt.table, tt.year)
			assert.Error(t, err)
			assert.Empty(t, statement)

			repo, err := NewSalesByCategoryRepository(nil, tt.table, tt.year)
			assert.Error(t, err)
			assert.Nil(t, repo)
		})
	}
}

func TestSalesByCategoryRepository_GetSalesByCategory(t *testing.T) {
	db := openSalesDB(t)

	insertSale(t, db, "Wine", 120, 2025)
	insertSale(t, db, "Wine", 180, 2025)
	insertSale(t, db, "Spirits", 100, 2025)
	insertSale(t, db, "Beer", 50, 2025)
	insertSale(t, db, "Beer", 150, 2025)
	insertSale(t, db, "Beer", 9999, 2024)
	insertSale(t, db, "Cider", 10, 2024)

	repo, err := NewSalesByCategoryRepository(db, "iowa_liquor_sales", 2025)
	require.NoError(t, err)

	table, err := repo.GetSalesByCategory(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.SalesByCategoryTable{
		{Category: "Spirits", TotalSaleDollars: 100},
		{Category: "Beer", TotalSaleDollars: 200},
		{Category: "Wine", TotalSaleDollars: 300},
	}, table)
}

func TestSalesByCategoryRepository_EmptyYear(t *testing.T) {
	db := openSalesDB(t)
	insertSale(t, db, "Beer", 10, 2024)

	repo, err := NewSalesByCategoryRepository(db, "iowa_liquor_sales", 2025)
	require.NoError(t, err)

	table, err := repo.GetSalesByCategory(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, table)
	assert.True(t, table.IsEmpty())
}

func TestSalesByCategoryRepository_NullCategory(t *testing.T) {
	db := openSalesDB(t)
	insertSale(t, db, nil, 42, 2025)

	repo, err := NewSalesByCategoryRepository(db, "iowa_liquor_sales", 2025)
	require.NoError(t, err)

	table, err := repo.GetSalesByCategory(context.Background())
	require.NoError(t, err)

	require.Len(t, table, 1)
	assert.Equal(t, UnknownCategory, table[0].Category)
	assert.Equal(t, 42.0, table[0].TotalSaleDollars)
}

func TestSalesByCategoryRepository_NullSum(t *testing.T) {
	db := openSalesDB(t)
	_, err := db.Exec(
		"INSERT INTO iowa_liquor_sales (LIQUOR_CATEGORY, SALE_DOLLARS, SALE_YEAR) VALUES (?, NULL, ?), (?, NULL, ?)",
		"Gin", 2025, "Gin", 2025,
	)
	require.NoError(t, err)
	insertSale(t, db, "Beer", 15, 2025)

	repo, err := NewSalesByCategoryRepository(db, "iowa_liquor_sales", 2025)
	require.NoError(t, err)

	table, err := repo.GetSalesByCategory(context.Background())
	require.NoError(t, err)

	require.Len(t, table, 2)
	assert.Equal(t, "Gin", table[0].Category)
	assert.Equal(t, 0.0, table[0].TotalSaleDollars)
	assert.Equal(t, "Beer", table[1].Category)
	assert.Equal(t, 15.0, table[1].TotalSaleDollars)
}

func TestSalesByCategoryRepository_QueryError(t *testing.T) {
	db := openSalesDB(t)

	repo, err := NewSalesByCategoryRepository(db, "missing_table", 2025)
	require.NoError(t, err)

	table, err := repo.GetSalesByCategory(context.Background())
	assert.Error(t, err)
	assert.Nil(t, table)
	assert.Contains(t, err.Error(), "erro ao executar a query de vendas por categoria")
}
