// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/liquor-sales-dashboard/infrastructure/database/warehouse"
	"github.com/vfg2006/liquor-sales-dashboard/internal/domain"
)

//go:generate mockgen -source=sales_by_category.go -destination=mocks/sales_by_category.go -package=mocks

const (
	categoryColumn    = "LIQUOR_CATEGORY"
	saleDollarsColumn = "SALE_DOLLARS"
	saleYearColumn    = "SALE_YEAR"

	// UnknownCategory é usado quando a categoria vem nula do warehouse
	UnknownCategory = "Unknown"
)

// Até três partes: database.schema.tabela
var tableIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$]*(\.[A-Za-z_][A-Za-z0-9_$]*){0,2}$`)

type SalesByCategoryRepository interface {
	GetSalesByCategory(ctx context.Context) (domain.SalesByCategoryTable, error)
	Statement() string
}

type salesByCategoryRepository struct {
	conn      warehouse.Queryer
	statement string
}

func NewSalesByCategoryRepository(conn warehouse.Queryer, table string, year int) (SalesByCategoryRepository, error) {
	statement, err := BuildSalesByCategoryStatement(table, year)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"table": table,
		"year":  year,
	}).Debug("Consulta de vendas por categoria configurada")

	return &salesByCategoryRepository{
		conn:      conn,
		statement: statement,
	}, nil
}

// BuildSalesByCategoryStatement monta a consulta agregada fixa. O ano entra como literal,
// a consulta não tem parâmetros.
func BuildSalesByCategoryStatement(table string, year int) (string, error) {
	if !tableIdentifier.MatchString(table) {
		return "", fmt.Errorf("nome de tabela inválido: %q", table)
	}
	if year <= 0 {
		return "", fmt.Errorf("ano inválido: %d", year)
	}

	query, args, err := squirrel.
		Select(
			categoryColumn,
			fmt.Sprintf("SUM(%s) AS %s", saleDollarsColumn, saleDollarsColumn),
		).
		From(table).
		Where(fmt.Sprintf("%s = %d", saleYearColumn, year)).
		GroupBy(categoryColumn).
		OrderBy(saleDollarsColumn + " ASC").
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	if len(args) > 0 {
		return "", fmt.Errorf("a consulta de vendas por categoria não aceita parâmetros, recebeu %d", len(args))
	}

	return query, nil
}

func (r *salesByCategoryRepository) Statement() string {
	return r.statement
}

func (r *salesByCategoryRepository) GetSalesByCategory(ctx context.Context) (domain.SalesByCategoryTable, error) {
	rows, err := r.conn.QueryContext(ctx, r.statement)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query de vendas por categoria")
	}
	defer rows.Close()

	table := make(domain.SalesByCategoryTable, 0)
	for rows.Next() {
		row, err := r.scanSalesByCategory(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear linha de vendas por categoria")
		}
		table = append(table, *row)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return table, nil
}

func (r *salesByCategoryRepository) scanSalesByCategory(rows *sql.Rows) (*domain.SalesByCategory, error) {
	var category sql.NullString
	var total sql.NullFloat64

	if err := rows.Scan(&category, &total); err != nil {
		return nil, err
	}

	row := &domain.SalesByCategory{
		Category:         UnknownCategory,
		TotalSaleDollars: total.Float64,
	}
	if category.Valid && category.String != "" {
		row.Category = category.String
	}

	return row, nil
}
