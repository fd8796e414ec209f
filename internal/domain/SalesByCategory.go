// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"sort"
	"time"
)

// SalesByCategory representa o total vendido de uma categoria de bebida no ano consultado
type SalesByCategory struct {
	Category         string  `json:"liquor_category"`
	TotalSaleDollars float64 `json:"sale_dollars"`
}

// SalesByCategoryTable é o resultado materializado da consulta agregada
type SalesByCategoryTable []SalesByCategory

func (t SalesByCategoryTable) IsEmpty() bool {
	return len(t) == 0
}

// SortByMetric ordena as linhas pelo total vendido, de forma crescente e estável
func (t SalesByCategoryTable) SortByMetric() SalesByCategoryTable {
	sort.SliceStable(t, func(i, j int) bool {
		return t[i].TotalSaleDollars < t[j].TotalSaleDollars
	})
	return t
}

func (t SalesByCategoryTable) Categories() []string {
	categories := make([]string, 0, len(t))
	for _, row := range t {
		categories = append(categories, row.Category)
	}
	return categories
}

func (t SalesByCategoryTable) Totals() []float64 {
	totals := make([]float64, 0, len(t))
	for _, row := range t {
		totals = append(totals, row.TotalSaleDollars)
	}
	return totals
}

func (t SalesByCategoryTable) GrandTotal() float64 {
	var total float64
	for _, row := range t {
		total += row.TotalSaleDollars
	}
	return total
}

// DashboardReport é o que uma renderização do painel produz
type DashboardReport struct {
	Title       string               `json:"title"`
	Caption     string               `json:"caption"`
	Year        int                  `json:"year"`
	Table       SalesByCategoryTable `json:"rows"`
	GrandTotal  float64              `json:"grand_total"`
	GeneratedAt time.Time            `json:"generated_at"`
}
