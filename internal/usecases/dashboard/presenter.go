package dashboard

import (
	"fmt"

	"github.com/vfg2006/liquor-sales-dashboard/internal/domain"
)

//go:generate mockgen -source=presenter.go -destination=mocks/canvas.go -package=mocks

const (
	CategoryAxis = "LIQUOR_CATEGORY"
	MetricAxis   = "SALE_DOLLARS"

	emptyMessageFormat = "No data found for %d. Load data, then refresh."
)

// BarChart descreve um gráfico de barras com a categoria em X e o total em Y
type BarChart struct {
	X    string
	Y    string
	Rows domain.SalesByCategoryTable
}

// Canvas é a superfície onde o painel é desenhado
type Canvas interface {
	Title(text string)
	Caption(text string)
	Info(message string)
	BarChart(chart BarChart)
}

// Present desenha o relatório: título, legenda e então a mensagem de vazio ou o gráfico.
func Present(canvas Canvas, report *domain.DashboardReport) {
	canvas.Title(report.Title)
	canvas.Caption(report.Caption)

	if report.Table.IsEmpty() {
		canvas.Info(EmptyMessage(report.Year))
		return
	}

	canvas.BarChart(BarChart{
		X:    CategoryAxis,
		Y:    MetricAxis,
		Rows: report.Table.SortByMetric(),
	})
}

func EmptyMessage(year int) string {
	return fmt.Sprintf(emptyMessageFormat, year)
}
