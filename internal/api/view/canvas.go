package view

import (
	"embed"
	"html/template"
	"io"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"
	"github.com/vfg2006/liquor-sales-dashboard/internal/usecases/dashboard"
	"github.com/vfg2006/liquor-sales-dashboard/pkg/utils"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

var _ dashboard.Canvas = (*HTMLCanvas)(nil)

// O go-echarts grava as opções dentro de um <script> sem escapar HTML
var scriptTextEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// HTMLCanvas acumula as chamadas do presenter e escreve uma única página em Flush
type HTMLCanvas struct {
	title   string
	caption string
	info    string
	chart   *dashboard.BarChart
	newID   func() (string, error)
}

func NewHTMLCanvas() *HTMLCanvas {
	return &HTMLCanvas{newID: utils.GenerateID}
}

func (c *HTMLCanvas) Title(text string) {
	c.title = text
}

func (c *HTMLCanvas) Caption(text string) {
	c.caption = text
}

func (c *HTMLCanvas) Info(message string) {
	c.info = message
}

func (c *HTMLCanvas) BarChart(chart dashboard.BarChart) {
	c.chart = &chart
}

// HasChart indica se o presenter pediu o gráfico
func (c *HTMLCanvas) HasChart() bool {
	return c.chart != nil
}

func (c *HTMLCanvas) Flush(w io.Writer) error {
	if c.chart == nil {
		return c.renderPage(w)
	}
	return c.renderChart(w)
}

func (c *HTMLCanvas) renderPage(w io.Writer) error {
	data := struct {
		BrowserTitle string
		Title        string
		Caption      string
		Info         string
	}{
		BrowserTitle: dashboard.BrowserTitle,
		Title:        c.title,
		Caption:      c.caption,
		Info:         c.info,
	}

	if err := pageTemplate.ExecuteTemplate(w, "page", data); err != nil {
		return errors.Wrap(err, "erro ao renderizar a página")
	}
	return nil
}

func (c *HTMLCanvas) renderChart(w io.Writer) error {
	id, err := c.newID()
	if err != nil {
		return errors.Wrap(err, "erro ao gerar id do gráfico")
	}

	items := make([]opts.BarData, 0, len(c.chart.Rows))
	for _, total := range c.chart.Rows.Totals() {
		items = append(items, opts.BarData{Value: utils.RoundWithTwoDecimalPlace(total)})
	}

	categories := c.chart.Rows.Categories()
	for i, category := range categories {
		categories[i] = scriptTextEscaper.Replace(category)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: dashboard.BrowserTitle,
			ChartID:   "sales_" + id,
			Width:     "100%",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    scriptTextEscaper.Replace(c.title),
			Subtitle: scriptTextEscaper.Replace(c.caption),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: c.chart.X}),
		charts.WithYAxisOpts(opts.YAxis{Name: c.chart.Y}),
	)
	bar.SetXAxis(categories).AddSeries(c.chart.Y, items)

	if err := bar.Render(w); err != nil {
		return errors.Wrap(err, "erro ao renderizar o gráfico")
	}
	return nil
}
