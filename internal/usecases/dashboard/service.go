package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/liquor-sales-dashboard/infrastructure/repository"
	"github.com/vfg2006/liquor-sales-dashboard/internal/config"
	"github.com/vfg2006/liquor-sales-dashboard/internal/domain"
)

const (
	BrowserTitle  = "Iowa Liquor Sales"
	PageTitle     = "Iowa Liquor Sales Dashboard"
	captionFormat = "Data from %s (SALE_YEAR = %d)"
)

type Dashboard interface {
	Report(ctx context.Context) (*domain.DashboardReport, error)
	Render(ctx context.Context, canvas Canvas) error
}

type Service struct {
	salesRepo    repository.SalesByCategoryRepository
	table        string
	year         int
	queryTimeout time.Duration
	now          func() time.Time
}

func NewService(salesRepo repository.SalesByCategoryRepository, cfg *config.Config) Dashboard {
	return &Service{
		salesRepo:    salesRepo,
		table:        cfg.Sales.Table,
		year:         cfg.Sales.Year,
		queryTimeout: cfg.Warehouse.QueryTimeout,
		now:          time.Now,
	}
}

// Report executa a consulta agregada e devolve a tabela já ordenada pelo total vendido.
// Erros do warehouse são devolvidos ao chamador sem nova tentativa.
func (s *Service) Report(ctx context.Context) (*domain.DashboardReport, error) {
	if s.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.queryTimeout)
		defer cancel()
	}

	startedAt := s.now()

	table, err := s.salesRepo.GetSalesByCategory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar vendas por categoria")
	}

	// O warehouse já ordena, mas a ordem da tabela materializada não depende do driver
	table = table.SortByMetric()

	logrus.WithFields(logrus.Fields{
		"rows":        len(table),
		"year":        s.year,
		"duration_ms": s.now().Sub(startedAt).Milliseconds(),
	}).Debug("Vendas por categoria carregadas")

	return &domain.DashboardReport{
		Title:       PageTitle,
		Caption:     Caption(s.table, s.year),
		Year:        s.year,
		Table:       table,
		GrandTotal:  table.GrandTotal(),
		GeneratedAt: s.now(),
	}, nil
}

func (s *Service) Render(ctx context.Context, canvas Canvas) error {
	report, err := s.Report(ctx)
	if err != nil {
		return err
	}

	Present(canvas, report)
	return nil
}

func Caption(table string, year int) string {
	return fmt.Sprintf(captionFormat, table, year)
}
