package handler

import (
	"bytes"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/liquor-sales-dashboard/internal/api/view"
	"github.com/vfg2006/liquor-sales-dashboard/internal/usecases/dashboard"
	"github.com/vfg2006/liquor-sales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/liquor-sales-dashboard/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DashboardPage renderiza o painel. Cada requisição executa a consulta uma vez.
func DashboardPage(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		canvas := view.NewHTMLCanvas()
		if err := service.Render(r.Context(), canvas); err != nil {
			logger.WithError(err).Error("Erro ao carregar vendas por categoria")
			apiErrors.WriteError(w, apiErrors.ErrWarehouseQuery, "Erro ao consultar vendas por categoria", nil)
			return
		}

		var page bytes.Buffer
		if err := canvas.Flush(&page); err != nil {
			logger.WithError(err).Error("Erro ao renderizar o painel")
			apiErrors.WriteError(w, apiErrors.ErrRender, "Erro ao renderizar o painel", nil)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write(page.Bytes()); err != nil {
			logger.WithError(err).Warn("Erro ao enviar o painel")
		}
	}
}

// GetSalesByCategory retorna o mesmo relatório do painel em JSON
func GetSalesByCategory(service dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		report, err := service.Report(r.Context())
		if err != nil {
			logger.WithError(err).Error("Erro ao carregar vendas por categoria")
			apiErrors.WriteError(w, apiErrors.ErrWarehouseQuery, "Erro ao consultar vendas por categoria", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta de vendas por categoria")
		}
	}
}

// NotFound responde rotas desconhecidas no formato padrão de erro
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", nil)
	})
}
