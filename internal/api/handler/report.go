package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/reporting"
	"github.com/vfg2006/gestionale-negozio-api/pkg/apiErrors"
	"github.com/vfg2006/gestionale-negozio-api/pkg/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func GetPeriodReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dateRange, ok := requiredDateRange(w, r)
		if !ok {
			return
		}

		report, err := service.PeriodReport(r.Context(), dateRange)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar relatório")
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

// ExportPeriodReport gera o XLSX em memória para ainda poder responder JSON em caso de erro
func ExportPeriodReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dateRange, ok := requiredDateRange(w, r)
		if !ok {
			return
		}

		var buf bytes.Buffer
		if err := service.ExportPeriodReport(r.Context(), dateRange, &buf); err != nil {
			writeServiceError(w, r, err, "Erro ao exportar relatório")
			return
		}

		name := fmt.Sprintf("report_%s_%s.xlsx", dateRange.Start.Format("2006-01-02"), dateRange.End.Format("2006-01-02"))
		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.WriteHeader(http.StatusOK)
		buf.WriteTo(w)
	}
}

// GetDashboard usa ?date= como referência ou o dia atual
func GetDashboard(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		today := nowFunc()
		if v := r.URL.Query().Get("date"); v != "" {
			parsed, err := utils.ParseDate(v)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro date inválido", map[string]string{"date": v})
				return
			}
			today = parsed
		}

		dashboard, err := service.Dashboard(r.Context(), today)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar dashboard")
			return
		}
		writeJSON(w, http.StatusOK, dashboard)
	}
}
