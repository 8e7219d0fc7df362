package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/gestionale-negozio-api/internal/domain"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/authenticating"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/importing"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/invoicing"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/reporting"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/selling"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/supplying"
	"github.com/vfg2006/gestionale-negozio-api/pkg/apiErrors"
	"github.com/vfg2006/gestionale-negozio-api/pkg/log"
	"github.com/vfg2006/gestionale-negozio-api/pkg/middleware"
	"github.com/vfg2006/gestionale-negozio-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = validator.New(validator.WithRequiredStructEnabled())

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.L.WithError(err).Error("Erro ao enviar resposta")
	}
}

// codeOf extrai o código de API dos erros tipados dos casos de uso
func codeOf(err error) (code string, ok bool) {
	var (
		saleErr    *selling.SaleError
		supplyErr  *supplying.SupplyError
		invoiceErr *invoicing.InvoiceError
		importErr  *importing.ImportError
		reportErr  *reporting.ReportError
		authErr    *authenticating.AuthError
	)

	switch {
	case errors.As(err, &saleErr):
		return saleErr.Code, true
	case errors.As(err, &supplyErr):
		return supplyErr.Code, true
	case errors.As(err, &invoiceErr):
		return invoiceErr.Code, true
	case errors.As(err, &importErr):
		return importErr.Code, true
	case errors.As(err, &reportErr):
		return reportErr.Code, true
	case errors.As(err, &authErr):
		return authErr.Code, true
	}
	return "", false
}

// writeServiceError traduz o erro do caso de uso para a resposta padronizada.
// Erros 5xx não expõem detalhes ao cliente.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	code, ok := codeOf(err)
	if !ok {
		code = apiErrors.ErrInternalServer
	}

	logger := log.ForContext(r.Context()).WithError(err).WithField("code", code)
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error(fallback)
		apiErrors.WriteError(w, code, fallback, nil)
		return
	}

	logger.Warn(fallback)
	apiErrors.WriteError(w, code, err.Error(), nil)
}

// decodeAndValidate lê o corpo JSON e aplica as regras `validate` da struct
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return false
	}

	if err := validate.Struct(dst); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dados inválidos", ProcessValidationErrors(err))
		return false
	}
	return true
}

// ProcessValidationErrors mapeia cada campo inválido para a regra que falhou
func ProcessValidationErrors(err error) map[string]string {
	errorResponse := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errorResponse["_"] = err.Error()
		return errorResponse
	}

	for _, ve := range validationErrors {
		errorResponse[ve.Field()] = ve.Tag()
	}
	return errorResponse
}

func paramID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID inválido", map[string]string{"id": idStr})
		return 0, false
	}
	return id, true
}

func paramDate(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	dateStr := httprouter.ParamsFromContext(r.Context()).ByName("date")
	date, err := utils.ParseDate(dateStr)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida", map[string]string{"date": dateStr})
		return time.Time{}, false
	}
	return date, true
}

// queryDateRange lê start e end da query. present é false quando ambos estão ausentes.
func queryDateRange(w http.ResponseWriter, r *http.Request) (dateRange domain.DateRange, present bool, ok bool) {
	query := r.URL.Query()
	startStr, endStr := query.Get("start"), query.Get("end")
	if startStr == "" && endStr == "" {
		return domain.DateRange{}, false, true
	}

	start, err := utils.ParseDate(startStr)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro start inválido", map[string]string{"start": startStr})
		return domain.DateRange{}, true, false
	}

	end, err := utils.ParseDate(endStr)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro end inválido", map[string]string{"end": endStr})
		return domain.DateRange{}, true, false
	}

	return domain.DateRange{Start: start, End: end}, true, true
}

// requiredDateRange é queryDateRange com start e end obrigatórios
func requiredDateRange(w http.ResponseWriter, r *http.Request) (domain.DateRange, bool) {
	dateRange, present, ok := queryDateRange(w, r)
	if !ok {
		return dateRange, false
	}
	if !present {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetros start e end são obrigatórios", nil)
		return dateRange, false
	}
	return dateRange, true
}

func pagination(w http.ResponseWriter, r *http.Request) (limit, offset uint64, ok bool) {
	query := r.URL.Query()
	limit = defaultPageSize

	if v := query.Get("limit"); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil || parsed == 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
			return 0, 0, false
		}
		limit = min(parsed, maxPageSize)
	}

	if v := query.Get("offset"); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro offset inválido", nil)
			return 0, 0, false
		}
		offset = parsed
	}

	return limit, offset, true
}

func searchTerm(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get("q"))
}

func currentUser(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := middleware.UserFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}
	return claims, true
}

// nowFunc é substituído nos testes
var nowFunc = time.Now
