package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/gestionale-negozio-api/internal/domain"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/importing"
	"github.com/vfg2006/gestionale-negozio-api/pkg/apiErrors"
)

// importFile lê o campo multipart "file" respeitando o limite de upload
func importFile(w http.ResponseWriter, r *http.Request, maxBytes int64) (multipart.File, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)
	file, _, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Arquivo excede o limite permitido", map[string]int64{"max_bytes": maxBytes})
			return nil, false
		}
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo multipart 'file' é obrigatório", nil)
		return nil, false
	}
	return file, true
}

func importType(r *http.Request) domain.ImportType {
	return domain.ImportType(httprouter.ParamsFromContext(r.Context()).ByName("type"))
}

// PreviewImport devolve delimitador, cabeçalhos, primeiras linhas e o mapeamento sugerido
func PreviewImport(service importing.Importer, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, ok := importFile(w, r, maxBytes)
		if !ok {
			return
		}
		defer file.Close()

		preview, err := service.Preview(importType(r), file)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao ler CSV")
			return
		}
		writeJSON(w, http.StatusOK, preview)
	}
}

// RunImport importa o CSV. O campo opcional "mapping" é um JSON campo→índice da coluna.
func RunImport(service importing.Importer, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, ok := importFile(w, r, maxBytes)
		if !ok {
			return
		}
		defer file.Close()

		var mapping map[string]int
		if raw := r.FormValue("mapping"); raw != "" {
			if err := json.UnmarshalFromString(raw, &mapping); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mapeamento de colunas inválido", nil)
				return
			}
		}

		summary, err := service.Import(r.Context(), importType(r), file, mapping)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao importar CSV")
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}
