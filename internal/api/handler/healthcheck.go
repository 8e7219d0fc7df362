package handler

import (
	"net/http"
	"time"
)

// OCRChecker informa se o binário do Tesseract está disponível
type OCRChecker interface {
	IsAvailable() bool
}

type HealthcheckResponse struct {
	Status       string    `json:"status"`
	Time         time.Time `json:"time"`
	OCRAvailable bool      `json:"ocr_available"`
}

// HealthcheckHandler responde 200 mesmo sem OCR; a falta do Tesseract só desativa o reconhecimento de imagens
func HealthcheckHandler(ocr OCRChecker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthcheckResponse{
			Status:       "ok",
			Time:         nowFunc(),
			OCRAvailable: ocr != nil && ocr.IsAvailable(),
		})
	})
}
