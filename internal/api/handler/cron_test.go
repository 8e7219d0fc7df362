package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/gestionale-negozio-api/pkg/apiErrors"
)

type stubCronJob struct {
	accept    bool
	triggered int
}

func (s *stubCronJob) TriggerManualSync() bool {
	s.triggered++
	return s.accept
}

func (s *stubCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": !s.accept}
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name     string
		job      *stubCronJob
		target   string
		validate func(t *testing.T, job *stubCronJob, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Job livre - 202",
			job:    &stubCronJob{accept: true},
			target: "/v1/cron/run/invoice-ocr",
			validate: func(t *testing.T, job *stubCronJob, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusAccepted, rec.Code)
				assert.Equal(t, 1, job.triggered)
			},
		},
		{
			name:   "Job em execução - 409 SRV_004",
			job:    &stubCronJob{accept: false},
			target: "/v1/cron/run/invoice-ocr",
			validate: func(t *testing.T, job *stubCronJob, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusConflict, rec.Code)
				assert.Equal(t, apiErrors.ErrServiceBusy, decodeAPIError(t, rec).Code)
			},
		},
		{
			name:   "Tipo desconhecido - 400",
			job:    &stubCronJob{accept: true},
			target: "/v1/cron/run/meta",
			validate: func(t *testing.T, job *stubCronJob, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Zero(t, job.triggered)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := CronJobServices{CronJobTypeInvoiceOCR: tt.job}
			rec := serve(http.MethodPost, "/v1/cron/run/:type", RunCronJob(services), httptest.NewRequest(http.MethodPost, tt.target, nil))
			tt.validate(t, tt.job, rec)
		})
	}
}

func TestGetCronStatus(t *testing.T) {
	services := CronJobServices{CronJobTypeInvoiceOCR: &stubCronJob{accept: false}}

	rec := serve(http.MethodGet, "/v1/cron/status", GetCronStatus(services), httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var status map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, true, status[CronJobTypeInvoiceOCR]["sync_running"])
}
