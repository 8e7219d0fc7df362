package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/gestionale-negozio-api/internal/config"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/invoicing"
)

const defaultBatchSize = 20

// InvoiceOCRSyncConfig representa a configuração do agendador de OCR de faturas
type InvoiceOCRSyncConfig struct {
	CronSchedule string
	BatchSize    int
	SyncEnabled  bool
}

// InvoiceOCRSyncService processa periodicamente as faturas com arquivo aguardando OCR
type InvoiceOCRSyncService struct {
	scheduler      *gocron.Scheduler
	config         InvoiceOCRSyncConfig
	invoiceService invoicing.InvoiceManager

	ctx                 context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         *invoicing.ProcessSummary
	lastError           string
}

func NewInvoiceOCRSyncService(invoiceService invoicing.InvoiceManager, appConfig *config.Config) *InvoiceOCRSyncService {
	syncConfig := InvoiceOCRSyncConfig{
		CronSchedule: appConfig.InvoiceOCRSync.CronSchedule,
		BatchSize:    appConfig.InvoiceOCRSync.BatchSize,
		SyncEnabled:  appConfig.InvoiceOCRSync.Enabled,
	}
	if syncConfig.BatchSize <= 0 {
		syncConfig.BatchSize = defaultBatchSize
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"batch_size":    syncConfig.BatchSize,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de OCR de faturas carregada")

	return &InvoiceOCRSyncService{
		scheduler:      gocron.NewScheduler(time.Local),
		config:         syncConfig,
		invoiceService: invoiceService,
		ctx:            context.Background(),
	}
}

// Start agenda o job e para o agendador quando ctx é cancelado
func (s *InvoiceOCRSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("OCR automático de faturas desabilitado por configuração")
		return nil
	}

	s.syncMutex.Lock()
	s.ctx = ctx
	s.syncMutex.Unlock()

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de OCR de faturas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(s.syncPendingInvoices)
	if err != nil {
		return fmt.Errorf("erro ao agendar OCR de faturas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de OCR de faturas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncPendingInvoices processa um lote de faturas pendentes; execuções sobrepostas são ignoradas
func (s *InvoiceOCRSyncService) syncPendingInvoices() {
	ctx, startTime, ok := s.claimSync()
	if !ok {
		logrus.Info("OCR de faturas já em andamento, ignorando")
		return
	}
	s.runSync(ctx, startTime)
}

// claimSync marca a execução como em andamento sob o mutex. Retorna false se já houver uma.
func (s *InvoiceOCRSyncService) claimSync() (context.Context, time.Time, bool) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return nil, time.Time{}, false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return s.ctx, s.lastSyncStartedAt, true
}

func (s *InvoiceOCRSyncService) runSync(ctx context.Context, startTime time.Time) {
	logrus.WithField("batch_size", s.config.BatchSize).Info("Iniciando OCR de faturas pendentes")

	summary, err := s.invoiceService.ProcessPending(ctx, s.config.BatchSize)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false

	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("Erro ao processar faturas pendentes")
		return
	}

	s.lastError = ""
	s.lastSummary = summary
	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"processed": summary.Processed,
		"failed":    summary.Failed,
	}).Info("OCR de faturas pendentes concluído")
}

// TriggerManualSync dispara uma execução imediata. Retorna false se já houver uma em andamento.
func (s *InvoiceOCRSyncService) TriggerManualSync() bool {
	ctx, startTime, ok := s.claimSync()
	if !ok {
		logrus.Info("OCR de faturas já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando OCR manual de faturas pendentes")
	go s.runSync(ctx, startTime)
	return true
}

// GetStatus retorna o status atual do agendador
func (s *InvoiceOCRSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_batch_size":        s.config.BatchSize,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
	if s.lastSummary != nil {
		status["last_processed"] = s.lastSummary.Processed
		status["last_failed"] = s.lastSummary.Failed
	}
	if s.lastError != "" {
		status["last_error"] = s.lastError
	}

	return status
}
