package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/gestionale-negozio-api/infrastructure/database/postgres"
	"github.com/vfg2006/gestionale-negozio-api/infrastructure/integrator/ocr"
	"github.com/vfg2006/gestionale-negozio-api/infrastructure/integrator/ocr/ocrclient"
	"github.com/vfg2006/gestionale-negozio-api/infrastructure/migration"
	"github.com/vfg2006/gestionale-negozio-api/infrastructure/repository"
	"github.com/vfg2006/gestionale-negozio-api/internal/api"
	"github.com/vfg2006/gestionale-negozio-api/internal/api/handler"
	"github.com/vfg2006/gestionale-negozio-api/internal/config"
	"github.com/vfg2006/gestionale-negozio-api/internal/scheduler"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/authenticating"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/importing"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/invoicing"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/reporting"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/selling"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/supplying"
	"github.com/vfg2006/gestionale-negozio-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.Env, cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.Migrate {
		if err := migration.Run(ctx, pgConn); err != nil {
			logrus.WithError(err).Fatal("Erro ao executar as migrações")
		}
		logrus.Info("Migrações aplicadas com sucesso")
	}

	saleRepo := repository.NewSaleRepository(pgConn)
	supplierRepo := repository.NewSupplierRepository(pgConn)
	purchaseRepo := repository.NewPurchaseRepository(pgConn)
	invoiceRepo := repository.NewInvoiceRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	ocrIntegrator := ocr.New(cfg, ocrclient.NewClient(cfg))
	if !ocrIntegrator.IsAvailable() {
		logrus.WithFields(logrus.Fields{
			"tesseract_path": cfg.OCR.TesseractPath,
		}).Warn("Tesseract não encontrado, OCR de imagens indisponível")
	}

	authenticator := authenticating.NewService(userRepo, cfg)
	if err := authenticator.EnsureAdmin(ctx); err != nil {
		logrus.WithError(err).Warn("Não foi possível criar o administrador inicial")
	}

	seller := selling.NewService(saleRepo, purchaseRepo, cfg)
	supplyManager := supplying.NewService(supplierRepo, purchaseRepo)
	invoiceManager := invoicing.NewService(invoiceRepo, supplierRepo, ocrIntegrator, cfg)
	importer := importing.NewService(saleRepo, supplierRepo, purchaseRepo, cfg)
	reporter := reporting.NewService(saleRepo, purchaseRepo, invoiceRepo)

	invoiceOCRSyncService := scheduler.NewInvoiceOCRSyncService(invoiceManager, cfg)
	if err := invoiceOCRSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de OCR das fatture")
	} else {
		logrus.Info("Agendador de OCR das fatture iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Seller:         seller,
		SupplyManager:  supplyManager,
		InvoiceManager: invoiceManager,
		Importer:       importer,
		Reporter:       reporter,
		Authenticator:  authenticator,
		OCR:            ocrIntegrator,
		CronJobs: handler.CronJobServices{
			handler.CronJobTypeInvoiceOCR: invoiceOCRSyncService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
