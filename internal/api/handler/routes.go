package handler

import (
	"net/http"

	"github.com/vfg2006/gestionale-negozio-api/internal/api/handler/router"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/authenticating"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/importing"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/invoicing"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/reporting"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/selling"
	"github.com/vfg2006/gestionale-negozio-api/internal/usecases/supplying"
	"github.com/vfg2006/gestionale-negozio-api/pkg/middleware"
)

var (
	adminOnly = []func(http.Handler) http.Handler{middleware.AdminOnly()}
	allRoles  = []func(http.Handler) http.Handler{middleware.AllRoles()}
)

func Healthcheck(ocr OCRChecker) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(ocr),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: adminOnly,
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{Path: "/v1/users", Method: http.MethodGet, Handler: ListUsers(service), Middlewares: adminOnly},
		{Path: "/v1/users", Method: http.MethodPost, Handler: CreateUser(service), Middlewares: adminOnly},
		{Path: "/v1/users/:id", Method: http.MethodGet, Handler: GetUser(service), Middlewares: allRoles},
		{Path: "/v1/users/:id", Method: http.MethodPut, Handler: UpdateUser(service), Middlewares: adminOnly},
	}
}

func Sales(service selling.Seller) []router.Route {
	return []router.Route{
		{Path: "/v1/sales", Method: http.MethodGet, Handler: ListSales(service), Middlewares: allRoles},
		{Path: "/v1/sales/:date", Method: http.MethodGet, Handler: GetSale(service), Middlewares: allRoles},
		{Path: "/v1/sales/:date/settlement", Method: http.MethodGet, Handler: GetSettlement(service), Middlewares: allRoles},
		{Path: "/v1/sales/:date/settlement", Method: http.MethodPost, Handler: PreviewSettlement(service), Middlewares: allRoles},
		{Path: "/v1/sales/:date", Method: http.MethodPut, Handler: SaveSale(service), Middlewares: allRoles},
		{Path: "/v1/sales/:date", Method: http.MethodDelete, Handler: DeleteSale(service), Middlewares: adminOnly},
	}
}

func Suppliers(service supplying.SupplyManager) []router.Route {
	return []router.Route{
		{Path: "/v1/suppliers", Method: http.MethodGet, Handler: ListSuppliers(service), Middlewares: allRoles},
		{Path: "/v1/suppliers", Method: http.MethodPost, Handler: CreateSupplier(service), Middlewares: allRoles},
		{Path: "/v1/suppliers/:id", Method: http.MethodGet, Handler: GetSupplier(service), Middlewares: allRoles},
		{Path: "/v1/suppliers/:id", Method: http.MethodPut, Handler: UpdateSupplier(service), Middlewares: allRoles},
		{Path: "/v1/suppliers/:id", Method: http.MethodDelete, Handler: DeactivateSupplier(service), Middlewares: adminOnly},
		{Path: "/v1/suppliers/:id/purchases", Method: http.MethodGet, Handler: ListSupplierPurchases(service), Middlewares: allRoles},
	}
}

func Purchases(service supplying.SupplyManager) []router.Route {
	return []router.Route{
		{Path: "/v1/purchases", Method: http.MethodGet, Handler: ListPurchases(service), Middlewares: allRoles},
		{Path: "/v1/purchases", Method: http.MethodPost, Handler: CreatePurchase(service), Middlewares: allRoles},
		{Path: "/v1/purchases/:id", Method: http.MethodGet, Handler: GetPurchase(service), Middlewares: allRoles},
		{Path: "/v1/purchases/:id", Method: http.MethodPut, Handler: UpdatePurchase(service), Middlewares: allRoles},
		{Path: "/v1/purchases/:id", Method: http.MethodDelete, Handler: DeletePurchase(service), Middlewares: allRoles},
	}
}

func Invoices(service invoicing.InvoiceManager, maxUploadBytes int64) []router.Route {
	return []router.Route{
		{Path: "/v1/invoices", Method: http.MethodGet, Handler: ListInvoices(service), Middlewares: allRoles},
		{Path: "/v1/invoices", Method: http.MethodPost, Handler: CreateInvoice(service), Middlewares: allRoles},
		{Path: "/v1/invoices/:id", Method: http.MethodGet, Handler: GetInvoice(service), Middlewares: allRoles},
		{Path: "/v1/invoices/:id", Method: http.MethodPut, Handler: UpdateInvoice(service), Middlewares: allRoles},
		{Path: "/v1/invoices/:id", Method: http.MethodDelete, Handler: DeleteInvoice(service), Middlewares: allRoles},
		{Path: "/v1/invoices/:id/file", Method: http.MethodPost, Handler: UploadInvoiceFile(service, maxUploadBytes), Middlewares: allRoles},
		{Path: "/v1/invoices/:id/file", Method: http.MethodGet, Handler: DownloadInvoiceFile(service), Middlewares: allRoles},
		{Path: "/v1/invoices/:id/ocr", Method: http.MethodPost, Handler: ProcessInvoiceOCR(service), Middlewares: allRoles},
		{Path: "/v1/ocr/extract", Method: http.MethodPost, Handler: ExtractInvoiceFields(service), Middlewares: allRoles},
	}
}

func Import(service importing.Importer, maxUploadBytes int64) []router.Route {
	return []router.Route{
		{Path: "/v1/import/:type/preview", Method: http.MethodPost, Handler: PreviewImport(service, maxUploadBytes), Middlewares: adminOnly},
		{Path: "/v1/import/:type", Method: http.MethodPost, Handler: RunImport(service, maxUploadBytes), Middlewares: adminOnly},
	}
}

func Reports(reporter reporting.Reporter, supplies supplying.SupplyManager) []router.Route {
	return []router.Route{
		{Path: "/v1/reports/period", Method: http.MethodGet, Handler: GetPeriodReport(reporter), Middlewares: allRoles},
		{Path: "/v1/reports/period/export", Method: http.MethodGet, Handler: ExportPeriodReport(reporter), Middlewares: allRoles},
		{Path: "/v1/reports/dashboard", Method: http.MethodGet, Handler: GetDashboard(reporter), Middlewares: allRoles},
		{Path: "/v1/reports/purchase-totals", Method: http.MethodGet, Handler: GetPurchaseTotals(supplies), Middlewares: allRoles},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{Path: "/v1/cron/run/:type", Method: http.MethodPost, Handler: RunCronJob(services), Middlewares: adminOnly},
		{Path: "/v1/cron/status", Method: http.MethodGet, Handler: GetCronStatus(services), Middlewares: adminOnly},
	}
}
