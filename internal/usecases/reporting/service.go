package reporting

import (
	"context"
	"io"
	"time"

	"github.com/vfg2006/gestionale-negozio-api/infrastructure/repository"
	"github.com/vfg2006/gestionale-negozio-api/internal/domain"
	"github.com/vfg2006/gestionale-negozio-api/internal/settlement"
	"github.com/vfg2006/gestionale-negozio-api/pkg/apiErrors"
	"github.com/vfg2006/gestionale-negozio-api/pkg/utils"
)

const (
	trendDays        = 7
	topSuppliersSize = 5
)

type Reporter interface {
	PeriodReport(ctx context.Context, dateRange domain.DateRange) (*domain.PeriodReport, error)
	Dashboard(ctx context.Context, today time.Time) (*domain.Dashboard, error)
	ExportPeriodReport(ctx context.Context, dateRange domain.DateRange, w io.Writer) error
}

type Service struct {
	saleRepo     repository.SaleRepository
	purchaseRepo repository.PurchaseRepository
	invoiceRepo  repository.InvoiceRepository
}

func NewService(
	saleRepo repository.SaleRepository,
	purchaseRepo repository.PurchaseRepository,
	invoiceRepo repository.InvoiceRepository,
) Reporter {
	return &Service{
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
		invoiceRepo:  invoiceRepo,
	}
}

// PeriodReport consolida vendas e despesas do intervalo.
// Despesas de dias sem venda entram apenas no total do resumo.
func (s *Service) PeriodReport(ctx context.Context, dateRange domain.DateRange) (*domain.PeriodReport, error) {
	if !dateRange.Valid() {
		return nil, NewReportError(ErrInvalidDateRange, apiErrors.ErrInvalidRequest, "")
	}
	start, end := utils.Day(dateRange.Start), utils.Day(dateRange.End)

	sales, err := s.saleRepo.GetByDateRange(ctx, start, end)
	if err != nil {
		return nil, NewReportError(err, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendas do período")
	}

	purchases, err := s.purchaseRepo.GetByDateRange(ctx, start, end)
	if err != nil {
		return nil, NewReportError(err, apiErrors.ErrDatabaseOperation, "Erro ao buscar despesas do período")
	}

	expenses, err := s.purchaseRepo.ExpensesBySupplier(ctx, start, end, 0)
	if err != nil {
		return nil, NewReportError(err, apiErrors.ErrDatabaseOperation, "Erro ao agrupar despesas por fornecedor")
	}

	expensesByDay := make(map[time.Time]float64)
	summary := domain.ReportSummary{}
	for _, purchase := range purchases {
		expensesByDay[utils.Day(purchase.Date)] += purchase.Total()
		summary.CashExpenses += purchase.CashPayment
		summary.BankExpenses += purchase.BankPayment
	}
	summary.TotalExpenses = summary.CashExpenses + summary.BankExpenses

	days := make([]*domain.DailyReportRow, 0, len(sales))
	for _, sale := range sales {
		day := utils.Day(sale.Date)
		result := settlement.Calculate(sale, expensesByDay[day])

		days = append(days, &domain.DailyReportRow{
			Date:     day,
			Cash:     result.CashTotal,
			Bank:     result.BankTotal,
			Fees:     result.CardFees + result.SatispayFees,
			Takings:  result.Takings,
			Expenses: result.SupplierPayments,
			Net:      result.DailyProfit,
			Notes:    sale.Notes,
		})

		summary.CashTakings += result.CashTotal
		summary.BankTakings += result.BankTotal
		summary.TotalTakings += result.Takings
	}

	summary.NetProfit = summary.TotalTakings - summary.TotalExpenses
	summary.DaysCount = len(sales)
	if summary.DaysCount > 0 {
		summary.AverageDailyTakings = summary.TotalTakings / float64(summary.DaysCount)
	}

	if expenses == nil {
		expenses = []*domain.SupplierExpense{}
	}

	return &domain.PeriodReport{
		Start:    start,
		End:      end,
		Summary:  summary,
		Days:     days,
		Expenses: expenses,
	}, nil
}

// Dashboard usa o bruto (sem taxas) nas vendas, como os cartões do painel
func (s *Service) Dashboard(ctx context.Context, today time.Time) (*domain.Dashboard, error) {
	today = utils.Day(today)
	monthStart := utils.MonthStart(today)
	trendStart := today.AddDate(0, 0, -(trendDays - 1))

	rangeStart := monthStart
	if trendStart.Before(rangeStart) {
		rangeStart = trendStart
	}

	sales, err := s.saleRepo.GetByDateRange(ctx, rangeStart, today)
	if err != nil {
		return nil, NewReportError(err, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendas")
	}

	grossByDay := make(map[time.Time]float64, len(sales))
	dashboard := &domain.Dashboard{Date: today}
	for _, sale := range sales {
		day := utils.Day(sale.Date)
		gross := settlement.GrossReceipts(sale)
		grossByDay[day] += gross

		if !day.Before(monthStart) {
			dashboard.SalesMonth += gross
		}
	}
	dashboard.SalesToday = grossByDay[today]

	totals, err := s.purchaseRepo.GetTotalsByDateRange(ctx, monthStart, today)
	if err != nil {
		return nil, NewReportError(err, apiErrors.ErrDatabaseOperation, "Erro ao somar despesas do mês")
	}
	if totals != nil {
		dashboard.ExpensesMonth = totals.Total
	}
	dashboard.ProfitMonth = dashboard.SalesMonth - dashboard.ExpensesMonth

	if dashboard.PendingInvoices, err = s.invoiceRepo.CountPending(ctx); err != nil {
		return nil, NewReportError(err, apiErrors.ErrDatabaseOperation, "Erro ao contar faturas pendentes")
	}

	if dashboard.ActiveSuppliers, err = s.purchaseRepo.CountActiveSuppliers(ctx, monthStart, today); err != nil {
		return nil, NewReportError(err, apiErrors.ErrDatabaseOperation, "Erro ao contar fornecedores ativos")
	}

	dashboard.TopSuppliers, err = s.purchaseRepo.ExpensesBySupplier(ctx, monthStart, today, topSuppliersSize)
	if err != nil {
		return nil, NewReportError(err, apiErrors.ErrDatabaseOperation, "Erro ao buscar principais fornecedores")
	}
	if dashboard.TopSuppliers == nil {
		dashboard.TopSuppliers = []*domain.SupplierExpense{}
	}

	dashboard.Trend = make([]*domain.DailyAmount, 0, trendDays)
	for _, d := range (domain.DateRange{Start: trendStart, End: today}).Days() {
		dashboard.Trend = append(dashboard.Trend, &domain.DailyAmount{Date: d, Amount: grossByDay[d]})
	}

	return dashboard, nil
}

func (s *Service) ExportPeriodReport(ctx context.Context, dateRange domain.DateRange, w io.Writer) error {
	report, err := s.PeriodReport(ctx, dateRange)
	if err != nil {
		return err
	}

	if err := writeWorkbook(report, w); err != nil {
		return NewReportError(ErrExport, apiErrors.ErrInternalServer, err.Error())
	}
	return nil
}
