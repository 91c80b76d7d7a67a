package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/myland-api/internal/domain"
	"github.com/jhoicas/myland-api/internal/domain/repository"
)

// SalesReportPDFGenerator puerto de infraestructura: genera el PDF del
// reporte de ventas de un período.
type SalesReportPDFGenerator interface {
	GenerateSalesReportPDF(ctx context.Context, start, end time.Time, rows []repository.SaleReportRow) ([]byte, error)
}

// SalesReportUseCase arma el reporte de ventas de un período y delega la
// representación en PDF al generador.
type SalesReportUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	pdfGenerator  SalesReportPDFGenerator
}

// NewSalesReportUseCase construye el caso de uso.
func NewSalesReportUseCase(analyticsRepo repository.AnalyticsRepository, pdfGenerator SalesReportPDFGenerator) *SalesReportUseCase {
	return &SalesReportUseCase{analyticsRepo: analyticsRepo, pdfGenerator: pdfGenerator}
}

// Generate devuelve los bytes del PDF con las ventas entre start y end.
// Fechas en formato yyyy-MM-dd; vacías cubren todo el histórico hasta hoy.
func (uc *SalesReportUseCase) Generate(ctx context.Context, startStr, endStr string) ([]byte, error) {
	start := time.Unix(0, 0)
	end := time.Now()

	var err error
	if startStr != "" {
		if start, err = time.Parse("2006-01-02", startStr); err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	if endStr != "" {
		if end, err = time.Parse("2006-01-02", endStr); err != nil {
			return nil, domain.ErrInvalidInput
		}
		// Incluir el día final completo
		end = end.Add(24*time.Hour - time.Nanosecond)
	}

	rows, err := uc.analyticsRepo.GetSalesReport(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("reporte de ventas: %w", err)
	}
	return uc.pdfGenerator.GenerateSalesReportPDF(ctx, start, end, rows)
}
