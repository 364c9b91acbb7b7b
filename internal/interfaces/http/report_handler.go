package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cowork-pro/internal/application/dto"
	"github.com/tu-usuario/cowork-pro/internal/application/report"
	"github.com/tu-usuario/cowork-pro/internal/domain"
)

// ReportHandler expone los reportes agregados de la empresa (protegido).
type ReportHandler struct {
	uc *report.SummaryUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.SummaryUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Annual godoc
// @Summary      Reporte anual
// @Description  Ingresos, egresos y conteos del año calendario, de toda la
// @Description  empresa o de una sede. Sin año se usa el actual.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        year        query  int     false  "Año (por defecto el actual)"
// @Param        branch_id   query  string  false  "Filtrar por sede"
// @Param        profile_id  query  string  false  "Libro contable (vacío = activo)"
// @Success      200  {object}  dto.AnnualReportDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/annual [get]
func (h *ReportHandler) Annual(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var req dto.AnnualReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	out, err := h.uc.AnnualReport(c.UserContext(), companyID, req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay libro contable activo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Monthly godoc
// @Summary      Reporte mensual
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        year        query  int     false  "Año (por defecto el actual)"
// @Param        month       query  int     false  "Mes 1-12 (por defecto el actual)"
// @Param        client_id   query  string  false  "Filtrar por cliente"
// @Param        branch_id   query  string  false  "Filtrar por sede"
// @Param        profile_id  query  string  false  "Libro contable (vacío = activo)"
// @Success      200  {object}  dto.MonthlyReportDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/monthly [get]
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var req dto.MonthlyReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	out, err := h.uc.MonthlyReport(c.UserContext(), companyID, req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay libro contable activo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Balance godoc
// @Summary      Balance histórico de la empresa
// @Description  (servicios + contratos + otros ingresos + aportes) menos
// @Description  (egresos + retiros pagados) hasta la fecha de corte.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        cutoff      query  string  false  "YYYY-MM-DD (vacío = hoy)"
// @Param        profile_id  query  string  false  "Libro contable (vacío = activo)"
// @Success      200  {object}  dto.CompanyBalanceDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/balance [get]
func (h *ReportHandler) Balance(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var req dto.BalanceRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	out, err := h.uc.CompanyBalance(c.UserContext(), companyID, req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay libro contable activo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
