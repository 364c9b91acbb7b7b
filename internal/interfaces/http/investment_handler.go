package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cowork-pro/internal/application/dto"
	"github.com/tu-usuario/cowork-pro/internal/application/report"
	"github.com/tu-usuario/cowork-pro/internal/application/usecase"
	"github.com/tu-usuario/cowork-pro/internal/domain"
)

// InvestmentHandler maneja inversiones, el cálculo de participación y el
// estado de cuenta en PDF (protegido).
type InvestmentHandler struct {
	uc  *usecase.InvestmentUseCase
	pdf *report.StatementPDFUseCase
}

// NewInvestmentHandler construye el handler.
func NewInvestmentHandler(uc *usecase.InvestmentUseCase, pdf *report.StatementPDFUseCase) *InvestmentHandler {
	return &InvestmentHandler{uc: uc, pdf: pdf}
}

// Create godoc
// @Summary      Registrar inversión
// @Tags         investments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInvestmentRequest  true  "type: comprehensive | contractual"
// @Success      201   {object}  dto.InvestmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/investments [post]
func (h *InvestmentHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.CreateInvestmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.InvestorName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "investor_name es requerido"})
	}
	out, err := h.uc.Create(companyID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener inversión por ID
// @Tags         investments
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la inversión"
// @Success      200  {object}  dto.InvestmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/investments/{id} [get]
func (h *InvestmentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inversión no encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar inversión
// @Tags         investments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la inversión"
// @Param        body  body  dto.UpdateInvestmentRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.InvestmentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/investments/{id} [put]
func (h *InvestmentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInvestmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inversión no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar inversiones
// @Tags         investments
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.InvestmentListResponse
// @Router       /api/investments [get]
func (h *InvestmentHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.List(companyID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar inversión
// @Tags         investments
// @Security     Bearer
// @Param        id  path  string  true  "ID de la inversión"
// @Success      204
// @Router       /api/investments/{id} [delete]
func (h *InvestmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Calculations godoc
// @Summary      Calcular participación de todas las inversiones
// @Description  Ejecuta el motor de participación sobre todas las inversiones
// @Description  registradas de la empresa y devuelve el detalle por inversión.
// @Tags         investments
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InvestmentCalculationsResponse
// @Router       /api/investments/calculations [get]
func (h *InvestmentHandler) Calculations(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	out, err := h.uc.Calculations(c.UserContext(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Calculation godoc
// @Summary      Calcular participación de una inversión
// @Tags         investments
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la inversión"
// @Success      200  {object}  dto.InvestmentCalculationResult
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/investments/{id}/calculation [get]
func (h *InvestmentHandler) Calculation(c *fiber.Ctx) error {
	out, err := h.uc.Calculation(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inversión no encontrada"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo de inversión desconocido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// StatementPDF godoc
// @Summary      Estado de cuenta de una inversión en PDF
// @Tags         investments
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la inversión"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/investments/{id}/statement.pdf [get]
func (h *InvestmentHandler) StatementPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.pdf.Generate(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inversión no encontrada"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo de inversión desconocido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="estado_de_cuenta.pdf"`)
	return c.Send(pdfBytes)
}
