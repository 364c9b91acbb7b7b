package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cowork-pro/internal/application/dto"
	"github.com/tu-usuario/cowork-pro/internal/application/usecase"
)

// BranchHandler maneja las peticiones HTTP para sedes y oficinas (protegido).
type BranchHandler struct {
	uc *usecase.BranchUseCase
}

// NewBranchHandler construye el handler.
func NewBranchHandler(uc *usecase.BranchUseCase) *BranchHandler {
	return &BranchHandler{uc: uc}
}

// Create godoc
// @Summary      Crear sede
// @Tags         branches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBranchRequest  true  "Datos de la sede"
// @Success      201   {object}  dto.BranchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/branches [post]
func (h *BranchHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.CreateBranchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(companyID, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener sede por ID
// @Tags         branches
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la sede"
// @Success      200  {object}  dto.BranchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/branches/{id} [get]
func (h *BranchHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sede no encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar sede
// @Tags         branches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sede"
// @Param        body  body  dto.UpdateBranchRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.BranchResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/branches/{id} [put]
func (h *BranchHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBranchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sede no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar sedes
// @Tags         branches
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.BranchListResponse
// @Router       /api/branches [get]
func (h *BranchHandler) List(c *fiber.Ctx) error {
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
// @Summary      Eliminar sede
// @Tags         branches
// @Security     Bearer
// @Param        id  path  string  true  "ID de la sede"
// @Success      204
// @Router       /api/branches/{id} [delete]
func (h *BranchHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateOffice godoc
// @Summary      Crear oficina en una sede
// @Tags         branches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sede"
// @Param        body  body  dto.CreateOfficeRequest  true  "Datos de la oficina"
// @Success      201   {object}  dto.OfficeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/branches/{id}/offices [post]
func (h *BranchHandler) CreateOffice(c *fiber.Ctx) error {
	var in dto.CreateOfficeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code es requerido"})
	}
	out, err := h.uc.CreateOffice(c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sede no encontrada"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListOffices godoc
// @Summary      Listar oficinas de una sede
// @Tags         branches
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID de la sede"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.OfficeListResponse
// @Router       /api/branches/{id}/offices [get]
func (h *BranchHandler) ListOffices(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListOffices(c.Params("id"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateOffice godoc
// @Summary      Actualizar oficina
// @Tags         branches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        officeId  path  string  true  "ID de la oficina"
// @Param        body      body  dto.UpdateOfficeRequest  true  "Campos a actualizar"
// @Success      200       {object}  dto.OfficeResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /api/offices/{officeId} [put]
func (h *BranchHandler) UpdateOffice(c *fiber.Ctx) error {
	var in dto.UpdateOfficeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateOffice(c.Params("officeId"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "oficina no encontrada"})
	}
	return c.JSON(out)
}

// DeleteOffice godoc
// @Summary      Eliminar oficina
// @Tags         branches
// @Security     Bearer
// @Param        officeId  path  string  true  "ID de la oficina"
// @Success      204
// @Router       /api/offices/{officeId} [delete]
func (h *BranchHandler) DeleteOffice(c *fiber.Ctx) error {
	if err := h.uc.DeleteOffice(c.Params("officeId")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
