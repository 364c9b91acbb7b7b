package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cowork-pro/internal/application/dto"
	"github.com/tu-usuario/cowork-pro/internal/application/usecase"
	"github.com/tu-usuario/cowork-pro/internal/domain"
)

// ContractHandler maneja las peticiones HTTP para contratos de renta (protegido).
type ContractHandler struct {
	uc *usecase.ContractUseCase
}

// NewContractHandler construye el handler.
func NewContractHandler(uc *usecase.ContractUseCase) *ContractHandler {
	return &ContractHandler{uc: uc}
}

// Create godoc
// @Summary      Crear contrato
// @Tags         contracts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContractRequest  true  "Datos del contrato"
// @Success      201   {object}  dto.ContractResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/contracts [post]
func (h *ContractHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContractRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProfileID == "" || in.ClientID == "" || in.OfficeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "profile_id, client_id y office_id son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener contrato por ID
// @Tags         contracts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del contrato"
// @Success      200  {object}  dto.ContractResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contracts/{id} [get]
func (h *ContractHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contrato no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar contrato
// @Tags         contracts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del contrato"
// @Param        body  body  dto.UpdateContractRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ContractResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/contracts/{id} [put]
func (h *ContractHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateContractRequest
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
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contrato no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar contratos de un libro contable
// @Tags         contracts
// @Security     Bearer
// @Produce      json
// @Param        profile_id  query  string  true   "ID del libro contable"
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200         {object}  dto.ContractListResponse
// @Router       /api/contracts [get]
func (h *ContractHandler) List(c *fiber.Ctx) error {
	profileID := c.Query("profile_id")
	if profileID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "profile_id es requerido"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.List(profileID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar contrato
// @Tags         contracts
// @Security     Bearer
// @Param        id  path  string  true  "ID del contrato"
// @Success      204
// @Router       /api/contracts/{id} [delete]
func (h *ContractHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
