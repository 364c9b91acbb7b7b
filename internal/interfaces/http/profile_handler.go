package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cowork-pro/internal/application/dto"
	"github.com/tu-usuario/cowork-pro/internal/application/usecase"
	"github.com/tu-usuario/cowork-pro/internal/domain"
)

// ProfileHandler maneja las peticiones HTTP para libros contables (protegido).
type ProfileHandler struct {
	uc *usecase.ProfileUseCase
}

// NewProfileHandler construye el handler.
func NewProfileHandler(uc *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// Create godoc
// @Summary      Crear libro contable
// @Tags         profiles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProfileRequest  true  "Nombre del libro"
// @Success      201   {object}  dto.ProfileResponse
// @Router       /api/profiles [post]
func (h *ProfileHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.CreateProfileRequest
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

// List godoc
// @Summary      Listar libros contables
// @Tags         profiles
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProfileResponse
// @Router       /api/profiles [get]
func (h *ProfileHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	out, err := h.uc.List(companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Activate godoc
// @Summary      Activar libro contable
// @Description  Marca el libro como activo y desactiva el resto de la empresa.
// @Tags         profiles
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del libro"
// @Success      200  {object}  dto.ProfileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/profiles/{id}/activate [post]
func (h *ProfileHandler) Activate(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	out, err := h.uc.Activate(c.UserContext(), companyID, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "libro no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar libro contable
// @Description  El libro activo no se puede eliminar.
// @Tags         profiles
// @Security     Bearer
// @Param        id  path  string  true  "ID del libro"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/profiles/{id} [delete]
func (h *ProfileHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "libro no encontrado"})
		}
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "el libro activo no se puede eliminar"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
