package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cowork-pro/internal/application/dto"
	"github.com/tu-usuario/cowork-pro/internal/application/usecase"
	"github.com/tu-usuario/cowork-pro/internal/domain"
)

// FinanceHandler maneja impuestos, servicios puntuales, transacciones y
// retiros (protegido).
type FinanceHandler struct {
	uc *usecase.FinanceUseCase
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(uc *usecase.FinanceUseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// ── Impuestos ─────────────────────────────────────────────────────────────────

// CreateTax godoc
// @Summary      Crear impuesto
// @Tags         taxes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTaxRequest  true  "name, rate, bearer"
// @Success      201   {object}  dto.TaxDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/taxes [post]
func (h *FinanceHandler) CreateTax(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.CreateTaxRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.CreateTax(companyID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateTax godoc
// @Summary      Actualizar impuesto
// @Tags         taxes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del impuesto"
// @Param        body  body  dto.UpdateTaxRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.TaxDTO
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/taxes/{id} [put]
func (h *FinanceHandler) UpdateTax(c *fiber.Ctx) error {
	var in dto.UpdateTaxRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateTax(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "impuesto no encontrado"})
	}
	return c.JSON(out)
}

// ListTaxes godoc
// @Summary      Listar impuestos
// @Tags         taxes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TaxDTO
// @Router       /api/taxes [get]
func (h *FinanceHandler) ListTaxes(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	out, err := h.uc.ListTaxes(companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DeleteTax godoc
// @Summary      Eliminar impuesto
// @Tags         taxes
// @Security     Bearer
// @Param        id  path  string  true  "ID del impuesto"
// @Success      204
// @Router       /api/taxes/{id} [delete]
func (h *FinanceHandler) DeleteTax(c *fiber.Ctx) error {
	if err := h.uc.DeleteTax(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Servicios puntuales ───────────────────────────────────────────────────────

// CreateService godoc
// @Summary      Registrar servicio puntual
// @Tags         services
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClientServiceRequest  true  "Datos del servicio"
// @Success      201   {object}  dto.ClientServiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/services [post]
func (h *FinanceHandler) CreateService(c *fiber.Ctx) error {
	var in dto.CreateClientServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProfileID == "" || in.ClientID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "profile_id y client_id son requeridos"})
	}
	out, err := h.uc.CreateService(in)
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

// ListServices godoc
// @Summary      Listar servicios de un libro contable
// @Tags         services
// @Security     Bearer
// @Produce      json
// @Param        profile_id  query  string  true   "ID del libro contable"
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200         {array}  dto.ClientServiceResponse
// @Router       /api/services [get]
func (h *FinanceHandler) ListServices(c *fiber.Ctx) error {
	profileID := c.Query("profile_id")
	if profileID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "profile_id es requerido"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.ListServices(profileID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DeleteService godoc
// @Summary      Eliminar servicio
// @Tags         services
// @Security     Bearer
// @Param        id  path  string  true  "ID del servicio"
// @Success      204
// @Router       /api/services/{id} [delete]
func (h *FinanceHandler) DeleteService(c *fiber.Ctx) error {
	if err := h.uc.DeleteService(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Transacciones misceláneas ─────────────────────────────────────────────────

// CreateTransaction godoc
// @Summary      Registrar ingreso o egreso
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "kind: income | expense"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *FinanceHandler) CreateTransaction(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProfileID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "profile_id es requerido"})
	}
	out, err := h.uc.CreateTransaction(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListTransactions godoc
// @Summary      Listar transacciones de un libro contable
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        profile_id  query  string  true   "ID del libro contable"
// @Param        kind        query  string  false  "income | expense (vacío = ambos)"
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200         {array}  dto.TransactionResponse
// @Router       /api/transactions [get]
func (h *FinanceHandler) ListTransactions(c *fiber.Ctx) error {
	profileID := c.Query("profile_id")
	if profileID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "profile_id es requerido"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.ListTransactions(profileID, c.Query("kind"), limit, offset)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DeleteTransaction godoc
// @Summary      Eliminar transacción
// @Tags         transactions
// @Security     Bearer
// @Param        id  path  string  true  "ID de la transacción"
// @Success      204
// @Router       /api/transactions/{id} [delete]
func (h *FinanceHandler) DeleteTransaction(c *fiber.Ctx) error {
	if err := h.uc.DeleteTransaction(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Retiros ───────────────────────────────────────────────────────────────────

// CreateWithdrawal godoc
// @Summary      Registrar retiro de utilidades
// @Tags         withdrawals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWithdrawalRequest  true  "Datos del retiro"
// @Success      201   {object}  dto.WithdrawalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/withdrawals [post]
func (h *FinanceHandler) CreateWithdrawal(c *fiber.Ctx) error {
	var in dto.CreateWithdrawalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProfileID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "profile_id es requerido"})
	}
	out, err := h.uc.CreateWithdrawal(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// PayWithdrawal godoc
// @Summary      Marcar retiro como pagado
// @Description  Pagar un retiro ya pagado devuelve 409.
// @Tags         withdrawals
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del retiro"
// @Success      200  {object}  dto.WithdrawalResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/withdrawals/{id}/pay [post]
func (h *FinanceHandler) PayWithdrawal(c *fiber.Ctx) error {
	out, err := h.uc.PayWithdrawal(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "retiro no encontrado"})
		}
		if errors.Is(err, domain.ErrWithdrawalPaid) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_PAID", Message: "el retiro ya fue pagado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListWithdrawals godoc
// @Summary      Listar retiros de un libro contable
// @Tags         withdrawals
// @Security     Bearer
// @Produce      json
// @Param        profile_id  query  string  true   "ID del libro contable"
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200         {array}  dto.WithdrawalResponse
// @Router       /api/withdrawals [get]
func (h *FinanceHandler) ListWithdrawals(c *fiber.Ctx) error {
	profileID := c.Query("profile_id")
	if profileID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "profile_id es requerido"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.ListWithdrawals(profileID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DeleteWithdrawal godoc
// @Summary      Eliminar retiro
// @Tags         withdrawals
// @Security     Bearer
// @Param        id  path  string  true  "ID del retiro"
// @Success      204
// @Router       /api/withdrawals/{id} [delete]
func (h *FinanceHandler) DeleteWithdrawal(c *fiber.Ctx) error {
	if err := h.uc.DeleteWithdrawal(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
