package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/cowork-pro/internal/application/dto"
	"github.com/tu-usuario/cowork-pro/internal/domain"
	"github.com/tu-usuario/cowork-pro/internal/domain/entity"
	"github.com/tu-usuario/cowork-pro/internal/domain/repository"
)

// FinanceUseCase agrupa los CRUD financieros: impuestos, servicios puntuales,
// transacciones misceláneas y retiros de utilidades.
type FinanceUseCase struct {
	taxRepo        repository.TaxRepository
	serviceRepo    repository.ClientServiceRepository
	txRepo         repository.TransactionRepository
	withdrawalRepo repository.WithdrawalRepository
}

// NewFinanceUseCase construye el caso de uso.
func NewFinanceUseCase(
	taxRepo repository.TaxRepository,
	serviceRepo repository.ClientServiceRepository,
	txRepo repository.TransactionRepository,
	withdrawalRepo repository.WithdrawalRepository,
) *FinanceUseCase {
	return &FinanceUseCase{
		taxRepo:        taxRepo,
		serviceRepo:    serviceRepo,
		txRepo:         txRepo,
		withdrawalRepo: withdrawalRepo,
	}
}

// ── Impuestos ─────────────────────────────────────────────────────────────────

// CreateTax crea un impuesto configurable.
func (uc *FinanceUseCase) CreateTax(companyID string, in dto.CreateTaxRequest) (*dto.TaxDTO, error) {
	if in.Bearer != entity.TaxBearerClient && in.Bearer != entity.TaxBearerCompany {
		return nil, fmt.Errorf("bearer %q: %w", in.Bearer, domain.ErrInvalidInput)
	}
	now := time.Now()
	tax := &entity.Tax{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Rate:      in.Rate,
		Bearer:    in.Bearer,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.taxRepo.Create(tax); err != nil {
		return nil, err
	}
	return toTaxDTO(tax), nil
}

// UpdateTax actualiza un impuesto (campos parciales).
func (uc *FinanceUseCase) UpdateTax(id string, in dto.UpdateTaxRequest) (*dto.TaxDTO, error) {
	tax, err := uc.taxRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tax == nil {
		return nil, nil
	}
	if in.Name != nil {
		tax.Name = *in.Name
	}
	if in.Rate != nil {
		tax.Rate = *in.Rate
	}
	if in.Bearer != nil {
		if *in.Bearer != entity.TaxBearerClient && *in.Bearer != entity.TaxBearerCompany {
			return nil, fmt.Errorf("bearer %q: %w", *in.Bearer, domain.ErrInvalidInput)
		}
		tax.Bearer = *in.Bearer
	}
	tax.UpdatedAt = time.Now()
	if err := uc.taxRepo.Update(tax); err != nil {
		return nil, err
	}
	return toTaxDTO(tax), nil
}

// ListTaxes lista los impuestos de la empresa.
func (uc *FinanceUseCase) ListTaxes(companyID string) ([]dto.TaxDTO, error) {
	list, err := uc.taxRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TaxDTO, 0, len(list))
	for _, t := range list {
		items = append(items, *toTaxDTO(t))
	}
	return items, nil
}

// DeleteTax elimina un impuesto por ID.
func (uc *FinanceUseCase) DeleteTax(id string) error {
	return uc.taxRepo.Delete(id)
}

// ── Servicios puntuales ───────────────────────────────────────────────────────

// CreateService crea un servicio puntual facturable.
func (uc *FinanceUseCase) CreateService(in dto.CreateClientServiceRequest) (*dto.ClientServiceResponse, error) {
	date, err := parseRequiredDate(in.TransactionDate)
	if err != nil {
		return nil, err
	}
	var tax *entity.Tax
	if in.TaxID != nil && *in.TaxID != "" {
		tax, err = uc.taxRepo.GetByID(*in.TaxID)
		if err != nil {
			return nil, err
		}
		if tax == nil {
			return nil, fmt.Errorf("impuesto %s: %w", *in.TaxID, domain.ErrNotFound)
		}
	}
	now := time.Now()
	service := &entity.ClientService{
		ID:              uuid.New().String(),
		ProfileID:       in.ProfileID,
		ClientID:        in.ClientID,
		ContractID:      in.ContractID,
		Description:     in.Description,
		Price:           in.Price,
		Tax:             tax,
		TransactionDate: date,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.serviceRepo.Create(service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// ListServices lista los servicios de un perfil con paginación.
func (uc *FinanceUseCase) ListServices(profileID string, limit, offset int) ([]dto.ClientServiceResponse, error) {
	list, err := uc.serviceRepo.ListByProfile(profileID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientServiceResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toServiceResponse(s))
	}
	return items, nil
}

// DeleteService elimina un servicio por ID.
func (uc *FinanceUseCase) DeleteService(id string) error {
	return uc.serviceRepo.Delete(id)
}

// ── Transacciones misceláneas ─────────────────────────────────────────────────

// CreateTransaction crea un ingreso o egreso misceláneo.
func (uc *FinanceUseCase) CreateTransaction(in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if in.Kind != entity.TransactionIncome && in.Kind != entity.TransactionExpense {
		return nil, fmt.Errorf("kind %q: %w", in.Kind, domain.ErrInvalidInput)
	}
	date, err := parseRequiredDate(in.TransactionDate)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	tx := &entity.Transaction{
		ID:              uuid.New().String(),
		ProfileID:       in.ProfileID,
		BranchID:        in.BranchID,
		Kind:            in.Kind,
		Concept:         in.Concept,
		Amount:          in.Amount,
		TransactionDate: date,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.txRepo.Create(tx); err != nil {
		return nil, err
	}
	return toTransactionResponse(tx), nil
}

// ListTransactions lista transacciones de un perfil, con filtro opcional por
// tipo (kind vacío = ambos).
func (uc *FinanceUseCase) ListTransactions(profileID, kind string, limit, offset int) ([]dto.TransactionResponse, error) {
	if kind != "" && kind != entity.TransactionIncome && kind != entity.TransactionExpense {
		return nil, fmt.Errorf("kind %q: %w", kind, domain.ErrInvalidInput)
	}
	list, err := uc.txRepo.ListByProfile(profileID, kind, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTransactionResponse(t))
	}
	return items, nil
}

// DeleteTransaction elimina una transacción por ID.
func (uc *FinanceUseCase) DeleteTransaction(id string) error {
	return uc.txRepo.Delete(id)
}

// ── Retiros ───────────────────────────────────────────────────────────────────

// CreateWithdrawal registra un retiro de utilidades en estado pendiente.
func (uc *FinanceUseCase) CreateWithdrawal(in dto.CreateWithdrawalRequest) (*dto.WithdrawalResponse, error) {
	date, err := parseRequiredDate(in.TransactionDate)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	w := &entity.Withdrawal{
		ID:              uuid.New().String(),
		ProfileID:       in.ProfileID,
		InvestmentID:    in.InvestmentID,
		Amount:          in.Amount,
		Status:          entity.WithdrawalStatusPending,
		TransactionDate: date,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.withdrawalRepo.Create(w); err != nil {
		return nil, err
	}
	return toWithdrawalResponse(w), nil
}

// PayWithdrawal marca un retiro como pagado. Pagar un retiro ya pagado
// devuelve ErrWithdrawalPaid.
func (uc *FinanceUseCase) PayWithdrawal(id string) (*dto.WithdrawalResponse, error) {
	w, err := uc.withdrawalRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	if w.Status == entity.WithdrawalStatusPaid {
		return nil, domain.ErrWithdrawalPaid
	}
	if err := uc.withdrawalRepo.MarkPaid(id); err != nil {
		return nil, err
	}
	w.Status = entity.WithdrawalStatusPaid
	return toWithdrawalResponse(w), nil
}

// ListWithdrawals lista retiros de un perfil con paginación.
func (uc *FinanceUseCase) ListWithdrawals(profileID string, limit, offset int) ([]dto.WithdrawalResponse, error) {
	list, err := uc.withdrawalRepo.ListByProfile(profileID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WithdrawalResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWithdrawalResponse(w))
	}
	return items, nil
}

// DeleteWithdrawal elimina un retiro por ID.
func (uc *FinanceUseCase) DeleteWithdrawal(id string) error {
	return uc.withdrawalRepo.Delete(id)
}

// parseRequiredDate interpreta YYYY-MM-DD; la cadena vacía es inválida.
func parseRequiredDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha %q: %w", s, domain.ErrInvalidInput)
	}
	return t.UTC(), nil
}

func toTaxDTO(t *entity.Tax) *dto.TaxDTO {
	if t == nil {
		return nil
	}
	return &dto.TaxDTO{ID: t.ID, Name: t.Name, Rate: t.Rate, Bearer: t.Bearer}
}

func toServiceResponse(s *entity.ClientService) *dto.ClientServiceResponse {
	if s == nil {
		return nil
	}
	resp := &dto.ClientServiceResponse{
		ID:              s.ID,
		ProfileID:       s.ProfileID,
		ClientID:        s.ClientID,
		ContractID:      s.ContractID,
		Description:     s.Description,
		Price:           s.Price,
		TransactionDate: s.TransactionDate,
		CreatedAt:       s.CreatedAt,
	}
	if s.Tax != nil {
		resp.Tax = toTaxDTO(s.Tax)
	}
	return resp
}

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	if t == nil {
		return nil
	}
	return &dto.TransactionResponse{
		ID:              t.ID,
		ProfileID:       t.ProfileID,
		BranchID:        t.BranchID,
		Kind:            t.Kind,
		Concept:         t.Concept,
		Amount:          t.Amount,
		TransactionDate: t.TransactionDate,
		CreatedAt:       t.CreatedAt,
	}
}

func toWithdrawalResponse(w *entity.Withdrawal) *dto.WithdrawalResponse {
	if w == nil {
		return nil
	}
	return &dto.WithdrawalResponse{
		ID:              w.ID,
		ProfileID:       w.ProfileID,
		InvestmentID:    w.InvestmentID,
		Amount:          w.Amount,
		Status:          w.Status,
		TransactionDate: w.TransactionDate,
		CreatedAt:       w.CreatedAt,
	}
}
