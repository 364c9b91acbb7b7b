package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/cowork-pro/internal/application/dto"
	"github.com/tu-usuario/cowork-pro/internal/domain/entity"
	"github.com/tu-usuario/cowork-pro/internal/domain/repository"
)

// BranchUseCase casos de uso CRUD para sedes y sus oficinas.
type BranchUseCase struct {
	branchRepo repository.BranchRepository
	officeRepo repository.OfficeRepository
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(branchRepo repository.BranchRepository, officeRepo repository.OfficeRepository) *BranchUseCase {
	return &BranchUseCase{branchRepo: branchRepo, officeRepo: officeRepo}
}

// Create crea una nueva sede.
func (uc *BranchUseCase) Create(companyID string, in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	now := time.Now()
	branch := &entity.Branch{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.branchRepo.Create(branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// GetByID obtiene una sede por ID.
func (uc *BranchUseCase) GetByID(id string) (*dto.BranchResponse, error) {
	branch, err := uc.branchRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, nil
	}
	return toBranchResponse(branch), nil
}

// Update actualiza una sede.
func (uc *BranchUseCase) Update(id string, in dto.UpdateBranchRequest) (*dto.BranchResponse, error) {
	branch, err := uc.branchRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, nil
	}
	if in.Name != nil {
		branch.Name = *in.Name
	}
	if in.Address != nil {
		branch.Address = *in.Address
	}
	if in.Phone != nil {
		branch.Phone = *in.Phone
	}
	branch.UpdatedAt = time.Now()
	if err := uc.branchRepo.Update(branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// List lista sedes por empresa con paginación.
func (uc *BranchUseCase) List(companyID string, limit, offset int) (*dto.BranchListResponse, error) {
	list, err := uc.branchRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BranchResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBranchResponse(b))
	}
	return &dto.BranchListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una sede por ID.
func (uc *BranchUseCase) Delete(id string) error {
	return uc.branchRepo.Delete(id)
}

// CreateOffice crea una oficina dentro de la sede.
func (uc *BranchUseCase) CreateOffice(branchID string, in dto.CreateOfficeRequest) (*dto.OfficeResponse, error) {
	branch, err := uc.branchRepo.GetByID(branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, nil
	}
	now := time.Now()
	office := &entity.Office{
		ID:           uuid.New().String(),
		BranchID:     branchID,
		Code:         in.Code,
		Floor:        in.Floor,
		Capacity:     in.Capacity,
		MonthlyPrice: in.MonthlyPrice,
		Status:       entity.OfficeStatusAvailable,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.officeRepo.Create(office); err != nil {
		return nil, err
	}
	return toOfficeResponse(office), nil
}

// UpdateOffice actualiza una oficina.
func (uc *BranchUseCase) UpdateOffice(id string, in dto.UpdateOfficeRequest) (*dto.OfficeResponse, error) {
	office, err := uc.officeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if office == nil {
		return nil, nil
	}
	if in.Code != nil {
		office.Code = *in.Code
	}
	if in.Floor != nil {
		office.Floor = *in.Floor
	}
	if in.Capacity != nil {
		office.Capacity = *in.Capacity
	}
	if in.MonthlyPrice != nil {
		office.MonthlyPrice = *in.MonthlyPrice
	}
	if in.Status != nil {
		office.Status = *in.Status
	}
	office.UpdatedAt = time.Now()
	if err := uc.officeRepo.Update(office); err != nil {
		return nil, err
	}
	return toOfficeResponse(office), nil
}

// ListOffices lista las oficinas de una sede.
func (uc *BranchUseCase) ListOffices(branchID string, limit, offset int) (*dto.OfficeListResponse, error) {
	list, err := uc.officeRepo.ListByBranch(branchID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OfficeResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOfficeResponse(o))
	}
	return &dto.OfficeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// DeleteOffice elimina una oficina por ID.
func (uc *BranchUseCase) DeleteOffice(id string) error {
	return uc.officeRepo.Delete(id)
}

func toBranchResponse(b *entity.Branch) *dto.BranchResponse {
	if b == nil {
		return nil
	}
	return &dto.BranchResponse{
		ID:        b.ID,
		CompanyID: b.CompanyID,
		Name:      b.Name,
		Address:   b.Address,
		Phone:     b.Phone,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toOfficeResponse(o *entity.Office) *dto.OfficeResponse {
	if o == nil {
		return nil
	}
	return &dto.OfficeResponse{
		ID:           o.ID,
		BranchID:     o.BranchID,
		Code:         o.Code,
		Floor:        o.Floor,
		Capacity:     o.Capacity,
		MonthlyPrice: o.MonthlyPrice,
		Status:       o.Status,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}
