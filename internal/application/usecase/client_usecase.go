package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/cowork-pro/internal/application/dto"
	"github.com/tu-usuario/cowork-pro/internal/domain/entity"
	"github.com/tu-usuario/cowork-pro/internal/domain/repository"
)

// ClientUseCase casos de uso CRUD para clientes.
type ClientUseCase struct {
	clientRepo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clientRepo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo}
}

// Create crea un cliente nuevo.
func (uc *ClientUseCase) Create(companyID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Document:  in.Document,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.clientRepo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	return toClientResponse(client), nil
}

// Update actualiza un cliente (campos parciales).
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	if in.Name != nil {
		client.Name = *in.Name
	}
	if in.Document != nil {
		client.Document = *in.Document
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	client.UpdatedAt = time.Now()
	if err := uc.clientRepo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List lista clientes de una empresa con paginación.
func (uc *ClientUseCase) List(companyID string, limit, offset int) (*dto.ClientListResponse, error) {
	list, err := uc.clientRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClientResponse(c))
	}
	return &dto.ClientListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un cliente por ID.
func (uc *ClientUseCase) Delete(id string) error {
	return uc.clientRepo.Delete(id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Name:      c.Name,
		Document:  c.Document,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
