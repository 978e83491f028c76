package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/domain"
	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
	"github.com/jhoicas/retail-pos-api/internal/service"
)

// CatalogUseCase casos de uso de los catálogos simples. Una instancia por
// colección (marcas, categorías, ubicaciones, grupos de clientes, categorías
// de gasto, fuentes, etapas de vida, variaciones).
type CatalogUseCase struct {
	records *service.Service[entity.NamedRecord]
}

// NewCatalogUseCase construye el caso de uso sobre la colección dada.
func NewCatalogUseCase(records *service.Service[entity.NamedRecord]) *CatalogUseCase {
	return &CatalogUseCase{records: records}
}

// Create agrega un registro. Nombre repetido (sin distinguir mayúsculas) ->
// ErrDuplicate.
func (uc *CatalogUseCase) Create(ctx context.Context, in dto.NamedRecordRequest) (*dto.NamedRecordResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.records.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range existing {
		if strings.EqualFold(r.Name, in.Name) {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	rec := entity.NamedRecord{
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	id, err := uc.records.Create(ctx, rec)
	if err != nil {
		return nil, err
	}
	rec.ID = id
	return toNamedRecordResponse(rec), nil
}

// Update reemplaza el registro.
func (uc *CatalogUseCase) Update(ctx context.Context, id string, in dto.NamedRecordRequest) (*dto.NamedRecordResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	current, err := uc.records.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	rec := entity.NamedRecord{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   current.CreatedAt,
		UpdatedAt:   time.Now(),
	}
	if err := uc.records.Update(ctx, id, rec); err != nil {
		return nil, err
	}
	return toNamedRecordResponse(rec), nil
}

// GetByID obtiene el registro por id.
func (uc *CatalogUseCase) GetByID(ctx context.Context, id string) (*dto.NamedRecordResponse, error) {
	rec, err := uc.records.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toNamedRecordResponse(rec), nil
}

// Delete elimina el registro.
func (uc *CatalogUseCase) Delete(ctx context.Context, id string) error {
	return uc.records.Delete(ctx, id)
}

// List devuelve la lista vigente completa.
func (uc *CatalogUseCase) List(ctx context.Context) ([]dto.NamedRecordResponse, error) {
	items, err := uc.records.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NamedRecordResponse, 0, len(items))
	for _, r := range items {
		out = append(out, *toNamedRecordResponse(r))
	}
	return out, nil
}

func toNamedRecordResponse(r entity.NamedRecord) *dto.NamedRecordResponse {
	return &dto.NamedRecordResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
