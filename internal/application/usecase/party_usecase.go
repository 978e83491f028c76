package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/domain"
	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
	"github.com/jhoicas/retail-pos-api/internal/service"
)

// PartyUseCase casos de uso de contrapartes. Una instancia para proveedores y
// otra para clientes: misma forma, colecciones separadas.
type PartyUseCase struct {
	parties *service.Service[entity.Party]
}

// NewPartyUseCase construye el caso de uso sobre la colección dada.
func NewPartyUseCase(parties *service.Service[entity.Party]) *PartyUseCase {
	return &PartyUseCase{parties: parties}
}

// Create registra la contraparte. Se exige nombre de negocio o de persona
// según el discriminador.
func (uc *PartyUseCase) Create(ctx context.Context, in dto.PartyRequest) (*dto.PartyResponse, error) {
	if err := validateParty(in); err != nil {
		return nil, err
	}
	now := time.Now()
	p := partyFromRequest(in)
	p.CreatedAt = now
	p.UpdatedAt = now
	id, err := uc.parties.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return toPartyResponse(p), nil
}

// Update reemplaza la contraparte completa.
func (uc *PartyUseCase) Update(ctx context.Context, id string, in dto.PartyRequest) (*dto.PartyResponse, error) {
	if err := validateParty(in); err != nil {
		return nil, err
	}
	current, err := uc.parties.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p := partyFromRequest(in)
	p.ID = id
	p.CreatedAt = current.CreatedAt
	p.UpdatedAt = time.Now()
	if err := uc.parties.Update(ctx, id, p); err != nil {
		return nil, err
	}
	return toPartyResponse(p), nil
}

// GetByID obtiene la contraparte por id.
func (uc *PartyUseCase) GetByID(ctx context.Context, id string) (*dto.PartyResponse, error) {
	p, err := uc.parties.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toPartyResponse(p), nil
}

// Delete elimina la contraparte.
func (uc *PartyUseCase) Delete(ctx context.Context, id string) error {
	return uc.parties.Delete(ctx, id)
}

// List devuelve la lista vigente completa.
func (uc *PartyUseCase) List(ctx context.Context) ([]dto.PartyResponse, error) {
	items, err := uc.parties.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PartyResponse, 0, len(items))
	for _, p := range items {
		out = append(out, *toPartyResponse(p))
	}
	return out, nil
}

func validateParty(in dto.PartyRequest) error {
	if in.IsBusiness && in.BusinessName == "" {
		return domain.ErrInvalidInput
	}
	if !in.IsBusiness && in.FirstName == "" && in.LastName == "" {
		return domain.ErrInvalidInput
	}
	return nil
}

func partyFromRequest(in dto.PartyRequest) entity.Party {
	return entity.Party{
		IsBusiness:     in.IsBusiness,
		ContactID:      in.ContactID,
		BusinessName:   in.BusinessName,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		Mobile:         in.Mobile,
		Landline:       in.Landline,
		TaxNumber:      in.TaxNumber,
		OpeningBalance: in.OpeningBalance,
		PayTermDays:    in.PayTermDays,
		AddressLine1:   in.AddressLine1,
		AddressLine2:   in.AddressLine2,
		City:           in.City,
		State:          in.State,
		Country:        in.Country,
		ZipCode:        in.ZipCode,
		Group:          in.Group,
		AssignedTo:     in.AssignedTo,
	}
}

func toPartyResponse(p entity.Party) *dto.PartyResponse {
	return &dto.PartyResponse{
		ID:             p.ID,
		IsBusiness:     p.IsBusiness,
		ContactID:      p.ContactID,
		BusinessName:   p.BusinessName,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		DisplayName:    p.DisplayName(),
		Email:          p.Email,
		Mobile:         p.Mobile,
		Landline:       p.Landline,
		TaxNumber:      p.TaxNumber,
		OpeningBalance: p.OpeningBalance,
		PayTermDays:    p.PayTermDays,
		AddressLine1:   p.AddressLine1,
		AddressLine2:   p.AddressLine2,
		City:           p.City,
		State:          p.State,
		Country:        p.Country,
		ZipCode:        p.ZipCode,
		Group:          p.Group,
		AssignedTo:     p.AssignedTo,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
