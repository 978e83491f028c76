package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/domain"
	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
	"github.com/jhoicas/retail-pos-api/internal/service"
)

// CRMUseCase casos de uso del CRM: leads y seguimientos.
type CRMUseCase struct {
	leads     *service.Service[entity.Lead]
	followUps *service.Service[entity.FollowUp]
}

// NewCRMUseCase construye el caso de uso.
func NewCRMUseCase(leads *service.Service[entity.Lead], followUps *service.Service[entity.FollowUp]) *CRMUseCase {
	return &CRMUseCase{leads: leads, followUps: followUps}
}

// ── Leads ────────────────────────────────────────────────────────────────────

// CreateLead registra un lead.
func (uc *CRMUseCase) CreateLead(ctx context.Context, in dto.LeadRequest) (*dto.LeadResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	l := leadFromRequest(in)
	l.CreatedAt = now
	l.UpdatedAt = now
	id, err := uc.leads.Create(ctx, l)
	if err != nil {
		return nil, err
	}
	l.ID = id
	return toLeadResponse(l), nil
}

// UpdateLead reemplaza el lead.
func (uc *CRMUseCase) UpdateLead(ctx context.Context, id string, in dto.LeadRequest) (*dto.LeadResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	current, err := uc.leads.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	l := leadFromRequest(in)
	l.ID = id
	l.CreatedAt = current.CreatedAt
	l.UpdatedAt = time.Now()
	if err := uc.leads.Update(ctx, id, l); err != nil {
		return nil, err
	}
	return toLeadResponse(l), nil
}

// GetLead obtiene un lead por id.
func (uc *CRMUseCase) GetLead(ctx context.Context, id string) (*dto.LeadResponse, error) {
	l, err := uc.leads.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toLeadResponse(l), nil
}

// DeleteLead elimina el lead.
func (uc *CRMUseCase) DeleteLead(ctx context.Context, id string) error {
	return uc.leads.Delete(ctx, id)
}

// ListLeads lista vigente de leads.
func (uc *CRMUseCase) ListLeads(ctx context.Context) ([]dto.LeadResponse, error) {
	items, err := uc.leads.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LeadResponse, 0, len(items))
	for _, l := range items {
		out = append(out, *toLeadResponse(l))
	}
	return out, nil
}

// ── Seguimientos ─────────────────────────────────────────────────────────────

// CreateFollowUp agenda un seguimiento. Fin antes del inicio ->
// ErrInvalidInput.
func (uc *CRMUseCase) CreateFollowUp(ctx context.Context, in dto.FollowUpRequest) (*dto.FollowUpResponse, error) {
	if err := validateFollowUp(in); err != nil {
		return nil, err
	}
	now := time.Now()
	f := followUpFromRequest(in)
	f.CreatedAt = now
	f.UpdatedAt = now
	id, err := uc.followUps.Create(ctx, f)
	if err != nil {
		return nil, err
	}
	f.ID = id
	return toFollowUpResponse(f), nil
}

// UpdateFollowUp reemplaza el seguimiento.
func (uc *CRMUseCase) UpdateFollowUp(ctx context.Context, id string, in dto.FollowUpRequest) (*dto.FollowUpResponse, error) {
	if err := validateFollowUp(in); err != nil {
		return nil, err
	}
	current, err := uc.followUps.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	f := followUpFromRequest(in)
	f.ID = id
	f.CreatedAt = current.CreatedAt
	f.UpdatedAt = time.Now()
	if err := uc.followUps.Update(ctx, id, f); err != nil {
		return nil, err
	}
	return toFollowUpResponse(f), nil
}

// GetFollowUp obtiene un seguimiento por id.
func (uc *CRMUseCase) GetFollowUp(ctx context.Context, id string) (*dto.FollowUpResponse, error) {
	f, err := uc.followUps.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toFollowUpResponse(f), nil
}

// DeleteFollowUp elimina el seguimiento.
func (uc *CRMUseCase) DeleteFollowUp(ctx context.Context, id string) error {
	return uc.followUps.Delete(ctx, id)
}

// ListFollowUps lista vigente de seguimientos.
func (uc *CRMUseCase) ListFollowUps(ctx context.Context) ([]dto.FollowUpResponse, error) {
	items, err := uc.followUps.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FollowUpResponse, 0, len(items))
	for _, f := range items {
		out = append(out, *toFollowUpResponse(f))
	}
	return out, nil
}

func validateFollowUp(in dto.FollowUpRequest) error {
	if in.Title == "" {
		return domain.ErrInvalidInput
	}
	if !in.StartAt.IsZero() && !in.EndAt.IsZero() && in.EndAt.Before(in.StartAt) {
		return domain.ErrInvalidInput
	}
	return nil
}

func leadFromRequest(in dto.LeadRequest) entity.Lead {
	return entity.Lead{
		Name:       in.Name,
		Email:      in.Email,
		Mobile:     in.Mobile,
		Source:     in.Source,
		LifeStage:  in.LifeStage,
		AssignedTo: in.AssignedTo,
	}
}

func toLeadResponse(l entity.Lead) *dto.LeadResponse {
	return &dto.LeadResponse{
		ID:         l.ID,
		Name:       l.Name,
		Email:      l.Email,
		Mobile:     l.Mobile,
		Source:     l.Source,
		LifeStage:  l.LifeStage,
		AssignedTo: l.AssignedTo,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

func followUpFromRequest(in dto.FollowUpRequest) entity.FollowUp {
	return entity.FollowUp{
		Title:       in.Title,
		Contact:     in.Contact,
		Category:    in.Category,
		Status:      in.Status,
		StartAt:     in.StartAt,
		EndAt:       in.EndAt,
		Description: in.Description,
	}
}

func toFollowUpResponse(f entity.FollowUp) *dto.FollowUpResponse {
	return &dto.FollowUpResponse{
		ID:          f.ID,
		Title:       f.Title,
		Contact:     f.Contact,
		Category:    f.Category,
		Status:      f.Status,
		StartAt:     f.StartAt,
		EndAt:       f.EndAt,
		Description: f.Description,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}
