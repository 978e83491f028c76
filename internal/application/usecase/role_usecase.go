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

// RoleUseCase casos de uso de roles. La matriz de permisos se guarda como
// vino: es dato puro, nadie la evalúa del lado del servidor.
type RoleUseCase struct {
	roles *service.Service[entity.Role]
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(roles *service.Service[entity.Role]) *RoleUseCase {
	return &RoleUseCase{roles: roles}
}

// Create agrega un rol. Nombre repetido -> ErrDuplicate.
func (uc *RoleUseCase) Create(ctx context.Context, in dto.RoleRequest) (*dto.RoleResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.roles.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range existing {
		if strings.EqualFold(r.Name, in.Name) {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	role := entity.Role{Name: in.Name, Permissions: in.Permissions, CreatedAt: now, UpdatedAt: now}
	id, err := uc.roles.Create(ctx, role)
	if err != nil {
		return nil, err
	}
	role.ID = id
	return toRoleResponse(role), nil
}

// Update reemplaza el rol completo, matriz incluida.
func (uc *RoleUseCase) Update(ctx context.Context, id string, in dto.RoleRequest) (*dto.RoleResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	current, err := uc.roles.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	role := entity.Role{ID: id, Name: in.Name, Permissions: in.Permissions, CreatedAt: current.CreatedAt, UpdatedAt: time.Now()}
	if err := uc.roles.Update(ctx, id, role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// GetByID obtiene el rol por id.
func (uc *RoleUseCase) GetByID(ctx context.Context, id string) (*dto.RoleResponse, error) {
	role, err := uc.roles.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// Delete elimina el rol.
func (uc *RoleUseCase) Delete(ctx context.Context, id string) error {
	return uc.roles.Delete(ctx, id)
}

// List devuelve la lista vigente completa.
func (uc *RoleUseCase) List(ctx context.Context) ([]dto.RoleResponse, error) {
	items, err := uc.roles.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoleResponse, 0, len(items))
	for _, r := range items {
		out = append(out, *toRoleResponse(r))
	}
	return out, nil
}

func toRoleResponse(r entity.Role) *dto.RoleResponse {
	return &dto.RoleResponse{ID: r.ID, Name: r.Name, Permissions: r.Permissions, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}
