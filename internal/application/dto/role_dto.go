package dto

import "time"

// RoleRequest entrada de un rol. La matriz de permisos viaja como vino: es
// dato puro módulo -> acción -> habilitado.
type RoleRequest struct {
	Name        string                     `json:"name" validate:"required"`
	Permissions map[string]map[string]bool `json:"permissions"`
}

// RoleResponse salida de un rol.
type RoleResponse struct {
	ID          string                     `json:"id"`
	Name        string                     `json:"name"`
	Permissions map[string]map[string]bool `json:"permissions"`
	CreatedAt   time.Time                  `json:"created_at"`
	UpdatedAt   time.Time                  `json:"updated_at"`
}

// RoleListResponse página de roles.
type RoleListResponse struct {
	Items []RoleResponse `json:"items"`
	Meta  ListMeta       `json:"meta"`
}
