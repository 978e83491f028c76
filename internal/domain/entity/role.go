package entity

import "time"

// Role agrupa permisos por módulo. La matriz es dato puro: módulo -> acción
// -> habilitado. Ninguna lógica de autorización la evalúa aquí.
type Role struct {
	ID          string
	Name        string
	Permissions map[string]map[string]bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
