package dto

// ListRequest parámetros de listado: búsqueda, orden y paginación. Los
// filtros estructurados por entidad viajan como query params propios de cada
// endpoint.
type ListRequest struct {
	Search   string `query:"search"`
	SortKey  string `query:"sort_key"`
	SortDir  string `query:"sort_dir" validate:"omitempty,oneof=asc desc"`
	Page     int    `query:"page" validate:"min=0"`
	PageSize int    `query:"page_size" validate:"min=0,max=200"`
}

// ListMeta metadatos de página en respuestas de listado.
type ListMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// IDResponse respuesta de creación: el id asignado por el almacén.
type IDResponse struct {
	ID string `json:"id"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
