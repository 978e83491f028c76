package listview

import (
	"sync"

	"github.com/jhoicas/retail-pos-api/internal/docstore"
)

// Status es el estado de la pantalla de listado.
type Status int

const (
	// StatusLoading antes de la primera emisión.
	StatusLoading Status = iota
	// StatusReady con datos para renderizar.
	StatusReady
	// StatusEmpty con emisión recibida pero cero registros tras aplicar
	// búsqueda y filtros.
	StatusEmpty
)

// SubscribeFunc abre la suscripción en vivo a la colección; misma forma que
// Service.SubscribeAll para que el cableado sea directo.
type SubscribeFunc[T any] func(onData func([]T), onError func(error)) docstore.CancelFunc

// View mantiene el estado de una pantalla de listado: la última emisión
// cruda, los parámetros vigentes y las marcas de borrado en curso. El
// resultado paginado se deriva en cada Snapshot, nunca se cachea.
type View[T any] struct {
	opts Options[T]

	mu       sync.Mutex
	params   Params
	raw      []T
	loaded   bool
	err      error
	deleting map[string]bool
	cancel   docstore.CancelFunc
}

// NewView crea la vista con los parámetros iniciales dados.
func NewView[T any](opts Options[T], params Params) *View[T] {
	return &View[T]{
		opts:     opts,
		params:   params,
		deleting: make(map[string]bool),
	}
}

// Start abre la suscripción. Cada emisión reemplaza por completo la anterior;
// un error de la suscripción deja la vista en error hasta la próxima emisión
// buena.
func (v *View[T]) Start(subscribe SubscribeFunc[T]) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cancel != nil {
		return
	}
	v.cancel = subscribe(
		func(items []T) {
			v.mu.Lock()
			defer v.mu.Unlock()
			v.raw = items
			v.loaded = true
			v.err = nil
		},
		func(err error) {
			v.mu.Lock()
			defer v.mu.Unlock()
			v.err = err
		},
	)
}

// Teardown cancela la suscripción; tras retornar no llegan más emisiones.
func (v *View[T]) Teardown() {
	v.mu.Lock()
	cancel := v.cancel
	v.cancel = nil
	v.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Err devuelve el último error de suscripción o decodificación, si lo hay.
func (v *View[T]) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// SetSearch cambia el término de búsqueda y regresa a la primera página,
// igual que hacían las pantallas originales al teclear en el buscador.
func (v *View[T]) SetSearch(search string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.params.Search = search
	v.params.Page = 1
}

// SetFilter fija un filtro estructurado; valor vacío lo desactiva.
func (v *View[T]) SetFilter(key, value string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.params.Filters == nil {
		v.params.Filters = make(map[string]string)
	}
	if value == "" {
		delete(v.params.Filters, key)
	} else {
		v.params.Filters[key] = value
	}
	v.params.Page = 1
}

// SetSort cambia la columna y dirección de orden.
func (v *View[T]) SetSort(key, dir string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.params.SortKey = key
	v.params.SortDir = dir
}

// SetPage navega a la página pedida; el clamp ocurre al derivar.
func (v *View[T]) SetPage(page int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.params.Page = page
}

// SetPageSize cambia el tamaño de página y regresa a la primera.
func (v *View[T]) SetPageSize(size int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.params.PageSize = size
	v.params.Page = 1
}

// MarkDeleting marca una fila con borrado en curso (deshabilita su botón).
func (v *View[T]) MarkDeleting(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.deleting[id] = true
}

// ClearDeleting levanta la marca (el borrado terminó o falló).
func (v *View[T]) ClearDeleting(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.deleting, id)
}

// IsDeleting responde si la fila tiene un borrado en curso.
func (v *View[T]) IsDeleting(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.deleting[id]
}

// Snapshot deriva la página vigente desde la última emisión cruda.
func (v *View[T]) Snapshot() (Status, Result[T]) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.loaded {
		return StatusLoading, Result[T]{}
	}
	result := Apply(v.raw, v.params, v.opts)
	if result.Total == 0 {
		return StatusEmpty, result
	}
	return StatusReady, result
}
