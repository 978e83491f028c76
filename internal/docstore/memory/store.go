// Package memory implementa el puerto docstore.Store en memoria: el backend
// de los tests y del modo desarrollo. Reproduce la semántica del almacén
// gestionado: ids asignados por el almacén, snapshots completos en orden de
// inserción y push a los suscriptores en cada mutación.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/retail-pos-api/internal/docstore"
	"github.com/jhoicas/retail-pos-api/internal/domain"
)

// Store almacén de documentos en memoria.
type Store struct {
	mu          sync.Mutex
	collections map[string]*collection
	hub         *docstore.Broadcaster
}

type collection struct {
	docs  map[string]docstore.Document
	order []string // ids en orden de inserción; el orden de emisión de los snapshots
}

var _ docstore.Store = (*Store)(nil)

// New crea un almacén vacío.
func New() *Store {
	return &Store{
		collections: make(map[string]*collection),
		hub:         docstore.NewBroadcaster(),
	}
}

// Add agrega un documento y devuelve el id asignado por el almacén.
func (s *Store) Add(_ context.Context, name string, doc docstore.Document) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col := s.collection(name)
	id := uuid.New().String()
	col.docs[id] = doc.Copy()
	col.order = append(col.order, id)
	s.notify(name, col)
	return id, nil
}

// Update reemplaza el cuerpo del documento identificado. Un id inexistente
// devuelve domain.ErrNotFound: nunca upsert.
func (s *Store) Update(_ context.Context, name, id string, doc docstore.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	col := s.collection(name)
	if _, ok := col.docs[id]; !ok {
		return domain.ErrNotFound
	}
	col.docs[id] = doc.Copy()
	s.notify(name, col)
	s.notifyDoc(name, id, col)
	return nil
}

// Delete elimina el documento. Borrar un id inexistente es un no-op.
func (s *Store) Delete(_ context.Context, name, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	col := s.collection(name)
	if _, ok := col.docs[id]; !ok {
		return nil
	}
	delete(col.docs, id)
	for i, other := range col.order {
		if other == id {
			col.order = append(col.order[:i], col.order[i+1:]...)
			break
		}
	}
	s.notify(name, col)
	s.hub.Publish(docTopic(name, id), (*docstore.Record)(nil))
	return nil
}

// Get devuelve el documento o domain.ErrNotFound.
func (s *Store) Get(_ context.Context, name, id string) (docstore.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col := s.collection(name)
	doc, ok := col.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return doc.Copy(), nil
}

// SubscribeCollection abre una suscripción a la colección; el snapshot
// vigente se entrega como primera emisión.
func (s *Store) SubscribeCollection(name string, onSnapshot func([]docstore.Record), onError func(error)) docstore.CancelFunc {
	s.mu.Lock()
	initial := s.snapshot(s.collection(name))
	cancel := s.hub.Subscribe(name, initial, func(data any) {
		onSnapshot(data.([]docstore.Record))
	}, onError)
	s.mu.Unlock()
	return cancel
}

// SubscribeDocument abre una suscripción a un solo documento. Emite nil si el
// documento no existe o se borra durante la suscripción.
func (s *Store) SubscribeDocument(name, id string, onSnapshot func(*docstore.Record), onError func(error)) docstore.CancelFunc {
	s.mu.Lock()
	var initial any
	if doc, ok := s.collection(name).docs[id]; ok {
		initial = &docstore.Record{ID: id, Doc: doc.Copy()}
	} else {
		initial = (*docstore.Record)(nil)
	}
	cancel := s.hub.Subscribe(docTopic(name, id), initial, func(data any) {
		onSnapshot(data.(*docstore.Record))
	}, onError)
	s.mu.Unlock()
	return cancel
}

// Close cancela todas las suscripciones.
func (s *Store) Close() {
	s.hub.Close()
}

// collection devuelve la colección, creándola si no existe. Se llama con s.mu
// tomado.
func (s *Store) collection(name string) *collection {
	col, ok := s.collections[name]
	if !ok {
		col = &collection{docs: make(map[string]docstore.Document)}
		s.collections[name] = col
	}
	return col
}

func (s *Store) snapshot(col *collection) []docstore.Record {
	out := make([]docstore.Record, 0, len(col.order))
	for _, id := range col.order {
		out = append(out, docstore.Record{ID: id, Doc: col.docs[id].Copy()})
	}
	return out
}

func (s *Store) notify(name string, col *collection) {
	s.hub.Publish(name, s.snapshot(col))
}

func (s *Store) notifyDoc(name, id string, col *collection) {
	doc, ok := col.docs[id]
	if !ok {
		s.hub.Publish(docTopic(name, id), (*docstore.Record)(nil))
		return
	}
	s.hub.Publish(docTopic(name, id), &docstore.Record{ID: id, Doc: doc.Copy()})
}

func docTopic(name, id string) string {
	return name + "/" + id
}
