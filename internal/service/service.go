// Package service implementa los servicios de entidad: uno por colección,
// envolviendo el puerto del almacén con un codec tipado. El servicio no
// valida reglas de negocio (eso es del caso de uso); decodifica en la
// frontera y falla ruidosamente si un documento no tiene la forma esperada.
package service

import (
	"context"
	"fmt"

	"github.com/jhoicas/retail-pos-api/internal/docstore"
)

// Codec liga una colección con su entidad tipada.
type Codec[T any] struct {
	Collection string
	Decode     func(id string, doc docstore.Document) (T, error)
	Encode     func(T) docstore.Document
}

// Service servicio CRUD + suscripción en vivo sobre una colección.
type Service[T any] struct {
	store docstore.Store
	codec Codec[T]
}

// New construye el servicio.
func New[T any](store docstore.Store, codec Codec[T]) *Service[T] {
	return &Service[T]{store: store, codec: codec}
}

// Collection devuelve el nombre de la colección envuelta.
func (s *Service[T]) Collection() string { return s.codec.Collection }

// Create agrega el registro y devuelve el id asignado por el almacén.
func (s *Service[T]) Create(ctx context.Context, v T) (string, error) {
	id, err := s.store.Add(ctx, s.codec.Collection, s.codec.Encode(v))
	if err != nil {
		return "", fmt.Errorf("create %s: %w", s.codec.Collection, err)
	}
	return id, nil
}

// Update reemplaza el registro identificado. El id viaja explícito: es
// inmutable y nunca se toma del cuerpo.
func (s *Service[T]) Update(ctx context.Context, id string, v T) error {
	if err := s.store.Update(ctx, s.codec.Collection, id, s.codec.Encode(v)); err != nil {
		return fmt.Errorf("update %s/%s: %w", s.codec.Collection, id, err)
	}
	return nil
}

// Delete elimina el registro de forma permanente (sin soft-delete).
func (s *Service[T]) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, s.codec.Collection, id); err != nil {
		return fmt.Errorf("delete %s/%s: %w", s.codec.Collection, id, err)
	}
	return nil
}

// Get obtiene y decodifica un registro.
func (s *Service[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	doc, err := s.store.Get(ctx, s.codec.Collection, id)
	if err != nil {
		return zero, err
	}
	return s.codec.Decode(id, doc)
}

// SubscribeAll abre la suscripción en vivo a la colección completa. Cada
// emisión reemplaza por completo la anterior. Un documento indecodificable se
// reporta por onError y la emisión se descarta (no se renderizan ceros).
func (s *Service[T]) SubscribeAll(onData func([]T), onError func(error)) docstore.CancelFunc {
	return s.store.SubscribeCollection(s.codec.Collection, func(recs []docstore.Record) {
		items, err := s.decodeAll(recs)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		onData(items)
	}, onError)
}

// SubscribeByID ídem para un registro; onData recibe nil si fue borrado.
func (s *Service[T]) SubscribeByID(id string, onData func(*T), onError func(error)) docstore.CancelFunc {
	return s.store.SubscribeDocument(s.codec.Collection, id, func(rec *docstore.Record) {
		if rec == nil {
			onData(nil)
			return
		}
		item, err := s.codec.Decode(rec.ID, rec.Doc)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		onData(&item)
	}, onError)
}

// FetchAll devuelve la primera emisión de una suscripción efímera: la lista
// vigente completa. Es lo que usan los endpoints de listado y exportación,
// igual que hacía la exportación original (suscribir, tomar la primera
// emisión, cancelar).
func (s *Service[T]) FetchAll(ctx context.Context) ([]T, error) {
	type result struct {
		items []T
		err   error
	}
	ch := make(chan result, 1)
	cancel := s.SubscribeAll(func(items []T) {
		select {
		case ch <- result{items: items}:
		default:
		}
	}, func(err error) {
		select {
		case ch <- result{err: err}:
		default:
		}
	})
	defer cancel()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		return r.items, r.err
	}
}

func (s *Service[T]) decodeAll(recs []docstore.Record) ([]T, error) {
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		item, err := s.codec.Decode(rec.ID, rec.Doc)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
