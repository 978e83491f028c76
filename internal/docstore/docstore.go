// Package docstore define el puerto del almacén de documentos: colecciones
// sin esquema con CRUD y suscripciones en vivo que empujan la lista completa
// en cada cambio. Dos adaptadores lo implementan: memory (tests/desarrollo)
// y postgres (jsonb + LISTEN/NOTIFY).
package docstore

import (
	"context"
	"fmt"
)

// Document es el cuerpo sin esquema de un registro: campo -> escalar, objeto
// anidado o lista. La forma la imponen los codecs de cada servicio, no el
// almacén.
type Document map[string]any

// Record es un documento junto con su identificador asignado por el almacén.
// El ID es inmutable tras la creación.
type Record struct {
	ID  string
	Doc Document
}

// CancelFunc detiene una suscripción. Tras retornar, ningún callback de esa
// suscripción vuelve a ejecutarse. Llamarla más de una vez es inocuo.
type CancelFunc func()

// Store es el contrato que consume cada servicio de entidad.
//
// Semántica de las suscripciones: onSnapshot recibe siempre la lista completa
// vigente (nunca un diff), una vez al poco de abrir y de nuevo tras cada
// cambio en la colección. Es un modelo push: el consumidor nunca sondea. Las
// emisiones llegan en una goroutine propia del suscriptor, jamás en línea con
// el escritor, y el flujo es eventualmente consistente: un escritor no debe
// asumir que la siguiente emisión ya refleja su propia escritura.
//
// Update sobre un id inexistente devuelve domain.ErrNotFound (decisión
// explícita: nunca upsert). Delete sobre un id inexistente es un no-op.
type Store interface {
	Add(ctx context.Context, collection string, doc Document) (string, error)
	Update(ctx context.Context, collection, id string, doc Document) error
	Delete(ctx context.Context, collection, id string) error
	Get(ctx context.Context, collection, id string) (Document, error)

	// SubscribeCollection abre una suscripción a la colección completa.
	SubscribeCollection(collection string, onSnapshot func([]Record), onError func(error)) CancelFunc
	// SubscribeDocument abre una suscripción a un solo documento; emite nil
	// si el documento se borra mientras la suscripción está abierta.
	SubscribeDocument(collection, id string, onSnapshot func(*Record), onError func(error)) CancelFunc

	Close()
}

// DecodeError señala un documento cuyo contenido no tiene la forma que el
// servicio espera. Falla ruidosamente en la frontera del almacén en lugar de
// renderizar ceros en silencio.
type DecodeError struct {
	Collection string
	ID         string
	Field      string
	Reason     string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s/%s: campo %q: %s", e.Collection, e.ID, e.Field, e.Reason)
}

// Copy devuelve una copia profunda del documento. Los adaptadores copian en
// ambas direcciones para que ningún consumidor comparta estado mutable con el
// almacén.
func (d Document) Copy() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch t := v.(type) {
	case Document:
		return t.Copy()
	case map[string]any:
		return Document(t).Copy()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = copyValue(e)
		}
		return out
	default:
		return v
	}
}
