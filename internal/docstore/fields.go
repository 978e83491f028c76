package docstore

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Fields es el lector de campos que usan los codecs de los servicios para
// decodificar un Document en una entidad tipada. Acumula el primer error de
// decodificación: un campo requerido ausente o con tipo incompatible produce
// un *DecodeError en Err() en vez de un cero silencioso.
type Fields struct {
	collection string
	id         string
	doc        Document
	err        error
}

// NewFields crea un lector sobre el documento dado.
func NewFields(collection, id string, doc Document) *Fields {
	return &Fields{collection: collection, id: id, doc: doc}
}

// Err devuelve el primer error de decodificación, o nil.
func (f *Fields) Err() error { return f.err }

// Adopt conserva el error de un lector hijo (sub-documentos como líneas de
// detalle), respetando la política de primer-error-gana.
func (f *Fields) Adopt(err error) {
	if f.err == nil && err != nil {
		f.err = err
	}
}

func (f *Fields) fail(field, reason string) {
	if f.err == nil {
		f.err = &DecodeError{Collection: f.collection, ID: f.id, Field: field, Reason: reason}
	}
}

// String devuelve el campo como string; "" si está ausente o es nil.
func (f *Fields) String(key string) string {
	v, ok := f.doc[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		f.fail(key, "se esperaba string")
		return ""
	}
	return s
}

// RequiredString exige un string no vacío.
func (f *Fields) RequiredString(key string) string {
	s := f.String(key)
	if s == "" && f.err == nil {
		f.fail(key, "campo requerido ausente")
	}
	return s
}

// Bool devuelve el campo como bool; false si está ausente.
func (f *Fields) Bool(key string) bool {
	v, ok := f.doc[key]
	if !ok || v == nil {
		return false
	}
	b, ok := v.(bool)
	if !ok {
		f.fail(key, "se esperaba bool")
		return false
	}
	return b
}

// Int devuelve el campo como int; 0 si está ausente.
func (f *Fields) Int(key string) int {
	v, ok := f.doc[key]
	if !ok || v == nil {
		return 0
	}
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case float64:
		return int(t)
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			f.fail(key, "número entero inválido")
			return 0
		}
		return int(n)
	default:
		f.fail(key, "se esperaba número entero")
		return 0
	}
}

// Decimal devuelve el campo como decimal; Zero si está ausente. Acepta
// json.Number (jsonb decodificado con UseNumber), float64 y string.
func (f *Fields) Decimal(key string) decimal.Decimal {
	v, ok := f.doc[key]
	if !ok || v == nil {
		return decimal.Zero
	}
	switch t := v.(type) {
	case decimal.Decimal:
		return t
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			f.fail(key, "número inválido")
			return decimal.Zero
		}
		return d
	case float64:
		return decimal.NewFromFloat(t)
	case int:
		return decimal.NewFromInt(int64(t))
	case int64:
		return decimal.NewFromInt(t)
	case string:
		if t == "" {
			return decimal.Zero
		}
		d, err := decimal.NewFromString(t)
		if err != nil {
			f.fail(key, "número inválido")
			return decimal.Zero
		}
		return d
	default:
		f.fail(key, "se esperaba número")
		return decimal.Zero
	}
}

// Time devuelve el campo como time.Time (RFC 3339); cero si está ausente.
func (f *Fields) Time(key string) time.Time {
	v, ok := f.doc[key]
	if !ok || v == nil {
		return time.Time{}
	}
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if t == "" {
			return time.Time{}
		}
		// RFC3339Nano acepta también timestamps sin fracción de segundo.
		ts, err := time.Parse(time.RFC3339Nano, t)
		if err != nil {
			f.fail(key, "fecha inválida (se esperaba RFC 3339)")
			return time.Time{}
		}
		return ts
	default:
		f.fail(key, "se esperaba fecha")
		return time.Time{}
	}
}

// Documents devuelve el campo como lista de sub-documentos (líneas de
// detalle); vacía si está ausente.
func (f *Fields) Documents(key string) []Document {
	v, ok := f.doc[key]
	if !ok || v == nil {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		f.fail(key, "se esperaba lista")
		return nil
	}
	out := make([]Document, 0, len(list))
	for _, e := range list {
		switch t := e.(type) {
		case Document:
			out = append(out, t)
		case map[string]any:
			out = append(out, Document(t))
		default:
			f.fail(key, "elemento de lista no es objeto")
			return nil
		}
	}
	return out
}

// PermissionTree devuelve el campo como árbol módulo -> acción -> bool
// (matriz de permisos de roles); vacío si está ausente.
func (f *Fields) PermissionTree(key string) map[string]map[string]bool {
	v, ok := f.doc[key]
	if !ok || v == nil {
		return nil
	}
	raw, ok := v.(map[string]any)
	if !ok {
		if d, isDoc := v.(Document); isDoc {
			raw = map[string]any(d)
		} else {
			f.fail(key, "se esperaba objeto")
			return nil
		}
	}
	out := make(map[string]map[string]bool, len(raw))
	for module, actions := range raw {
		actionsMap, ok := actions.(map[string]any)
		if !ok {
			if d, isDoc := actions.(Document); isDoc {
				actionsMap = map[string]any(d)
			} else {
				f.fail(key, "módulo "+module+" no es objeto")
				return nil
			}
		}
		flags := make(map[string]bool, len(actionsMap))
		for action, val := range actionsMap {
			b, ok := val.(bool)
			if !ok {
				f.fail(key, "acción "+module+"."+action+" no es bool")
				return nil
			}
			flags[action] = b
		}
		out[module] = flags
	}
	return out
}

// ── Helpers de codificación ───────────────────────────────────────────────────

// Num codifica un decimal como json.Number para que jsonb lo preserve sin
// pasar por float64.
func Num(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// TS codifica un time.Time como string RFC 3339 con nanosegundos, para que
// el viaje de ida y vuelta por el almacén no trunque la marca; "" para el cero.
func TS(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}
