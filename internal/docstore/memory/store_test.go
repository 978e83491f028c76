package memory_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-pos-api/internal/docstore"
	"github.com/jhoicas/retail-pos-api/internal/docstore/memory"
	"github.com/jhoicas/retail-pos-api/internal/domain"
)

const waitFor = 2 * time.Second

// collectSnapshots suscribe y devuelve un canal con cada emisión.
func collectSnapshots(t *testing.T, s *memory.Store, col string) (<-chan []docstore.Record, docstore.CancelFunc) {
	t.Helper()
	ch := make(chan []docstore.Record, 32)
	cancel := s.SubscribeCollection(col, func(recs []docstore.Record) {
		ch <- recs
	}, func(err error) {
		t.Errorf("error inesperado de suscripción: %v", err)
	})
	return ch, cancel
}

func nextSnapshot(t *testing.T, ch <-chan []docstore.Record) []docstore.Record {
	t.Helper()
	select {
	case recs := <-ch:
		return recs
	case <-time.After(waitFor):
		t.Fatal("no llegó ninguna emisión")
		return nil
	}
}

func TestAdd_AsignaIDYEmiteSnapshotCompleto(t *testing.T) {
	s := memory.New()
	defer s.Close()
	ctx := context.Background()

	ch, cancel := collectSnapshots(t, s, "products")
	defer cancel()

	// Primera emisión: la colección vacía vigente al suscribirse.
	require.Len(t, nextSnapshot(t, ch), 0)

	id, err := s.Add(ctx, "products", docstore.Document{"name": "Teclado", "sku": "TEC-1"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	recs := nextSnapshot(t, ch)
	require.Len(t, recs, 1)
	assert.Equal(t, id, recs[0].ID)
	assert.Equal(t, "Teclado", recs[0].Doc["name"])
	assert.Equal(t, "TEC-1", recs[0].Doc["sku"])
}

func TestDelete_EmisionSinElBorradoConservaOrden(t *testing.T) {
	s := memory.New()
	defer s.Close()
	ctx := context.Background()

	a, _ := s.Add(ctx, "brands", docstore.Document{"name": "A"})
	b, _ := s.Add(ctx, "brands", docstore.Document{"name": "B"})
	c, _ := s.Add(ctx, "brands", docstore.Document{"name": "C"})

	ch, cancel := collectSnapshots(t, s, "brands")
	defer cancel()
	require.Len(t, nextSnapshot(t, ch), 3)

	require.NoError(t, s.Delete(ctx, "brands", b))

	recs := nextSnapshot(t, ch)
	require.Len(t, recs, 2)
	// Orden relativo original: [A, C].
	assert.Equal(t, a, recs[0].ID)
	assert.Equal(t, c, recs[1].ID)
}

func TestUpdate_IDInexistenteFallaSinUpsert(t *testing.T) {
	s := memory.New()
	defer s.Close()
	ctx := context.Background()

	err := s.Update(ctx, "units", "no-existe", docstore.Document{"name": "Kg"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.Get(ctx, "units", "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_IDInexistenteEsNoOp(t *testing.T) {
	s := memory.New()
	defer s.Close()
	assert.NoError(t, s.Delete(context.Background(), "units", "no-existe"))
}

func TestSubscribeDocument_EmiteNilAlBorrar(t *testing.T) {
	s := memory.New()
	defer s.Close()
	ctx := context.Background()

	id, _ := s.Add(ctx, "expenses", docstore.Document{"note": "taxi"})

	ch := make(chan *docstore.Record, 8)
	cancel := s.SubscribeDocument("expenses", id, func(r *docstore.Record) {
		ch <- r
	}, nil)
	defer cancel()

	select {
	case r := <-ch:
		require.NotNil(t, r)
		assert.Equal(t, "taxi", r.Doc["note"])
	case <-time.After(waitFor):
		t.Fatal("no llegó la emisión inicial")
	}

	require.NoError(t, s.Delete(ctx, "expenses", id))

	select {
	case r := <-ch:
		assert.Nil(t, r)
	case <-time.After(waitFor):
		t.Fatal("no llegó la emisión del borrado")
	}
}

func TestCancel_NoEjecutaCallbacksTrasTeardown(t *testing.T) {
	s := memory.New()
	defer s.Close()
	ctx := context.Background()

	var calls atomic.Int64
	cancel := s.SubscribeCollection("sales", func([]docstore.Record) {
		calls.Add(1)
	}, nil)

	// Dejar pasar la emisión inicial antes de cancelar.
	require.Eventually(t, func() bool { return calls.Load() == 1 }, waitFor, 5*time.Millisecond)

	cancel()
	before := calls.Load()

	_, err := s.Add(ctx, "sales", docstore.Document{"referenceNo": "S-1"})
	require.NoError(t, err)

	// Ninguna escritura posterior debe invocar el callback cancelado.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, before, calls.Load())
}

func TestUpdate_LaEmisionReemplazaPorCompleto(t *testing.T) {
	s := memory.New()
	defer s.Close()
	ctx := context.Background()

	id, _ := s.Add(ctx, "customers", docstore.Document{"firstName": "Ana", "city": "Cali"})

	ch, cancel := collectSnapshots(t, s, "customers")
	defer cancel()
	nextSnapshot(t, ch)

	// El update reemplaza el cuerpo entero: el campo city no sobrevive.
	require.NoError(t, s.Update(ctx, "customers", id, docstore.Document{"firstName": "Ana María"}))

	recs := nextSnapshot(t, ch)
	require.Len(t, recs, 1)
	assert.Equal(t, "Ana María", recs[0].Doc["firstName"])
	_, stale := recs[0].Doc["city"]
	assert.False(t, stale, "un snapshot nuevo no debe conservar campos del anterior")
}

func TestGet_DevuelveCopia(t *testing.T) {
	s := memory.New()
	defer s.Close()
	ctx := context.Background()

	id, _ := s.Add(ctx, "taxes", docstore.Document{"name": "IVA"})
	doc, err := s.Get(ctx, "taxes", id)
	require.NoError(t, err)

	// Mutar la copia no debe afectar al almacén.
	doc["name"] = "mutado"
	again, err := s.Get(ctx, "taxes", id)
	require.NoError(t, err)
	assert.Equal(t, "IVA", again["name"])
}
