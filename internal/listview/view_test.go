package listview

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-pos-api/internal/docstore/memory"
	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
	"github.com/jhoicas/retail-pos-api/internal/service"
)

func leadOptions() Options[entity.Lead] {
	return Options[entity.Lead]{
		ID:         func(l entity.Lead) string { return l.ID },
		Searchable: []func(entity.Lead) string{func(l entity.Lead) string { return l.Name }},
		Sorters: map[string]func(a, b entity.Lead) int{
			"name": func(a, b entity.Lead) int {
				switch {
				case a.Name < b.Name:
					return -1
				case a.Name > b.Name:
					return 1
				default:
					return 0
				}
			},
		},
	}
}

func waitForStatus[T any](t *testing.T, v *View[T], want Status) Result[T] {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		status, result := v.Snapshot()
		if status == want {
			return result
		}
		time.Sleep(5 * time.Millisecond)
	}
	status, _ := v.Snapshot()
	t.Fatalf("la vista no llegó al estado %d (quedó en %d)", want, status)
	panic("unreachable")
}

// ── Ciclo de vida de la vista ────────────────────────────────────────────────

func TestView_LoadingHastaLaPrimeraEmision(t *testing.T) {
	v := NewView(leadOptions(), Params{})
	status, _ := v.Snapshot()
	assert.Equal(t, StatusLoading, status)
}

func TestView_EmptyConColeccionVacia(t *testing.T) {
	store := memory.New()
	defer store.Close()
	leads := service.NewLeads(store)

	v := NewView(leadOptions(), Params{})
	v.Start(leads.SubscribeAll)
	defer v.Teardown()

	waitForStatus(t, v, StatusEmpty)
}

func TestView_EmisionReemplazaPorCompleto(t *testing.T) {
	store := memory.New()
	defer store.Close()
	leads := service.NewLeads(store)

	id, err := leads.Create(context.Background(), entity.Lead{Name: "Ana"})
	require.NoError(t, err)

	v := NewView(leadOptions(), Params{})
	v.Start(leads.SubscribeAll)
	defer v.Teardown()

	result := waitForStatus(t, v, StatusReady)
	require.Len(t, result.Items, 1)

	// Reemplazo total: un campo que dejó de existir no sobrevive.
	require.NoError(t, leads.Update(context.Background(), id, entity.Lead{Name: "Ana María"}))
	deadline := time.Now().Add(2 * time.Second)
	for {
		_, result = v.Snapshot()
		if len(result.Items) == 1 && result.Items[0].Name == "Ana María" {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("la vista no reflejó la actualización: %+v", result.Items)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestView_ReadyYEmptyAlternan(t *testing.T) {
	store := memory.New()
	defer store.Close()
	leads := service.NewLeads(store)

	id, err := leads.Create(context.Background(), entity.Lead{Name: "Ana"})
	require.NoError(t, err)

	v := NewView(leadOptions(), Params{})
	v.Start(leads.SubscribeAll)
	defer v.Teardown()

	waitForStatus(t, v, StatusReady)
	require.NoError(t, leads.Delete(context.Background(), id))
	waitForStatus(t, v, StatusEmpty)
}

func TestView_EmptyConBusquedaSinCoincidencias(t *testing.T) {
	store := memory.New()
	defer store.Close()
	leads := service.NewLeads(store)
	for _, n := range []string{"Ana", "Beto"} {
		_, err := leads.Create(context.Background(), entity.Lead{Name: n})
		require.NoError(t, err)
	}

	v := NewView(leadOptions(), Params{})
	v.Start(leads.SubscribeAll)
	defer v.Teardown()
	waitForStatus(t, v, StatusReady)

	// Colección poblada pero el filtro no deja nada: la pantalla está vacía.
	v.SetSearch("zzz")
	status, result := v.Snapshot()
	assert.Equal(t, StatusEmpty, status)
	assert.Equal(t, 0, result.Total)

	v.SetSearch("")
	status, _ = v.Snapshot()
	assert.Equal(t, StatusReady, status)
}

func TestView_TeardownCancelaLaSuscripcion(t *testing.T) {
	store := memory.New()
	defer store.Close()
	leads := service.NewLeads(store)

	v := NewView(leadOptions(), Params{})
	v.Start(leads.SubscribeAll)
	waitForStatus(t, v, StatusEmpty)
	v.Teardown()

	// Tras el teardown la vista ya no observa cambios.
	_, err := leads.Create(context.Background(), entity.Lead{Name: "Tardío"})
	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
	status, result := v.Snapshot()
	assert.Equal(t, StatusEmpty, status)
	assert.Empty(t, result.Items)
}

// ── Parámetros y marcas de borrado ───────────────────────────────────────────

func TestView_SetSearchRegresaAPrimeraPagina(t *testing.T) {
	store := memory.New()
	defer store.Close()
	leads := service.NewLeads(store)
	for _, n := range []string{"Ana", "Beto", "Carla", "Ana Luisa"} {
		_, err := leads.Create(context.Background(), entity.Lead{Name: n})
		require.NoError(t, err)
	}

	v := NewView(leadOptions(), Params{Page: 2, PageSize: 2})
	v.Start(leads.SubscribeAll)
	defer v.Teardown()
	waitForStatus(t, v, StatusReady)

	v.SetSearch("ana")
	_, result := v.Snapshot()
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 2, result.Total)
}

func TestView_MarcasDeBorrado(t *testing.T) {
	v := NewView(leadOptions(), Params{})
	assert.False(t, v.IsDeleting("x"))
	v.MarkDeleting("x")
	assert.True(t, v.IsDeleting("x"))
	v.ClearDeleting("x")
	assert.False(t, v.IsDeleting("x"))
}
