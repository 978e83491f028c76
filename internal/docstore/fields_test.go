package docstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Fechas ───────────────────────────────────────────────────────────────────

func TestTS_ConservaNanosegundos(t *testing.T) {
	original := time.Date(2026, 8, 28, 10, 30, 0, 123456789, time.UTC)

	f := NewFields("products", "p1", Document{"created_at": TS(original)})
	decoded := f.Time("created_at")
	require.NoError(t, f.Err())
	assert.True(t, decoded.Equal(original), "el viaje por el documento no debe truncar la marca")
}

func TestTime_AceptaSinFraccionDeSegundo(t *testing.T) {
	f := NewFields("products", "p1", Document{"created_at": "2026-08-28T10:30:00Z"})
	decoded := f.Time("created_at")
	require.NoError(t, f.Err())
	assert.Equal(t, 2026, decoded.Year())
}

func TestTS_CeroCodificaVacio(t *testing.T) {
	assert.Equal(t, "", TS(time.Time{}))

	f := NewFields("products", "p1", Document{"created_at": ""})
	assert.True(t, f.Time("created_at").IsZero())
	assert.NoError(t, f.Err())
}

func TestTime_InvalidaProduceDecodeError(t *testing.T) {
	f := NewFields("products", "p1", Document{"created_at": "ayer"})
	f.Time("created_at")
	var derr *DecodeError
	require.ErrorAs(t, f.Err(), &derr)
	assert.Equal(t, "created_at", derr.Field)
}
