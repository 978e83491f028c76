package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReconnectBackoff_EscalaAcotado(t *testing.T) {
	var b reconnectBackoff
	assert.Equal(t, time.Second, b.next())
	assert.Equal(t, 2*time.Second, b.next())
	assert.Equal(t, 4*time.Second, b.next())

	// Nunca por encima del tope.
	for i := 0; i < 10; i++ {
		b.next()
	}
	assert.Equal(t, listenBackoffMax, b.next())
}

func TestReconnectBackoff_ResetTrasSesionEstablecida(t *testing.T) {
	var b reconnectBackoff
	for i := 0; i < 6; i++ {
		b.next()
	}

	// Una sesión que llegó a escucharse devuelve la espera al mínimo.
	b.reset()
	assert.Equal(t, listenBackoffMin, b.next())
	assert.Equal(t, 2*listenBackoffMin, b.next())
}
