package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Política de re-conexión del listener. El diseño original dejaba la pantalla
// obsoleta para siempre si se caía la suscripción; aquí se re-escucha con
// backoff exponencial acotado y se re-emite un snapshot fresco al recuperar.
const (
	listenBackoffMin = time.Second
	listenBackoffMax = 30 * time.Second
)

// reconnectBackoff es la espera entre re-intentos de LISTEN: exponencial
// acotada, y vuelve al mínimo cuando una sesión llegó a establecerse (una
// caída tras horas sanas no debe heredar la espera escalada de arranque).
type reconnectBackoff struct {
	cur time.Duration
}

func (b *reconnectBackoff) next() time.Duration {
	if b.cur == 0 {
		b.cur = listenBackoffMin
	}
	d := b.cur
	b.cur *= 2
	if b.cur > listenBackoffMax {
		b.cur = listenBackoffMax
	}
	return d
}

func (b *reconnectBackoff) reset() {
	b.cur = listenBackoffMin
}

// listen mantiene una conexión dedicada en LISTEN y reparte cada notificación
// a los tópicos con suscriptores. Corre hasta que se cancela el contexto.
func (s *Store) listen(ctx context.Context) {
	var backoff reconnectBackoff
	for {
		if ctx.Err() != nil {
			return
		}
		err := s.listenOnce(ctx, backoff.reset)
		if ctx.Err() != nil {
			return
		}
		wait := backoff.next()
		s.log.Warn().Err(err).Dur("retry_in", wait).Msg("listener de notificaciones caído; re-conectando")
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
	}
}

// established se invoca cuando el LISTEN quedó en pie, antes de bloquear a la
// espera de notificaciones.
func (s *Store) listenOnce(ctx context.Context, established func()) error {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire listener: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+notifyChannel); err != nil {
		return fmt.Errorf("LISTEN: %w", err)
	}
	established()

	// Tras (re)escuchar, re-emitir snapshots de todos los tópicos activos:
	// los cambios ocurridos durante la caída nunca llegarán como NOTIFY.
	s.republishActive(ctx)

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("esperar notificación: %w", err)
		}
		collection, id, _ := strings.Cut(n.Payload, ":")
		s.dispatch(ctx, collection, id)
	}
}

// dispatch re-consulta y publica solo los tópicos que tienen suscriptores.
func (s *Store) dispatch(ctx context.Context, collection, id string) {
	for _, topic := range s.hub.ActiveTopics() {
		if topic == collection {
			s.republishCollection(ctx, collection)
		} else if id != "" && topic == collection+"/"+id {
			s.republishDocument(ctx, collection, id)
		}
	}
}

func (s *Store) republishActive(ctx context.Context) {
	for _, topic := range s.hub.ActiveTopics() {
		if collection, id, isDoc := strings.Cut(topic, "/"); isDoc {
			s.republishDocument(ctx, collection, id)
		} else {
			s.republishCollection(ctx, topic)
		}
	}
}
