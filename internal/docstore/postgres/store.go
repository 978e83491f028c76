// Package postgres implementa el puerto docstore.Store sobre PostgreSQL:
// una tabla jsonb por todo el almacén y LISTEN/NOTIFY como primitiva push.
// Las suscripciones reciben la lista completa re-consultada tras cada
// notificación, igual que el backend gestionado al que reemplaza.
package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/retail-pos-api/internal/docstore"
	"github.com/jhoicas/retail-pos-api/internal/domain"
	"github.com/jhoicas/retail-pos-api/pkg/config"
	"github.com/jhoicas/retail-pos-api/pkg/logger"
)

const notifyChannel = "docstore_changes"

// Store almacén de documentos sobre PostgreSQL.
type Store struct {
	pool   *pgxpool.Pool
	hub    *docstore.Broadcaster
	log    *logger.Logger
	cancel context.CancelFunc
}

var _ docstore.Store = (*Store)(nil)

// New crea el pool, asegura el esquema y arranca el listener de
// notificaciones. El pool registra el codec NUMERIC -> shopspring/decimal en
// todas las conexiones (lo usan las agregaciones de analítica).
func New(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Store, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	poolConfig.MaxConns = 25
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	if err := ensureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	listenCtx, cancel := context.WithCancel(context.Background())
	s := &Store{
		pool:   pool,
		hub:    docstore.NewBroadcaster(),
		log:    log,
		cancel: cancel,
	}
	go s.listen(listenCtx)
	return s, nil
}

func ensureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS documents (
			id         uuid PRIMARY KEY,
			collection text NOT NULL,
			position   bigint GENERATED ALWAYS AS IDENTITY,
			body       jsonb NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now(),
			updated_at timestamptz NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS documents_collection_idx ON documents (collection, position);`
	if _, err := pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}

// Add inserta un documento con id generado y notifica el cambio.
func (s *Store) Add(ctx context.Context, collection string, doc docstore.Document) (string, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("serializar documento: %w", err)
	}
	id := uuid.New().String()
	_, err = s.pool.Exec(ctx,
		`INSERT INTO documents (id, collection, body) VALUES ($1, $2, $3)`,
		id, collection, body,
	)
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", collection, err)
	}
	s.announce(ctx, collection, id)
	return id, nil
}

// Update reemplaza el cuerpo completo. Id inexistente -> domain.ErrNotFound.
func (s *Store) Update(ctx context.Context, collection, id string, doc docstore.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("serializar documento: %w", err)
	}
	cmd, err := s.pool.Exec(ctx,
		`UPDATE documents SET body = $3, updated_at = now() WHERE collection = $1 AND id = $2`,
		collection, id, body,
	)
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	s.announce(ctx, collection, id)
	return nil
}

// Delete elimina el documento; id inexistente es no-op.
func (s *Store) Delete(ctx context.Context, collection, id string) error {
	cmd, err := s.pool.Exec(ctx,
		`DELETE FROM documents WHERE collection = $1 AND id = $2`,
		collection, id,
	)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	if cmd.RowsAffected() > 0 {
		s.announce(ctx, collection, id)
	}
	return nil
}

// Get devuelve el documento o domain.ErrNotFound.
func (s *Store) Get(ctx context.Context, collection, id string) (docstore.Document, error) {
	var body []byte
	err := s.pool.QueryRow(ctx,
		`SELECT body FROM documents WHERE collection = $1 AND id = $2`,
		collection, id,
	).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return decodeBody(body)
}

// SubscribeCollection abre la suscripción y publica un snapshot fresco en
// cuanto la consulta inicial responde. Los demás suscriptores del mismo
// tópico reciben ese snapshot extra; es idéntico al vigente, así que el
// reemplazo total lo absorbe.
func (s *Store) SubscribeCollection(collection string, onSnapshot func([]docstore.Record), onError func(error)) docstore.CancelFunc {
	cancel := s.hub.Subscribe(collection, nil, func(data any) {
		onSnapshot(data.([]docstore.Record))
	}, onError)
	go s.republishCollection(context.Background(), collection)
	return cancel
}

// SubscribeDocument ídem para un solo documento; emite nil si no existe.
func (s *Store) SubscribeDocument(collection, id string, onSnapshot func(*docstore.Record), onError func(error)) docstore.CancelFunc {
	topic := collection + "/" + id
	cancel := s.hub.Subscribe(topic, nil, func(data any) {
		onSnapshot(data.(*docstore.Record))
	}, onError)
	go s.republishDocument(context.Background(), collection, id)
	return cancel
}

// Close detiene el listener y cierra pool y suscripciones.
func (s *Store) Close() {
	s.cancel()
	s.hub.Close()
	s.pool.Close()
}

// announce notifica el cambio vía pg_notify para que todos los procesos (este
// incluido) re-consulten. El payload es "colección:id".
func (s *Store) announce(ctx context.Context, collection, id string) {
	if _, err := s.pool.Exec(ctx, `SELECT pg_notify($1, $2)`, notifyChannel, collection+":"+id); err != nil {
		s.log.Warn().Err(err).Str("collection", collection).Msg("pg_notify falló; los suscriptores remotos no verán este cambio")
	}
}

func (s *Store) snapshot(ctx context.Context, collection string) ([]docstore.Record, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, body FROM documents WHERE collection = $1 ORDER BY position`,
		collection,
	)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", collection, err)
	}
	defer rows.Close()

	out := make([]docstore.Record, 0, 16)
	for rows.Next() {
		var id string
		var body []byte
		if err := rows.Scan(&id, &body); err != nil {
			return nil, fmt.Errorf("scan %s: %w", collection, err)
		}
		doc, err := decodeBody(body)
		if err != nil {
			return nil, err
		}
		out = append(out, docstore.Record{ID: id, Doc: doc})
	}
	return out, rows.Err()
}

func (s *Store) republishCollection(ctx context.Context, collection string) {
	recs, err := s.snapshot(ctx, collection)
	if err != nil {
		s.hub.PublishError(collection, err)
		return
	}
	s.hub.Publish(collection, recs)
}

func (s *Store) republishDocument(ctx context.Context, collection, id string) {
	topic := collection + "/" + id
	doc, err := s.Get(ctx, collection, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.hub.Publish(topic, (*docstore.Record)(nil))
			return
		}
		s.hub.PublishError(topic, err)
		return
	}
	s.hub.Publish(topic, &docstore.Record{ID: id, Doc: doc})
}

// decodeBody deserializa jsonb preservando los números como json.Number para
// no perder precisión monetaria en float64.
func decodeBody(body []byte) (docstore.Document, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("deserializar documento: %w", err)
	}
	return docstore.Document(doc), nil
}
