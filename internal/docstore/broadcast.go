package docstore

import (
	"sync"
	"sync/atomic"
)

// Broadcaster reparte emisiones por tópico (una colección o un documento) a
// sus suscriptores. Cada suscriptor recibe en su propia goroutine, con cola
// propia, de modo que un callback lento nunca bloquea al escritor ni al resto
// de suscriptores, y las emisiones de un mismo tópico llegan en orden.
//
// El conjunto de suscriptores de un tópico se crea con el primer Subscribe y
// se destruye cuando cancela el último: no quedan escuchas vivas de pantallas
// que ya nadie visita.
type Broadcaster struct {
	mu     sync.Mutex
	topics map[string]map[int64]*subscriber
	nextID int64
	closed bool
}

type event struct {
	data any
	err  error
}

type subscriber struct {
	queueMu sync.Mutex
	cond    *sync.Cond
	queue   []event

	// cbMu serializa los callbacks con la cancelación: tras retornar
	// CancelFunc no vuelve a ejecutarse ningún callback.
	cbMu    sync.Mutex
	stopped atomic.Bool

	onData  func(any)
	onError func(error)
}

// NewBroadcaster crea un broadcaster vacío.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{topics: make(map[string]map[int64]*subscriber)}
}

// Subscribe registra un suscriptor en el tópico. Si initial no es nil se
// entrega como primera emisión, antes de cualquier publicación posterior.
// La CancelFunc es idempotente y síncrona: al retornar no corre ningún
// callback más.
func (b *Broadcaster) Subscribe(topic string, initial any, onData func(any), onError func(error)) CancelFunc {
	s := &subscriber{onData: onData, onError: onError}
	s.cond = sync.NewCond(&s.queueMu)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return func() {}
	}
	b.nextID++
	id := b.nextID
	subs, ok := b.topics[topic]
	if !ok {
		subs = make(map[int64]*subscriber)
		b.topics[topic] = subs
	}
	subs[id] = s
	if initial != nil {
		s.push(event{data: initial})
	}
	b.mu.Unlock()

	go s.deliver()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			if subs, ok := b.topics[topic]; ok {
				delete(subs, id)
				if len(subs) == 0 {
					delete(b.topics, topic)
				}
			}
			b.mu.Unlock()
			s.stop()
		})
	}
}

// Publish emite data a todos los suscriptores del tópico.
func (b *Broadcaster) Publish(topic string, data any) {
	b.mu.Lock()
	for _, s := range b.topics[topic] {
		s.push(event{data: data})
	}
	b.mu.Unlock()
}

// PublishError emite un error a todos los suscriptores del tópico. No cierra
// las suscripciones: el consumidor decide si mantiene su estado de error.
func (b *Broadcaster) PublishError(topic string, err error) {
	b.mu.Lock()
	for _, s := range b.topics[topic] {
		s.push(event{err: err})
	}
	b.mu.Unlock()
}

// ActiveTopics devuelve los tópicos que tienen al menos un suscriptor.
func (b *Broadcaster) ActiveTopics() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, 0, len(b.topics))
	for t := range b.topics {
		out = append(out, t)
	}
	return out
}

// Close cancela todos los suscriptores.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	b.closed = true
	all := b.topics
	b.topics = make(map[string]map[int64]*subscriber)
	b.mu.Unlock()
	for _, subs := range all {
		for _, s := range subs {
			s.stop()
		}
	}
}

func (s *subscriber) push(ev event) {
	s.queueMu.Lock()
	s.queue = append(s.queue, ev)
	s.queueMu.Unlock()
	s.cond.Signal()
}

func (s *subscriber) stop() {
	s.stopped.Store(true)
	// Esperar a que termine un callback en vuelo antes de retornar.
	s.cbMu.Lock()
	s.cbMu.Unlock() //nolint:staticcheck // solo sincroniza con el callback en vuelo
	s.cond.Signal()
}

func (s *subscriber) deliver() {
	for {
		s.queueMu.Lock()
		for len(s.queue) == 0 && !s.stopped.Load() {
			s.cond.Wait()
		}
		if s.stopped.Load() {
			s.queueMu.Unlock()
			return
		}
		ev := s.queue[0]
		s.queue = s.queue[1:]
		s.queueMu.Unlock()

		s.cbMu.Lock()
		if s.stopped.Load() {
			s.cbMu.Unlock()
			return
		}
		if ev.err != nil {
			if s.onError != nil {
				s.onError(ev.err)
			}
		} else if s.onData != nil {
			s.onData(ev.data)
		}
		s.cbMu.Unlock()
	}
}
