// Package stream relays container change events to WebSocket clients.
//
// A Broadcaster watches any number of named containers and forwards every
// change event, JSON-encoded as a Frame, to all connected clients. It is a
// push-only feed: client messages are read and discarded to detect
// disconnects.
//
//	b := stream.NewBroadcaster()
//	defer b.Close()
//	stream.Watch[string](b, "tags", tagList)
//	http.ListenAndServe(":8080", b.Routes())
package stream

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vireo-dev/vireo/pkg/change"
)

const tracerName = "vireo/stream"

// BroadcasterConfig configures a Broadcaster.
type BroadcasterConfig struct {
	// Logger receives connection and delivery diagnostics.
	// Default: slog.Default().
	Logger *slog.Logger

	// CheckOrigin validates WebSocket upgrade origins.
	// Default: same-origin policy of gorilla/websocket.
	CheckOrigin func(r *http.Request) bool

	// Tracer records a span per broadcast. Default: the global tracer
	// provider's "vireo/stream" tracer.
	Tracer trace.Tracer
}

// BroadcasterOption configures a Broadcaster.
type BroadcasterOption func(*BroadcasterConfig)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) BroadcasterOption {
	return func(c *BroadcasterConfig) {
		c.Logger = logger
	}
}

// WithCheckOrigin sets the WebSocket origin check.
func WithCheckOrigin(fn func(r *http.Request) bool) BroadcasterOption {
	return func(c *BroadcasterConfig) {
		c.CheckOrigin = fn
	}
}

// WithTracer sets the tracer used for broadcast spans.
func WithTracer(tracer trace.Tracer) BroadcasterOption {
	return func(c *BroadcasterConfig) {
		c.Tracer = tracer
	}
}

// Broadcaster manages WebSocket connections and fans container change
// events out to them.
type Broadcaster struct {
	logger   *slog.Logger
	tracer   trace.Tracer
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*websocket.Conn]*client
	subs    []*change.Subscription
	closed  bool
}

// client wraps a connection with a write lock. Watched containers deliver
// notifications on whichever goroutine mutated them, so concurrent
// broadcasts must serialize their writes per connection.
type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (c *client) write(data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// NewBroadcaster creates a Broadcaster ready to accept connections.
func NewBroadcaster(opts ...BroadcasterOption) *Broadcaster {
	cfg := BroadcasterConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Tracer == nil {
		cfg.Tracer = otel.Tracer(tracerName)
	}

	return &Broadcaster{
		logger:  cfg.Logger,
		tracer:  cfg.Tracer,
		clients: make(map[*websocket.Conn]*client),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     cfg.CheckOrigin,
		},
	}
}

// Watch subscribes the broadcaster to src's change channel under the given
// container name. Cancel the returned subscription to stop relaying that
// container; Close cancels all watches.
func Watch[T any](b *Broadcaster, name string, src interface {
	OnCollectionChanged(fn func(change.Change[T])) *change.Subscription
}) *change.Subscription {
	sub := src.OnCollectionChanged(func(c change.Change[T]) {
		b.broadcast(encodeFrame(name, c))
	})

	b.mu.Lock()
	b.subs = append(b.subs, sub)
	b.mu.Unlock()
	return sub
}

// Routes returns the HTTP surface: GET /ws upgrades to the event feed,
// GET /healthz reports liveness.
func (b *Broadcaster) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/ws", b.handleWebSocket)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return r
}

// ClientCount returns the number of connected clients.
func (b *Broadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

// Close cancels all container watches and disconnects every client.
// It is idempotent.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true

	for _, sub := range b.subs {
		sub.Cancel()
	}
	b.subs = nil
	for conn := range b.clients {
		conn.Close()
		delete(b.clients, conn)
	}
}

func (b *Broadcaster) handleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := b.upgrader.Upgrade(w, req, nil)
	if err != nil {
		b.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		conn.Close()
		return
	}
	b.clients[conn] = &client{conn: conn}
	b.mu.Unlock()

	b.logger.Debug("client connected", "remote", conn.RemoteAddr())

	// Drain client messages until disconnect; the feed is push-only.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	b.mu.Lock()
	delete(b.clients, conn)
	b.mu.Unlock()
	conn.Close()

	b.logger.Debug("client disconnected", "remote", conn.RemoteAddr())
}

// broadcast delivers one frame to all connected clients. Clients whose
// writes fail are dropped.
func (b *Broadcaster) broadcast(frame Frame) {
	data, err := json.Marshal(frame)
	if err != nil {
		b.logger.Error("frame encode failed", "container", frame.Container, "error", err)
		return
	}

	b.mu.RLock()
	clients := make([]*client, 0, len(b.clients))
	for _, c := range b.clients {
		clients = append(clients, c)
	}
	b.mu.RUnlock()

	_, span := b.tracer.Start(context.Background(), "stream.broadcast",
		trace.WithAttributes(
			attribute.String("container", frame.Container),
			attribute.String("kind", frame.Kind),
			attribute.Int("clients", len(clients)),
		))
	defer span.End()

	for _, c := range clients {
		if err := c.write(data); err != nil {
			b.logger.Warn("client write failed, dropping", "remote", c.conn.RemoteAddr(), "error", err)
			b.mu.Lock()
			delete(b.clients, c.conn)
			b.mu.Unlock()
			c.conn.Close()
		}
	}
}
