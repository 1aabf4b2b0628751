package stream

import (
	"net/http"
	"time"

	"bizportal/internal/adapter/http/dto/response"
	"bizportal/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait      = 5 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 512

	MessageTypeSnapshot = "snapshot"
)

// Message is the envelope of every frame pushed to a client.
type Message struct {
	Type string                    `json:"type"`
	Data response.SnapshotResponse `json:"data"`
}

// SnapshotStream pushes the lifecycle state to websocket clients: one frame
// on connect and one after every change. Clients only listen; anything they
// send is discarded.
type SnapshotStream struct {
	lifecycle usecase.ILifecycleUseCase
	runner    usecase.ILifecycleRunner
	upgrader  websocket.Upgrader
	ping      time.Duration
}

func NewSnapshotStream(lifecycle usecase.ILifecycleUseCase, runner usecase.ILifecycleRunner, allowedOrigins []string) *SnapshotStream {
	return &SnapshotStream{
		lifecycle: lifecycle,
		runner:    runner,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		ping: pingPeriod,
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if o == "*" || o == origin {
				return true
			}
		}
		return false
	}
}

// Serve upgrades the request and streams snapshots until the client goes
// away or its subscription is closed.
func (s *SnapshotStream) Serve(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("stream: websocket upgrade failed")
		return
	}
	clientID := uuid.NewString()
	logger := log.With().Str("client_id", clientID).Logger()
	logger.Info().Msg("stream: client connected")

	// Subscribe before reading the first snapshot so no change falls between them.
	updates, unsubscribe := s.runner.Subscribe()
	defer func() {
		unsubscribe()
		_ = conn.Close()
		logger.Info().Msg("stream: client disconnected")
	}()

	initial, err := s.lifecycle.Snapshot(c.Request.Context())
	if err != nil {
		logger.Error().Err(err).Msg("stream: failed to read initial snapshot")
		return
	}
	if err := writeSnapshot(conn, initial); err != nil {
		logger.Warn().Err(err).Msg("stream: failed to send initial snapshot")
		return
	}

	done := make(chan struct{})
	go readPump(conn, done)

	ticker := time.NewTicker(s.ping)
	defer ticker.Stop()

	for {
		select {
		case snap, ok := <-updates:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
				return
			}
			if err := writeSnapshot(conn, snap); err != nil {
				logger.Warn().Err(err).Msg("stream: write failed")
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func writeSnapshot(conn *websocket.Conn, snap usecase.Snapshot) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(Message{Type: MessageTypeSnapshot, Data: response.FromSnapshot(snap)})
}

// readPump keeps the read side alive so pongs and close frames are processed.
func readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
