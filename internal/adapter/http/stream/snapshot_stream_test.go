package stream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bizportal/internal/adapter/persistence/repository"
	"bizportal/internal/usecase"
	"bizportal/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// idleScheduler never fires, so only explicit commands change state.
type idleScheduler struct{}

var _ interfaces.IScheduler = idleScheduler{}

func (idleScheduler) After(time.Duration, func()) func() { return func() {} }

func (idleScheduler) Every(time.Duration, func()) (func(), error) { return func() {}, nil }

func newStreamServer(t *testing.T, origins []string) (*usecase.LifecycleUseCase, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	uc := usecase.NewLifecycleUseCase(
		repository.NewQuoteMemoryRepository(),
		repository.NewOrderMemoryRepository(),
		repository.NewInvoiceMemoryRepository(),
		idleScheduler{},
		usecase.DefaultLifecycleConfig(),
	)
	r := gin.New()
	r.GET("/v1/lifecycle/stream", NewSnapshotStream(uc, uc, origins).Serve)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return uc, "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/lifecycle/stream"
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestSnapshotStream(t *testing.T) {
	t.Run("sends initial snapshot then updates", func(t *testing.T) {
		uc, url := newStreamServer(t, []string{"*"})

		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		require.NoError(t, err)
		defer conn.Close()

		first := readMessage(t, conn)
		assert.Equal(t, MessageTypeSnapshot, first.Type)
		assert.Empty(t, first.Data.Quotes)

		q, err := uc.SubmitQuote(context.Background(), usecase.SubmitQuoteCommand{
			ProductID: "1", ProductTitle: "Cisco Meraki MX68", Quantity: 1, Amount: 430,
		})
		require.NoError(t, err)

		next := readMessage(t, conn)
		require.Len(t, next.Data.Quotes, 1)
		assert.Equal(t, q.ID, next.Data.Quotes[0].ID)
		assert.Equal(t, "In Review", next.Data.Quotes[0].Status)
	})

	t.Run("rejects foreign origins", func(t *testing.T) {
		_, url := newStreamServer(t, []string{"http://portal.example"})

		header := http.Header{}
		header.Set("Origin", "http://evil.example")
		_, resp, err := websocket.DefaultDialer.Dial(url, header)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("allows listed origin", func(t *testing.T) {
		_, url := newStreamServer(t, []string{"http://portal.example"})

		header := http.Header{}
		header.Set("Origin", "http://portal.example")
		conn, _, err := websocket.DefaultDialer.Dial(url, header)
		require.NoError(t, err)
		defer conn.Close()

		assert.Equal(t, MessageTypeSnapshot, readMessage(t, conn).Type)
	})
}
