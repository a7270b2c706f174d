package channel

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/chatline/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
)

const waitTimeout = 5 * time.Second

func newChannelServer(t *testing.T, handler func(t *testing.T, conn *websocket.Conn, r *http.Request)) string {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ws" {
			http.NotFound(w, r)
			return
		}
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer func() { _ = conn.CloseNow() }()

		handler(t, conn, r)
	}))
	t.Cleanup(server.Close)

	return "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
}

func waitDone(t *testing.T, h *Handle) {
	t.Helper()

	select {
	case <-h.Done():
	case <-time.After(waitTimeout):
		t.Fatal("handle did not close in time")
	}
}

func testDialer(url string, observer Observer) *Dialer {
	return NewDialer(Options{URL: url, Logger: zerolog.Nop(), Observer: observer})
}

func TestConnectAppendsTextFramesInArrivalOrder(t *testing.T) {
	t.Parallel()

	tokens := make(chan string, 1)
	url := newChannelServer(t, func(t *testing.T, conn *websocket.Conn, r *http.Request) {
		tokens <- r.URL.Query().Get("token")
		ctx := context.Background()
		for _, payload := range []string{"a", "b", "c"} {
			if err := conn.Write(ctx, websocket.MessageText, []byte(payload)); err != nil {
				return
			}
		}
		_ = conn.Close(websocket.StatusNormalClosure, "")
	})

	h, err := testDialer(url, Observer{}).Connect(context.Background(), "T1")
	require.NoError(t, err)
	assert.NotEmpty(t, h.ID())

	waitDone(t, h)
	assert.Equal(t, "T1", <-tokens)
	assert.Equal(t, []string{"a", "b", "c"}, h.Log().Snapshot())
	assert.Equal(t, domain.ChannelClosed, h.State())
	assert.NoError(t, h.Err())
}

func TestConnectReturnsBeforeHandshake(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		http.Error(w, "gone", http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(release) })

	h, err := testDialer("ws"+strings.TrimPrefix(server.URL, "http")+"/ws", Observer{}).Connect(context.Background(), "T1")
	require.NoError(t, err)
	assert.Equal(t, domain.ChannelConnecting, h.State())

	require.NoError(t, h.Close())
	assert.Equal(t, domain.ChannelClosed, h.State())
	assert.NoError(t, h.Err())
}

func TestConnectRejectsEmptyToken(t *testing.T) {
	t.Parallel()

	h, err := testDialer("ws://localhost:3000/ws", Observer{}).Connect(context.Background(), "")
	assert.Nil(t, h)
	assert.True(t, errors.Is(err, domain.ErrEmptyToken))
}

func TestBinaryFramesAreSkipped(t *testing.T) {
	t.Parallel()

	url := newChannelServer(t, func(t *testing.T, conn *websocket.Conn, r *http.Request) {
		ctx := context.Background()
		_ = conn.Write(ctx, websocket.MessageText, []byte("a"))
		_ = conn.Write(ctx, websocket.MessageBinary, []byte{0x01, 0x02})
		_ = conn.Write(ctx, websocket.MessageText, []byte("b"))
		_ = conn.Close(websocket.StatusNormalClosure, "")
	})

	h, err := testDialer(url, Observer{}).Connect(context.Background(), "T1")
	require.NoError(t, err)

	waitDone(t, h)
	assert.Equal(t, []string{"a", "b"}, h.Log().Snapshot())
}

func TestAbnormalClosureSurfacesChannelError(t *testing.T) {
	t.Parallel()

	url := newChannelServer(t, func(t *testing.T, conn *websocket.Conn, r *http.Request) {
		_ = conn.Write(context.Background(), websocket.MessageText, []byte("a"))
		_ = conn.Close(websocket.StatusInternalError, "boom")
	})

	var (
		mu     sync.Mutex
		errs   []error
		closed int
	)
	observer := Observer{
		OnError: func(h *Handle, err error) {
			mu.Lock()
			defer mu.Unlock()
			errs = append(errs, err)
		},
		OnClose: func(h *Handle) {
			mu.Lock()
			defer mu.Unlock()
			closed++
		},
	}

	h, err := testDialer(url, observer).Connect(context.Background(), "T1")
	require.NoError(t, err)
	waitDone(t, h)

	var channelErr *domain.ChannelError
	require.True(t, errors.As(h.Err(), &channelErr))
	assert.Equal(t, "read", channelErr.Op)
	assert.Equal(t, websocket.StatusInternalError, websocket.CloseStatus(channelErr))
	assert.Equal(t, domain.ChannelClosed, h.State())
	assert.Equal(t, []string{"a"}, h.Log().Snapshot())

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, errs, 1)
	assert.Equal(t, 1, closed)
}

func TestRejectedHandshakeSurfacesDialError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	h, err := testDialer("ws"+strings.TrimPrefix(server.URL, "http")+"/ws", Observer{}).Connect(context.Background(), "bad")
	require.NoError(t, err)
	waitDone(t, h)

	var channelErr *domain.ChannelError
	require.True(t, errors.As(h.Err(), &channelErr))
	assert.Equal(t, "dial", channelErr.Op)
	assert.Zero(t, h.Log().Len())
}

func TestCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	url := newChannelServer(t, func(t *testing.T, conn *websocket.Conn, r *http.Request) {
		_, _, _ = conn.Read(context.Background())
	})

	opened := make(chan struct{})
	h, err := testDialer(url, Observer{OnOpen: func(*Handle) { close(opened) }}).Connect(context.Background(), "T1")
	require.NoError(t, err)

	select {
	case <-opened:
	case <-time.After(waitTimeout):
		t.Fatal("handle did not open in time")
	}
	assert.Equal(t, domain.ChannelOpen, h.State())

	require.NoError(t, h.Close())
	require.NoError(t, h.Close())
	waitDone(t, h)
	assert.Equal(t, domain.ChannelClosed, h.State())
	assert.NoError(t, h.Err())
}

func TestHostingContextCancelClosesHandle(t *testing.T) {
	t.Parallel()

	url := newChannelServer(t, func(t *testing.T, conn *websocket.Conn, r *http.Request) {
		_, _, _ = conn.Read(context.Background())
	})

	ctx, cancel := context.WithCancel(context.Background())
	h, err := testDialer(url, Observer{}).Connect(ctx, "T1")
	require.NoError(t, err)

	cancel()
	waitDone(t, h)
	assert.Equal(t, domain.ChannelClosed, h.State())
	assert.NoError(t, h.Err())
}

func TestObserverSeesOpenMessagesAndClose(t *testing.T) {
	t.Parallel()

	url := newChannelServer(t, func(t *testing.T, conn *websocket.Conn, r *http.Request) {
		_ = conn.Write(context.Background(), websocket.MessageText, []byte("hello"))
		_ = conn.Close(websocket.StatusGoingAway, "")
	})

	var (
		mu     sync.Mutex
		events []string
	)
	record := func(event string) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, event)
	}
	observer := Observer{
		OnOpen:    func(*Handle) { record("open") },
		OnMessage: func(_ *Handle, payload string) { record("message:" + payload) },
		OnClose:   func(*Handle) { record("close") },
		OnError:   func(*Handle, error) { record("error") },
	}

	h, err := testDialer(url, observer).Connect(context.Background(), "T1")
	require.NoError(t, err)
	waitDone(t, h)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"open", "message:hello", "close"}, events)
}

func TestEndpointIsRedacted(t *testing.T) {
	t.Parallel()

	h, err := testDialer("ws://127.0.0.1:1/ws", Observer{}).Connect(context.Background(), "secret")
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })

	assert.NotContains(t, h.Endpoint(), "secret")
}
