package channel

import (
	"context"
	"net/http"
	"sync"

	"github.com/bnema/chatline/internal/domain"
	"github.com/rs/zerolog"
	"nhooyr.io/websocket"
)

// Observer receives lifecycle events. Hooks run on the handle's reader
// goroutine in the order events occur; nil hooks are skipped.
type Observer struct {
	OnOpen    func(h *Handle)
	OnMessage func(h *Handle, payload string)
	OnClose   func(h *Handle)
	OnError   func(h *Handle, err error)
}

// Handle is one channel connection bound to the token it was created with.
type Handle struct {
	id         string
	endpoint   string
	log        *MessageLog
	logger     zerolog.Logger
	observer   Observer
	readLimit  int64
	httpClient *http.Client

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	mu      sync.RWMutex
	state   domain.ChannelState
	conn    *websocket.Conn
	err     error
	closing bool

	closeOnce sync.Once
}

func (h *Handle) ID() string {
	return h.id
}

// Endpoint returns the channel URL with the token redacted.
func (h *Handle) Endpoint() string {
	return redactEndpoint(h.endpoint)
}

func (h *Handle) Log() *MessageLog {
	return h.log
}

func (h *Handle) State() domain.ChannelState {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.state
}

// Err returns the failure that ended the handle, nil after a normal closure.
func (h *Handle) Err() error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.err
}

// Done is closed once the handle reaches the closed state.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Close tears the connection down and waits for the reader to exit. It is safe
// to call more than once; close handshake problems are only logged. Observer
// hooks must not call it.
func (h *Handle) Close() error {
	h.closeOnce.Do(func() {
		h.mu.Lock()
		h.closing = true
		conn := h.conn
		h.mu.Unlock()

		if conn != nil {
			if err := conn.Close(websocket.StatusNormalClosure, ""); err != nil {
				h.logger.Debug().Err(err).Msg("channel close handshake")
			}
		}
		h.cancel()
	})

	<-h.done
	return nil
}

func (h *Handle) run() {
	defer close(h.done)
	defer h.cancel()

	conn, _, err := websocket.Dial(h.ctx, h.endpoint, &websocket.DialOptions{HTTPClient: h.httpClient})
	if err != nil {
		if h.teardownRequested() {
			h.closed()
			return
		}
		h.fail("dial", err)
		return
	}
	if h.readLimit > 0 {
		conn.SetReadLimit(h.readLimit)
	}

	h.mu.Lock()
	if h.closing {
		h.mu.Unlock()
		_ = conn.Close(websocket.StatusNormalClosure, "")
		h.closed()
		return
	}
	h.conn = conn
	h.state = domain.ChannelOpen
	h.mu.Unlock()

	h.logger.Info().Str("endpoint", h.Endpoint()).Msg("channel open")
	if h.observer.OnOpen != nil {
		h.observer.OnOpen(h)
	}

	for {
		msgType, data, err := conn.Read(h.ctx)
		if err != nil {
			h.finish(err)
			return
		}
		if msgType != websocket.MessageText {
			h.logger.Warn().Int("bytes", len(data)).Msg("skipping binary frame")
			continue
		}

		payload := string(data)
		h.log.Append(payload)
		if h.observer.OnMessage != nil {
			h.observer.OnMessage(h, payload)
		}
	}
}

func (h *Handle) finish(err error) {
	status := websocket.CloseStatus(err)
	switch {
	case status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway:
		h.logger.Info().Int("code", int(status)).Msg("channel closed by peer")
		h.closed()
	case h.teardownRequested():
		h.closed()
	default:
		h.fail("read", err)
	}
}

func (h *Handle) teardownRequested() bool {
	h.mu.RLock()
	closing := h.closing
	h.mu.RUnlock()

	return closing || h.ctx.Err() != nil
}

func (h *Handle) fail(op string, err error) {
	channelErr := &domain.ChannelError{Op: op, Err: err}

	h.mu.Lock()
	h.err = channelErr
	h.mu.Unlock()

	h.logger.Error().Err(err).Str("op", op).Msg("channel error")
	if h.observer.OnError != nil {
		h.observer.OnError(h, channelErr)
	}
	h.closed()
}

func (h *Handle) closed() {
	h.mu.Lock()
	h.state = domain.ChannelClosed
	h.conn = nil
	h.mu.Unlock()

	h.logger.Info().Msg("channel closed")
	if h.observer.OnClose != nil {
		h.observer.OnClose(h)
	}
}
