package channel

import (
	"context"
	"sync"

	"github.com/bnema/chatline/internal/domain"
)

type Connector interface {
	Connect(ctx context.Context, token string) (*Handle, error)
}

// Session owns at most one live handle. Connecting again closes the previous
// handle before dialing the new one.
type Session struct {
	connector Connector

	// connectMu serializes Connect; mu only guards current.
	connectMu sync.Mutex
	mu        sync.Mutex
	current   *Handle
}

func NewSession(connector Connector) *Session {
	return &Session{connector: connector}
}

func (s *Session) Connect(ctx context.Context, token string) (*Handle, error) {
	if token == "" {
		return nil, domain.ErrEmptyToken
	}

	s.connectMu.Lock()
	defer s.connectMu.Unlock()

	if previous := s.swap(nil); previous != nil {
		_ = previous.Close()
	}

	h, err := s.connector.Connect(ctx, token)
	if err != nil {
		return nil, err
	}
	s.swap(h)

	return h, nil
}

// swap installs next as the current handle and returns the one it replaced.
func (s *Session) swap(next *Handle) *Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.current
	s.current = next
	return previous
}

func (s *Session) Current() *Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}

func (s *Session) State() domain.ChannelState {
	s.mu.Lock()
	h := s.current
	s.mu.Unlock()

	if h == nil {
		return domain.ChannelIdle
	}
	return h.State()
}

func (s *Session) Close() error {
	previous := s.swap(nil)
	if previous == nil {
		return nil
	}
	return previous.Close()
}
