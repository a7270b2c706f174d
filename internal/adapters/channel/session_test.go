package channel

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/bnema/chatline/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
)

func TestSessionIsIdleWithoutHandle(t *testing.T) {
	t.Parallel()

	session := NewSession(testDialer("ws://localhost:3000/ws", Observer{}))
	assert.Equal(t, domain.ChannelIdle, session.State())
	assert.Nil(t, session.Current())
	assert.NoError(t, session.Close())
}

func TestSessionConnectReplacesAndClosesPreviousHandle(t *testing.T) {
	t.Parallel()

	tokens := make(chan string, 2)
	url := newChannelServer(t, func(t *testing.T, conn *websocket.Conn, r *http.Request) {
		tokens <- r.URL.Query().Get("token")
		_, _, _ = conn.Read(context.Background())
	})

	session := NewSession(NewDialer(Options{URL: url, Logger: zerolog.Nop()}))

	first, err := session.Connect(context.Background(), "T1")
	require.NoError(t, err)
	assert.Equal(t, "T1", <-tokens)

	second, err := session.Connect(context.Background(), "T2")
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	waitDone(t, first)
	assert.Equal(t, domain.ChannelClosed, first.State())
	assert.Same(t, second, session.Current())
	assert.NotEqual(t, first.ID(), second.ID())
	assert.Equal(t, "T2", <-tokens)
}

func TestSessionConnectRejectsEmptyTokenWithoutClosingCurrent(t *testing.T) {
	t.Parallel()

	url := newChannelServer(t, func(t *testing.T, conn *websocket.Conn, r *http.Request) {
		_, _, _ = conn.Read(context.Background())
	})
	session := NewSession(testDialer(url, Observer{}))

	current, err := session.Connect(context.Background(), "T1")
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	_, err = session.Connect(context.Background(), "")
	assert.True(t, errors.Is(err, domain.ErrEmptyToken))
	assert.Same(t, current, session.Current())
}

func TestSessionCloseReleasesHandle(t *testing.T) {
	t.Parallel()

	url := newChannelServer(t, func(t *testing.T, conn *websocket.Conn, r *http.Request) {
		_, _, _ = conn.Read(context.Background())
	})
	session := NewSession(testDialer(url, Observer{}))

	h, err := session.Connect(context.Background(), "T1")
	require.NoError(t, err)

	require.NoError(t, session.Close())
	waitDone(t, h)
	assert.Nil(t, session.Current())
	assert.Equal(t, domain.ChannelIdle, session.State())
}

func TestSessionQueriesFromObserverDuringTeardownDoNotBlock(t *testing.T) {
	t.Parallel()

	url := newChannelServer(t, func(t *testing.T, conn *websocket.Conn, r *http.Request) {
		_, _, _ = conn.Read(context.Background())
	})

	var session *Session
	opened := make(chan struct{}, 2)
	seen := make(chan domain.ChannelState, 2)
	session = NewSession(testDialer(url, Observer{
		OnOpen: func(*Handle) { opened <- struct{}{} },
		OnClose: func(*Handle) {
			_ = session.Current()
			seen <- session.State()
		},
	}))

	_, err := session.Connect(context.Background(), "T1")
	require.NoError(t, err)
	<-opened

	replaced := make(chan error, 1)
	go func() {
		_, err := session.Connect(context.Background(), "T2")
		replaced <- err
	}()

	select {
	case err := <-replaced:
		require.NoError(t, err)
	case <-time.After(waitTimeout):
		t.Fatal("reconnect blocked on observer query")
	}
	<-seen

	closed := make(chan error, 1)
	go func() { closed <- session.Close() }()

	select {
	case err := <-closed:
		require.NoError(t, err)
	case <-time.After(waitTimeout):
		t.Fatal("close blocked on observer query")
	}
	assert.Equal(t, domain.ChannelIdle, <-seen)
}
