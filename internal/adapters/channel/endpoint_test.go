package channel

import (
	"errors"
	"testing"

	"github.com/bnema/chatline/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEndpointEncodesToken(t *testing.T) {
	t.Parallel()

	endpoint, err := BuildEndpoint("ws://localhost:3000/ws", "a b/c+d&e")
	require.NoError(t, err)
	assert.Equal(t, "ws://localhost:3000/ws?token=a%20b%2Fc%2Bd%26e", endpoint)
}

func TestBuildEndpointKeepsExistingQuery(t *testing.T) {
	t.Parallel()

	endpoint, err := BuildEndpoint("wss://chat.example.com/ws?room=1", "T1")
	require.NoError(t, err)
	assert.Equal(t, "wss://chat.example.com/ws?room=1&token=T1", endpoint)
}

func TestBuildEndpointRejectsEmptyToken(t *testing.T) {
	t.Parallel()

	_, err := BuildEndpoint("ws://localhost:3000/ws", "")
	assert.True(t, errors.Is(err, domain.ErrEmptyToken))
}

func TestBuildEndpointRejectsBadURL(t *testing.T) {
	t.Parallel()

	_, err := BuildEndpoint("", "T1")
	require.Error(t, err)

	_, err = BuildEndpoint("ftp://localhost/ws", "T1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ws, wss, http or https")

	endpoint, err := BuildEndpoint("https://localhost/ws", "T1")
	require.NoError(t, err)
	assert.Equal(t, "https://localhost/ws?token=T1", endpoint)

	_, err = BuildEndpoint("ws:///ws", "T1")
	require.Error(t, err)
}

func TestRedactEndpointHidesToken(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ws://localhost:3000/ws?token=redacted", redactEndpoint("ws://localhost:3000/ws?token=secret"))
	assert.NotContains(t, redactEndpoint("ws://localhost:3000/ws?room=1&token=secret"), "secret")
}
