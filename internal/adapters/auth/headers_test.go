package auth

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadersArmAndDisarm(t *testing.T) {
	t.Parallel()

	headers := NewHeaders()
	assert.Empty(t, headers.Authorization())

	headers.Arm("T1")
	assert.Equal(t, "Bearer T1", headers.Authorization())

	headers.Arm("T2")
	assert.Equal(t, "Bearer T2", headers.Authorization())

	headers.Disarm()
	headers.Disarm()
	assert.Empty(t, headers.Authorization())
}

func TestHeadersApplyDoesNotOverrideExplicitHeader(t *testing.T) {
	t.Parallel()

	headers := NewHeaders()
	headers.Arm("T1")

	req, err := http.NewRequest(http.MethodGet, "http://localhost/", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer explicit")

	headers.Apply(req)
	assert.Equal(t, "Bearer explicit", req.Header.Get("Authorization"))

	plain, err := http.NewRequest(http.MethodGet, "http://localhost/", nil)
	require.NoError(t, err)
	headers.Apply(plain)
	assert.Equal(t, "Bearer T1", plain.Header.Get("Authorization"))
}
