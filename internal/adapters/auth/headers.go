package auth

import (
	"net/http"
	"sync"

	"github.com/bnema/chatline/internal/ports"
)

const authorizationHeader = "Authorization"

// Headers is the default header set shared by every request of one client
// context.
type Headers struct {
	mu     sync.RWMutex
	values http.Header
}

var _ ports.HeaderState = (*Headers)(nil)

func NewHeaders() *Headers {
	return &Headers{values: http.Header{}}
}

func (h *Headers) Arm(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.values.Set(authorizationHeader, "Bearer "+token)
}

func (h *Headers) Disarm() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.values.Del(authorizationHeader)
}

func (h *Headers) Authorization() string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.values.Get(authorizationHeader)
}

// Apply copies the armed defaults onto req without overriding headers the
// caller already set.
func (h *Headers) Apply(req *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for key, values := range h.values {
		if req.Header.Get(key) != "" {
			continue
		}
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
}
