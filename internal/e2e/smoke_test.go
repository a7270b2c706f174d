package e2e

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	server := newBackend(t)

	stdout, stderr, err := runChatline(t, binaryPath, home, server.URL, "login", "--username", "alice", "--password", "pw1")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Logged in as alice")

	stdout, stderr, err = runChatline(t, binaryPath, home, server.URL, "chat")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "hello")

	_, stderr, err = runChatline(t, binaryPath, home, server.URL, "logout")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err = runChatline(t, binaryPath, home, server.URL, "route", "/chat")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, "redirect /chat -> /login\n", stdout)
}

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token":"T1","user":{"id":"7","username":"alice"}}`))
	})
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		_ = conn.Write(r.Context(), websocket.MessageText, []byte("hello"))
		_ = conn.Close(websocket.StatusNormalClosure, "")
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "chatline-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/chatline")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build chatline binary: %s", string(output))
	return binaryPath
}

func runChatline(t *testing.T, binaryPath, home, baseURL string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"CHATLINE_SERVER_BASE_URL="+baseURL,
		"CHATLINE_STORAGE_BACKEND=file",
	)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
