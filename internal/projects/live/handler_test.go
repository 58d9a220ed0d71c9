package live

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/projects-overview/internal/observability"
	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/repository"
	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/view"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T, delay time.Duration) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	renderer, err := view.NewRenderer("Jan 2, 2006", view.WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)

	api := repository.NewMockAPI(repository.NewSampleRepository(fixedNow), delay, false)
	r := gin.New()
	NewHandler(api.List, renderer, nil).Register(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	u := "ws" + strings.TrimPrefix(srv.URL, "http") + Path + query
	conn, resp, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	resp.Body.Close()
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readRender(t *testing.T, conn *websocket.Conn) RenderMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var msg RenderMessage
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, TypeRender, msg.Type)
	return msg
}

func TestLive_LoadingThenSuccess(t *testing.T) {
	srv := newTestServer(t, 50*time.Millisecond)
	conn := dial(t, srv, "")

	first := readRender(t, conn)
	assert.Equal(t, "loading", first.State)
	assert.Equal(t, view.PlaceholderCount, strings.Count(first.HTML, "skeleton-card"))
	_, err := uuid.Parse(first.Session)
	assert.NoError(t, err)

	second := readRender(t, conn)
	assert.Equal(t, "success", second.State)
	assert.Equal(t, first.Session, second.Session)
	assert.Contains(t, second.HTML, "Marketing Website Refresh")
	assert.Equal(t, 6, strings.Count(second.HTML, "<article"))
}

func TestLive_Refetch(t *testing.T) {
	srv := newTestServer(t, 50*time.Millisecond)
	conn := dial(t, srv, "")

	readRender(t, conn)
	settled := readRender(t, conn)
	require.Equal(t, "success", settled.State)

	// unknown messages are ignored
	require.NoError(t, conn.WriteJSON(ClientMessage{Type: "bogus"}))
	require.NoError(t, conn.WriteJSON(ClientMessage{Type: TypeRefetch}))

	assert.Equal(t, "loading", readRender(t, conn).State)
	again := readRender(t, conn)
	assert.Equal(t, "success", again.State)
	assert.Equal(t, settled.HTML, again.HTML)
}

func TestLive_ForcedFailure(t *testing.T) {
	srv := newTestServer(t, 20*time.Millisecond)
	conn := dial(t, srv, "?error=1")

	assert.Equal(t, "loading", readRender(t, conn).State)

	failed := readRender(t, conn)
	assert.Equal(t, "failure", failed.State)
	assert.Contains(t, failed.HTML, `role="alert"`)
	assert.Contains(t, failed.HTML, "Mock API error while fetching projects.")
	assert.Contains(t, failed.HTML, `name="error"`)
}

// waitNoSessions blocks until sessions from earlier tests have unmounted.
func waitNoSessions(t *testing.T) {
	t.Helper()
	require.Eventually(t, func() bool {
		return observability.LiveSessions() == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestLive_DisconnectUnmounts(t *testing.T) {
	waitNoSessions(t)

	srv := newTestServer(t, time.Hour)
	before := observability.LiveSessions()

	conn := dial(t, srv, "")
	readRender(t, conn)
	assert.Equal(t, before+1, observability.LiveSessions())

	conn.Close()
	require.Eventually(t, func() bool {
		return observability.LiveSessions() == before
	}, 2*time.Second, 10*time.Millisecond)
}

func TestURL(t *testing.T) {
	assert.Equal(t, "/live/projects", URL(false))
	assert.Equal(t, "/live/projects?error=1", URL(true))
}

func TestCheckOrigin(t *testing.T) {
	req := func(origin string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "http://app.local/live/projects", nil)
		if origin != "" {
			r.Header.Set("Origin", origin)
		}
		return r
	}

	strict := checkOrigin([]string{"http://allowed.example"})
	assert.True(t, strict(req("")))
	assert.True(t, strict(req("http://app.local")))
	assert.True(t, strict(req("http://allowed.example")))
	assert.False(t, strict(req("http://evil.example")))

	assert.True(t, checkOrigin([]string{"*"})(req("http://evil.example")))
}
