// Package live mounts one projects view per websocket connection.
//
// The connection owns a fetchstate.Loader for its whole lifetime: every
// state change is rendered server side and pushed as a projects section,
// a "refetch" message from the page retries, and disconnecting unmounts.
package live

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/GoSim-25-26J-441/projects-overview/internal/logging"
	"github.com/GoSim-25-26J-441/projects-overview/internal/observability"
	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/fetchstate"
	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/repository"
	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/view"
)

// Path is where the live socket is served.
const Path = "/live/projects"

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMessage = 1024
)

// Handler serves the live socket.
type Handler struct {
	fetch    fetchstate.FetchFunc
	renderer *view.Renderer
	upgrader websocket.Upgrader
}

// NewHandler builds a live handler. Cross-origin upgrades are accepted only
// from allowedOrigins ("*" allows any).
func NewHandler(fetch fetchstate.FetchFunc, renderer *view.Renderer, allowedOrigins []string) *Handler {
	return &Handler{
		fetch:    fetch,
		renderer: renderer,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     checkOrigin(allowedOrigins),
		},
	}
}

// Register mounts the socket route.
func (h *Handler) Register(r gin.IRoutes) {
	r.GET(Path, h.Serve)
}

// URL returns the socket path a page should connect to.
func URL(forceError bool) string {
	if !forceError {
		return Path
	}
	return Path + "?error=1"
}

// Serve upgrades the request and runs the session until either side hangs up.
func (h *Handler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader has already replied
		logging.Warn().Err(err).Msg("live upgrade failed")
		return
	}

	forceError := repository.FailureFlag(c.Query("error"))
	s := &session{
		id:         uuid.NewString(),
		conn:       conn,
		renderer:   h.renderer,
		forceError: forceError,
	}

	ctx := repository.WithFailure(c.Request.Context(), forceError)
	s.run(ctx, h.fetch)
}

type session struct {
	id         string
	conn       *websocket.Conn
	renderer   *view.Renderer
	forceError bool
}

func (s *session) run(parent context.Context, fetch fetchstate.FetchFunc) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	observability.LiveSessionMounted()
	defer observability.LiveSessionUnmounted()

	loader := fetchstate.NewLoader(ctx, fetch)
	defer loader.Close()

	updates, unsubscribe := loader.Subscribe()
	defer unsubscribe()

	logging.Info().Str("session", s.id).Bool("force_error", s.forceError).Msg("live session mounted")

	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		defer cancel()
		s.readLoop(loader)
	}()

	s.writeLoop(ctx, updates)

	cancel()
	s.conn.Close()
	<-readDone

	logging.Info().Str("session", s.id).Msg("live session unmounted")
}

func (s *session) readLoop(loader *fetchstate.Loader) {
	s.conn.SetReadLimit(maxMessage)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg ClientMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.Debug().Err(err).Str("session", s.id).Msg("live read ended")
			}
			return
		}

		switch msg.Type {
		case TypeRefetch:
			logging.Debug().Str("session", s.id).Msg("live refetch")
			loader.Refetch()
		default:
			// ignored
		}
	}
}

// writeLoop is the only writer on the connection.
func (s *session) writeLoop(ctx context.Context, updates <-chan fetchstate.State) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = s.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		case st, ok := <-updates:
			if !ok {
				return
			}
			if err := s.push(st); err != nil {
				logging.Debug().Err(err).Str("session", s.id).Msg("live write failed")
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (s *session) push(st fetchstate.State) error {
	html, err := s.renderer.ProjectsHTML(s.renderer.List(fetchstate.OutputOf(st), s.forceError))
	if err != nil {
		return err
	}

	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteJSON(RenderMessage{
		Type:    TypeRender,
		Session: s.id,
		State:   st.Kind(),
		HTML:    html,
	})
}

func checkOrigin(allowed []string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		u, err := url.Parse(origin)
		if err == nil && strings.EqualFold(u.Host, r.Host) {
			return true
		}
		for _, a := range allowed {
			if a == "*" || strings.EqualFold(a, origin) {
				return true
			}
		}
		return false
	}
}
