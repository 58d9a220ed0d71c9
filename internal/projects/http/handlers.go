package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"github.com/GoSim-25-26J-441/projects-overview/internal/logging"
	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/domain"
	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/fetchstate"
	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/live"
	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/repository"
	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/view"
)

// page serves the projects page. By default it is rendered in the loading
// state and the live socket fills it in; with ?static=1 the read is awaited
// and the settled page is served without a script.
func (h *Handler) page(c *gin.Context) {
	force := repository.FailureFlag(c.Query("error"))

	if !queryFlag(c, "static") {
		list := h.renderer.List(fetchstate.OutputOf(fetchstate.Loading{}), force)
		h.html(c, view.PageTemplate, h.renderer.Page(h.user, list, live.URL(force)))
		return
	}

	st, ok := h.settle(c, force)
	if !ok {
		return
	}
	list := h.renderer.List(fetchstate.OutputOf(st), force)
	h.html(c, view.PageTemplate, h.renderer.Page(h.user, list, ""))
}

// region serves only the settled projects section.
func (h *Handler) region(c *gin.Context) {
	force := repository.FailureFlag(c.Query("error"))

	st, ok := h.settle(c, force)
	if !ok {
		return
	}
	h.html(c, view.ProjectsTemplate, h.renderer.List(fetchstate.OutputOf(st), force))
}

// settle mounts a one-shot loader for the request and waits for it.
func (h *Handler) settle(c *gin.Context, force bool) (fetchstate.State, bool) {
	ctx := repository.WithFailure(c.Request.Context(), force)

	loader := fetchstate.NewLoader(ctx, h.projects.ListProjects)
	defer loader.Close()

	st, err := loader.Wait(ctx)
	if err != nil {
		logging.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("request ended before projects settled")
		c.AbortWithStatus(http.StatusServiceUnavailable)
		return nil, false
	}
	return st, true
}

func (h *Handler) html(c *gin.Context, name string, data any) {
	c.Render(http.StatusOK, render.HTML{
		Template: h.renderer.Template(),
		Name:     name,
		Data:     data,
	})
}

func (h *Handler) list(c *gin.Context) {
	ctx := repository.WithFailure(c.Request.Context(), repository.FailureFlag(c.Query("error")))

	items, err := h.projects.ListProjects(ctx)
	if err != nil {
		if fe, ok := domain.AsFetchError(err); ok {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": fe.Message})
			return
		}
		if ctx.Err() != nil {
			c.AbortWithStatus(http.StatusServiceUnavailable)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	out := make([]projectDTO, 0, len(items))
	for _, p := range items {
		out = append(out, toProjectDTO(p))
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "count": len(out), "projects": out})
}

func (h *Handler) me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "user": userDTO{
		ID:       h.user.ID,
		Name:     h.user.DisplayName(),
		Email:    h.user.Email,
		Initials: h.user.Initials(),
	}})
}

// queryFlag reports whether the named query parameter is switched on.
func queryFlag(c *gin.Context, name string) bool {
	switch strings.ToLower(strings.TrimSpace(c.Query(name))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
