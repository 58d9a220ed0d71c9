package http

import "github.com/gin-gonic/gin"

// RegisterPages attaches the HTML routes.
func (h *Handler) RegisterPages(r gin.IRoutes) {
	r.GET("/", h.page)
	r.GET("/projects/region", h.region)
}

// Register attaches the JSON routes to the given API group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/projects", h.list)
	rg.GET("/me", h.me)
}
