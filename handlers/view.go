package handlers

import (
	"net/http"

	"servecure/middleware"
	"servecure/services/view"

	"github.com/gin-gonic/gin"
)

// ViewHandler drives route-controller transitions for a session.
type ViewHandler struct {
	Views view.Service
}

func NewViewHandler(views view.Service) *ViewHandler {
	return &ViewHandler{Views: views}
}

// EnterViewHandler handles GET /api/view?fragment=. The fragment may be
// empty, a bare path, or carry its leading "#".
func (h *ViewHandler) EnterViewHandler(c *gin.Context) {
	entry := h.Views.Enter(c.Request.Context(), middleware.SessionID(c), c.Query("fragment"))
	c.JSON(http.StatusOK, entry)
}
