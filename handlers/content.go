package handlers

import (
	"net/http"

	"servecure/services/content"

	"github.com/gin-gonic/gin"
)

// ContentHandler serves the marketing content bundles.
type ContentHandler struct {
	Content content.Service
}

func NewContentHandler(contentSvc content.Service) *ContentHandler {
	return &ContentHandler{Content: contentSvc}
}

// HomeContentHandler handles GET /api/content/home and returns the
// full home page payload in one response.
func (h *ContentHandler) HomeContentHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"services":     h.Content.Catalog(),
		"testimonials": h.Content.Testimonials(),
		"faqs":         h.Content.FAQs(),
		"stats":        h.Content.Stats(),
	})
}
