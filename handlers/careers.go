package handlers

import (
	"net/http"

	"servecure/models"
	"servecure/services/careers"
	"servecure/services/content"

	"github.com/gin-gonic/gin"
)

// CareersHandler serves the careers listing with client-driven filtering.
type CareersHandler struct {
	Content content.Service
}

func NewCareersHandler(contentSvc content.Service) *CareersHandler {
	return &CareersHandler{Content: contentSvc}
}

// ListJobsHandler handles GET /api/careers with optional filter query
// fields. Filtering is a pure projection of the fixture listings.
func (h *CareersHandler) ListJobsHandler(c *gin.Context) {
	var filters models.JobFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	jobs := h.Content.Jobs()
	filtered := careers.Filter(jobs, filters)
	c.JSON(http.StatusOK, gin.H{
		"jobs":    filtered,
		"total":   len(filtered),
		"options": careers.Options(jobs),
	})
}

// GetJobHandler handles GET /api/careers/:id.
func (h *CareersHandler) GetJobHandler(c *gin.Context) {
	job := careers.FindByID(h.Content.Jobs(), c.Param("id"))
	if job == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}
	c.JSON(http.StatusOK, job)
}
