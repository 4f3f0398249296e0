package handlers

import (
	"errors"
	"net/http"

	"servecure/middleware"
	"servecure/models"
	"servecure/services/myservices"
	"servecure/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MyServicesHandler lists the signed-in client's booked services.
type MyServicesHandler struct {
	Service myservices.Service
}

func NewMyServicesHandler(svc myservices.Service) *MyServicesHandler {
	return &MyServicesHandler{Service: svc}
}

// serviceView is a listing row plus its derived display status.
type serviceView struct {
	models.ServiceRecord
	Status string `json:"status"`
}

// ListHandler handles GET /api/my-services?filter=all|requested|ongoing|completed.
func (h *MyServicesHandler) ListHandler(c *gin.Context) {
	logger := utils.GetLogger()

	sid := middleware.SessionID(c)
	recs, err := h.Service.List(c.Request.Context(), sid, c.Query("filter"))
	if err != nil {
		if errors.Is(err, myservices.ErrSignInRequired) {
			respondSignInRequired(c)
			return
		}
		logger.Warn("Failed to load services", zap.String("sid", sid), zap.Error(err))
		respondRemoteError(c, err)
		return
	}

	views := make([]serviceView, 0, len(recs))
	for _, rec := range recs {
		views = append(views, serviceView{ServiceRecord: rec, Status: myservices.DerivedStatus(rec)})
	}
	c.JSON(http.StatusOK, gin.H{"services": views})
}
