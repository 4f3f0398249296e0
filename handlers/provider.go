// File: handlers/provider.go
package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"servecure/middleware"
	"servecure/models"
	"servecure/services/provider"
	"servecure/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler handles service-provider onboarding: document intake,
// submission and status read-back.
type ProviderHandler struct {
	Service provider.Service
	Docs    provider.DocumentStore
}

func NewProviderHandler(svc provider.Service, docs provider.DocumentStore) *ProviderHandler {
	return &ProviderHandler{Service: svc, Docs: docs}
}

// GetStatusHandler handles GET /api/provider/request.
func (h *ProviderHandler) GetStatusHandler(c *gin.Context) {
	logger := utils.GetLogger()

	sid := middleware.SessionID(c)
	status, err := h.Service.Status(c.Request.Context(), sid)
	if err != nil {
		if errors.Is(err, provider.ErrSignInRequired) {
			respondSignInRequired(c)
			return
		}
		logger.Warn("Failed to fetch provider status", zap.String("sid", sid), zap.Error(err))
		respondRemoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// SubmitRequestHandler handles POST /api/provider/request (multipart).
// Document parts are optional; absent ones submit as placeholders.
func (h *ProviderHandler) SubmitRequestHandler(c *gin.Context) {
	logger := utils.GetLogger()

	input := models.ProviderRequestInput{
		Services:          c.PostFormArray("services"),
		ContactNumber:     c.PostForm("contact_number"),
		ServiceCity:       c.PostForm("service_city"),
		AccountHolderName: c.PostForm("account_holder_name"),
		AccountNumber:     c.PostForm("account_number"),
		IFSCCode:          c.PostForm("ifsc_code"),
	}

	for _, doc := range []struct {
		field string
		ref   *string
	}{
		{"selfie", &input.SelfieRef},
		{"aadhar_card", &input.AadharRef},
		{"pan_card", &input.PanRef},
	} {
		ref, err := h.storeDocument(c, doc.field)
		if err != nil {
			logger.Warn("Failed to store onboarding document",
				zap.String("field", doc.field), zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded " + doc.field})
			return
		}
		*doc.ref = ref
	}

	sid := middleware.SessionID(c)
	err := h.Service.Submit(c.Request.Context(), sid, input)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Request submitted successfully.", "refresh_status": true})
	case errors.Is(err, provider.ErrSignInRequired):
		respondSignInRequired(c)
	case errors.Is(err, provider.ErrSubmitInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, provider.ErrNoServices):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Warn("Provider submission failed", zap.String("sid", sid), zap.Error(err))
		respondRemoteError(c, err)
	}
}

// storeDocument reads an optional multipart file into a document ref.
// A missing part yields "".
func (h *ProviderHandler) storeDocument(c *gin.Context, field string) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", err
	}

	data, mimeType, err := readUpload(fileHeader)
	if err != nil {
		return "", err
	}
	return h.Docs.StoreDocument(c.Request.Context(), field, mimeType, data)
}

func readUpload(fh *multipart.FileHeader) ([]byte, string, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return data, fh.Header.Get("Content-Type"), nil
}
