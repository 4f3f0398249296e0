package provider

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// DocumentStore turns an uploaded onboarding document into the ref string
// carried in the provider request.
type DocumentStore interface {
	StoreDocument(ctx context.Context, name string, mimeType string, data []byte) (string, error)
}

// EncodeDataURL embeds raw file bytes as a data URL, the inline ref format
// the provider endpoint accepts.
func EncodeDataURL(mimeType string, data []byte) string {
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

// InlineDocumentStore keeps documents inline as data URLs. Used when no
// upload backend is configured.
type InlineDocumentStore struct{}

func (InlineDocumentStore) StoreDocument(_ context.Context, _ string, mimeType string, data []byte) (string, error) {
	return EncodeDataURL(mimeType, data), nil
}

// CloudinaryDocumentStore uploads documents to Cloudinary and refs them by
// their hosted URL.
type CloudinaryDocumentStore struct {
	Cld    *cloudinary.Cloudinary
	Folder string
}

func (s *CloudinaryDocumentStore) StoreDocument(ctx context.Context, name string, mimeType string, data []byte) (string, error) {
	// The uploader accepts base64 data URIs directly.
	result, err := s.Cld.Upload.Upload(ctx, EncodeDataURL(mimeType, data), uploader.UploadParams{
		Folder:   s.Folder,
		PublicID: name,
	})
	if err != nil {
		return "", fmt.Errorf("provider: failed to upload document %s: %w", name, err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("provider: no URL returned for document %s", name)
	}
	return result.SecureURL, nil
}
