// File: services/provider/provider.go
package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"servecure/models"
	"servecure/services/gateway"
	"servecure/services/session"
)

// Placeholder refs sent when a document was not supplied; the endpoint
// treats them as "missing".
const (
	placeholderSelfie = "selfie_image_url"
	placeholderAadhar = "aadhar_card_image_url"
	placeholderPan    = "pan_card_image_url"
)

var (
	// ErrSignInRequired aborts a submission or status read from a
	// logged-out session.
	ErrSignInRequired = errors.New("sign in required")

	// ErrSubmitInProgress rejects a re-entrant submission.
	ErrSubmitInProgress = errors.New("a submission is already in progress")

	// ErrNoServices rejects a request selecting nothing.
	ErrNoServices = errors.New("select at least one service")
)

// SubmitGuard is the single-shot latch around a submission.
type SubmitGuard interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string)
}

// Service handles service-provider onboarding: one submission, then
// server-owned status read-back.
type Service interface {
	Submit(ctx context.Context, sid string, input models.ProviderRequestInput) error
	Status(ctx context.Context, sid string) (models.ProviderStatusResponse, error)
}

// DefaultProviderService submits onboarding requests through the gateway.
type DefaultProviderService struct {
	Sessions session.Store
	Gateway  *gateway.Client
	Guard    SubmitGuard
	URL      string
}

func (s *DefaultProviderService) Submit(ctx context.Context, sid string, input models.ProviderRequestInput) error {
	sess := s.Sessions.Load(ctx, sid)
	if !sess.SignedIn() {
		return ErrSignInRequired
	}
	if len(input.Services) == 0 {
		return ErrNoServices
	}

	guardKey := "provider:" + sid
	ok, err := s.Guard.Acquire(ctx, guardKey)
	if err != nil {
		return fmt.Errorf("provider: failed to acquire submit guard: %w", err)
	}
	if !ok {
		return ErrSubmitInProgress
	}
	defer s.Guard.Release(ctx, guardKey)

	return s.Gateway.AuthedPost(ctx, s.URL, sess.BearerToken(), BuildRequest(input), nil)
}

func (s *DefaultProviderService) Status(ctx context.Context, sid string) (models.ProviderStatusResponse, error) {
	sess := s.Sessions.Load(ctx, sid)
	if !sess.SignedIn() {
		return models.ProviderStatusResponse{}, ErrSignInRequired
	}

	var status models.ProviderStatusResponse
	if err := s.Gateway.AuthedGet(ctx, s.URL, sess.BearerToken(), &status); err != nil {
		return models.ProviderStatusResponse{}, err
	}
	return status, nil
}

// BuildRequest maps the collected form onto the endpoint's wire shape,
// substituting placeholders for absent documents.
func BuildRequest(input models.ProviderRequestInput) models.ProviderRequest {
	return models.ProviderRequest{
		Selfie:     refOrPlaceholder(input.SelfieRef, placeholderSelfie),
		AadharCard: refOrPlaceholder(input.AadharRef, placeholderAadhar),
		PanCard:    refOrPlaceholder(input.PanRef, placeholderPan),
		AccountDetails: models.AccountDetails{
			AccountHolderName: input.AccountHolderName,
			AccountNumber:     input.AccountNumber,
			IFSCCode:          input.IFSCCode,
		},
		Services: BuildServicesMap(input.Services),
		Metadata: models.ProviderMetadata{
			ContactNumber: input.ContactNumber,
			ServiceCity:   input.ServiceCity,
		},
	}
}

// BuildServicesMap keys the ordered selections "service 1".."service N",
// lowercasing the values per the endpoint's contract.
func BuildServicesMap(selected []string) map[string]string {
	services := make(map[string]string, len(selected))
	for i, name := range selected {
		services[fmt.Sprintf("service %d", i+1)] = strings.ToLower(name)
	}
	return services
}

func refOrPlaceholder(ref, placeholder string) string {
	if ref == "" {
		return placeholder
	}
	return ref
}
