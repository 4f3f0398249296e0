// File: services/booking/booking.go
package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"servecure/models"
	"servecure/services/content"
	"servecure/services/gateway"
	"servecure/services/session"
)

// defaultServiceCost is used when the catalog carries no parsable price.
const defaultServiceCost = "100"

var (
	// ErrSignInRequired aborts a submission from a logged-out session; the
	// client opens the sign-in surface instead.
	ErrSignInRequired = errors.New("sign in required")

	// ErrSubmitInProgress rejects a re-entrant submission while one is
	// already in flight for the session.
	ErrSubmitInProgress = errors.New("a submission is already in progress")

	// ErrInvalidInput marks form errors the client must correct.
	ErrInvalidInput = errors.New("invalid booking input")
)

// SubmitGuard is the single-shot latch around a submission. Acquire returns
// false while a prior submission for the same key is still in flight.
type SubmitGuard interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string)
}

// Service submits booking requests to the remote booking endpoint.
type Service interface {
	Submit(ctx context.Context, sid string, input models.BookingInput) error
}

// DefaultBookingService builds the wire body from form input and the
// catalog, then posts it through the gateway.
type DefaultBookingService struct {
	Sessions session.Store
	Gateway  *gateway.Client
	Content  content.Service
	Guard    SubmitGuard
	URL      string
}

func (s *DefaultBookingService) Submit(ctx context.Context, sid string, input models.BookingInput) error {
	sess := s.Sessions.Load(ctx, sid)
	if !sess.SignedIn() {
		return ErrSignInRequired
	}

	guardKey := "booking:" + sid
	ok, err := s.Guard.Acquire(ctx, guardKey)
	if err != nil {
		return fmt.Errorf("booking: failed to acquire submit guard: %w", err)
	}
	if !ok {
		return ErrSubmitInProgress
	}
	defer s.Guard.Release(ctx, guardKey)

	body, err := s.buildRequest(input)
	if err != nil {
		return err
	}
	return s.Gateway.AuthedPost(ctx, s.URL, sess.BearerToken(), body, nil)
}

func (s *DefaultBookingService) buildRequest(input models.BookingInput) (models.BookingRequest, error) {
	slot, err := FormatRequestedSlot(input.Date, input.Time)
	if err != nil {
		return models.BookingRequest{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return models.BookingRequest{
		Category:      strings.ToLower(input.Service),
		ServiceType:   input.ServiceType,
		RequestedSlot: slot,
		ServiceCost:   ExtractServiceCost(s.Content.StartingPriceFor(input.Service)),
		Metadata: models.BookingMetadata{
			Instruction: input.Instruction,
			PhoneNumber: input.Phone,
			Address:     input.Address,
		},
	}, nil
}

// ExtractServiceCost strips a catalog price text ("₹299") down to its
// digits; an unpriced service books at the default cost.
func ExtractServiceCost(priceText string) string {
	var b strings.Builder
	for _, r := range priceText {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return defaultServiceCost
	}
	return b.String()
}
