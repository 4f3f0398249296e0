// File: services/myservices/myservices.go
package myservices

import (
	"context"
	"errors"

	"servecure/models"
	"servecure/services/gateway"
	"servecure/services/session"
)

// Derived display statuses. Computed from server-owned fields on every
// render; never stored.
const (
	StatusRequested = "requested"
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
)

// stageUnassigned is the server's initial stage for a fresh booking.
const stageUnassigned = "unassigned"

// ErrSignInRequired is returned when the listing is requested without a
// signed-in session.
var ErrSignInRequired = errors.New("sign in required")

// DerivedStatus computes the display status of a record: a completion
// timestamp wins, an assigned stage means work is ongoing, anything else is
// still just requested. An absent stage deliberately reads as requested,
// same as "unassigned": only an explicit stage advance moves a record to
// ongoing.
func DerivedStatus(rec models.ServiceRecord) string {
	if rec.CompletedAt != "" {
		return StatusCompleted
	}
	if rec.Stage != "" && rec.Stage != stageUnassigned {
		return StatusOngoing
	}
	return StatusRequested
}

// FilterByStatus keeps the records whose derived status matches filter;
// "all" or "" keeps everything.
func FilterByStatus(recs []models.ServiceRecord, filter string) []models.ServiceRecord {
	if filter == "" || filter == "all" {
		return recs
	}
	out := make([]models.ServiceRecord, 0, len(recs))
	for _, rec := range recs {
		if DerivedStatus(rec) == filter {
			out = append(out, rec)
		}
	}
	return out
}

// Service fetches the signed-in client's booked services.
type Service interface {
	List(ctx context.Context, sid string, filter string) ([]models.ServiceRecord, error)
}

// DefaultMyServicesService reads the listing through the gateway.
type DefaultMyServicesService struct {
	Sessions session.Store
	Gateway  *gateway.Client
	URL      string
}

func (s *DefaultMyServicesService) List(ctx context.Context, sid string, filter string) ([]models.ServiceRecord, error) {
	sess := s.Sessions.Load(ctx, sid)
	if !sess.SignedIn() {
		return nil, ErrSignInRequired
	}

	// A malformed body decodes to an empty listing, not an error.
	var recs []models.ServiceRecord
	if err := s.Gateway.AuthedGet(ctx, s.URL, sess.BearerToken(), &recs); err != nil {
		return nil, err
	}
	return FilterByStatus(recs, filter), nil
}
