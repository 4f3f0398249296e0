package content

import "servecure/models"

// Service exposes the static marketing content: the service catalog, job
// listings, testimonials and FAQs. Content is fixture data loaded once at
// startup and immutable afterwards.
type Service interface {
	Catalog() []models.ServiceOffering
	Jobs() []models.JobListing
	Testimonials() []models.Testimonial
	FAQs() []models.FAQ
	Stats() []models.Stat

	// SubServicesFor returns the sub-service list for a catalog title,
	// matched case-insensitively; nil when unknown.
	SubServicesFor(title string) []string

	// StartingPriceFor returns the catalog starting-price text for a title,
	// or "" when unknown.
	StartingPriceFor(title string) string
}
