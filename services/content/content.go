// File: services/content/content.go
package content

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"servecure/models"
	"servecure/utils"

	"go.uber.org/zap"
)

// DefaultContentService serves content fixtures. Each collection is read
// from a JSON file under the configured content directory when present,
// else the built-in defaults apply.
type DefaultContentService struct {
	catalog      []models.ServiceOffering
	jobs         []models.JobListing
	testimonials []models.Testimonial
	faqs         []models.FAQ
	stats        []models.Stat
}

// NewDefaultContentService loads fixtures from dir (may be "" or missing;
// defaults cover every collection).
func NewDefaultContentService(dir string) *DefaultContentService {
	svc := &DefaultContentService{
		catalog:      defaultCatalog,
		jobs:         defaultJobs,
		testimonials: defaultTestimonials,
		faqs:         defaultFAQs,
		stats:        defaultStats,
	}
	if dir == "" {
		return svc
	}
	loadFixture(filepath.Join(dir, "catalog.json"), &svc.catalog)
	loadFixture(filepath.Join(dir, "jobs.json"), &svc.jobs)
	loadFixture(filepath.Join(dir, "testimonials.json"), &svc.testimonials)
	loadFixture(filepath.Join(dir, "faqs.json"), &svc.faqs)
	loadFixture(filepath.Join(dir, "stats.json"), &svc.stats)
	return svc
}

// loadFixture overwrites dst with the decoded file contents when the file
// exists and parses; otherwise dst keeps its defaults.
func loadFixture(path string, dst any) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	if err := json.Unmarshal(data, dst); err != nil {
		utils.GetLogger().Warn("Ignoring malformed content fixture",
			zap.String("path", path), zap.Error(err))
	}
}

func (s *DefaultContentService) Catalog() []models.ServiceOffering  { return s.catalog }
func (s *DefaultContentService) Jobs() []models.JobListing          { return s.jobs }
func (s *DefaultContentService) Testimonials() []models.Testimonial { return s.testimonials }
func (s *DefaultContentService) FAQs() []models.FAQ                 { return s.faqs }
func (s *DefaultContentService) Stats() []models.Stat               { return s.stats }

func (s *DefaultContentService) SubServicesFor(title string) []string {
	for _, svc := range s.catalog {
		if strings.EqualFold(svc.Title, title) {
			return svc.SubServices
		}
	}
	return nil
}

func (s *DefaultContentService) StartingPriceFor(title string) string {
	for _, svc := range s.catalog {
		if strings.EqualFold(svc.Title, title) {
			return svc.StartingPrice
		}
	}
	return ""
}
