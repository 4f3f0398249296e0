// File: services/careers/careers.go
package careers

import (
	"strings"

	"servecure/models"
)

// matchesAll is the any-value sentinel for keyed filter fields.
const matchesAll = "all"

// Filter returns the listings matching every populated filter field. Each
// field narrows independently, so applying fields in any order yields the
// same result set.
func Filter(jobs []models.JobListing, f models.JobFilters) []models.JobListing {
	out := make([]models.JobListing, 0, len(jobs))
	for _, job := range jobs {
		if matches(job, f) {
			out = append(out, job)
		}
	}
	return out
}

func matches(job models.JobListing, f models.JobFilters) bool {
	if !fieldMatches(f.Department, job.Department == f.Department) {
		return false
	}
	// Location is a substring match so a city filter matches "City, State".
	if !fieldMatches(f.Location, strings.Contains(job.Location, f.Location)) {
		return false
	}
	if !fieldMatches(f.Experience, job.Experience == f.Experience) {
		return false
	}
	if !fieldMatches(f.Type, job.Type == f.Type) {
		return false
	}
	return matchesSearch(job, f.Search)
}

func fieldMatches(filterValue string, hit bool) bool {
	if filterValue == "" || filterValue == matchesAll {
		return true
	}
	return hit
}

func matchesSearch(job models.JobListing, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(job.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(job.Description), needle) {
		return true
	}
	for _, skill := range job.Skills {
		if strings.Contains(strings.ToLower(skill), needle) {
			return true
		}
	}
	return false
}

// FindByID returns the listing with the given ID, or nil.
func FindByID(jobs []models.JobListing, id string) *models.JobListing {
	for i := range jobs {
		if jobs[i].ID == id {
			return &jobs[i]
		}
	}
	return nil
}

// FilterOptions are the distinct values available for the careers filter
// dropdowns, in first-seen order.
type FilterOptions struct {
	Departments []string `json:"departments"`
	Locations   []string `json:"locations"`
	Experiences []string `json:"experiences"`
	Types       []string `json:"types"`
}

// Options collects the distinct filterable values across the listings.
func Options(jobs []models.JobListing) FilterOptions {
	var opts FilterOptions
	seen := map[string]map[string]bool{
		"department": {},
		"location":   {},
		"experience": {},
		"type":       {},
	}
	add := func(kind, value string, dst *[]string) {
		if value == "" || seen[kind][value] {
			return
		}
		seen[kind][value] = true
		*dst = append(*dst, value)
	}
	for _, job := range jobs {
		add("department", job.Department, &opts.Departments)
		add("location", job.Location, &opts.Locations)
		add("experience", job.Experience, &opts.Experiences)
		add("type", job.Type, &opts.Types)
	}
	return opts
}
