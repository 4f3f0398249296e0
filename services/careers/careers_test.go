package careers_test

import (
	"testing"

	"servecure/models"
	"servecure/services/careers"
)

func sampleJobs() []models.JobListing {
	return []models.JobListing{
		{
			ID: "JOB001", Title: "Senior Backend Engineer", Department: "Engineering",
			Location: "Bengaluru, Karnataka", Experience: "5+ years", Type: "Full-time",
			Skills: []string{"Go", "PostgreSQL", "Kubernetes"}, Description: "Build marketplace services.",
		},
		{
			ID: "JOB002", Title: "Product Designer", Department: "Design",
			Location: "Mumbai, Maharashtra", Experience: "3-5 years", Type: "Full-time",
			Skills: []string{"Figma", "Prototyping"}, Description: "Design booking flows.",
		},
		{
			ID: "JOB003", Title: "Data Analyst", Department: "Data & Analytics",
			Location: "Bengaluru, Karnataka", Experience: "1-3 years", Type: "Contract",
			Skills: []string{"SQL", "Python"}, Description: "Analyse service demand.",
		},
	}
}

func ids(jobs []models.JobListing) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.ID
	}
	return out
}

func TestFilterFields(t *testing.T) {
	jobs := sampleJobs()
	tests := []struct {
		name    string
		filters models.JobFilters
		want    []string
	}{
		{"no filters", models.JobFilters{}, []string{"JOB001", "JOB002", "JOB003"}},
		{"all sentinels", models.JobFilters{Department: "all", Location: "all", Experience: "all", Type: "all"}, []string{"JOB001", "JOB002", "JOB003"}},
		{"department", models.JobFilters{Department: "Design"}, []string{"JOB002"}},
		{"location substring", models.JobFilters{Location: "Bengaluru"}, []string{"JOB001", "JOB003"}},
		{"experience", models.JobFilters{Experience: "5+ years"}, []string{"JOB001"}},
		{"type", models.JobFilters{Type: "Contract"}, []string{"JOB003"}},
		{"search title", models.JobFilters{Search: "designer"}, []string{"JOB002"}},
		{"search skill", models.JobFilters{Search: "sql"}, []string{"JOB001", "JOB003"}},
		{"search description", models.JobFilters{Search: "demand"}, []string{"JOB003"}},
		{"combined narrows", models.JobFilters{Location: "Bengaluru", Type: "Full-time"}, []string{"JOB001"}},
		{"no match", models.JobFilters{Department: "Engineering", Type: "Contract"}, []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(careers.Filter(jobs, tc.filters))
			if len(got) != len(tc.want) {
				t.Fatalf("Filter = %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("Filter = %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	jobs := sampleJobs()
	careers.Filter(jobs, models.JobFilters{Department: "Design"})
	if len(jobs) != 3 || jobs[0].ID != "JOB001" {
		t.Fatalf("Filter mutated its input: %v", ids(jobs))
	}
}

func TestFindByID(t *testing.T) {
	jobs := sampleJobs()
	if job := careers.FindByID(jobs, "JOB002"); job == nil || job.Title != "Product Designer" {
		t.Fatalf("FindByID(JOB002) = %+v", job)
	}
	if job := careers.FindByID(jobs, "JOB999"); job != nil {
		t.Fatalf("FindByID(JOB999) = %+v, want nil", job)
	}
}

func TestOptionsDistinctFirstSeen(t *testing.T) {
	opts := careers.Options(sampleJobs())
	wantDepts := []string{"Engineering", "Design", "Data & Analytics"}
	if len(opts.Departments) != len(wantDepts) {
		t.Fatalf("Departments = %v, want %v", opts.Departments, wantDepts)
	}
	for i := range wantDepts {
		if opts.Departments[i] != wantDepts[i] {
			t.Fatalf("Departments = %v, want %v", opts.Departments, wantDepts)
		}
	}
	if len(opts.Locations) != 2 {
		t.Errorf("Locations = %v, want two distinct values", opts.Locations)
	}
	if len(opts.Types) != 2 {
		t.Errorf("Types = %v, want two distinct values", opts.Types)
	}
}
