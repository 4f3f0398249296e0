package models

// JobListing is a static careers posting. Listings are fixture data loaded
// at startup and immutable for the life of the process.
type JobListing struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Department       string   `json:"department"`
	Location         string   `json:"location"`
	Type             string   `json:"type"`
	Experience       string   `json:"experience"`
	Salary           string   `json:"salary"`
	Skills           []string `json:"skills"`
	Description      string   `json:"description"`
	Requirements     []string `json:"requirements"`
	Responsibilities []string `json:"responsibilities"`
	PostedDate       string   `json:"posted_date"`
	IsRemote         bool     `json:"is_remote"`
}

// JobFilters are the careers view filter fields. "all" (or empty) matches
// everything for the keyed fields; Search is a free-text match over title,
// description and skills.
type JobFilters struct {
	Department string `form:"department" json:"department"`
	Location   string `form:"location" json:"location"`
	Experience string `form:"experience" json:"experience"`
	Type       string `form:"type" json:"type"`
	Search     string `form:"search" json:"search"`
}
