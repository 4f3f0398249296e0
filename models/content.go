package models

// ServiceOffering is a catalog entry on the landing page.
type ServiceOffering struct {
	Title         string   `json:"title"`
	SubServices   []string `json:"sub_services"`
	StartingPrice string   `json:"starting_price"`
	Image         string   `json:"image,omitempty"`
}

// Testimonial is a customer review shown on the landing page.
type Testimonial struct {
	Name     string `json:"name"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Service  string `json:"service"`
	Image    string `json:"image,omitempty"`
	Location string `json:"location"`
}

// Stat is a headline figure shown on the landing page.
type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FAQ is a frequently-asked question entry.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
