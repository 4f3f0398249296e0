package models

// ProviderRequestInput is the onboarding form as collected from the client.
// Document fields hold refs produced by the document pipeline (data URLs or
// uploaded asset URLs).
type ProviderRequestInput struct {
	Services          []string `json:"services"`
	ContactNumber     string   `json:"contact_number"`
	ServiceCity       string   `json:"service_city"`
	AccountHolderName string   `json:"account_holder_name"`
	AccountNumber     string   `json:"account_number"`
	IFSCCode          string   `json:"ifsc_code"`
	SelfieRef         string   `json:"selfie_ref"`
	AadharRef         string   `json:"aadhar_ref"`
	PanRef            string   `json:"pan_ref"`
}

// ProviderRequest is the wire body the service-provider endpoint expects.
// The account and metadata keys (including the doubled space in
// "contact  number" and trailing space in "service city ") are the
// endpoint's contract and must not be normalized.
type ProviderRequest struct {
	Selfie         string            `json:"selfie"`
	AadharCard     string            `json:"aadhar_card"`
	PanCard        string            `json:"pan_card"`
	AccountDetails AccountDetails    `json:"account_details"`
	Services       map[string]string `json:"services"`
	Metadata       ProviderMetadata  `json:"metadata"`
}

// AccountDetails carries the bank details for payouts.
type AccountDetails struct {
	AccountHolderName string `json:"account holder name"`
	AccountNumber     string `json:"account number"`
	IFSCCode          string `json:"ifsc code"`
}

// ProviderMetadata carries contact details for the onboarding request.
type ProviderMetadata struct {
	ContactNumber string `json:"contact  number"`
	ServiceCity   string `json:"service city "`
}

// ProviderStatusResponse is the status read-back shape. ServiceProvider is
// nil when no request has been submitted yet.
type ProviderStatusResponse struct {
	ServiceProvider *ProviderStatus `json:"service_provider,omitempty"`
}

// ProviderStatus is the server-owned onboarding state.
type ProviderStatus struct {
	Status      string            `json:"status,omitempty"`
	RequestedAt string            `json:"requested_at,omitempty"`
	ApprovedAt  string            `json:"approved_at,omitempty"`
	Services    map[string]string `json:"services,omitempty"`
}
