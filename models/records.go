package models

// ServiceRecord is a read-only, server-owned booked service. Stage and
// CompletedAt drive the locally derived display status; nothing here is
// persisted client-side.
type ServiceRecord struct {
	ServiceID     string `json:"service_id,omitempty"`
	Category      string `json:"category,omitempty"`
	ServiceType   string `json:"service_type,omitempty"`
	RequestedSlot string `json:"requested_slot,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
	CompletedAt   string `json:"completed_at,omitempty"`
	Stage         string `json:"stage,omitempty"`
	ServiceCost   string `json:"service_cost,omitempty"`
}
