package models

// BookingInput is the booking form as submitted by the client.
type BookingInput struct {
	Service     string `json:"service" binding:"required"`
	ServiceType string `json:"service_type"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Instruction string `json:"instruction"`
}

// BookingRequest is the wire body the remote booking endpoint expects.
// Metadata keys follow the endpoint's contract verbatim.
type BookingRequest struct {
	Category      string          `json:"category"`
	ServiceType   string          `json:"service_type"`
	RequestedSlot string          `json:"requested_slot"`
	ServiceCost   string          `json:"service_cost"`
	Metadata      BookingMetadata `json:"metadata"`
}

// BookingMetadata carries the free-form booking details.
type BookingMetadata struct {
	Instruction string `json:"instruction"`
	PhoneNumber string `json:"phone number"`
	Address     string `json:"address"`
}
