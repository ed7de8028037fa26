package models

// ErrorResponse is the common error body (swagger).
type ErrorResponse struct {
	Error string `json:"error" example:"Initials are required"`
}

// MessageResponse is the common success body for delete/logout style
// endpoints (swagger).
type MessageResponse struct {
	Message string `json:"message" example:"Unit deleted successfully"`
}

// ValidateSessionResponse is used in @Success for validate session (swagger).
type ValidateSessionResponse struct {
	Valid bool   `json:"valid" example:"true"`
	Email string `json:"email,omitempty"`
}

// BatchEntryResponse is used in @Success for the batch entry save (swagger).
type BatchEntryResponse struct {
	LogDate       string             `json:"log_date"`
	ScheduledTime string             `json:"scheduled_time"`
	Results       []BatchEntryResult `json:"results"`
	Saved         int                `json:"saved"`
	Skipped       int                `json:"skipped"`
	Failed        int                `json:"failed"`
}
