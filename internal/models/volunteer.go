package models

// Volunteer is a roster member assigned to a unit. Roster CRUD lives
// outside this service; dispatch only reads approved, actively assigned
// volunteers for staffing counts and notification fan-out.
type Volunteer struct {
	ID            int64  `json:"id"`
	FullName      string `json:"full_name"`
	ContactNumber string `json:"contact_number,omitempty"`
	Email         string `json:"email,omitempty"`
}

// UnitSummary is a unit row joined with its approved volunteer count,
// as listed for manual selection.
type UnitSummary struct {
	Unit
	VolunteerCount int `json:"volunteer_count"`
}
