package entities

import "time"

// Participant is a registered attendee on the roster. Token is the opaque
// check-in credential rendered externally as a QR code; possessing it is
// sufficient to check the participant in.
type Participant struct {
	ID        string
	Name      string
	NIK       string
	Token     string
	Attended  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Summary aggregates the roster for the dashboard.
type Summary struct {
	Total    int64
	Attended int64
	Pending  int64
	Rate     float64 // attendance percentage, 0..100
}
