package holiday

import "time"

// Holiday maps a calendar date to a public holiday name.
type Holiday struct {
	Date      time.Time
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
