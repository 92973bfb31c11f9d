package domain

import "time"

// Project groups time entries under a name. The owning user is fixed at
// creation and never changes afterwards.
type Project struct {
	ID          string
	UserID      string
	Name        string
	Description *string
	CreatedAt   time.Time
}
