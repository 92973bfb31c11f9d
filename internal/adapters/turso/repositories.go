package turso

import "database/sql"

// Repositories bundles all turso-backed repositories sharing one
// connection pool.
type Repositories struct {
	Users       *UserRepository
	Projects    *ProjectRepository
	TimeEntries *TimeEntryRepository
}

func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(db),
		Projects:    NewProjectRepository(db),
		TimeEntries: NewTimeEntryRepository(db),
	}
}
