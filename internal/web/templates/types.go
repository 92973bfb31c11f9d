package templates

// ProjectView is a project prepared for rendering.
type ProjectView struct {
	ID          string
	Name        string
	Description string
	CreatedAt   string
}

// ProjectsData feeds the project list page.
type ProjectsData struct {
	Locale   string
	Query    string
	Projects []ProjectView
}

// EntryView is a time entry prepared for rendering.
type EntryView struct {
	ID       string
	Date     string
	Start    string
	Stop     string
	Duration string
	Running  bool
}

// EntriesData feeds the time entries page for one project.
type EntriesData struct {
	Locale  string
	Project ProjectView
	Entries []EntryView
	Total   string
	Running *EntryView
}

// SettingsData feeds the settings page.
type SettingsData struct {
	Locale  string
	Locales []string
}

// AuthData feeds the login and register pages.
type AuthData struct {
	Locale string
	Error  string
}
