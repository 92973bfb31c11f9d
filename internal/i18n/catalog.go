package i18n

var en = map[string]string{
	"app.title":            "tempo",
	"nav.projects":         "Projects",
	"nav.settings":         "Settings",
	"nav.logout":           "Log out",
	"projects.heading":     "Your projects",
	"projects.search":      "Search projects",
	"projects.create":      "Create project",
	"projects.name":        "Name",
	"projects.description": "Description",
	"projects.delete":      "Delete",
	"projects.empty":       "No projects yet. Create one to start tracking.",
	"entries.heading":      "Time entries",
	"entries.start":        "Start timer",
	"entries.stop":         "Stop timer",
	"entries.running":      "Timer running",
	"entries.manual":       "Add entry",
	"entries.combine":      "Combine selected",
	"entries.date":         "Date",
	"entries.from":         "Start",
	"entries.to":           "Stop",
	"entries.duration":     "Duration",
	"entries.total":        "Total worked time",
	"entries.empty":        "No time entries for this project.",
	"entries.export":       "Export PDF",
	"settings.heading":     "Settings",
	"settings.locale":      "Language",
	"settings.save":        "Save",
	"login.heading":        "Log in",
	"login.email":          "Email",
	"login.password":       "Password",
	"login.submit":         "Log in",
	"login.register":       "Register",
	"login.invalid":        "Invalid email or password.",
	"register.heading":     "Create account",
	"register.submit":      "Create account",
	"register.missing":     "Email and password are required.",
	"register.taken":       "An account with this email already exists.",
}

var de = map[string]string{
	"app.title":            "tempo",
	"nav.projects":         "Projekte",
	"nav.settings":         "Einstellungen",
	"nav.logout":           "Abmelden",
	"projects.heading":     "Deine Projekte",
	"projects.search":      "Projekte suchen",
	"projects.create":      "Projekt anlegen",
	"projects.name":        "Name",
	"projects.description": "Beschreibung",
	"projects.delete":      "Löschen",
	"projects.empty":       "Noch keine Projekte. Lege eines an, um loszulegen.",
	"entries.heading":      "Zeiteinträge",
	"entries.start":        "Timer starten",
	"entries.stop":         "Timer stoppen",
	"entries.running":      "Timer läuft",
	"entries.manual":       "Eintrag hinzufügen",
	"entries.combine":      "Auswahl zusammenführen",
	"entries.date":         "Datum",
	"entries.from":         "Beginn",
	"entries.to":           "Ende",
	"entries.duration":     "Dauer",
	"entries.total":        "Gesamte Arbeitszeit",
	"entries.empty":        "Keine Zeiteinträge für dieses Projekt.",
	"entries.export":       "PDF exportieren",
	"settings.heading":     "Einstellungen",
	"settings.locale":      "Sprache",
	"settings.save":        "Speichern",
	"login.heading":        "Anmelden",
	"login.email":          "E-Mail",
	"login.password":       "Passwort",
	"login.submit":         "Anmelden",
	"login.register":       "Registrieren",
	"login.invalid":        "Ungültige E-Mail oder ungültiges Passwort.",
	"register.heading":     "Konto erstellen",
	"register.submit":      "Konto erstellen",
	"register.missing":     "E-Mail und Passwort sind erforderlich.",
	"register.taken":       "Ein Konto mit dieser E-Mail existiert bereits.",
}
