package app

// Page identifies a navigation state.
type Page string

// Navigation states
const (
	PageLoggedOut Page = "logged_out"
	PageHome      Page = "home"
	PageDashboard Page = "dashboard"
	PageRoles     Page = "role_selection"
	PageRoadmap   Page = "roadmap"
	PageProfile   Page = "profile"
	PageChat      Page = "chat"
	PageInsights  Page = "insights"
)

// Valid reports whether p names a known page.
func (p Page) Valid() bool {
	switch p {
	case PageLoggedOut, PageHome, PageDashboard, PageRoles,
		PageRoadmap, PageProfile, PageChat, PageInsights:
		return true
	default:
		return false
	}
}

// RequiresResult reports whether p depends on a stored analysis result.
func (p Page) RequiresResult() bool {
	switch p {
	case PageRoles, PageRoadmap, PageProfile, PageChat, PageInsights:
		return true
	default:
		return false
	}
}

// RequiresJob reports whether p depends on a selected job.
func (p Page) RequiresJob() bool {
	return p == PageRoadmap || p == PageProfile
}

// Theme is the UI color scheme.
type Theme string

// Themes
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)
