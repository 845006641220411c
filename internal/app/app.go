// Package app holds the per-session application state and enforces the
// legal transitions between pages. It is the single writer of the
// analysis result and the selected job; every mutation goes through a
// named operation so the transition invariants live in one place.
package app

import (
	"context"
	"errors"
	"sync"

	"github.com/rithwika/career-advisor/internal/chat"
	"github.com/rithwika/career-advisor/internal/gateway"
	"github.com/rithwika/career-advisor/internal/llm"
	"github.com/rithwika/career-advisor/internal/progress"
	"github.com/rithwika/career-advisor/internal/types"
)

// Operation rejections. Navigation guard violations are not errors:
// they surface as the corrected page, silently.
var (
	// ErrEmptyName is returned when login is attempted with a blank name.
	ErrEmptyName = errors.New("login name is empty")
	// ErrNotLoggedIn is returned when an operation requires a session user.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrAnalysisInFlight is returned when an analysis is already outstanding.
	ErrAnalysisInFlight = errors.New("an analysis is already in progress")
	// ErrAnalysisAbandoned is returned when logout or reset ran while the
	// gateway call was outstanding; the in-flight result is discarded.
	ErrAnalysisAbandoned = errors.New("analysis abandoned by logout or reset")
	// ErrNoAnalysis is returned when an operation requires a stored result.
	ErrNoAnalysis = errors.New("no analysis result available")
	// ErrNoSuchJob is returned for a job selection index out of range.
	ErrNoSuchJob = errors.New("no job recommendation at that index")
)

// Advisor is the model-gateway surface the app depends on.
type Advisor interface {
	AnalyzeProfile(ctx context.Context, input gateway.ProfileInput) (*types.AnalysisResult, error)
	MarketInsights(ctx context.Context, domain string) (*types.MarketInsights, error)
	NewConversation(result *types.AnalysisResult) llm.Chat
}

// App is the root of state ownership for one session.
type App struct {
	mu      sync.Mutex
	advisor Advisor

	page        Page
	user        *types.User
	result      *types.AnalysisResult
	selectedJob *types.JobRecommendation
	completed   *progress.Tracker
	theme       Theme
	analyzing   bool
	analysisGen uint64

	session       *chat.Session
	sessionResult *types.AnalysisResult
}

// New creates a logged-out app bound to an advisor.
func New(advisor Advisor) *App {
	return &App{
		advisor:   advisor,
		page:      PageLoggedOut,
		completed: progress.NewTracker(),
		theme:     ThemeLight,
	}
}

// Login creates the session identity and moves to Home. The name is
// trimmed; an empty name is rejected.
func (a *App) Login(name string) error {
	user, ok := types.NewUser(name)
	if !ok {
		return ErrEmptyName
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = &user
	a.page = PageHome
	return nil
}

// Logout clears the identity, the analysis result, the selected job,
// and the completed-resource set, returning to LoggedOut. It is the
// only operation permitted to clear the completed set.
func (a *App) Logout() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = nil
	a.clearAnalysisLocked()
	a.completed.Clear()
	a.page = PageLoggedOut
}

// Navigate attempts to move to target and returns the effective page.
// Guard violations are corrective redirects, not errors: a
// result-dependent page without a result lands on Dashboard, a
// job-dependent page without a selected job lands on RoleSelection.
func (a *App) Navigate(target Page) Page {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !target.Valid() {
		return a.page
	}
	a.page = a.guardLocked(target)
	return a.page
}

func (a *App) guardLocked(target Page) Page {
	if a.user == nil {
		return PageLoggedOut
	}
	if target == PageLoggedOut {
		// Only logout leaves the session; steer a stray request home.
		return PageHome
	}
	if target.RequiresResult() && a.result == nil {
		return PageDashboard
	}
	if target.RequiresJob() && a.selectedJob == nil {
		return PageRoles
	}
	return target
}

// Analyze submits the profile input to the model gateway. Re-analysis
// replaces any stored result wholesale; nothing is merged. Calls are
// single-flight per session. On success the result is stored and the
// page advances to RoleSelection; on failure nothing is stored and the
// page stays on Dashboard.
func (a *App) Analyze(ctx context.Context, input gateway.ProfileInput) (*types.AnalysisResult, error) {
	a.mu.Lock()
	if a.user == nil {
		a.mu.Unlock()
		return nil, ErrNotLoggedIn
	}
	if a.analyzing {
		a.mu.Unlock()
		return nil, ErrAnalysisInFlight
	}
	a.analyzing = true
	a.clearAnalysisLocked()
	gen := a.analysisGen
	a.page = PageDashboard
	a.mu.Unlock()

	// The gateway call suspends without holding the state lock, so the
	// session stays navigable while the call is outstanding.
	result, err := a.advisor.AnalyzeProfile(ctx, input)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.analyzing = false
	if err != nil {
		return nil, err
	}
	if a.analysisGen != gen {
		// Logout or Reset ran while the call was outstanding. The
		// session decided to abandon this analysis; storing the result
		// now would resurrect state the user already discarded.
		return nil, ErrAnalysisAbandoned
	}

	a.result = result
	a.page = PageRoles
	return result, nil
}

// Analyzing reports whether an analysis call is outstanding.
func (a *App) Analyzing() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.analyzing
}

// Reset discards the stored result and the selected job to start a new
// analysis. The completed-resource set is deliberately preserved:
// resource identifiers may recur across runs, and historical completion
// marks outlive any one analysis.
func (a *App) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.clearAnalysisLocked()
	if a.user != nil {
		a.page = PageDashboard
	}
}

func (a *App) clearAnalysisLocked() {
	a.analysisGen++
	a.result = nil
	a.selectedJob = nil
	a.session = nil
	a.sessionResult = nil
}

// SelectJob picks the recommendation at index and advances to Roadmap.
// Selecting a different job overwrites the previous selection outright.
func (a *App) SelectJob(index int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.result == nil {
		return ErrNoAnalysis
	}
	job, ok := a.result.Job(index)
	if !ok {
		return ErrNoSuchJob
	}
	a.selectedJob = &job
	a.page = PageRoadmap
	return nil
}

// Insights fetches market insights for the stored result's domain.
// Never cached: each call reaches the gateway, which fails fast when
// there is no domain to ask about.
func (a *App) Insights(ctx context.Context) (*types.MarketInsights, error) {
	a.mu.Lock()
	domain := ""
	if a.result != nil {
		domain = a.result.DomainStrength
	}
	a.mu.Unlock()

	return a.advisor.MarketInsights(ctx, domain)
}

// ChatSession returns the chat session for the stored result,
// constructing a fresh one whenever the result changed since the last
// call. The old history is never stitched across contexts.
func (a *App) ChatSession() (*chat.Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.result == nil {
		return nil, ErrNoAnalysis
	}
	if a.session == nil || a.sessionResult != a.result {
		a.session = chat.NewSession(a.advisor.NewConversation(a.result))
		a.sessionResult = a.result
	}
	return a.session, nil
}

// ToggleResource flips completion for a learning-resource identifier.
func (a *App) ToggleResource(resourceID string) {
	a.completed.Toggle(resourceID)
}

// OverallProgress computes completion across every skill gap in the
// stored result. No result means no roadmap, which is vacuously complete.
func (a *App) OverallProgress() int {
	a.mu.Lock()
	result := a.result
	a.mu.Unlock()
	return a.completed.Completion(result.AllSkillGaps())
}

// JobProgress computes completion for the selected job's skill gaps.
func (a *App) JobProgress() int {
	a.mu.Lock()
	var gaps []types.SkillGap
	if a.selectedJob != nil {
		gaps = a.selectedJob.SkillsToLearn
	}
	a.mu.Unlock()
	return a.completed.Completion(gaps)
}

// CompletedResources returns the completed resource ids.
func (a *App) CompletedResources() []string {
	return a.completed.Completed()
}

// ToggleTheme flips between light and dark and returns the new theme.
func (a *App) ToggleTheme() Theme {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.theme == ThemeLight {
		a.theme = ThemeDark
	} else {
		a.theme = ThemeLight
	}
	return a.theme
}

// Page returns the current page.
func (a *App) Page() Page {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.page
}

// User returns the session identity, comma-ok.
func (a *App) User() (types.User, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.user == nil {
		return types.User{}, false
	}
	return *a.user, true
}

// Result returns the stored analysis result, comma-ok. The result is
// immutable once stored; callers must not modify it.
func (a *App) Result() (*types.AnalysisResult, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.result == nil {
		return nil, false
	}
	return a.result, true
}

// SelectedJob returns the selected recommendation, comma-ok.
func (a *App) SelectedJob() (types.JobRecommendation, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.selectedJob == nil {
		return types.JobRecommendation{}, false
	}
	return *a.selectedJob, true
}

// Theme returns the current theme.
func (a *App) Theme() Theme {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.theme
}
