package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rithwika/career-advisor/internal/gateway"
	"github.com/rithwika/career-advisor/internal/llm"
	"github.com/rithwika/career-advisor/internal/types"
)

// fakeAdvisor implements Advisor with canned results.
type fakeAdvisor struct {
	mu           sync.Mutex
	result       *types.AnalysisResult
	analyzeErr   error
	insights     *types.MarketInsights
	insightsErr  error
	domains      []string
	analyzeCalls int
	gate         chan struct{}
}

func (f *fakeAdvisor) AnalyzeProfile(_ context.Context, _ gateway.ProfileInput) (*types.AnalysisResult, error) {
	f.mu.Lock()
	f.analyzeCalls++
	gate := f.gate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	if f.analyzeErr != nil {
		return nil, f.analyzeErr
	}
	return f.result, nil
}

func (f *fakeAdvisor) MarketInsights(_ context.Context, domain string) (*types.MarketInsights, error) {
	f.mu.Lock()
	f.domains = append(f.domains, domain)
	f.mu.Unlock()
	if f.insightsErr != nil {
		return nil, f.insightsErr
	}
	return f.insights, nil
}

func (f *fakeAdvisor) NewConversation(_ *types.AnalysisResult) llm.Chat {
	return nil
}

func sampleResult() *types.AnalysisResult {
	return &types.AnalysisResult{
		Summary:         "Strong backend candidate.",
		ExtractedSkills: []string{"Go", "SQL"},
		DomainStrength:  "Backend Development",
		ExperienceLevel: "Mid-Level",
		JobRecommendations: []types.JobRecommendation{
			{Role: "Backend Engineer", SkillsToLearn: []types.SkillGap{
				{Skill: "Kubernetes", LearningRoadmap: []types.LearningResource{{URL: "r1"}, {URL: "r2"}}},
			}},
			{Role: "Platform Engineer"},
			{Role: "Data Engineer"},
		},
	}
}

func loggedInApp(t *testing.T, advisor Advisor) *App {
	t.Helper()
	a := New(advisor)
	require.NoError(t, a.Login("Priya"))
	return a
}

func analyzedApp(t *testing.T) (*App, *fakeAdvisor) {
	t.Helper()
	advisor := &fakeAdvisor{result: sampleResult(), insights: &types.MarketInsights{Summary: "ok"}}
	a := loggedInApp(t, advisor)
	_, err := a.Analyze(context.Background(), gateway.SkillList([]string{"Go", "SQL"}))
	require.NoError(t, err)
	return a, advisor
}

func TestLogin(t *testing.T) {
	a := New(&fakeAdvisor{})

	assert.ErrorIs(t, a.Login("   "), ErrEmptyName)
	assert.Equal(t, PageLoggedOut, a.Page())

	require.NoError(t, a.Login("  Priya "))
	assert.Equal(t, PageHome, a.Page())
	user, ok := a.User()
	require.True(t, ok)
	assert.Equal(t, "Priya", user.Name)
}

func TestNavigate_GuardsWithoutResult(t *testing.T) {
	a := loggedInApp(t, &fakeAdvisor{})

	tests := []struct {
		target   Page
		expected Page
	}{
		{PageHome, PageHome},
		{PageDashboard, PageDashboard},
		{PageRoles, PageDashboard},
		{PageRoadmap, PageDashboard},
		{PageProfile, PageDashboard},
		{PageChat, PageDashboard},
		{PageInsights, PageDashboard},
	}

	for _, tt := range tests {
		t.Run(string(tt.target), func(t *testing.T) {
			assert.Equal(t, tt.expected, a.Navigate(tt.target))
			assert.Equal(t, tt.expected, a.Page())
		})
	}
}

func TestNavigate_GuardsWithResultWithoutJob(t *testing.T) {
	a, _ := analyzedApp(t)

	assert.Equal(t, PageRoles, a.Navigate(PageRoadmap))
	assert.Equal(t, PageRoles, a.Navigate(PageProfile))
	assert.Equal(t, PageChat, a.Navigate(PageChat))
	assert.Equal(t, PageInsights, a.Navigate(PageInsights))
}

func TestNavigate_JobDependentPagesAfterSelection(t *testing.T) {
	a, _ := analyzedApp(t)
	require.NoError(t, a.SelectJob(0))

	assert.Equal(t, PageProfile, a.Navigate(PageProfile))
	assert.Equal(t, PageRoadmap, a.Navigate(PageRoadmap))
}

func TestNavigate_LoggedOutAlwaysRedirects(t *testing.T) {
	a := New(&fakeAdvisor{})

	assert.Equal(t, PageLoggedOut, a.Navigate(PageDashboard))
	assert.Equal(t, PageLoggedOut, a.Navigate(PageRoadmap))
}

func TestNavigate_UnknownPageIsIgnored(t *testing.T) {
	a := loggedInApp(t, &fakeAdvisor{})
	a.Navigate(PageDashboard)

	assert.Equal(t, PageDashboard, a.Navigate(Page("settings")))
}

func TestAnalyze_SuccessStoresResultAndAdvances(t *testing.T) {
	advisor := &fakeAdvisor{result: sampleResult()}
	a := loggedInApp(t, advisor)

	result, err := a.Analyze(context.Background(), gateway.SkillList([]string{"Go", "SQL"}))
	require.NoError(t, err)
	assert.Len(t, result.JobRecommendations, 3)

	assert.Equal(t, PageRoles, a.Page())
	stored, ok := a.Result()
	require.True(t, ok)
	assert.Same(t, result, stored)
}

func TestAnalyze_FailureStoresNothing(t *testing.T) {
	advisor := &fakeAdvisor{analyzeErr: &gateway.AnalysisError{Cause: errors.New("schema violation")}}
	a := loggedInApp(t, advisor)

	_, err := a.Analyze(context.Background(), gateway.SkillList([]string{"Go"}))

	var analysisErr *gateway.AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, PageDashboard, a.Page())
	_, ok := a.Result()
	assert.False(t, ok)
}

func TestAnalyze_RequiresLogin(t *testing.T) {
	a := New(&fakeAdvisor{result: sampleResult()})

	_, err := a.Analyze(context.Background(), gateway.SkillList([]string{"Go"}))
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestAnalyze_SingleFlight(t *testing.T) {
	gate := make(chan struct{})
	advisor := &fakeAdvisor{result: sampleResult(), gate: gate}
	a := loggedInApp(t, advisor)

	done := make(chan error, 1)
	go func() {
		_, err := a.Analyze(context.Background(), gateway.SkillList([]string{"Go"}))
		done <- err
	}()

	require.Eventually(t, a.Analyzing, time.Second, time.Millisecond)

	_, err := a.Analyze(context.Background(), gateway.SkillList([]string{"SQL"}))
	assert.ErrorIs(t, err, ErrAnalysisInFlight)

	close(gate)
	require.NoError(t, <-done)
	assert.Equal(t, 1, advisor.analyzeCalls)
}

func TestAnalyze_DiscardedWhenLogoutRunsMidFlight(t *testing.T) {
	gate := make(chan struct{})
	advisor := &fakeAdvisor{result: sampleResult(), gate: gate}
	a := loggedInApp(t, advisor)

	done := make(chan error, 1)
	go func() {
		_, err := a.Analyze(context.Background(), gateway.SkillList([]string{"Go"}))
		done <- err
	}()

	require.Eventually(t, a.Analyzing, time.Second, time.Millisecond)
	a.Logout()
	close(gate)

	assert.ErrorIs(t, <-done, ErrAnalysisAbandoned)
	_, ok := a.Result()
	assert.False(t, ok)
	assert.Equal(t, PageLoggedOut, a.Page())
}

func TestAnalyze_DiscardedWhenResetRunsMidFlight(t *testing.T) {
	gate := make(chan struct{})
	advisor := &fakeAdvisor{result: sampleResult(), gate: gate}
	a := loggedInApp(t, advisor)

	done := make(chan error, 1)
	go func() {
		_, err := a.Analyze(context.Background(), gateway.SkillList([]string{"Go"}))
		done <- err
	}()

	require.Eventually(t, a.Analyzing, time.Second, time.Millisecond)
	a.Reset()
	close(gate)

	assert.ErrorIs(t, <-done, ErrAnalysisAbandoned)
	_, ok := a.Result()
	assert.False(t, ok)
	assert.Equal(t, PageDashboard, a.Page())
}

func TestAnalyze_ReplacesResultWholesale(t *testing.T) {
	a, advisor := analyzedApp(t)
	require.NoError(t, a.SelectJob(0))

	second := sampleResult()
	second.Summary = "Second run."
	advisor.result = second

	result, err := a.Analyze(context.Background(), gateway.SkillList([]string{"Rust"}))
	require.NoError(t, err)
	assert.Equal(t, "Second run.", result.Summary)

	_, ok := a.SelectedJob()
	assert.False(t, ok, "re-analysis clears the selected job")
}

func TestReset_PreservesCompletedResources(t *testing.T) {
	a, _ := analyzedApp(t)
	require.NoError(t, a.SelectJob(0))
	a.ToggleResource("r1")

	a.Reset()

	_, hasResult := a.Result()
	assert.False(t, hasResult)
	_, hasJob := a.SelectedJob()
	assert.False(t, hasJob)
	assert.Equal(t, PageDashboard, a.Page())
	assert.Contains(t, a.CompletedResources(), "r1")
}

func TestLogout_ClearsEverything(t *testing.T) {
	a, _ := analyzedApp(t)
	a.ToggleResource("r1")
	a.ToggleResource("r2")

	a.Logout()

	assert.Equal(t, PageLoggedOut, a.Page())
	_, hasUser := a.User()
	assert.False(t, hasUser)
	_, hasResult := a.Result()
	assert.False(t, hasResult)
	assert.Empty(t, a.CompletedResources())
}

func TestSelectJob(t *testing.T) {
	a, _ := analyzedApp(t)

	require.NoError(t, a.SelectJob(0))
	assert.Equal(t, PageRoadmap, a.Page())
	job, ok := a.SelectedJob()
	require.True(t, ok)
	assert.Equal(t, "Backend Engineer", job.Role)

	// Selecting a different job overwrites outright.
	require.NoError(t, a.SelectJob(2))
	job, _ = a.SelectedJob()
	assert.Equal(t, "Data Engineer", job.Role)

	assert.ErrorIs(t, a.SelectJob(7), ErrNoSuchJob)
}

func TestSelectJob_WithoutResult(t *testing.T) {
	a := loggedInApp(t, &fakeAdvisor{})
	assert.ErrorIs(t, a.SelectJob(0), ErrNoAnalysis)
}

func TestInsights_UsesDomainStrength(t *testing.T) {
	a, advisor := analyzedApp(t)

	_, err := a.Insights(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Backend Development"}, advisor.domains)

	// Never cached: a second call reaches the gateway again.
	_, err = a.Insights(context.Background())
	require.NoError(t, err)
	assert.Len(t, advisor.domains, 2)
}

func TestInsights_WithoutResultDelegatesEmptyDomain(t *testing.T) {
	advisor := &fakeAdvisor{insightsErr: &gateway.PreconditionError{Op: "market insights", Message: "domain is empty"}}
	a := loggedInApp(t, advisor)

	_, err := a.Insights(context.Background())

	var precondition *gateway.PreconditionError
	require.ErrorAs(t, err, &precondition)
	assert.Equal(t, []string{""}, advisor.domains)
}

func TestChatSession_ReusedUntilResultChanges(t *testing.T) {
	a, advisor := analyzedApp(t)

	first, err := a.ChatSession()
	require.NoError(t, err)
	again, err := a.ChatSession()
	require.NoError(t, err)
	assert.Same(t, first, again)

	// A new analysis discards the old session.
	advisor.result = sampleResult()
	_, err = a.Analyze(context.Background(), gateway.SkillList([]string{"Go"}))
	require.NoError(t, err)

	fresh, err := a.ChatSession()
	require.NoError(t, err)
	assert.NotSame(t, first, fresh)
	assert.Len(t, fresh.Messages(), 1, "fresh session starts from the greeting")
}

func TestChatSession_RequiresResult(t *testing.T) {
	a := loggedInApp(t, &fakeAdvisor{})

	_, err := a.ChatSession()
	assert.ErrorIs(t, err, ErrNoAnalysis)
}

func TestProgress(t *testing.T) {
	a, _ := analyzedApp(t)
	require.NoError(t, a.SelectJob(0))

	assert.Equal(t, 0, a.JobProgress())
	a.ToggleResource("r1")
	assert.Equal(t, 50, a.JobProgress())
	a.ToggleResource("r2")
	assert.Equal(t, 100, a.JobProgress())
	assert.Equal(t, 100, a.OverallProgress())
}

func TestOverallProgress_WithoutResult(t *testing.T) {
	a := loggedInApp(t, &fakeAdvisor{})
	assert.Equal(t, 100, a.OverallProgress())
}

func TestToggleTheme(t *testing.T) {
	a := New(&fakeAdvisor{})

	assert.Equal(t, ThemeLight, a.Theme())
	assert.Equal(t, ThemeDark, a.ToggleTheme())
	assert.Equal(t, ThemeLight, a.ToggleTheme())
}
