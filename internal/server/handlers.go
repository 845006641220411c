package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/rithwika/career-advisor/internal/app"
	"github.com/rithwika/career-advisor/internal/export"
	"github.com/rithwika/career-advisor/internal/gateway"
	"github.com/rithwika/career-advisor/internal/ingestion"
	"github.com/rithwika/career-advisor/internal/server/middleware"
	"github.com/rithwika/career-advisor/internal/types"
)

// LoginResponse represents the response for /login
type LoginResponse struct {
	Token string `json:"token"`
	Page  string `json:"page"`
	Name  string `json:"name"`
}

// StateResponse is the full session snapshot for /state
type StateResponse struct {
	Page        string                   `json:"page"`
	Theme       string                   `json:"theme"`
	Name        string                   `json:"name,omitempty"`
	Analyzing   bool                     `json:"analyzing"`
	Result      *types.AnalysisResult    `json:"result,omitempty"`
	SelectedJob *types.JobRecommendation `json:"selectedJob,omitempty"`
	Progress    int                      `json:"progress"`
}

// NavigateRequest represents the request body for /navigate
type NavigateRequest struct {
	Page string `json:"page"`
}

// SelectJobRequest represents the request body for /jobs/select
type SelectJobRequest struct {
	Index int `json:"index"`
}

// ToggleResourceRequest represents the request body for /resources/toggle
type ToggleResourceRequest struct {
	ResourceID string `json:"resourceId"`
}

// ChatRequest represents the request body for /chat
type ChatRequest struct {
	Message string `json:"message"`
}

// ProgressResponse represents the response for /progress
type ProgressResponse struct {
	Overall   int      `json:"overall"`
	Job       int      `json:"job"`
	Completed []string `json:"completed"`
}

// sessionApp resolves the App for the authenticated session.
func (s *Server) sessionApp(w http.ResponseWriter, r *http.Request) (*app.App, bool) {
	sessionID, err := middleware.GetSessionID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	a, ok := s.sessions.Get(sessionID)
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "Session expired or logged out")
		return nil, false
	}
	return a, true
}

// handleLogin creates a session and returns its signed token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Name is required")
		return
	}

	a := app.New(s.advisor)
	if err := a.Login(req.Name); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	sessionID := s.sessions.Create(a)
	token, err := s.tokens.GenerateToken(sessionID)
	if err != nil {
		s.sessions.Delete(sessionID)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create session token")
		return
	}

	user, _ := a.User()
	s.jsonResponse(w, http.StatusCreated, LoginResponse{
		Token: token,
		Page:  string(a.Page()),
		Name:  user.Name,
	})
}

// handleLogout tears the session down entirely.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	sessionID, err := middleware.GetSessionID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if a, ok := s.sessions.Get(sessionID); ok {
		a.Logout()
		s.sessions.Delete(sessionID)
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

// handleState returns the full session snapshot.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	a, ok := s.sessionApp(w, r)
	if !ok {
		return
	}

	resp := StateResponse{
		Page:      string(a.Page()),
		Theme:     string(a.Theme()),
		Analyzing: a.Analyzing(),
		Progress:  a.OverallProgress(),
	}
	if user, ok := a.User(); ok {
		resp.Name = user.Name
	}
	if result, ok := a.Result(); ok {
		resp.Result = result
	}
	if job, ok := a.SelectedJob(); ok {
		resp.SelectedJob = &job
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleNavigate requests a page change. A guarded target comes back as
// the corrective page in the response, never as an error.
func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	a, ok := s.sessionApp(w, r)
	if !ok {
		return
	}

	var req NavigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	effective := a.Navigate(app.Page(req.Page))
	s.jsonResponse(w, http.StatusOK, map[string]string{"page": string(effective)})
}

// handleAnalyze runs an analysis over resume text or a skill list.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	a, ok := s.sessionApp(w, r)
	if !ok {
		return
	}

	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analyze request")
		return
	}
	if (req.Text == "") == (len(req.Skills) == 0) {
		s.errorResponse(w, http.StatusBadRequest, "Exactly one of text or skills is required")
		return
	}

	var input gateway.ProfileInput
	if req.Text != "" {
		input = gateway.ResumeText(req.Text)
	} else {
		input = gateway.SkillList(req.Skills)
	}

	s.runAnalysis(w, r, a, input)
}

// handleAnalyzeUpload runs an analysis over an uploaded resume document.
func (s *Server) handleAnalyzeUpload(w http.ResponseWriter, r *http.Request) {
	a, ok := s.sessionApp(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(ingestion.MaxDocumentBytes + 4096); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "A file field is required")
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = ingestion.MIMEForPath(header.Filename)
	}

	payload, err := ingestion.Read(file, mimeType)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.runAnalysis(w, r, a, gateway.ResumeDocument(payload.Data, payload.MIMEType))
}

func (s *Server) runAnalysis(w http.ResponseWriter, r *http.Request, a *app.App, input gateway.ProfileInput) {
	result, err := a.Analyze(r.Context(), input)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"page":   string(a.Page()),
		"result": result,
	})
}

// handleReset discards the current analysis.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	a, ok := s.sessionApp(w, r)
	if !ok {
		return
	}

	a.Reset()
	s.jsonResponse(w, http.StatusOK, map[string]string{"page": string(a.Page())})
}

// handleSelectJob picks a recommended job by index.
func (s *Server) handleSelectJob(w http.ResponseWriter, r *http.Request) {
	a, ok := s.sessionApp(w, r)
	if !ok {
		return
	}

	var req SelectJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := a.SelectJob(req.Index); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	job, _ := a.SelectedJob()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"page": string(a.Page()),
		"job":  job,
	})
}

// handleInsights fetches a fresh market snapshot for the stored domain.
func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	a, ok := s.sessionApp(w, r)
	if !ok {
		return
	}

	insights, err := a.Insights(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, insights)
}

// handleToggleResource flips completion for a learning resource.
func (s *Server) handleToggleResource(w http.ResponseWriter, r *http.Request) {
	a, ok := s.sessionApp(w, r)
	if !ok {
		return
	}

	var req ToggleResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ResourceID == "" {
		s.errorResponse(w, http.StatusBadRequest, "resourceId is required")
		return
	}

	a.ToggleResource(req.ResourceID)
	s.writeProgress(w, a)
}

// handleProgress reports completion percentages.
func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	a, ok := s.sessionApp(w, r)
	if !ok {
		return
	}
	s.writeProgress(w, a)
}

func (s *Server) writeProgress(w http.ResponseWriter, a *app.App) {
	s.jsonResponse(w, http.StatusOK, ProgressResponse{
		Overall:   a.OverallProgress(),
		Job:       a.JobProgress(),
		Completed: a.CompletedResources(),
	})
}

// handleToggleTheme flips the UI theme.
func (s *Server) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	a, ok := s.sessionApp(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"theme": string(a.ToggleTheme())})
}

// handleChat submits one chat turn and streams the reply over SSE.
// Each message event carries the growing trailing message; a complete
// event closes the turn.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	a, ok := s.sessionApp(w, r)
	if !ok {
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		s.errorResponse(w, http.StatusBadRequest, "Message is required")
		return
	}

	session, err := a.ChatSession()
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if session.Busy() {
		s.errorResponse(w, http.StatusConflict, "A chat turn is already in flight")
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	err = session.SubmitTurn(r.Context(), req.Message, func(messages []types.ChatMessage) {
		sse.WriteMessage(messages[len(messages)-1])
	})
	if err != nil {
		log.Printf("Chat turn failed: %v", err)
		sse.WriteError("The chat response could not be completed.")
		return
	}

	sse.WriteComplete(len(session.Messages()))
}

// handleExportJob renders the selected job's roadmap report as a PDF.
func (s *Server) handleExportJob(w http.ResponseWriter, r *http.Request) {
	a, ok := s.sessionApp(w, r)
	if !ok {
		return
	}

	result, ok := a.Result()
	if !ok {
		s.errorResponse(w, http.StatusConflict, "No analysis to export")
		return
	}
	job, ok := a.SelectedJob()
	if !ok {
		s.errorResponse(w, http.StatusConflict, "No job selected")
		return
	}

	var name string
	if user, ok := a.User(); ok {
		name = user.Name
	}

	report := export.NewReport(name, result, job, a.CompletedResources(), a.JobProgress())
	html, err := export.RenderHTML(report)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	pdf, err := export.PrintPDFSimple(r.Context(), html)
	if err != nil {
		log.Printf("PDF export failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="roadmap.pdf"`)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(pdf)))
	if _, err := w.Write(pdf); err != nil {
		log.Printf("Error writing PDF response: %v", err)
	}
}
