package web

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bilalahmed15/sales-navigator/internal/ai"
	"github.com/bilalahmed15/sales-navigator/internal/auth"
	"github.com/bilalahmed15/sales-navigator/internal/leads"
	"github.com/bilalahmed15/sales-navigator/internal/outreach"
)

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type challengeRequest struct {
	Code string `json:"code" form:"code"`
}

type extractRequest struct {
	TargetCount        int           `json:"target_count" form:"target_count"`
	SearchTerm         string        `json:"search_term" form:"search_term"`
	SeedURL            string        `json:"seed_url" form:"seed_url"`
	ExtractProfileData *bool         `json:"extract_profile_data" form:"extract_profile_data"`
	UseAIFiltering     bool          `json:"use_ai_filtering" form:"use_ai_filtering"`
	Rubric             string        `json:"rubric" form:"rubric"`
	OpenAIKey          string        `json:"openai_api_key" form:"openai_api_key"`
	Filters            []filterParam `json:"filters"`
}

type filterParam struct {
	Kind    string `json:"kind"`
	Value   string `json:"value"`
	Exclude bool   `json:"exclude"`
}

type messageRequest struct {
	Template string `json:"template" form:"template"`
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureSession(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Browser not available: " + err.Error()})
		return
	}

	result := s.auth.Login(req.Email, req.Password)
	switch result.Status {
	case auth.StatusAuthenticated:
		s.loggedIn = true
		s.saveCookies()
		c.JSON(http.StatusOK, gin.H{"success": true, "message": result.Message})
	case auth.StatusChallengeRequired:
		c.JSON(http.StatusOK, gin.H{"success": false, "challenge_required": true, "message": result.Message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Message})
	}
}

func (s *Server) handleChallenge(c *gin.Context) {
	var req challengeRequest
	if err := c.ShouldBind(&req); err != nil || req.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Verification code is required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.auth == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No pending login. Please log in first."})
		return
	}

	result := s.auth.SubmitChallenge(req.Code)
	if result.Status == auth.StatusAuthenticated {
		s.loggedIn = true
		s.saveCookies()
		c.JSON(http.StatusOK, gin.H{"success": true, "message": result.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": result.Message})
}

func (s *Server) handleExtract(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid extraction parameters: " + err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loggedIn || s.session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in first"})
		return
	}

	extractFields := true
	if req.ExtractProfileData != nil {
		extractFields = *req.ExtractProfileData
	}

	apiKey := req.OpenAIKey
	if apiKey == "" {
		apiKey = s.cfg.OpenAIKey
	}
	useScoring := scoringEnabled(req.UseAIFiltering, apiKey)
	if req.UseAIFiltering && !useScoring {
		log.Printf("⚠️ AI filtering requested but no OpenAI API key is configured. Skipping scoring.")
	}

	request := leads.ExtractionRequest{
		TargetCount:           req.TargetCount,
		SearchTerm:            req.SearchTerm,
		SeedURL:               req.SeedURL,
		ExtractFieldData:      extractFields,
		UseRelevanceFiltering: useScoring,
		Rubric:                req.Rubric,
		Filters:               parseFilters(req.Filters),
	}

	page := s.session.Page()

	pipeline := leads.NewPipeline(
		leads.NewCollector(page, s.cfg.SearchURL),
		leads.NewFieldExtractor(page),
		leads.NewScorer(ai.NewOpenAIClient(apiKey, s.cfg.OpenAIModel)),
		s.store,
		s.cfg.ProfileCooldown(),
		s.cfg.DefaultTargetCount,
	)

	result := pipeline.Run(c.Request.Context(), request)
	if !result.Success {
		if err := s.reporter.RunFailed(result.Error); err != nil {
			log.Printf("⚠️ Failed to report run failure: %v", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error})
		return
	}

	s.lastExport = result.Filename
	if err := s.reporter.ExtractionFinished(result.Filename, result.Count); err != nil {
		log.Printf("⚠️ Failed to report run completion: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  result.Message,
		"count":    result.Count,
		"filename": result.Filename,
	})
}

func (s *Server) handleViewLeads(c *gin.Context) {
	s.mu.Lock()
	filename := s.lastExport
	s.mu.Unlock()

	if filename == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "No leads file available. Please extract leads first."})
		return
	}

	records := s.store.Read(filename)
	c.JSON(http.StatusOK, gin.H{
		"filename": filename,
		"count":    len(records),
		"data":     toRows(records),
	})
}

func (s *Server) handleDownload(c *gin.Context) {
	path, err := s.store.Path(c.Param("filename"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.FileAttachment(path, c.Param("filename"))
}

func (s *Server) handleMessage(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBind(&req); err != nil || req.Template == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message template is required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loggedIn || s.session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in first"})
		return
	}
	if s.lastExport == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No leads file available. Please extract leads first."})
		return
	}

	records := s.store.Read(s.lastExport)
	if len(records) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No leads to message", "sent": 0, "failed": 0})
		return
	}

	messenger := outreach.NewMessenger(s.session.Page())
	sent, failed := messenger.SendToLeads(c.Request.Context(), records, req.Template)
	c.JSON(http.StatusOK, gin.H{
		"message": "Messaging finished",
		"sent":    sent,
		"failed":  failed,
	})
}

func (s *Server) handleLogout(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closeSession()
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

func (s *Server) saveCookies() {
	if err := s.session.SaveCookies(s.cfg.CookiesPath); err != nil {
		log.Printf("⚠️ Failed to save session cookies: %v", err)
	}
}

// scoringEnabled decides whether the run may call the scoring oracle:
// requested filtering without a key degrades to an unscored run instead
// of producing a pipeline of doomed API calls.
func scoringEnabled(requested bool, apiKey string) bool {
	return requested && apiKey != ""
}

func parseFilters(params []filterParam) []leads.AttributeFilter {
	var filters []leads.AttributeFilter
	for _, p := range params {
		filters = append(filters, leads.AttributeFilter{
			Kind:    leads.FilterKind(p.Kind),
			Value:   p.Value,
			Exclude: p.Exclude,
		})
	}
	return filters
}

// toRows flattens records for JSON display with the same field names the
// CSV export uses.
func toRows(records []leads.LeadRecord) []gin.H {
	rows := make([]gin.H, 0, len(records))
	for _, rec := range records {
		rows = append(rows, gin.H{
			"identifier":      rec.Identifier,
			"first_name":      rec.FirstName,
			"last_name":       rec.LastName,
			"headline":        rec.Headline,
			"about":           rec.About,
			"match":           rec.Match,
			"reason":          rec.Reason,
			"relevance_score": rec.RelevanceScore,
		})
	}
	return rows
}
