// HTTP front end over the single browser session. The app is
// single-user by construction: one browser, one page context, so all
// session-mutating routes serialize on the server mutex.

package web

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/bilalahmed15/sales-navigator/internal/auth"
	"github.com/bilalahmed15/sales-navigator/internal/browser"
	"github.com/bilalahmed15/sales-navigator/internal/config"
	"github.com/bilalahmed15/sales-navigator/internal/notify"
	"github.com/bilalahmed15/sales-navigator/internal/store"
)

type Server struct {
	cfg      *config.Config
	store    *store.Store
	reporter *notify.Reporter

	mu         sync.Mutex
	session    *browser.Session
	auth       *auth.Authenticator
	loggedIn   bool
	lastExport string
}

func NewServer(cfg *config.Config) *Server {
	reporter, err := notify.NewReporter(cfg)
	if err != nil {
		log.Printf("⚠️ Telegram reporting disabled: %v", err)
	}

	return &Server{
		cfg:      cfg,
		store:    store.New(cfg.ExportDir),
		reporter: reporter,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.GET("/", s.handleHealth)
	r.POST("/login", s.handleLogin)
	r.POST("/challenge", s.handleChallenge)
	r.POST("/logout", s.handleLogout)
	r.POST("/extract-leads", s.handleExtract)
	r.GET("/leads", s.handleViewLeads)
	r.GET("/download/:filename", s.handleDownload)
	r.POST("/message", s.handleMessage)

	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Sales Navigator lead extractor is running!",
		"status":  "healthy",
	})
}

// ensureSession lazily launches the browser. Must be called with the
// mutex held.
func (s *Server) ensureSession() error {
	if s.session != nil {
		return nil
	}

	session, err := browser.NewSession(s.cfg.Headless)
	if err != nil {
		return err
	}

	if err := session.RestoreCookies(s.cfg.CookiesPath); err != nil {
		log.Printf("⚠️ Could not restore cookies: %v. Continuing.", err)
	}

	s.session = session
	s.auth = auth.NewAuthenticator(session.Page(), s.cfg.ScreenshotDir)
	return nil
}

// closeSession tears the browser down. Must be called with the mutex held.
func (s *Server) closeSession() {
	if s.session == nil {
		return
	}
	if err := s.session.Close(); err != nil {
		log.Printf("⚠️ Error closing browser session: %v", err)
	}
	s.session = nil
	s.auth = nil
	s.loggedIn = false
}
