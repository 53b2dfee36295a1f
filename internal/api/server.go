package api

import (
	_ "embed"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/edvin/mailsink/internal/api/handler"
	mw "github.com/edvin/mailsink/internal/api/middleware"
	"github.com/edvin/mailsink/internal/config"
	"github.com/edvin/mailsink/internal/mail"
)

// Static assets are embedded at build time; a missing asset fails the build
// rather than the running process.
var (
	//go:embed assets/index.html
	indexHTML string
	//go:embed assets/greenmail-openapi.yml
	openapiYAML string
	//go:embed assets/js/rapidoc-min.js
	rapidocJS string
)

type Server struct {
	router chi.Router
	logger zerolog.Logger
	svc    *mail.Service
	cfg    *config.Config
}

func NewServer(logger zerolog.Logger, svc *mail.Service, cfg *config.Config) *Server {
	s := &Server{
		router: chi.NewRouter(),
		logger: logger,
		svc:    svc,
		cfg:    cfg,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(mw.RequestLogger(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(mw.Metrics)
}

func (s *Server) setupRoutes() {
	// Prometheus metrics endpoint
	s.router.Handle("/metrics", promhttp.Handler())

	// Documentation page and its assets (no auth, served from memory)
	s.router.Get("/", serveAsset("text/html", indexHTML))
	s.router.Get("/greenmail-openapi.yml", serveAsset("application/yaml", openapiYAML))
	s.router.Get("/js/rapidoc-min.js", serveAsset("text/javascript", rapidocJS))

	s.router.Route("/api", func(r chi.Router) {
		cfg := handler.NewConfiguration(s.cfg)
		r.Get("/configuration", cfg.Get)

		user := handler.NewUser(s.svc)
		r.Get("/user", user.List)
		r.Post("/user", user.Create)
		r.Delete("/user/{emailOrLogin}", user.Delete)

		// The message routes are published with trailing slashes; both forms
		// are accepted.
		message := handler.NewMessage(s.svc)
		r.Get("/user/{emailOrLogin}/messages", message.List)
		r.Get("/user/{emailOrLogin}/messages/", message.List)
		r.Get("/user/{emailOrLogin}/messages/{folderName}", message.List)
		r.Get("/user/{emailOrLogin}/messages/{folderName}/", message.List)

		service := handler.NewService(s.svc)
		r.Post("/mail/purge", service.Purge)
		r.Post("/service/reset", service.Reset)
		r.Get("/service/readiness", service.Readiness)
	})
}

func serveAsset(contentType, content string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write([]byte(content))
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
