package server

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/jrsteele09/go-wallet-web/apiclient"
	"github.com/jrsteele09/go-wallet-web/checkout"
	"github.com/jrsteele09/go-wallet-web/controllers"
	"github.com/jrsteele09/go-wallet-web/internal/config"
	"github.com/jrsteele09/go-wallet-web/internal/metrics"
	"github.com/jrsteele09/go-wallet-web/sessions/cookiestore"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
)

type Server struct {
	env       string // Environment (e.g., "DEV", "PROD")
	mux       *http.ServeMux
	routes    []string
	config    config.Config
	ctrl      *controllers.Controllers
	checkout  *checkout.HostedWidget
	sealer    *cookiestore.Sealer
	limiter   *RateLimiter
	registry  *prometheus.Registry
	templates map[string]*template.Template
	fragments map[string]*template.Template
	assets    map[string]staticAsset
}

func New(config config.Config) (*Server, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	api := apiclient.New(
		config.GetAPIBaseURL()+config.GetAPIBasePath(),
		apiclient.WithHTTPClient(&http.Client{Timeout: config.GetAPITimeout()}),
		apiclient.WithMetrics(metrics.NewCollector(registry)),
	)
	widget := checkout.NewHostedWidget(config.GetCheckoutScriptURL(), config.GetCheckoutPendingTTL())

	sealer, err := newSealer(config.GetSessionSecret())
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to create session sealer: %w", err)
	}

	s := &Server{
		env:      config.GetEnv(),
		mux:      http.NewServeMux(),
		config:   config,
		checkout: widget,
		sealer:   sealer,
		limiter:  NewRateLimiter(config.GetAuthRateLimitPerMinute(), config.GetTrustedProxies()),
		registry: registry,
		ctrl: controllers.New(api, widget, controllers.CheckoutSettings{
			Name:        config.GetCheckoutName(),
			Description: config.GetCheckoutDescription(),
			Currency:    config.GetCheckoutCurrency(),
			ThemeColor:  config.GetCheckoutThemeColor(),
		}, config.GetDisplayLocation()),
	}

	if err := s.parseTemplates(); err != nil {
		return nil, fmt.Errorf("[Server New] %w", err)
	}
	if s.assets, err = loadStaticAssets(); err != nil {
		return nil, fmt.Errorf("[Server New] %w", err)
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func newSealer(secret string) (*cookiestore.Sealer, error) {
	if secret != "" {
		return cookiestore.NewSealer(secret), nil
	}
	log.Warn().Msg("SESSION_SECRET not set, sessions will not survive a restart")
	return cookiestore.NewRandomSealer()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func colouredMethod(method string) string {
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		return color + paddedMethod + ResetColor
	}
	return Gray + paddedMethod + ResetColor
}

func logRoute(method, path string) {
	log.Info().Msgf("[%-19s] %s", colouredMethod(method), path)
}

// Helper function to determine the scheme (http/https)
func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
