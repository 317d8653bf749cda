// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"

	"nutriplan/internal/app"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// Services are the application services the HTTP adapter drives.
type Services struct {
	Clients   *app.ClientService
	Nutrition *app.NutritionService
	Weight    *app.WeightService
	Water     *app.WaterService
	Charts    *app.ChartsService
	Auth      *app.AuthService
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	clients    *app.ClientService
	nutrition  *app.NutritionService
	weight     *app.WeightService
	water      *app.WaterService
	charts     *app.ChartsService
	authSvc    *app.AuthService
	oidcConfig *OIDCConfig
	origins    []string
	log        zerolog.Logger
	webDir     string

	disableAuth bool
}

// New creates a Server wired to the given application services.
func New(svc Services, webDir string) *Server {
	return &Server{
		clients:    svc.Clients,
		nutrition:  svc.Nutrition,
		weight:     svc.Weight,
		water:      svc.Water,
		charts:     svc.Charts,
		authSvc:    svc.Auth,
		oidcConfig: &OIDCConfig{},
		log:        zerolog.Nop(),
		webDir:     webDir,
	}
}

// WithLogger sets the request logger.
func (s *Server) WithLogger(l zerolog.Logger) *Server {
	s.log = l
	return s
}

// WithOIDC enables SSO login through the given provider configuration.
func (s *Server) WithOIDC(cfg *OIDCConfig) *Server {
	if cfg != nil {
		s.oidcConfig = cfg
	}
	return s
}

// WithAllowedOrigins enables CORS for the given origins.
func (s *Server) WithAllowedOrigins(origins []string) *Server {
	s.origins = origins
	return s
}

// WithoutAuth disables session checks; every request acts as coach 1.
// Intended for tests.
func (s *Server) WithoutAuth() *Server {
	s.disableAuth = true
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.Handle("/health", methods{http.MethodGet: func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}})
	api.Handle("/config", methods{http.MethodGet: s.handleConfig})

	api.Handle("/auth/login", methods{http.MethodPost: s.handleLogin})
	api.Handle("/auth/logout", methods{http.MethodPost: s.handleLogout})
	api.Handle("/auth/setup", methods{http.MethodPost: s.handleSetupUser})
	api.Handle("/auth/sso/login", methods{http.MethodGet: s.handleSSOLogin})
	api.Handle("/auth/sso/callback", methods{http.MethodGet: s.handleSSOCallback})

	protected := func(path string, m methods) {
		api.Handle(path, s.authMiddleware(m))
	}

	protected("/nutrition/calculate", methods{http.MethodPost: s.handleCalculate})

	protected("/clients", methods{
		http.MethodGet:  s.handleListClients,
		http.MethodPost: s.handleCreateClient,
	})
	protected("/clients/{clientID}", methods{
		http.MethodGet:    s.handleGetClient,
		http.MethodPut:    s.handleUpdateClient,
		http.MethodDelete: s.handleDeleteClient,
	})
	protected("/clients/{clientID}/plan", methods{http.MethodGet: s.handleClientPlan})

	protected("/clients/{clientID}/weight", methods{http.MethodPost: s.handleWeighIn})
	protected("/clients/{clientID}/weight/recent", methods{http.MethodGet: s.handleWeightRecent})
	protected("/clients/{clientID}/weight/undo-last", methods{http.MethodPost: s.handleWeightUndoLast})
	protected("/clients/{clientID}/progress", methods{http.MethodGet: s.handleProgress})

	protected("/clients/{clientID}/water", methods{http.MethodPost: s.handleWaterEvent})
	protected("/clients/{clientID}/water/today", methods{http.MethodGet: s.handleWaterToday})
	protected("/clients/{clientID}/water/recent", methods{http.MethodGet: s.handleWaterRecent})
	protected("/clients/{clientID}/water/undo-last", methods{http.MethodPost: s.handleWaterUndoLast})

	protected("/clients/{clientID}/charts/daily", methods{http.MethodGet: s.handleChartsDaily})

	root := http.NewServeMux()
	root.Handle("/api/", r)
	root.Handle("/", spaFromDisk(s.webDir))

	var h http.Handler = root
	if len(s.origins) > 0 {
		h = cors.New(cors.Options{
			AllowedOrigins:   s.origins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			AllowedHeaders:   []string{"Content-Type"},
			AllowCredentials: true,
		}).Handler(h)
	}

	return s.loggingMiddleware(withNoCache(h))
}
