// Package api exposes the expense ledger over a JSON HTTP API.
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/mehak1404/splitwise/internal/auth"
	"github.com/mehak1404/splitwise/internal/middleware"
	"github.com/mehak1404/splitwise/internal/service"
)

// API owns the router and the services behind it.
type API struct {
	router     *mux.Router
	expenses   *service.ExpenseService
	auth       *service.AuthService
	jwtManager *auth.JWTManager
	registry   *prometheus.Registry
}

// New creates the API and registers all routes.
func New(expenses *service.ExpenseService, authSvc *service.AuthService, jwtManager *auth.JWTManager, registry *prometheus.Registry) *API {
	a := &API{
		router:     mux.NewRouter(),
		expenses:   expenses,
		auth:       authSvc,
		jwtManager: jwtManager,
		registry:   registry,
	}
	a.setupRoutes()
	return a
}

func (a *API) setupRoutes() {
	// Public endpoints
	a.router.HandleFunc("/api/auth/register", a.handleRegister).Methods("POST")
	a.router.HandleFunc("/api/auth/login", a.handleLogin).Methods("POST")
	a.router.HandleFunc("/healthz", a.handleHealth).Methods("GET")
	a.router.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{})).Methods("GET")

	// Protected endpoints
	protected := a.router.PathPrefix("/api").Subrouter()
	protected.Use(middleware.RequireAuth(a.jwtManager))

	protected.HandleFunc("/users", a.handleAddUser).Methods("POST")
	protected.HandleFunc("/users", a.handleListUsers).Methods("GET")
	protected.HandleFunc("/expenses", a.handleRecordExpense).Methods("POST")
	protected.HandleFunc("/balances", a.handleAllBalances).Methods("GET")
	protected.HandleFunc("/balances/{user_id}", a.handleUserBalances).Methods("GET")
}

// Handler returns the router wrapped with CORS.
func (a *API) Handler() http.Handler {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}
	return cors.New(corsOptions).Handler(a.router)
}
