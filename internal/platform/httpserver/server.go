package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	restaurantservice "tokentab/contexts/dining-experience/restaurant-service"
	lendingledger "tokentab/contexts/finance-core/lending-ledger-service"
	tokenconversion "tokentab/contexts/finance-core/token-conversion-engine"
	authentication "tokentab/contexts/identity-access/authentication-service"
	authorization "tokentab/contexts/identity-access/authorization-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "tokentab/internal/platform/httpserver/docs"
)

// HealthChecker reports backing store availability.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Server struct {
	mux            *http.ServeMux
	logger         *slog.Logger
	addr           string
	authentication authentication.Module
	authorization  authorization.Module
	lending        lendingledger.Module
	conversion     tokenconversion.Module
	restaurants    restaurantservice.Module
	health         HealthChecker
	serviceName    string
}

func New(
	authenticationModule authentication.Module,
	authorizationModule authorization.Module,
	lendingModule lendingledger.Module,
	conversionModule tokenconversion.Module,
	restaurantModule restaurantservice.Module,
	health HealthChecker,
	serviceName string,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}
	if serviceName == "" {
		serviceName = "tokentab"
	}

	s := &Server{
		mux:            http.NewServeMux(),
		logger:         logger,
		addr:           addr,
		authentication: authenticationModule,
		authorization:  authorizationModule,
		lending:        lendingModule,
		conversion:     conversionModule,
		restaurants:    restaurantModule,
		health:         health,
		serviceName:    serviceName,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the mux for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /api/health", s.handleHealth)

	s.mux.HandleFunc("POST /api/auth/v1/sign-in", s.handleSignIn)
	s.mux.HandleFunc("POST /api/auth/v1/sign-out", s.handleSignOut)
	s.mux.HandleFunc("GET /api/auth/v1/session", s.handleCurrentSession)

	s.mux.HandleFunc("POST /api/authz/v1/check", s.handleAuthzCheck)

	s.mux.HandleFunc("GET /api/lending/v1/records", s.handleListOwnRecords)
	s.mux.HandleFunc("POST /api/lending/v1/records", s.handleCreateRecord)
	s.mux.HandleFunc("GET /api/lending/v1/users/{user_id}/records", s.handleListUserRecords)
	s.mux.HandleFunc("POST /api/lending/v1/records/{record_id}/lend", s.handleLendTokens)
	s.mux.HandleFunc("POST /api/lending/v1/records/{record_id}/settle", s.handleSettleTokens)
	s.mux.HandleFunc("POST /api/lending/v1/records/{record_id}/accept", s.handleAcceptRecord)

	s.mux.HandleFunc("POST /api/tokens/v1/convert", s.handleConvertPrice)

	s.mux.HandleFunc("GET /api/restaurants/v1", s.handleListRestaurants)
	s.mux.HandleFunc("GET /api/restaurants/v1/{restaurant_id}", s.handleGetRestaurant)
	s.mux.HandleFunc("GET /api/restaurants/v1/{restaurant_id}/quote", s.handleBillQuote)
	s.mux.HandleFunc("POST /api/restaurants/v1/{restaurant_id}/rating", s.handleRateRestaurant)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// bearerToken extracts the opaque session token from the
// Authorization header.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
