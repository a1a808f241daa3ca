// Package server implements the payment simulator HTTP API backing the
// storefront checkout flow.
package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/techbooks/storefront/internal/config"
	"github.com/techbooks/storefront/orders"
)

type Server struct {
	env    string // Environment (e.g., "DEV", "PROD")
	mux    *http.ServeMux
	routes []string
	config config.Config
	orders orders.Repo
	status orders.StatusRepo
	log    zerolog.Logger
}

func New(config config.Config, orderRepo orders.Repo, statusRepo orders.StatusRepo) (*Server, error) {
	if config == nil {
		return nil, errors.New("[Server New] config is required")
	}
	if orderRepo == nil {
		return nil, errors.New("[Server New] order repository is required")
	}
	if statusRepo == nil {
		return nil, errors.New("[Server New] status repository is required")
	}

	s := &Server{
		mux:    http.NewServeMux(),
		config: config,
		orders: orderRepo,
		status: statusRepo,
		log:    zerolog.New(os.Stderr).With().Timestamp().Str("component", "server").Logger(),
	}
	s.env = config.GetEnv()

	s.initRoutes()
	s.logRoutes()

	return s, nil
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
			s.logRoute(parts[0], parts[1])
		} else {
			s.logRoute("", parts[0])
		}
	}
}

func (s *Server) logRoute(method, path string) {
	s.log.Info().Str("method", method).Str("path", path).Msg("route")
}
