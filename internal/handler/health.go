package handler

import (
	"net/http"

	"github.com/tripflow/backend/api"
)

const (
	serviceName    = "tripflow-backend"
	serviceVersion = "1.0.0"
)

// Root handles GET /. Deployment platforms probe the bare root for liveness,
// so it answers outside the /api prefix with a fuller payload.
func (s *Server) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Tripflow API is running!",
		"status":  "healthy",
		"service": serviceName,
		"version": serviceVersion,
	})
}

// APIRoot handles GET /api/.
func (s *Server) APIRoot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Tripflow API is running!",
		"status":  "healthy",
	})
}

// Health handles GET /api/health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": serviceName,
	})
}

// OpenAPI handles GET /openapi.yaml, serving the API document embedded at
// compile time.
func (s *Server) OpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	w.Write(api.OpenAPI)
}
