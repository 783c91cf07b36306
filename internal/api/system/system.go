package system

import (
	"net/http"
	"roulette_backend/pkg/resp"
	"time"
)

const (
	serviceName = "Roulette Rewards API"
	version     = "1.0.0"
)

type HomeResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func Home(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, HomeResponse{
		Status:  "online",
		Message: serviceName,
		Version: version,
	})
}

func Health(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
	})
}

// NotFound и MethodNotAllowed отвечают в формате {"error": msg}
func NotFound(w http.ResponseWriter, _ *http.Request) {
	resp.WriteError(w, http.StatusNotFound, "Endpoint not found")
}

func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	resp.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
