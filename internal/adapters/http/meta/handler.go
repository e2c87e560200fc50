package meta

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"github.com/pulselabs/pulse-api/internal/infrastructure/config"
)

// Handler serves the landing endpoint with service metadata and a filtered
// view of the environment-derived runtime settings.
type Handler struct {
	cfg config.AppConfig
}

func NewHandler(cfg config.AppConfig) *Handler {
	return &Handler{cfg: cfg}
}

// envAllowlist names the environment variables safe to expose. Credentials
// and anything not explicitly listed stay hidden.
var envAllowlist = []string{
	"APP_NAME",
	"APP_VERSION",
	"APP_ENV",
	"APP_PORT",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"STARTUP_DELAY_MS",
	"LOG_LEVEL",
}

type response struct {
	Service     string            `json:"service"`
	Version     string            `json:"version"`
	Environment string            `json:"environment"`
	Endpoints   []string          `json:"endpoints"`
	Settings    map[string]string `json:"settings"`
}

// Root serves GET / with service metadata.
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	resp := response{
		Service:     h.cfg.App.Name,
		Version:     h.cfg.App.Version,
		Environment: h.cfg.App.Environment,
		Endpoints: []string{
			"GET /health",
			"GET /metrics",
			"GET /api/v1/notes",
			"POST /api/v1/notes",
			"GET /api/v1/notes/{noteID}",
		},
		Settings: filteredEnv(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}

func filteredEnv() map[string]string {
	settings := make(map[string]string, len(envAllowlist))
	for _, key := range envAllowlist {
		if value, ok := os.LookupEnv(key); ok {
			settings[key] = strings.TrimSpace(value)
		}
	}
	return settings
}
