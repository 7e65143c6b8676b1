package http

import (
	"net/http"

	"jungle/internal/config"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

// NewCORS builds the cross-origin policy. Credentials are only allowed for
// an explicit origin list.
func NewCORS(cfg config.Config, log *zap.SugaredLogger) *cors.Cors {
	credentials := cfg.AllowCredentials
	for _, o := range cfg.AllowedOrigins {
		if o == "*" && credentials {
			log.Warnw("CORS credentials disabled for wildcard origin")
			credentials = false
			break
		}
	}

	return cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: credentials,
	})
}
