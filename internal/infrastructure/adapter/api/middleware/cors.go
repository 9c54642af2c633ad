package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/config"
)

// CORS wraps the whole HTTP handler so preflight requests are answered before routing
func CORS(conf config.CORSConfig) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   conf.AllowedOrigins,
		AllowedMethods:   conf.AllowedMethods,
		AllowedHeaders:   conf.AllowedHeaders,
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: conf.AllowCredentials,
		MaxAge:           conf.MaxAge,
	})
}
