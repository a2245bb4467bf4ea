package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// corsHandler reflects any origin so credentialed requests work from every
// front end; preflight results are cached for 24 hours.
var corsHandler = cors.New(cors.Options{
	AllowOriginFunc: func(origin string) bool {
		return true
	},
	AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions, http.MethodHead},
	AllowedHeaders:   []string{"*"},
	ExposedHeaders:   []string{"*"},
	AllowCredentials: true,
	MaxAge:           86400,
})

func CORS(next http.Handler) http.Handler {
	return corsHandler.Handler(next)
}
