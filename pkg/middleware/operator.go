package middleware

import (
	"net/http"

	"github.com/tdhftu/snapchat-ads-tools/pkg/apiErrors"
	"github.com/tdhftu/snapchat-ads-tools/pkg/log"
)

// OperatorOnly restricts a route to requests carrying valid operator claims.
// AuthMiddleware sets them; routes mounted outside of it get rejected here.
func OperatorOnly() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := OperatorFromContext(r.Context())
			if !ok || claims.OperatorEmail == "" {
				log.ForContext(r.Context()).Warn("access attempt without operator session")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "operator not authenticated", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
