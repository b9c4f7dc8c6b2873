package rest

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// requireAPIKey gates the participant endpoints behind a static bearer key.
// The service holds no user or session state; whoever presents the key is
// an authorized operator.
func (h *Handler) requireAPIKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if presented == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(key)) != 1 {
				h.writeMessage(w, r, http.StatusUnauthorized, "error.unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
