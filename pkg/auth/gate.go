package auth

import (
	"net/http"
	"strings"

	"github.com/daikoshop/adminapi/pkg/utils"
)

// Gate guards every administrative operation with the single shared admin
// secret. There is no user or role model behind it.
type Gate struct {
	secret string
}

func NewGate(secret string) *Gate {
	return &Gate{secret: secret}
}

// Verify compares the presented credential, as an opaque string, against the
// configured secret. An empty secret never matches.
func (g *Gate) Verify(credential string) bool {
	return g.secret != "" && credential == g.secret
}

// Credential extracts the presented credential from the request: the
// Authorization header (with or without a Bearer prefix), falling back to
// X-Admin-Token.
func Credential(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header != "" {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return r.Header.Get("X-Admin-Token")
}

// Middleware rejects the request before any repository access when the
// credential does not match.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !g.Verify(Credential(r)) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}
