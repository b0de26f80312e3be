package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const identityKey ctxKey = "identity"

// IdentityHeader lleva el email del caller. Contrato externo: el header se
// acepta tal cual, sin firma ni sesión; el guard admin decide después.
const IdentityHeader = "X-User-Email"

// Identity es la identidad transitoria del request.
type Identity struct {
	Email string
}

// AuthContext:
// - Si viene X-User-Email, setea la identidad en el contexto.
// - Si no viene, el request sigue igual; las rutas con guard responderán 401.
func AuthContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := strings.TrimSpace(r.Header.Get(IdentityHeader))
		if email == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, Identity{Email: email})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetIdentity(ctx context.Context) (Identity, bool) {
	v := ctx.Value(identityKey)
	if v == nil {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}
