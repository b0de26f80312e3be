package middleware

import (
	"context"
	"net/http"

	"pet-adoption-api/internal/platform/httpjson"
)

// RoleResolver resuelve el rol persistido de un caller por email.
// found=false significa "usuario desconocido" (403); err significa store caído (500).
type RoleResolver interface {
	RoleByEmail(ctx context.Context, email string) (role string, found bool, err error)
}

// RequireAdmin es el único guard de la API: las rutas gated se declaran con
// .With(RequireAdmin(...)) al registrarlas, así el allow-list queda en la
// tabla de rutas y no repartido en cada handler.
func RequireAdmin(roles RoleResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := GetIdentity(r.Context())
			if !ok || id.Email == "" {
				httpjson.WriteError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			role, found, err := roles.RoleByEmail(r.Context(), id.Email)
			if err != nil {
				httpjson.WriteError(w, http.StatusInternalServerError, "internal error")
				return
			}
			if !found || role != "admin" {
				httpjson.WriteError(w, http.StatusForbidden, "forbidden")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
