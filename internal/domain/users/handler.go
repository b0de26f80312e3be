package users

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-adoption-api/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, adminOnly func(http.Handler) http.Handler) {
	r.Post("/users", upsertUserHandler(svc))

	// Rutas gated: el guard va en la tabla de rutas, no dentro del handler.
	r.With(adminOnly).Get("/users", listUsersHandler(svc))
	r.With(adminOnly).Patch("/users/{userID}/role", updateUserRoleHandler(svc))
}

type upsertUserRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage"`
}

type updateRoleRequest struct {
	Role string `json:"role"`
}

type userResponse struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage"`
	Role         string `json:"role"`
}

// upsertUserHandler guarda o actualiza el perfil por email; role solo en el insert.
//
// @Summary Upsert user profile by email
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} httpjson.ErrorResponse
// @Router /users [post]
func upsertUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req upsertUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		u, err := svc.Upsert(r.Context(), UpsertInput{
			Email:        req.Email,
			Name:         req.Name,
			ProfileImage: req.ProfileImage,
		})
		if err != nil {
			writeUserError(w, err)
			return
		}

		httpjson.WriteJSON(w, http.StatusOK, toUserResponse(u))
	}
}

// listUsersHandler lista todos los usuarios (solo admin).
//
// @Summary List users
// @Tags users
// @Produce json
// @Param X-User-Email header string true "Caller email"
// @Success 200 {array} map[string]interface{}
// @Failure 401 {object} httpjson.ErrorResponse
// @Failure 403 {object} httpjson.ErrorResponse
// @Router /users [get]
func listUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpjson.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]userResponse, 0, len(items))
		for _, u := range items {
			out = append(out, toUserResponse(u))
		}

		httpjson.WriteJSON(w, http.StatusOK, out)
	}
}

// updateUserRoleHandler cambia el rol de un usuario por id (solo admin).
//
// @Summary Change a user's role
// @Tags users
// @Accept json
// @Produce json
// @Param X-User-Email header string true "Caller email"
// @Param userID path string true "User store id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /users/{userID}/role [patch]
func updateUserRoleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateRoleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		u, err := svc.UpdateRole(r.Context(), chi.URLParam(r, "userID"), req.Role)
		if err != nil {
			writeUserError(w, err)
			return
		}

		httpjson.WriteJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		ProfileImage: u.ProfileImage,
		Role:         string(u.Role),
	}
}

func writeUserError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpjson.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		httpjson.WriteError(w, http.StatusNotFound, "user not found")
	default:
		httpjson.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
