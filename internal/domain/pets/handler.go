package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pet-adoption-api/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))

		// Lookup por id de negocio, no por _id del store (contrato externo).
		pr.Get("/{petID}", getPetHandler(svc))
	})

	r.Get("/mypets", listMyPetsHandler(svc))
}

// createPetRequest no declara adopted/createdAt a propósito: aunque vengan en
// el payload se descartan y los asigna el servidor.
type createPetRequest struct {
	BusinessID string `json:"id"`
	Name       string `json:"name"`
	Age        any    `json:"age"`
	Category   string `json:"category"`
	Image      string `json:"image"`
	Location   string `json:"location"`
	UserEmail  string `json:"userEmail"`
}

type petResponse struct {
	ID         string    `json:"_id"`
	BusinessID string    `json:"id"`
	Name       string    `json:"name"`
	Age        float64   `json:"age"`
	Category   string    `json:"category"`
	Image      string    `json:"image"`
	Location   string    `json:"location"`
	UserEmail  string    `json:"userEmail"`
	Adopted    bool      `json:"adopted"`
	CreatedAt  time.Time `json:"createdAt"`
}

// createPetHandler registra una mascota para adopción.
//
// @Summary Create pet
// @Tags pets
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} httpjson.ErrorResponse
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			BusinessID: req.BusinessID,
			Name:       req.Name,
			Age:        req.Age,
			Category:   req.Category,
			Image:      req.Image,
			Location:   req.Location,
			UserEmail:  req.UserEmail,
		})
		if err != nil {
			writePetError(w, err)
			return
		}

		httpjson.WriteJSON(w, http.StatusCreated, map[string]string{"id": p.ID})
	}
}

// listPetsHandler lista todas las mascotas.
//
// @Summary List pets
// @Tags pets
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpjson.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}

		httpjson.WriteJSON(w, http.StatusOK, out)
	}
}

// listMyPetsHandler lista las mascotas publicadas por un dueño.
//
// @Summary List pets by owner email
// @Tags pets
// @Produce json
// @Param email query string true "Owner email"
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} httpjson.ErrorResponse
// @Router /mypets [get]
func listMyPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByOwner(r.Context(), r.URL.Query().Get("email"))
		if err != nil {
			writePetError(w, err)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}

		httpjson.WriteJSON(w, http.StatusOK, out)
	}
}

// getPetHandler devuelve una mascota por su id de negocio.
//
// @Summary Get pet by business id
// @Tags pets
// @Produce json
// @Param petID path string true "Client-supplied pet id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByBusinessID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			writePetError(w, err)
			return
		}

		httpjson.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:         p.ID,
		BusinessID: p.BusinessID,
		Name:       p.Name,
		Age:        p.Age,
		Category:   p.Category,
		Image:      p.Image,
		Location:   p.Location,
		UserEmail:  p.UserEmail,
		Adopted:    p.Adopted,
		CreatedAt:  p.CreatedAt,
	}
}

func writePetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpjson.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		httpjson.WriteError(w, http.StatusNotFound, "pet not found")
	default:
		httpjson.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
