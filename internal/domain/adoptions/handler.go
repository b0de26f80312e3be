package adoptions

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pet-adoption-api/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/adopt", submitRequestHandler(svc))
	r.Get("/adoptions", listRequestsHandler(svc))
	r.Patch("/adoptions/{requestID}/status", updateStatusHandler(svc))
}

type submitRequest struct {
	PetID            string `json:"petId"`
	PetName          string `json:"petName"`
	PetImage         string `json:"petImage"`
	RequesterName    string `json:"requesterName"`
	RequesterEmail   string `json:"requesterEmail"`
	RequesterPhone   string `json:"requesterPhone"`
	RequesterAddress string `json:"requesterAddress"`
	OwnerEmail       string `json:"ownerEmail"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type requestResponse struct {
	ID               string    `json:"_id"`
	PetID            string    `json:"petId"`
	PetName          string    `json:"petName"`
	PetImage         string    `json:"petImage"`
	RequesterName    string    `json:"requesterName"`
	RequesterEmail   string    `json:"requesterEmail"`
	RequesterPhone   string    `json:"requesterPhone"`
	RequesterAddress string    `json:"requesterAddress"`
	OwnerEmail       string    `json:"ownerEmail"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

// submitRequestHandler registra una solicitud de adopción.
//
// @Summary Submit adoption request
// @Tags adoptions
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} httpjson.ErrorResponse
// @Router /adopt [post]
func submitRequestHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		created, err := svc.Submit(r.Context(), SubmitInput{
			PetID:            req.PetID,
			PetName:          req.PetName,
			PetImage:         req.PetImage,
			RequesterName:    req.RequesterName,
			RequesterEmail:   req.RequesterEmail,
			RequesterPhone:   req.RequesterPhone,
			RequesterAddress: req.RequesterAddress,
			OwnerEmail:       req.OwnerEmail,
		})
		if err != nil {
			writeRequestError(w, err)
			return
		}

		httpjson.WriteJSON(w, http.StatusCreated, map[string]string{"id": created.ID})
	}
}

// listRequestsHandler lista las solicitudes, más recientes primero.
//
// @Summary List adoption requests
// @Tags adoptions
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /adoptions [get]
func listRequestsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpjson.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]requestResponse, 0, len(items))
		for _, req := range items {
			out = append(out, toRequestResponse(req))
		}

		httpjson.WriteJSON(w, http.StatusOK, out)
	}
}

// updateStatusHandler cambia el status de una solicitud.
//
// @Summary Update adoption request status
// @Tags adoptions
// @Accept json
// @Produce json
// @Param requestID path string true "Request id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /adoptions/{requestID}/status [patch]
func updateStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		updated, err := svc.UpdateStatus(r.Context(), chi.URLParam(r, "requestID"), req.Status)
		if err != nil {
			writeRequestError(w, err)
			return
		}

		httpjson.WriteJSON(w, http.StatusOK, toRequestResponse(updated))
	}
}

func toRequestResponse(req Request) requestResponse {
	return requestResponse{
		ID:               req.ID,
		PetID:            req.PetID,
		PetName:          req.PetName,
		PetImage:         req.PetImage,
		RequesterName:    req.RequesterName,
		RequesterEmail:   req.RequesterEmail,
		RequesterPhone:   req.RequesterPhone,
		RequesterAddress: req.RequesterAddress,
		OwnerEmail:       req.OwnerEmail,
		Status:           string(req.Status),
		CreatedAt:        req.CreatedAt,
	}
}

func writeRequestError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpjson.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		httpjson.WriteError(w, http.StatusNotFound, "adoption request not found")
	default:
		httpjson.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
