package donations

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pet-adoption-api/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/donations", func(dr chi.Router) {
		dr.Get("/", listCampaignsHandler(svc))
		dr.Post("/", createCampaignHandler(svc))

		// /search va antes del param para que chi no lo capture como id.
		dr.Get("/search", searchCampaignsHandler(svc))

		dr.Get("/{campaignID}", getCampaignHandler(svc))
		dr.Patch("/{campaignID}/donate", donateHandler(svc))
	})

	r.Get("/my-donations", myCampaignsHandler(svc))
}

type createCampaignRequest struct {
	PetName          string `json:"petName"`
	Image            string `json:"image"`
	MaxDonation      any    `json:"maxDonation"`
	Location         string `json:"location"`
	ShortDescription string `json:"shortDescription"`
	LongDescription  string `json:"longDescription"`
	LastDate         string `json:"lastDate"`
	CreatorEmail     string `json:"creatorEmail"`
}

type donateRequest struct {
	Amount any `json:"amount"`
}

type campaignResponse struct {
	ID               string    `json:"_id"`
	PetName          string    `json:"petName"`
	Image            string    `json:"image"`
	MaxDonation      float64   `json:"maxDonation"`
	DonatedAmount    float64   `json:"donatedAmount"`
	Location         string    `json:"location"`
	ShortDescription string    `json:"shortDescription"`
	LongDescription  string    `json:"longDescription"`
	LastDate         time.Time `json:"lastDate"`
	CreatedAt        time.Time `json:"createdAt"`
	CreatorEmail     string    `json:"creatorEmail"`
	Paused           bool      `json:"paused"`
}

// listCampaignsHandler pagina las campañas, más recientes primero.
//
// @Summary List donation campaigns (paginated)
// @Tags donations
// @Produce json
// @Param email query string false "Filter by creator email"
// @Param page query string false "Page (default 1)"
// @Param limit query string false "Page size (default 6)"
// @Success 200 {array} map[string]interface{}
// @Router /donations [get]
func listCampaignsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		items, err := svc.List(r.Context(), q.Get("email"), q.Get("page"), q.Get("limit"))
		if err != nil {
			httpjson.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeCampaignList(w, items)
	}
}

// myCampaignsHandler lista las campañas creadas por un email.
//
// @Summary List my donation campaigns
// @Tags donations
// @Produce json
// @Param email query string true "Creator email"
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} httpjson.ErrorResponse
// @Router /my-donations [get]
func myCampaignsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByCreator(r.Context(), r.URL.Query().Get("email"))
		if err != nil {
			writeCampaignError(w, err)
			return
		}

		writeCampaignList(w, items)
	}
}

// createCampaignHandler crea una campaña de donación.
//
// @Summary Create donation campaign
// @Tags donations
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} httpjson.ErrorResponse
// @Router /donations [post]
func createCampaignHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		c, err := svc.Create(r.Context(), CreateInput{
			PetName:          req.PetName,
			Image:            req.Image,
			MaxDonation:      req.MaxDonation,
			Location:         req.Location,
			ShortDescription: req.ShortDescription,
			LongDescription:  req.LongDescription,
			LastDate:         req.LastDate,
			CreatorEmail:     req.CreatorEmail,
		})
		if err != nil {
			writeCampaignError(w, err)
			return
		}

		httpjson.WriteJSON(w, http.StatusCreated, map[string]string{"id": c.ID})
	}
}

// getCampaignHandler devuelve una campaña por id.
//
// @Summary Get donation campaign
// @Tags donations
// @Produce json
// @Param campaignID path string true "Campaign id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /donations/{campaignID} [get]
func getCampaignHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "campaignID"))
		if err != nil {
			writeCampaignError(w, err)
			return
		}

		httpjson.WriteJSON(w, http.StatusOK, toCampaignResponse(c))
	}
}

// donateHandler registra una donación (incremento atómico).
//
// @Summary Record a donation
// @Tags donations
// @Accept json
// @Produce json
// @Param campaignID path string true "Campaign id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} httpjson.ErrorResponse
// @Failure 404 {object} httpjson.ErrorResponse
// @Router /donations/{campaignID}/donate [patch]
func donateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req donateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		c, err := svc.Donate(r.Context(), chi.URLParam(r, "campaignID"), req.Amount)
		if err != nil {
			writeCampaignError(w, err)
			return
		}

		httpjson.WriteJSON(w, http.StatusOK, toCampaignResponse(c))
	}
}

// searchCampaignsHandler busca por substring en petName y/o location.
//
// @Summary Search donation campaigns
// @Tags donations
// @Produce json
// @Param pet query string false "Pet name substring"
// @Param location query string false "Location substring"
// @Success 200 {array} map[string]interface{}
// @Router /donations/search [get]
func searchCampaignsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		items, err := svc.Search(r.Context(), q.Get("pet"), q.Get("location"))
		if err != nil {
			httpjson.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeCampaignList(w, items)
	}
}

func writeCampaignList(w http.ResponseWriter, items []Campaign) {
	out := make([]campaignResponse, 0, len(items))
	for _, c := range items {
		out = append(out, toCampaignResponse(c))
	}
	httpjson.WriteJSON(w, http.StatusOK, out)
}

func toCampaignResponse(c Campaign) campaignResponse {
	return campaignResponse{
		ID:               c.ID,
		PetName:          c.PetName,
		Image:            c.Image,
		MaxDonation:      c.MaxDonation,
		DonatedAmount:    c.DonatedAmount,
		Location:         c.Location,
		ShortDescription: c.ShortDescription,
		LongDescription:  c.LongDescription,
		LastDate:         c.LastDate,
		CreatedAt:        c.CreatedAt,
		CreatorEmail:     c.CreatorEmail,
		Paused:           c.Paused,
	}
}

func writeCampaignError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpjson.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		httpjson.WriteError(w, http.StatusNotFound, "campaign not found")
	default:
		httpjson.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
