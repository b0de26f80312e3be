package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-adoption-api/internal/router"
)

func TestHTTP_Liveness(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 liveness, got %d", st)
	}
	if string(body) != "pet adoption server is running" {
		t.Fatalf("unexpected liveness body: %q", string(body))
	}
}

func TestHTTP_EndToEnd_DonationLifecycle(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) Crear campaña
	campaignID := createCampaign(t, ts.URL, map[string]any{
		"petName":          "Buddy",
		"image":            "https://cdn.example.com/buddy.jpg",
		"maxDonation":      500,
		"location":         "Lima",
		"shortDescription": "Surgery",
		"longDescription":  "Buddy needs hip surgery",
		"lastDate":         "2026-12-31",
		"creatorEmail":     "ana@example.com",
	})

	// 2) La campaña arranca con donatedAmount=0 y paused=false
	{
		st, body := doReq(t, ts.URL, "GET", "/api/donations/"+campaignID, "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get campaign, got %d body=%s", st, string(body))
		}
		c := decodeMap(t, body)
		if c["donatedAmount"].(float64) != 0 {
			t.Fatalf("expected donatedAmount=0, got %v", c["donatedAmount"])
		}
		if c["paused"].(bool) != false {
			t.Fatalf("expected paused=false, got %v", c["paused"])
		}
	}

	// 3) Donar 10 (number) y luego "5" (string numérico): ambos cuentan
	{
		st, body := doReq(t, ts.URL, "PATCH", "/api/donations/"+campaignID+"/donate", "", map[string]any{"amount": 10})
		if st != http.StatusOK {
			t.Fatalf("expected 200 donate, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "PATCH", "/api/donations/"+campaignID+"/donate", "", map[string]any{"amount": "5"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 donate with string amount, got %d body=%s", st, string(body))
		}
		c := decodeMap(t, body)
		if c["donatedAmount"].(float64) != 15 {
			t.Fatalf("expected donatedAmount=15, got %v", c["donatedAmount"])
		}
	}

	// 4) amount no numérico => 400
	{
		st, _ := doReq(t, ts.URL, "PATCH", "/api/donations/"+campaignID+"/donate", "", map[string]any{"amount": "lots"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for non-numeric amount, got %d", st)
		}
	}

	// 5) Donar contra campaña inexistente => 404
	{
		st, _ := doReq(t, ts.URL, "PATCH", "/api/donations/nope/donate", "", map[string]any{"amount": 1})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 donate unknown campaign, got %d", st)
		}
	}

	// 6) Búsqueda case-insensitive por substring
	{
		st, body := doReq(t, ts.URL, "GET", "/api/donations/search?pet=bud", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 search, got %d", st)
		}
		items := decodeList(t, body)
		if len(items) != 1 || items[0]["petName"] != "Buddy" {
			t.Fatalf("expected Buddy via pet=bud, got %v", items)
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/api/donations/search?location=LIM", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 search by location, got %d", st)
		}
		if items := decodeList(t, body); len(items) != 1 {
			t.Fatalf("expected 1 campaign via location=LIM, got %d", len(items))
		}
	}

	// 7) my-donations exige email
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/my-donations", "", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 my-donations without email, got %d", st)
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/api/my-donations?email=ana@example.com", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 my-donations, got %d", st)
		}
		if items := decodeList(t, body); len(items) != 1 {
			t.Fatalf("expected 1 campaign for ana, got %d", len(items))
		}
	}
}

func TestHTTP_DonationPagination(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 8 campañas; el listado ordena por createdAt desc, así que la página 2
	// (limit 6) debe traer las dos más viejas.
	for i := 1; i <= 8; i++ {
		createCampaign(t, ts.URL, map[string]any{
			"petName":          fmt.Sprintf("pet-%d", i),
			"image":            "https://cdn.example.com/p.jpg",
			"maxDonation":      100,
			"shortDescription": "s",
			"longDescription":  "l",
			"lastDate":         "2026-12-31",
			"creatorEmail":     "ana@example.com",
		})
	}

	st, body := doReq(t, ts.URL, "GET", "/api/donations?page=2&limit=6", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 paginated list, got %d", st)
	}
	items := decodeList(t, body)
	if len(items) != 2 {
		t.Fatalf("expected 2 items on page 2, got %d", len(items))
	}
	if items[0]["petName"] != "pet-2" || items[1]["petName"] != "pet-1" {
		t.Fatalf("expected [pet-2 pet-1] on page 2, got [%v %v]", items[0]["petName"], items[1]["petName"])
	}

	// page/limit no numéricos caen al default 1/6 en silencio
	st, body = doReq(t, ts.URL, "GET", "/api/donations?page=abc&limit=xyz", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 with garbage paging, got %d", st)
	}
	items = decodeList(t, body)
	if len(items) != 6 {
		t.Fatalf("expected default limit 6, got %d", len(items))
	}
	if items[0]["petName"] != "pet-8" {
		t.Fatalf("expected newest first, got %v", items[0]["petName"])
	}
}

func TestHTTP_PetFlow(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// adopted/createdAt del cliente se descartan siempre
	st, body := doReq(t, ts.URL, "POST", "/api/pets", "", map[string]any{
		"id":        "pet-abc",
		"name":      "Milo",
		"age":       "3", // string numérico: se coerciona
		"category":  "dog",
		"image":     "https://cdn.example.com/milo.jpg",
		"location":  "Cusco",
		"userEmail": "ana@example.com",
		"adopted":   true,
		"createdAt": "1999-01-01T00:00:00Z",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}

	// Lookup por id de negocio, no por _id del store
	st, body = doReq(t, ts.URL, "GET", "/api/pets/pet-abc", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 get pet, got %d body=%s", st, string(body))
	}
	p := decodeMap(t, body)
	if p["adopted"].(bool) != false {
		t.Fatalf("expected adopted=false ignoring client value, got %v", p["adopted"])
	}
	if p["createdAt"] == "1999-01-01T00:00:00Z" {
		t.Fatalf("client createdAt must be ignored")
	}
	if p["age"].(float64) != 3 {
		t.Fatalf("expected age=3, got %v", p["age"])
	}

	// Requerido faltante: reporta el primero en orden fijo
	st, body = doReq(t, ts.URL, "POST", "/api/pets", "", map[string]any{
		"age":      2,
		"category": "cat",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 missing name, got %d", st)
	}
	if msg := decodeMap(t, body)["message"]; msg != "invalid input: name is required" {
		t.Fatalf("unexpected validation message: %v", msg)
	}

	// mypets exige email y filtra por dueño
	st, _ = doReq(t, ts.URL, "GET", "/api/mypets", "", nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 mypets without email, got %d", st)
	}
	st, body = doReq(t, ts.URL, "GET", "/api/mypets?email=ana@example.com", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 mypets, got %d", st)
	}
	if items := decodeList(t, body); len(items) != 1 {
		t.Fatalf("expected 1 pet for ana, got %d", len(items))
	}

	st, _ = doReq(t, ts.URL, "GET", "/api/pets/unknown", "", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 unknown pet, got %d", st)
	}
}

func TestHTTP_AdoptionFlow(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// Sin requesterEmail => 400 y no inserta nada
	st, _ := doReq(t, ts.URL, "POST", "/api/adopt", "", map[string]any{
		"petId":         "pet-abc",
		"petName":       "Milo",
		"requesterName": "Jorge",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 missing requesterEmail, got %d", st)
	}
	st, body := doReq(t, ts.URL, "GET", "/api/adoptions", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list adoptions, got %d", st)
	}
	if items := decodeList(t, body); len(items) != 0 {
		t.Fatalf("expected no requests after failed submit, got %d", len(items))
	}

	// Submit válido: arranca pending, opcionales en ""
	st, body = doReq(t, ts.URL, "POST", "/api/adopt", "", map[string]any{
		"petId":          "pet-abc",
		"petName":        "Milo",
		"requesterName":  "Jorge",
		"requesterEmail": "jorge@example.com",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 submit, got %d body=%s", st, string(body))
	}
	requestID := decodeMap(t, body)["id"].(string)

	st, body = doReq(t, ts.URL, "GET", "/api/adoptions", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list adoptions, got %d", st)
	}
	items := decodeList(t, body)
	if len(items) != 1 || items[0]["status"] != "pending" {
		t.Fatalf("expected one pending request, got %v", items)
	}
	if items[0]["petImage"] != "" || items[0]["ownerEmail"] != "" {
		t.Fatalf("expected optional fields defaulted to empty, got %v", items[0])
	}

	// Cambios de status: no hay grafo, cualquier transición vale
	for _, status := range []string{"accepted", "rejected", "accepted", "accepted"} {
		st, body = doReq(t, ts.URL, "PATCH", "/api/adoptions/"+requestID+"/status", "", map[string]any{"status": status})
		if st != http.StatusOK {
			t.Fatalf("expected 200 status=%s, got %d body=%s", status, st, string(body))
		}
		if got := decodeMap(t, body)["status"]; got != status {
			t.Fatalf("expected status %s, got %v", status, got)
		}
	}

	// Status inválido => 400, id desconocido => 404
	st, _ = doReq(t, ts.URL, "PATCH", "/api/adoptions/"+requestID+"/status", "", map[string]any{"status": "maybe"})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 invalid status, got %d", st)
	}
	st, _ = doReq(t, ts.URL, "PATCH", "/api/adoptions/nope/status", "", map[string]any{"status": "accepted"})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 unknown request, got %d", st)
	}
}

func TestHTTP_UserUpsert_Idempotent(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "POST", "/api/users", "", map[string]any{
		"name":  "Ana",
		"email": "ana@example.com",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 upsert, got %d body=%s", st, string(body))
	}
	first := decodeMap(t, body)
	if first["role"] != "user" {
		t.Fatalf("expected default role user, got %v", first["role"])
	}

	// Segundo upsert con name cambiado: mismo _id, mismo role
	st, body = doReq(t, ts.URL, "POST", "/api/users", "", map[string]any{
		"name":         "Ana María",
		"email":        "ana@example.com",
		"profileImage": "https://cdn.example.com/ana.jpg",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 second upsert, got %d body=%s", st, string(body))
	}
	second := decodeMap(t, body)
	if second["_id"] != first["_id"] {
		t.Fatalf("expected same _id after re-upsert, got %v vs %v", second["_id"], first["_id"])
	}
	if second["name"] != "Ana María" {
		t.Fatalf("expected updated name, got %v", second["name"])
	}
	if second["role"] != "user" {
		t.Fatalf("expected role preserved, got %v", second["role"])
	}

	// email faltante => 400
	st, _ = doReq(t, ts.URL, "POST", "/api/users", "", map[string]any{"name": "Sin Email"})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 upsert without email, got %d", st)
	}
}

func TestHTTP_AdminGuard(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// Sin header de identidad => 401
	st, _ := doReq(t, ts.URL, "GET", "/api/users", "", nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %d", st)
	}

	// Identidad desconocida => 403
	st, _ = doReq(t, ts.URL, "GET", "/api/users", "ghost@example.com", nil)
	if st != http.StatusForbidden {
		t.Fatalf("expected 403 unknown caller, got %d", st)
	}

	// Usuario registrado pero sin rol admin => 403
	st, _ = doReq(t, ts.URL, "POST", "/api/users", "", map[string]any{
		"name":  "Ana",
		"email": "ana@example.com",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 upsert, got %d", st)
	}
	st, _ = doReq(t, ts.URL, "GET", "/api/users", "ana@example.com", nil)
	if st != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin caller, got %d", st)
	}

	// El guard también cubre el cambio de rol
	st, _ = doReq(t, ts.URL, "PATCH", "/api/users/some-id/role", "ana@example.com", map[string]any{"role": "admin"})
	if st != http.StatusForbidden {
		t.Fatalf("expected 403 role change by non-admin, got %d", st)
	}
}

func createCampaign(t *testing.T, baseURL string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/donations", "", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create campaign, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create campaign: missing id body=%s", string(body))
	}
	return resp.ID
}

func decodeMap(t *testing.T, body []byte) map[string]any {
	t.Helper()

	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		t.Fatalf("decode object: %v body=%s", err, string(body))
	}
	return m
}

func decodeList(t *testing.T, body []byte) []map[string]any {
	t.Helper()

	var items []map[string]any
	if err := json.Unmarshal(body, &items); err != nil {
		t.Fatalf("decode array: %v body=%s", err, string(body))
	}
	return items
}

func doReq(t *testing.T, baseURL, method, path, callerEmail string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if callerEmail != "" {
		req.Header.Set("X-User-Email", callerEmail)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
