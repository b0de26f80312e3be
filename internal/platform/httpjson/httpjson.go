package httpjson

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse es el cuerpo uniforme de error de toda la API.
type ErrorResponse struct {
	Message string `json:"message"`
}

// WriteJSON vivía duplicado por módulo; con cuatro módulos de dominio
// repitiéndolo ya conviene el helper común.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, ErrorResponse{Message: msg})
}
