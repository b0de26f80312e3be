package pets

import "time"

// Pet representa una mascota publicada para adopción.
//
// BusinessID es el "id" que manda el cliente al crear y es la clave que usa
// GET /pets/{id} (contrato externo heredado; el id del store viaja como _id).
type Pet struct {
	ID         string
	BusinessID string

	Name     string
	Age      float64
	Category string
	Image    string
	Location string

	UserEmail string // email del dueño, opcional

	Adopted   bool // siempre false al crear; el cliente no lo controla
	CreatedAt time.Time
}
