package donations

import "time"

// Campaign es una campaña de donación para una mascota.
//
// DonatedAmount arranca en 0 y solo se muta por incremento atómico del store;
// nunca se pisa entero. No hay tope contra MaxDonation (contrato heredado:
// sobre-fondear está permitido).
//
// Paused se persiste en false y hoy ningún endpoint lo lee ni lo modifica.
type Campaign struct {
	ID string

	PetName string
	Image   string

	MaxDonation   float64
	DonatedAmount float64

	Location         string
	ShortDescription string
	LongDescription  string

	LastDate  time.Time // fecha calendario (YYYY-MM-DD)
	CreatedAt time.Time

	CreatorEmail string
	Paused       bool
}
