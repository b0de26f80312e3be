package adoptions

import "time"

// Status define los estados de una solicitud.
// @Enum pending, accepted, rejected
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusAccepted, StatusRejected:
		return Status(s), true
	default:
		return "", false
	}
}

// Request es una solicitud de adopción. No hay grafo de transiciones:
// cualquier status puede pasar a cualquier otro (contrato heredado).
type Request struct {
	ID string

	PetID    string
	PetName  string
	PetImage string

	RequesterName    string
	RequesterEmail   string
	RequesterPhone   string
	RequesterAddress string

	OwnerEmail string

	Status    Status
	CreatedAt time.Time
}
