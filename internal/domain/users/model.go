package users

import "time"

// Role define los roles soportados.
// @Enum user, admin
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

// User es el perfil mínimo de la plataforma, clave de negocio: email.
// Role se asigna solo en el primer insert; el upsert nunca lo pisa.
type User struct {
	ID           string
	Email        string
	Name         string
	ProfileImage string
	Role         Role
	CreatedAt    time.Time
}
