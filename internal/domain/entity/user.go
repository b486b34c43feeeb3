package entity

import (
	"time"

	"github.com/jhoicas/logistics-api/internal/domain"
)

// Roles válidos para User, en orden jerárquico.
const (
	RoleEmployee   = "employee"
	RoleSupervisor = "supervisor"
	RoleAdmin      = "admin"
)

// roleRank posición de cada rol en la jerarquía employee < supervisor < admin.
var roleRank = map[string]int{
	RoleEmployee:   1,
	RoleSupervisor: 2,
	RoleAdmin:      3,
}

// ParseRole valida un rol leído de la base de datos o de un token.
func ParseRole(role string) (string, error) {
	if _, ok := roleRank[role]; !ok {
		return "", domain.ErrInvalidRole
	}
	return role, nil
}

// RoleAtLeast indica si role tiene acceso a lo permitido para min.
// Un rol desconocido nunca alcanza ningún mínimo.
func RoleAtLeast(role, min string) bool {
	r, ok := roleRank[role]
	if !ok {
		return false
	}
	m, ok := roleRank[min]
	if !ok {
		return false
	}
	return r >= m
}

// User representa a un miembro del personal: empleado o supervisor de una unidad, o el admin.
// UnitName no se persiste: se completa a partir de la unidad al leer.
type User struct {
	ID           string
	Name         string
	Surname      string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	UnitID       string // vacío para el admin
	UnitName     string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin indica si el usuario es el administrador del sistema.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
