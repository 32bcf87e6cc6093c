package entity

import "time"

// Roles de usuario. El rol se asigna en el alta ("user" por defecto) y solo
// cambia fuera de banda (seed del admin o intervención directa en la DB).
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User representa una identidad autenticada vía el proveedor externo.
// Se crea (upsert por email) en el primer intercambio de sesión exitoso.
type User struct {
	ID        string
	Email     string
	Name      string
	Picture   string // avatar entregado por el proveedor; puede estar vacío
	Role      string // "user" | "admin"
	CreatedAt time.Time
}

// IsAdmin informa si el usuario tiene rol de administrador.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
