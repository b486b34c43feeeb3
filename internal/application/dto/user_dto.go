package dto

import "time"

// LoginRequest entrada para login. UnitID vacío solo corresponde al admin.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required"`
	UnitID   string `json:"unit_id" validate:"omitempty,max=100"`
}

// LoginResponse salida con token JWT y el perfil del usuario.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// UserResponse perfil de un usuario (sin password).
type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Username string `json:"username"`
	UnitID   string `json:"unit_id"`
	UnitName string `json:"unit_name"`
	Role     string `json:"role"`
}

// ChangePasswordRequest entrada para cambiar la contraseña propia.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,max=72"`
}

// CreateEmployeeRequest entrada para que un supervisor cree un empleado en su unidad.
type CreateEmployeeRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Surname  string `json:"surname" validate:"required,max=200"`
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=72"`
}

// EmployeeListResponse lista paginada de empleados de una unidad.
type EmployeeListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
