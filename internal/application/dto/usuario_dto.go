package dto

import "time"

// CrearUsuarioRequest entrada para crear un usuario (password en texto, se
// hashea en el use case).
type CrearUsuarioRequest struct {
	DNI         string `json:"dni"`
	ApelNomb    string `json:"apel_nomb"`
	Password    string `json:"password"`
	TipoUsuario string `json:"tipo_usuarioapp"`
	IsStaff     bool   `json:"is_staff"`
}

// ActualizarUsuarioRequest entrada del PUT por DNI. Los punteros distinguen
// "no enviado" de "enviado vacío". El password se ignora en actualizaciones.
type ActualizarUsuarioRequest struct {
	ApelNomb    *string `json:"apel_nomb"`
	TipoUsuario *string `json:"tipo_usuarioapp"`
	IsActive    *bool   `json:"is_active"`
	IsStaff     *bool   `json:"is_staff"`
}

// UsuarioResponse salida de un usuario (sin password).
type UsuarioResponse struct {
	ID          string    `json:"id"`
	DNI         string    `json:"dni"`
	ApelNomb    string    `json:"apel_nomb"`
	TipoUsuario string    `json:"tipo_usuarioapp"`
	IsActive    bool      `json:"is_active"`
	IsStaff     bool      `json:"is_staff"`
	DateJoined  time.Time `json:"date_joined"`
}

// LoginRequest entrada del POST /token/.
type LoginRequest struct {
	DNI      string `json:"dni"`
	Password string `json:"password"`
}

// LoginResponse salida con el token JWT.
type LoginResponse struct {
	ID     string `json:"id"`
	Access string `json:"access"`
}
