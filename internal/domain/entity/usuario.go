package entity

import "time"

// Tipos de usuario válidos.
const (
	TipoAdministrador = "Administrador"
	TipoProceso       = "Proceso"
	TipoSupervisor    = "Supervisor"
)

// TiposUsuario lista los tipos válidos en orden estable (para el endpoint de tipos).
var TiposUsuario = []string{TipoAdministrador, TipoProceso, TipoSupervisor}

// Usuario representa una cuenta del sistema. El DNI (8 o 12 dígitos) es el
// identificador de login.
type Usuario struct {
	ID           string // uuid
	DNI          string
	ApelNomb     string // apellidos y nombres
	TipoUsuario  string // Administrador, Proceso, Supervisor
	PasswordHash string // bcrypt, nunca en claro después de persistir
	IsActive     bool
	IsStaff      bool
	DateJoined   time.Time
}

// TipoValido indica si s es uno de los tipos de usuario conocidos.
func TipoValido(s string) bool {
	for _, t := range TiposUsuario {
		if t == s {
			return true
		}
	}
	return false
}
