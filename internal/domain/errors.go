package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNoEncontrado    = errors.New("recurso no encontrado")
	ErrEntradaInvalida = errors.New("entrada inválida")
	ErrDuplicado       = errors.New("recurso duplicado")
	ErrNoAutorizado    = errors.New("no autorizado")
	ErrProhibido       = errors.New("acceso denegado")

	// Jornada e importación de asistencia.
	ErrJornadaAbierta        = errors.New("ya hay un día abierto")
	ErrSinJornadaAbierta     = errors.New("no hay día abierto")
	ErrTrabajadorYaImportado = errors.New("el trabajador ya fue importado en el día abierto")
	ErrDetalleNoEncontrado   = errors.New("detalle de asistencia no encontrado")
	ErrUsuarioNoEncontrado   = errors.New("usuario no encontrado")
	ErrDNIYaRegistrado       = errors.New("el dni ya está registrado")
	ErrSecuenciaAgotada      = errors.New("secuencia de códigos agotada")
)
