package entity

// Estados válidos para Jornada.
const (
	EstadoAbierto = "Abierto"
	EstadoCerrado = "Cerrado"
)

// Formatos de fecha y hora usados en todo el sistema.
const (
	FormatoFecha = "20060102" // YYYYMMDD
	FormatoHora  = "15:04:05" // HH:MM:SS
)

// Jornada representa la ventana de día abierto/cerrado que habilita la
// importación de asistencia. A lo sumo una jornada está en estado Abierto.
type Jornada struct {
	ID           int64
	FechaAbierto string // YYYYMMDD
	HoraAbierto  string // HH:MM:SS
	Estado       string // Abierto | Cerrado
	FechaCerrado string // vacío mientras la jornada siga abierta
	HoraCerrado  string
}

// Abierta indica si la jornada sigue en estado Abierto.
func (j *Jornada) Abierta() bool {
	return j != nil && j.Estado == EstadoAbierto
}
