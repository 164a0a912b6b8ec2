package dto

// JornadaResponse salida de una jornada. Las claves FechaAbierto/HoraAbierto
// van con mayúscula inicial porque así las consumen los clientes existentes.
type JornadaResponse struct {
	ID           int64  `json:"id"`
	FechaAbierto string `json:"FechaAbierto"`
	HoraAbierto  string `json:"HoraAbierto"`
	Estado       string `json:"estado"`
	FechaCerrado string `json:"FechaCerrado,omitempty"`
	HoraCerrado  string `json:"HoraCerrado,omitempty"`
}
