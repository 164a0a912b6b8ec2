package entity

import "github.com/shopspring/decimal"

// Asistencia es la cabecera de una importación de asistencia: códigos de
// referencia opacos (no se validan contra los catálogos) y la fecha de la
// jornada abierta en que se creó. Posee sus líneas de detalle.
type Asistencia struct {
	ID            int64
	IDEmpresa     string
	TipoEnvio     string
	IDResponsable string
	IDPlanilla    string
	IDEmisor      string
	IDTurno       string
	Fecha         string // YYYYMMDD, siempre la FechaAbierto de la jornada
	IDSucursal    string
	IDEspecie     string
	Detalle       []AsistenciaDetalle
}

// AsistenciaDetalle es una línea trabajador-labor-cantidad dentro de una
// importación. Item es un correlativo por cabecera que arranca en 1.
type AsistenciaDetalle struct {
	AsistenciaID    int64
	Item            int
	IDCodigoGeneral string // código del trabajador
	IDActividad     string
	IDLabor         string
	IDConsumidor    string
	Cantidad        decimal.Decimal
}
