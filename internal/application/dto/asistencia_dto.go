package dto

import "github.com/shopspring/decimal"

// ImportarDetalleRequest una línea trabajador-labor-cantidad del lote.
type ImportarDetalleRequest struct {
	IDCodigoGeneral string          `json:"idcodigogeneral"`
	IDActividad     string          `json:"idactividad"`
	IDLabor         string          `json:"idlabor"`
	IDConsumidor    string          `json:"idconsumidor"`
	Cantidad        decimal.Decimal `json:"cantidad"`
}

// ImportarAsistenciaRequest entrada del POST /importar-asistencia/.
// IDCodigoGeneral a nivel de cabecera es el trabajador de esta importación:
// solo se usa para el control de duplicados, no se persiste en la cabecera.
// La fecha NO se acepta del cliente; se estampa desde la jornada abierta.
type ImportarAsistenciaRequest struct {
	IDCodigoGeneral string                   `json:"idcodigogeneral"`
	IDEmpresa       string                   `json:"idempresa"`
	TipoEnvio       string                   `json:"tipo_envio"`
	IDResponsable   string                   `json:"idresponsable"`
	IDPlanilla      string                   `json:"idplanilla"`
	IDEmisor        string                   `json:"idemisor"`
	IDTurno         string                   `json:"idturno"`
	IDSucursal      string                   `json:"idsucursal"`
	IDEspecie       string                   `json:"idespecie"`
	Detalle         []ImportarDetalleRequest `json:"detalle"`
}

// ActualizarCantidadRequest entrada de los PUT de cantidad.
type ActualizarCantidadRequest struct {
	Cantidad *decimal.Decimal `json:"cantidad"`
}

// DetalleResponse una línea de detalle en las respuestas.
type DetalleResponse struct {
	Item            int             `json:"item"`
	IDCodigoGeneral string          `json:"idcodigogeneral"`
	IDActividad     string          `json:"idactividad"`
	IDLabor         string          `json:"idlabor"`
	IDConsumidor    string          `json:"idconsumidor"`
	Cantidad        decimal.Decimal `json:"cantidad"`
}

// AsistenciaResponse cabecera con su detalle.
type AsistenciaResponse struct {
	ID            int64             `json:"id"`
	IDEmpresa     string            `json:"idempresa"`
	TipoEnvio     string            `json:"tipo_envio"`
	IDResponsable string            `json:"idresponsable"`
	IDPlanilla    string            `json:"idplanilla"`
	IDEmisor      string            `json:"idemisor"`
	IDTurno       string            `json:"idturno"`
	Fecha         string            `json:"fecha"`
	IDSucursal    string            `json:"idsucursal"`
	IDEspecie     string            `json:"idespecie"`
	Detalle       []DetalleResponse `json:"detalle"`
}
