package dto

// CatalogoRequest entrada para crear/actualizar una fila de catálogo. El id
// solo se acepta en entidades con código manual (planillas); en el resto se
// asigna el siguiente correlativo.
type CatalogoRequest struct {
	ID     string `json:"id,omitempty"`
	Nombre string `json:"nombre"`
}

// CatalogoResponse fila de catálogo.
type CatalogoResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

// TipoEnvioRequest entrada para crear un tipo de envío (el código se deriva
// del nombre).
type TipoEnvioRequest struct {
	Nombre string `json:"nombre"`
}

// TipoEnvioResponse fila de tipo de envío.
type TipoEnvioResponse struct {
	TipoEnvio string `json:"tipo_envio"`
	Nombre    string `json:"nombre"`
}
