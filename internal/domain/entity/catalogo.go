package entity

// Catalogo es una entidad de referencia simple {código, nombre}. Todas las
// tablas de catálogo (empresa, emisor, especie, turno, responsable,
// planilla, consumidor) comparten esta forma; cambian la tabla y el ancho
// del código correlativo.
type Catalogo struct {
	ID     string // código de ancho fijo con ceros a la izquierda
	Nombre string
}

// TipoEnvio es el catálogo degenerado cuyo código es la primera letra del
// nombre capitalizado ("Fresco" -> "F").
type TipoEnvio struct {
	TipoEnvio string // 1 carácter
	Nombre    string
}
