// Package pdf genera el reporte de asistencia de una jornada.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de asistencia  │  Fecha jornada + estado   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Por cada importación:                                      │
//	│    Cabecera: N° + empresa / turno / planilla                │
//	│    TABLA: Item | Trabajador | Actividad | Labor | Cantidad  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: líneas y cantidad acumulada de la jornada         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/acuinorte/asistencia-api/internal/application/reporte"
	"github.com/acuinorte/asistencia-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ reporte.GeneradorPDF = (*MarotoReporteGenerator)(nil)

// MarotoReporteGenerator implementa reporte.GeneradorPDF usando Maroto v2.
type MarotoReporteGenerator struct{}

// NewMarotoReporteGenerator construye el generador.
func NewMarotoReporteGenerator() *MarotoReporteGenerator { return &MarotoReporteGenerator{} }

// GenerarReporteJornada genera el PDF y devuelve sus bytes.
func (g *MarotoReporteGenerator) GenerarReporteJornada(
	_ context.Context,
	jornada *entity.Jornada,
	asistencias []*entity.Asistencia,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de asistencia", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(jornada))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	totalLineas := 0
	totalCantidad := decimal.Zero
	for _, a := range asistencias {
		m.AddRows(asistenciaRow(a))
		m.AddRows(tableHeaderRow())
		for _, r := range tableDetailRows(a.Detalle) {
			m.AddRows(r)
		}
		totalLineas += len(a.Detalle)
		for _, d := range a.Detalle {
			totalCantidad = totalCantidad.Add(d.Cantidad)
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(len(asistencias), totalLineas, totalCantidad))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha + estado de la jornada (der).
func headerRow(jornada *entity.Jornada) core.Row {
	fecha := formatoFechaLegible(jornada.FechaAbierto)
	estado := jornada.Estado
	if jornada.FechaCerrado != "" {
		estado += " " + formatoFechaLegible(jornada.FechaCerrado) + " " + jornada.HoraCerrado
	}

	return row.New(16).Add(
		col.New(7).Add(
			text.New("REPORTE DE ASISTENCIA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Jornada abierta: "+fecha+" "+jornada.HoraAbierto, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(estado, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 4,
			}),
		),
	)
}

// asistenciaRow: cabecera de una importación.
func asistenciaRow(a *entity.Asistencia) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Importación N° %d", a.ID), props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
			}),
			text.New(fmt.Sprintf("Empresa: %s   |   Turno: %s   |   Planilla: %s   |   Especie: %s",
				nonEmpty(a.IDEmpresa, "—"),
				nonEmpty(a.IDTurno, "—"),
				nonEmpty(a.IDPlanilla, "—"),
				nonEmpty(a.IDEspecie, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de detalle.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Item", 1, align.Center),
		h("Trabajador", 3, align.Left),
		h("Actividad", 2, align.Center),
		h("Labor", 2, align.Center),
		h("Consumidor", 2, align.Center),
		h("Cantidad", 2, align.Right),
	)
}

// tableDetailRows: una fila por línea de detalle.
func tableDetailRows(detalle []entity.AsistenciaDetalle) []core.Row {
	result := make([]core.Row, 0, len(detalle))
	for _, d := range detalle {
		result = append(result, row.New(6).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", d.Item),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				d.IDCodigoGeneral,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(d.IDActividad, "—"),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(d.IDLabor, "—"),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(d.IDConsumidor, "—"),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				d.Cantidad.StringFixed(3),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: resumen de la jornada alineado a la derecha.
func totalsRow(importaciones, lineas int, cantidad decimal.Decimal) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}

	return row.New(20).Add(
		col.New(4),
		col.New(4).Add(
			label("Importaciones:", 2),
			label("Líneas de detalle:", 7),
			label("Cantidad total:", 12),
		),
		col.New(4).Add(
			value(fmt.Sprintf("%d", importaciones), 2),
			value(fmt.Sprintf("%d", lineas), 7),
			value(cantidad.StringFixed(3), 12),
		),
	)
}

// formatoFechaLegible convierte YYYYMMDD en DD/MM/YYYY para el reporte.
func formatoFechaLegible(fecha string) string {
	if len(fecha) != 8 {
		return fecha
	}
	return fecha[6:8] + "/" + fecha[4:6] + "/" + fecha[0:4]
}

func nonEmpty(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
