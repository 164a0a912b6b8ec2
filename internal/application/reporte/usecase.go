package reporte

import (
	"context"
	"time"

	"github.com/acuinorte/asistencia-api/internal/domain"
	"github.com/acuinorte/asistencia-api/internal/domain/entity"
	"github.com/acuinorte/asistencia-api/internal/domain/repository"
)

// GeneradorPDF renderiza el reporte de asistencia de una jornada.
// Lo implementa infrastructure/pdf.
type GeneradorPDF interface {
	GenerarReporteJornada(ctx context.Context, jornada *entity.Jornada, asistencias []*entity.Asistencia) ([]byte, error)
}

// UseCase genera el reporte PDF de la jornada de una fecha.
type UseCase struct {
	jornadas    repository.JornadaRepository
	asistencias repository.AsistenciaRepository
	pdf         GeneradorPDF
	ahora       func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(jornadas repository.JornadaRepository, asistencias repository.AsistenciaRepository, pdf GeneradorPDF) *UseCase {
	return &UseCase{jornadas: jornadas, asistencias: asistencias, pdf: pdf, ahora: time.Now}
}

// PDFJornada devuelve los bytes del PDF con las importaciones de la jornada
// abierta en la fecha dada. ErrNoEncontrado si no hubo jornada esa fecha.
func (uc *UseCase) PDFJornada(ctx context.Context, fecha string) ([]byte, error) {
	jornada, err := uc.jornadas.PorFecha(ctx, fecha)
	if err != nil {
		return nil, err
	}
	if jornada == nil {
		return nil, domain.ErrNoEncontrado
	}
	hasta := jornada.FechaCerrado
	if hasta == "" {
		hasta = uc.ahora().Format(entity.FormatoFecha)
	}
	list, err := uc.asistencias.PorRango(ctx, jornada.FechaAbierto, hasta, "")
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerarReporteJornada(ctx, jornada, list)
}
