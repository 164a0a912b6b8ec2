package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acuinorte/asistencia-api/internal/application/asistencia"
	"github.com/acuinorte/asistencia-api/internal/application/jornada"
	"github.com/acuinorte/asistencia-api/internal/domain"
	"github.com/acuinorte/asistencia-api/internal/domain/entity"
	"github.com/acuinorte/asistencia-api/internal/domain/repository"
	apphttp "github.com/acuinorte/asistencia-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para el stack jornada + asistencia
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	jornadas   []*entity.Jornada
	cabeceras  []*entity.Asistencia
	detalles   []entity.AsistenciaDetalle
	nextCabID  int64
	nextJornID int64
}

// --- repository.JornadaRepository ---

type memJornadaRepo struct{ s *memStore }

func (r *memJornadaRepo) Crear(_ context.Context, j *entity.Jornada) error {
	for _, e := range r.s.jornadas {
		if e.Estado == entity.EstadoAbierto {
			return domain.ErrDuplicado
		}
	}
	r.s.nextJornID++
	j.ID = r.s.nextJornID
	cp := *j
	r.s.jornadas = append(r.s.jornadas, &cp)
	return nil
}

func (r *memJornadaRepo) Abierta(_ context.Context) (*entity.Jornada, error) {
	for _, j := range r.s.jornadas {
		if j.Estado == entity.EstadoAbierto {
			cp := *j
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memJornadaRepo) Cerrar(_ context.Context, fecha, hora string) (*entity.Jornada, error) {
	for _, j := range r.s.jornadas {
		if j.Estado == entity.EstadoAbierto {
			j.Estado = entity.EstadoCerrado
			j.FechaCerrado = fecha
			j.HoraCerrado = hora
			cp := *j
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memJornadaRepo) MasReciente(_ context.Context) (*entity.Jornada, error) {
	n := len(r.s.jornadas)
	if n == 0 {
		return nil, nil
	}
	cp := *r.s.jornadas[n-1]
	return &cp, nil
}

func (r *memJornadaRepo) PorFecha(_ context.Context, fecha string) (*entity.Jornada, error) {
	for _, j := range r.s.jornadas {
		if j.FechaAbierto == fecha {
			cp := *j
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memJornadaRepo) Listar(_ context.Context) ([]*entity.Jornada, error) {
	return r.s.jornadas, nil
}

// --- repository.AsistenciaRepository ---

type memAsistenciaRepo struct{ s *memStore }

func (r *memAsistenciaRepo) Crear(_ context.Context, a *entity.Asistencia) error {
	r.s.nextCabID++
	a.ID = r.s.nextCabID
	cp := *a
	cp.Detalle = nil
	r.s.cabeceras = append(r.s.cabeceras, &cp)
	return nil
}

func (r *memAsistenciaRepo) CrearDetalle(_ context.Context, d *entity.AsistenciaDetalle) error {
	r.s.detalles = append(r.s.detalles, *d)
	return nil
}

func (r *memAsistenciaRepo) ExisteTrabajadorEnFecha(_ context.Context, idCodigoGeneral, fecha string) (bool, error) {
	for _, d := range r.s.detalles {
		a := r.cabecera(d.AsistenciaID)
		if a != nil && a.Fecha == fecha && d.IDCodigoGeneral == idCodigoGeneral {
			return true, nil
		}
	}
	return false, nil
}

func (r *memAsistenciaRepo) DetallePorLaborYFecha(_ context.Context, idCodigoGeneral, idLabor, fecha string) (*entity.AsistenciaDetalle, error) {
	for _, d := range r.s.detalles {
		a := r.cabecera(d.AsistenciaID)
		if a != nil && a.Fecha == fecha && d.IDCodigoGeneral == idCodigoGeneral && d.IDLabor == idLabor {
			cp := d
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memAsistenciaRepo) DetallePorTrabajadorDesde(_ context.Context, idCodigoGeneral, desde string) (*entity.AsistenciaDetalle, error) {
	for _, d := range r.s.detalles {
		a := r.cabecera(d.AsistenciaID)
		if a != nil && a.Fecha >= desde && d.IDCodigoGeneral == idCodigoGeneral {
			cp := d
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memAsistenciaRepo) ActualizarCantidad(_ context.Context, asistenciaID int64, item int, cantidad decimal.Decimal) error {
	for i, d := range r.s.detalles {
		if d.AsistenciaID == asistenciaID && d.Item == item {
			r.s.detalles[i].Cantidad = cantidad
			return nil
		}
	}
	return domain.ErrDetalleNoEncontrado
}

func (r *memAsistenciaRepo) PorID(_ context.Context, id int64) (*entity.Asistencia, error) {
	a := r.cabecera(id)
	if a == nil {
		return nil, nil
	}
	return r.conDetalle(a), nil
}

func (r *memAsistenciaRepo) PorRango(_ context.Context, desde, hasta, idCodigoGeneral string) ([]*entity.Asistencia, error) {
	var out []*entity.Asistencia
	for _, a := range r.s.cabeceras {
		if a.Fecha < desde || a.Fecha > hasta {
			continue
		}
		if idCodigoGeneral != "" {
			found := false
			for _, d := range r.s.detalles {
				if d.AsistenciaID == a.ID && d.IDCodigoGeneral == idCodigoGeneral {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, r.conDetalle(a))
	}
	return out, nil
}

func (r *memAsistenciaRepo) Listar(_ context.Context) ([]*entity.Asistencia, error) {
	out := make([]*entity.Asistencia, 0, len(r.s.cabeceras))
	for _, a := range r.s.cabeceras {
		out = append(out, r.conDetalle(a))
	}
	return out, nil
}

func (r *memAsistenciaRepo) cabecera(id int64) *entity.Asistencia {
	for _, a := range r.s.cabeceras {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (r *memAsistenciaRepo) conDetalle(a *entity.Asistencia) *entity.Asistencia {
	cp := *a
	cp.Detalle = nil
	for _, d := range r.s.detalles {
		if d.AsistenciaID == a.ID {
			cp.Detalle = append(cp.Detalle, d)
		}
	}
	return &cp
}

// --- asistencia.TxRunner ---

type memTxRunner struct{ repo *memAsistenciaRepo }

func (m *memTxRunner) Run(_ context.Context, fn func(repo repository.AsistenciaRepository) error) error {
	s := m.repo.s
	cabeceras := make([]*entity.Asistencia, len(s.cabeceras))
	copy(cabeceras, s.cabeceras)
	detalles := make([]entity.AsistenciaDetalle, len(s.detalles))
	copy(detalles, s.detalles)
	if err := fn(m.repo); err != nil {
		s.cabeceras = cabeceras
		s.detalles = detalles
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// App de test con las rutas de jornada y asistencia
// ──────────────────────────────────────────────────────────────────────────────

func buildAsistenciaApp(t *testing.T) (*fiber.App, string) {
	t.Helper()
	store := &memStore{}
	jornadaRepo := &memJornadaRepo{s: store}
	asistenciaRepo := &memAsistenciaRepo{s: store}

	jornadaUC := jornada.NewUseCase(jornadaRepo)
	importarUC := asistencia.NewImportarUseCase(jornadaRepo, &memTxRunner{repo: asistenciaRepo})
	consultaUC := asistencia.NewConsultaUseCase(jornadaRepo, asistenciaRepo)

	app := fiber.New()
	api := app.Group("/api", apphttp.AuthMiddleware(testJWTSecret))

	jh := apphttp.NewJornadaHandler(jornadaUC)
	api.Post("/estado/", jh.Abrir)
	api.Put("/estado/", jh.Cerrar)
	api.Get("/registros/", jh.Listar)

	ah := apphttp.NewAsistenciaHandler(importarUC, consultaUC)
	api.Post("/importar-asistencia/", ah.Importar)
	api.Put("/asistencia/:idcodigogeneral/:idlabor/", ah.ActualizarPorLabor)
	api.Get("/pota/importarasistencia/", ah.ListarJornadaActual)
	api.Put("/pota/importarasistencia/:idcodigogeneral/", ah.ActualizarPorTrabajador)
	api.Get("/ingresos-dia-actual/", ah.IngresosDiaActual)
	api.Get("/ingresos-dia-actual/:idcodigogeneral/", ah.IngresosDiaActual)

	return app, tokenForTipo(t, entity.TipoProceso)
}

func doJSON(t *testing.T, app *fiber.App, method, path, token, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

const loteJSON = `{
	"idcodigogeneral": "45678901",
	"idempresa": "001",
	"tipo_envio": "N",
	"idturno": "01",
	"detalle": [
		{"idcodigogeneral": "45678901", "idlabor": "L01", "cantidad": "8"},
		{"idcodigogeneral": "45678901", "idlabor": "L02", "cantidad": "2.5"}
	]
}`

// ──────────────────────────────────────────────────────────────────────────────
// Estado (abrir / cerrar el día)
// ──────────────────────────────────────────────────────────────────────────────

func TestEstado_AbrirYCerrar(t *testing.T) {
	app, token := buildAsistenciaApp(t)

	// Abrir → 201 con la jornada abierta.
	resp := doJSON(t, app, http.MethodPost, "/api/estado/", token, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var abierta map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&abierta))
	assert.Equal(t, "Abierto", abierta["estado"])
	assert.NotEmpty(t, abierta["FechaAbierto"])

	// Segundo abrir → 400 conflicto.
	resp2 := doJSON(t, app, http.MethodPost, "/api/estado/", token, "")
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp2.StatusCode)

	// Cerrar → 200 con fecha de cierre.
	resp3 := doJSON(t, app, http.MethodPut, "/api/estado/", token, "")
	defer resp3.Body.Close()
	require.Equal(t, http.StatusOK, resp3.StatusCode)

	var cerrada map[string]interface{}
	require.NoError(t, json.NewDecoder(resp3.Body).Decode(&cerrada))
	assert.Equal(t, "Cerrado", cerrada["estado"])
	assert.NotEmpty(t, cerrada["FechaCerrado"])
}

func TestEstado_CerrarSinAbrir_Retorna400(t *testing.T) {
	app, token := buildAsistenciaApp(t)

	resp := doJSON(t, app, http.MethodPut, "/api/estado/", token, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEstado_SinToken_Retorna401(t *testing.T) {
	app, _ := buildAsistenciaApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/estado/", "", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Importación
// ──────────────────────────────────────────────────────────────────────────────

func TestImportar_SinJornadaAbierta_Retorna400(t *testing.T) {
	app, token := buildAsistenciaApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/importar-asistencia/", token, loteJSON)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestImportar_LoteValido_Retorna201(t *testing.T) {
	app, token := buildAsistenciaApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/estado/", token, "")
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/importar-asistencia/", token, loteJSON)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var a map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&a))
	detalle, ok := a["detalle"].([]interface{})
	require.True(t, ok)
	assert.Len(t, detalle, 2)
}

func TestImportar_TrabajadorRepetido_Retorna400(t *testing.T) {
	app, token := buildAsistenciaApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/estado/", token, "")
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodPost, "/api/importar-asistencia/", token, loteJSON)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/importar-asistencia/", token, loteJSON)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Actualización de cantidad
// ──────────────────────────────────────────────────────────────────────────────

func TestActualizarPorLabor_Retorna200(t *testing.T) {
	app, token := buildAsistenciaApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/estado/", token, "")
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodPost, "/api/importar-asistencia/", token, loteJSON)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPut, "/api/asistencia/45678901/L02/", token, `{"cantidad": "5"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var a map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&a))
	detalle := a["detalle"].([]interface{})
	linea := detalle[1].(map[string]interface{})
	assert.Equal(t, "5", linea["cantidad"], "la línea L02 toma la nueva cantidad")
}

func TestActualizarPorLabor_DetalleInexistente_Retorna404(t *testing.T) {
	app, token := buildAsistenciaApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/estado/", token, "")
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPut, "/api/asistencia/45678901/L99/", token, `{"cantidad": "5"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestActualizarPorLabor_SinCantidad_Retorna400(t *testing.T) {
	app, token := buildAsistenciaApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/estado/", token, "")
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPut, "/api/asistencia/45678901/L01/", token, `{}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestActualizarPorTrabajador_Retorna200(t *testing.T) {
	app, token := buildAsistenciaApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/estado/", token, "")
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodPost, "/api/importar-asistencia/", token, loteJSON)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPut, "/api/pota/importarasistencia/45678901/", token, `{"cantidad": "10"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Sin jornada abierta, el listado del día no existe como recurso: 404. El
// listado equivalente bajo /pota/ conserva el 400 de precondición.
func TestIngresosDiaActual_SinJornadaAbierta_Retorna404(t *testing.T) {
	app, token := buildAsistenciaApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/ingresos-dia-actual/", token, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp2 := doJSON(t, app, http.MethodGet, "/api/ingresos-dia-actual/45678901/", token, "")
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp2.StatusCode)

	resp3 := doJSON(t, app, http.MethodGet, "/api/pota/importarasistencia/", token, "")
	defer resp3.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp3.StatusCode)
}

func TestIngresosDiaActual_FiltraPorTrabajador(t *testing.T) {
	app, token := buildAsistenciaApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/estado/", token, "")
	resp.Body.Close()
	resp = doJSON(t, app, http.MethodPost, "/api/importar-asistencia/", token, loteJSON)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/ingresos-dia-actual/45678901/", token, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Len(t, list, 1)

	resp2 := doJSON(t, app, http.MethodGet, "/api/ingresos-dia-actual/00000000/", token, "")
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp2.StatusCode)
}
