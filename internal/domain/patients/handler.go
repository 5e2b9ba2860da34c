package patients

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"clinical-records-api/internal/domain/records"
	"clinical-records-api/internal/platform/logger"
)

type resource = records.Resource[Patient, int64]

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	h := resource{Svc: svc, Plural: "patients", ParseID: records.IntID, Log: log}

	r.Route("/patients", func(pr chi.Router) {
		pr.Get("/", listPatientsHandler(h))
		pr.Get("/most_used", mostUsedPatientsHandler(h))
		pr.Get("/{subject_id}", getPatientHandler(h))
	})
}

// listPatientsHandler godoc
// @Summary Listar pacientes paginados
// @Description Páginas de 9 pacientes ordenados por subject_id.
// @Tags patients
// @Produce json
// @Param page query int false "Número de página (default 1)"
// @Success 200 {object} map[string]interface{} "patients + meta{page, per_page, total_patients, total_pages}"
// @Failure 400 {object} respond.Envelope "page must be 1 or greater"
// @Failure 500 {object} respond.Envelope
// @Router /patients/ [get]
func listPatientsHandler(h resource) http.HandlerFunc {
	return h.ListPage()
}

// getPatientHandler godoc
// @Summary Obtener paciente
// @Tags patients
// @Produce json
// @Param subject_id path int true "ID del paciente"
// @Success 200 {object} Patient
// @Failure 404 {object} respond.Envelope "patient not found"
// @Failure 500 {object} respond.Envelope
// @Router /patients/{subject_id} [get]
func getPatientHandler(h resource) http.HandlerFunc {
	return h.Get("subject_id")
}

// mostUsedPatientsHandler godoc
// @Summary Valores más frecuentes de una columna
// @Description field: gender (default) o anchor_year_group.
// @Tags patients
// @Produce json
// @Param field query string false "Columna a agrupar"
// @Param limit query int false "Cantidad de grupos (default 10)"
// @Success 200 {object} map[string]interface{} "most_used_<field>s"
// @Failure 400 {object} respond.Envelope
// @Router /patients/most_used [get]
func mostUsedPatientsHandler(h resource) http.HandlerFunc {
	return h.MostUsed()
}
