package admissions

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"clinical-records-api/internal/domain/records"
	"clinical-records-api/internal/platform/logger"
)

type resource = records.Resource[Admission, int64]

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	h := resource{Svc: svc, Plural: "admissions", ParseID: records.IntID, Log: log}

	r.Route("/admissions", func(ar chi.Router) {
		ar.Get("/", listAdmissionsHandler(h))
		ar.Get("/most_used", mostUsedAdmissionsHandler(h))
		ar.Get("/{hadm_id}", getAdmissionHandler(h))
	})
}

// listAdmissionsHandler godoc
// @Summary Listar admisiones paginadas
// @Description Páginas de 9 admisiones ordenadas por hadm_id. Una página más allá del final devuelve lista vacía.
// @Tags admissions
// @Produce json
// @Param page query int false "Número de página (default 1)"
// @Success 200 {object} map[string]interface{} "admissions + meta{page, per_page, total_admissions, total_pages}"
// @Failure 400 {object} respond.Envelope "page must be 1 or greater"
// @Failure 500 {object} respond.Envelope
// @Router /admissions/ [get]
func listAdmissionsHandler(h resource) http.HandlerFunc {
	return h.ListPage()
}

// getAdmissionHandler godoc
// @Summary Obtener admisión
// @Tags admissions
// @Produce json
// @Param hadm_id path int true "ID de la admisión"
// @Success 200 {object} Admission
// @Failure 404 {object} respond.Envelope "admission not found"
// @Failure 500 {object} respond.Envelope
// @Router /admissions/{hadm_id} [get]
func getAdmissionHandler(h resource) http.HandlerFunc {
	return h.Get("hadm_id")
}

// mostUsedAdmissionsHandler godoc
// @Summary Valores más frecuentes de una columna
// @Description Agrupa por field y cuenta ocurrencias no nulas. field: admission_type (default), admission_location, discharge_location, insurance, language, marital_status, race.
// @Tags admissions
// @Produce json
// @Param field query string false "Columna a agrupar"
// @Param limit query int false "Cantidad de grupos (default 10)"
// @Success 200 {object} map[string]interface{} "most_used_<field>s"
// @Failure 400 {object} respond.Envelope
// @Failure 500 {object} respond.Envelope
// @Router /admissions/most_used [get]
func mostUsedAdmissionsHandler(h resource) http.HandlerFunc {
	return h.MostUsed()
}
