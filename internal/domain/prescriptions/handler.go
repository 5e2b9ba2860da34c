package prescriptions

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"clinical-records-api/internal/domain/records"
	"clinical-records-api/internal/platform/logger"
)

type resource = records.Resource[Prescription, int64]

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	h := resource{Svc: svc, Plural: "prescriptions", ParseID: records.IntID, Log: log}

	r.Route("/prescriptions", func(pr chi.Router) {
		pr.Get("/", listPrescriptionsHandler(h))
		pr.Get("/most_used", mostUsedDrugsHandler(h))
		pr.Get("/{id}", getPrescriptionHandler(h))
	})
}

// listPrescriptionsHandler godoc
// @Summary Listar prescripciones paginadas
// @Tags prescriptions
// @Produce json
// @Param page query int false "Número de página (default 1)"
// @Success 200 {object} map[string]interface{} "prescriptions + meta"
// @Failure 400 {object} respond.Envelope "page must be 1 or greater"
// @Failure 500 {object} respond.Envelope
// @Router /prescriptions/ [get]
func listPrescriptionsHandler(h resource) http.HandlerFunc {
	return h.ListPage()
}

// getPrescriptionHandler godoc
// @Summary Obtener prescripción
// @Tags prescriptions
// @Produce json
// @Param id path int true "ID de la prescripción"
// @Success 200 {object} Prescription
// @Failure 404 {object} respond.Envelope "prescription not found"
// @Failure 500 {object} respond.Envelope
// @Router /prescriptions/{id} [get]
func getPrescriptionHandler(h resource) http.HandlerFunc {
	return h.Get("id")
}

// mostUsedDrugsHandler godoc
// @Summary Drogas más usadas
// @Description Sin field agrupa por drug y responde most_used_drugs. También acepta drug_type, route, form_rx, dose_unit_rx, formulary_drug_cd.
// @Tags prescriptions
// @Produce json
// @Param field query string false "Columna a agrupar (default drug)"
// @Param limit query int false "Cantidad de grupos (default 10)"
// @Success 200 {object} map[string]interface{} "most_used_drugs: [{drug, count}]"
// @Failure 400 {object} respond.Envelope
// @Failure 500 {object} respond.Envelope
// @Router /prescriptions/most_used [get]
func mostUsedDrugsHandler(h resource) http.HandlerFunc {
	return h.MostUsed()
}
