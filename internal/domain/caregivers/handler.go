package caregivers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"clinical-records-api/internal/domain/records"
	"clinical-records-api/internal/platform/logger"
)

type resource = records.Resource[Caregiver, string]

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	h := resource{Svc: svc, Plural: "caregivers", ParseID: records.StringID, Log: log}

	r.Route("/caregivers", func(cr chi.Router) {
		cr.Get("/", listCaregiversHandler(h))
		cr.Get("/{caregiver_id}", getCaregiverHandler(h))
	})
}

// listCaregiversHandler godoc
// @Summary Listar caregivers
// @Description Devuelve todos los caregivers, sin paginar.
// @Tags caregivers
// @Produce json
// @Success 200 {array} Caregiver
// @Failure 500 {object} respond.Envelope
// @Router /caregivers/ [get]
func listCaregiversHandler(h resource) http.HandlerFunc {
	return h.ListAll()
}

// getCaregiverHandler godoc
// @Summary Obtener caregiver
// @Tags caregivers
// @Produce json
// @Param caregiver_id path string true "ID del caregiver"
// @Success 200 {object} Caregiver
// @Failure 404 {object} respond.Envelope "caregiver not found"
// @Failure 500 {object} respond.Envelope
// @Router /caregivers/{caregiver_id} [get]
func getCaregiverHandler(h resource) http.HandlerFunc {
	return h.Get("caregiver_id")
}
