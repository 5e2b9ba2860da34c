package caregivers

import "clinical-records-api/internal/platform/topk"

// Caregiver es un profesional que registra eventos sobre pacientes.
type Caregiver struct {
	CaregiverID string `json:"caregiver_id"`
}

// Groupable está vacío: la única columna es la PK.
var Groupable = topk.Fields{}
