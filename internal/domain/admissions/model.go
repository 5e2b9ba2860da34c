package admissions

import (
	"clinical-records-api/internal/platform/isotime"
	"clinical-records-api/internal/platform/topk"
)

// Admission es una internación hospitalaria. SubjectID apunta a patients
// pero la referencia no se valida en esta capa.
type Admission struct {
	SubjectID          *int64        `json:"subject_id"`
	HadmID             int64         `json:"hadm_id"`
	AdmitTime          *isotime.Time `json:"admittime"`
	DischTime          *isotime.Time `json:"dischtime"`
	DeathTime          *isotime.Time `json:"deathtime"`
	AdmissionType      *string       `json:"admission_type"`
	AdmitProviderID    *string       `json:"admit_provider_id"`
	AdmissionLocation  *string       `json:"admission_location"`
	DischargeLocation  *string       `json:"discharge_location"`
	Insurance          *string       `json:"insurance"`
	Language           *string       `json:"language"`
	MaritalStatus      *string       `json:"marital_status"`
	Race               *string       `json:"race"`
	EDRegTime          *isotime.Time `json:"edregtime"`
	EDOutTime          *isotime.Time `json:"edouttime"`
	HospitalExpireFlag *int16        `json:"hospital_expire_flag"`
}

var Groupable = topk.Fields{
	"admission_type",
	"admission_location",
	"discharge_location",
	"insurance",
	"language",
	"marital_status",
	"race",
}

const DefaultField = "admission_type"
