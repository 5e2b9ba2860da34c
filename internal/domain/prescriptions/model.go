package prescriptions

import (
	"clinical-records-api/internal/platform/isotime"
	"clinical-records-api/internal/platform/topk"
)

// Prescription es una orden de medicación. ID lo genera la base.
type Prescription struct {
	ID              int64         `json:"id"`
	SubjectID       *int64        `json:"subject_id"`
	HadmID          *int64        `json:"hadm_id"`
	PharmacyID      *int64        `json:"pharmacy_id"`
	PoeID           *string       `json:"poe_id"`
	PoeSeq          *int64        `json:"poe_seq"`
	OrderProviderID *string       `json:"order_provider_id"`
	StartTime       *isotime.Time `json:"starttime"`
	StopTime        *isotime.Time `json:"stoptime"`
	DrugType        *string       `json:"drug_type"`
	Drug            *string       `json:"drug"`
	FormularyDrugCd *string       `json:"formulary_drug_cd"`
	GSN             *string       `json:"gsn"`
	NDC             *string       `json:"ndc"`
	ProdStrength    *string       `json:"prod_strength"`
	FormRx          *string       `json:"form_rx"`
	DoseValRx       *string       `json:"dose_val_rx"`
	DoseUnitRx      *string       `json:"dose_unit_rx"`
	FormValDisp     *string       `json:"form_val_disp"`
	FormUnitDisp    *string       `json:"form_unit_disp"`
	DosesPer24Hrs   *float64      `json:"doses_per_24_hrs"`
	Route           *string       `json:"route"`
}

var Groupable = topk.Fields{
	"drug",
	"drug_type",
	"route",
	"form_rx",
	"dose_unit_rx",
	"formulary_drug_cd",
}

const DefaultField = "drug"
