package patients

import (
	"clinical-records-api/internal/platform/isotime"
	"clinical-records-api/internal/platform/topk"
)

// Patient tiene edad y año "ancla" desidentificados; Dod es la fecha de defunción.
type Patient struct {
	SubjectID       int64         `json:"subject_id"`
	Gender          string        `json:"gender"`
	AnchorAge       int           `json:"anchor_age"`
	AnchorYear      int           `json:"anchor_year"`
	AnchorYearGroup string        `json:"anchor_year_group"`
	Dod             *isotime.Time `json:"dod"`
}

var Groupable = topk.Fields{"gender", "anchor_year_group"}

const DefaultField = "gender"
