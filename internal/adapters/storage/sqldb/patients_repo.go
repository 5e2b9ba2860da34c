package sqldb

import (
	"database/sql"

	"clinical-records-api/internal/domain/patients"
	"clinical-records-api/internal/platform/isotime"
)

var patientTable = Table[patients.Patient]{
	Name:      "patients",
	Key:       "subject_id",
	Columns:   []string{"subject_id", "gender", "anchor_age", "anchor_year", "anchor_year_group", "dod"},
	Groupable: patients.Groupable,
	Scan: func(row scanner) (patients.Patient, error) {
		var p patients.Patient
		var dod sql.NullTime
		if err := row.Scan(&p.SubjectID, &p.Gender, &p.AnchorAge, &p.AnchorYear, &p.AnchorYearGroup, &dod); err != nil {
			return patients.Patient{}, err
		}
		p.Dod = isotime.From(dod)
		return p, nil
	},
}

func NewPatientsRepo(f *Factory) *Store[patients.Patient, int64] {
	return NewStore[patients.Patient, int64](f, patientTable)
}
