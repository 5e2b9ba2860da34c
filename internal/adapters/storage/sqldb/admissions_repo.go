package sqldb

import (
	"database/sql"

	"clinical-records-api/internal/domain/admissions"
	"clinical-records-api/internal/platform/isotime"
)

var admissionTable = Table[admissions.Admission]{
	Name: "admissions",
	Key:  "hadm_id",
	Columns: []string{
		"subject_id", "hadm_id",
		"admittime", "dischtime", "deathtime",
		"admission_type", "admit_provider_id",
		"admission_location", "discharge_location",
		"insurance", "language", "marital_status", "race",
		"edregtime", "edouttime",
		"hospital_expire_flag",
	},
	Groupable: admissions.Groupable,
	Scan:      scanAdmission,
}

func NewAdmissionsRepo(f *Factory) *Store[admissions.Admission, int64] {
	return NewStore[admissions.Admission, int64](f, admissionTable)
}

func scanAdmission(row scanner) (admissions.Admission, error) {
	var (
		a                                 admissions.Admission
		subjectID                         sql.NullInt64
		admit, disch, death, edReg, edOut sql.NullTime
		admType, provider, admLoc, disLoc sql.NullString
		insurance, language, marital      sql.NullString
		race                              sql.NullString
		expire                            sql.NullInt16
	)
	if err := row.Scan(
		&subjectID, &a.HadmID,
		&admit, &disch, &death,
		&admType, &provider,
		&admLoc, &disLoc,
		&insurance, &language, &marital, &race,
		&edReg, &edOut,
		&expire,
	); err != nil {
		return admissions.Admission{}, err
	}

	a.SubjectID = int64Ptr(subjectID)
	a.AdmitTime = isotime.From(admit)
	a.DischTime = isotime.From(disch)
	a.DeathTime = isotime.From(death)
	a.AdmissionType = stringPtr(admType)
	a.AdmitProviderID = stringPtr(provider)
	a.AdmissionLocation = stringPtr(admLoc)
	a.DischargeLocation = stringPtr(disLoc)
	a.Insurance = stringPtr(insurance)
	a.Language = stringPtr(language)
	a.MaritalStatus = stringPtr(marital)
	a.Race = stringPtr(race)
	a.EDRegTime = isotime.From(edReg)
	a.EDOutTime = isotime.From(edOut)
	a.HospitalExpireFlag = int16Ptr(expire)
	return a, nil
}
