package memory

import (
	"clinical-records-api/internal/domain/admissions"
	"clinical-records-api/internal/domain/caregivers"
	"clinical-records-api/internal/domain/patients"
	"clinical-records-api/internal/domain/prescriptions"
)

func NewCaregiversRepo(rows []caregivers.Caregiver) *Store[caregivers.Caregiver, string] {
	return NewStore(Table[caregivers.Caregiver, string]{
		Name:      "caregiver",
		Key:       func(c caregivers.Caregiver) string { return c.CaregiverID },
		Groupable: caregivers.Groupable,
	}, rows)
}

func NewAdmissionsRepo(rows []admissions.Admission) *Store[admissions.Admission, int64] {
	return NewStore(Table[admissions.Admission, int64]{
		Name:      "admissions",
		Key:       func(a admissions.Admission) int64 { return a.HadmID },
		Groupable: admissions.Groupable,
		Field:     admissionField,
	}, rows)
}

func NewPatientsRepo(rows []patients.Patient) *Store[patients.Patient, int64] {
	return NewStore(Table[patients.Patient, int64]{
		Name:      "patients",
		Key:       func(p patients.Patient) int64 { return p.SubjectID },
		Groupable: patients.Groupable,
		Field:     patientField,
	}, rows)
}

func NewPrescriptionsRepo(rows []prescriptions.Prescription) *Store[prescriptions.Prescription, int64] {
	return NewStore(Table[prescriptions.Prescription, int64]{
		Name:      "prescriptions",
		Key:       func(p prescriptions.Prescription) int64 { return p.ID },
		Groupable: prescriptions.Groupable,
		Field:     prescriptionField,
	}, rows)
}

func admissionField(a admissions.Admission, field string) *string {
	switch field {
	case "admission_type":
		return a.AdmissionType
	case "admission_location":
		return a.AdmissionLocation
	case "discharge_location":
		return a.DischargeLocation
	case "insurance":
		return a.Insurance
	case "language":
		return a.Language
	case "marital_status":
		return a.MaritalStatus
	case "race":
		return a.Race
	}
	return nil
}

func patientField(p patients.Patient, field string) *string {
	switch field {
	case "gender":
		return &p.Gender
	case "anchor_year_group":
		return &p.AnchorYearGroup
	}
	return nil
}

func prescriptionField(p prescriptions.Prescription, field string) *string {
	switch field {
	case "drug":
		return p.Drug
	case "drug_type":
		return p.DrugType
	case "route":
		return p.Route
	case "form_rx":
		return p.FormRx
	case "dose_unit_rx":
		return p.DoseUnitRx
	case "formulary_drug_cd":
		return p.FormularyDrugCd
	}
	return nil
}
