package sqldb

import (
	"database/sql"

	"clinical-records-api/internal/domain/prescriptions"
	"clinical-records-api/internal/platform/isotime"
)

var prescriptionTable = Table[prescriptions.Prescription]{
	Name: "prescriptions",
	Key:  "id",
	Columns: []string{
		"id", "subject_id", "hadm_id", "pharmacy_id",
		"poe_id", "poe_seq", "order_provider_id",
		"starttime", "stoptime",
		"drug_type", "drug", "formulary_drug_cd", "gsn", "ndc",
		"prod_strength", "form_rx", "dose_val_rx", "dose_unit_rx",
		"form_val_disp", "form_unit_disp",
		"doses_per_24_hrs", "route",
	},
	Groupable: prescriptions.Groupable,
	Scan:      scanPrescription,
}

func NewPrescriptionsRepo(f *Factory) *Store[prescriptions.Prescription, int64] {
	return NewStore[prescriptions.Prescription, int64](f, prescriptionTable)
}

func scanPrescription(row scanner) (prescriptions.Prescription, error) {
	var (
		p                              prescriptions.Prescription
		subjectID, hadmID, pharmacyID  sql.NullInt64
		poeSeq                         sql.NullInt64
		poeID, orderProvider           sql.NullString
		start, stop                    sql.NullTime
		drugType, drug, formularyCd    sql.NullString
		gsn, ndc, prodStrength, formRx sql.NullString
		doseVal, doseUnit              sql.NullString
		formValDisp, formUnitDisp, rt  sql.NullString
		dosesPer24                     sql.NullFloat64
	)
	if err := row.Scan(
		&p.ID, &subjectID, &hadmID, &pharmacyID,
		&poeID, &poeSeq, &orderProvider,
		&start, &stop,
		&drugType, &drug, &formularyCd, &gsn, &ndc,
		&prodStrength, &formRx, &doseVal, &doseUnit,
		&formValDisp, &formUnitDisp,
		&dosesPer24, &rt,
	); err != nil {
		return prescriptions.Prescription{}, err
	}

	p.SubjectID = int64Ptr(subjectID)
	p.HadmID = int64Ptr(hadmID)
	p.PharmacyID = int64Ptr(pharmacyID)
	p.PoeID = stringPtr(poeID)
	p.PoeSeq = int64Ptr(poeSeq)
	p.OrderProviderID = stringPtr(orderProvider)
	p.StartTime = isotime.From(start)
	p.StopTime = isotime.From(stop)
	p.DrugType = stringPtr(drugType)
	p.Drug = stringPtr(drug)
	p.FormularyDrugCd = stringPtr(formularyCd)
	p.GSN = stringPtr(gsn)
	p.NDC = stringPtr(ndc)
	p.ProdStrength = stringPtr(prodStrength)
	p.FormRx = stringPtr(formRx)
	p.DoseValRx = stringPtr(doseVal)
	p.DoseUnitRx = stringPtr(doseUnit)
	p.FormValDisp = stringPtr(formValDisp)
	p.FormUnitDisp = stringPtr(formUnitDisp)
	p.DosesPer24Hrs = float64Ptr(dosesPer24)
	p.Route = stringPtr(rt)
	return p, nil
}
