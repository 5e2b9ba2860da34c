package memory

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"clinical-records-api/internal/domain/admissions"
	"clinical-records-api/internal/domain/caregivers"
	"clinical-records-api/internal/domain/patients"
	"clinical-records-api/internal/domain/prescriptions"
	"clinical-records-api/internal/platform/isotime"
)

// Dataset son los registros de demo con los que arranca el modo memoria.
type Dataset struct {
	Caregivers    []caregivers.Caregiver
	Admissions    []admissions.Admission
	Patients      []patients.Patient
	Prescriptions []prescriptions.Prescription
}

var (
	admissionTypes = []string{"EW EMER.", "URGENT", "ELECTIVE", "OBSERVATION ADMIT", "DIRECT EMER."}
	locations      = []string{"EMERGENCY ROOM", "PHYSICIAN REFERRAL", "TRANSFER FROM HOSPITAL", "WALK-IN/SELF REFERRAL"}
	discharges     = []string{"HOME", "HOME HEALTH CARE", "SKILLED NURSING FACILITY", "REHAB", "DIED"}
	insurances     = []string{"Medicare", "Medicaid", "Other"}
	languages      = []string{"ENGLISH", "?"}
	maritals       = []string{"MARRIED", "SINGLE", "WIDOWED", "DIVORCED"}
	races          = []string{"WHITE", "BLACK/AFRICAN AMERICAN", "HISPANIC/LATINO", "ASIAN", "OTHER", "UNKNOWN"}
	yearGroups     = []string{"2008 - 2010", "2011 - 2013", "2014 - 2016", "2017 - 2019"}
	drugs          = []string{"Insulin", "Sodium Chloride 0.9%  Flush", "Heparin", "Acetaminophen", "Potassium Chloride", "Furosemide", "Metoprolol Tartrate"}
	drugTypes      = []string{"MAIN", "BASE", "ADDITIVE"}
	routes         = []string{"PO", "IV", "SC", "IV DRIP", "NG"}
	forms          = []string{"TAB", "VIAL", "SYR", "BAG", "CAP"}
	doseUnits      = []string{"mg", "mL", "UNIT", "mEq", "g"}
)

// Seed genera un dataset determinístico para la semilla dada. n es la
// cantidad de pacientes; admisiones y prescripciones se derivan de ellos.
func Seed(seed uint64, n int) Dataset {
	f := gofakeit.New(seed)
	if n < 1 {
		n = 1
	}

	var ds Dataset

	for i := 0; i < max(n/4, 1); i++ {
		ds.Caregivers = append(ds.Caregivers, caregivers.Caregiver{CaregiverID: fmt.Sprintf("%d", 10000+i)})
	}

	const base = 10000000
	from := time.Date(2110, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2210, 12, 31, 0, 0, 0, 0, time.UTC)

	for i := 0; i < n; i++ {
		p := patients.Patient{
			SubjectID:       int64(base + i*37 + 1),
			Gender:          f.RandomString([]string{"F", "M"}),
			AnchorAge:       f.Number(18, 91),
			AnchorYear:      f.Number(2110, 2210),
			AnchorYearGroup: f.RandomString(yearGroups),
		}
		if f.Number(1, 10) == 1 {
			p.Dod = isotime.Ptr(f.DateRange(from, to).Truncate(24 * time.Hour))
		}
		ds.Patients = append(ds.Patients, p)
	}

	hadm := int64(20000000)
	for _, p := range ds.Patients {
		subject := p.SubjectID
		stays := f.Number(1, 2)
		for j := 0; j < stays; j++ {
			hadm += int64(f.Number(1, 999))
			admit := f.DateRange(from, to).Truncate(time.Minute)
			disch := admit.Add(time.Duration(f.Number(6, 24*14)) * time.Hour)

			a := admissions.Admission{
				SubjectID:         &subject,
				HadmID:            hadm,
				AdmitTime:         isotime.Ptr(admit),
				DischTime:         isotime.Ptr(disch),
				AdmissionType:     pick(f, admissionTypes),
				AdmitProviderID:   strPtr("P" + strings.ToUpper(f.LetterN(2)) + f.DigitN(3)),
				AdmissionLocation: pick(f, locations),
				DischargeLocation: maybe(f, discharges),
				Insurance:         pick(f, insurances),
				Language:          pick(f, languages),
				MaritalStatus:     maybe(f, maritals),
				Race:              pick(f, races),
			}
			flag := int16(0)
			if a.DischargeLocation != nil && *a.DischargeLocation == "DIED" {
				flag = 1
				a.DeathTime = a.DischTime
			}
			a.HospitalExpireFlag = &flag
			ds.Admissions = append(ds.Admissions, a)

			orders := f.Number(1, 4)
			for k := 0; k < orders; k++ {
				h := a.HadmID
				start := admit.Add(time.Duration(f.Number(0, 48)) * time.Hour)
				stop := start.Add(time.Duration(f.Number(1, 72)) * time.Hour)
				dose := f.Float64Range(1, 6)

				ds.Prescriptions = append(ds.Prescriptions, prescriptions.Prescription{
					ID:              int64(len(ds.Prescriptions) + 1),
					SubjectID:       &subject,
					HadmID:          &h,
					StartTime:       isotime.Ptr(start),
					StopTime:        isotime.Ptr(stop),
					DrugType:        pick(f, drugTypes),
					Drug:            pick(f, drugs),
					FormularyDrugCd: strPtr(strings.ToUpper(f.LetterN(4)) + f.DigitN(2)),
					NDC:             strPtr(f.DigitN(11)),
					FormRx:          maybe(f, forms),
					DoseValRx:       strPtr(fmt.Sprintf("%d", f.Number(1, 1000))),
					DoseUnitRx:      pick(f, doseUnits),
					DosesPer24Hrs:   &dose,
					Route:           pick(f, routes),
				})
			}
		}
	}

	return ds
}

func pick(f *gofakeit.Faker, opts []string) *string {
	return strPtr(f.RandomString(opts))
}

// maybe deja ~1 de cada 8 valores en NULL para ejercitar el grupo nulo.
func maybe(f *gofakeit.Faker, opts []string) *string {
	if f.Number(1, 8) == 1 {
		return nil
	}
	return pick(f, opts)
}

func strPtr(s string) *string {
	return &s
}
