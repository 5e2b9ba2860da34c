package sqldb

import "clinical-records-api/internal/domain/caregivers"

var caregiverTable = Table[caregivers.Caregiver]{
	Name:      "caregiver",
	Key:       "caregiver_id",
	Columns:   []string{"caregiver_id"},
	Groupable: caregivers.Groupable,
	Scan: func(row scanner) (caregivers.Caregiver, error) {
		var c caregivers.Caregiver
		err := row.Scan(&c.CaregiverID)
		return c, err
	},
}

func NewCaregiversRepo(f *Factory) *Store[caregivers.Caregiver, string] {
	return NewStore[caregivers.Caregiver, string](f, caregiverTable)
}
