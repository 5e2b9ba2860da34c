package prescriptions

import "clinical-records-api/internal/domain/records"

type Repository = records.Repository[Prescription, int64]

type Service = records.Service[Prescription, int64]

func NewService(repo Repository) *Service {
	return records.NewService(repo, records.Descriptor{
		Name:         "prescription",
		Groupable:    Groupable,
		DefaultField: DefaultField,
	})
}
