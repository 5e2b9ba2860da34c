package patients

import "clinical-records-api/internal/domain/records"

type Repository = records.Repository[Patient, int64]

type Service = records.Service[Patient, int64]

func NewService(repo Repository) *Service {
	return records.NewService(repo, records.Descriptor{
		Name:         "patient",
		Groupable:    Groupable,
		DefaultField: DefaultField,
	})
}
