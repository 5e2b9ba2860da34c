package admissions

import "clinical-records-api/internal/domain/records"

type Repository = records.Repository[Admission, int64]

type Service = records.Service[Admission, int64]

func NewService(repo Repository) *Service {
	return records.NewService(repo, records.Descriptor{
		Name:         "admission",
		Groupable:    Groupable,
		DefaultField: DefaultField,
	})
}
