package caregivers

import "clinical-records-api/internal/domain/records"

type Repository = records.Repository[Caregiver, string]

type Service = records.Service[Caregiver, string]

func NewService(repo Repository) *Service {
	return records.NewService(repo, records.Descriptor{
		Name:      "caregiver",
		Groupable: Groupable,
	})
}
