package records

import (
	"context"

	"clinical-records-api/internal/platform/pagination"
	"clinical-records-api/internal/platform/topk"
)

// Descriptor describe lo que varía entre tipos de registro.
type Descriptor struct {
	// Name se usa en mensajes ("admission not found").
	Name string
	// Groupable es la allow-list de columnas aceptadas por MostUsed.
	Groupable topk.Fields
	// DefaultField es la columna usada cuando el caller no manda field.
	DefaultField string
	PageSize     int
}

type Service[T any, K comparable] struct {
	repo Repository[T, K]
	desc Descriptor
}

func NewService[T any, K comparable](repo Repository[T, K], d Descriptor) *Service[T, K] {
	if d.PageSize <= 0 {
		d.PageSize = pagination.DefaultPageSize
	}
	return &Service[T, K]{repo: repo, desc: d}
}

func (s *Service[T, K]) Descriptor() Descriptor {
	return s.desc
}

func (s *Service[T, K]) List(ctx context.Context) ([]T, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (s *Service[T, K]) Get(ctx context.Context, id K) (T, bool, error) {
	return s.repo.GetByID(ctx, id)
}

// ListPage valida page >= 1 antes de tocar el storage. Una página más allá
// del final no es error: vuelve vacía con los totales reales.
func (s *Service[T, K]) ListPage(ctx context.Context, page int) (pagination.Result[T], error) {
	p, err := pagination.WithSize(page, s.desc.PageSize)
	if err != nil {
		return pagination.Result[T]{}, err
	}

	items, total, err := s.repo.ListPage(ctx, p)
	if err != nil {
		return pagination.Result[T]{}, err
	}
	if items == nil {
		items = []T{}
	}

	return pagination.Result[T]{
		Items: items,
		Meta:  pagination.NewMeta(p, total),
	}, nil
}

// MostUsed es el top-K por columna. field vacío usa DefaultField.
func (s *Service[T, K]) MostUsed(ctx context.Context, field string, limit int) ([]topk.Entry, topk.Query, error) {
	q, err := topk.NewQuery(s.desc.Groupable, field, s.desc.DefaultField, limit)
	if err != nil {
		return nil, topk.Query{}, err
	}

	entries, err := s.repo.TopBy(ctx, q)
	if err != nil {
		return nil, topk.Query{}, err
	}
	if entries == nil {
		entries = []topk.Entry{}
	}
	return entries, q, nil
}
