package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"clinical-records-api/internal/platform/apperr"
	"clinical-records-api/internal/platform/pagination"
	"clinical-records-api/internal/platform/topk"
)

// Table le dice al store cómo leer la PK y las columnas agrupables de T.
type Table[T any, K cmp.Ordered] struct {
	Name      string
	Key       func(T) K
	Groupable topk.Fields
	Field     func(T, string) *string
}

// Store replica en memoria la semántica de sqldb.Store (modo dev y tests).
type Store[T any, K cmp.Ordered] struct {
	mu   sync.RWMutex
	t    Table[T, K]
	rows []T
}

func NewStore[T any, K cmp.Ordered](t Table[T, K], rows []T) *Store[T, K] {
	return &Store[T, K]{t: t, rows: append([]T(nil), rows...)}
}

func (s *Store[T, K]) List(ctx context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append(make([]T, 0, len(s.rows)), s.rows...), nil
}

func (s *Store[T, K]) GetByID(ctx context.Context, id K) (T, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		out   T
		found int
	)
	for _, r := range s.rows {
		if s.t.Key(r) == id {
			out = r
			found++
		}
	}

	switch found {
	case 0:
		var zero T
		return zero, false, nil
	case 1:
		return out, true, nil
	default:
		var zero T
		return zero, false, apperr.Integrity(s.t.Name+".get", fmt.Sprintf("key %v matches more than one row", id))
	}
}

func (s *Store[T, K]) ListPage(ctx context.Context, p pagination.Page) ([]T, int, error) {
	s.mu.RLock()
	sorted := append([]T(nil), s.rows...)
	s.mu.RUnlock()

	slices.SortStableFunc(sorted, func(a, b T) int {
		return cmp.Compare(s.t.Key(a), s.t.Key(b))
	})

	total := len(sorted)
	start := p.Offset()
	if start >= total {
		return []T{}, total, nil
	}
	end := start + min(p.Limit(), total-start)
	return sorted[start:end], total, nil
}

func (s *Store[T, K]) TopBy(ctx context.Context, q topk.Query) ([]topk.Entry, error) {
	if !s.t.Groupable.Allows(q.Field) || s.t.Field == nil {
		return nil, apperr.Validation("field '" + q.Field + "' cannot be aggregated")
	}

	s.mu.RLock()
	values := make([]*string, 0, len(s.rows))
	for _, r := range s.rows {
		values = append(values, s.t.Field(r, q.Field))
	}
	s.mu.RUnlock()

	return topk.Rank(values, q.Limit), nil
}
