package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"clinical-records-api/internal/platform/apperr"
	"clinical-records-api/internal/platform/pagination"
	"clinical-records-api/internal/platform/topk"
)

type scanner interface {
	Scan(dest ...any) error
}

// Table describe una tabla de registros: nombre, PK, columnas en orden de
// scan y la función que mapea una fila al struct.
type Table[T any] struct {
	Name      string
	Key       string
	Columns   []string
	Groupable topk.Fields
	Scan      func(scanner) (T, error)
}

// Store implementa los cuatro patrones de lectura sobre una Table.
// Cada método adquiere su propia conexión y la libera al salir.
type Store[T any, K comparable] struct {
	f     *Factory
	t     Table[T]
	ref   tableRef
	entry string
}

func NewStore[T any, K comparable](f *Factory, t Table[T]) *Store[T, K] {
	return &Store[T, K]{
		f:     f,
		t:     t,
		ref:   newTableRef(f.dialect, f.cfg.Schema, t.Name, t.Key, t.Columns),
		entry: t.Name,
	}
}

func (s *Store[T, K]) op(name string) string {
	return s.entry + "." + name
}

func (s *Store[T, K]) List(ctx context.Context) ([]T, error) {
	conn, err := s.f.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, s.f.dialect.SelectAll(s.ref))
	if err != nil {
		return nil, apperr.Query(s.op("list"), err)
	}
	out, err := s.collect(rows)
	if err != nil {
		return nil, apperr.Query(s.op("list"), err)
	}
	return out, nil
}

func (s *Store[T, K]) GetByID(ctx context.Context, id K) (T, bool, error) {
	var zero T

	conn, err := s.f.Acquire(ctx)
	if err != nil {
		return zero, false, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, s.f.dialect.SelectByKey(s.ref), id)
	if err != nil {
		return zero, false, apperr.Query(s.op("get"), err)
	}
	found, err := s.collect(rows)
	if err != nil {
		return zero, false, apperr.Query(s.op("get"), err)
	}

	switch len(found) {
	case 0:
		return zero, false, nil
	case 1:
		return found[0], true, nil
	default:
		return zero, false, apperr.Integrity(s.op("get"), fmt.Sprintf("%s %v matches more than one row", s.t.Key, id))
	}
}

// ListPage hace el count y la ventana sobre la misma conexión, sin
// transacción: un insert concurrente puede desalinear total y ventana.
func (s *Store[T, K]) ListPage(ctx context.Context, p pagination.Page) ([]T, int, error) {
	conn, err := s.f.Acquire(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer conn.Close()

	var total int64
	if err := conn.QueryRowContext(ctx, s.f.dialect.Count(s.ref)).Scan(&total); err != nil {
		return nil, 0, apperr.Query(s.op("count"), err)
	}
	if int64(p.Offset()) >= total {
		return []T{}, int(total), nil
	}

	q, args := s.f.dialect.SelectPage(s.ref, p.Offset(), p.Limit())
	rows, err := conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, 0, apperr.Query(s.op("page"), err)
	}
	out, err := s.collect(rows)
	if err != nil {
		return nil, 0, apperr.Query(s.op("page"), err)
	}
	return out, int(total), nil
}

func (s *Store[T, K]) TopBy(ctx context.Context, q topk.Query) ([]topk.Entry, error) {
	if !s.t.Groupable.Allows(q.Field) {
		return nil, apperr.Validation("field '" + q.Field + "' cannot be aggregated")
	}
	if q.Limit < 1 {
		return nil, apperr.Validation("limit must be 1 or greater")
	}

	conn, err := s.f.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	query, args := s.f.dialect.TopBy(s.ref, q.Field, q.Limit)
	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.Query(s.op("top"), err)
	}
	defer rows.Close()

	// limit sólo acota el SQL; no se usa para reservar memoria.
	out := make([]topk.Entry, 0)
	for rows.Next() {
		var v sql.NullString
		var n int64
		if err := rows.Scan(&v, &n); err != nil {
			return nil, apperr.Query(s.op("top"), err)
		}
		out = append(out, topk.Entry{Value: stringPtr(v), Count: n})
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Query(s.op("top"), err)
	}
	return out, nil
}

func (s *Store[T, K]) collect(rows *sql.Rows) ([]T, error) {
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		item, err := s.t.Scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

func int16Ptr(v sql.NullInt16) *int16 {
	if !v.Valid {
		return nil
	}
	n := v.Int16
	return &n
}

func float64Ptr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	n := v.Float64
	return &n
}
