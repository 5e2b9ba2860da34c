// Package topk contiene los tipos compartidos de la agregación
// agrupar-contar-ordenar-truncar.
package topk

import (
	"sort"
	"strings"

	"clinical-records-api/internal/platform/apperr"
)

const DefaultLimit = 10

// Entry es un grupo y su cantidad de ocurrencias no nulas.
type Entry struct {
	Value *string
	Count int64
}

// Fields es la allow-list de columnas agrupables de un tipo de registro.
type Fields []string

func (f Fields) Allows(field string) bool {
	for _, v := range f {
		if v == field {
			return true
		}
	}
	return false
}

// Query es una solicitud de top-K ya validada.
type Query struct {
	Field string
	Limit int
}

// NewQuery valida campo (contra la allow-list) y límite.
// field vacío usa defField; limit 0 se interpreta como "no enviado".
func NewQuery(allowed Fields, field, defField string, limit int) (Query, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		field = defField
	}
	if !allowed.Allows(field) {
		return Query{}, apperr.Validation("field '" + field + "' cannot be aggregated")
	}
	if limit < 1 {
		return Query{}, apperr.Validation("limit must be 1 or greater")
	}
	return Query{Field: field, Limit: limit}, nil
}

// Rank agrupa values en memoria con la misma semántica que el SQL:
// COUNT(campo) no cuenta nulos, orden por cantidad desc y valor asc (nulo primero).
func Rank(values []*string, limit int) []Entry {
	counts := map[string]int64{}
	order := []string{}
	hasNull := false

	for _, v := range values {
		if v == nil {
			hasNull = true
			continue
		}
		if _, ok := counts[*v]; !ok {
			order = append(order, *v)
		}
		counts[*v]++
	}

	out := make([]Entry, 0, len(order)+1)
	if hasNull {
		out = append(out, Entry{Value: nil, Count: 0})
	}
	for _, v := range order {
		v := v
		out = append(out, Entry{Value: &v, Count: counts[v]})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return lessValue(out[i].Value, out[j].Value)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func lessValue(a, b *string) bool {
	switch {
	case a == nil && b == nil:
		return false
	case a == nil:
		return true
	case b == nil:
		return false
	default:
		return *a < *b
	}
}
