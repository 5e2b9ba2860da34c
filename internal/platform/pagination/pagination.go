package pagination

import (
	"math"
	"strconv"
	"strings"

	"clinical-records-api/internal/platform/apperr"
)

const (
	// DefaultPageSize es el tamaño fijo de página de todos los listados.
	DefaultPageSize = 9
	FirstPage       = 1
)

// Page identifica una ventana offset/limit sobre un listado ordenado por PK.
type Page struct {
	Number int
	Size   int
}

// New valida el número de página y devuelve la ventana con el tamaño por defecto.
func New(number int) (Page, error) {
	return WithSize(number, DefaultPageSize)
}

func WithSize(number, size int) (Page, error) {
	if number < FirstPage {
		return Page{}, apperr.Validation("page must be 1 or greater")
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	return Page{Number: number, Size: size}, nil
}

// Offset satura en math.MaxInt cuando (Number-1)*Size no entra en un int.
func (p Page) Offset() int {
	if p.Number <= FirstPage || p.Size <= 0 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Size
}

func (p Page) Limit() int {
	return p.Size
}

// TotalPages es ceil(total / size). Con total 0 devuelve 0.
func TotalPages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Meta acompaña a cada página devuelta.
type Meta struct {
	Page       int
	PageSize   int
	TotalCount int
	TotalPages int
}

func NewMeta(p Page, total int) Meta {
	return Meta{
		Page:       p.Number,
		PageSize:   p.Size,
		TotalCount: total,
		TotalPages: TotalPages(total, p.Size),
	}
}

// Result agrupa los registros de la página y su metadata.
type Result[T any] struct {
	Items []T
	Meta  Meta
}

// ParsePage lee ?page=. Si no es un entero devuelve el default (1);
// la validación de rango queda para New.
func ParsePage(raw string) int {
	return parseIntOr(raw, FirstPage)
}

func ParseIntOr(raw string, def int) int {
	return parseIntOr(raw, def)
}

func parseIntOr(raw string, def int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
