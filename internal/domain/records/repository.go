// Package records reúne los contratos de lectura comunes a los cuatro tipos
// de registro clínico (caregivers, admissions, patients, prescriptions).
package records

import (
	"context"

	"clinical-records-api/internal/platform/pagination"
	"clinical-records-api/internal/platform/topk"
)

// Repository es la vista de sólo lectura de una tabla con clave primaria K.
// Cada llamada adquiere y libera su propia conexión.
type Repository[T any, K comparable] interface {
	// List devuelve todas las filas, sin orden garantizado.
	List(ctx context.Context) ([]T, error)

	// GetByID devuelve found=false (sin error) cuando no hay fila.
	// Más de una fila para la misma clave es un error de integridad.
	GetByID(ctx context.Context, id K) (T, bool, error)

	// ListPage devuelve la ventana ordenada por PK ascendente y el total de filas.
	ListPage(ctx context.Context, p pagination.Page) ([]T, int, error)

	// TopBy agrupa por q.Field (ya validado contra la allow-list) y trunca a q.Limit.
	TopBy(ctx context.Context, q topk.Query) ([]topk.Entry, error)
}
