package records

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"clinical-records-api/internal/platform/logger"
	"clinical-records-api/internal/platform/pagination"
	"clinical-records-api/internal/platform/respond"
	"clinical-records-api/internal/platform/topk"
)

// Resource arma los handlers HTTP de un tipo de registro sobre su Service.
// Plural es la clave del listado en el JSON ("patients") y el sufijo de
// total_<plural> en meta.
type Resource[T any, K comparable] struct {
	Svc     *Service[T, K]
	Plural  string
	ParseID func(string) (K, bool)
	Log     logger.Logger
}

func (h Resource[T, K]) log() logger.Logger {
	if h.Log == nil {
		return logger.Nop()
	}
	return h.Log
}

func (h Resource[T, K]) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.log().Error("request failed", map[string]any{
		"resource": h.Plural,
		"path":     r.URL.Path,
		"error":    err,
	})
	respond.Error(w, err, "Error fetching "+h.Plural)
}

// ListAll responde el arreglo completo, sin sobre.
func (h Resource[T, K]) ListAll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.Svc.List(r.Context())
		if err != nil {
			h.fail(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, items)
	}
}

// ListPage lee ?page= (default 1) y responde {<plural>: [...], meta: {...}}.
func (h Resource[T, K]) ListPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := pagination.ParsePage(r.URL.Query().Get("page"))

		res, err := h.Svc.ListPage(r.Context(), page)
		if err != nil {
			h.fail(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, map[string]any{
			h.Plural: res.Items,
			"meta": map[string]any{
				"page":              res.Meta.Page,
				"per_page":          res.Meta.PageSize,
				"total_" + h.Plural: res.Meta.TotalCount,
				"total_pages":       res.Meta.TotalPages,
			},
		})
	}
}

// Get responde el registro o 404. Un id que no parsea es 404, no 400.
func (h Resource[T, K]) Get(param string) http.HandlerFunc {
	notFound := h.Svc.Descriptor().Name + " not found"
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.ParseID(chi.URLParam(r, param))
		if !ok {
			respond.NotFound(w, notFound)
			return
		}

		item, found, err := h.Svc.Get(r.Context(), id)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		if !found {
			respond.NotFound(w, notFound)
			return
		}
		respond.JSON(w, http.StatusOK, item)
	}
}

// MostUsed lee ?field= y ?limit= (default 10) y responde
// {most_used_<field>s: [{<field>: v, count: n}]}.
func (h Resource[T, K]) MostUsed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		limit := pagination.ParseIntOr(q.Get("limit"), topk.DefaultLimit)

		entries, query, err := h.Svc.MostUsed(r.Context(), q.Get("field"), limit)
		if err != nil {
			h.fail(w, r, err)
			return
		}

		out := make([]map[string]any, 0, len(entries))
		for _, e := range entries {
			var v any
			if e.Value != nil {
				v = *e.Value
			}
			out = append(out, map[string]any{query.Field: v, "count": e.Count})
		}
		respond.JSON(w, http.StatusOK, map[string]any{"most_used_" + query.Field + "s": out})
	}
}

// IntID parsea claves enteras de ruta.
func IntID(raw string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// StringID acepta cualquier valor no vacío.
func StringID(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}
