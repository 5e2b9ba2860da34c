// Package respond escribe respuestas JSON y el sobre de error
// {status, message, data} que usan todos los endpoints.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"clinical-records-api/internal/platform/apperr"
)

// Envelope es el cuerpo de toda respuesta de error.
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error mapea err a su status. Para errores de caller (400/404) el mensaje es
// el del propio error; para el resto se usa fallback y el detalle va en data.
func Error(w http.ResponseWriter, err error, fallback string) {
	status := apperr.Status(err)

	msg := fallback
	var e *apperr.Error
	if status < http.StatusInternalServerError && errors.As(err, &e) && e.Message != "" {
		msg = e.Message
	}
	if msg == "" {
		msg = http.StatusText(status)
	}

	JSON(w, status, Envelope{Status: status, Message: msg, Data: err.Error()})
}

func NotFound(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusNotFound, Envelope{Status: http.StatusNotFound, Message: msg})
}
