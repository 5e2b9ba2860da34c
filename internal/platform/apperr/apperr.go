// Package apperr define la taxonomía de errores de la capa de acceso a datos
// y su traducción a status HTTP.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindCredential
	KindConnection
	KindQuery
	KindIntegrity
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindCredential:
		return "credential"
	case KindConnection:
		return "connection"
	case KindQuery:
		return "query"
	case KindIntegrity:
		return "integrity"
	default:
		return "unknown"
	}
}

// Error es el error tipado que circula entre storage, services y handlers.
// Op identifica la operación (p.ej. "admissions.get"); Err es la causa, si la hay.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	} else if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	if e.Op == "" {
		return fmt.Sprintf("%s: %s", e.Kind, msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, msg)
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Credential(op string, err error) error {
	return &Error{Kind: KindCredential, Op: op, Message: "token acquisition failed", Err: err}
}

func Connection(op string, err error) error {
	return &Error{Kind: KindConnection, Op: op, Message: "connection failed", Err: err}
}

func Query(op string, err error) error {
	return &Error{Kind: KindQuery, Op: op, Message: "query failed", Err: err}
}

// Integrity reporta una violación de invariantes del storage (p.ej. PK duplicada).
func Integrity(op, msg string) error {
	return &Error{Kind: KindIntegrity, Op: op, Message: msg}
}

// KindOf devuelve el Kind del *Error más externo de la cadena.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Has indica si algún *Error de la cadena tiene el kind pedido.
func Has(err error, kind Kind) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Err
	}
	return false
}

// Status traduce el error al status HTTP que debe emitir el borde.
func Status(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
