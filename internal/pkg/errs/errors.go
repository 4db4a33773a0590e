// Package errs содержит типизированные ошибки предметной области,
// которые транспортный слой переводит в HTTP статусы.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation   = errors.New("invalid input")
	ErrNotFound     = errors.New("entity not found")
	ErrIllegalState = errors.New("illegal state")

	ErrConflict               = errors.New("resource already exists")
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrClientHasDeliveries    = errors.New("client has deliveries")
)

type Kind string

const (
	KindClient   Kind = "client"
	KindDelivery Kind = "delivery"
)

func (k Kind) String() string {
	return string(k)
}

// FieldViolation одно нарушение правила валидации поля.
type FieldViolation struct {
	Field   string
	Message string
}

func (v FieldViolation) String() string {
	return v.Field + ":" + v.Message
}

// ValidationError собирает все нарушения запроса, а не только первое.
type ValidationError struct {
	Violations []FieldViolation
}

func NewValidationError(violations ...FieldViolation) *ValidationError {
	return &ValidationError{Violations: violations}
}

// Description форматирует нарушения как "[field:msg, field:msg]".
func (e *ValidationError) Description() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, e.Description())
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

type NotFoundError struct {
	Kind Kind
	ID   int64
}

func NewNotFoundError(kind Kind, id int64) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: id=%d", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// IllegalStateError переход статуса, недопустимый из текущего состояния.
type IllegalStateError struct {
	From   string
	Action string
}

func NewIllegalStateError(from, action string) *IllegalStateError {
	return &IllegalStateError{From: from, Action: action}
}

func (e *IllegalStateError) Error() string {
	return fmt.Sprintf("%s: cannot %s delivery in status %s", ErrIllegalState, e.Action, e.From)
}

func (e *IllegalStateError) Unwrap() error {
	return ErrIllegalState
}
