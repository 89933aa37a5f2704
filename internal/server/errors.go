package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/applytrack/internal/generate"
	"github.com/jonathan/applytrack/internal/ingest"
	"github.com/jonathan/applytrack/internal/parsing"
	"github.com/jonathan/applytrack/internal/schemas"
)

// ErrNotFound indicates a requested record does not exist.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		notFound     *ErrNotFound
		validation   *ErrValidation
		genValid     *generate.ValidationError
		genFailed    *generate.GenerationError
		ingestValid  *ingest.ValidationError
		fetchFailed  *ingest.FetchError
		parseAPI     *parsing.APICallError
		parseFailed  *parsing.ParseError
		schemaValid  *schemas.ValidationError
		schemaBroken *schemas.SchemaLoadError
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation), errors.As(err, &genValid),
		errors.As(err, &ingestValid), errors.As(err, &schemaValid):
		return http.StatusBadRequest
	case errors.As(err, &genFailed), errors.As(err, &parseAPI), errors.As(err, &fetchFailed):
		return http.StatusBadGateway
	case errors.As(err, &parseFailed):
		return http.StatusUnprocessableEntity
	case errors.As(err, &schemaBroken):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
