package http

import (
	"errors"
	netHTTP "net/http"

	"github.com/labstack/echo/v4"

	"fulfillment/internal/pkg/errs"
)

// problem writes the uniform error body with a status derived from the error
// kind. Unclassified errors stay opaque 500s so storage details never leak.
func problem(c echo.Context, err error) error {
	status := statusForError(err)
	message := err.Error()
	if status == netHTTP.StatusInternalServerError {
		message = "internal server error"
	}
	return c.JSON(status, ErrorResponse{Code: status, Message: message})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return netHTTP.StatusNotFound
	case errors.Is(err, errs.ErrMissingResource),
		errors.Is(err, errs.ErrAlreadyClaimed),
		errors.Is(err, errs.ErrGroupingConflict),
		errors.Is(err, errs.ErrInvalidAmount),
		errors.Is(err, errs.ErrOverpayment),
		errors.Is(err, errs.ErrInvoiceNotPayable),
		errors.Is(err, errs.ErrEditLocked),
		errors.Is(err, errs.ErrCancellationNotAllowed),
		errors.Is(err, errs.ErrInvalidTransition):
		return netHTTP.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return netHTTP.StatusBadRequest
	default:
		return netHTTP.StatusInternalServerError
	}
}

// badRequest writes a 400 with the given message, used for malformed bodies
// and invalid path or query parameters before a command is even built.
func badRequest(c echo.Context, message string) error {
	return c.JSON(netHTTP.StatusBadRequest, ErrorResponse{
		Code:    netHTTP.StatusBadRequest,
		Message: message,
	})
}
