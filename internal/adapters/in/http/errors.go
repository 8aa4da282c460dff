package http

import (
	"errors"
	"net/http"

	"eats/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the uniform error payload. Code is machine-stable;
// Message is for humans.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondError translates a core error into an HTTP response using the
// sentinel taxonomy. Anything unclassified is a 500 with a generic message
// so internals never leak to clients.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code: "not_found", Message: err.Error()})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code: "validation_error", Message: err.Error()})
	case errors.Is(err, errs.ErrBusinessRule):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code: "business_rule_violation", Message: err.Error()})
	case errors.Is(err, errs.ErrConflict):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code: "conflict", Message: err.Error()})
	case errors.Is(err, errs.ErrNotAuthorized):
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code: "not_authorized", Message: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code: "internal_error", Message: "internal server error"})
	}
}

// respondBadRequest reports a malformed request body or parameter.
func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code: "validation_error", Message: message})
}
