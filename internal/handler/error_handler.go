package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jefferson-dev/orders-backend/internal/models"
)

// handleError maps service errors to HTTP responses. This is the single
// place where the error taxonomy turns into wire status codes.
func handleError(w http.ResponseWriter, err error, logger *slog.Logger) {
	// Structural validation failures report every violation together
	var validationErrs models.ValidationErrors
	if errors.As(err, &validationErrs) {
		respondValidationError(w, validationErrs.AsMap())
		return
	}

	var appErr *models.AppError
	if errors.As(err, &appErr) {
		status := mapErrorCodeToHTTPStatus(appErr.Code)
		respondError(w, status, appErr.Code, appErr.Message)
		return
	}

	switch {
	case errors.Is(err, models.ErrNotFound):
		respondError(w, http.StatusNotFound, "NOT_FOUND", err.Error())

	case errors.Is(err, models.ErrConflict):
		respondError(w, http.StatusConflict, "CONFLICT", err.Error())

	case errors.Is(err, models.ErrInvalidPhoneNumber):
		respondError(w, http.StatusBadRequest, "INVALID_PHONE_NUMBER", err.Error())

	default:
		// Log internal errors but don't expose details to client
		logger.Error("internal server error",
			slog.String("error", err.Error()),
		)
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred")
	}
}

// mapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(code string) int {
	switch code {
	case "INVALID_INPUT", "INVALID_PHONE_NUMBER", "VALIDATION_FAILED":
		return http.StatusBadRequest
	case "NOT_FOUND":
		return http.StatusNotFound
	case "CONFLICT":
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
