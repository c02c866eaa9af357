package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"os"

	"github.com/julianstephens/habitcraft/internal/constants"
	"github.com/julianstephens/habitcraft/internal/logger"
	"github.com/julianstephens/habitcraft/internal/models"
	"github.com/julianstephens/habitcraft/internal/validation"
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// ToAPIError converts err into the API error body. Validation failures map
// to 400; an ApiError passes through; anything else is a 500.
func ToAPIError(err error) models.ApiError {
	if verr, ok := validation.AsValidationError(err); ok {
		return models.ApiError{
			Code:       constants.ErrorCodeValidation,
			Message:    verr.Error(),
			StatusCode: http.StatusBadRequest,
		}
	}

	var apiErr models.ApiError
	if stderrors.As(err, &apiErr) {
		return apiErr
	}

	msg := http.StatusText(http.StatusInternalServerError)
	if err != nil {
		msg = err.Error()
	}
	return models.ApiError{
		Code:       constants.ErrorCodeInternal,
		Message:    msg,
		StatusCode: http.StatusInternalServerError,
	}
}
