package applicant

import (
	"net/http"

	"github.com/roster-ats/roster/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("APPLICANT")

// Error codes
var (
	CodeApplicantNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Applicant not found")
	CodeInvalidRequest    = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
	CodePersistence       = ErrRegistry.Register("PERSISTENCE", errx.TypeInternal, http.StatusInternalServerError, "Failed to persist applicant data")
)

// Helper functions
func ErrApplicantNotFound() *errx.Error {
	return ErrRegistry.New(CodeApplicantNotFound)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrPersistence() *errx.Error {
	return ErrRegistry.New(CodePersistence)
}
