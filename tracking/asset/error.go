package asset

import (
	"net/http"

	"github.com/roster-ats/roster/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("ASSET")

// Error codes
var (
	CodeNoFile          = ErrRegistry.Register("NO_FILE", errx.TypeValidation, http.StatusBadRequest, "No file provided")
	CodeInvalidFileType = ErrRegistry.Register("INVALID_FILE_TYPE", errx.TypeValidation, http.StatusBadRequest, "Only PDF files are accepted")
	CodeAssetNotFound   = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Resume file not found")
)

// Helper functions
func ErrNoFile() *errx.Error {
	return ErrRegistry.New(CodeNoFile)
}

func ErrInvalidFileType() *errx.Error {
	return ErrRegistry.New(CodeInvalidFileType)
}

func ErrAssetNotFound() *errx.Error {
	return ErrRegistry.New(CodeAssetNotFound)
}
