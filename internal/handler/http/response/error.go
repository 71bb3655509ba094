package response

import (
	"errors"
	"net/http"

	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/domain/record"
	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/pkg/recordsapi"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var fetchErr *recordsapi.FetchError

	switch {
	// Upstream records API failures: the caller keeps whatever data it
	// already has; this only reports that the refresh failed.
	case errors.As(err, &fetchErr):
		BadGateway(w, "Failed to fetch records from the upstream API")

	case errors.Is(err, record.ErrPersonNotFound):
		NotFound(w, "Person not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
