package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
	"github.com/custodia-labs/rna-msa/internal/logger"
)

// Envelope statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Common response messages.
const (
	MessageLoaded         = "Data loaded successfully"
	MessageNoSequences    = "No sequence data available"
	MessageNotFound       = "Endpoint not found"
	MessageInternalError  = "Internal server error"
	messageRetrieveFailed = "Failed to retrieve sequences"
)

// Response is the JSON envelope returned by every endpoint.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// FamilyPayload is the data block of a family response.
type FamilyPayload struct {
	Sequences []domain.SequenceRecord     `json:"sequences"`
	Reference string                      `json:"reference,omitempty"`
	Structure *domain.StructureAnnotation `json:"structure,omitempty"`
	Metadata  domain.FamilyMetadata       `json:"metadata"`
}

// NewFamilyPayload builds the data block for a parsed family.
func NewFamilyPayload(f *domain.Family) FamilyPayload {
	return FamilyPayload{
		Sequences: f.Document.Sequences,
		Reference: f.Document.Reference,
		Structure: f.Document.Structure,
		Metadata:  f.Metadata(),
	}
}

func writeJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	// Dot-bracket strings use '<' and '>' for pairs.
	enc.SetEscapeHTML(false)
	if err := enc.Encode(resp); err != nil {
		logger.Warn("encode response: %v", err)
	}
}

func writeSuccess(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, Response{Status: StatusSuccess, Message: message, Data: data})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Response{Status: StatusError, Message: message})
}

// statusFor maps a service error onto an HTTP status and message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case domain.IsParseError(err):
		return http.StatusUnprocessableEntity, err.Error()
	default:
		return http.StatusInternalServerError, fmt.Sprintf("%s: %v", messageRetrieveFailed, err)
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	status, message := statusFor(err)
	writeError(w, status, message)
}
