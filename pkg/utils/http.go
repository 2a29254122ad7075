package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

func WriteJSON(w http.ResponseWriter, payload any, code int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}

// DecodeBody decodes a JSON object. Arrays, scalars and empty bodies are
// rejected.
func DecodeBody(r *http.Request, v any) error {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return err
	}
	if len(raw) == 0 || raw[0] != '{' {
		return ErrNotObject
	}
	return json.Unmarshal(raw, v)
}

var ErrNotObject = errors.New("body is not a JSON object")

// ErrorResponse describes a standard error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	Status string   `json:"status" example:"error"`
	Errors []string `json:"errors"`
}

func WriteErrors(w http.ResponseWriter, code int, messages ...string) error {
	return WriteJSON(w, ErrorResponse{Status: "error", Errors: messages}, code)
}

func WriteError(w http.ResponseWriter, message string, code int) error {
	return WriteErrors(w, code, message)
}

// FieldMessage renders a single failed validation rule for API clients.
type FieldMessage func(fe validator.FieldError) string

// ValidationMessages flattens validator errors into client-facing messages.
// Errors of any other kind produce a single generic message.
func ValidationMessages(err error, msg FieldMessage) []string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []string{"Invalid request."}
	}

	messages := make([]string, 0, len(ve))
	for _, fe := range ve {
		messages = append(messages, msg(fe))
	}
	return messages
}

func WriteValidationError(w http.ResponseWriter, err error, msg FieldMessage) error {
	return WriteErrors(w, http.StatusBadRequest, ValidationMessages(err, msg)...)
}
