// Package json carries the small read/write helpers every handler goes
// through, so the error envelope and body limits stay uniform across the API.
package json

import (
	"encoding/json"
	"net/http"
)

const maxBodyBytes = 1_048_576 // 1MB

type envelope struct {
	Error string `json:"error"`
}

// Read decodes the request body into dst, rejecting unknown fields and
// bodies over the size limit.
func Read(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	return decoder.Decode(dst)
}

// Write renders data as a JSON response with the given status code.
func Write(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(data)
}

// WriteError renders the error envelope. The underlying error is accepted so
// call sites keep it next to the user-facing message, but only the message is
// ever sent to the client.
func WriteError(w http.ResponseWriter, status int, _ error, message string) {
	_ = Write(w, status, envelope{Error: message})
}

func WriteValidationError(w http.ResponseWriter, err error) {
	_ = Write(w, http.StatusBadRequest, envelope{Error: err.Error()})
}

func WriteBadRequestError(w http.ResponseWriter, message string) {
	_ = Write(w, http.StatusBadRequest, envelope{Error: message})
}

func WriteInternalError(w http.ResponseWriter, _ error) {
	_ = Write(w, http.StatusInternalServerError, envelope{
		Error: "the server encountered a problem and could not process your request",
	})
}
