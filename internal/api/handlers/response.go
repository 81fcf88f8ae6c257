package handlers

import (
	"encoding/json"
	"net/http"
)

const msgInternalError = "đã xảy ra lỗi, vui lòng thử lại sau"

// ErrorResponse is the uniform error body of the API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondJSON writes v as a JSON response with the given status code.
// A nil v produces an empty body.
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	// The status line is already written; an encode failure here can only
	// be logged by the caller's middleware.
	_ = json.NewEncoder(w).Encode(v)
}

// RespondBadRequest writes a 400 with the given user-facing message.
func RespondBadRequest(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg})
}

// RespondUnauthorized writes a 401 with the given user-facing message.
func RespondUnauthorized(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusUnauthorized, ErrorResponse{Error: msg})
}

// RespondForbidden writes a 403 with the given user-facing message.
func RespondForbidden(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusForbidden, ErrorResponse{Error: msg})
}

// RespondNotFound writes a 404 with the given user-facing message.
func RespondNotFound(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusNotFound, ErrorResponse{Error: msg})
}

// RespondConflict writes a 409 with the given user-facing message.
func RespondConflict(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusConflict, ErrorResponse{Error: msg})
}

// RespondInternalError writes a 500 with a generic message. Details stay
// in the logs.
func RespondInternalError(w http.ResponseWriter) {
	RespondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: msgInternalError})
}

// DecodeJSON decodes the request body into v, rejecting unknown fields.
func DecodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
