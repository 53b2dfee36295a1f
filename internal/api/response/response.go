package response

import (
	"encoding/json"
	"net/http"
)

// Result is the two-case success/error payload used by mutating and
// operational endpoints. Both cases serialize to the same {"message": ...}
// shape; the HTTP status code, not the body, signals which case occurred.
type Result struct {
	Message string `json:"message"`
	ok      bool
}

func Success(message string) Result {
	return Result{Message: message, ok: true}
}

func Failure(message string) Result {
	return Result{Message: message}
}

// OK reports whether the result is the success case.
func (r Result) OK() bool { return r.ok }

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteResult writes a Result with the caller-chosen status code.
func WriteResult(w http.ResponseWriter, status int, r Result) {
	WriteJSON(w, status, r)
}

// WriteError writes an error-case Result.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Failure(message))
}
