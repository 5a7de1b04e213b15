package problem

import (
	"encoding/json"
	"net/http"
)

const ContentType = "application/problem+json"

// BaseURI prefixes every problem type. Override it at startup to point at
// published documentation.
var BaseURI = "http://localhost:8080/problems"

// Problem represents an RFC 9457 problem+json response
type Problem struct {
	Type     string       `json:"type"`
	Title    string       `json:"title"`
	Status   int          `json:"status"`
	Detail   string       `json:"detail,omitempty"`
	Instance string       `json:"instance,omitempty"`
	Errors   []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// New creates a new Problem
func New(status int, problemType, title, detail string) *Problem {
	return &Problem{
		Type:   BaseURI + "/" + problemType,
		Title:  title,
		Status: status,
		Detail: detail,
	}
}

// WithErrors adds field errors to the problem
func (p *Problem) WithErrors(errors []FieldError) *Problem {
	p.Errors = errors
	return p
}

// WithInstance sets the URI reference of the failing request.
func (p *Problem) WithInstance(instance string) *Problem {
	p.Instance = instance
	return p
}

// Write writes the problem to the response
func (p *Problem) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(p.Status)
	json.NewEncoder(w).Encode(p)
}

// Common problem constructors

func NotFound(detail string) *Problem {
	return New(http.StatusNotFound, "not-found", "Not Found", detail)
}

func BadRequest(detail string) *Problem {
	return New(http.StatusBadRequest, "bad-request", "Bad Request", detail)
}

func ValidationError(detail string, errors []FieldError) *Problem {
	return New(http.StatusUnprocessableEntity, "validation-error", "Validation Error", detail).WithErrors(errors)
}

// InvalidField is a validation error for a single field.
func InvalidField(field, message string) *Problem {
	return ValidationError("Request contains invalid fields", []FieldError{{Field: field, Message: message}})
}

func MethodNotAllowed(detail string) *Problem {
	return New(http.StatusMethodNotAllowed, "method-not-allowed", "Method Not Allowed", detail)
}

func InternalError(detail string) *Problem {
	return New(http.StatusInternalServerError, "internal-error", "Internal Server Error", detail)
}

// NotFoundHandler answers unknown routes with a problem response.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	NotFound("No route for " + r.URL.Path).WithInstance(r.URL.Path).Write(w)
}

// MethodNotAllowedHandler answers known routes called with the wrong method.
func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	MethodNotAllowed(r.Method + " is not supported for " + r.URL.Path).WithInstance(r.URL.Path).Write(w)
}
